package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantBody   string
		wantStatus int
	}{
		{
			name:       "health",
			data:       models.HealthResponse{Status: "ok", Version: "1.0.0", Connections: 3},
			status:     http.StatusOK,
			wantBody:   `{"status":"ok","version":"1.0.0","connections":3}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "created ack",
			data:       models.AckResponse{Synced: 2},
			status:     http.StatusCreated,
			wantBody:   `{"synced":2}`,
			wantStatus: http.StatusCreated,
		},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`, wantStatus: http.StatusOK},
		{name: "empty list", data: []string{}, status: http.StatusOK, wantBody: `[]`, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, len(w.Body.Bytes()), n)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "clipboard item not found", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"clipboard item not found"}`, w.Body.String())
}
