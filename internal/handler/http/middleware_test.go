package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── withTraceID / withLogging ──

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.Header().Get(traceIDHeader)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "trace-42", seen)
	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
}

func TestWithLogging_RecordsStatusAndTrace(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("12345"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/clipboard", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	h.withTraceID(h.withLogging(next)).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.EqualValues(t, http.StatusAccepted, entry["status"])
	assert.EqualValues(t, 5, entry["size"])
}

// ── withRateLimit ──

func TestWithRateLimit(t *testing.T) {
	env := newTestEnv(t, config.Server{RateLimitRPM: 60, RateLimitBurst: 2})

	codes := make([]int, 0, 3)
	for range 3 {
		codes = append(codes, env.do(t, http.MethodGet, "/api/version", nil, false).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Health and the WebSocket upgrade are outside the limited group.
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/", nil, false).Code)
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.7:5555"
	assert.Equal(t, "10.0.0.7", clientIP(r))

	r.RemoteAddr = "10.0.0.7"
	assert.Equal(t, "10.0.0.7", clientIP(r))
}

// ── responseWriter ──

type hijackableRecorder struct {
	*httptest.ResponseRecorder
	hijacked bool
}

func (h *hijackableRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h.hijacked = true
	return nil, nil, nil
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("ab"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, w.status, "first write implies 200")
	assert.Equal(t, 2, w.size)

	_, _, err = w.Hijack()
	assert.ErrorIs(t, err, errHijackNotSupported)

	inner := &hijackableRecorder{ResponseRecorder: httptest.NewRecorder()}
	w = &responseWriter{ResponseWriter: inner}
	_, _, err = w.Hijack()
	require.NoError(t, err)
	assert.True(t, inner.hijacked)
	assert.Equal(t, http.StatusSwitchingProtocols, w.status)
}
