package http

import (
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(serverVersion))
}

// health reports liveness, the build version and the number of live
// WebSocket connections.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:      "ok",
		Version:     h.services.AppInfoService.GetAppVersion(r.Context()),
		Connections: h.realtime.Connections(),
	}, http.StatusOK)
}
