package http

import (
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}

	devices, err := h.services.DeviceService.List(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, r, "*Handler.listDevices", err)
		return
	}

	utils.WriteJSON(w, devices, http.StatusOK)
}

// removeDevice deactivates a device of the caller, revokes its sessions and
// closes its live connections.
func (h *Handler) removeDevice(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}
	deviceID := chi.URLParam(r, "deviceID")

	if err := h.services.DeviceService.Remove(r.Context(), identity, deviceID); err != nil {
		writeServiceError(w, r, "*Handler.removeDevice", err)
		return
	}
	h.realtime.EvictDevice(identity.UserID, deviceID)

	w.WriteHeader(http.StatusNoContent)
}
