package http

import (
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
)

// pending lists the caller device's backlog without delivering it. Clients
// that cannot hold a WebSocket poll this and acknowledge with ack.
func (h *Handler) pending(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}

	backlog, err := h.services.ClipboardService.Pending(r.Context(), identity)
	if err != nil {
		writeServiceError(w, r, "*Handler.pending", err)
		return
	}

	resp := models.PendingResponse{Items: make([]models.ClipboardNewPayload, 0, len(backlog))}
	for _, p := range backlog {
		resp.Items = append(resp.Items, models.NewClipboardNewPayload(p.Item))
	}
	resp.Length = len(resp.Items)

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) ack(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}

	var req models.AckRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.services.ClipboardService.Ack(r.Context(), identity, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.ack", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
