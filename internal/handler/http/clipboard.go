package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/go-chi/chi/v5"
)

// push runs the same pipeline as a clipboard.push frame, for clients that
// post over REST. The response carries per-device outcomes.
func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}

	var payload models.ClipboardPushPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if key := r.Header.Get("Idempotency-Key"); key != "" && payload.IdempotencyKey == "" {
		payload.IdempotencyKey = key
	}

	result, err := h.services.ClipboardService.Push(r.Context(), models.NewPushRequest(identity.UserID, identity.DeviceID, payload))
	if err != nil {
		writeServiceError(w, r, "*Handler.push", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) listClipboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}

	limit, ok := queryUint(w, r, "limit")
	if !ok {
		return
	}

	items, err := h.services.ClipboardService.List(r.Context(), identity.UserID, limit)
	if err != nil {
		writeServiceError(w, r, "*Handler.listClipboard", err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getClipboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}

	item, err := h.services.ClipboardService.Get(r.Context(), identity.UserID, chi.URLParam(r, "clipboardID"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getClipboard", err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) clipboardSyncs(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}

	records, err := h.services.ClipboardService.Syncs(r.Context(), identity.UserID, chi.URLParam(r, "clipboardID"))
	if err != nil {
		writeServiceError(w, r, "*Handler.clipboardSyncs", err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}

	resp, err := h.services.ClipboardService.ToggleFavorite(r.Context(), identity.UserID, chi.URLParam(r, "clipboardID"))
	if err != nil {
		writeServiceError(w, r, "*Handler.toggleFavorite", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) favoriteState(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}

	resp, err := h.services.ClipboardService.IsFavorite(r.Context(), identity.UserID, chi.URLParam(r, "clipboardID"))
	if err != nil {
		writeServiceError(w, r, "*Handler.favoriteState", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// listFavorites pages with ?limit= and ?offset=, newest favorite first.
func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}

	limit, ok := queryUint(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryUint(w, r, "offset")
	if !ok {
		return
	}

	page, err := h.services.ClipboardService.Favorites(r.Context(), identity.UserID, limit, offset)
	if err != nil {
		writeServiceError(w, r, "*Handler.listFavorites", err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// queryUint reads an optional non-negative integer query parameter,
// answering 400 when it is malformed.
func queryUint(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.WriteError(w, name+" must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return v, true
}
