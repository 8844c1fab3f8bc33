package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.register", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().
		Str("user_id", resp.User.UserID).
		Str("device_id", resp.Device.DeviceID).
		Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", resp.Token))
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.services.AuthService.Refresh(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.refresh", err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", resp.Token))
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), identity); err != nil {
		writeServiceError(w, r, "*Handler.logout", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// logoutAll revokes every session of the user and drops their live
// WebSocket connections, this one's device included.
func (h *Handler) logoutAll(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}

	n, err := h.services.AuthService.LogoutAll(r.Context(), identity)
	if err != nil {
		writeServiceError(w, r, "*Handler.logoutAll", err)
		return
	}
	evicted := h.realtime.EvictUser(identity.UserID)

	utils.WriteJSON(w, map[string]int64{"sessions": n, "connections": int64(evicted)}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrFail(w, r)
	if !ok {
		return
	}

	resp, err := h.services.AuthService.Me(r.Context(), identity)
	if err != nil {
		writeServiceError(w, r, "*Handler.me", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// decodeBody answers 400 itself when the body is not valid JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Info().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func identityOrFail(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Err(errNoIdentity).Send()
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return identity, ok
}
