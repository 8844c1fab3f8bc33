package models

import "time"

// AuthResponse is returned by login and refresh.
type AuthResponse struct {
	User         User      `json:"user"`
	Device       Device    `json:"device"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// MeResponse is returned by GET /api/auth/me.
type MeResponse struct {
	User   User   `json:"user"`
	Device Device `json:"device"`
}

// PushResult is the outcome of one pipeline run: the persisted item and
// the per-device delivery state right after fan-out.
type PushResult struct {
	Item    ClipboardItem       `json:"item"`
	Targets []DeviceSyncOutcome `json:"targets"`
}

// PendingResponse lists the backlog of the calling device, oldest first.
type PendingResponse struct {
	Items  []ClipboardNewPayload `json:"items"`
	Length int                   `json:"length"`
}

// AckResponse reports how many of the acknowledged records moved to synced.
type AckResponse struct {
	Synced int `json:"synced"`
}

// HealthResponse is returned by GET /.
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Connections int    `json:"connections"`
}

// ErrorResponse is the body of every non-2xx REST response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FavoriteToggleResponse is returned by POST /api/clipboard/{id}/favorite.
type FavoriteToggleResponse struct {
	ClipboardID string `json:"clipboard_id"`
	IsFavorite  bool   `json:"is_favorite"`
}

// FavoritesResponse is one page of favorites, newest first. Total counts
// every visible favorite of the user, not just this page.
type FavoritesResponse struct {
	Items  []ClipboardFavorite `json:"items"`
	Total  int                 `json:"total"`
	Limit  uint64              `json:"limit"`
	Offset uint64              `json:"offset"`
}
