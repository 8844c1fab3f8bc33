package models

import "time"

// Session is one issued pair of access and refresh tokens for a device.
// Only keyed fingerprints of the tokens are stored.
type Session struct {
	SessionID string `json:"id"`
	UserID    string `json:"user_id"`
	DeviceID  string `json:"device_id"`

	// TokenHash is the HMAC-SHA256 fingerprint of the access token.
	TokenHash string `json:"-"`

	// RefreshTokenHash is the HMAC-SHA256 fingerprint of the refresh token.
	RefreshTokenHash string `json:"-"`

	// ExpiresAt bounds both tokens. A session past this instant is dead
	// even if the token signature is still valid.
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session is no longer usable at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Identity is the result of resolving a credential: who is connecting
// and from which device.
type Identity struct {
	UserID    string
	DeviceID  string
	SessionID string
	ExpiresAt time.Time
}
