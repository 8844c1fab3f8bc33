package models

import "time"

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login. The device is found
// by (user, DeviceIdentifier) or created on first login.
type LoginRequest struct {
	Email            string     `json:"email"`
	Password         string     `json:"password"`
	DeviceName       string     `json:"deviceName"`
	DeviceIdentifier string     `json:"deviceIdentifier"`
	DeviceType       DeviceType `json:"deviceType"`
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// PushRequest is the input of the clipboard pipeline, whichever
// transport carried it.
type PushRequest struct {
	UserID         string
	OriginDeviceID string
	ContentType    ContentType
	PayloadRef     string
	FileName       string
	FileSize       *int64
	ExpireAt       *time.Time

	// IdempotencyKey lets a client retry a push without creating a second
	// item. Empty disables deduplication.
	IdempotencyKey string
}

// NewPushRequest converts a realtime payload into a pipeline request for
// the authenticated user and device.
func NewPushRequest(userID, deviceID string, p ClipboardPushPayload) PushRequest {
	return PushRequest{
		UserID:         userID,
		OriginDeviceID: deviceID,
		ContentType:    p.ContentType,
		PayloadRef:     p.PayloadRef,
		FileName:       p.FileName,
		FileSize:       p.FileSize,
		ExpireAt:       p.ExpireAt,
		IdempotencyKey: p.IdempotencyKey,
	}
}

// AckRequest is the body of POST /api/sync/ack.
type AckRequest struct {
	ClipboardIDs []string `json:"clipboardIds"`
}
