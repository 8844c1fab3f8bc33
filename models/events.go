package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType names a realtime frame exchanged over the WebSocket channel.
type EventType string

// Client to server events.
const (
	EventClipboardPush        EventType = "clipboard.push"
	EventClipboardRequestSync EventType = "clipboard.request-sync"
	EventClipboardTyping      EventType = "clipboard.typing"
)

// Server to client events.
const (
	EventClipboardNew          EventType = "clipboard.new"
	EventClipboardDelivered    EventType = "clipboard.delivered"
	EventClipboardError        EventType = "clipboard.error"
	EventClipboardSyncComplete EventType = "clipboard.sync-complete"
	EventClipboardUserTyping   EventType = "clipboard.user-typing"
	EventDeviceOnline          EventType = "device.online"
	EventDeviceOffline         EventType = "device.offline"
)

// Frame is the envelope of every realtime message. ID echoes the request
// identifier chosen by the client so replies can be correlated.
type Frame struct {
	Type    EventType       `json:"type"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewFrame marshals payload into a frame of the given type.
func NewFrame(t EventType, id string, payload any) (Frame, error) {
	f := Frame{Type: t, ID: id}
	if payload == nil {
		return f, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Frame{}, fmt.Errorf("marshal %s payload: %w", t, err)
	}
	f.Payload = raw
	return f, nil
}

// MustFrame is NewFrame for payloads that cannot fail to marshal.
func MustFrame(t EventType, id string, payload any) Frame {
	f, err := NewFrame(t, id, payload)
	if err != nil {
		panic(err)
	}
	return f
}

// Decode unmarshals the frame payload into v.
func (f Frame) Decode(v any) error {
	if len(f.Payload) == 0 {
		return fmt.Errorf("%s: empty payload", f.Type)
	}
	if err := json.Unmarshal(f.Payload, v); err != nil {
		return fmt.Errorf("%s: decode payload: %w", f.Type, err)
	}
	return nil
}

// ClipboardPushPayload is sent by a device that copied something.
// OriginDeviceID is informational; the server always uses the device of
// the authenticated connection.
type ClipboardPushPayload struct {
	ContentType    ContentType `json:"contentType"`
	PayloadRef     string      `json:"payloadRef"`
	OriginDeviceID string      `json:"originDeviceId,omitempty"`
	FileName       string      `json:"fileName,omitempty"`
	FileSize       *int64      `json:"fileSize,omitempty"`
	ExpireAt       *time.Time  `json:"expireAt,omitempty"`
	IdempotencyKey string      `json:"idempotencyKey,omitempty"`
}

// ClipboardNewPayload is delivered to every target device of a push and
// to reconnecting devices during catch-up.
type ClipboardNewPayload struct {
	ClipboardID string      `json:"clipboardId"`
	DeviceID    string      `json:"deviceId"`
	ContentType ContentType `json:"contentType"`
	PayloadRef  string      `json:"payloadRef"`
	FileName    string      `json:"fileName,omitempty"`
	FileSize    *int64      `json:"fileSize,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// NewClipboardNewPayload builds the delivery payload for item.
func NewClipboardNewPayload(item ClipboardItem) ClipboardNewPayload {
	return ClipboardNewPayload{
		ClipboardID: item.ID,
		DeviceID:    item.OriginDeviceID,
		ContentType: item.ContentType,
		PayloadRef:  item.PayloadRef,
		FileName:    item.FileName,
		FileSize:    item.FileSize,
		CreatedAt:   item.CreatedAt,
	}
}

// ClipboardDeliveredPayload acknowledges a push to the origin connection.
type ClipboardDeliveredPayload struct {
	ClipboardID string              `json:"clipboardId"`
	Targets     []DeviceSyncOutcome `json:"targets"`
}

// ClipboardErrorPayload reports a rejected frame to its sender.
type ClipboardErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DevicePresencePayload is the body of device.online and device.offline.
type DevicePresencePayload struct {
	DeviceID string `json:"deviceId"`
}

// SyncCompletePayload closes a catch-up replay.
type SyncCompletePayload struct {
	Count int `json:"count"`
}

// TypingPayload is sent by a device while the user edits a clipboard entry.
type TypingPayload struct {
	IsTyping bool `json:"isTyping"`
}

// UserTypingPayload relays TypingPayload to the other devices.
type UserTypingPayload struct {
	DeviceID string `json:"deviceId"`
	IsTyping bool   `json:"isTyping"`
}

// Error codes carried in [ClipboardErrorPayload].
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeValidation     = "VALIDATION_FAILED"
	ErrCodeRateLimited    = "RATE_LIMITED"
	ErrCodePersistence    = "PERSISTENCE_FAILED"
	ErrCodeDuplicate      = "DUPLICATE"
	ErrCodeInternal       = "INTERNAL"
)
