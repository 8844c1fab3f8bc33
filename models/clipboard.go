package models

import (
	"fmt"
	"time"
)

// ContentType is the closed set of clipboard payload kinds. Values outside
// the set are rejected at every boundary (JSON, frames, database rows).
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentFile  ContentType = "file"
	ContentURL   ContentType = "url"
)

// ContentTypes lists every accepted content type in a stable order.
var ContentTypes = []ContentType{ContentText, ContentImage, ContentFile, ContentURL}

// Valid reports whether c belongs to the closed set.
func (c ContentType) Valid() bool {
	switch c {
	case ContentText, ContentImage, ContentFile, ContentURL:
		return true
	}
	return false
}

// IsInline reports whether the payload reference itself is the content
// (text and url) rather than a pointer to an out-of-band blob.
func (c ContentType) IsInline() bool {
	return c == ContentText || c == ContentURL
}

// ParseContentType converts s into a ContentType or fails for unknown kinds.
func ParseContentType(s string) (ContentType, error) {
	c := ContentType(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown content type %q", s)
	}
	return c, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c ContentType) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown content type %q", string(c))
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ContentType) UnmarshalText(b []byte) error {
	v, err := ParseContentType(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ClipboardItem is one immutable clipboard snapshot pushed by a device.
// Items past ExpireAt are invisible to every read path.
type ClipboardItem struct {
	ID             string      `json:"id"`
	UserID         string      `json:"user_id"`
	OriginDeviceID string      `json:"origin_device_id"`
	ContentType    ContentType `json:"content_type"`

	// PayloadRef is the inline content for text and url items, or an
	// opaque reference to externally stored content for image and file.
	PayloadRef string `json:"payload_ref"`

	FileName string `json:"file_name,omitempty"`
	FileSize *int64 `json:"file_size,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	ExpireAt  *time.Time `json:"expire_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the ClipboardItem model.
func (c ClipboardItem) TableName() string {
	return "clipboard_items"
}

// Expired reports whether the item is past its expiry at now.
// Items without an expiry never expire.
func (c ClipboardItem) Expired(now time.Time) bool {
	return c.ExpireAt != nil && !now.Before(*c.ExpireAt)
}
