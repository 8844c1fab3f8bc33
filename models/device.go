package models

import (
	"fmt"
	"time"
)

// DeviceType is the platform a device reports at login.
type DeviceType string

const (
	DeviceAndroid DeviceType = "android"
	DeviceIOS     DeviceType = "ios"
	DeviceWindows DeviceType = "windows"
	DeviceMacOS   DeviceType = "macos"
	DeviceLinux   DeviceType = "linux"
	DeviceWeb     DeviceType = "web"
)

// DefaultDeviceType is assigned when a login request omits the type.
const DefaultDeviceType = DeviceAndroid

var deviceTypes = map[DeviceType]struct{}{
	DeviceAndroid: {},
	DeviceIOS:     {},
	DeviceWindows: {},
	DeviceMacOS:   {},
	DeviceLinux:   {},
	DeviceWeb:     {},
}

// Valid reports whether t is one of the known device platforms.
func (t DeviceType) Valid() bool {
	_, ok := deviceTypes[t]
	return ok
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown platforms
// are rejected; an empty value maps to [DefaultDeviceType].
func (t *DeviceType) UnmarshalText(b []byte) error {
	v := DeviceType(b)
	if v == "" {
		*t = DefaultDeviceType
		return nil
	}
	if !v.Valid() {
		return fmt.Errorf("unknown device type %q", string(b))
	}
	*t = v
	return nil
}

// Device is one installation of the client that belongs to a user.
// The sync ledger tracks delivery per device, not per connection.
type Device struct {
	// DeviceID is the server-assigned identifier (UUIDv7 text).
	DeviceID string `json:"id"`

	// UserID is the owner of the device.
	UserID string `json:"user_id"`

	// Name is a human readable label, for example "Work laptop".
	Name string `json:"name"`

	// Identifier is the stable client-generated identifier the device
	// presents at every login. Unique per user.
	Identifier string `json:"identifier"`

	// Type is the device platform.
	Type DeviceType `json:"type"`

	// IsActive is false once the device was removed by its owner.
	// Inactive devices get no new ledger rows and cannot authenticate.
	IsActive bool `json:"is_active"`

	// LastActive is touched on every authenticated request.
	LastActive time.Time `json:"last_active"`

	CreatedAt time.Time `json:"created_at"`

	// Online is filled from the presence registry when devices are listed.
	// It is never persisted.
	Online bool `json:"online"`
}

// TableName returns the name of the database table
// associated with the Device model.
func (d Device) TableName() string {
	return "devices"
}
