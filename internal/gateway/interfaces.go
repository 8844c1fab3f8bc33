package gateway

import (
	"context"

	"github.com/MKhiriev/go-clip-sync/internal/presence"
	"github.com/MKhiriev/go-clip-sync/models"
)

// Registry is the part of [presence.Registry] the hub drives.
type Registry interface {
	Register(userID, deviceID string, sink presence.Sink) presence.Connection
	Unregister(connectionID string) (presence.Connection, bool)
	IsDeviceLive(userID, deviceID string) bool
	DeviceConnections(userID, deviceID string) []presence.Connection
	LiveConnections(userID, excludingDeviceID string) []presence.Connection
	Count() int
}

// Notifier delivers a frame to every live connection of the user except
// the ones of originDeviceID, without reporting per-target outcomes.
type Notifier interface {
	Notify(ctx context.Context, userID, originDeviceID string, frame models.Frame)
}
