// Package presence keeps the in-memory set of live realtime connections
// per user. It is the only source of truth for who is online right now;
// durable delivery state lives in the sync ledger.
package presence

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
)

// Sink receives frames addressed to one connection. Deliver returns nil
// only once the frame was handed to the transport.
type Sink interface {
	Deliver(ctx context.Context, frame models.Frame) error
}

// Connection is one registered realtime connection. A device may hold
// several at once (for example two browser tabs).
type Connection struct {
	ID          string
	UserID      string
	DeviceID    string
	ConnectedAt time.Time

	Sink Sink
}

// Registry maps users to their live connections.
// All methods are safe for concurrent use; returned slices are copies.
type Registry struct {
	mu     sync.RWMutex
	byUser map[string][]Connection // insertion order
	byID   map[string]Connection

	ids    utils.IDGenerator
	logger *logger.Logger
}

func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		byUser: make(map[string][]Connection),
		byID:   make(map[string]Connection),
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}
}

// Register adds a connection and returns it with a fresh ID. It never fails,
// and registering the same device twice yields two distinct connections.
func (r *Registry) Register(userID, deviceID string, sink Sink) Connection {
	conn := Connection{
		ID:          r.ids.Generate(),
		UserID:      userID,
		DeviceID:    deviceID,
		ConnectedAt: time.Now().UTC(),
		Sink:        sink,
	}

	r.mu.Lock()
	r.byUser[userID] = append(r.byUser[userID], conn)
	r.byID[conn.ID] = conn
	total := len(r.byID)
	r.mu.Unlock()

	r.logger.Debug().
		Str("connection_id", conn.ID).
		Str("user_id", userID).
		Str("device_id", deviceID).
		Int("total", total).
		Msg("connection registered")

	return conn
}

// Unregister removes the connection. ok is false when it was not registered,
// which lets callers run their close logic exactly once.
func (r *Registry) Unregister(connectionID string) (Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.byID[connectionID]
	if !ok {
		return Connection{}, false
	}
	delete(r.byID, connectionID)

	conns := slices.DeleteFunc(r.byUser[conn.UserID], func(c Connection) bool {
		return c.ID == connectionID
	})
	if len(conns) == 0 {
		delete(r.byUser, conn.UserID)
	} else {
		r.byUser[conn.UserID] = conns
	}

	return conn, true
}

// LiveConnections returns the user's connections except those of
// excludingDeviceID, in registration order. An empty excludingDeviceID
// excludes nothing.
func (r *Registry) LiveConnections(userID, excludingDeviceID string) []Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := r.byUser[userID]
	out := make([]Connection, 0, len(conns))
	for _, c := range conns {
		if excludingDeviceID != "" && c.DeviceID == excludingDeviceID {
			continue
		}
		out = append(out, c)
	}
	return out
}

// DeviceConnections returns the connections of one device of the user.
func (r *Registry) DeviceConnections(userID, deviceID string) []Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Connection, 0, 1)
	for _, c := range r.byUser[userID] {
		if c.DeviceID == deviceID {
			out = append(out, c)
		}
	}
	return out
}

// IsDeviceLive reports whether the device has at least one connection.
func (r *Registry) IsDeviceLive(userID, deviceID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.ContainsFunc(r.byUser[userID], func(c Connection) bool {
		return c.DeviceID == deviceID
	})
}

// LiveDevices returns the set of the user's devices that are online.
func (r *Registry) LiveDevices(userID string) map[string]struct{} {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]struct{}, len(r.byUser[userID]))
	for _, c := range r.byUser[userID] {
		out[c.DeviceID] = struct{}{}
	}
	return out
}

// Count returns the number of live connections across all users.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Close empties the registry and returns every connection it held, so the
// caller can shut them down.
func (r *Registry) Close() []Connection {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Connection, 0, len(r.byID))
	for _, conns := range r.byUser {
		out = append(out, conns...)
	}
	r.byUser = make(map[string][]Connection)
	r.byID = make(map[string]Connection)
	return out
}
