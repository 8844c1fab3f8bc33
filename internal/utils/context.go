// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-clip-sync/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the user identifier in the context.
var UserIDCtxKey = contextKey("userID")

// DeviceIDCtxKey is the key used to store the device identifier of the
// authenticated caller in the context.
var DeviceIDCtxKey = contextKey("deviceID")

// SessionIDCtxKey is the key used to store the session identifier of the
// authenticated caller in the context.
var SessionIDCtxKey = contextKey("sessionID")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true:  value is found, is a string and is not empty
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, UserIDCtxKey)
}

// GetDeviceIDFromContext retrieves the device identifier from the context.
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, DeviceIDCtxKey)
}

// WithIdentity stores every field of identity in ctx.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, identity.UserID)
	ctx = context.WithValue(ctx, DeviceIDCtxKey, identity.DeviceID)
	return context.WithValue(ctx, SessionIDCtxKey, identity.SessionID)
}

// IdentityFromContext is the inverse of WithIdentity. ok is false unless
// both the user and the device are present.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return models.Identity{}, false
	}
	deviceID, ok := GetDeviceIDFromContext(ctx)
	if !ok {
		return models.Identity{}, false
	}
	sessionID, _ := stringFromContext(ctx, SessionIDCtxKey)

	return models.Identity{UserID: userID, DeviceID: deviceID, SessionID: sessionID}, true
}

func stringFromContext(ctx context.Context, key contextKey) (string, bool) {
	v, ok := ctx.Value(key).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
