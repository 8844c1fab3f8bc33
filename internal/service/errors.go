package service

import "errors"

// The four failure classes of the clipboard core. Every error returned by
// this package wraps exactly one of them, or ErrNotFound / ErrConflict for
// plain CRUD lookups.
var (
	// ErrValidation rejects malformed input before any side effect.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthenticated means the credential could not be resolved to a
	// live session of an active user and device.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrPersistence aborts one pipeline run or request because the
	// database rejected a write or read.
	ErrPersistence = errors.New("persistence failed")

	// ErrDuplicatePush is returned for a push whose idempotency key was
	// already used within its TTL. Nothing is written.
	ErrDuplicatePush = errors.New("duplicate push")
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionExpired     = errors.New("session expired")
	ErrInactiveAccount    = errors.New("account or device is inactive")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
