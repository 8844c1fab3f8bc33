package server

import (
	"context"
	"io"
)

type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives and shutdown has finished.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// Realtime is the WebSocket gateway; it is closed after the listener stops
// accepting new upgrades.
type Realtime interface {
	Shutdown(ctx context.Context) error
}

// Background is the set of periodic workers.
type Background interface {
	Start(ctx context.Context)
	Stop()
}

// Dependencies are the long-lived components the server shuts down after
// its listener. Closers are closed last, in order; typically the
// idempotency store and then the database.
type Dependencies struct {
	Realtime Realtime
	Workers  Background
	Closers  []io.Closer
}
