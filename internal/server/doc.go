// Package server owns the process lifecycle: it serves the HTTP listener
// that carries both REST and WebSocket traffic, starts background workers,
// and on SIGTERM, SIGINT or SIGQUIT shuts everything down in dependency
// order.
package server
