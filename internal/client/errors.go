package client

import "errors"

var (
	ErrClipboardUnsupported = errors.New("no clipboard utility available")
	ErrMissingCredentials   = errors.New("agent email and password are required")

	errHandshakeUnauthorized = errors.New("realtime handshake rejected")
	errNotConnected          = errors.New("realtime channel not connected")
)
