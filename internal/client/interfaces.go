// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until ctx is done or
	// a fatal error occurs.
	Run(ctx context.Context) error
}

// Clipboard is the local system clipboard.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}
