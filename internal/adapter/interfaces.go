// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport the clipboard agent uses to talk
// to the sync server.
//
// [ServerAdapter] covers the REST surface: authentication, pushing a
// clipboard entry, reading the backlog and acknowledging it. The realtime
// channel is dialled separately; [ServerAdapter.RealtimeURL] tells the
// agent where to connect.
//
// Error values in errors.go are mapped from HTTP status codes by
// mapHTTPError so callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-clip-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the agent's view of the sync server.
type ServerAdapter interface {
	// SetToken stores the access token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored access token, or an empty string.
	Token() string

	// Login authenticates the device and stores the issued access token.
	// The returned response also carries the refresh token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Refresh rotates the token pair and stores the new access token.
	Refresh(ctx context.Context, refreshToken string) (models.AuthResponse, error)

	// Logout ends the current session.
	Logout(ctx context.Context) error

	// Push sends one clipboard entry through the server pipeline.
	Push(ctx context.Context, payload models.ClipboardPushPayload) (models.PushResult, error)

	// Pending returns the backlog of this device, oldest first.
	Pending(ctx context.Context) (models.PendingResponse, error)

	// Ack marks the given clipboard entries as synced for this device.
	Ack(ctx context.Context, clipboardIDs []string) (int, error)

	// Devices lists the devices of the account.
	Devices(ctx context.Context) ([]models.Device, error)

	// RealtimeURL is the WebSocket endpoint of the server.
	RealtimeURL() string
}
