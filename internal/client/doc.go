// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the clipboard agent that runs on a user's
// machine.
//
// The agent logs the device in, drains its backlog over REST, then keeps a
// WebSocket connection to the server open. Local clipboard changes are
// pushed as clipboard.push frames and entries copied on other devices are
// written to the local clipboard. Lost connections are redialled with
// exponential backoff.
package client
