// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has no HTTP address. Without it neither the REST API nor
// the WebSocket gateway can be served, so startup fails.
var errNoHandlersAreCreated = errors.New("no handlers are created")
