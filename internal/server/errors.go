package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errShutdownIncomplete  = errors.New("shutdown did not complete cleanly")
)
