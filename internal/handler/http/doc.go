// Package http implements the REST surface of the clipboard sync server
// and mounts the WebSocket gateway. Authentication, tracing, logging and
// rate limiting happen here before requests reach the service layer.
package http
