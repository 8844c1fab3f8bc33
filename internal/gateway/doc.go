// Package gateway terminates realtime WebSocket connections.
//
// Each accepted connection moves through Connecting, Authenticated, Live
// and Closed. The credential is resolved before the upgrade, so a refused
// handshake never touches the presence registry. Once live, the connection
// is registered, the user's other devices are told it came online, and the
// device's pending backlog is replayed. Leaving Live happens exactly once
// regardless of who closes the socket.
package gateway
