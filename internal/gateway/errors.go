package gateway

import "errors"

var (
	ErrConnectionClosed = errors.New("connection closed")
	ErrDeliveryTimeout  = errors.New("delivery timed out")
	ErrMissingToken     = errors.New("missing access token")
	ErrHubClosed        = errors.New("gateway is shutting down")
)
