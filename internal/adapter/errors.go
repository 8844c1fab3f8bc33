package adapter

import "errors"

// Errors returned by [ServerAdapter] implementations. HTTP status codes
// are mapped onto them by mapHTTPError so callers can use [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrEmptyAddress  = errors.New("empty address")
	ErrInvalidScheme = errors.New("address must include host and scheme")
)
