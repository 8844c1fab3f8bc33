package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID         = errors.New("invalid user ID")
	ErrInvalidDeviceID       = errors.New("invalid device ID")
	ErrInvalidContentType    = errors.New("content type must be one of: text, image, file, url")
	ErrEmptyPayload          = errors.New("payload is required")
	ErrPayloadTooLarge       = errors.New("payload is too large")
	ErrInvalidURL            = errors.New("payload must be an absolute URL")
	ErrInvalidFileName       = errors.New("invalid file name")
	ErrNegativeFileSize      = errors.New("file size cannot be negative")
	ErrExpiryInPast          = errors.New("expiry must be in the future")
	ErrInvalidIdempotencyKey = errors.New("invalid idempotency key")
	ErrEmptyIDs              = errors.New("IDs list cannot be empty")
	ErrTooManyIDs            = errors.New("too many IDs in one request")

	ErrInvalidName             = errors.New("invalid name")
	ErrInvalidEmail            = errors.New("invalid email")
	ErrPasswordTooShort        = errors.New("password must be at least 6 characters")
	ErrInvalidDeviceIdentifier = errors.New("device identifier is required")
	ErrInvalidDeviceName       = errors.New("invalid device name")
	ErrInvalidDeviceType       = errors.New("invalid device type")
	ErrEmptyRefreshToken       = errors.New("refresh token is required")
)
