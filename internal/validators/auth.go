package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-clip-sync/models"
)

const (
	FieldName             = "name"
	FieldEmail            = "email"
	FieldPassword         = "password"
	FieldDeviceName       = "device_name"
	FieldDeviceIdentifier = "device_identifier"
	FieldDeviceType       = "device_type"
	FieldRefreshToken     = "refresh_token"
)

const (
	minPasswordLength = 6
	maxNameLength     = 100
)

// AuthValidator checks registration, login and refresh requests.
type AuthValidator struct{}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	case models.RefreshRequest:
		return v.validateRefresh(ctx, value, fields...)
	case *models.RefreshRequest:
		return v.validateRefresh(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateRegister(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !validName(req.Name) {
				return ErrInvalidName
			}
		case FieldEmail:
			if !validEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *AuthValidator) validateLogin(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldDeviceIdentifier, FieldDeviceName, FieldDeviceType}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !validEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			// length rules apply at registration only
			if req.Password == "" {
				return ErrPasswordTooShort
			}
		case FieldDeviceIdentifier:
			if strings.TrimSpace(req.DeviceIdentifier) == "" || utf8.RuneCountInString(req.DeviceIdentifier) > maxNameLength*2 {
				return ErrInvalidDeviceIdentifier
			}
		case FieldDeviceName:
			if req.DeviceName != "" && !validName(req.DeviceName) {
				return ErrInvalidDeviceName
			}
		case FieldDeviceType:
			if req.DeviceType != "" && !req.DeviceType.Valid() {
				return ErrInvalidDeviceType
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *AuthValidator) validateRefresh(_ context.Context, req models.RefreshRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRefreshToken}
	}

	for _, f := range fields {
		switch f {
		case FieldRefreshToken:
			if strings.TrimSpace(req.RefreshToken) == "" {
				return ErrEmptyRefreshToken
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func validName(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && utf8.RuneCountInString(s) <= maxNameLength
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
