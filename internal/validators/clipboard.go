package validators

import (
	"context"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-clip-sync/models"
)

// Field names accepted by [ClipboardValidator].
const (
	FieldUserID         = "user_id"
	FieldOriginDeviceID = "origin_device_id"
	FieldContentType    = "content_type"
	FieldPayloadRef     = "payload_ref"
	FieldFileName       = "file_name"
	FieldFileSize       = "file_size"
	FieldExpireAt       = "expire_at"
	FieldIdempotencyKey = "idempotency_key"
	FieldClipboardIDs   = "clipboard_ids"
)

const (
	maxInlinePayload     = 1 << 20
	maxURLLength         = 500
	maxReferenceLength   = 1024
	maxFileNameLength    = 255
	maxIdempotencyKeyLen = 128
	maxAckIDs            = 500
)

// ClipboardValidator checks push and acknowledgement requests before the
// pipeline touches storage.
type ClipboardValidator struct {
	now func() time.Time
}

func NewClipboardValidator() Validator {
	return &ClipboardValidator{now: time.Now}
}

func (v *ClipboardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PushRequest:
		return v.validatePush(ctx, value, fields...)
	case *models.PushRequest:
		return v.validatePush(ctx, *value, fields...)

	case models.AckRequest:
		return v.validateAck(ctx, value, fields...)
	case *models.AckRequest:
		return v.validateAck(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClipboardValidator) validatePush(_ context.Context, req models.PushRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldOriginDeviceID, FieldContentType, FieldPayloadRef,
			FieldFileName, FieldFileSize, FieldExpireAt, FieldIdempotencyKey}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(req.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldOriginDeviceID:
			if strings.TrimSpace(req.OriginDeviceID) == "" {
				return ErrInvalidDeviceID
			}
		case FieldContentType:
			if !req.ContentType.Valid() {
				return ErrInvalidContentType
			}
		case FieldPayloadRef:
			if err := validatePayload(req.ContentType, req.PayloadRef); err != nil {
				return err
			}
		case FieldFileName:
			if utf8.RuneCountInString(req.FileName) > maxFileNameLength || strings.ContainsAny(req.FileName, "/\\\x00") {
				return ErrInvalidFileName
			}
		case FieldFileSize:
			if req.FileSize != nil && *req.FileSize < 0 {
				return ErrNegativeFileSize
			}
		case FieldExpireAt:
			if req.ExpireAt != nil && !req.ExpireAt.After(v.now()) {
				return ErrExpiryInPast
			}
		case FieldIdempotencyKey:
			if len(req.IdempotencyKey) > maxIdempotencyKeyLen {
				return ErrInvalidIdempotencyKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePayload applies the per-type rules. Text and url carry the
// content inline and must not be empty; whitespace is a valid text value.
// Image and file carry an optional reference to stored content.
func validatePayload(ct models.ContentType, payload string) error {
	switch ct {
	case models.ContentText:
		if payload == "" {
			return ErrEmptyPayload
		}
		if len(payload) > maxInlinePayload {
			return ErrPayloadTooLarge
		}
	case models.ContentURL:
		trimmed := strings.TrimSpace(payload)
		if trimmed == "" {
			return ErrEmptyPayload
		}
		if len(payload) > maxURLLength {
			return ErrPayloadTooLarge
		}
		u, err := url.Parse(trimmed)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return ErrInvalidURL
		}
	case models.ContentImage, models.ContentFile:
		if len(payload) > maxReferenceLength {
			return ErrPayloadTooLarge
		}
	default:
		return ErrInvalidContentType
	}
	return nil
}

func (v *ClipboardValidator) validateAck(_ context.Context, req models.AckRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClipboardIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldClipboardIDs:
			if len(req.ClipboardIDs) == 0 {
				return ErrEmptyIDs
			}
			if len(req.ClipboardIDs) > maxAckIDs {
				return ErrTooManyIDs
			}
			for _, id := range req.ClipboardIDs {
				if strings.TrimSpace(id) == "" {
					return ErrEmptyIDs
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
