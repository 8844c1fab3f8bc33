package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clip-sync/internal/presence"
	"github.com/MKhiriev/go-clip-sync/internal/validators"
	"github.com/MKhiriev/go-clip-sync/models"
)

// clipboardValidationService rejects malformed requests before they reach
// the pipeline. Rejected requests have no side effects.
type clipboardValidationService struct {
	inner     ClipboardService
	validator validators.Validator
}

func NewClipboardValidationService() ClipboardServiceWrapper {
	return &clipboardValidationService{
		validator: validators.NewClipboardValidator(),
	}
}

func (v *clipboardValidationService) Push(ctx context.Context, req models.PushRequest) (models.PushResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PushResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Push(ctx, req)
}

func (v *clipboardValidationService) CatchUp(ctx context.Context, identity models.Identity, sink presence.Sink) (int, error) {
	if err := validateIdentity(identity); err != nil {
		return 0, err
	}
	return v.inner.CatchUp(ctx, identity, sink)
}

func (v *clipboardValidationService) Pending(ctx context.Context, identity models.Identity) ([]models.PendingSync, error) {
	if err := validateIdentity(identity); err != nil {
		return nil, err
	}
	return v.inner.Pending(ctx, identity)
}

func (v *clipboardValidationService) Ack(ctx context.Context, identity models.Identity, req models.AckRequest) (models.AckResponse, error) {
	if err := validateIdentity(identity); err != nil {
		return models.AckResponse{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AckResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Ack(ctx, identity, req)
}

func (v *clipboardValidationService) SkipDevice(ctx context.Context, identity models.Identity, deviceID string) (int64, error) {
	if err := validateIdentity(identity); err != nil {
		return 0, err
	}
	if deviceID == "" {
		return 0, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidDeviceID)
	}
	return v.inner.SkipDevice(ctx, identity, deviceID)
}

func (v *clipboardValidationService) Get(ctx context.Context, userID, clipboardID string) (models.ClipboardItem, error) {
	if userID == "" || clipboardID == "" {
		return models.ClipboardItem{}, fmt.Errorf("%w: user and clipboard id are required", ErrValidation)
	}
	return v.inner.Get(ctx, userID, clipboardID)
}

func (v *clipboardValidationService) List(ctx context.Context, userID string, limit uint64) ([]models.ClipboardItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidUserID)
	}
	return v.inner.List(ctx, userID, limit)
}

func (v *clipboardValidationService) Syncs(ctx context.Context, userID, clipboardID string) ([]models.SyncRecord, error) {
	if userID == "" || clipboardID == "" {
		return nil, fmt.Errorf("%w: user and clipboard id are required", ErrValidation)
	}
	return v.inner.Syncs(ctx, userID, clipboardID)
}

func (v *clipboardValidationService) ToggleFavorite(ctx context.Context, userID, clipboardID string) (models.FavoriteToggleResponse, error) {
	if userID == "" || clipboardID == "" {
		return models.FavoriteToggleResponse{}, fmt.Errorf("%w: user and clipboard id are required", ErrValidation)
	}
	return v.inner.ToggleFavorite(ctx, userID, clipboardID)
}

func (v *clipboardValidationService) IsFavorite(ctx context.Context, userID, clipboardID string) (models.FavoriteToggleResponse, error) {
	if userID == "" || clipboardID == "" {
		return models.FavoriteToggleResponse{}, fmt.Errorf("%w: user and clipboard id are required", ErrValidation)
	}
	return v.inner.IsFavorite(ctx, userID, clipboardID)
}

func (v *clipboardValidationService) Favorites(ctx context.Context, userID string, limit, offset uint64) (models.FavoritesResponse, error) {
	if userID == "" {
		return models.FavoritesResponse{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidUserID)
	}
	return v.inner.Favorites(ctx, userID, limit, offset)
}

func (v *clipboardValidationService) Wrap(inner ClipboardService) ClipboardService {
	v.inner = inner
	return v
}

func validateIdentity(identity models.Identity) error {
	if identity.UserID == "" {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidUserID)
	}
	if identity.DeviceID == "" {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidDeviceID)
	}
	return nil
}
