package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clip-sync/internal/validators"
	"github.com/MKhiriev/go-clip-sync/models"
)

type authValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &authValidationService{validator: validators.NewAuthValidator()}
}

func (v *authValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Register(ctx, req)
}

func (v *authValidationService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Login(ctx, req)
}

func (v *authValidationService) Refresh(ctx context.Context, req models.RefreshRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Refresh(ctx, req)
}

func (v *authValidationService) Logout(ctx context.Context, identity models.Identity) error {
	if identity.SessionID == "" {
		return fmt.Errorf("%w: no session", ErrUnauthenticated)
	}
	return v.inner.Logout(ctx, identity)
}

func (v *authValidationService) LogoutAll(ctx context.Context, identity models.Identity) (int64, error) {
	if err := validateIdentity(identity); err != nil {
		return 0, err
	}
	return v.inner.LogoutAll(ctx, identity)
}

func (v *authValidationService) Me(ctx context.Context, identity models.Identity) (models.MeResponse, error) {
	if err := validateIdentity(identity); err != nil {
		return models.MeResponse{}, err
	}
	return v.inner.Me(ctx, identity)
}

func (v *authValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
