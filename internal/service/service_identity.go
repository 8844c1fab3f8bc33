package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
)

type identityResolver struct {
	users    store.UserRepository
	devices  store.DeviceRepository
	sessions store.SessionRepository

	hashKey      string
	tokenSignKey string
	tokenIssuer  string

	now func() time.Time
}

func NewIdentityResolver(repos *store.Repositories, cfg config.App) IdentityResolver {
	return &identityResolver{
		users:        repos.Users,
		devices:      repos.Devices,
		sessions:     repos.Sessions,
		hashKey:      cfg.HashKey,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		now:          time.Now,
	}
}

// Resolve accepts an access token only when its signature, issuer and
// expiry are valid, its fingerprint matches a stored unexpired session of
// the same user and device, and both the user and the device are active.
// The device's last_active is touched on success.
func (r *identityResolver) Resolve(ctx context.Context, credential string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if credential == "" {
		return models.Identity{}, fmt.Errorf("%w: empty credential", ErrUnauthenticated)
	}

	token, err := utils.ValidateAndParseJWTToken(credential, r.tokenSignKey, r.tokenIssuer, models.AccessToken)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	session, err := r.sessions.FindByTokenHash(ctx, utils.HashString(credential, r.hashKey))
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}
		log.Err(err).Str("func", "*identityResolver.Resolve").Msg("session lookup failed")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	now := r.now()
	if session.Expired(now) {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrSessionExpired)
	}
	if session.UserID != token.UserID || session.DeviceID != token.DeviceID {
		return models.Identity{}, fmt.Errorf("%w: token does not match session", ErrUnauthenticated)
	}

	if _, _, err = loadActive(ctx, r.users, r.devices, session.UserID, session.DeviceID); err != nil {
		return models.Identity{}, err
	}

	if err = r.devices.TouchLastActive(ctx, session.DeviceID, now); err != nil {
		log.Warn().Err(err).Str("func", "*identityResolver.Resolve").
			Str("device_id", session.DeviceID).
			Msg("failed to touch device")
	}

	expiresAt := session.ExpiresAt
	if exp := tokenExpiry(token); !exp.IsZero() && exp.Before(expiresAt) {
		expiresAt = exp
	}

	return models.Identity{
		UserID:    session.UserID,
		DeviceID:  session.DeviceID,
		SessionID: session.SessionID,
		ExpiresAt: expiresAt,
	}, nil
}
