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
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the
// access/refresh token pair issued to each device. Tokens are stored only
// as HMAC-SHA256 fingerprints.
type authService struct {
	users    store.UserRepository
	devices  store.DeviceRepository
	sessions store.SessionRepository

	// hashKey is the HMAC secret used to fingerprint tokens before they
	// are stored or looked up.
	hashKey string

	// passwordCost is the bcrypt cost applied at registration.
	passwordCost int

	tokenSignKey         string
	tokenIssuer          string
	tokenDuration        time.Duration
	refreshTokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(repos *store.Repositories, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordHashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	refresh := cfg.RefreshTokenDuration
	if refresh < cfg.TokenDuration {
		refresh = cfg.TokenDuration
	}

	return &authService{
		users:                repos.Users,
		devices:              repos.Devices,
		sessions:             repos.Sessions,
		hashKey:              cfg.HashKey,
		passwordCost:         cost,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		refreshTokenDuration: refresh,
		now:                  time.Now,
		logger:               logger,
	}
}

// Register creates a new active account with a bcrypt password hash.
//
// Returns the persisted user without credential material, or:
//   - ErrConflict if the email is already registered.
//   - ErrPersistence for any other storage failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.passwordCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("failed to hash password")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.users.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return user.Sanitized(), nil
}

// Login verifies the credentials, finds or creates the device by its
// identifier and replaces the previous session of that device.
//
// Unknown email, wrong password and disabled accounts all return
// ErrInvalidCredentials so the response does not reveal which one failed.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrInvalidCredentials)
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().Str("func", "*authService.Login").Str("user_id", user.UserID).Msg("wrong password")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrInvalidCredentials)
	}
	if !user.IsActive {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrInvalidCredentials)
	}

	name := req.DeviceName
	if name == "" {
		name = req.DeviceIdentifier
	}
	deviceType := req.DeviceType
	if deviceType == "" {
		deviceType = models.DefaultDeviceType
	}

	device, err := a.devices.FindOrCreate(ctx, models.Device{
		UserID:     user.UserID,
		Name:       name,
		Identifier: req.DeviceIdentifier,
		Type:       deviceType,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.UserID).Msg("device registration failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return a.issue(ctx, user, device)
}

// Refresh rotates both tokens of a live session. The presented refresh
// token stops working once the new pair is issued.
func (a *authService) Refresh(ctx context.Context, req models.RefreshRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(req.RefreshToken, a.tokenSignKey, a.tokenIssuer, models.RefreshToken)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	session, err := a.sessions.FindByRefreshHash(ctx, utils.HashString(req.RefreshToken, a.hashKey))
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}
		log.Err(err).Str("func", "*authService.Refresh").Msg("session lookup failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if session.Expired(a.now()) {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrSessionExpired)
	}
	if session.UserID != token.UserID || session.DeviceID != token.DeviceID {
		return models.AuthResponse{}, fmt.Errorf("%w: token does not match session", ErrUnauthenticated)
	}

	user, device, err := loadActive(ctx, a.users, a.devices, session.UserID, session.DeviceID)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return a.issue(ctx, user, device)
}

func (a *authService) Logout(ctx context.Context, identity models.Identity) error {
	if err := a.sessions.DeleteSession(ctx, identity.SessionID); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// LogoutAll removes every session of the user and reports how many were
// removed.
func (a *authService) LogoutAll(ctx context.Context, identity models.Identity) (int64, error) {
	n, err := a.sessions.DeleteUserSessions(ctx, identity.UserID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	logger.FromContext(ctx).Info().
		Str("func", "*authService.LogoutAll").
		Str("user_id", identity.UserID).
		Int64("sessions", n).
		Msg("all sessions removed")
	return n, nil
}

func (a *authService) Me(ctx context.Context, identity models.Identity) (models.MeResponse, error) {
	user, err := a.users.FindUserByID(ctx, identity.UserID)
	if err != nil {
		return models.MeResponse{}, lookupError(err)
	}
	device, err := a.devices.GetDevice(ctx, identity.UserID, identity.DeviceID)
	if err != nil {
		return models.MeResponse{}, lookupError(err)
	}
	return models.MeResponse{User: user.Sanitized(), Device: device}, nil
}

// issue signs a new token pair for device and stores it as the only
// session of that device.
func (a *authService) issue(ctx context.Context, user models.User, device models.Device) (models.AuthResponse, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, device.DeviceID, models.AccessToken, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, device.DeviceID, models.RefreshToken, a.refreshTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	_, err = a.sessions.ReplaceSession(ctx, models.Session{
		UserID:           user.UserID,
		DeviceID:         device.DeviceID,
		TokenHash:        utils.HashString(access.SignedString, a.hashKey),
		RefreshTokenHash: utils.HashString(refresh.SignedString, a.hashKey),
		ExpiresAt:        a.now().Add(a.refreshTokenDuration),
	})
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return models.AuthResponse{
		User:         user.Sanitized(),
		Device:       device,
		Token:        access.SignedString,
		RefreshToken: refresh.SignedString,
		ExpiresAt:    tokenExpiry(access),
	}, nil
}

// loadActive fetches the user and device of a session and fails with
// ErrUnauthenticated when either is gone or inactive.
func loadActive(ctx context.Context, users store.UserRepository, devices store.DeviceRepository, userID, deviceID string) (models.User, models.Device, error) {
	user, err := users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, models.Device{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}
		return models.User{}, models.Device{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	device, err := devices.GetDevice(ctx, userID, deviceID)
	if err != nil {
		if errors.Is(err, store.ErrDeviceNotFound) {
			return models.User{}, models.Device{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}
		return models.User{}, models.Device{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if !user.IsActive || !device.IsActive {
		return models.User{}, models.Device{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrInactiveAccount)
	}
	return user, device, nil
}

func tokenExpiry(t models.Token) time.Time {
	if t.Token == nil {
		return time.Time{}
	}
	exp, err := t.Token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// lookupError maps a repository "not found" to ErrNotFound and anything
// else to ErrPersistence.
func lookupError(err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrDeviceNotFound),
		errors.Is(err, store.ErrClipboardItemNotFound),
		errors.Is(err, store.ErrSyncRecordNotFound),
		errors.Is(err, store.ErrSessionNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
}
