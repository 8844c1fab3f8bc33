package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdentityResolver_Resolve(t *testing.T) {
	m := newAuthMocks(t)
	resolver := NewIdentityResolver(m.repos, testAppConfig)
	auth := NewAuthService(m.repos, testAppConfig, logger.Nop())

	user := activeUser
	user.PasswordHash = hashed(t, "secret1")

	var session models.Session
	m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
	m.devices.EXPECT().FindOrCreate(gomock.Any(), gomock.Any()).Return(activeDevice, nil)
	m.sessions.EXPECT().ReplaceSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.Session) (models.Session, error) {
			s.SessionID = "s1"
			session = s
			return s, nil
		})

	resp, err := auth.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "secret1", DeviceIdentifier: "laptop"})
	require.NoError(t, err)

	m.sessions.EXPECT().FindByTokenHash(gomock.Any(), session.TokenHash).Return(session, nil)
	m.users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(activeUser, nil)
	m.devices.EXPECT().GetDevice(gomock.Any(), "u1", "d1").Return(activeDevice, nil)
	m.devices.EXPECT().TouchLastActive(gomock.Any(), "d1", gomock.Any()).Return(errDB)

	identity, err := resolver.Resolve(context.Background(), resp.Token)
	require.NoError(t, err, "a failed touch does not reject the credential")
	assert.Equal(t, "u1", identity.UserID)
	assert.Equal(t, "d1", identity.DeviceID)
	assert.Equal(t, "s1", identity.SessionID)
	assert.WithinDuration(t, resp.ExpiresAt, identity.ExpiresAt, time.Second, "the access token expires before the session")
}

func TestIdentityResolver_Rejects(t *testing.T) {
	m := newAuthMocks(t)
	resolver := NewIdentityResolver(m.repos, testAppConfig)

	_, err := resolver.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = resolver.Resolve(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// End to end over SQLite: a token stops resolving once its session is
// replaced by a new login on the same device, or deleted by logout.
func TestIdentityResolver_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	db, err := store.NewConnect(ctx, config.DB{DSN: "sqlite://" + filepath.Join(t.TempDir(), "auth.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	repos := store.NewRepositories(db, logger.Nop())
	auth := NewAuthValidationService().Wrap(NewAuthService(repos, testAppConfig, logger.Nop()))
	resolver := NewIdentityResolver(repos, testAppConfig)

	_, err = auth.Register(ctx, models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)

	login := models.LoginRequest{Email: "ann@example.com", Password: "secret1", DeviceIdentifier: "laptop", DeviceType: models.DeviceLinux}
	first, err := auth.Login(ctx, login)
	require.NoError(t, err)

	identity, err := resolver.Resolve(ctx, first.Token)
	require.NoError(t, err)
	assert.Equal(t, first.Device.DeviceID, identity.DeviceID)

	second, err := auth.Login(ctx, login)
	require.NoError(t, err)
	assert.Equal(t, first.Device.DeviceID, second.Device.DeviceID, "same identifier, same device")

	_, err = resolver.Resolve(ctx, first.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated, "previous session was replaced")

	refreshed, err := auth.Refresh(ctx, models.RefreshRequest{RefreshToken: second.RefreshToken})
	require.NoError(t, err)
	_, err = auth.Refresh(ctx, models.RefreshRequest{RefreshToken: second.RefreshToken})
	assert.ErrorIs(t, err, ErrUnauthenticated, "refresh tokens are single use")

	identity, err = resolver.Resolve(ctx, refreshed.Token)
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, identity))
	_, err = resolver.Resolve(ctx, refreshed.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
