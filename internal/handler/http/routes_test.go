package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── public routes ──

func TestHealth(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.realtime.connections = 3

	rr := env.do(t, http.MethodGet, "/", nil, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.HealthResponse{Status: "ok", Version: "1.2.3", Connections: 3}, decode[models.HealthResponse](t, rr))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	rr := env.do(t, http.MethodGet, "/api/version", nil, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
}

func TestWebSocketRouteIsMounted(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	rr := env.do(t, http.MethodGet, "/ws", nil, false)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestUnknownMethodIsNotFound(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	rr := env.do(t, http.MethodGet, "/api/auth/login", nil, false)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── auth ──

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setup      func(env *testEnv)
		wantStatus int
	}{
		{
			name: "created",
			body: models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"},
			setup: func(env *testEnv) {
				env.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{UserID: "u1", Email: "ann@example.com"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{name: "bad json", body: "{", setup: func(*testEnv) {}, wantStatus: http.StatusBadRequest},
		{
			name: "validation",
			body: models.RegisterRequest{},
			setup: func(env *testEnv) {
				env.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrValidation)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "email taken",
			body: models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"},
			setup: func(env *testEnv) {
				env.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrConflict)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "database down",
			body: models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"},
			setup: func(env *testEnv) {
				env.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, errors.Join(service.ErrPersistence, errors.New("dial tcp")))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, config.Server{})
			tt.setup(env)

			rr := env.do(t, http.MethodPost, "/api/auth/register", tt.body, false)
			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rr.Body.String(), "dial tcp", "server errors do not leak details")
			}
		})
	}
}

func TestLoginAndRefresh(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	resp := models.AuthResponse{Token: "access", RefreshToken: "refresh", Device: models.Device{DeviceID: "d1"}}

	env.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ann@example.com", Password: "secret1", DeviceIdentifier: "laptop"}).Return(resp, nil)
	rr := env.do(t, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "ann@example.com", Password: "secret1", DeviceIdentifier: "laptop"}, false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer access", rr.Header().Get("Authorization"))
	assert.Equal(t, "refresh", decode[models.AuthResponse](t, rr).RefreshToken)

	env.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, service.ErrUnauthenticated)
	rr = env.do(t, http.MethodPost, "/api/auth/login", models.LoginRequest{}, false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	env.auth.EXPECT().Refresh(gomock.Any(), models.RefreshRequest{RefreshToken: "refresh"}).Return(resp, nil)
	rr = env.do(t, http.MethodPost, "/api/auth/refresh", models.RefreshRequest{RefreshToken: "refresh"}, false)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuthMiddleware(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing", header: ""},
		{name: "no token part", header: "Bearer"},
		{name: "empty token", header: "Bearer "},
		{name: "rejected token", header: "Bearer stale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := newRecorder()
			env.router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantErr   error
	}{
		{header: "Bearer abc", wantToken: "abc"},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer ", wantErr: ErrEmptyToken},
		{header: "Bearer abc extra", wantToken: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestLogoutAndLogoutAll(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	env.auth.EXPECT().Logout(gomock.Any(), callerIdentity).Return(nil)
	rr := env.do(t, http.MethodPost, "/api/auth/logout", nil, true)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	env.auth.EXPECT().LogoutAll(gomock.Any(), callerIdentity).Return(int64(3), nil)
	rr = env.do(t, http.MethodPost, "/api/auth/logout-all", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]int64{"sessions": 3, "connections": 2}, decode[map[string]int64](t, rr))
	assert.Equal(t, []string{"u1"}, env.realtime.evictedUser)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.auth.EXPECT().Me(gomock.Any(), callerIdentity).Return(models.MeResponse{User: models.User{UserID: "u1"}}, nil)

	rr := env.do(t, http.MethodGet, "/api/auth/me", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "u1", decode[models.MeResponse](t, rr).User.UserID)
}

// ── devices ──

func TestDevices(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	env.devices.EXPECT().List(gomock.Any(), "u1").Return([]models.Device{{DeviceID: "d1", Online: true}, {DeviceID: "d2"}}, nil)
	rr := env.do(t, http.MethodGet, "/api/devices", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]models.Device](t, rr), 2)

	env.devices.EXPECT().Remove(gomock.Any(), callerIdentity, "d2").Return(nil)
	rr = env.do(t, http.MethodDelete, "/api/devices/d2", nil, true)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, []string{"u1/d2"}, env.realtime.evictedDev)

	env.devices.EXPECT().Remove(gomock.Any(), callerIdentity, "nope").Return(service.ErrNotFound)
	rr = env.do(t, http.MethodDelete, "/api/devices/nope", nil, true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Len(t, env.realtime.evictedDev, 1, "nothing is evicted when removal fails")
}

// ── clipboard ──

func TestPush(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	env.clipboard.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.PushRequest) (models.PushResult, error) {
			assert.Equal(t, "u1", req.UserID)
			assert.Equal(t, "d1", req.OriginDeviceID, "origin comes from the credential, not the body")
			assert.Equal(t, "retry-1", req.IdempotencyKey)
			return models.PushResult{
				Item:    models.ClipboardItem{ID: "c-1", ContentType: models.ContentText},
				Targets: []models.DeviceSyncOutcome{{DeviceID: "d2", Delivered: true, Status: models.SyncSynced}},
			}, nil
		})

	req := newJSONRequest(t, http.MethodPost, "/api/clipboard", models.ClipboardPushPayload{
		ContentType: models.ContentText, PayloadRef: "hi", OriginDeviceID: "spoofed",
	})
	req.Header.Set("Authorization", "Bearer "+validToken)
	req.Header.Set("Idempotency-Key", "retry-1")
	rr := newRecorder()
	env.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	result := decode[models.PushResult](t, rr)
	assert.Equal(t, "c-1", result.Item.ID)
	assert.Equal(t, models.SyncSynced, result.Targets[0].Status)
}

func TestPush_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: service.ErrValidation, status: http.StatusBadRequest},
		{err: service.ErrDuplicatePush, status: http.StatusConflict},
		{err: service.ErrPersistence, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			env := newTestEnv(t, config.Server{})
			env.clipboard.EXPECT().Push(gomock.Any(), gomock.Any()).Return(models.PushResult{}, tt.err)

			rr := env.do(t, http.MethodPost, "/api/clipboard", models.ClipboardPushPayload{
				ContentType: models.ContentText, PayloadRef: "hi",
			}, true)
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestClipboardReads(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	env.clipboard.EXPECT().List(gomock.Any(), "u1", uint64(5)).Return([]models.ClipboardItem{{ID: "c-1", ContentType: models.ContentText}}, nil)
	rr := env.do(t, http.MethodGet, "/api/clipboard?limit=5", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, http.MethodGet, "/api/clipboard?limit=-1", nil, true)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	env.clipboard.EXPECT().Get(gomock.Any(), "u1", "c-1").Return(models.ClipboardItem{ID: "c-1", ContentType: models.ContentText}, nil)
	rr = env.do(t, http.MethodGet, "/api/clipboard/c-1", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)

	env.clipboard.EXPECT().Get(gomock.Any(), "u1", "gone").Return(models.ClipboardItem{}, service.ErrNotFound)
	rr = env.do(t, http.MethodGet, "/api/clipboard/gone", nil, true)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	env.clipboard.EXPECT().Syncs(gomock.Any(), "u1", "c-1").Return([]models.SyncRecord{{TargetDeviceID: "d2", Status: models.SyncPending}}, nil)
	rr = env.do(t, http.MethodGet, "/api/clipboard/c-1/syncs", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]models.SyncRecord](t, rr), 1)
}

func TestFavoriteRoutes(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	env.clipboard.EXPECT().ToggleFavorite(gomock.Any(), "u1", "c-1").
		Return(models.FavoriteToggleResponse{ClipboardID: "c-1", IsFavorite: true}, nil)
	rr := env.do(t, http.MethodPost, "/api/clipboard/c-1/favorite", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[models.FavoriteToggleResponse](t, rr).IsFavorite)

	env.clipboard.EXPECT().IsFavorite(gomock.Any(), "u1", "c-1").
		Return(models.FavoriteToggleResponse{ClipboardID: "c-1", IsFavorite: true}, nil)
	rr = env.do(t, http.MethodGet, "/api/clipboard/c-1/favorite", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)

	env.clipboard.EXPECT().ToggleFavorite(gomock.Any(), "u1", "gone").
		Return(models.FavoriteToggleResponse{}, service.ErrNotFound)
	rr = env.do(t, http.MethodPost, "/api/clipboard/gone/favorite", nil, true)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	env.clipboard.EXPECT().Favorites(gomock.Any(), "u1", uint64(10), uint64(20)).Return(models.FavoritesResponse{
		Items: []models.ClipboardFavorite{{
			ID: "f-1", ClipboardID: "c-1",
			Item: models.ClipboardItem{ID: "c-1", ContentType: models.ContentText, PayloadRef: "kept"},
		}},
		Total: 21, Limit: 10, Offset: 20,
	}, nil)
	rr = env.do(t, http.MethodGet, "/api/clipboard/favorites?limit=10&offset=20", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	page := decode[models.FavoritesResponse](t, rr)
	assert.Equal(t, 21, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "kept", page.Items[0].Item.PayloadRef)

	rr = env.do(t, http.MethodGet, "/api/clipboard/favorites?offset=x", nil, true)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = env.do(t, http.MethodPost, "/api/clipboard/c-1/favorite", nil, false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ── sync ──

func TestPendingAndAck(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	env.clipboard.EXPECT().Pending(gomock.Any(), callerIdentity).Return([]models.PendingSync{
		{Item: models.ClipboardItem{ID: "c-1", OriginDeviceID: "d2", ContentType: models.ContentText}},
		{Item: models.ClipboardItem{ID: "c-2", OriginDeviceID: "d2", ContentType: models.ContentText}},
	}, nil)
	rr := env.do(t, http.MethodGet, "/api/sync/pending", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	pending := decode[models.PendingResponse](t, rr)
	assert.Equal(t, 2, pending.Length)
	assert.Equal(t, "c-1", pending.Items[0].ClipboardID)
	assert.Equal(t, "d2", pending.Items[0].DeviceID)

	env.clipboard.EXPECT().Ack(gomock.Any(), callerIdentity, models.AckRequest{ClipboardIDs: []string{"c-1", "c-2"}}).
		Return(models.AckResponse{Synced: 2}, nil)
	rr = env.do(t, http.MethodPost, "/api/sync/ack", models.AckRequest{ClipboardIDs: []string{"c-1", "c-2"}}, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, decode[models.AckResponse](t, rr).Synced)
}
