package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/mock"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ──

type fakeRealtime struct {
	mu          sync.Mutex
	evictedUser []string
	evictedDev  []string
	connections int
}

func (f *fakeRealtime) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusTeapot)
}

func (f *fakeRealtime) EvictUser(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evictedUser = append(f.evictedUser, userID)
	return 2
}

func (f *fakeRealtime) EvictDevice(userID, deviceID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evictedDev = append(f.evictedDev, userID+"/"+deviceID)
	return 1
}

func (f *fakeRealtime) Connections() int { return f.connections }

type testEnv struct {
	auth      *mock.MockAuthService
	resolver  *mock.MockIdentityResolver
	devices   *mock.MockDeviceService
	clipboard *mock.MockClipboardService
	appInfo   *mock.MockAppInfoService
	realtime  *fakeRealtime
	handler   *Handler
	router    http.Handler
}

var callerIdentity = models.Identity{UserID: "u1", DeviceID: "d1", SessionID: "s1"}

const validToken = "good-token"

func newTestEnv(t *testing.T, cfg config.Server) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		auth:      mock.NewMockAuthService(ctrl),
		resolver:  mock.NewMockIdentityResolver(ctrl),
		devices:   mock.NewMockDeviceService(ctrl),
		clipboard: mock.NewMockClipboardService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
		realtime:  &fakeRealtime{},
	}

	env.resolver.EXPECT().Resolve(gomock.Any(), validToken).Return(callerIdentity, nil).AnyTimes()
	env.resolver.EXPECT().Resolve(gomock.Any(), gomock.Not(validToken)).Return(models.Identity{}, service.ErrUnauthenticated).AnyTimes()
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3").AnyTimes()

	env.handler = NewHandler(&service.Services{
		AuthService:      env.auth,
		IdentityResolver: env.resolver,
		DeviceService:    env.devices,
		ClipboardService: env.clipboard,
		AppInfoService:   env.appInfo,
	}, env.realtime, cfg, logger.Nop())
	t.Cleanup(env.handler.Close)
	env.router = env.handler.Init()

	return env
}

// do sends a request through the full router. body may be nil, a string
// sent as-is, or a value encoded as JSON.
func (e *testEnv) do(t *testing.T, method, path string, body any, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+validToken)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func newRecorder() *httptest.ResponseRecorder { return httptest.NewRecorder() }

func newJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(method, path, bytes.NewReader(raw))
}
