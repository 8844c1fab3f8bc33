package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/handler"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steps records the order in which components were started and stopped.
type steps struct {
	mu  sync.Mutex
	log []string
}

func (s *steps) add(step string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = append(s.log, step)
}

func (s *steps) all() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.log...)
}

type fakeRealtime struct {
	steps *steps
	err   error
}

func (f fakeRealtime) ServeHTTP(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }
func (f fakeRealtime) EvictUser(string) int                             { return 0 }
func (f fakeRealtime) EvictDevice(string, string) int                   { return 0 }
func (f fakeRealtime) Connections() int                                 { return 0 }
func (f fakeRealtime) Shutdown(context.Context) error {
	f.steps.add("realtime")
	return f.err
}

type fakeWorkers struct{ steps *steps }

func (f fakeWorkers) Start(context.Context) { f.steps.add("workers started") }
func (f fakeWorkers) Stop()                 { f.steps.add("workers stopped") }

type fakeCloser struct {
	name  string
	steps *steps
	err   error
}

func (f fakeCloser) Close() error {
	f.steps.add(f.name)
	return f.err
}

func newTestServer(t *testing.T, rt fakeRealtime, closers ...fakeCloser) *server {
	t.Helper()

	appInfo, err := service.NewAppInfoService(config.App{Version: "test"}, logger.Nop())
	require.NoError(t, err)

	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: appInfo}, rt, cfg, logger.Nop())
	require.NoError(t, err)

	deps := Dependencies{Realtime: rt, Workers: fakeWorkers{steps: rt.steps}}
	for _, c := range closers {
		deps.Closers = append(deps.Closers, c)
	}

	srv, err := NewServer(handlers, deps, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_RequiresHTTP(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, Dependencies{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, Dependencies{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesUntilCancelledThenShutsDownInOrder(t *testing.T) {
	st := &steps{}
	srv := newTestServer(t, fakeRealtime{steps: st},
		fakeCloser{name: "idempotency", steps: st},
		fakeCloser{name: "db", steps: st},
	)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Equal(t, []string{"workers started", "realtime", "workers stopped", "idempotency", "db"}, st.all())

	_, err = http.Get(url)
	assert.Error(t, err, "listener is closed")

	srv.Shutdown()
	assert.Len(t, st.all(), 5, "second shutdown is a no-op")
}

func TestServer_ShutdownReportsErrors(t *testing.T) {
	st := &steps{}
	srv := newTestServer(t, fakeRealtime{steps: st, err: errors.New("stuck")},
		fakeCloser{name: "db", steps: st, err: errors.New("busy")},
	)

	err := srv.shutdown(context.Background())
	require.ErrorIs(t, err, errShutdownIncomplete)
	assert.ErrorContains(t, err, "stuck")
	assert.ErrorContains(t, err, "busy")
	assert.Contains(t, st.all(), "db", "closers run even after an earlier failure")
}

func TestServer_ListenerFailure(t *testing.T) {
	st := &steps{}
	srv := newTestServer(t, fakeRealtime{steps: st})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	err = srv.serve(context.Background(), ln)
	assert.Error(t, err)
	assert.Contains(t, st.all(), "realtime", "a failed listener still shuts the rest down")
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := newTestServer(t, fakeRealtime{steps: &steps{}})
	srv.address = ln.Addr().String()

	assert.Error(t, srv.run(context.Background()))
}
