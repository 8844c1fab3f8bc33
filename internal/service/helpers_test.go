package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/fanout"
	"github.com/MKhiriev/go-clip-sync/internal/idempotency"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/presence"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/require"
)

// ── sinks ──

type recordingSink struct {
	mu     sync.Mutex
	frames []models.Frame
}

func (s *recordingSink) Deliver(_ context.Context, f models.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, f)
	return nil
}

func (s *recordingSink) clipboardIDs(t *testing.T) []string {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for _, f := range s.frames {
		if f.Type != models.EventClipboardNew {
			continue
		}
		var p models.ClipboardNewPayload
		require.NoError(t, f.Decode(&p))
		ids = append(ids, p.ClipboardID)
	}
	return ids
}

var errSinkClosed = errors.New("connection closed")

type closedSink struct{}

func (closedSink) Deliver(context.Context, models.Frame) error { return errSinkClosed }

// flakySink accepts the first n frames and then fails.
type flakySink struct {
	recordingSink
	n int
}

func (s *flakySink) Deliver(ctx context.Context, f models.Frame) error {
	s.mu.Lock()
	full := len(s.frames) >= s.n
	s.mu.Unlock()
	if full {
		return errSinkClosed
	}
	return s.recordingSink.Deliver(ctx, f)
}

// ── environment over a real SQLite database ──

type pipelineEnv struct {
	repos    *store.Repositories
	registry *presence.Registry
	keys     idempotency.Store
	svc      ClipboardService

	userID  string
	devices []string
}

func newPipelineEnv(t *testing.T, deviceCount int) *pipelineEnv {
	t.Helper()
	ctx := context.Background()

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "clip.db")
	db, err := store.NewConnect(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	repos := store.NewRepositories(db, logger.Nop())
	registry := presence.NewRegistry(logger.Nop())
	keys := idempotency.NewMemoryStore(100, time.Minute)

	broadcaster := fanout.NewBroadcaster(registry, time.Second, logger.Nop())
	svc := NewClipboardValidationService().Wrap(NewClipboardService(repos, broadcaster, keys, time.Second, logger.Nop()))

	user, err := repos.Users.CreateUser(ctx, models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	env := &pipelineEnv{repos: repos, registry: registry, keys: keys, svc: svc, userID: user.UserID}
	for i := 1; i <= deviceCount; i++ {
		d, err := repos.Devices.FindOrCreate(ctx, models.Device{
			UserID:     user.UserID,
			Name:       fmt.Sprintf("D%d", i),
			Identifier: fmt.Sprintf("device-%d", i),
			Type:       models.DeviceLinux,
		})
		require.NoError(t, err)
		env.devices = append(env.devices, d.DeviceID)
	}
	return env
}

func (e *pipelineEnv) device(i int) string { return e.devices[i-1] }

func (e *pipelineEnv) identity(i int) models.Identity {
	return models.Identity{UserID: e.userID, DeviceID: e.device(i)}
}

func (e *pipelineEnv) textPush(origin int, text string) models.PushRequest {
	return models.PushRequest{
		UserID:         e.userID,
		OriginDeviceID: e.device(origin),
		ContentType:    models.ContentText,
		PayloadRef:     text,
	}
}

func (e *pipelineEnv) status(t *testing.T, clipboardID string, device int) models.SyncStatus {
	t.Helper()
	rec, err := e.repos.SyncLedger.GetRecord(context.Background(), clipboardID, e.device(device))
	require.NoError(t, err)
	return rec.Status
}

func outcomeFor(outcomes []models.DeviceSyncOutcome, deviceID string) (models.DeviceSyncOutcome, bool) {
	for _, o := range outcomes {
		if o.DeviceID == deviceID {
			return o, true
		}
	}
	return models.DeviceSyncOutcome{}, false
}
