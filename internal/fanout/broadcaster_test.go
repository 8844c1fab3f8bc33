package fanout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/presence"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── test sinks ──

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

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

type failingSink struct{ err error }

func (s failingSink) Deliver(context.Context, models.Frame) error { return s.err }

type blockingSink struct{}

func (blockingSink) Deliver(ctx context.Context, _ models.Frame) error {
	<-ctx.Done()
	return ctx.Err()
}

type panickingSink struct{}

func (panickingSink) Deliver(context.Context, models.Frame) error { panic("sink exploded") }

func newFrame(t *testing.T) models.Frame {
	t.Helper()
	f, err := models.NewFrame(models.EventClipboardNew, "", models.ClipboardNewPayload{ClipboardID: "c-1", ContentType: models.ContentText})
	require.NoError(t, err)
	return f
}

// ── Broadcast ──

func TestBroadcast_ExcludesOriginAndOtherUsers(t *testing.T) {
	reg := presence.NewRegistry(logger.Nop())
	origin := &recordingSink{}
	d2 := &recordingSink{}
	d3a := &recordingSink{}
	d3b := &recordingSink{}
	stranger := &recordingSink{}

	reg.Register("u1", "d1", origin)
	reg.Register("u1", "d2", d2)
	reg.Register("u1", "d3", d3a)
	reg.Register("u1", "d3", d3b)
	reg.Register("u2", "d9", stranger)

	b := NewBroadcaster(reg, time.Second, logger.Nop())
	outcomes := b.Broadcast(context.Background(), "u1", "d1", newFrame(t))

	require.Len(t, outcomes, 3)
	for _, o := range outcomes {
		assert.True(t, o.Delivered)
		assert.NoError(t, o.Err)
		assert.NotEqual(t, "d1", o.DeviceID)
	}
	assert.Zero(t, origin.count())
	assert.Zero(t, stranger.count())
	assert.Equal(t, 1, d2.count())
	assert.Equal(t, 1, d3a.count())
	assert.Equal(t, 1, d3b.count())
}

func TestBroadcast_NoTargets(t *testing.T) {
	reg := presence.NewRegistry(logger.Nop())
	reg.Register("u1", "d1", &recordingSink{})

	outcomes := NewBroadcaster(reg, time.Second, logger.Nop()).Broadcast(context.Background(), "u1", "d1", newFrame(t))
	assert.Empty(t, outcomes)
}

func TestBroadcast_IsolatesFailures(t *testing.T) {
	reg := presence.NewRegistry(logger.Nop())
	good := &recordingSink{}
	closed := errors.New("connection closed")

	reg.Register("u1", "bad", failingSink{err: closed})
	reg.Register("u1", "slow", blockingSink{})
	reg.Register("u1", "panics", panickingSink{})
	reg.Register("u1", "good", good)

	b := NewBroadcaster(reg, 50*time.Millisecond, logger.Nop())

	start := time.Now()
	outcomes := b.Broadcast(context.Background(), "u1", "", newFrame(t))
	assert.Less(t, time.Since(start), time.Second, "a slow target is bounded by the per-target timeout")

	byDevice := map[string]DeliveryOutcome{}
	for _, o := range outcomes {
		byDevice[o.DeviceID] = o
	}

	assert.True(t, byDevice["good"].Delivered)
	assert.Equal(t, 1, good.count())

	assert.False(t, byDevice["bad"].Delivered)
	assert.ErrorIs(t, byDevice["bad"].Err, ErrDelivery)
	assert.ErrorIs(t, byDevice["bad"].Err, closed)

	assert.False(t, byDevice["slow"].Delivered)
	assert.ErrorIs(t, byDevice["slow"].Err, context.DeadlineExceeded)

	assert.False(t, byDevice["panics"].Delivered)
	assert.ErrorIs(t, byDevice["panics"].Err, ErrDelivery)
}

func TestNotify_DeliversWithoutOutcomes(t *testing.T) {
	reg := presence.NewRegistry(logger.Nop())
	other := &recordingSink{}
	reg.Register("u1", "d2", other)

	frame := models.MustFrame(models.EventDeviceOnline, "", models.DevicePresencePayload{DeviceID: "d1"})
	NewBroadcaster(reg, time.Second, logger.Nop()).Notify(context.Background(), "u1", "d1", frame)

	require.Equal(t, 1, other.count())
	assert.Equal(t, models.EventDeviceOnline, other.frames[0].Type)
}

// ── DeviceOutcomes ──

func TestDeviceOutcomes(t *testing.T) {
	outcomes := []DeliveryOutcome{
		{ConnectionID: "c1", DeviceID: "d2", Delivered: false, Err: ErrDelivery},
		{ConnectionID: "c2", DeviceID: "d3", Delivered: false, Err: ErrDelivery},
		{ConnectionID: "c3", DeviceID: "d2", Delivered: true},
	}

	assert.Equal(t, []models.DeviceSyncOutcome{
		{DeviceID: "d2", Delivered: true},
		{DeviceID: "d3", Delivered: false},
	}, DeviceOutcomes(outcomes))

	assert.Empty(t, DeviceOutcomes(nil))
}
