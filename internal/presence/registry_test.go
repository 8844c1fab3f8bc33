package presence

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopSink struct{}

func (nopSink) Deliver(context.Context, models.Frame) error { return nil }

func deviceIDs(conns []Connection) []string {
	out := make([]string, 0, len(conns))
	for _, c := range conns {
		out = append(out, c.DeviceID)
	}
	return out
}

// ── Register / Unregister ──

func TestRegistry_RegisterDistinctConnections(t *testing.T) {
	r := NewRegistry(logger.Nop())

	a := r.Register("u1", "d1", nopSink{})
	b := r.Register("u1", "d1", nopSink{})

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, r.Count())
	assert.Len(t, r.DeviceConnections("u1", "d1"), 2)
}

func TestRegistry_UnregisterOnce(t *testing.T) {
	r := NewRegistry(logger.Nop())
	conn := r.Register("u1", "d1", nopSink{})

	removed, ok := r.Unregister(conn.ID)
	require.True(t, ok)
	assert.Equal(t, conn.ID, removed.ID)
	assert.Equal(t, "d1", removed.DeviceID)

	_, ok = r.Unregister(conn.ID)
	assert.False(t, ok, "second unregister is a no-op")

	_, ok = r.Unregister("never-registered")
	assert.False(t, ok)
	assert.Zero(t, r.Count())
	assert.False(t, r.IsDeviceLive("u1", "d1"))
}

// ── queries ──

func TestRegistry_LiveConnections(t *testing.T) {
	r := NewRegistry(logger.Nop())
	r.Register("u1", "d1", nopSink{})
	r.Register("u1", "d2", nopSink{})
	r.Register("u1", "d3", nopSink{})
	r.Register("u2", "d9", nopSink{})

	tests := []struct {
		name      string
		user      string
		excluding string
		want      []string
	}{
		{name: "excludes origin device", user: "u1", excluding: "d2", want: []string{"d1", "d3"}},
		{name: "empty exclusion keeps all", user: "u1", excluding: "", want: []string{"d1", "d2", "d3"}},
		{name: "other users are invisible", user: "u2", excluding: "d1", want: []string{"d9"}},
		{name: "unknown user", user: "u3", excluding: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deviceIDs(r.LiveConnections(tt.user, tt.excluding)))
		})
	}
}

func TestRegistry_SnapshotIsACopy(t *testing.T) {
	r := NewRegistry(logger.Nop())
	conn := r.Register("u1", "d1", nopSink{})

	snapshot := r.LiveConnections("u1", "")
	r.Unregister(conn.ID)

	require.Len(t, snapshot, 1)
	assert.Equal(t, conn.ID, snapshot[0].ID)
	assert.Empty(t, r.LiveConnections("u1", ""))
}

func TestRegistry_IsDeviceLiveWithTwoTabs(t *testing.T) {
	r := NewRegistry(logger.Nop())
	a := r.Register("u1", "d1", nopSink{})
	r.Register("u1", "d1", nopSink{})

	r.Unregister(a.ID)
	assert.True(t, r.IsDeviceLive("u1", "d1"), "second tab keeps the device live")
	assert.Equal(t, map[string]struct{}{"d1": {}}, r.LiveDevices("u1"))
}

func TestRegistry_Close(t *testing.T) {
	r := NewRegistry(logger.Nop())
	r.Register("u1", "d1", nopSink{})
	r.Register("u2", "d2", nopSink{})

	closed := r.Close()

	assert.Len(t, closed, 2)
	assert.Zero(t, r.Count())
	assert.Empty(t, r.LiveConnections("u1", ""))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry(logger.Nop())

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			device := fmt.Sprintf("d%d", i%5)
			conn := r.Register("u1", device, nopSink{})
			_ = r.LiveConnections("u1", device)
			_ = r.IsDeviceLive("u1", device)
			r.Unregister(conn.ID)
		}()
	}
	wg.Wait()

	assert.Zero(t, r.Count())
}
