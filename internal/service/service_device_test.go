package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/mock"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDeviceService_ListMarksOnline(t *testing.T) {
	ctrl := gomock.NewController(t)
	devices := mock.NewMockDeviceRepository(ctrl)
	presence := mock.NewMockLivePresence(ctrl)

	svc := NewDeviceService(&store.Repositories{Devices: devices}, presence, nil, logger.Nop())

	devices.EXPECT().ListDevices(gomock.Any(), "u1").Return([]models.Device{{DeviceID: "d1"}, {DeviceID: "d2"}}, nil)
	presence.EXPECT().LiveDevices("u1").Return(map[string]struct{}{"d2": {}})

	list, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].Online)
	assert.True(t, list[1].Online)
}

func TestDeviceService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	devices := mock.NewMockDeviceRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	backlog := mock.NewMockBacklogSkipper(ctrl)

	svc := NewDeviceService(&store.Repositories{Devices: devices, Sessions: sessions}, nil, backlog, logger.Nop())
	id := models.Identity{UserID: "u1", DeviceID: "d1"}

	gomock.InOrder(
		devices.EXPECT().Deactivate(gomock.Any(), "u1", "d2").Return(nil),
		sessions.EXPECT().DeleteDeviceSessions(gomock.Any(), "d2").Return(int64(1), nil),
		backlog.EXPECT().SkipDevice(gomock.Any(), id, "d2").Return(int64(4), nil),
	)
	require.NoError(t, svc.Remove(context.Background(), id, "d2"))

	devices.EXPECT().Deactivate(gomock.Any(), "u1", "nope").Return(store.ErrDeviceNotFound)
	assert.ErrorIs(t, svc.Remove(context.Background(), id, "nope"), ErrNotFound)
}

func TestDeviceService_RemoveBacklogFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	devices := mock.NewMockDeviceRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	backlog := mock.NewMockBacklogSkipper(ctrl)

	svc := NewDeviceService(&store.Repositories{Devices: devices, Sessions: sessions}, nil, backlog, logger.Nop())
	id := models.Identity{UserID: "u1", DeviceID: "d1"}

	devices.EXPECT().Deactivate(gomock.Any(), "u1", "d2").Return(nil)
	sessions.EXPECT().DeleteDeviceSessions(gomock.Any(), "d2").Return(int64(0), nil)
	backlog.EXPECT().SkipDevice(gomock.Any(), id, "d2").Return(int64(0), ErrPersistence)

	assert.ErrorIs(t, svc.Remove(context.Background(), id, "d2"), ErrPersistence)
}

// Removal goes through the pipeline, so the removed device's backlog ends
// skipped in the ledger.
func TestDeviceService_RemoveSkipsBacklogThroughPipeline(t *testing.T) {
	env := newPipelineEnv(t, 3)
	ctx := context.Background()

	res, err := env.svc.Push(ctx, env.textPush(1, "while away"))
	require.NoError(t, err)
	require.Equal(t, models.SyncPending, env.status(t, res.Item.ID, 3))

	devices := NewDeviceService(env.repos, nil, env.svc, logger.Nop())
	require.NoError(t, devices.Remove(ctx, env.identity(1), env.device(3)))

	assert.Equal(t, models.SyncSkipped, env.status(t, res.Item.ID, 3))
	assert.Equal(t, models.SyncPending, env.status(t, res.Item.ID, 2))
}
