package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceRepository_FindOrCreate(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	repo := f.repos.Devices

	created, err := repo.FindOrCreate(ctx, models.Device{UserID: f.user.UserID, Name: "Phone", Identifier: "phone-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.DeviceID)
	assert.Equal(t, models.DefaultDeviceType, created.Type)
	assert.True(t, created.IsActive)

	require.NoError(t, repo.Deactivate(ctx, f.user.UserID, created.DeviceID))
	f.clock.Advance(time.Minute)

	again, err := repo.FindOrCreate(ctx, models.Device{UserID: f.user.UserID, Name: "My phone", Identifier: "phone-1", Type: models.DeviceIOS})
	require.NoError(t, err)
	assert.Equal(t, created.DeviceID, again.DeviceID, "same identifier maps to the same device")
	assert.Equal(t, "My phone", again.Name)
	assert.Equal(t, models.DeviceIOS, again.Type)
	assert.True(t, again.IsActive, "logging in re-activates the device")
	assert.True(t, again.LastActive.After(created.LastActive))

	devices, err := repo.ListDevices(ctx, f.user.UserID)
	require.NoError(t, err)
	assert.Len(t, devices, 1)
}

func TestDeviceRepository_OwnershipAndDeactivate(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	repo := f.repos.Devices

	_, err := repo.GetDevice(ctx, "someone-else", f.deviceID(0))
	assert.ErrorIs(t, err, ErrDeviceNotFound)

	assert.ErrorIs(t, repo.Deactivate(ctx, "someone-else", f.deviceID(0)), ErrDeviceNotFound)
	require.NoError(t, repo.Deactivate(ctx, f.user.UserID, f.deviceID(0)))

	ids, err := f.repos.Clipboard.ListDevicesForUser(ctx, f.user.UserID)
	require.NoError(t, err)
	assert.Equal(t, []string{f.deviceID(1)}, ids, "inactive devices get no ledger rows")
}

func TestDeviceRepository_TouchLastActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db, logger.Nop())
	at := baseTime.Add(time.Hour)

	mock.ExpectExec(`UPDATE devices SET last_active = \$1 WHERE id = \$2`).
		WithArgs(at, "d-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.TouchLastActive(context.Background(), "d-1", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
