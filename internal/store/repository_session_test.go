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

func TestSessionRepository_ReplaceKeepsOnePerDevice(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	repo := f.repos.Sessions
	expires := baseTime.Add(24 * time.Hour)

	first, err := repo.ReplaceSession(ctx, models.Session{
		UserID: f.user.UserID, DeviceID: f.deviceID(0), TokenHash: "t1", RefreshTokenHash: "r1", ExpiresAt: expires,
	})
	require.NoError(t, err)

	second, err := repo.ReplaceSession(ctx, models.Session{
		UserID: f.user.UserID, DeviceID: f.deviceID(0), TokenHash: "t2", RefreshTokenHash: "r2", ExpiresAt: expires,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)

	_, err = repo.FindByTokenHash(ctx, "t1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	found, err := repo.FindByRefreshHash(ctx, "r2")
	require.NoError(t, err)
	assert.Equal(t, second.SessionID, found.SessionID)
	assert.True(t, expires.Equal(found.ExpiresAt))

	_, err = repo.ReplaceSession(ctx, models.Session{
		UserID: f.user.UserID, DeviceID: f.deviceID(1), TokenHash: "t3", RefreshTokenHash: "r3", ExpiresAt: expires,
	})
	require.NoError(t, err)

	n, err := repo.DeleteUserSessions(ctx, f.user.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestSessionRepository_DeleteSession(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectExec(`DELETE FROM sessions WHERE id = \$1`).
		WithArgs("s-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM sessions WHERE id = \$1`).
		WithArgs("s-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteSession(context.Background(), "s-1"))
	assert.ErrorIs(t, repo.DeleteSession(context.Background(), "s-1"), ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_ReplaceRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM sessions WHERE device_id = \$1`).
		WithArgs("d-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sessions").
		WillReturnError(pgError("23505"))
	mock.ExpectRollback()

	_, err := repo.ReplaceSession(context.Background(), models.Session{UserID: "u-1", DeviceID: "d-1", ExpiresAt: baseTime})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
