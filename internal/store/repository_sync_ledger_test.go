package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── SQL shape (sqlmock) ──

func TestCreatePendingFor_SingleTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	ledger := NewSyncLedgerRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO clipboard_syncs \(id,clipboard_id,target_device_id,status,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\),\(\$6,\$7,\$8,\$9,\$10\) ON CONFLICT \(clipboard_id, target_device_id\) DO NOTHING`).
		WithArgs("id-001", "c-1", "d-2", "pending", baseTime, "id-002", "c-1", "d-3", "pending", baseTime).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := ledger.CreatePendingFor(context.Background(), "c-1", []string{"d-2", "d-3"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePendingFor_NoTargets(t *testing.T) {
	db, mock := newMockDB(t)
	ledger := NewSyncLedgerRepository(db, logger.Nop())

	require.NoError(t, ledger.CreatePendingFor(context.Background(), "c-1", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePendingFor_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	ledger := NewSyncLedgerRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO clipboard_syncs").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	err := ledger.CreatePendingFor(context.Background(), "c-1", []string{"d-2"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePendingFor_RetriesSerializationFailure(t *testing.T) {
	db, mock := newMockDB(t)
	ledger := NewSyncLedgerRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO clipboard_syncs").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO clipboard_syncs").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := ledger.CreatePendingFor(context.Background(), "c-1", []string{"d-2"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSynced_CompareAndSet(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "pending row moves", affected: 1, want: true},
		{name: "terminal row is untouched", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			ledger := NewSyncLedgerRepository(db, logger.Nop())

			mock.ExpectExec(`UPDATE clipboard_syncs SET status = \$1, synced_at = \$2 WHERE clipboard_id = \$3 AND status = \$4 AND target_device_id = \$5`).
				WithArgs("synced", baseTime, "c-1", "pending", "d-2").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			moved, err := ledger.MarkSynced(context.Background(), "c-1", "d-2")

			require.NoError(t, err)
			assert.Equal(t, tt.want, moved)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkFailed_DoesNotSetSyncedAt(t *testing.T) {
	db, mock := newMockDB(t)
	ledger := NewSyncLedgerRepository(db, logger.Nop())

	mock.ExpectExec(`UPDATE clipboard_syncs SET status = \$1 WHERE clipboard_id = \$2 AND status = \$3 AND target_device_id = \$4`).
		WithArgs("failed", "c-1", "pending", "d-2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	moved, err := ledger.MarkFailed(context.Background(), "c-1", "d-2")

	require.NoError(t, err)
	assert.True(t, moved)
}

func TestMarkSynced_NonRetryableError(t *testing.T) {
	db, mock := newMockDB(t)
	ledger := NewSyncLedgerRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE clipboard_syncs").WillReturnError(errors.New("connection reset"))

	_, err := ledger.MarkSynced(context.Background(), "c-1", "d-2")

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet(), "plain errors must not be retried")
}

func TestSkipExpired_SubqueryPlaceholders(t *testing.T) {
	db, mock := newMockDB(t)
	ledger := NewSyncLedgerRepository(db, logger.Nop())

	mock.ExpectExec(`UPDATE clipboard_syncs SET status = \$1 WHERE status = \$2 AND clipboard_id IN \(SELECT id FROM clipboard_items WHERE \(expire_at IS NOT NULL AND expire_at <= \$3\)\)`).
		WithArgs("skipped", "pending", baseTime).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := ledger.SkipExpired(context.Background(), baseTime)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

// ── ledger state machine (SQLite) ──

func TestLedger_CreatePendingForIsIdempotent(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()
	item := f.createItem(t, 0, nil)
	targets := []string{f.deviceID(1), f.deviceID(2)}

	require.NoError(t, f.repos.SyncLedger.CreatePendingFor(ctx, item.ID, targets))
	moved, err := f.repos.SyncLedger.MarkSynced(ctx, item.ID, f.deviceID(1))
	require.NoError(t, err)
	require.True(t, moved)

	// retry must neither duplicate nor reset existing rows
	require.NoError(t, f.repos.SyncLedger.CreatePendingFor(ctx, item.ID, targets))

	records, err := f.repos.SyncLedger.ListForClipboard(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byDevice := map[string]models.SyncStatus{}
	for _, r := range records {
		byDevice[r.TargetDeviceID] = r.Status
	}
	assert.Equal(t, models.SyncSynced, byDevice[f.deviceID(1)])
	assert.Equal(t, models.SyncPending, byDevice[f.deviceID(2)])
}

func TestLedger_TransitionsAreMonotonic(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	item := f.createItem(t, 0, nil)
	ledger := f.repos.SyncLedger

	require.NoError(t, ledger.CreatePendingFor(ctx, item.ID, []string{f.deviceID(1)}))

	moved, err := ledger.MarkSynced(ctx, item.ID, f.deviceID(1))
	require.NoError(t, err)
	assert.True(t, moved)
	first, err := ledger.GetRecord(ctx, item.ID, f.deviceID(1))
	require.NoError(t, err)
	require.NotNil(t, first.SyncedAt)

	f.clock.Advance(time.Minute)

	for _, mark := range []func(context.Context, string, string) (bool, error){ledger.MarkFailed, ledger.MarkSkipped, ledger.MarkSynced} {
		moved, err = mark(ctx, item.ID, f.deviceID(1))
		require.NoError(t, err)
		assert.False(t, moved)
	}

	after, err := ledger.GetRecord(ctx, item.ID, f.deviceID(1))
	require.NoError(t, err)
	assert.Equal(t, models.SyncSynced, after.Status)
	assert.True(t, first.SyncedAt.Equal(*after.SyncedAt), "synced_at is written once")
}

func TestLedger_FailedThenSyncedStaysFailed(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	item := f.createItem(t, 0, nil)
	ledger := f.repos.SyncLedger

	require.NoError(t, ledger.CreatePendingFor(ctx, item.ID, []string{f.deviceID(1)}))

	moved, err := ledger.MarkFailed(ctx, item.ID, f.deviceID(1))
	require.NoError(t, err)
	assert.True(t, moved)

	moved, err = ledger.MarkSynced(ctx, item.ID, f.deviceID(1))
	require.NoError(t, err)
	assert.False(t, moved)

	record, err := ledger.GetRecord(ctx, item.ID, f.deviceID(1))
	require.NoError(t, err)
	assert.Equal(t, models.SyncFailed, record.Status)
	assert.Nil(t, record.SyncedAt)
}

func TestLedger_ConcurrentMarkSyncedMovesOnce(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	item := f.createItem(t, 0, nil)
	require.NoError(t, f.repos.SyncLedger.CreatePendingFor(ctx, item.ID, []string{f.deviceID(1)}))

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		moves int
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			moved, err := f.repos.SyncLedger.MarkSynced(ctx, item.ID, f.deviceID(1))
			assert.NoError(t, err)
			if moved {
				mu.Lock()
				moves++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, moves)
}

func TestLedger_PendingForOrderAndExpiry(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	ledger := f.repos.SyncLedger

	soon := baseTime.Add(time.Hour)
	first := f.createItem(t, 0, nil)
	expiring := f.createItem(t, 0, &soon)
	third := f.createItem(t, 0, nil)

	// insert in reverse to prove ordering comes from the item
	for _, item := range []models.ClipboardItem{third, expiring, first} {
		require.NoError(t, ledger.CreatePendingFor(ctx, item.ID, []string{f.deviceID(1)}))
	}

	backlog, err := ledger.PendingFor(ctx, f.deviceID(1))
	require.NoError(t, err)
	require.Len(t, backlog, 3)
	assert.Equal(t, []string{first.ID, expiring.ID, third.ID}, pendingIDs(backlog))
	assert.Equal(t, "hello", backlog[0].Item.PayloadRef)
	assert.Equal(t, models.SyncPending, backlog[0].Record.Status)

	f.clock.Advance(2 * time.Hour)

	backlog, err = ledger.PendingFor(ctx, f.deviceID(1))
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, third.ID}, pendingIDs(backlog))

	// origin has no backlog
	backlog, err = ledger.PendingFor(ctx, f.deviceID(0))
	require.NoError(t, err)
	assert.Empty(t, backlog)
}

func TestLedger_JanitorTransitions(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()
	ledger := f.repos.SyncLedger

	soon := baseTime.Add(time.Minute)
	old := f.createItem(t, 0, nil)
	require.NoError(t, ledger.CreatePendingFor(ctx, old.ID, []string{f.deviceID(1), f.deviceID(2)}))

	f.clock.Advance(time.Hour)
	expiring := f.createItem(t, 0, &soon)
	require.NoError(t, ledger.CreatePendingFor(ctx, expiring.ID, []string{f.deviceID(1)}))

	n, err := ledger.SkipExpired(ctx, f.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = ledger.FailOlderThan(ctx, baseTime.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	record, err := ledger.GetRecord(ctx, expiring.ID, f.deviceID(1))
	require.NoError(t, err)
	assert.Equal(t, models.SyncSkipped, record.Status)

	record, err = ledger.GetRecord(ctx, old.ID, f.deviceID(2))
	require.NoError(t, err)
	assert.Equal(t, models.SyncFailed, record.Status)
}

func TestLedger_SkipForDevice(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()
	ledger := f.repos.SyncLedger

	item := f.createItem(t, 0, nil)
	require.NoError(t, ledger.CreatePendingFor(ctx, item.ID, []string{f.deviceID(1), f.deviceID(2)}))

	n, err := ledger.SkipForDevice(ctx, f.deviceID(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	backlog, err := ledger.PendingFor(ctx, f.deviceID(2))
	require.NoError(t, err)
	assert.Len(t, backlog, 1)
}

func TestLedger_GetRecordNotFound(t *testing.T) {
	f := newFixture(t, 1)

	_, err := f.repos.SyncLedger.GetRecord(context.Background(), "nope", f.deviceID(0))
	assert.ErrorIs(t, err, ErrSyncRecordNotFound)
}

func pendingIDs(backlog []models.PendingSync) []string {
	ids := make([]string, 0, len(backlog))
	for _, p := range backlog {
		ids = append(ids, p.Item.ID)
	}
	return ids
}
