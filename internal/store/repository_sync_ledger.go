package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
	sq "github.com/Masterminds/squirrel"
)

const syncsTable = "clipboard_syncs"

var syncColumns = []string{"id", "clipboard_id", "target_device_id", "status", "synced_at", "created_at"}

// syncLedgerRepository is the SQL implementation of [SyncLedger].
//
// Every transition is one UPDATE guarded by status = 'pending', so
// concurrent writers cannot move a record backwards and synced_at is
// written at most once.
type syncLedgerRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSyncLedgerRepository(db *DB, logger *logger.Logger) SyncLedger {
	logger.Debug().Msg("creating sync ledger repository")
	return &syncLedgerRepository{db: db, logger: logger}
}

func (r *syncLedgerRepository) CreatePendingFor(ctx context.Context, clipboardID string, targetDeviceIDs []string) error {
	if len(targetDeviceIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	now := r.db.now()
	insert := r.db.builder.
		Insert(syncsTable).
		Columns("id", "clipboard_id", "target_device_id", "status", "created_at").
		Suffix("ON CONFLICT (clipboard_id, target_device_id) DO NOTHING")
	for _, deviceID := range targetDeviceIDs {
		insert = insert.Values(r.db.ids.Generate(), clipboardID, deviceID, string(models.SyncPending), now)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			return nil
		})
	})
	if err != nil {
		log.Err(err).Str("func", "*syncLedgerRepository.CreatePendingFor").
			Str("clipboard_id", clipboardID).
			Int("targets", len(targetDeviceIDs)).
			Msg("failed to create pending sync records")
		return err
	}

	return nil
}

func (r *syncLedgerRepository) MarkSynced(ctx context.Context, clipboardID, deviceID string) (bool, error) {
	return r.transition(ctx, clipboardID, deviceID, models.SyncSynced)
}

func (r *syncLedgerRepository) MarkFailed(ctx context.Context, clipboardID, deviceID string) (bool, error) {
	return r.transition(ctx, clipboardID, deviceID, models.SyncFailed)
}

func (r *syncLedgerRepository) MarkSkipped(ctx context.Context, clipboardID, deviceID string) (bool, error) {
	return r.transition(ctx, clipboardID, deviceID, models.SyncSkipped)
}

func (r *syncLedgerRepository) transition(ctx context.Context, clipboardID, deviceID string, to models.SyncStatus) (bool, error) {
	update := r.db.builder.
		Update(syncsTable).
		Set("status", string(to)).
		Where(sq.Eq{"clipboard_id": clipboardID, "target_device_id": deviceID, "status": string(models.SyncPending)})
	if to == models.SyncSynced {
		update = update.Set("synced_at", r.db.now())
	}

	query, args, err := update.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncLedgerRepository.transition").
			Str("clipboard_id", clipboardID).
			Str("device_id", deviceID).
			Str("to", string(to)).
			Msg("failed to update sync record")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (r *syncLedgerRepository) PendingFor(ctx context.Context, deviceID string) ([]models.PendingSync, error) {
	log := logger.FromContext(ctx)

	columns := make([]string, 0, len(syncColumns)+len(clipboardColumns))
	for _, c := range syncColumns {
		columns = append(columns, "s."+c)
	}
	for _, c := range clipboardColumns {
		columns = append(columns, "ci."+c)
	}

	query, args, err := r.db.builder.
		Select(columns...).
		From(syncsTable+" s").
		Join(models.ClipboardItem{}.TableName()+" ci ON ci.id = s.clipboard_id").
		Where(sq.Eq{"s.target_device_id": deviceID, "s.status": string(models.SyncPending)}).
		Where(notExpired("ci.expire_at", r.db.now())).
		OrderBy("ci.created_at ASC", "ci.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*syncLedgerRepository.PendingFor").Str("device_id", deviceID).Msg("failed to query backlog")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	backlog := make([]models.PendingSync, 0, 8)
	for rows.Next() {
		var (
			p        models.PendingSync
			syncedAt sql.NullTime
			fileName sql.NullString
			fileSize sql.NullInt64
			expireAt sql.NullTime
		)
		scanErr := rows.Scan(
			&p.Record.ID, &p.Record.ClipboardID, &p.Record.TargetDeviceID, &p.Record.Status, &syncedAt, &p.Record.CreatedAt,
			&p.Item.ID, &p.Item.UserID, &p.Item.OriginDeviceID, &p.Item.ContentType, &p.Item.PayloadRef,
			&fileName, &fileSize, &p.Item.CreatedAt, &expireAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*syncLedgerRepository.PendingFor").Msg("failed to scan backlog row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		p.Record.SyncedAt = timePtr(syncedAt)
		p.Item.FileName = fileName.String
		if fileSize.Valid {
			size := fileSize.Int64
			p.Item.FileSize = &size
		}
		p.Item.ExpireAt = timePtr(expireAt)
		p.Item.CreatedAt = p.Item.CreatedAt.UTC()
		backlog = append(backlog, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return backlog, nil
}

func (r *syncLedgerRepository) GetRecord(ctx context.Context, clipboardID, deviceID string) (models.SyncRecord, error) {
	query, args, err := r.db.builder.
		Select(syncColumns...).
		From(syncsTable).
		Where(sq.Eq{"clipboard_id": clipboardID, "target_device_id": deviceID}).
		ToSql()
	if err != nil {
		return models.SyncRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanSyncRecord(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.SyncRecord{}, ErrSyncRecordNotFound
	case err != nil:
		return models.SyncRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return record, nil
}

func (r *syncLedgerRepository) ListForClipboard(ctx context.Context, clipboardID string) ([]models.SyncRecord, error) {
	query, args, err := r.db.builder.
		Select(syncColumns...).
		From(syncsTable).
		Where(sq.Eq{"clipboard_id": clipboardID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncLedgerRepository.ListForClipboard").Msg("failed to list sync records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.SyncRecord, 0, 4)
	for rows.Next() {
		record, scanErr := scanSyncRecord(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *syncLedgerRepository) FailOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.bulkTransition(ctx, "FailOlderThan", models.SyncFailed, sq.Lt{"created_at": cutoff.UTC()})
}

func (r *syncLedgerRepository) SkipExpired(ctx context.Context, now time.Time) (int64, error) {
	expired := r.db.builder.
		Select("id").
		From(models.ClipboardItem{}.TableName()).
		Where(sq.And{sq.NotEq{"expire_at": nil}, sq.LtOrEq{"expire_at": now.UTC()}})

	sub, subArgs, err := expired.PlaceholderFormat(sq.Question).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.bulkTransition(ctx, "SkipExpired", models.SyncSkipped, sq.Expr("clipboard_id IN ("+sub+")", subArgs...))
}

func (r *syncLedgerRepository) SkipForDevice(ctx context.Context, deviceID string) (int64, error) {
	return r.bulkTransition(ctx, "SkipForDevice", models.SyncSkipped, sq.Eq{"target_device_id": deviceID})
}

func (r *syncLedgerRepository) bulkTransition(ctx context.Context, name string, to models.SyncStatus, where sq.Sqlizer) (int64, error) {
	query, args, err := r.db.builder.
		Update(syncsTable).
		Set("status", string(to)).
		Where(sq.Eq{"status": string(models.SyncPending)}).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncLedgerRepository."+name).Msg("failed to update sync records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}

func scanSyncRecord(row rowScanner) (models.SyncRecord, error) {
	var (
		record   models.SyncRecord
		syncedAt sql.NullTime
	)
	if err := row.Scan(&record.ID, &record.ClipboardID, &record.TargetDeviceID, &record.Status, &syncedAt, &record.CreatedAt); err != nil {
		return models.SyncRecord{}, err
	}
	record.SyncedAt = timePtr(syncedAt)
	return record, nil
}
