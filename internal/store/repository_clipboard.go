package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
	sq "github.com/Masterminds/squirrel"
)

var clipboardColumns = []string{"id", "user_id", "origin_device_id", "content_type", "payload_ref", "file_name", "file_size", "created_at", "expire_at"}

// clipboardRepository is the SQL implementation of [ClipboardStore].
// Items are never updated; expiry is enforced on read.
type clipboardRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewClipboardRepository(db *DB, logger *logger.Logger) ClipboardStore {
	logger.Debug().Msg("creating clipboard repository")
	return &clipboardRepository{db: db, logger: logger}
}

// Create assigns the item ID and creation time and inserts it.
func (r *clipboardRepository) Create(ctx context.Context, item models.ClipboardItem) (models.ClipboardItem, error) {
	log := logger.FromContext(ctx)

	item.ID = r.db.ids.Generate()
	item.CreatedAt = r.db.now()

	var fileName any
	if item.FileName != "" {
		fileName = item.FileName
	}
	var fileSize any
	if item.FileSize != nil {
		fileSize = *item.FileSize
	}

	query, args, err := r.db.builder.
		Insert(item.TableName()).
		Columns(clipboardColumns...).
		Values(item.ID, item.UserID, item.OriginDeviceID, string(item.ContentType), item.PayloadRef,
			fileName, fileSize, item.CreatedAt, nullableTime(item.ExpireAt)).
		ToSql()
	if err != nil {
		return models.ClipboardItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*clipboardRepository.Create").
			Str("user_id", item.UserID).
			Str("origin_device_id", item.OriginDeviceID).
			Msg("failed to insert clipboard item")
		return models.ClipboardItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

func (r *clipboardRepository) Get(ctx context.Context, userID, clipboardID string) (models.ClipboardItem, error) {
	query, args, err := r.db.builder.
		Select(clipboardColumns...).
		From(models.ClipboardItem{}.TableName()).
		Where(sq.Eq{"id": clipboardID, "user_id": userID}).
		Where(notExpired("expire_at", r.db.now())).
		ToSql()
	if err != nil {
		return models.ClipboardItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanClipboardItem(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.ClipboardItem{}, ErrClipboardItemNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*clipboardRepository.Get").Msg("failed to scan clipboard item")
		return models.ClipboardItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return item, nil
}

func (r *clipboardRepository) ListRecent(ctx context.Context, userID string, limit uint64) ([]models.ClipboardItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(clipboardColumns...).
		From(models.ClipboardItem{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(notExpired("expire_at", r.db.now())).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clipboardRepository.ListRecent").Str("user_id", userID).Msg("failed to list clipboard items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.ClipboardItem, 0, limit)
	for rows.Next() {
		item, scanErr := scanClipboardItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *clipboardRepository) ListDevicesForUser(ctx context.Context, userID string) ([]string, error) {
	query, args, err := r.db.builder.
		Select("id").
		From(models.Device{}.TableName()).
		Where(sq.Eq{"user_id": userID, "is_active": true}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clipboardRepository.ListDevicesForUser").Msg("failed to list devices")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0, 4)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// notExpired matches rows whose expiry column is unset or still ahead of now.
func notExpired(column string, now any) sq.Sqlizer {
	return sq.Or{sq.Eq{column: nil}, sq.Gt{column: now}}
}

func scanClipboardItem(row rowScanner) (models.ClipboardItem, error) {
	var (
		item     models.ClipboardItem
		fileName sql.NullString
		fileSize sql.NullInt64
		expireAt sql.NullTime
	)

	err := row.Scan(&item.ID, &item.UserID, &item.OriginDeviceID, &item.ContentType, &item.PayloadRef,
		&fileName, &fileSize, &item.CreatedAt, &expireAt)
	if err != nil {
		return models.ClipboardItem{}, err
	}

	item.FileName = fileName.String
	if fileSize.Valid {
		size := fileSize.Int64
		item.FileSize = &size
	}
	item.ExpireAt = timePtr(expireAt)
	item.CreatedAt = item.CreatedAt.UTC()

	return item, nil
}
