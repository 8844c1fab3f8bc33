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

var deviceColumns = []string{"id", "user_id", "name", "identifier", "type", "is_active", "last_active", "created_at"}

type deviceRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{db: db, logger: logger}
}

// FindOrCreate upserts on (user_id, identifier) and reads the row back
// inside one transaction.
func (r *deviceRepository) FindOrCreate(ctx context.Context, device models.Device) (models.Device, error) {
	log := logger.FromContext(ctx)

	now := r.db.now()
	if device.Type == "" {
		device.Type = models.DefaultDeviceType
	}

	query, args, err := r.db.builder.
		Insert(device.TableName()).
		Columns(deviceColumns...).
		Values(r.db.ids.Generate(), device.UserID, device.Name, device.Identifier, string(device.Type), true, now, now).
		Suffix("ON CONFLICT (user_id, identifier) DO UPDATE SET name = excluded.name, type = excluded.type, is_active = excluded.is_active, last_active = excluded.last_active").
		ToSql()
	if err != nil {
		return models.Device{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Device
	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		found, err := r.selectOne(ctx, tx, sq.Eq{"user_id": device.UserID, "identifier": device.Identifier})
		if err != nil {
			return err
		}
		saved = found
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*deviceRepository.FindOrCreate").
			Str("user_id", device.UserID).
			Msg("error upserting device")
		return models.Device{}, err
	}

	return saved, nil
}

// GetDevice returns the device only if it belongs to userID.
func (r *deviceRepository) GetDevice(ctx context.Context, userID, deviceID string) (models.Device, error) {
	return r.selectOne(ctx, r.db, sq.Eq{"id": deviceID, "user_id": userID})
}

// ListDevices returns every device of the user, active or not, most
// recently active first.
func (r *deviceRepository) ListDevices(ctx context.Context, userID string) ([]models.Device, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(deviceColumns...).
		From(models.Device{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("last_active DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*deviceRepository.ListDevices").Str("user_id", userID).Msg("failed to list devices")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	devices := make([]models.Device, 0, 4)
	for rows.Next() {
		device, scanErr := scanDevice(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		devices = append(devices, device)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return devices, nil
}

func (r *deviceRepository) Deactivate(ctx context.Context, userID, deviceID string) error {
	query, args, err := r.db.builder.
		Update(models.Device{}.TableName()).
		Set("is_active", false).
		Where(sq.Eq{"id": deviceID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*deviceRepository.Deactivate").Msg("failed to deactivate device")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrDeviceNotFound
	}
	return nil
}

func (r *deviceRepository) TouchLastActive(ctx context.Context, deviceID string, at time.Time) error {
	query, args, err := r.db.builder.
		Update(models.Device{}.TableName()).
		Set("last_active", at.UTC()).
		Where(sq.Eq{"id": deviceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *deviceRepository) selectOne(ctx context.Context, q DBTX, where sq.Eq) (models.Device, error) {
	query, args, err := r.db.builder.
		Select(deviceColumns...).
		From(models.Device{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return models.Device{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	device, err := scanDevice(q.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Device{}, ErrDeviceNotFound
	case err != nil:
		return models.Device{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return device, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDevice(row rowScanner) (models.Device, error) {
	var d models.Device
	err := row.Scan(&d.DeviceID, &d.UserID, &d.Name, &d.Identifier, &d.Type, &d.IsActive, &d.LastActive, &d.CreatedAt)
	return d, err
}
