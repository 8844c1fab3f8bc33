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

const sessionsTable = "sessions"

var sessionColumns = []string{"id", "user_id", "device_id", "token_hash", "refresh_token_hash", "expires_at", "created_at"}

type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db, logger: logger}
}

// ReplaceSession enforces one session per device: logging in again on the
// same device invalidates the previous token pair.
func (r *sessionRepository) ReplaceSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	session.SessionID = r.db.ids.Generate()
	session.CreatedAt = r.db.now()

	deleteQuery, deleteArgs, err := r.db.builder.
		Delete(sessionsTable).
		Where(sq.Eq{"device_id": session.DeviceID}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	insertQuery, insertArgs, err := r.db.builder.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(session.SessionID, session.UserID, session.DeviceID, session.TokenHash, session.RefreshTokenHash, session.ExpiresAt.UTC(), session.CreatedAt).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.ReplaceSession").
			Str("device_id", session.DeviceID).
			Msg("failed to replace session")
		return models.Session{}, err
	}

	return session, nil
}

func (r *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (models.Session, error) {
	return r.findOne(ctx, sq.Eq{"token_hash": tokenHash})
}

func (r *sessionRepository) FindByRefreshHash(ctx context.Context, refreshHash string) (models.Session, error) {
	return r.findOne(ctx, sq.Eq{"refresh_token_hash": refreshHash})
}

func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	n, err := r.delete(ctx, sq.Eq{"id": sessionID})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepository) DeleteUserSessions(ctx context.Context, userID string) (int64, error) {
	return r.delete(ctx, sq.Eq{"user_id": userID})
}

func (r *sessionRepository) DeleteDeviceSessions(ctx context.Context, deviceID string) (int64, error) {
	return r.delete(ctx, sq.Eq{"device_id": deviceID})
}

func (r *sessionRepository) findOne(ctx context.Context, where sq.Eq) (models.Session, error) {
	query, args, err := r.db.builder.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(where).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.Session
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.SessionID, &s.UserID, &s.DeviceID, &s.TokenHash, &s.RefreshTokenHash, &s.ExpiresAt, &s.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, ErrSessionNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.findOne").Msg("failed to scan session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return s, nil
}

func (r *sessionRepository) delete(ctx context.Context, where sq.Eq) (int64, error) {
	query, args, err := r.db.builder.Delete(sessionsTable).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.delete").Msg("failed to delete sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
