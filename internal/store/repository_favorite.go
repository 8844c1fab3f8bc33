package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/models"
	sq "github.com/Masterminds/squirrel"
)

var favoriteColumns = []string{"id", "user_id", "clipboard_id", "created_at"}

// favoriteRepository is the SQL implementation of [FavoriteRepository].
type favoriteRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{db: db, logger: logger}
}

// ToggleFavorite deletes the (user, item) favorite and inserts it when
// nothing was deleted. A concurrent insert of the same pair resolves to
// favorited.
func (r *favoriteRepository) ToggleFavorite(ctx context.Context, userID, clipboardID string) (bool, error) {
	log := logger.FromContext(ctx)
	table := models.ClipboardFavorite{}.TableName()

	deleteQuery, deleteArgs, err := r.db.builder.
		Delete(table).
		Where(sq.Eq{"user_id": userID, "clipboard_id": clipboardID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	insertQuery, insertArgs, err := r.db.builder.
		Insert(table).
		Columns(favoriteColumns...).
		Values(r.db.ids.Generate(), userID, clipboardID, r.db.now()).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var favorite bool
	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if removed, _ := res.RowsAffected(); removed > 0 {
			favorite = false
			return nil
		}

		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		favorite = true
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return true, nil
		}
		log.Err(err).Str("func", "*favoriteRepository.ToggleFavorite").
			Str("user_id", userID).
			Str("clipboard_id", clipboardID).
			Msg("failed to toggle favorite")
		return false, err
	}

	return favorite, nil
}

func (r *favoriteRepository) IsFavorited(ctx context.Context, userID, clipboardID string) (bool, error) {
	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(models.ClipboardFavorite{}.TableName()).
		Where(sq.Eq{"user_id": userID, "clipboard_id": clipboardID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoriteRepository.IsFavorited").Msg("failed to count favorites")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return count > 0, nil
}

// ListFavorites joins each favorite with its item. Favorites of expired
// items are neither returned nor counted.
func (r *favoriteRepository) ListFavorites(ctx context.Context, userID string, limit, offset uint64) ([]models.ClipboardFavorite, int, error) {
	log := logger.FromContext(ctx)
	now := r.db.now()

	visible := r.db.builder.
		Select().
		From(models.ClipboardFavorite{}.TableName() + " f").
		Join(models.ClipboardItem{}.TableName() + " ci ON ci.id = f.clipboard_id").
		Where(sq.Eq{"f.user_id": userID}).
		Where(notExpired("ci.expire_at", now))

	countQuery, countArgs, err := visible.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	var total int
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Str("user_id", userID).Msg("failed to count favorites")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	columns := make([]string, 0, len(favoriteColumns)+len(clipboardColumns))
	for _, c := range favoriteColumns {
		columns = append(columns, "f."+c)
	}
	for _, c := range clipboardColumns {
		columns = append(columns, "ci."+c)
	}

	query, args, err := visible.
		Columns(columns...).
		OrderBy("f.created_at DESC", "f.id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Str("user_id", userID).Msg("failed to list favorites")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.ClipboardFavorite, 0, limit)
	for rows.Next() {
		var fav models.ClipboardFavorite
		item, scanErr := scanClipboardItem(favoriteScanner{row: rows, fav: &fav})
		if scanErr != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		fav.CreatedAt = fav.CreatedAt.UTC()
		fav.Item = item
		favorites = append(favorites, fav)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, total, nil
}

// favoriteScanner reads the favorite columns that precede the item columns
// of a joined row.
type favoriteScanner struct {
	row rowScanner
	fav *models.ClipboardFavorite
}

func (s favoriteScanner) Scan(dest ...any) error {
	head := []any{&s.fav.ID, &s.fav.UserID, &s.fav.ClipboardID, &s.fav.CreatedAt}
	return s.row.Scan(append(head, dest...)...)
}
