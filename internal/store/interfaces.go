package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-clip-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -exclude_interfaces=ErrorClassificator

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// DeviceRepository persists the devices of each user.
type DeviceRepository interface {
	// FindOrCreate returns the device identified by (UserID, Identifier),
	// creating it on first sight. An existing device is re-activated and
	// its name and type refreshed.
	FindOrCreate(ctx context.Context, device models.Device) (models.Device, error)
	GetDevice(ctx context.Context, userID, deviceID string) (models.Device, error)
	ListDevices(ctx context.Context, userID string) ([]models.Device, error)
	Deactivate(ctx context.Context, userID, deviceID string) error
	TouchLastActive(ctx context.Context, deviceID string, at time.Time) error
}

// SessionRepository persists issued token pairs by fingerprint.
type SessionRepository interface {
	// ReplaceSession removes every session of session.DeviceID and stores
	// session in their place.
	ReplaceSession(ctx context.Context, session models.Session) (models.Session, error)
	FindByTokenHash(ctx context.Context, tokenHash string) (models.Session, error)
	FindByRefreshHash(ctx context.Context, refreshHash string) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteUserSessions(ctx context.Context, userID string) (int64, error)
	DeleteDeviceSessions(ctx context.Context, deviceID string) (int64, error)
}

// ClipboardStore persists immutable clipboard items.
type ClipboardStore interface {
	Create(ctx context.Context, item models.ClipboardItem) (models.ClipboardItem, error)

	// Get returns [ErrClipboardItemNotFound] for missing, expired, and
	// foreign items alike.
	Get(ctx context.Context, userID, clipboardID string) (models.ClipboardItem, error)

	// ListRecent returns the newest non-expired items first.
	ListRecent(ctx context.Context, userID string, limit uint64) ([]models.ClipboardItem, error)

	// ListDevicesForUser returns the IDs of every active device of the user.
	ListDevicesForUser(ctx context.Context, userID string) ([]string, error)
}

// FavoriteRepository persists the items each user chose to keep.
type FavoriteRepository interface {
	// ToggleFavorite removes the favorite when present and adds it
	// otherwise, reporting whether the item is favorited afterwards.
	ToggleFavorite(ctx context.Context, userID, clipboardID string) (bool, error)
	IsFavorited(ctx context.Context, userID, clipboardID string) (bool, error)

	// ListFavorites returns one page of favorites, newest first, and the
	// total number of favorites whose items have not expired.
	ListFavorites(ctx context.Context, userID string, limit, offset uint64) ([]models.ClipboardFavorite, int, error)
}

// SyncLedger is the durable per-(item, device) delivery state. Only the
// clipboard pipeline and the ledger janitor write to it.
type SyncLedger interface {
	// CreatePendingFor inserts one pending record per target device in a
	// single transaction. Existing pairs are left untouched.
	CreatePendingFor(ctx context.Context, clipboardID string, targetDeviceIDs []string) error

	// MarkSynced, MarkFailed and MarkSkipped move a pending record into the
	// named state and report whether the transition happened. Terminal
	// records are never modified.
	MarkSynced(ctx context.Context, clipboardID, deviceID string) (bool, error)
	MarkFailed(ctx context.Context, clipboardID, deviceID string) (bool, error)
	MarkSkipped(ctx context.Context, clipboardID, deviceID string) (bool, error)

	// PendingFor lists the backlog of a device joined with its items,
	// oldest item first. Records of expired items are not returned.
	PendingFor(ctx context.Context, deviceID string) ([]models.PendingSync, error)

	GetRecord(ctx context.Context, clipboardID, deviceID string) (models.SyncRecord, error)
	ListForClipboard(ctx context.Context, clipboardID string) ([]models.SyncRecord, error)

	// FailOlderThan moves pending records created before cutoff to failed.
	FailOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	// SkipExpired moves pending records of items expired at now to skipped.
	SkipExpired(ctx context.Context, now time.Time) (int64, error)
	// SkipForDevice moves every pending record of a device to skipped.
	SkipForDevice(ctx context.Context, deviceID string) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
