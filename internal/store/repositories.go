package store

import "github.com/MKhiriev/go-clip-sync/internal/logger"

// Repositories bundles every repository built over one [DB].
type Repositories struct {
	Users      UserRepository
	Devices    DeviceRepository
	Sessions   SessionRepository
	Clipboard  ClipboardStore
	SyncLedger SyncLedger
	Favorites  FavoriteRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(db, log),
		Devices:    NewDeviceRepository(db, log),
		Sessions:   NewSessionRepository(db, log),
		Clipboard:  NewClipboardRepository(db, log),
		SyncLedger: NewSyncLedgerRepository(db, log),
		Favorites:  NewFavoriteRepository(db, log),
	}
}
