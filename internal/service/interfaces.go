package service

import (
	"context"

	"github.com/MKhiriev/go-clip-sync/internal/fanout"
	"github.com/MKhiriev/go-clip-sync/internal/presence"
	"github.com/MKhiriev/go-clip-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ClipboardServiceWrapper,AuthServiceWrapper

// AuthService manages accounts and the token pair issued per device.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Refresh(ctx context.Context, req models.RefreshRequest) (models.AuthResponse, error)
	Logout(ctx context.Context, identity models.Identity) error
	LogoutAll(ctx context.Context, identity models.Identity) (int64, error)
	Me(ctx context.Context, identity models.Identity) (models.MeResponse, error)
}

// IdentityResolver turns a bearer credential into the (user, device) pair
// it was issued for. Every failure wraps [ErrUnauthenticated].
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (models.Identity, error)
}

// DeviceService lists and removes the devices of a user.
type DeviceService interface {
	List(ctx context.Context, userID string) ([]models.Device, error)

	// Remove deactivates a device, drops its sessions and has the
	// clipboard pipeline skip its backlog. Closing its live connections
	// is up to the caller.
	Remove(ctx context.Context, identity models.Identity, deviceID string) error
}

// ClipboardService is the clipboard event pipeline and its read side.
type ClipboardService interface {
	// Push validates, persists and fans out one clipboard item. The
	// returned targets cover every known device of the user except the
	// origin, each either synced or pending.
	Push(ctx context.Context, req models.PushRequest) (models.PushResult, error)

	// CatchUp replays the backlog of a device over sink, oldest first,
	// marking each delivered item synced. It stops at the first failed
	// delivery and returns how many items were delivered.
	CatchUp(ctx context.Context, identity models.Identity, sink presence.Sink) (int, error)

	Pending(ctx context.Context, identity models.Identity) ([]models.PendingSync, error)
	Ack(ctx context.Context, identity models.Identity, req models.AckRequest) (models.AckResponse, error)

	// SkipDevice marks every pending record of deviceID as skipped and
	// returns how many moved.
	SkipDevice(ctx context.Context, identity models.Identity, deviceID string) (int64, error)

	Get(ctx context.Context, userID, clipboardID string) (models.ClipboardItem, error)
	List(ctx context.Context, userID string, limit uint64) ([]models.ClipboardItem, error)
	Syncs(ctx context.Context, userID, clipboardID string) ([]models.SyncRecord, error)

	ToggleFavorite(ctx context.Context, userID, clipboardID string) (models.FavoriteToggleResponse, error)
	IsFavorite(ctx context.Context, userID, clipboardID string) (models.FavoriteToggleResponse, error)
	Favorites(ctx context.Context, userID string, limit, offset uint64) (models.FavoritesResponse, error)
}

// BacklogSkipper is the part of [ClipboardService] device removal needs.
type BacklogSkipper interface {
	SkipDevice(ctx context.Context, identity models.Identity, deviceID string) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Broadcaster is the fan-out used by the pipeline.
type Broadcaster interface {
	Broadcast(ctx context.Context, userID, originDeviceID string, frame models.Frame) []fanout.DeliveryOutcome
}

// LivePresence reports which devices of a user are connected right now.
type LivePresence interface {
	LiveDevices(userID string) map[string]struct{}
}

// ClipboardServiceWrapper defines middleware composition for
// ClipboardService, such as validation.
type ClipboardServiceWrapper interface {
	Wrap(ClipboardService) ClipboardService
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
