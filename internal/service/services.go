package service

import (
	"fmt"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/idempotency"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/store"
)

type Services struct {
	AuthService      AuthService
	IdentityResolver IdentityResolver
	DeviceService    DeviceService
	ClipboardService ClipboardService
	AppInfoService   AppInfoService
}

// NewServices wires every service over one set of repositories. The
// broadcaster and presence are the same registry-backed objects the
// gateway uses.
func NewServices(
	repos *store.Repositories,
	broadcaster Broadcaster,
	presence LivePresence,
	keys idempotency.Store,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	clipboard := NewClipboardValidationService().Wrap(
		NewClipboardService(repos, broadcaster, keys, cfg.Realtime.DeliveryTimeout, logger),
	)

	return &Services{
		AuthService:      NewAuthValidationService().Wrap(NewAuthService(repos, cfg.App, logger)),
		IdentityResolver: NewIdentityResolver(repos, cfg.App),
		DeviceService:    NewDeviceService(repos, presence, clipboard, logger),
		ClipboardService: clipboard,
		AppInfoService:   appInfo,
	}, nil
}
