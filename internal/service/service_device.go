package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/models"
)

type deviceService struct {
	devices  store.DeviceRepository
	sessions store.SessionRepository
	backlog  BacklogSkipper
	presence LivePresence
	logger   *logger.Logger
}

func NewDeviceService(repos *store.Repositories, presence LivePresence, backlog BacklogSkipper, logger *logger.Logger) DeviceService {
	return &deviceService{
		devices:  repos.Devices,
		sessions: repos.Sessions,
		backlog:  backlog,
		presence: presence,
		logger:   logger,
	}
}

// List returns every device of the user, most recently active first, with
// Online filled from presence.
func (s *deviceService) List(ctx context.Context, userID string) ([]models.Device, error) {
	devices, err := s.devices.ListDevices(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	live := s.presence.LiveDevices(userID)
	for i := range devices {
		_, devices[i].Online = live[devices[i].DeviceID]
	}
	return devices, nil
}

func (s *deviceService) Remove(ctx context.Context, identity models.Identity, deviceID string) error {
	log := logger.FromContext(ctx)

	if err := s.devices.Deactivate(ctx, identity.UserID, deviceID); err != nil {
		return lookupError(err)
	}

	sessions, err := s.sessions.DeleteDeviceSessions(ctx, deviceID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	skipped, err := s.backlog.SkipDevice(ctx, identity, deviceID)
	if err != nil {
		return err
	}

	log.Info().Str("func", "*deviceService.Remove").
		Str("user_id", identity.UserID).
		Str("device_id", deviceID).
		Int64("sessions", sessions).
		Int64("skipped", skipped).
		Msg("device removed")
	return nil
}
