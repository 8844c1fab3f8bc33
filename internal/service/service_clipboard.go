// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/fanout"
	"github.com/MKhiriev/go-clip-sync/internal/idempotency"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/presence"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/models"
)

const (
	defaultListLimit     uint64 = 50
	defaultFavoriteLimit uint64 = 20
	maxListLimit         uint64 = 200
)

// clipboardService runs the clipboard event pipeline:
//
//	received -> persisted -> fanned out -> reconciled
//
// It is the only writer of sync records besides the ledger janitor. Other
// services that need to change the ledger, such as device removal, go
// through [clipboardService.SkipDevice].
// Validation happens in the wrapping [clipboardValidationService].
type clipboardService struct {
	items       store.ClipboardStore
	ledger      store.SyncLedger
	favorites   store.FavoriteRepository
	broadcaster Broadcaster
	keys        idempotency.Store

	// deliveryTimeout bounds each catch-up delivery.
	deliveryTimeout time.Duration

	logger *logger.Logger
}

func NewClipboardService(
	repos *store.Repositories,
	broadcaster Broadcaster,
	keys idempotency.Store,
	deliveryTimeout time.Duration,
	logger *logger.Logger,
) ClipboardService {
	return &clipboardService{
		items:           repos.Clipboard,
		ledger:          repos.SyncLedger,
		favorites:       repos.Favorites,
		broadcaster:     broadcaster,
		keys:            keys,
		deliveryTimeout: deliveryTimeout,
		logger:          logger,
	}
}

// Push persists the item, records a pending sync for every other known
// device of the user, then broadcasts to the live subset and marks the
// devices that received it as synced.
//
// Pending records are committed before the broadcast starts, so a device
// that misses the broadcast always finds the item in its backlog.
func (s *clipboardService) Push(ctx context.Context, req models.PushRequest) (models.PushResult, error) {
	log := logger.FromContext(ctx)

	claimed, err := s.claim(ctx, req)
	if err != nil {
		return models.PushResult{}, err
	}

	item, err := s.items.Create(ctx, models.ClipboardItem{
		UserID:         req.UserID,
		OriginDeviceID: req.OriginDeviceID,
		ContentType:    req.ContentType,
		PayloadRef:     req.PayloadRef,
		FileName:       req.FileName,
		FileSize:       req.FileSize,
		ExpireAt:       req.ExpireAt,
	})
	if err != nil {
		s.release(ctx, claimed)
		log.Err(err).Str("func", "*clipboardService.Push").Str("user_id", req.UserID).Msg("failed to persist clipboard item")
		return models.PushResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	// The item exists from here on. Later stages must not be cut short by
	// the caller going away, or the ledger would not reflect deliveries
	// that already happened.
	ctx = context.WithoutCancel(ctx)

	devices, err := s.items.ListDevicesForUser(ctx, req.UserID)
	if err != nil {
		s.release(ctx, claimed)
		log.Err(err).Str("func", "*clipboardService.Push").Str("clipboard_id", item.ID).Msg("failed to list target devices")
		return models.PushResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	targets := slices.DeleteFunc(devices, func(id string) bool { return id == req.OriginDeviceID })

	if err = s.ledger.CreatePendingFor(ctx, item.ID, targets); err != nil {
		s.release(ctx, claimed)
		log.Err(err).Str("func", "*clipboardService.Push").Str("clipboard_id", item.ID).Msg("failed to create pending sync records")
		return models.PushResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	frame, err := models.NewFrame(models.EventClipboardNew, "", models.NewClipboardNewPayload(item))
	if err != nil {
		// every target stays pending and is served by catch-up
		log.Err(err).Str("func", "*clipboardService.Push").Str("clipboard_id", item.ID).Msg("failed to build frame")
		return models.PushResult{Item: item, Targets: pendingOutcomes(targets)}, nil
	}

	delivered := make(map[string]bool, len(targets))
	for _, o := range fanout.DeviceOutcomes(s.broadcaster.Broadcast(ctx, req.UserID, req.OriginDeviceID, frame)) {
		delivered[o.DeviceID] = o.Delivered
	}

	outcomes := make([]models.DeviceSyncOutcome, 0, len(targets))
	for _, deviceID := range targets {
		outcome := models.DeviceSyncOutcome{DeviceID: deviceID, Delivered: delivered[deviceID], Status: models.SyncPending}
		if outcome.Delivered {
			outcome.Status = s.markSynced(ctx, item.ID, deviceID)
		}
		outcomes = append(outcomes, outcome)
	}

	log.Info().Str("func", "*clipboardService.Push").
		Str("clipboard_id", item.ID).
		Str("content_type", string(item.ContentType)).
		Int("targets", len(targets)).
		Int("delivered", countDelivered(outcomes)).
		Msg("clipboard item pushed")

	return models.PushResult{Item: item, Targets: outcomes}, nil
}

// CatchUp delivers the device's backlog one item at a time, oldest first.
// A record is marked synced only after its delivery succeeded; the first
// failure stops the replay and leaves the rest pending.
func (s *clipboardService) CatchUp(ctx context.Context, identity models.Identity, sink presence.Sink) (int, error) {
	log := logger.FromContext(ctx)

	backlog, err := s.ledger.PendingFor(ctx, identity.DeviceID)
	if err != nil {
		log.Err(err).Str("func", "*clipboardService.CatchUp").Str("device_id", identity.DeviceID).Msg("failed to load backlog")
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	delivered := 0
	for _, pending := range backlog {
		if pending.Item.UserID != identity.UserID {
			continue
		}

		frame, err := models.NewFrame(models.EventClipboardNew, "", models.NewClipboardNewPayload(pending.Item))
		if err != nil {
			return delivered, err
		}

		if err = s.deliver(ctx, sink, frame); err != nil {
			log.Warn().Err(err).Str("func", "*clipboardService.CatchUp").
				Str("device_id", identity.DeviceID).
				Str("clipboard_id", pending.Item.ID).
				Int("remaining", len(backlog)-delivered).
				Msg("catch-up delivery failed")
			return delivered, fmt.Errorf("%w: %w", fanout.ErrDelivery, err)
		}

		s.markSynced(context.WithoutCancel(ctx), pending.Item.ID, identity.DeviceID)
		delivered++
	}

	if delivered > 0 {
		log.Info().Str("func", "*clipboardService.CatchUp").
			Str("device_id", identity.DeviceID).
			Int("delivered", delivered).
			Msg("backlog replayed")
	}

	return delivered, nil
}

func (s *clipboardService) Pending(ctx context.Context, identity models.Identity) ([]models.PendingSync, error) {
	backlog, err := s.ledger.PendingFor(ctx, identity.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return slices.DeleteFunc(backlog, func(p models.PendingSync) bool { return p.Item.UserID != identity.UserID }), nil
}

// SkipDevice moves the whole backlog of a removed device to skipped so the
// ledger no longer waits on it.
func (s *clipboardService) SkipDevice(ctx context.Context, identity models.Identity, deviceID string) (int64, error) {
	skipped, err := s.ledger.SkipForDevice(ctx, deviceID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clipboardService.SkipDevice").
			Str("user_id", identity.UserID).
			Str("device_id", deviceID).
			Msg("failed to skip device backlog")
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return skipped, nil
}

// Ack confirms receipt of items fetched over REST. Only records that
// target the caller's own device can move; unknown or already terminal
// records are ignored.
func (s *clipboardService) Ack(ctx context.Context, identity models.Identity, req models.AckRequest) (models.AckResponse, error) {
	var resp models.AckResponse
	for _, id := range req.ClipboardIDs {
		moved, err := s.ledger.MarkSynced(ctx, id, identity.DeviceID)
		if err != nil {
			return resp, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		if moved {
			resp.Synced++
		}
	}
	return resp, nil
}

func (s *clipboardService) Get(ctx context.Context, userID, clipboardID string) (models.ClipboardItem, error) {
	item, err := s.items.Get(ctx, userID, clipboardID)
	if err != nil {
		return models.ClipboardItem{}, lookupError(err)
	}
	return item, nil
}

func (s *clipboardService) List(ctx context.Context, userID string, limit uint64) ([]models.ClipboardItem, error) {
	switch {
	case limit == 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	items, err := s.items.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return items, nil
}

// Syncs lists the ledger of one item, after checking that the item is
// visible to userID.
func (s *clipboardService) Syncs(ctx context.Context, userID, clipboardID string) ([]models.SyncRecord, error) {
	if _, err := s.Get(ctx, userID, clipboardID); err != nil {
		return nil, err
	}
	records, err := s.ledger.ListForClipboard(ctx, clipboardID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return records, nil
}

// claim reserves the idempotency key of req, scoped to the user. It
// returns the scoped key, or "" when the request carries none. A store
// outage disables deduplication rather than failing the push.
func (s *clipboardService) claim(ctx context.Context, req models.PushRequest) (string, error) {
	if req.IdempotencyKey == "" || s.keys == nil {
		return "", nil
	}

	key := req.UserID + ":" + req.IdempotencyKey
	ok, err := s.keys.Claim(ctx, key)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*clipboardService.claim").Msg("idempotency store unavailable")
		return "", nil
	}
	if !ok {
		return "", fmt.Errorf("%w: key %q", ErrDuplicatePush, req.IdempotencyKey)
	}
	return key, nil
}

func (s *clipboardService) release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.keys.Release(ctx, key); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*clipboardService.release").Msg("failed to release idempotency key")
	}
}

// markSynced returns the status the record is known to have afterwards.
// A failed write leaves the record pending, so the device receives the
// item again during its next catch-up.
func (s *clipboardService) markSynced(ctx context.Context, clipboardID, deviceID string) models.SyncStatus {
	log := logger.FromContext(ctx)

	moved, err := s.ledger.MarkSynced(ctx, clipboardID, deviceID)
	if err != nil {
		log.Err(err).Str("func", "*clipboardService.markSynced").
			Str("clipboard_id", clipboardID).
			Str("device_id", deviceID).
			Msg("failed to mark record synced")
		return models.SyncPending
	}
	if moved {
		return models.SyncSynced
	}

	record, err := s.ledger.GetRecord(ctx, clipboardID, deviceID)
	if err != nil {
		if !errors.Is(err, store.ErrSyncRecordNotFound) {
			log.Err(err).Str("func", "*clipboardService.markSynced").Msg("failed to read sync record")
		}
		return models.SyncPending
	}
	log.Debug().Str("func", "*clipboardService.markSynced").
		Str("clipboard_id", clipboardID).
		Str("device_id", deviceID).
		Str("status", string(record.Status)).
		Msg("record already terminal")
	return record.Status
}

func (s *clipboardService) deliver(ctx context.Context, sink presence.Sink, frame models.Frame) error {
	if s.deliveryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.deliveryTimeout)
		defer cancel()
	}
	return sink.Deliver(ctx, frame)
}

func pendingOutcomes(targets []string) []models.DeviceSyncOutcome {
	out := make([]models.DeviceSyncOutcome, 0, len(targets))
	for _, id := range targets {
		out = append(out, models.DeviceSyncOutcome{DeviceID: id, Status: models.SyncPending})
	}
	return out
}

func countDelivered(outcomes []models.DeviceSyncOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Delivered {
			n++
		}
	}
	return n
}

// ToggleFavorite flips the favorite flag of a visible item. Expired and
// foreign items are not found.
func (s *clipboardService) ToggleFavorite(ctx context.Context, userID, clipboardID string) (models.FavoriteToggleResponse, error) {
	if _, err := s.Get(ctx, userID, clipboardID); err != nil {
		return models.FavoriteToggleResponse{}, err
	}

	favorite, err := s.favorites.ToggleFavorite(ctx, userID, clipboardID)
	if err != nil {
		return models.FavoriteToggleResponse{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	logger.FromContext(ctx).Debug().Str("func", "*clipboardService.ToggleFavorite").
		Str("clipboard_id", clipboardID).
		Bool("is_favorite", favorite).
		Msg("favorite toggled")
	return models.FavoriteToggleResponse{ClipboardID: clipboardID, IsFavorite: favorite}, nil
}

func (s *clipboardService) IsFavorite(ctx context.Context, userID, clipboardID string) (models.FavoriteToggleResponse, error) {
	if _, err := s.Get(ctx, userID, clipboardID); err != nil {
		return models.FavoriteToggleResponse{}, err
	}

	favorite, err := s.favorites.IsFavorited(ctx, userID, clipboardID)
	if err != nil {
		return models.FavoriteToggleResponse{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return models.FavoriteToggleResponse{ClipboardID: clipboardID, IsFavorite: favorite}, nil
}

func (s *clipboardService) Favorites(ctx context.Context, userID string, limit, offset uint64) (models.FavoritesResponse, error) {
	switch {
	case limit == 0:
		limit = defaultFavoriteLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	items, total, err := s.favorites.ListFavorites(ctx, userID, limit, offset)
	if err != nil {
		return models.FavoritesResponse{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return models.FavoritesResponse{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}
