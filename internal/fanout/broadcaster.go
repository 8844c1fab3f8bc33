// Package fanout delivers one realtime frame to every live connection of a
// user except those of the originating device.
//
// The broadcaster reads presence and reports per-target outcomes. It never
// touches the sync ledger; deciding what an outcome means is up to the
// caller.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/presence"
	"github.com/MKhiriev/go-clip-sync/models"
)

// ErrDelivery wraps every per-target failure reported in a [DeliveryOutcome].
var ErrDelivery = errors.New("delivery failed")

// Presence is the part of the presence registry the broadcaster reads.
type Presence interface {
	LiveConnections(userID, excludingDeviceID string) []presence.Connection
}

// DeliveryOutcome is the result of delivering to one connection.
type DeliveryOutcome struct {
	ConnectionID string
	DeviceID     string
	Delivered    bool
	Err          error
}

type Broadcaster struct {
	presence Presence
	timeout  time.Duration
	logger   *logger.Logger
}

// NewBroadcaster bounds each delivery by timeout. A non-positive timeout
// leaves deliveries bounded only by the caller's context.
func NewBroadcaster(p Presence, timeout time.Duration, log *logger.Logger) *Broadcaster {
	return &Broadcaster{presence: p, timeout: timeout, logger: log}
}

// Broadcast delivers frame concurrently to the user's live connections,
// skipping originDeviceID. Outcomes are returned in presence order.
// A failing, slow or panicking target never affects the others.
func (b *Broadcaster) Broadcast(ctx context.Context, userID, originDeviceID string, frame models.Frame) []DeliveryOutcome {
	targets := b.presence.LiveConnections(userID, originDeviceID)
	outcomes := make([]DeliveryOutcome, len(targets))
	if len(targets) == 0 {
		return outcomes
	}

	var wg sync.WaitGroup
	for i, conn := range targets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = b.deliver(ctx, conn, frame)
		}()
	}
	wg.Wait()

	log := logger.FromContext(ctx)
	for _, o := range outcomes {
		if o.Err != nil {
			log.Warn().Err(o.Err).
				Str("func", "*Broadcaster.Broadcast").
				Str("event", string(frame.Type)).
				Str("connection_id", o.ConnectionID).
				Str("device_id", o.DeviceID).
				Msg("delivery to target failed")
		}
	}

	return outcomes
}

// Notify broadcasts a frame whose delivery nobody tracks, such as presence
// changes. Failures are only logged.
func (b *Broadcaster) Notify(ctx context.Context, userID, originDeviceID string, frame models.Frame) {
	_ = b.Broadcast(ctx, userID, originDeviceID, frame)
}

func (b *Broadcaster) deliver(ctx context.Context, conn presence.Connection, frame models.Frame) (outcome DeliveryOutcome) {
	outcome = DeliveryOutcome{ConnectionID: conn.ID, DeviceID: conn.DeviceID}

	defer func() {
		if p := recover(); p != nil {
			outcome.Delivered = false
			outcome.Err = fmt.Errorf("%w: panic in sink: %v", ErrDelivery, p)
		}
	}()

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	if err := conn.Sink.Deliver(ctx, frame); err != nil {
		outcome.Err = fmt.Errorf("%w: %w", ErrDelivery, err)
		return outcome
	}

	outcome.Delivered = true
	return outcome
}

// DeviceOutcomes folds per-connection outcomes into one entry per device,
// in order of first appearance. A device counts as delivered when any of
// its connections received the frame.
func DeviceOutcomes(outcomes []DeliveryOutcome) []models.DeviceSyncOutcome {
	index := make(map[string]int, len(outcomes))
	out := make([]models.DeviceSyncOutcome, 0, len(outcomes))

	for _, o := range outcomes {
		i, seen := index[o.DeviceID]
		if !seen {
			index[o.DeviceID] = len(out)
			out = append(out, models.DeviceSyncOutcome{DeviceID: o.DeviceID})
			i = len(out) - 1
		}
		out[i].Delivered = out[i].Delivered || o.Delivered
	}

	return out
}
