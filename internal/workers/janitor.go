// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/store"
)

// LedgerJanitor closes sync records that can no longer be delivered.
// Each sweep moves pending records of expired items to skipped and, when
// MaxBacklogAge is set, pending records older than that age to failed.
// Delivery never depends on the janitor: expired items are already
// excluded from catch-up.
type LedgerJanitor struct {
	ledger   store.SyncLedger
	interval time.Duration
	maxAge   time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewLedgerJanitor(ledger store.SyncLedger, cfg config.Workers, log *logger.Logger) *LedgerJanitor {
	return &LedgerJanitor{
		ledger:   ledger,
		interval: cfg.JanitorInterval,
		maxAge:   cfg.MaxBacklogAge,
		now:      time.Now,
		logger:   log,
	}
}

// Start launches the sweep loop. A zero interval leaves the janitor idle.
func (j *LedgerJanitor) Start(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Info().Msg("ledger janitor disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sweep(jobCtx)
			}
		}
	}()
}

func (j *LedgerJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *LedgerJanitor) sweep(ctx context.Context) {
	now := j.now().UTC()

	skipped, err := j.ledger.SkipExpired(ctx, now)
	if err != nil {
		j.logger.Err(err).Str("func", "*LedgerJanitor.sweep").Msg("skipping expired records failed")
	}

	var failed int64
	if j.maxAge > 0 {
		failed, err = j.ledger.FailOlderThan(ctx, now.Add(-j.maxAge))
		if err != nil {
			j.logger.Err(err).Str("func", "*LedgerJanitor.sweep").Msg("failing stale records failed")
		}
	}

	if skipped > 0 || failed > 0 {
		j.logger.Info().Int64("skipped", skipped).Int64("failed", failed).Msg("ledger swept")
	}
}
