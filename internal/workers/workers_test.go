// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// orderWorker appends its id to a shared log on Start and Stop.
type orderWorker struct {
	id  int
	log *[]string
}

func (w *orderWorker) Start(context.Context) {
	*w.log = append(*w.log, "start", string(rune('0'+w.id)))
}
func (w *orderWorker) Stop() { *w.log = append(*w.log, "stop", string(rune('0'+w.id))) }

func TestWorkers_StartAndStopOrder(t *testing.T) {
	var log []string
	ws := NewWorkers(&orderWorker{id: 1, log: &log}, &orderWorker{id: 2, log: &log})

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start", "1", "start", "2", "stop", "2", "stop", "1"}, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()
	ws.Start(context.Background())
	ws.Stop()
}

// ── LedgerJanitor ──

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newJanitor(t *testing.T, cfg config.Workers) (*LedgerJanitor, *mock.MockSyncLedger) {
	t.Helper()
	ledger := mock.NewMockSyncLedger(gomock.NewController(t))
	j := NewLedgerJanitor(ledger, cfg, logger.Nop())
	j.now = func() time.Time { return fixedNow }
	return j, ledger
}

func TestLedgerJanitor_Sweep(t *testing.T) {
	j, ledger := newJanitor(t, config.Workers{MaxBacklogAge: time.Hour})

	ledger.EXPECT().SkipExpired(gomock.Any(), fixedNow).Return(int64(2), nil)
	ledger.EXPECT().FailOlderThan(gomock.Any(), fixedNow.Add(-time.Hour)).Return(int64(1), nil)

	j.sweep(context.Background())
}

func TestLedgerJanitor_FailPolicyOff(t *testing.T) {
	j, ledger := newJanitor(t, config.Workers{})

	ledger.EXPECT().SkipExpired(gomock.Any(), fixedNow).Return(int64(0), nil)
	ledger.EXPECT().FailOlderThan(gomock.Any(), gomock.Any()).Times(0)

	j.sweep(context.Background())
}

func TestLedgerJanitor_ErrorsDoNotStopTheSweep(t *testing.T) {
	j, ledger := newJanitor(t, config.Workers{MaxBacklogAge: time.Minute})

	ledger.EXPECT().SkipExpired(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("locked"))
	ledger.EXPECT().FailOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	j.sweep(context.Background())
}

func TestLedgerJanitor_RunsOnTicker(t *testing.T) {
	j, ledger := newJanitor(t, config.Workers{JanitorInterval: 10 * time.Millisecond})

	var sweeps atomic.Int32
	ledger.EXPECT().SkipExpired(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Time) (int64, error) {
			sweeps.Add(1)
			return 0, nil
		}).MinTimes(2)

	j.Start(context.Background())
	assert.Eventually(t, func() bool { return sweeps.Load() >= 2 }, time.Second, 5*time.Millisecond)
	j.Stop()

	after := sweeps.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, sweeps.Load(), "no sweeps after Stop")
}

func TestLedgerJanitor_DisabledAndIdempotentStop(t *testing.T) {
	j, _ := newJanitor(t, config.Workers{})

	j.Stop()
	j.Start(context.Background())
	j.Stop()
	j.Stop()
}
