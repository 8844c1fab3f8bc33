package gateway

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"golang.org/x/time/rate"
)

// RateLimiter enforces per-key request rates with a token bucket per key.
// Keys are connection IDs for realtime pushes and client IPs for HTTP.
type RateLimiter struct {
	limiters sync.Map // key → *limiterEntry
	r        rate.Limit
	burst    int

	stop     chan struct{}
	stopOnce sync.Once
	logger   *logger.Logger
}

type limiterEntry struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing rpm requests per minute with
// the given burst. rpm <= 0 disables it.
func NewRateLimiter(rpm, burst int, log *logger.Logger) *RateLimiter {
	if burst <= 0 {
		burst = 5
	}
	r := rate.Limit(0)
	if rpm > 0 {
		r = rate.Limit(float64(rpm) / 60.0)
	}
	rl := &RateLimiter{r: r, burst: burst, stop: make(chan struct{}), logger: log}

	if rl.Enabled() {
		go rl.cleanupLoop(5 * time.Minute)
	}

	return rl
}

// Allow reports whether a request for key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	if !rl.Enabled() {
		return true
	}
	entry := rl.getOrCreate(key)

	entry.mu.Lock()
	entry.lastSeen = time.Now()
	entry.mu.Unlock()

	if !entry.limiter.Allow() {
		rl.logger.Warn().Str("key", key).Msg("rate limited")
		return false
	}
	return true
}

func (rl *RateLimiter) Enabled() bool {
	return rl.r > 0
}

// Forget drops the bucket of key, for example when a connection closes.
func (rl *RateLimiter) Forget(key string) {
	rl.limiters.Delete(key)
}

// Close stops the background cleanup.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) getOrCreate(key string) *limiterEntry {
	if v, ok := rl.limiters.Load(key); ok {
		return v.(*limiterEntry)
	}
	entry := &limiterEntry{
		limiter:  rate.NewLimiter(rl.r, rl.burst),
		lastSeen: time.Now(),
	}
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry)
}

func (rl *RateLimiter) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now().Add(-2 * every))
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) cleanup(cutoff time.Time) {
	rl.limiters.Range(func(key, value any) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		stale := entry.lastSeen.Before(cutoff)
		entry.mu.Unlock()
		if stale {
			rl.limiters.Delete(key)
		}
		return true
	})
}
