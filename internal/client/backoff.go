package client

import (
	"math/rand/v2"
	"sync"
	"time"
)

// backoff grows the reconnect delay by factor on every failure, up to max,
// with up to ±jitter of randomisation. reset is called once a connection
// is established.
type backoff struct {
	initial time.Duration
	max     time.Duration
	factor  float64
	jitter  float64

	mu      sync.Mutex
	current time.Duration
}

func newBackoff(initial, max time.Duration) *backoff {
	if initial <= 0 {
		initial = time.Second
	}
	if max < initial {
		max = initial
	}
	return &backoff{initial: initial, max: max, factor: 2, jitter: 0.1, current: initial}
}

func (b *backoff) next() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := b.current
	if b.jitter > 0 {
		spread := float64(d) * b.jitter
		d = time.Duration(float64(d) + (rand.Float64()*2-1)*spread)
	}

	b.current = min(time.Duration(float64(b.current)*b.factor), b.max)
	return d
}

func (b *backoff) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = b.initial
}
