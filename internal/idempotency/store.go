// Package idempotency remembers clipboard push keys for a limited time so
// that a client retrying a push does not create a second item.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
)

// ErrEmptyKey is returned when Claim or Release is called without a key.
var ErrEmptyKey = errors.New("idempotency key is empty")

// Store records keys that were already used.
//
// Claim returns true when key was not seen within the TTL and is now taken.
// Release forgets key so a later push with the same key proceeds; it is
// called when the push failed before anything was persisted.
type Store interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
	Close() error
}

// New returns a Redis-backed store when cfg.RedisAddress is set and an
// in-process LRU otherwise.
func New(ctx context.Context, cfg config.Cache, log *logger.Logger) (Store, error) {
	if cfg.RedisAddress == "" {
		log.Info().Str("func", "idempotency.New").Msg("using in-process idempotency store")
		return NewMemoryStore(cfg.IdempotencySize, cfg.IdempotencyTTL), nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddress, err)
	}

	log.Info().Str("func", "idempotency.New").Str("address", cfg.RedisAddress).Msg("using redis idempotency store")
	return NewRedisStore(client, cfg.IdempotencyTTL), nil
}

// ── in-process ──

const defaultMemorySize = 10_000

type MemoryStore struct {
	mu   sync.Mutex
	keys *expirable.LRU[string, struct{}]
}

// NewMemoryStore keeps at most size keys, each for ttl. The oldest keys are
// evicted first once the store is full.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = defaultMemorySize
	}
	return &MemoryStore{keys: expirable.NewLRU[string, struct{}](size, nil, ttl)}
}

func (m *MemoryStore) Claim(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.keys.Contains(key) {
		return false, nil
	}
	m.keys.Add(key, struct{}{})
	return true, nil
}

func (m *MemoryStore) Release(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	m.keys.Remove(key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Close() error {
	m.keys.Purge()
	return nil
}

// ── redis ──

const redisKeyPrefix = "clipsync:push:"

// RedisStore shares claimed keys between server instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Claim(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	ok, err := r.client.SetNX(ctx, redisKeyPrefix+key, time.Now().UTC().Unix(), r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim idempotency key: %w", err)
	}
	return ok, nil
}

func (r *RedisStore) Release(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
