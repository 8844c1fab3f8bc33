// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// clipboard sync server and client agent. It aggregates all
// sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address, timeouts and HTTP rate limits.
	Server Server `envPrefix:"SERVER_"`

	// Realtime holds WebSocket connection and delivery settings.
	Realtime Realtime `envPrefix:"REALTIME_"`

	// Cache holds the idempotency store settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Adapter holds the settings the client agent uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an access token and its session
	// remain valid after issuance (e.g. "168h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RefreshTokenDuration specifies how long a refresh token remains valid.
	// Env: APP_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost used for account passwords.
	// Zero selects bcrypt.DefaultCost.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// HashKey is the HMAC key used to fingerprint issued tokens before
	// they are stored in the sessions table.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Exposed via the health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP and WebSocket server
	// listens, in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single REST
	// request before the server cancels it. WebSocket connections are
	// not bound by it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimitRPM is the number of REST requests per minute allowed from
	// a single client IP. Zero disables the limiter.
	// Env: SERVER_RATE_LIMIT_RPM
	RateLimitRPM int `env:"RATE_LIMIT_RPM"`

	// RateLimitBurst is the token bucket size of the REST limiter.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`
}

// Realtime holds settings of the WebSocket gateway and the broadcaster.
type Realtime struct {
	// SendBuffer is the capacity of each connection's outbound queue.
	// Env: REALTIME_SEND_BUFFER
	SendBuffer int `env:"SEND_BUFFER"`

	// DeliveryTimeout bounds a single delivery to a single connection.
	// Env: REALTIME_DELIVERY_TIMEOUT
	DeliveryTimeout time.Duration `env:"DELIVERY_TIMEOUT"`

	// PingInterval is how often the server pings idle connections.
	// Env: REALTIME_PING_INTERVAL
	PingInterval time.Duration `env:"PING_INTERVAL"`

	// PongWait is how long the server waits for any inbound frame or pong
	// before it considers the connection dead. Must exceed PingInterval.
	// Env: REALTIME_PONG_WAIT
	PongWait time.Duration `env:"PONG_WAIT"`

	// MaxMessageSize caps inbound frames, in bytes.
	// Env: REALTIME_MAX_MESSAGE_SIZE
	MaxMessageSize int64 `env:"MAX_MESSAGE_SIZE"`

	// PushRPM limits clipboard pushes per minute per connection.
	// Zero disables the limiter.
	// Env: REALTIME_PUSH_RPM
	PushRPM int `env:"PUSH_RPM"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its scheme: "postgres://..." opens pgx,
	// "sqlite://path" or "file:path" opens SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds the push idempotency store settings.
type Cache struct {
	// RedisAddress enables the shared Redis store when non-empty
	// ("host:port"). Otherwise an in-process LRU is used.
	// Env: CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// IdempotencyTTL is how long a push key is remembered.
	// Env: CACHE_IDEMPOTENCY_TTL
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL"`

	// IdempotencySize caps the in-process store.
	// Env: CACHE_IDEMPOTENCY_SIZE
	IdempotencySize int `env:"IDEMPOTENCY_SIZE"`
}

// Adapter holds configuration the client agent uses to talk to the server.
type Adapter struct {
	// HTTPAddress is the server base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for outbound REST requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PollInterval is how often the agent reads the local clipboard.
	// Env: ADAPTER_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// Email and Password are the account credentials of the agent.
	// Env: ADAPTER_EMAIL, ADAPTER_PASSWORD
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`

	// DeviceName and DeviceIdentifier describe this installation.
	// Env: ADAPTER_DEVICE_NAME, ADAPTER_DEVICE_IDENTIFIER
	DeviceName       string `env:"DEVICE_NAME"`
	DeviceIdentifier string `env:"DEVICE_IDENTIFIER"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// JanitorInterval is how often the ledger janitor runs.
	// Zero disables the janitor.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`

	// MaxBacklogAge moves pending records older than this to failed.
	// Zero keeps pending records until they are delivered.
	// Env: WORKERS_MAX_BACKLOG_AGE
	MaxBacklogAge time.Duration `env:"MAX_BACKLOG_AGE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
