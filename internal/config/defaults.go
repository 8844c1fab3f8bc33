package config

import "time"

// defaultConfig returns the values used when no source sets a field.
// Secrets and the DSN have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          "go-clip-sync",
			TokenDuration:        7 * 24 * time.Hour,
			RefreshTokenDuration: 30 * 24 * time.Hour,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			RateLimitRPM:   100,
			RateLimitBurst: 20,
		},
		Realtime: Realtime{
			SendBuffer:      256,
			DeliveryTimeout: 5 * time.Second,
			PingInterval:    30 * time.Second,
			PongWait:        60 * time.Second,
			MaxMessageSize:  2 << 20,
			PushRPM:         120,
		},
		Cache: Cache{
			IdempotencyTTL:  10 * time.Minute,
			IdempotencySize: 10000,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
			PollInterval:   time.Second,
		},
		Workers: Workers{
			JanitorInterval: time.Minute,
		},
	}
}
