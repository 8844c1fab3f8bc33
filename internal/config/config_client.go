package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings and credentials used by the
// client agent.
type ClientAdapter struct {
	// HTTPAddress is the server base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound REST requests.
	RequestTimeout time.Duration
	// PollInterval is how often the local clipboard is read.
	PollInterval time.Duration

	Email            string
	Password         string
	DeviceName       string
	DeviceIdentifier string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Version is reported to the server in the User-Agent header.
	Version string
	// Adapter contains server address, credentials and timings.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Version: cfg.App.Version,
		Adapter: ClientAdapter{
			HTTPAddress:      cfg.Adapter.HTTPAddress,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			PollInterval:     cfg.Adapter.PollInterval,
			Email:            cfg.Adapter.Email,
			Password:         cfg.Adapter.Password,
			DeviceName:       cfg.Adapter.DeviceName,
			DeviceIdentifier: cfg.Adapter.DeviceIdentifier,
		},
	}
}
