// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the merged [StructuredConfig] is internally
// consistent. Requirements that only one binary has are checked by
// [StructuredConfig.ValidateServer] and [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Realtime.PingInterval < 0 || cfg.Realtime.PongWait < 0 || cfg.Realtime.DeliveryTimeout < 0 {
		return ErrInvalidRealtimeConfigs
	}
	if cfg.Realtime.PingInterval > 0 && cfg.Realtime.PongWait > 0 &&
		cfg.Realtime.PongWait <= cfg.Realtime.PingInterval {
		return ErrInvalidRealtimeConfigs
	}

	if cfg.Workers.JanitorInterval < 0 || cfg.Workers.MaxBacklogAge < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ValidateServer checks the settings the server cannot start without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.HashKey == "" ||
		cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.Email == "" || cfg.Adapter.Password == "" ||
		strings.TrimSpace(cfg.Adapter.DeviceIdentifier) == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.PollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
