package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		TokenDuration        Duration `json:"token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		PasswordHashCost     int      `json:"password_hash_cost"`
		HashKey              string   `json:"hash_key"`
		Version              string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimitRPM   int      `json:"rate_limit_rpm"`
		RateLimitBurst int      `json:"rate_limit_burst"`
	} `json:"server,omitempty"`

	Realtime struct {
		SendBuffer      int      `json:"send_buffer"`
		DeliveryTimeout Duration `json:"delivery_timeout"`
		PingInterval    Duration `json:"ping_interval"`
		PongWait        Duration `json:"pong_wait"`
		MaxMessageSize  int64    `json:"max_message_size"`
		PushRPM         int      `json:"push_rpm"`
	} `json:"realtime,omitempty"`

	Cache struct {
		RedisAddress    string   `json:"redis_address"`
		IdempotencyTTL  Duration `json:"idempotency_ttl"`
		IdempotencySize int      `json:"idempotency_size"`
	} `json:"cache,omitempty"`

	Adapter struct {
		HTTPAddress      string   `json:"http_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		PollInterval     Duration `json:"poll_interval"`
		Email            string   `json:"email"`
		Password         string   `json:"password"`
		DeviceName       string   `json:"device_name"`
		DeviceIdentifier string   `json:"device_identifier"`
	} `json:"adapter,omitempty"`

	Workers struct {
		JanitorInterval Duration `json:"janitor_interval"`
		MaxBacklogAge   Duration `json:"max_backlog_age"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			TokenDuration:        time.Duration(jsonCfg.App.TokenDuration),
			RefreshTokenDuration: time.Duration(jsonCfg.App.RefreshTokenDuration),
			PasswordHashCost:     jsonCfg.App.PasswordHashCost,
			HashKey:              jsonCfg.App.HashKey,
			Version:              jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimitRPM:   jsonCfg.Server.RateLimitRPM,
			RateLimitBurst: jsonCfg.Server.RateLimitBurst,
		},
		Realtime: Realtime{
			SendBuffer:      jsonCfg.Realtime.SendBuffer,
			DeliveryTimeout: time.Duration(jsonCfg.Realtime.DeliveryTimeout),
			PingInterval:    time.Duration(jsonCfg.Realtime.PingInterval),
			PongWait:        time.Duration(jsonCfg.Realtime.PongWait),
			MaxMessageSize:  jsonCfg.Realtime.MaxMessageSize,
			PushRPM:         jsonCfg.Realtime.PushRPM,
		},
		Cache: Cache{
			RedisAddress:    jsonCfg.Cache.RedisAddress,
			IdempotencyTTL:  time.Duration(jsonCfg.Cache.IdempotencyTTL),
			IdempotencySize: jsonCfg.Cache.IdempotencySize,
		},
		Adapter: Adapter{
			HTTPAddress:      jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
			PollInterval:     time.Duration(jsonCfg.Adapter.PollInterval),
			Email:            jsonCfg.Adapter.Email,
			Password:         jsonCfg.Adapter.Password,
			DeviceName:       jsonCfg.Adapter.DeviceName,
			DeviceIdentifier: jsonCfg.Adapter.DeviceIdentifier,
		},
		Workers: Workers{
			JanitorInterval: time.Duration(jsonCfg.Workers.JanitorInterval),
			MaxBacklogAge:   time.Duration(jsonCfg.Workers.MaxBacklogAge),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
