// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
)

// TierBackend selects where the held tier is persisted.
type TierBackend string

const (
	BackendFile     TierBackend = "file"
	BackendRedis    TierBackend = "redis"
	BackendPostgres TierBackend = "postgres"
	// BackendMemory keeps the tier for the process lifetime only. Dev and
	// test use.
	BackendMemory TierBackend = "memory"
)

// Config is the full service configuration.
type Config struct {
	Addr string `env:"ADDR" envDefault:":8094"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // json | pretty
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	SentryDsn string `env:"SENTRY_DSN"`

	// TMDB credentials. Empty key is allowed: the catalog then serves the
	// built-in sample data in degraded mode.
	TMDBAPIKey  string        `env:"TMDB_API_KEY"`
	RowCacheTTL time.Duration `env:"ROW_CACHE_TTL" envDefault:"10m"`

	TierBackend TierBackend `env:"TIER_BACKEND" envDefault:"file"`
	TierFile    string      `env:"TIER_FILE" envDefault:"/var/ceylonflix/tier"`
	RedisURL    string      `env:"REDIS_URL"`
	PostgresURL string      `env:"POSTGRES_URL"`

	// StreamSecret enables HMAC-signed playback references when set.
	StreamSecret string        `env:"STREAM_HMAC_SECRET"`
	StreamTTL    time.Duration `env:"STREAM_URL_TTL" envDefault:"15m"`

	// RatePerMinute caps requests per client IP on the public API.
	// 0 disables rate limiting.
	RatePerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`
}

// LoadFromEnv parses and validates the configuration.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.TierBackend {
	case BackendFile, BackendMemory:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config: TIER_BACKEND=redis requires REDIS_URL")
		}
	case BackendPostgres:
		if c.PostgresURL == "" {
			return fmt.Errorf("config: TIER_BACKEND=postgres requires POSTGRES_URL")
		}
	default:
		return fmt.Errorf("config: unknown TIER_BACKEND %q", c.TierBackend)
	}

	switch c.LogFormat {
	case "json", "pretty":
	default:
		return fmt.Errorf("config: unknown LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}
