package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.Addr != ":8094" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.TierBackend != BackendFile {
		t.Errorf("TierBackend = %q, want file", cfg.TierBackend)
	}
	if cfg.RowCacheTTL != 10*time.Minute {
		t.Errorf("RowCacheTTL = %v", cfg.RowCacheTTL)
	}
	if cfg.LogFormat != "json" || cfg.LogLevel != "info" {
		t.Errorf("log defaults = %q/%q", cfg.LogFormat, cfg.LogLevel)
	}
	if cfg.RatePerMinute != 120 {
		t.Errorf("RatePerMinute = %d", cfg.RatePerMinute)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("TIER_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("LOG_FORMAT", "pretty")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.TierBackend != BackendRedis || cfg.LogFormat != "pretty" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadFromEnv_BackendRequiresDSN(t *testing.T) {
	t.Setenv("TIER_BACKEND", "postgres")
	if _, err := LoadFromEnv(); err == nil {
		t.Error("postgres backend without POSTGRES_URL should fail")
	}
}

func TestLoadFromEnv_UnknownBackend(t *testing.T) {
	t.Setenv("TIER_BACKEND", "etcd")
	if _, err := LoadFromEnv(); err == nil {
		t.Error("unknown backend should fail validation")
	}
}
