package config_test

import (
	"testing"
	"time"

	"github.com/iho/partyledger/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.RedisURL != "" {
		t.Fatalf("expected redis to be disabled by default, got %q", cfg.RedisURL)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.StatementTimeout != 15*time.Second {
		t.Fatalf("expected default statement timeout 15s, got %s", cfg.StatementTimeout)
	}

	if cfg.AdapterPoolSize != 64 {
		t.Fatalf("expected default adapter pool size 64, got %d", cfg.AdapterPoolSize)
	}

	if cfg.SourceHealthTTL != 24*time.Hour {
		t.Fatalf("expected default source health TTL 24h, got %s", cfg.SourceHealthTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("MONGO_URL", "mongodb://example:27017")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STATEMENT_TIMEOUT", "3s")
	t.Setenv("SOURCE_RETRY_MAX", "5")
	t.Setenv("RUN_MIGRATIONS", "true")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}
	if cfg.MongoURL != "mongodb://example:27017" {
		t.Fatalf("expected custom mongo URL, got %s", cfg.MongoURL)
	}
	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}
	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port 9090, got %s", cfg.HTTPPort)
	}
	if cfg.StatementTimeout != 3*time.Second {
		t.Fatalf("expected statement timeout 3s, got %s", cfg.StatementTimeout)
	}
	if cfg.SourceRetryMax != 5 {
		t.Fatalf("expected retry max 5, got %d", cfg.SourceRetryMax)
	}
	if !cfg.RunMigrations {
		t.Fatalf("expected migrations to be enabled")
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("STATEMENT_TIMEOUT", "soon")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
