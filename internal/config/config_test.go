package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_USERNAME", "")
	t.Setenv("API_PASSWORD", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURI != "https://api.vedicrishiastro.com/v1" {
		t.Fatalf("BaseURI = %q", cfg.BaseURI)
	}
	if cfg.UserAgent != "kundli.io 0.1" {
		t.Fatalf("UserAgent = %q", cfg.UserAgent)
	}
	if cfg.APITimeout != 30*time.Second {
		t.Fatalf("APITimeout = %s", cfg.APITimeout)
	}
	if cfg.StorageType != "bbolt" {
		t.Fatalf("StorageType = %q", cfg.StorageType)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URI", "http://localhost:9000/v1")
	t.Setenv("API_USERNAME", "user")
	t.Setenv("API_PASSWORD", "secret")
	t.Setenv("API_TIMEOUT_SECONDS", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURI != "http://localhost:9000/v1" || cfg.Username != "user" || cfg.Password != "secret" {
		t.Fatalf("unexpected api config: %#v", cfg)
	}
	if cfg.APITimeout != 7*time.Second {
		t.Fatalf("APITimeout = %s", cfg.APITimeout)
	}
	if got := cfg.Redacted().Password; got != "***" {
		t.Fatalf("Redacted password = %q", got)
	}
	if cfg.Password != "secret" {
		t.Fatalf("Redacted mutated the original config")
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Setenv("API_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero api timeout")
	}
}
