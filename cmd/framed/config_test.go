package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadServiceConfigDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.toml")
	content := `
addr = "127.0.0.1:7411"
log_level = "warn"
enable_cors = true
allowed_origins = ["http://localhost:3000", " "]
shutdown_timeout_seconds = 10
	`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, logLevel, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:7411" {
		t.Fatalf("unexpected listen addr: %q", cfg.ListenAddr)
	}
	if logLevel != "warn" {
		t.Fatalf("unexpected log level: %q", logLevel)
	}
	if !cfg.EnableCORS {
		t.Fatalf("expected CORS enabled")
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout: %v", cfg.ShutdownTimeout)
	}
}

func TestLoadServiceConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`log_level = "debug"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ListenAddr != ":7400" {
		t.Fatalf("listen addr should stay at default, got %q", cfg.ListenAddr)
	}
	if cfg.EnableCORS {
		t.Fatalf("CORS should stay disabled by default")
	}
}

func TestLoadServiceConfigRejectsBadShutdownTimeout(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("shutdown_timeout_seconds = -2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, err := loadServiceConfig(path); err == nil {
		t.Fatalf("expected error for negative shutdown timeout")
	}
}
