package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/uartframe/internal/inspector"
	"github.com/danmuck/uartframe/internal/logging"
)

// framed config.toml key mapping to inspector runtime settings.
type fileConfig struct {
	Addr            string   `toml:"addr"`
	LogLevel        string   `toml:"log_level"`
	EnableCORS      bool     `toml:"enable_cors"`
	AllowedOrigins  []string `toml:"allowed_origins"`
	ShutdownSeconds int      `toml:"shutdown_timeout_seconds"`
}

// framed loader for TOML config with default overlay.
func loadServiceConfig(path string) (inspector.ServiceConfig, string, error) {
	cfg := inspector.DefaultServiceConfig()
	logLevel := ""

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return inspector.ServiceConfig{}, "", fmt.Errorf("load framed config: %w", err)
	}

	if meta.IsDefined("addr") {
		cfg.ListenAddr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("log_level") {
		level := strings.TrimSpace(raw.LogLevel)
		if _, ok := logging.ParseLevel(level); !ok {
			return inspector.ServiceConfig{}, "", fmt.Errorf("load framed config: unknown log level %q", level)
		}
		logLevel = level
	}
	if meta.IsDefined("enable_cors") {
		cfg.EnableCORS = raw.EnableCORS
	}
	if meta.IsDefined("allowed_origins") {
		origins := make([]string, 0, len(raw.AllowedOrigins))
		for _, o := range raw.AllowedOrigins {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		cfg.AllowedOrigins = origins
	}
	if meta.IsDefined("shutdown_timeout_seconds") {
		if raw.ShutdownSeconds <= 0 {
			return inspector.ServiceConfig{}, "", fmt.Errorf("load framed config: shutdown timeout must be positive")
		}
		cfg.ShutdownTimeout = time.Duration(raw.ShutdownSeconds) * time.Second
	}

	return cfg, logLevel, nil
}
