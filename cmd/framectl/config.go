package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/uartframe/internal/logging"
)

// framectl config.toml key mapping.
type fileConfig struct {
	LogLevel     string `toml:"log_level"`
	UppercaseHex bool   `toml:"uppercase_hex"`
}

type cliConfig struct {
	LogLevel     string
	UppercaseHex bool
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		LogLevel:     "",
		UppercaseHex: false,
	}
}

// framectl loader for TOML config with default overlay.
func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load framectl config: %w", err)
	}

	if meta.IsDefined("log_level") {
		level := strings.TrimSpace(raw.LogLevel)
		if _, ok := logging.ParseLevel(level); !ok {
			return cliConfig{}, fmt.Errorf("load framectl config: unknown log level %q", level)
		}
		cfg.LogLevel = level
	}
	if meta.IsDefined("uppercase_hex") {
		cfg.UppercaseHex = raw.UppercaseHex
	}

	return cfg, nil
}
