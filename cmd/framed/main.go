package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/danmuck/uartframe/internal/inspector"
	"github.com/danmuck/uartframe/internal/logging"
	"github.com/danmuck/uartframe/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to optional TOML config")
	flag.Parse()

	logging.ConfigureRuntime()
	observability.InitLogger("framed")

	cfg := inspector.DefaultServiceConfig()
	if *configPath != "" {
		loaded, logLevel, err := loadServiceConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "framed: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
		if lvl, ok := logging.ParseLevel(logLevel); ok {
			zerolog.SetGlobalLevel(lvl)
		}
	}

	svc := inspector.NewServiceWithConfig(cfg)
	if err := svc.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "framed: %v\n", err)
		os.Exit(1)
	}
}
