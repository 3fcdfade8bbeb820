package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/uartframe/internal/logging"
	"github.com/danmuck/uartframe/pkg/frame"
)

func main() {
	configPath := flag.String("config", "", "path to optional TOML config")
	flag.Usage = usage
	flag.Parse()

	logging.ConfigureRuntime()

	cfg := defaultCLIConfig()
	if *configPath != "" {
		loaded, err := loadCLIConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "framectl: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		zerolog.SetGlobalLevel(lvl)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "encode":
		err = runEncode(cfg, args[1:])
	case "scan":
		err = runScan(cfg, args[1:])
	case "scan-all":
		err = runScanAll(cfg, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "framectl: unknown command %q\n", args[0])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "framectl: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: framectl [-config file] <command> [args]

commands:
  encode <payload-hex>          build a frame around the payload
  scan <buffer-hex> [offset]    recover the first frame in the buffer
  scan-all <buffer-hex>         recover every frame in the buffer
`)
}

func runEncode(cfg cliConfig, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("encode: expected <payload-hex>")
	}
	payload, err := parseHexArg(args[0])
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	f, err := frame.Encode(payload)
	if err != nil {
		return fmt.Errorf("encode: %w (reason=%s)", err, frame.Reason(err))
	}
	log.Debug().Int("payload_len", len(payload)).Int("frame_len", len(f)).Msg("encoded frame")
	fmt.Println(formatHex(cfg, f))
	return nil
}

func runScan(cfg cliConfig, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("scan: expected <buffer-hex> [offset]")
	}
	buf, err := parseHexArg(args[0])
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	offset := 0
	if len(args) == 2 {
		offset, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("scan: invalid offset %q", args[1])
		}
	}

	res, err := frame.Scan(buf, offset)
	if err != nil {
		return fmt.Errorf("scan: %w (reason=%s truncation=%v)",
			err, frame.Reason(err), frame.IsTruncation(err))
	}
	fmt.Printf("payload: %s\n", formatHex(cfg, res.Payload))
	fmt.Printf("header_index: %d\n", res.HeaderIndex)
	fmt.Printf("end_index: %d\n", res.EndIndex)
	return nil
}

func runScanAll(cfg cliConfig, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("scan-all: expected <buffer-hex>")
	}
	buf, err := parseHexArg(args[0])
	if err != nil {
		return fmt.Errorf("scan-all: %w", err)
	}

	results := frame.ScanAll(buf)
	for i, res := range results {
		fmt.Printf("frame %d: payload=%s header_index=%d end_index=%d\n",
			i, formatHex(cfg, res.Payload), res.HeaderIndex, res.EndIndex)
	}
	fmt.Printf("frames: %d\n", len(results))
	return nil
}

func parseHexArg(raw string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ':', ',':
			return -1
		}
		return r
	}, raw)
	cleaned = strings.TrimPrefix(cleaned, "0x")
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}

func formatHex(cfg cliConfig, data []byte) string {
	s := hex.EncodeToString(data)
	if cfg.UppercaseHex {
		return strings.ToUpper(s)
	}
	return s
}
