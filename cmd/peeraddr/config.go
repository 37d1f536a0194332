package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/agenthands/peeraddr/pkg/core"
)

const (
	envFormat     = "PEERADDR_FORMAT"
	envCIDVersion = "PEERADDR_CID_VERSION"
	envLogLevel   = "PEERADDR_LOG_LEVEL"
)

// loadConfig starts from core.DefaultConfig, applies environment overrides and
// binds the result to flagSet so command-line flags win.
func loadConfig(flagSet *pflag.FlagSet, getenv func(string) string) (*core.Config, error) {
	cfg := core.DefaultConfig()

	if v := getenv(envFormat); v != "" {
		cfg.Output.Format = v
	}
	if v := getenv(envCIDVersion); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envCIDVersion, err)
		}
		cfg.Digest.CIDVersion = n
	}
	if v := getenv(envLogLevel); v != "" {
		cfg.Log.Level = v
	}

	flagSet.StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "output format: text, json or cbor (hex)")
	flagSet.BoolVar(&cfg.Output.Short, "short", false, "include the shortened display form")
	flagSet.BoolVar(&cfg.Output.Digest, "digest", false, "include the SHA-256 digest")
	flagSet.BoolVar(&cfg.Output.LegacyDigest, "legacy-digest", false, "include the legacy digest (the address itself)")
	flagSet.BoolVar(&cfg.Output.CID, "cid", false, "include the content identifier")
	flagSet.IntVar(&cfg.Digest.CIDVersion, "cid-version", cfg.Digest.CIDVersion, "CID version, 0 or 1")
	flagSet.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn or error")

	return &cfg, nil
}

func validateConfig(cfg *core.Config) error {
	switch cfg.Output.Format {
	case formatText, formatJSON, formatCBOR:
	default:
		return fmt.Errorf("%w: unknown format %q", core.ErrInvalidInput, cfg.Output.Format)
	}
	return nil
}
