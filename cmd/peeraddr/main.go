// peeraddr validates peer addresses given on the command line and prints
// them, optionally with their short form, digests and content identifier.
//
// Each argument goes through the same validation as decoding an address from
// an interchange format, so the "Test" placeholder is rejected here.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/agenthands/peeraddr/pkg/address"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	flagSet := pflag.NewFlagSet("peeraddr", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	cfg, err := loadConfig(flagSet, getenv)
	if err != nil {
		return err
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, err := newLogger(stderr, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	rend, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	inputs := flagSet.Args()
	if len(inputs) == 0 {
		return errors.New("usage: peeraddr [flags] ADDRESS...")
	}

	var rejected int
	for _, arg := range inputs {
		var a address.Address
		if err := a.UnmarshalText([]byte(arg)); err != nil {
			rejected++
			logger.Warn("rejected address", zap.String("input", arg), zap.Error(err))
			continue
		}
		logger.Debug("accepted address", zap.String("address", a.Short()))
		if err := rend.write(stdout, a); err != nil {
			return fmt.Errorf("write %s: %w", a.Short(), err)
		}
	}

	if rejected > 0 {
		return fmt.Errorf("%d of %d addresses rejected", rejected, len(inputs))
	}
	return nil
}

func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)), nil
}
