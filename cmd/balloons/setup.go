package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-pop/internal/config"
)

// loadConfig loads balloons.yaml honoring --config.
func loadConfig() (config.BalloonConfig, error) {
	cfg, err := config.LoadBalloons(flagConfig)
	if err != nil {
		return config.BalloonConfig{}, err
	}
	return cfg, nil
}

// resolveSeed returns --seed, or a time-based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds the command logger. With --log-file logs are appended to
// that file; otherwise they go to fallback, which may be io.Discard when the
// terminal is owned by the UI. The returned close func is never nil.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
