package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-artillery/internal/config"
)

// openLogger opens the log file. Bubble Tea owns the terminal, so logs go
// to a file; an empty path discards them. The returned func closes the file.
func openLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", level, err)
	}

	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	path, err = config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "artillery",
		Level:           lvl,
	})
	return logger, func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}, nil
}
