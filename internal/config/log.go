package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// SetupFileLogging routes the default slog logger to the log file. The TUI
// owns the terminal, so nothing may be written to stdout/stderr while it runs.
// The returned closer closes the file.
func SetupFileLogging(debug bool) (io.Closer, error) {
	if err := EnsureAppDir(); err != nil {
		return nil, fmt.Errorf("failed to create app directory: %w", err)
	}
	path, err := LogFile()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	slog.SetDefault(NewLogger(f, levelFor(slog.LevelInfo, debug)))
	return f, nil
}

// SetupStderrLogging routes the default slog logger to stderr. Only warnings
// surface unless debug is on.
func SetupStderrLogging(debug bool) {
	slog.SetDefault(NewLogger(os.Stderr, levelFor(slog.LevelWarn, debug)))
}

// NewLogger builds a text logger at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func levelFor(base slog.Level, debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return base
}
