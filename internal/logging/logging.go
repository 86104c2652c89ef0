// Package logging installs the process-wide slog logger. The TUI owns the
// terminal, so records go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLogPath returns the log file location, creating its directory.
// BINOMEN_LOG wins; otherwise $XDG_STATE_HOME/binomen/binomen.log, falling
// back to ~/.local/state.
func DefaultLogPath() (string, error) {
	if p := os.Getenv("BINOMEN_LOG"); p != "" {
		return p, ensureDir(p)
	}
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	p := filepath.Join(stateDir, "binomen", "binomen.log")
	return p, ensureDir(p)
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	return nil
}

// ParseLevel maps debug|info|warn|error to a slog level. Anything else is
// info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New builds a text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup opens path for appending, installs a logger on it as the slog
// default and returns it with a close func. An empty path discards output.
func Setup(path, level string) (*slog.Logger, func() error, error) {
	if path == "" {
		logger := New(io.Discard, ParseLevel(level))
		slog.SetDefault(logger)
		return logger, func() error { return nil }, nil
	}
	if err := ensureDir(path); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := New(f, ParseLevel(level))
	slog.SetDefault(logger)
	return logger, f.Close, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError)
}
