// Package logger owns the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
)

var defaultLogger *slog.Logger

// Setup builds the default logger. Output always goes to stderr.
func Setup(level slog.Level, format string) *slog.Logger {
	defaultLogger = New(os.Stderr, level, format)
	slog.SetDefault(defaultLogger)
	return defaultLogger
}

// New builds a logger writing to w; format "json" selects the JSON handler.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// L returns the default logger, falling back to an info-level text logger.
func L() *slog.Logger {
	if defaultLogger == nil {
		return Setup(slog.LevelInfo, "text")
	}
	return defaultLogger
}

// Component returns a child logger tagged with the component name.
func Component(name string) *slog.Logger {
	return L().With("component", name)
}

// Discard is a logger that drops everything, used by tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
