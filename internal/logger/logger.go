// Package logger provides structured logging for the pipeline.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog with a level parsed from configuration.
type Logger struct {
	internal *slog.Logger
}

// New creates a logger writing text records to stderr at the given
// level. Unknown level strings fall back to info.
func New(level string) *Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return &Logger{internal: slog.New(handler)}
}

// Debug logs a debug level message.
func (l *Logger) Debug(msg string, args ...any) { l.internal.Debug(msg, args...) }

// Info logs an info level message.
func (l *Logger) Info(msg string, args ...any) { l.internal.Info(msg, args...) }

// Warn logs a warning level message.
func (l *Logger) Warn(msg string, args ...any) { l.internal.Warn(msg, args...) }

// Error logs an error level message.
func (l *Logger) Error(msg string, args ...any) { l.internal.Error(msg, args...) }

// With returns a child logger carrying the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{internal: l.internal.With(args...)}
}
