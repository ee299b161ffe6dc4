package pointstore

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with pointstore-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithHandle adds a handle field to the logger.
func (l *Logger) WithHandle(handle Handle) *Logger {
	return &Logger{
		Logger: l.Logger.With("handle", uint32(handle)),
	}
}

// WithGeometry adds the store geometry to the logger.
func (l *Logger) WithGeometry(dimensions, capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimensions", dimensions, "capacity", capacity),
	}
}

// LogAdd logs a successful add operation.
func (l *Logger) LogAdd(handle Handle, size int) {
	l.Debug("point added",
		"handle", uint32(handle),
		"size", size,
	)
}

// LogRelease logs a slot returning to the free pool.
func (l *Logger) LogRelease(handle Handle, size int) {
	l.Debug("slot released",
		"handle", uint32(handle),
		"size", size,
	)
}
