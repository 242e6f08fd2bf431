package trisum

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with trisum-specific context.
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

// WithEngine adds an engine field to the logger.
func (l *Logger) WithEngine(engine Engine) *Logger {
	return &Logger{
		Logger: l.Logger.With("engine", engine.String()),
	}
}

// WithSize adds an input size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// LogChecksum logs a completed checksum operation.
func (l *Logger) LogChecksum(engine Engine, size int, sum uint32) {
	l.Debug("checksum completed",
		"engine", engine.String(),
		"size", size,
		"sum", fmt.Sprintf("0x%08x", sum),
	)
}

// LogFault logs a checksum fault immediately before the abort.
func (l *Logger) LogFault(engine Engine, size int, err error) {
	l.Error("checksum fault",
		"engine", engine.String(),
		"size", size,
		"error", err,
	)
}

// LogSelfTest logs a self test run.
func (l *Logger) LogSelfTest(duration time.Duration, err error) {
	if err != nil {
		l.Error("self test failed",
			"duration", duration,
			"error", err,
		)
	} else {
		l.Info("self test passed",
			"duration", duration,
		)
	}
}
