package cuckoogo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with filter-specific helpers, providing
// structured logging with consistent field names.
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

// LogGrow logs the creation of a new sub-filter.
func (l *Logger) LogGrow(newCapacity, numFilters int) {
	l.Info("sub-filter appended",
		"capacity", newCapacity,
		"filters", numFilters,
	)
}

// LogInsertRetry logs an insert that hit a full sub-filter before growth.
func (l *Logger) LogInsertRetry(err error, numFilters int) {
	l.Debug("insert retried after growth",
		"filters", numFilters,
		"cause", err,
	)
}

// LogDelete logs a delete operation.
func (l *Logger) LogDelete(found bool) {
	l.Debug("delete completed",
		"found", found,
	)
}
