package runemap

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with helpers for map storage events. Code points
// are logged as upper-case hex under the keys lo and hi.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler logs text at info level to stderr.
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

// NewJSONLogger logs JSON records to stderr. Grow and bulk load events are
// emitted at debug level, invariant violations at error level.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger logs key=value records at or above level to stderr.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger discards everything. It is the default for new maps.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithRun adds the bounds of a code point run to the logger.
func (l *Logger) WithRun(lo, hi rune) *Logger {
	return &Logger{
		Logger: l.Logger.With("lo", hex(lo), "hi", hex(hi)),
	}
}

// LogGrow logs a reallocation of the backing storage.
func (l *Logger) LogGrow(oldCapacity, newCapacity, length int) {
	l.Debug("storage grown",
		"old_capacity", oldCapacity,
		"new_capacity", newCapacity,
		"length", length,
	)
}

// LogBulkLoad logs a completed or failed bulk load.
func (l *Logger) LogBulkLoad(kind string, codePoints, runs int, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("bulk load failed",
			"kind", kind,
			"code_points", codePoints,
			"error", err,
		)
		return
	}
	l.Debug("bulk load completed",
		"kind", kind,
		"code_points", codePoints,
		"runs", runs,
		"elapsed", elapsed,
	)
}

// LogInvariantViolation logs a failed self-check.
func (l *Logger) LogInvariantViolation(op string, err error) {
	l.Error("invariant check failed",
		"op", op,
		"error", err,
	)
}
