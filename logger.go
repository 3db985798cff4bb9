package subint

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with subint-specific fields.
// The primitives and Generator never log; only the bulk operations do.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// If w is nil, logs go to stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
// If w is nil, logs go to stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithWidth adds a register width field to the logger.
func (l *Logger) WithWidth(width uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width),
	}
}

// WithOnes adds a one-count field to the logger.
func (l *Logger) WithOnes(ones uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("ones", ones),
	}
}

// LogEnumerate logs the drain of a single generator.
func (l *Logger) LogEnumerate(ctx context.Context, width, ones uint32, yielded uint64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "enumerate failed",
			"width", width,
			"ones", ones,
			"yielded", yielded,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "enumerate completed",
			"width", width,
			"ones", ones,
			"yielded", yielded,
			"elapsed", elapsed,
		)
	}
}

// LogExport logs a snapshot export.
func (l *Logger) LogExport(ctx context.Context, path string, written int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"path", path,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot exported",
			"path", path,
			"bytes", written,
		)
	}
}
