package geoplace

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// Logger wraps slog.Logger with geoplace-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithK adds a k (location count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogCache logs the construction of a distance cache.
func (l *Logger) LogCache(ctx context.Context, regions int, bytes int64, duration time.Duration) {
	l.DebugContext(ctx, "distance cache built",
		"regions", regions,
		"size", humanize.IBytes(uint64(bytes)),
		"duration", duration,
	)
}

// LogChunk logs progress of a running search.
func (l *Logger) LogChunk(ctx context.Context, chunk int, evaluated, total uint64, bestCost float64) {
	l.InfoContext(ctx, "search progress",
		"chunk", chunk,
		"evaluated", humanize.Comma(int64(evaluated)),
		"total", humanize.Comma(int64(total)),
		"best_cost", bestCost,
	)
}

// LogSearch logs a placement search.
func (l *Logger) LogSearch(ctx context.Context, k int, evaluated uint64, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"k", k,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "search completed",
			"k", k,
			"evaluated", evaluated,
			"duration", duration,
		)
	}
}

// LogTally logs a nearest-anchor tally.
func (l *Logger) LogTally(ctx context.Context, anchors int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "tally failed",
			"anchors", anchors,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "tally completed",
			"anchors", anchors,
		)
	}
}
