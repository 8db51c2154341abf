package geoplace

import (
	"log/slog"
	"time"

	"github.com/hupe1980/geoplace/internal/search"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Mode selects how candidates are evaluated.
type Mode = search.Mode

const (
	// Sequential evaluates every candidate on the calling goroutine.
	Sequential = search.Sequential
	// Parallel evaluates candidate chunks on a pool of workers.
	Parallel = search.Parallel
)

// DefaultChunkSize is the default number of candidates held in memory at once.
const DefaultChunkSize = search.DefaultChunkSize

type options struct {
	strategy              search.Strategy
	metricsCollector      MetricsCollector
	logger                *Logger
	memoryLimitBytes      int64
	maxConcurrentSearches int64
	progressInterval      time.Duration
	tracerProvider        trace.TracerProvider
	directScoring         bool
}

// Option configures a Placer.
type Option func(*options)

// WithStrategy selects sequential or parallel evaluation.
//
// Both modes return identical placements; Parallel only changes how fast the
// candidate space is exhausted.
func WithStrategy(mode Mode) Option {
	return func(o *options) {
		o.strategy.Mode = mode
	}
}

// WithWorkers sets the number of worker goroutines used in Parallel mode.
// If workers <= 0, runtime.GOMAXPROCS(0) is used.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.strategy.Workers = workers
	}
}

// WithChunkSize bounds the number of candidates pulled from the enumerator at
// once. Each candidate of size k occupies k ints, so the chunk buffer holds
// chunkSize*k*8 bytes.
//
// If chunkSize <= 0, DefaultChunkSize is used.
func WithChunkSize(chunkSize int) Option {
	return func(o *options) {
		o.strategy.ChunkSize = chunkSize
	}
}

// WithMemoryLimit caps the memory a search may reserve for its distance cache
// and chunk buffer. Searches that would exceed it fail with
// ErrMemoryLimitExceeded. 0 disables the limit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimitBytes = bytes
	}
}

// WithMaxConcurrentSearches limits how many searches a Placer runs at once.
// Additional calls block until a slot frees up or their context ends.
func WithMaxConcurrentSearches(n int64) Option {
	return func(o *options) {
		o.maxConcurrentSearches = n
	}
}

// WithProgressInterval sets the minimum time between search progress log
// lines. 0 logs every chunk.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

// WithDirectScoring scores candidates without building the distance cache.
//
// This trades O(n²) memory for recomputing every great-circle distance per
// candidate and is only sensible for small region sets.
func WithDirectScoring() Option {
	return func(o *options) {
		o.directScoring = true
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &geoplace.BasicMetricsCollector{}
//	p := geoplace.New(geoplace.WithMetricsCollector(metrics))
//	// ... use p ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := geoplace.NewJSONLogger(slog.LevelInfo)
//	p := geoplace.New(geoplace.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider used for spans.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		strategy:              search.Strategy{Mode: search.Parallel},
		metricsCollector:      NoopMetricsCollector{},
		logger:                NoopLogger(),
		maxConcurrentSearches: 1,
		progressInterval:      10 * time.Second,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	return o
}
