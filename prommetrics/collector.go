// Package prommetrics exports geoplace metrics to Prometheus.
package prommetrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hupe1980/geoplace"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "geoplace"

var _ geoplace.MetricsCollector = (*Collector)(nil)

// Collector implements geoplace.MetricsCollector on top of Prometheus metrics
// and provides a /metrics handler for them.
type Collector struct {
	gatherer prometheus.Gatherer

	CacheBuilds        prometheus.Counter
	CacheBuildDuration prometheus.Histogram
	Chunks             prometheus.Counter
	Candidates         prometheus.Counter
	ChunkDuration      prometheus.Histogram
	Searches           *prometheus.CounterVec
	SearchDuration     *prometheus.HistogramVec
	Tallies            *prometheus.CounterVec
}

// New registers geoplace metrics against the provided registerer, defaulting
// to the global Prometheus registry when nil. Registering twice against the
// same registry reuses the existing collectors.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}
	var err error

	if c.CacheBuilds, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_builds_total",
		Help:      "Total number of distance caches built.",
	})); err != nil {
		return nil, err
	}
	if c.CacheBuildDuration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cache_build_duration_seconds",
		Help:      "Time spent building distance caches.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
	})); err != nil {
		return nil, err
	}
	if c.Chunks, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chunks_total",
		Help:      "Total number of candidate chunks evaluated.",
	})); err != nil {
		return nil, err
	}
	if c.Candidates, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "candidates_evaluated_total",
		Help:      "Total number of candidate placements scored.",
	})); err != nil {
		return nil, err
	}
	if c.ChunkDuration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chunk_duration_seconds",
		Help:      "Time spent evaluating one candidate chunk.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
	})); err != nil {
		return nil, err
	}
	if c.Searches, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of placement searches, labeled by k and status.",
	}, []string{"k", "status"})); err != nil {
		return nil, err
	}
	if c.SearchDuration, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Placement search latency in seconds, labeled by k.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300, 900, 3600},
	}, []string{"k"})); err != nil {
		return nil, err
	}
	if c.Tallies, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tallies_total",
		Help:      "Total number of nearest-anchor tallies, labeled by status.",
	}, []string{"status"})); err != nil {
		return nil, err
	}

	return c, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// RecordCacheBuild implements geoplace.MetricsCollector.
func (c *Collector) RecordCacheBuild(_ int, d time.Duration) {
	c.CacheBuilds.Inc()
	c.CacheBuildDuration.Observe(d.Seconds())
}

// RecordChunk implements geoplace.MetricsCollector.
func (c *Collector) RecordChunk(size int, d time.Duration) {
	c.Chunks.Inc()
	c.Candidates.Add(float64(size))
	c.ChunkDuration.Observe(d.Seconds())
}

// RecordSearch implements geoplace.MetricsCollector.
func (c *Collector) RecordSearch(k int, _ uint64, d time.Duration, err error) {
	label := strconv.Itoa(k)
	c.Searches.WithLabelValues(label, status(err)).Inc()
	c.SearchDuration.WithLabelValues(label).Observe(d.Seconds())
}

// RecordTally implements geoplace.MetricsCollector.
func (c *Collector) RecordTally(_ int, _ time.Duration, err error) {
	c.Tallies.WithLabelValues(status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// register registers col, returning the already registered collector of the
// same type if there is one.
func register[T prometheus.Collector](reg prometheus.Registerer, col T) (T, error) {
	if err := reg.Register(col); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %T already registered with incompatible type", col)
		}
		var zero T
		return zero, err
	}
	return col, nil
}
