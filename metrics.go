package geoplace

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// prommetrics package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordCacheBuild is called after a distance cache has been built.
	RecordCacheBuild(regions int, duration time.Duration)

	// RecordChunk is called after each evaluated candidate chunk.
	// size is the number of candidates in the chunk.
	RecordChunk(size int, duration time.Duration)

	// RecordSearch is called after each placement search.
	// k is the number of locations requested, evaluated the number of
	// candidates scored, err is nil if successful.
	RecordSearch(k int, evaluated uint64, duration time.Duration, err error)

	// RecordTally is called after each nearest-anchor tally.
	RecordTally(anchors int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCacheBuild(int, time.Duration)            {}
func (NoopMetricsCollector) RecordChunk(int, time.Duration)                 {}
func (NoopMetricsCollector) RecordSearch(int, uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordTally(int, time.Duration, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CacheBuildCount      atomic.Int64
	CacheBuildTotalNanos atomic.Int64
	ChunkCount           atomic.Int64
	CandidateCount       atomic.Int64
	SearchCount          atomic.Int64
	SearchErrors         atomic.Int64
	SearchTotalNanos     atomic.Int64
	TallyCount           atomic.Int64
	TallyErrors          atomic.Int64
}

// RecordCacheBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheBuild(regions int, duration time.Duration) {
	b.CacheBuildCount.Add(1)
	b.CacheBuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordChunk implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChunk(size int, duration time.Duration) {
	b.ChunkCount.Add(1)
	b.CandidateCount.Add(int64(size))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k int, evaluated uint64, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordTally implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTally(anchors int, duration time.Duration, err error) {
	b.TallyCount.Add(1)
	if err != nil {
		b.TallyErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CacheBuildCount:    b.CacheBuildCount.Load(),
		CacheBuildAvgNanos: avg(b.CacheBuildTotalNanos.Load(), b.CacheBuildCount.Load()),
		ChunkCount:         b.ChunkCount.Load(),
		CandidateCount:     b.CandidateCount.Load(),
		SearchCount:        b.SearchCount.Load(),
		SearchErrors:       b.SearchErrors.Load(),
		SearchAvgNanos:     avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		TallyCount:         b.TallyCount.Load(),
		TallyErrors:        b.TallyErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CacheBuildCount    int64
	CacheBuildAvgNanos int64
	ChunkCount         int64
	CandidateCount     int64
	SearchCount        int64
	SearchErrors       int64
	SearchAvgNanos     int64
	TallyCount         int64
	TallyErrors        int64
}
