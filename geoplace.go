package geoplace

import (
	"context"
	"time"

	"github.com/hupe1980/geoplace/internal/assign"
	"github.com/hupe1980/geoplace/internal/combin"
	"github.com/hupe1980/geoplace/internal/conv"
	"github.com/hupe1980/geoplace/internal/cost"
	"github.com/hupe1980/geoplace/internal/distcache"
	"github.com/hupe1980/geoplace/internal/resource"
	"github.com/hupe1980/geoplace/internal/search"
	"github.com/hupe1980/geoplace/model"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/hupe1980/geoplace"

// Placer finds optimal facility placements over a fixed region set.
//
// A Placer is safe for concurrent use. The number of searches it runs at the
// same time is bounded by WithMaxConcurrentSearches.
type Placer struct {
	opts   options
	rc     *resource.Controller
	tracer trace.Tracer
}

// New creates a Placer configured by optFns.
func New(optFns ...Option) *Placer {
	o := applyOptions(optFns)
	return &Placer{
		opts: o,
		rc: resource.NewController(resource.Config{
			MemoryLimitBytes:      o.memoryLimitBytes,
			MaxConcurrentSearches: o.maxConcurrentSearches,
			ProgressInterval:      o.progressInterval,
		}),
		tracer: o.tracerProvider.Tracer(instrumentationName),
	}
}

// FindPlacement is a convenience wrapper for New(optFns...).FindPlacement.
func FindPlacement(ctx context.Context, regions []model.Region, k int, optFns ...Option) (model.Placement, error) {
	return New(optFns...).FindPlacement(ctx, regions, k)
}

// Tally is a convenience wrapper for New(optFns...).Tally.
func Tally(ctx context.Context, regions []model.Region, anchors []string, optFns ...Option) ([]uint64, error) {
	return New(optFns...).Tally(ctx, regions, anchors)
}

// FindPlacement returns the k regions whose centroids minimise the aggregate
// weighted distance from every region to its nearest chosen location.
//
// regions must be indexed by position (see model.Reindex); a violation, as
// well as k < 1, is reported as a *PreconditionError. If k exceeds the number
// of regions the returned placement is infeasible (Placement.Feasible() is
// false) and err is nil.
//
// The search is exhaustive over all C(n, k) candidates. Ties are resolved in
// favour of the first candidate in lexicographic index order, independent of
// the configured strategy.
func (p *Placer) FindPlacement(ctx context.Context, regions []model.Region, k int) (placement model.Placement, err error) {
	start := time.Now()
	ctx, span := p.tracer.Start(ctx, "geoplace.FindPlacement", trace.WithAttributes(
		attribute.Int("geoplace.k", k),
		attribute.Int("geoplace.regions", len(regions)),
		attribute.String("geoplace.mode", p.opts.strategy.Mode.String()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int64("geoplace.evaluated", int64(placement.Evaluated)))
		}
		span.End()

		elapsed := time.Since(start)
		p.opts.metricsCollector.RecordSearch(k, placement.Evaluated, elapsed, err)
		p.opts.logger.LogSearch(ctx, k, placement.Evaluated, elapsed, err)
	}()

	if k < 1 {
		return model.Placement{}, precondition("FindPlacement", ErrInvalidK)
	}
	if err := model.ValidateIndices(regions); err != nil {
		return model.Placement{}, precondition("FindPlacement", err)
	}
	if k > len(regions) {
		return model.Infeasible(), nil
	}

	if err := p.rc.AcquireSearch(ctx); err != nil {
		return model.Placement{}, err
	}
	defer p.rc.ReleaseSearch()

	total, _ := combin.Count(len(regions), k)

	required, err := p.requiredMemory(len(regions), k, total)
	if err != nil {
		return model.Placement{}, err
	}
	if err := p.rc.AcquireMemory(required); err != nil {
		return model.Placement{}, &MemoryError{Required: required, Limit: p.rc.MemoryLimit(), cause: err}
	}
	defer p.rc.ReleaseMemory(required)

	factory := p.scorerFactory(ctx, regions)
	logger := p.opts.logger.WithK(k)

	res, err := search.Run(ctx, combin.New(len(regions), k), factory, search.Config{
		Strategy: p.opts.strategy,
		OnChunk: func(pr search.Progress) {
			p.opts.metricsCollector.RecordChunk(pr.Size, pr.Duration)
			if p.rc.AllowProgress() {
				logger.LogChunk(ctx, pr.Chunk, pr.Evaluated, total, pr.BestCost)
			}
		},
	})
	if err != nil {
		return model.Placement{}, err
	}

	if res.Candidate == nil {
		placement = model.Infeasible()
		placement.Evaluated = res.Evaluated
		return placement, nil
	}

	return model.Placement{
		Locations: model.Locations(regions, res.Candidate),
		Cost:      res.Cost,
		Evaluated: res.Evaluated,
	}, nil
}

// MemoryReserved returns the bytes of distance cache and chunk buffers held
// by the searches currently running on p.
func (p *Placer) MemoryReserved() int64 {
	return p.rc.MemoryReserved()
}

// requiredMemory returns the bytes a search over n regions holds at once:
// the distance cache plus one chunk of candidates.
func (p *Placer) requiredMemory(n, k int, total uint64) (int64, error) {
	var cacheBytes int64
	if !p.opts.directScoring {
		b, ok := distcache.SizeBytes(n)
		if !ok {
			return 0, &MemoryError{Limit: p.rc.MemoryLimit(), cause: ErrMemoryLimitExceeded}
		}
		cacheBytes = b
	}

	chunk := uint64(p.opts.strategy.Normalize().ChunkSize)
	if total < chunk {
		chunk = total
	}
	chunkLen, err := conv.Uint64ToInt(chunk)
	if err != nil {
		return 0, err
	}
	chunkBytes, ok := conv.MulInt64(int64(chunkLen), int64(k), 8)
	if !ok || cacheBytes > (1<<63-1)-chunkBytes {
		return 0, &MemoryError{Limit: p.rc.MemoryLimit(), cause: ErrMemoryLimitExceeded}
	}
	return cacheBytes + chunkBytes, nil
}

func (p *Placer) scorerFactory(ctx context.Context, regions []model.Region) cost.Factory {
	if p.opts.directScoring {
		return cost.DirectFactory(regions)
	}

	_, span := p.tracer.Start(ctx, "geoplace.BuildDistanceCache")
	start := time.Now()
	cache := distcache.New(distcache.PointsFromRegions(regions))
	elapsed := time.Since(start)
	span.End()

	bytes, _ := distcache.SizeBytes(cache.Len())
	p.opts.metricsCollector.RecordCacheBuild(cache.Len(), elapsed)
	p.opts.logger.LogCache(ctx, cache.Len(), bytes, elapsed)

	return cost.CachedFactory(cache)
}

// Tally assigns every region to the nearest anchor (by squared great-circle
// distance, unweighted) and returns the population per anchor in the order
// of anchors. Ties go to the anchor listed first.
//
// Every anchor GeoID must match exactly one region; otherwise a
// *PreconditionError wrapping an *AnchorError is returned.
func (p *Placer) Tally(ctx context.Context, regions []model.Region, anchors []string) (sums []uint64, err error) {
	start := time.Now()
	ctx, span := p.tracer.Start(ctx, "geoplace.Tally", trace.WithAttributes(
		attribute.Int("geoplace.anchors", len(anchors)),
		attribute.Int("geoplace.regions", len(regions)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		p.opts.metricsCollector.RecordTally(len(anchors), time.Since(start), err)
		p.opts.logger.LogTally(ctx, len(anchors), err)
	}()

	sums, err = assign.Tally(regions, anchors)
	if err != nil {
		return nil, precondition("Tally", err)
	}
	return sums, nil
}
