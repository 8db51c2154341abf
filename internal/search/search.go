package search

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"slices"
	"time"

	"github.com/hupe1980/geoplace/internal/combin"
	"github.com/hupe1980/geoplace/internal/cost"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of candidates pulled from the enumerator at once.
const DefaultChunkSize = 100_000

// Mode selects how candidates are evaluated.
type Mode int

const (
	// Sequential evaluates every candidate on the calling goroutine.
	Sequential Mode = iota
	// Parallel evaluates each chunk on a pool of workers.
	Parallel
)

func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Strategy configures candidate evaluation.
type Strategy struct {
	Mode Mode
	// Workers is the number of goroutines used in Parallel mode.
	// If <= 0, runtime.GOMAXPROCS(0) is used.
	Workers int
	// ChunkSize bounds the number of candidates held in memory at once.
	// If <= 0, DefaultChunkSize is used.
	ChunkSize int
}

// Normalize returns s with defaults applied.
func (s Strategy) Normalize() Strategy {
	if s.Workers <= 0 {
		s.Workers = runtime.GOMAXPROCS(0)
	}
	if s.Mode != Parallel {
		s.Workers = 1
	}
	if s.ChunkSize <= 0 {
		s.ChunkSize = DefaultChunkSize
	}
	return s
}

// Progress describes one evaluated chunk.
type Progress struct {
	Chunk     int
	Size      int
	Evaluated uint64
	BestCost  float64
	Duration  time.Duration
}

// Config controls a single Run.
type Config struct {
	Strategy Strategy
	// OnChunk, if set, is called after every chunk on the calling goroutine.
	OnChunk func(Progress)
}

// Result is the outcome of a Run.
type Result struct {
	// Candidate holds the winning region indices; nil if no candidate won.
	Candidate []int
	Cost      float64
	Evaluated uint64
}

type local struct {
	cost float64
	pos  int
}

var none = local{cost: math.Inf(1), pos: -1}

// Run exhausts it, scoring every candidate with scorers from newScorer, and
// returns the first candidate with the minimum cost. Candidates whose cost is
// +Inf or NaN never win. The context is checked between chunks.
func Run(ctx context.Context, it *combin.Iterator, newScorer cost.Factory, cfg Config) (Result, error) {
	strategy := cfg.Strategy.Normalize()

	scorers := make([]cost.Scorer, strategy.Workers)
	for i := range scorers {
		scorers[i] = newScorer()
	}

	result := Result{Cost: math.Inf(1)}
	chunk := combin.NewChunk(it.K(), chunkCapacity(it, strategy.ChunkSize))

	for n := 0; ; n++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		start := time.Now()
		size := it.NextChunk(chunk, strategy.ChunkSize)
		if size == 0 {
			break
		}

		var best local
		if strategy.Workers > 1 && size > 1 {
			best = foldParallel(scorers, chunk, size)
		} else {
			best = foldRange(scorers[0], chunk, 0, size)
		}

		result.Evaluated += uint64(size)
		if best.pos >= 0 && best.cost < result.Cost {
			result.Cost = best.cost
			result.Candidate = slices.Clone(chunk.At(best.pos))
		}

		if cfg.OnChunk != nil {
			cfg.OnChunk(Progress{
				Chunk:     n,
				Size:      size,
				Evaluated: result.Evaluated,
				BestCost:  result.Cost,
				Duration:  time.Since(start),
			})
		}
	}

	return result, nil
}

// chunkCapacity avoids allocating a full chunk buffer for small searches.
func chunkCapacity(it *combin.Iterator, chunkSize int) int {
	total, ok := combin.Count(it.N(), it.K())
	if ok && total < uint64(chunkSize) {
		return int(total)
	}
	return chunkSize
}

func foldRange(s cost.Scorer, c *combin.Chunk, lo, hi int) local {
	best := none
	for i := lo; i < hi; i++ {
		if v := s.Cost(c.At(i)); v < best.cost {
			best = local{cost: v, pos: i}
		}
	}
	return best
}

// foldParallel splits the chunk into contiguous ranges and reduces the
// per-range minima in range order.
func foldParallel(scorers []cost.Scorer, c *combin.Chunk, size int) local {
	workers := min(len(scorers), size)
	span := (size + workers - 1) / workers
	locals := make([]local, workers)

	var g errgroup.Group
	g.SetLimit(workers)

	for w := 0; w < workers; w++ {
		lo := w * span
		hi := min(lo+span, size)
		if lo >= hi {
			locals[w] = none
			continue
		}
		s := scorers[w]
		g.Go(func() error {
			locals[w] = foldRange(s, c, lo, hi)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never fail

	best := none
	for _, l := range locals {
		if l.pos >= 0 && l.cost < best.cost {
			best = l
		}
	}
	return best
}
