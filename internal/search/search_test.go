package search

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/hupe1980/geoplace/internal/combin"
	"github.com/hupe1980/geoplace/internal/cost"
	"github.com/hupe1980/geoplace/internal/distcache"
	"github.com/hupe1980/geoplace/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableScorer looks up costs by candidate; missing candidates cost fallback.
type tableScorer struct {
	costs    map[string]float64
	fallback float64
}

func (s tableScorer) Cost(candidate []int) float64 {
	if v, ok := s.costs[fmt.Sprint(candidate)]; ok {
		return v
	}
	return s.fallback
}

func tableFactory(fallback float64, costs map[string]float64) cost.Factory {
	return func() cost.Scorer { return tableScorer{costs: costs, fallback: fallback} }
}

func allStrategies() []Strategy {
	var out []Strategy
	for _, chunk := range []int{1, 2, 3, 7, 64, DefaultChunkSize} {
		out = append(out, Strategy{Mode: Sequential, ChunkSize: chunk})
		for _, workers := range []int{1, 2, 3, 8} {
			out = append(out, Strategy{Mode: Parallel, Workers: workers, ChunkSize: chunk})
		}
	}
	return out
}

func TestRunFirstMinimumWins(t *testing.T) {
	// C(6,2) = 15 candidates; three share the minimum cost.
	costs := map[string]float64{
		"[1 4]": 3,
		"[2 3]": 3,
		"[4 5]": 3,
	}

	for _, s := range allStrategies() {
		t.Run(fmt.Sprintf("%s/w=%d/c=%d", s.Mode, s.Workers, s.ChunkSize), func(t *testing.T) {
			res, err := Run(t.Context(), combin.New(6, 2), tableFactory(10, costs), Config{Strategy: s})
			require.NoError(t, err)

			assert.Equal(t, []int{1, 4}, res.Candidate)
			assert.Equal(t, 3.0, res.Cost)
			assert.Equal(t, uint64(15), res.Evaluated)
		})
	}
}

func TestFoldParallelMatchesFoldRange(t *testing.T) {
	costs := map[string]float64{
		"[0 5]": 2,
		"[2 4]": 2,
		"[3 4]": 2,
	}
	s := tableScorer{costs: costs, fallback: 9}

	chunk := combin.NewChunk(2, 15)
	size := combin.New(6, 2).NextChunk(chunk, 15)
	require.Equal(t, 15, size)

	want := foldRange(s, chunk, 0, size)
	assert.Equal(t, local{cost: 2, pos: 4}, want)

	// More workers than candidates leaves some ranges empty.
	for workers := 1; workers <= 20; workers++ {
		scorers := make([]cost.Scorer, workers)
		for i := range scorers {
			scorers[i] = s
		}
		assert.Equal(t, want, foldParallel(scorers, chunk, size), "workers=%d", workers)
	}
}

func TestRunAllEqualCostsPicksFirstCandidate(t *testing.T) {
	for _, s := range allStrategies() {
		res, err := Run(t.Context(), combin.New(5, 3), tableFactory(1, nil), Config{Strategy: s})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, res.Candidate)
	}
}

func TestRunInfiniteAndNaNNeverWin(t *testing.T) {
	res, err := Run(t.Context(), combin.New(4, 1), tableFactory(math.Inf(1), nil), Config{})
	require.NoError(t, err)
	assert.Nil(t, res.Candidate)
	assert.True(t, math.IsInf(res.Cost, 1))
	assert.Equal(t, uint64(4), res.Evaluated)

	res, err = Run(t.Context(), combin.New(4, 1), tableFactory(math.NaN(), map[string]float64{"[2]": 5}), Config{})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, res.Candidate)
}

func TestRunEmpty(t *testing.T) {
	res, err := Run(t.Context(), combin.New(2, 3), tableFactory(1, nil), Config{Strategy: Strategy{Mode: Parallel}})
	require.NoError(t, err)
	assert.Nil(t, res.Candidate)
	assert.True(t, math.IsInf(res.Cost, 1))
	assert.Zero(t, res.Evaluated)
}

func TestRunDeterministicAcrossStrategies(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	regions := make([]model.Region, 18)
	for i := range regions {
		regions[i] = model.Region{
			Coordinate: model.Coordinate{Longitude: rng.Float64() * 40, Latitude: rng.Float64() * 20},
			Population: uint32(1 + rng.Intn(10)),
		}
	}
	model.Reindex(regions)
	factory := cost.CachedFactory(distcache.New(distcache.PointsFromRegions(regions)))

	for k := 1; k <= 3; k++ {
		want, err := Run(t.Context(), combin.New(len(regions), k), factory, Config{Strategy: Strategy{Mode: Sequential}})
		require.NoError(t, err)
		require.Len(t, want.Candidate, k)

		for _, s := range allStrategies() {
			got, err := Run(t.Context(), combin.New(len(regions), k), factory, Config{Strategy: s})
			require.NoError(t, err)
			assert.Equal(t, want, got, "k=%d strategy=%+v", k, s)
		}
	}
}

func TestRunProgress(t *testing.T) {
	var reports []Progress
	cfg := Config{
		Strategy: Strategy{Mode: Parallel, Workers: 2, ChunkSize: 4},
		OnChunk:  func(p Progress) { reports = append(reports, p) },
	}

	_, err := Run(t.Context(), combin.New(5, 2), tableFactory(1, nil), cfg)
	require.NoError(t, err)

	// C(5,2) = 10 → chunks of 4, 4, 2.
	require.Len(t, reports, 3)
	assert.Equal(t, []int{4, 4, 2}, []int{reports[0].Size, reports[1].Size, reports[2].Size})
	assert.Equal(t, uint64(10), reports[2].Evaluated)
	assert.Equal(t, 2, reports[2].Chunk)
	assert.Equal(t, 1.0, reports[2].BestCost)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())

	cfg := Config{
		Strategy: Strategy{Mode: Sequential, ChunkSize: 1},
		OnChunk: func(p Progress) {
			if p.Chunk == 1 {
				cancel()
			}
		},
	}

	_, err := Run(ctx, combin.New(10, 2), tableFactory(1, nil), cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStrategyNormalize(t *testing.T) {
	s := Strategy{}.Normalize()
	assert.Equal(t, Sequential, s.Mode)
	assert.Equal(t, 1, s.Workers)
	assert.Equal(t, DefaultChunkSize, s.ChunkSize)

	p := Strategy{Mode: Parallel}.Normalize()
	assert.GreaterOrEqual(t, p.Workers, 1)

	assert.Equal(t, "parallel", Parallel.String())
	assert.Equal(t, "Unknown(9)", Mode(9).String())
}
