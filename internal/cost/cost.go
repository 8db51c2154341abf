// Package cost scores candidate placements.
//
// For every region the cheapest weighted squared distance to any candidate
// location is taken, squared once more, and summed over all regions. Lower
// is better. The second squaring is part of the scoring model and must not
// be removed: reference results depend on it.
package cost

import (
	"math"

	"github.com/hupe1980/geoplace/distance"
	"github.com/hupe1980/geoplace/internal/distcache"
	"github.com/hupe1980/geoplace/model"
)

// Scorer computes the cost of one candidate, given as region indices.
// Scorers hold scratch buffers and are not safe for concurrent use.
type Scorer interface {
	Cost(candidate []int) float64
}

// Factory creates one Scorer per worker.
type Factory func() Scorer

// Cached scores candidates with lookups into a distance cache.
type Cached struct {
	cache *distcache.Cache
	rows  [][]float64
}

// NewCached returns a Scorer backed by c.
func NewCached(c *distcache.Cache) *Cached {
	return &Cached{cache: c}
}

// CachedFactory returns a Factory producing Cached scorers sharing c.
func CachedFactory(c *distcache.Cache) Factory {
	return func() Scorer { return NewCached(c) }
}

// Cost implements Scorer.
func (s *Cached) Cost(candidate []int) float64 {
	if len(candidate) == 1 {
		var total float64
		for _, v := range s.cache.Row(candidate[0]) {
			total += v * v
		}
		return total
	}

	rows := s.rows[:0]
	for _, idx := range candidate {
		rows = append(rows, s.cache.Row(idx))
	}
	s.rows = rows

	n := s.cache.Len()
	var total float64
	for r := 0; r < n; r++ {
		m := math.Inf(1)
		for _, row := range rows {
			if v := row[r]; v < m {
				m = v
			}
		}
		total += m * m
	}
	return total
}

// Direct scores candidates by evaluating great-circle distances on the fly.
// It produces exactly the same values as Cached without the O(n²) memory.
type Direct struct {
	regions []model.Region
}

// NewDirect returns a Scorer over regions.
func NewDirect(regions []model.Region) *Direct {
	return &Direct{regions: regions}
}

// DirectFactory returns a Factory producing Direct scorers over regions.
func DirectFactory(regions []model.Region) Factory {
	return func() Scorer { return NewDirect(regions) }
}

// Cost implements Scorer.
func (s *Direct) Cost(candidate []int) float64 {
	var total float64
	for _, r := range s.regions {
		m := math.Inf(1)
		for _, idx := range candidate {
			if v := distance.WeightedSquared(s.regions[idx].Coordinate, r.Coordinate, r.Population); v < m {
				m = v
			}
		}
		total += m * m
	}
	return total
}
