package distcache

import (
	"github.com/hupe1980/geoplace/distance"
	"github.com/hupe1980/geoplace/internal/conv"
	"github.com/hupe1980/geoplace/model"
)

// WeightedPoint is a coordinate together with the population weight of the
// region it belongs to.
type WeightedPoint struct {
	Coordinate model.Coordinate
	Weight     uint32
}

// PointsFromRegions returns the weighted points of regions in order.
func PointsFromRegions(regions []model.Region) []WeightedPoint {
	points := make([]WeightedPoint, len(regions))
	for i, r := range regions {
		points[i] = WeightedPoint{Coordinate: r.Coordinate, Weight: r.Population}
	}
	return points
}

// Cache is a dense n×n row-major matrix of weighted squared distances.
type Cache struct {
	entries []float64
	n       int
}

// New builds the cache for points. Construction is O(n²) haversine calls.
func New(points []WeightedPoint) *Cache {
	n := len(points)
	entries := make([]float64, n*n)

	for i, from := range points {
		row := entries[i*n : (i+1)*n]
		for j, to := range points {
			row[j] = distance.WeightedSquared(from.Coordinate, to.Coordinate, to.Weight)
		}
	}

	return &Cache{entries: entries, n: n}
}

// Len returns the number of regions covered by the cache.
func (c *Cache) Len() int {
	return c.n
}

// Row returns the weighted squared distances from region i to every region.
// The returned slice must not be modified. Panics if i is out of range.
func (c *Cache) Row(i int) []float64 {
	return c.entries[i*c.n : (i+1)*c.n : (i+1)*c.n]
}

// At returns the weighted squared distance from region i to region j.
// Panics if either index is out of range.
func (c *Cache) At(i, j int) float64 {
	return c.Row(i)[j]
}

// SizeBytes returns the number of bytes a cache over n regions occupies.
// Returns false if the size does not fit in an int64.
func SizeBytes(n int) (int64, bool) {
	return conv.MulInt64(int64(n), int64(n), 8)
}
