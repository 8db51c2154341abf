package distcache

import (
	"testing"

	"github.com/hupe1980/geoplace/distance"
	"github.com/hupe1980/geoplace/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPoints() []WeightedPoint {
	return []WeightedPoint{
		{Coordinate: model.Coordinate{Longitude: -5}, Weight: 1000},
		{Coordinate: model.Coordinate{Longitude: 0}, Weight: 2000},
		{Coordinate: model.Coordinate{Longitude: 5}, Weight: 0},
		{Coordinate: model.Coordinate{Longitude: 5}, Weight: 7},
	}
}

func TestNew(t *testing.T) {
	points := testPoints()
	c := New(points)

	require.Equal(t, len(points), c.Len())

	for i, from := range points {
		for j, to := range points {
			want := distance.WeightedSquared(from.Coordinate, to.Coordinate, to.Weight)
			assert.Equal(t, want, c.At(i, j), "cell (%d,%d)", i, j)
		}
	}
}

func TestWeightIsDestinationPopulation(t *testing.T) {
	c := New(testPoints())

	d := distance.Squared(model.Coordinate{Longitude: -5}, model.Coordinate{Longitude: 0})
	assert.InDelta(t, d*2000, c.At(0, 1), 1e-6)
	assert.InDelta(t, d*1000, c.At(1, 0), 1e-6)
	assert.NotEqual(t, c.At(0, 1), c.At(1, 0))
}

func TestZeroCells(t *testing.T) {
	c := New(testPoints())

	for i := 0; i < c.Len(); i++ {
		assert.Zero(t, c.At(i, i), "diagonal %d", i)
	}
	// Zero population destination.
	assert.Zero(t, c.At(0, 2))
	// Identical coordinates.
	assert.Zero(t, c.At(2, 3))
}

func TestRow(t *testing.T) {
	c := New(testPoints())

	row := c.Row(1)
	require.Len(t, row, c.Len())
	for j := range row {
		assert.Equal(t, c.At(1, j), row[j])
	}
}

func TestOutOfRangePanics(t *testing.T) {
	c := New(testPoints())

	assert.Panics(t, func() { c.At(0, 4) })
	assert.Panics(t, func() { c.At(4, 0) })
	assert.Panics(t, func() { c.Row(-1) })
}

func TestEmpty(t *testing.T) {
	c := New(nil)
	assert.Zero(t, c.Len())
}

func TestPointsFromRegions(t *testing.T) {
	regions := []model.Region{
		{Coordinate: model.Coordinate{Longitude: 1, Latitude: 2}, Population: 10},
		{Coordinate: model.Coordinate{Longitude: 3, Latitude: 4}, Population: 20},
	}

	assert.Equal(t, []WeightedPoint{
		{Coordinate: model.Coordinate{Longitude: 1, Latitude: 2}, Weight: 10},
		{Coordinate: model.Coordinate{Longitude: 3, Latitude: 4}, Weight: 20},
	}, PointsFromRegions(regions))
}

func TestSizeBytes(t *testing.T) {
	got, ok := SizeBytes(3000)
	require.True(t, ok)
	assert.Equal(t, int64(72_000_000), got)

	_, ok = SizeBytes(1 << 29)
	assert.True(t, ok)

	_, ok = SizeBytes(1 << 31)
	assert.False(t, ok)
}
