package model

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateEqual(t *testing.T) {
	a := Coordinate{Longitude: -99.5, Latitude: 38.25}

	assert.True(t, a.Equal(Coordinate{Longitude: -99.5, Latitude: 38.25}))
	assert.False(t, a.Equal(Coordinate{Longitude: -99.5, Latitude: 38.25 + 1e-12}))

	// Bit equality distinguishes signed zeros.
	assert.False(t, Coordinate{}.Equal(Coordinate{Longitude: math.Copysign(0, -1)}))
}

func TestCoordinatePointRoundTrip(t *testing.T) {
	c := Coordinate{Longitude: 2.3488, Latitude: 48.85341}
	p := c.Point()

	assert.Equal(t, orb.Point{2.3488, 48.85341}, p)
	assert.True(t, c.Equal(CoordinateFromPoint(p)))
}

func TestReindexAndValidate(t *testing.T) {
	regions := []Region{{GeoID: "a", Index: 7}, {GeoID: "b", Index: 7}, {GeoID: "c"}}

	err := ValidateIndices(regions)
	var mismatch *IndexMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 0, mismatch.Position)
	assert.Equal(t, 7, mismatch.Index)

	Reindex(regions)
	require.NoError(t, ValidateIndices(regions))
	for i, r := range regions {
		assert.Equal(t, i, r.Index)
	}
}

func TestValidateIndicesEmpty(t *testing.T) {
	assert.NoError(t, ValidateIndices(nil))
}

func TestPlacement(t *testing.T) {
	t.Run("Infeasible", func(t *testing.T) {
		p := Infeasible()
		assert.False(t, p.Feasible())
		assert.True(t, math.IsInf(p.Cost, 1))
		assert.Empty(t, p.Coordinates())
	})

	t.Run("Feasible", func(t *testing.T) {
		regions := []Region{
			{Coordinate: Coordinate{Longitude: 1, Latitude: 2}},
			{Coordinate: Coordinate{Longitude: 3, Latitude: 4}},
			{Coordinate: Coordinate{Longitude: 5, Latitude: 6}},
		}
		Reindex(regions)

		p := Placement{Locations: Locations(regions, []int{2, 0}), Cost: 12}
		assert.True(t, p.Feasible())
		assert.Equal(t, []Coordinate{{5, 6}, {1, 2}}, p.Coordinates())
	})
}
