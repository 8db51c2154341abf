package model

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Coordinate is a point on the globe in decimal degrees.
type Coordinate struct {
	Longitude float64
	Latitude  float64
}

// CoordinateFromPoint converts an orb.Point (lon, lat) into a Coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Longitude: p.Lon(), Latitude: p.Lat()}
}

// Point returns the coordinate as an orb.Point.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Equal reports whether both coordinates have identical bit patterns.
// Coordinates are used as lookup keys, so no epsilon is applied.
func (c Coordinate) Equal(other Coordinate) bool {
	return math.Float64bits(c.Longitude) == math.Float64bits(other.Longitude) &&
		math.Float64bits(c.Latitude) == math.Float64bits(other.Latitude)
}

// String returns a string representation of the Coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%v, %v)", c.Longitude, c.Latitude)
}

// Region is one geographic unit (a county in the reference dataset).
type Region struct {
	Coordinate Coordinate
	Population uint32
	State      uint8
	GeoID      string
	// Index must equal the region's position in the slice passed to the search.
	Index int
}

// Point allows Region to satisfy the orb.Pointer interface.
func (r Region) Point() orb.Point {
	return r.Coordinate.Point()
}

// String returns a string representation of the Region.
func (r Region) String() string {
	return fmt.Sprintf("%s, index: %d, geoid: %s, state: %d, population: %d",
		r.Coordinate, r.Index, r.GeoID, r.State, r.Population)
}

// Location is one member of a candidate placement.
type Location struct {
	Index      int
	Coordinate Coordinate
}

// Placement is the outcome of a placement search.
type Placement struct {
	// Locations holds the chosen regions in enumeration order.
	Locations []Location
	// Cost is the aggregate cost of the placement; +Inf if infeasible.
	Cost float64
	// Evaluated is the number of candidates scored.
	Evaluated uint64
}

// Infeasible returns the no-solution placement.
func Infeasible() Placement {
	return Placement{Cost: math.Inf(1)}
}

// Feasible reports whether the placement holds a solution.
func (p Placement) Feasible() bool {
	return len(p.Locations) > 0 && !math.IsInf(p.Cost, 1)
}

// Coordinates returns the coordinates of the chosen locations in enumeration order.
func (p Placement) Coordinates() []Coordinate {
	out := make([]Coordinate, len(p.Locations))
	for i, l := range p.Locations {
		out[i] = l.Coordinate
	}
	return out
}
