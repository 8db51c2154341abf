// Package assign tallies population by nearest fixed anchor location.
package assign

import (
	"errors"
	"fmt"

	"github.com/hupe1980/geoplace/distance"
	"github.com/hupe1980/geoplace/model"
)

var (
	// ErrAnchorNotFound is returned when no region carries an anchor's identifier.
	ErrAnchorNotFound = errors.New("anchor not found")
	// ErrAnchorAmbiguous is returned when several regions carry an anchor's identifier.
	ErrAnchorAmbiguous = errors.New("anchor matches more than one region")
)

// AnchorError describes an anchor identifier that did not resolve to exactly
// one region.
type AnchorError struct {
	GeoID   string
	Matches int
	cause   error
}

func (e *AnchorError) Error() string {
	return fmt.Sprintf("anchor %q: %v (%d matches)", e.GeoID, e.cause, e.Matches)
}

func (e *AnchorError) Unwrap() error { return e.cause }

// Resolve returns the coordinate of the single region whose GeoID is geoID.
func Resolve(regions []model.Region, geoID string) (model.Coordinate, error) {
	var (
		found   model.Coordinate
		matches int
	)
	for _, r := range regions {
		if r.GeoID == geoID {
			found = r.Coordinate
			matches++
		}
	}

	switch matches {
	case 1:
		return found, nil
	case 0:
		return model.Coordinate{}, &AnchorError{GeoID: geoID, cause: ErrAnchorNotFound}
	default:
		return model.Coordinate{}, &AnchorError{GeoID: geoID, Matches: matches, cause: ErrAnchorAmbiguous}
	}
}

// Tally assigns every region to its nearest anchor by squared great-circle
// distance and returns the population sum per anchor in anchor order. Ties go
// to the anchor listed first.
func Tally(regions []model.Region, anchors []string) ([]uint64, error) {
	coords := make([]model.Coordinate, len(anchors))
	for i, id := range anchors {
		c, err := Resolve(regions, id)
		if err != nil {
			return nil, err
		}
		coords[i] = c
	}

	sums := make([]uint64, len(anchors))
	if len(coords) == 0 {
		return sums, nil
	}

	for _, r := range regions {
		nearest := 0
		best := distance.Squared(coords[0], r.Coordinate)
		for i := 1; i < len(coords); i++ {
			if d := distance.Squared(coords[i], r.Coordinate); d < best {
				nearest, best = i, d
			}
		}
		sums[nearest] += uint64(r.Population)
	}

	return sums, nil
}
