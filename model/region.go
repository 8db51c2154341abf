package model

import "fmt"

// IndexMismatchError reports a region whose Index differs from its position.
type IndexMismatchError struct {
	Position int
	Index    int
}

func (e *IndexMismatchError) Error() string {
	return fmt.Sprintf("region at position %d has wrong index (%d)", e.Position, e.Index)
}

// Reindex sets every region's Index to its position in regions.
func Reindex(regions []Region) {
	for i := range regions {
		regions[i].Index = i
	}
}

// ValidateIndices returns an *IndexMismatchError for the first region whose
// Index is not equal to its position.
func ValidateIndices(regions []Region) error {
	for i := range regions {
		if regions[i].Index != i {
			return &IndexMismatchError{Position: i, Index: regions[i].Index}
		}
	}
	return nil
}

// Locations returns the regions at the given indices as Locations, in order.
func Locations(regions []Region, indices []int) []Location {
	out := make([]Location, len(indices))
	for i, idx := range indices {
		out[i] = Location{Index: idx, Coordinate: regions[idx].Coordinate}
	}
	return out
}
