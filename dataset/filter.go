package dataset

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/geoplace/model"
)

// Last state FIPS code of the fifty states and DC (56 = Wyoming); higher
// codes are territories.
const lastStateCode = 56

const (
	stateAlaska = 2
	stateHawaii = 15
)

// StateFilter excludes regions by state code.
// The zero value is not usable; create one with NewStateFilter or Mainland.
type StateFilter struct {
	excluded *roaring.Bitmap
}

// NewStateFilter returns a filter that excludes the given state codes.
func NewStateFilter(excluded ...uint8) *StateFilter {
	f := &StateFilter{excluded: roaring.New()}
	return f.Exclude(excluded...)
}

// Mainland returns a filter for the contiguous United States: it excludes
// Alaska (02), Hawaii (15) and every code above 56.
func Mainland() *StateFilter {
	return NewStateFilter(stateAlaska, stateHawaii).ExcludeRange(lastStateCode+1, 255)
}

// Exclude adds state codes to the excluded set and returns f.
func (f *StateFilter) Exclude(codes ...uint8) *StateFilter {
	for _, c := range codes {
		f.excluded.Add(uint32(c))
	}
	return f
}

// ExcludeRange excludes every code in [lo, hi] and returns f.
func (f *StateFilter) ExcludeRange(lo, hi uint8) *StateFilter {
	if lo <= hi {
		f.excluded.AddRange(uint64(lo), uint64(hi)+1)
	}
	return f
}

// Keep reports whether regions of the given state pass the filter.
func (f *StateFilter) Keep(state uint8) bool {
	if f == nil {
		return true
	}
	return !f.excluded.Contains(uint32(state))
}

// Excluded returns the excluded codes in ascending order.
func (f *StateFilter) Excluded() []uint8 {
	out := make([]uint8, 0, f.excluded.GetCardinality())
	it := f.excluded.Iterator()
	for it.HasNext() {
		out = append(out, uint8(it.Next()))
	}
	return out
}

// Apply returns the regions that pass the filter, preserving order. The input
// slice is not modified.
func (f *StateFilter) Apply(regions []model.Region) []model.Region {
	out := make([]model.Region, 0, len(regions))
	for _, r := range regions {
		if f.Keep(r.State) {
			out = append(out, r)
		}
	}
	return out
}
