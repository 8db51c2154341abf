// Package search drives the exhaustive minimum-cost search over candidate
// placements.
//
// Candidates are pulled from a combin.Iterator in bounded chunks. In Parallel
// mode each chunk is split into contiguous ranges, one per worker; every
// worker folds its range to a local minimum, and the local minima are combined
// in range order. All comparisons use strict less-than, so the first minimal
// candidate in enumeration order wins and the result is identical to the
// Sequential fold for every worker count and chunk size.
package search
