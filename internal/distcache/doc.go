// Package distcache holds the pairwise population-weighted squared distance
// matrix used to score candidate placements.
//
// The matrix is built once per region set, single-threaded, and is read-only
// afterwards. It is safe to share a Cache between goroutines.
//
// Cell (i, j) holds the squared great-circle distance from region i to
// region j multiplied by the population of region j. The matrix is therefore
// not symmetric.
package distcache
