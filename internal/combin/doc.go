// Package combin enumerates k-element subsets of {0, ..., n-1}.
//
// Subsets are produced lazily in lexicographic order, each exactly once. The
// full space C(n, k) is far too large to materialise for k >= 3 over a
// country-sized region set, so callers pull bounded chunks with NextChunk
// until the iterator is exhausted.
package combin
