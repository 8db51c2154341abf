package combin

import (
	"iter"
	"math/bits"
	"slices"
)

// Iterator lazily yields the k-combinations of n elements.
// An Iterator is not safe for concurrent use and cannot be restarted.
type Iterator struct {
	n, k    int
	cur     []int
	started bool
	done    bool
}

// New returns an iterator over the k-combinations of {0, ..., n-1}.
// If k < 1 or k > n the iterator is empty.
func New(n, k int) *Iterator {
	it := &Iterator{n: n, k: k}
	if k < 1 || k > n {
		it.done = true
	}
	return it
}

// K returns the subset size.
func (it *Iterator) K() int {
	return it.k
}

// N returns the size of the ground set.
func (it *Iterator) N() int {
	return it.n
}

func (it *Iterator) advance() bool {
	if it.done {
		return false
	}

	if !it.started {
		it.started = true
		it.cur = make([]int, it.k)
		for i := range it.cur {
			it.cur[i] = i
		}
		return true
	}

	// Rightmost position that can still be incremented.
	i := it.k - 1
	for i >= 0 && it.cur[i] == it.n-it.k+i {
		i--
	}
	if i < 0 {
		it.done = true
		it.cur = nil
		return false
	}

	it.cur[i]++
	for j := i + 1; j < it.k; j++ {
		it.cur[j] = it.cur[j-1] + 1
	}
	return true
}

// Next copies the next combination into dst, which must have length K.
// Returns false once the iterator is exhausted.
func (it *Iterator) Next(dst []int) bool {
	if !it.advance() {
		return false
	}
	copy(dst, it.cur)
	return true
}

// NextChunk replaces the contents of c with up to limit further combinations
// and returns how many were written. limit must be positive; a return value
// of 0 means the iterator is exhausted.
func (it *Iterator) NextChunk(c *Chunk, limit int) int {
	c.reset(it.k)
	for c.Len() < limit && it.advance() {
		c.indices = append(c.indices, it.cur...)
	}
	return c.Len()
}

// All returns a range-over-func view of the k-combinations of n elements.
// Each yielded slice is owned by the caller.
func All(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		it := New(n, k)
		for it.advance() {
			if !yield(slices.Clone(it.cur)) {
				return
			}
		}
	}
}

// Chunk is a reusable flat buffer of combinations of equal size.
type Chunk struct {
	k       int
	indices []int
}

// NewChunk returns a chunk with room for capacity combinations of size k.
func NewChunk(k, capacity int) *Chunk {
	if k < 0 {
		k = 0
	}
	return &Chunk{k: k, indices: make([]int, 0, k*max(capacity, 0))}
}

func (c *Chunk) reset(k int) {
	c.k = k
	c.indices = c.indices[:0]
}

// Len returns the number of combinations in the chunk.
func (c *Chunk) Len() int {
	if c.k == 0 {
		return 0
	}
	return len(c.indices) / c.k
}

// At returns the i-th combination in the chunk. The slice aliases the chunk
// buffer and is only valid until the next NextChunk call.
func (c *Chunk) At(i int) []int {
	return c.indices[i*c.k : (i+1)*c.k : (i+1)*c.k]
}

// Count returns C(n, k). It returns false if the value does not fit in a uint64.
func Count(n, k int) (uint64, bool) {
	if k < 0 || n < 0 || k > n {
		return 0, true
	}
	if k > n-k {
		k = n - k
	}

	result := uint64(1)
	for i := 0; i < k; i++ {
		// C(n, i+1) = C(n, i) * (n-i) / (i+1), exact at every step.
		hi, lo := bits.Mul64(result, uint64(n-i))
		d := uint64(i + 1)
		if hi >= d {
			return 0, false
		}
		result, _ = bits.Div64(hi, lo, d)
	}
	return result, true
}
