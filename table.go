package gridhash

import "math/bits"

var _ Table[int] = &FixedTable[int]{}

// FixedTable is a flat, pre-sized table with no collision resolution.
// Capacity is nextPowerOfTwo(size*1000)+1: the oversizing factor keeps
// aliasing rare, and the +1 breaks power-of-two alignment so structured keys
// (sequential cell coordinates) fed through the identity hash do not cluster
// onto a small subset of slots. Slot spread comes from table size, not hash
// quality.
type FixedTable[T any] struct {
	entries []T
}

func newFixedTable[T any](size int) (*FixedTable[T], error) {
	if size <= 0 {
		return nil, ZeroSizeError{}
	}
	capacity := nextPowerOfTwo(size*1000) + 1
	return &FixedTable[T]{
		entries: make([]T, capacity),
	}, nil
}

// Count returns the slot count, fixed at construction.
func (t *FixedTable[T]) Count() int {
	return len(t.entries)
}

// index reduces a 64-bit key to a slot. Always in range: the result is
// taken modulo the capacity.
func (t *FixedTable[T]) index(key uint64) int {
	return int(hashKey(key) % uint64(len(t.entries)))
}

// Vector returns the slot for a 2D key.
func (t *FixedTable[T]) Vector(x, y uint32) *T {
	return &t.entries[t.index(vectorKey(x, y))]
}

// Scalar returns the slot for a scalar key.
func (t *FixedTable[T]) Scalar(s uint32) *T {
	return &t.entries[t.index(uint64(s))]
}

// Clear zeroes every slot. Capacity is unchanged.
func (t *FixedTable[T]) Clear() {
	clear(t.entries)
}

func vectorKey(x, y uint32) uint64 {
	return uint64(x)<<32 | uint64(y)
}

// Identity hash for now
func hashKey(seed uint64) uint64 {
	return seed
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
