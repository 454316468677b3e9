// Package bitset provides a fixed-size, lock-free bitset whose operations are
// safe for concurrent use by any number of goroutines.
package bitset

import (
	"math/bits"
	"sync/atomic"
)

// BitSet is a thread-safe, lock-free, fixed-size bitset.
type BitSet struct {
	words []atomic.Uint64
	size  uint64
}

// New creates a BitSet holding size bits, all clear.
func New(size uint64) *BitSet {
	return &BitSet{
		words: make([]atomic.Uint64, (size+63)/64),
		size:  size,
	}
}

// Size returns the number of bits.
func (b *BitSet) Size() uint64 { return b.size }

// Get reports whether bit i is set. Out-of-range indices report false.
func (b *BitSet) Get(i uint64) bool {
	if i >= b.size {
		return false
	}

	return b.words[i/64].Load()&(1<<(i%64)) != 0
}

// Set sets bit i. Out-of-range indices are ignored.
func (b *BitSet) Set(i uint64) {
	if i >= b.size {
		return
	}
	b.words[i/64].Or(1 << (i % 64))
}

// TestAndSet sets bit i and returns true if it was ALREADY set.
// Exactly one of any number of concurrent callers observes false.
func (b *BitSet) TestAndSet(i uint64) bool {
	if i >= b.size {
		return false
	}
	mask := uint64(1) << (i % 64)
	old := b.words[i/64].Or(mask)

	return old&mask != 0
}

// Clear clears bit i. Out-of-range indices are ignored.
func (b *BitSet) Clear(i uint64) {
	if i >= b.size {
		return
	}
	b.words[i/64].And(^(uint64(1) << (i % 64)))
}

// Cardinality returns the number of set bits. It is exact only when no
// concurrent writer is active.
func (b *BitSet) Cardinality() uint64 {
	var n int
	for i := range b.words {
		n += bits.OnesCount64(b.words[i].Load())
	}

	return uint64(n)
}

// ClearAll clears every bit. Not atomic as a whole.
func (b *BitSet) ClearAll() {
	for i := range b.words {
		b.words[i].Store(0)
	}
}
