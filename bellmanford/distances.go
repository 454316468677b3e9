// SPDX-License-Identifier: MIT
// Package: sssp/bellmanford
//
// distances.go - lock-free tentative distance store.
//
// Every node owns a 64-bit lock word that stores real data while unlocked:
//   - with hop tracking, the hop length of the recorded path;
//   - without it, the predecessor shifted by one (so NoPredecessor is 0).
//
// Unlocked words are >= 0. Locking replaces the word v by ^v, which is always
// negative, with a single compare-and-swap. The owner releases the lock by
// storing the new (or the original) non-negative word.

package bellmanford

import (
	"math"
	"sync/atomic"
)

// TentativeDistances holds the best known distance, predecessor and
// (optionally) hop length of every node. Read, Distance and TryImprove are
// safe for concurrent use; Initialize is not.
type TentativeDistances struct {
	distances    []atomic.Uint64 // math.Float64bits
	predecessors []atomic.Int64  // raw predecessor with hops, predecessor+1 without
	hopLengths   []atomic.Int64  // nil without hop tracking
}

// NewTentativeDistances allocates a store for nodeCount nodes with every
// distance at +Inf and no predecessor. withHopLengths selects the variant
// that records hop lengths.
func NewTentativeDistances(nodeCount int64, withHopLengths bool) *TentativeDistances {
	t := &TentativeDistances{
		distances:    make([]atomic.Uint64, nodeCount),
		predecessors: make([]atomic.Int64, nodeCount),
	}
	inf := math.Float64bits(math.Inf(1))
	for i := range t.distances {
		t.distances[i].Store(inf)
	}
	if withHopLengths {
		t.hopLengths = make([]atomic.Int64, nodeCount)
		for i := range t.predecessors {
			t.predecessors[i].Store(NoPredecessor)
		}
	}
	// Without hops the zero value already encodes NoPredecessor.

	return t
}

// Size returns the number of nodes.
func (t *TentativeDistances) Size() int64 { return int64(len(t.distances)) }

// HasHopLengths reports whether hop lengths are recorded.
func (t *TentativeDistances) HasHopLengths() bool { return t.hopLengths != nil }

// Initialize writes one entry without synchronization. It must only be used
// before any concurrent access.
func (t *TentativeDistances) Initialize(node, predecessor int64, distance float64, hopLength int64) {
	t.distances[node].Store(math.Float64bits(distance))
	if t.hopLengths != nil {
		t.predecessors[node].Store(predecessor)
		t.hopLengths[node].Store(hopLength)
		return
	}
	t.predecessors[node].Store(predecessor + 1)
}

// Distance returns the tentative distance of node.
func (t *TentativeDistances) Distance(node int64) float64 {
	return math.Float64frombits(t.distances[node].Load())
}

// Predecessor returns the recorded predecessor of node. The value is only
// meaningful while no writer holds the node.
func (t *TentativeDistances) Predecessor(node int64) int64 {
	if t.hopLengths != nil {
		return t.predecessors[node].Load()
	}

	return unlocked(t.predecessors[node].Load()) - 1
}

// HopLength returns the recorded hop length of node, or NoLength when hop
// lengths are not tracked.
func (t *TentativeDistances) HopLength(node int64) int64 {
	if t.hopLengths == nil {
		return NoLength
	}

	return unlocked(t.hopLengths[node].Load())
}

// Locked reports whether a writer currently holds node.
func (t *TentativeDistances) Locked(node int64) bool {
	return t.lockWord(node).Load() < 0
}

// Read returns the entry of node with plain atomic loads. The three values
// may belong to different updates when a writer is active.
func (t *TentativeDistances) Read(node int64) (distance float64, predecessor, hopLength int64) {
	return t.Distance(node), t.Predecessor(node), t.HopLength(node)
}

// Snapshot returns a distance and hop length recorded together by one
// update. ok is false when node is locked or changed during the read; the
// caller retries.
//
// Distances strictly decrease with every update, so an unchanged distance
// around an unlocked lock-word load proves no update completed in between.
func (t *TentativeDistances) Snapshot(node int64) (distance float64, hopLength int64, ok bool) {
	before := t.distances[node].Load()
	word := t.lockWord(node).Load()
	after := t.distances[node].Load()
	if word < 0 || before != after {
		return 0, 0, false
	}
	if t.hopLengths == nil {
		return math.Float64frombits(before), NoLength, true
	}

	return math.Float64frombits(before), word, true
}

// TryImprove sets node to (distance, predecessor, hopLength) if distance is
// strictly smaller than the stored one. It returns false when another writer
// holds the node, wins the lock race, or already stored a distance that is
// not larger; callers re-read the distance and decide whether to retry.
func (t *TentativeDistances) TryImprove(node int64, distance float64, predecessor, hopLength int64) bool {
	word := t.lockWord(node)

	// 1. Observe the lock word; negative means someone else is writing.
	current := word.Load()
	if current < 0 {
		return false
	}

	// 2. Acquire.
	if !word.CompareAndSwap(current, ^current) {
		return false
	}

	// 3. Re-check under the lock and publish; the final store releases.
	if distance < t.Distance(node) {
		t.distances[node].Store(math.Float64bits(distance))
		if t.hopLengths != nil {
			t.predecessors[node].Store(predecessor)
			word.Store(hopLength)
		} else {
			word.Store(predecessor + 1)
		}
		return true
	}

	// 4. Stale improvement: release unchanged.
	word.Store(current)

	return false
}

func (t *TentativeDistances) lockWord(node int64) *atomic.Int64 {
	if t.hopLengths != nil {
		return &t.hopLengths[node]
	}

	return &t.predecessors[node]
}

// unlocked returns the unlocked form of a lock word.
func unlocked(word int64) int64 {
	if word < 0 {
		return ^word
	}

	return word
}
