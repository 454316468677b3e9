// SPDX-License-Identifier: MIT
// Package: sssp/bellmanford
//
// distances_test.go - TentativeDistances encoding, locking and races.

package bellmanford

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTentativeDistances_InitialState(t *testing.T) {
	for _, withHops := range []bool{false, true} {
		d := NewTentativeDistances(4, withHops)
		require.Equal(t, int64(4), d.Size())
		require.Equal(t, withHops, d.HasHopLengths())
		for node := int64(0); node < 4; node++ {
			dist, pred, hops := d.Read(node)
			require.True(t, math.IsInf(dist, 1))
			require.Equal(t, NoPredecessor, pred)
			require.Equal(t, NoLength, hops)
			require.False(t, d.Locked(node))
		}
	}
}

func TestTentativeDistances_PredecessorEncoding(t *testing.T) {
	// Without hop lengths the predecessor word doubles as the lock word and is
	// stored shifted by one.
	d := NewTentativeDistances(3, false)
	d.Initialize(0, NoPredecessor, 0, 1)
	require.Equal(t, int64(0), d.predecessors[0].Load())
	require.Equal(t, NoLength, d.HopLength(0))

	require.True(t, d.TryImprove(2, 5, 0, 9))
	require.Equal(t, int64(1), d.predecessors[2].Load())
	require.Equal(t, int64(0), d.Predecessor(2))
	require.Equal(t, NoLength, d.HopLength(2), "hop lengths are ignored in this variant")

	// With hop lengths the predecessor is stored raw and the hop word locks.
	h := NewTentativeDistances(3, true)
	h.Initialize(0, NoPredecessor, 0, 1)
	require.True(t, h.TryImprove(2, 5, 0, 2))
	require.Equal(t, int64(0), h.predecessors[2].Load())
	require.Equal(t, int64(2), h.hopLengths[2].Load())
}

func TestTentativeDistances_TryImprove(t *testing.T) {
	for _, withHops := range []bool{false, true} {
		d := NewTentativeDistances(2, withHops)
		d.Initialize(0, NoPredecessor, 0, 1)

		require.True(t, d.TryImprove(1, 10, 0, 2))
		dist, pred, _ := d.Read(1)
		require.Equal(t, 10.0, dist)
		require.Equal(t, int64(0), pred)

		// Equal and worse candidates leave the entry untouched.
		require.False(t, d.TryImprove(1, 10, 1, 3))
		require.False(t, d.TryImprove(1, 11, 1, 3))
		dist, pred, _ = d.Read(1)
		require.Equal(t, 10.0, dist)
		require.Equal(t, int64(0), pred)
		require.False(t, d.Locked(1), "stale attempts must release the lock")

		require.True(t, d.TryImprove(1, -4, 1, 3))
		dist, pred, hops := d.Read(1)
		require.Equal(t, -4.0, dist)
		require.Equal(t, int64(1), pred)
		if withHops {
			require.Equal(t, int64(3), hops)
		}
	}
}

func TestTentativeDistances_LockedNodeRejectsWrites(t *testing.T) {
	for _, withHops := range []bool{false, true} {
		d := NewTentativeDistances(2, withHops)
		d.Initialize(1, 0, 7, 2)

		word := d.lockWord(1)
		held := word.Load()
		word.Store(^held)

		require.True(t, d.Locked(1))
		require.False(t, d.TryImprove(1, 1, 0, 2))
		_, _, ok := d.Snapshot(1)
		require.False(t, ok)
		// Readers decode through the lock.
		require.Equal(t, int64(0), d.Predecessor(1))

		word.Store(held)
		require.False(t, d.Locked(1))
		dist, hops, ok := d.Snapshot(1)
		require.True(t, ok)
		require.Equal(t, 7.0, dist)
		if withHops {
			require.Equal(t, int64(2), hops)
		} else {
			require.Equal(t, NoLength, hops)
		}
		require.True(t, d.TryImprove(1, 1, 0, 2))
	}
}

// improve retries like a worker does until the candidate is no longer better.
func improve(d *TentativeDistances, node int64, dist float64, pred, hops int64) {
	for dist < d.Distance(node) {
		if d.TryImprove(node, dist, pred, hops) {
			return
		}
	}
}

func TestTentativeDistances_ConcurrentMinimumWins(t *testing.T) {
	const (
		writers  = 8
		attempts = 2000
	)
	for _, withHops := range []bool{false, true} {
		d := NewTentativeDistances(1, withHops)

		var wg sync.WaitGroup
		for w := 0; w < writers; w++ {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				for i := int64(attempts); i > 0; i-- {
					// Distances are unique per writer: i*writers + id.
					dist := float64(i*writers + id)
					improve(d, 0, dist, id, i)
				}
			}(int64(w))
		}
		wg.Wait()

		dist, pred, hops := d.Read(0)
		require.Equal(t, float64(writers), dist, "writer 0 owns the minimum 1*writers+0")
		require.Equal(t, int64(0), pred)
		if withHops {
			require.Equal(t, int64(1), hops)
		}
		require.False(t, d.Locked(0))
	}
}

func TestTentativeDistances_SnapshotIsConsistent(t *testing.T) {
	const updates = 5000
	d := NewTentativeDistances(1, true)
	d.Initialize(0, NoPredecessor, 0, 0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for k := int64(1); k <= updates; k++ {
			improve(d, 0, -float64(k), 0, k)
		}
	}()

	for {
		select {
		case <-done:
			dist, hops, ok := d.Snapshot(0)
			require.True(t, ok)
			require.Equal(t, -float64(updates), dist)
			require.Equal(t, int64(updates), hops)
			return
		default:
		}
		dist, hops, ok := d.Snapshot(0)
		if !ok {
			continue
		}
		require.Equal(t, -dist, float64(hops), "distance and hop length from different updates")
	}
}
