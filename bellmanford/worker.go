// SPDX-License-Identifier: MIT
// Package: sssp/bellmanford
//
// worker.go - per-worker relax and sync phases.
//
// A worker alternates between two phases driven by the engine:
//   - relax: claim BatchSize frontier positions at a time and relax their
//     outgoing relationships, buffering improved targets in a private queue;
//     once the frontier is exhausted, keep draining a small private queue.
//   - sync: append the private queue to the next frontier.

package bellmanford

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/katalvlaran/sssp/graph"
	"github.com/katalvlaran/sssp/internal/bitset"
	"github.com/katalvlaran/sssp/progress"
)

type phase uint8

const (
	relaxPhase phase = iota
	syncPhase
)

// state is shared by all workers of one run.
type state struct {
	distances *TentativeDistances
	enqueued  *bitset.BitSet

	frontier      []int64
	frontierIndex atomic.Int64
	frontierSize  atomic.Int64

	nodeCount      int64
	fallbackWeight float64
	trackHops      bool
	progress       progress.Tracker

	cycleFound atomic.Bool
	cycleNode  atomic.Int64
}

// signalNegativeCycle flips the shared flag; the first caller records node.
func (s *state) signalNegativeCycle(node int64) {
	if s.cycleFound.CompareAndSwap(false, true) {
		s.cycleNode.Store(node)
	}
}

type worker struct {
	graph graph.Graph
	state *state
	phase phase

	queue []int64
	spare []int64

	relaxations int64
	contended   int64
}

func newWorker(g graph.Graph, s *state, queueCapacity int64) *worker {
	return &worker{
		graph: g,
		state: s,
		queue: make([]int64, 0, queueCapacity),
	}
}

// run executes the current phase and switches to the other one.
func (w *worker) run(ctx context.Context) error {
	defer w.togglePhase()
	if w.phase == relaxPhase {
		return w.relaxPhase(ctx)
	}
	w.syncPhase()

	return nil
}

func (w *worker) togglePhase() {
	if w.phase == relaxPhase {
		w.phase = syncPhase
	} else {
		w.phase = relaxPhase
	}
}

func (w *worker) relaxPhase(ctx context.Context) error {
	s := w.state
	size := s.frontierSize.Load()

	// 1. Shared frontier, chunk by chunk.
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.cycleFound.Load() {
			return nil
		}
		offset := s.frontierIndex.Add(BatchSize) - BatchSize
		if offset >= size {
			break
		}
		limit := min(offset+BatchSize, size)
		for i := offset; i < limit; i++ {
			w.relaxNode(s.frontier[i])
		}
		s.progress.LogProgress(limit - offset)
	}

	// 2. Small private queue: relax it here instead of waiting for sync.
	// Bounded by nodeCount passes so a negative cycle cannot trap the worker.
	for pass := int64(0); pass < s.nodeCount; pass++ {
		if len(w.queue) == 0 || len(w.queue) >= LocalQueueThreshold {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.cycleFound.Load() {
			return nil
		}
		batch := w.queue
		w.queue = w.spare[:0]
		for _, node := range batch {
			w.relaxNode(node)
		}
		s.progress.LogProgress(int64(len(batch)))
		w.spare = batch[:0]
	}

	return nil
}

func (w *worker) syncPhase() {
	s := w.state
	n := int64(len(w.queue))
	if n == 0 {
		return
	}
	offset := s.frontierSize.Add(n) - n
	copy(s.frontier[offset:offset+n], w.queue)
	w.queue = w.queue[:0]
}

// relaxNode relaxes every outgoing relationship of node.
func (w *worker) relaxNode(node int64) {
	w.state.enqueued.Clear(uint64(node))
	w.graph.ForEachRelationship(node, w.state.fallbackWeight, w.relaxRelationship)
}

// relaxRelationship tries to improve target through source. It returns false
// to stop the iteration once a negative cycle is known.
func (w *worker) relaxRelationship(source, target int64, weight float64) bool {
	s := w.state
	for {
		if s.cycleFound.Load() {
			return false
		}

		// The source distance is re-read for every relationship: it may have
		// improved since the node was claimed.
		sourceDistance, hops, ok := s.distances.Snapshot(source)
		if !ok {
			runtime.Gosched()
			continue
		}

		candidate := sourceDistance + weight
		if !(candidate < s.distances.Distance(target)) {
			return true
		}

		candidateHops := NoLength
		if s.trackHops {
			candidateHops = hops + 1
			if candidateHops > s.nodeCount {
				// A walk with more than nodeCount nodes repeats a node, and
				// strict improvements only ever repeat through negative cycles.
				// The write closes the cycle in the predecessors for the witness.
				s.distances.TryImprove(target, candidate, source, candidateHops)
				s.signalNegativeCycle(target)
				return false
			}
		}

		if s.distances.TryImprove(target, candidate, source, candidateHops) {
			w.relaxations++
			if !s.enqueued.TestAndSet(uint64(target)) {
				w.queue = append(w.queue, target)
			}
			return true
		}
		w.contended++
		runtime.Gosched()
	}
}
