// SPDX-License-Identifier: MIT
// Package: sssp/bellmanford
//
// result.go - converged distances, statistics and reachability.

package bellmanford

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Stats summarizes one run.
type Stats struct {
	Rounds      int
	Relaxations int64 // successful improvements
	Contended   int64 // attempts lost to a concurrent writer
	Duration    time.Duration
}

// PathResult is one shortest path from the source.
type PathResult struct {
	// Index is dense in [0, number of paths) and independent of scheduling.
	Index      int64
	SourceNode int64
	TargetNode int64
	// NodeIDs runs from SourceNode to TargetNode.
	NodeIDs []int64
	// Costs[i] is the distance of NodeIDs[i].
	Costs []float64
	// RelationshipIDs is always empty: relationships carry no identity here.
	RelationshipIDs []int64
}

// Result is the outcome of BellmanFord.
type Result struct {
	source      int64
	nodeCount   int64
	concurrency int
	distances   *TentativeDistances

	negativeCycle bool
	cycle         []int64
	stats         Stats

	consumed atomic.Bool
}

// Source returns the start node.
func (r *Result) Source() int64 { return r.source }

// NodeCount returns the size of the node id space.
func (r *Result) NodeCount() int64 { return r.nodeCount }

// ContainsNegativeCycle reports whether a negative cycle reachable from the
// source was found.
func (r *Result) ContainsNegativeCycle() bool { return r.negativeCycle }

// NegativeCycle returns a negative cycle in relationship order, or nil when
// none was found or none could be extracted from the predecessors.
func (r *Result) NegativeCycle() []int64 {
	if r.cycle == nil {
		return nil
	}

	return append([]int64(nil), r.cycle...)
}

// Distance returns the shortest distance to node: +Inf when unreachable or
// out of range, NaN after a negative cycle.
func (r *Result) Distance(node int64) float64 {
	if r.negativeCycle {
		return math.NaN()
	}
	if node < 0 || node >= r.nodeCount {
		return math.Inf(1)
	}

	return r.distances.Distance(node)
}

// Predecessor returns the node preceding node on its shortest path, or
// NoPredecessor for the source, unreachable nodes and after a negative cycle.
func (r *Result) Predecessor(node int64) int64 {
	if r.negativeCycle || node < 0 || node >= r.nodeCount {
		return NoPredecessor
	}

	return r.distances.Predecessor(node)
}

// Reachable returns the nodes with a finite distance, the source included.
// It is empty after a negative cycle.
func (r *Result) Reachable() *roaring64.Bitmap {
	bm := roaring64.New()
	if r.negativeCycle {
		return bm
	}
	for node := int64(0); node < r.nodeCount; node++ {
		if !math.IsInf(r.distances.Distance(node), 1) {
			bm.Add(uint64(node))
		}
	}

	return bm
}

// Stats returns run statistics.
func (r *Result) Stats() Stats { return r.stats }

func (r *Result) hasPath(node int64) bool {
	return node != r.source && r.distances.Predecessor(node) != NoPredecessor
}
