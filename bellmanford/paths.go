// SPDX-License-Identifier: MIT
// Package: sssp/bellmanford
//
// paths.go - parallel path reconstruction.
//
// Steps:
//  1. Split [0, NodeCount()) into Concurrency contiguous partitions.
//  2. Count the targets of every partition in parallel.
//  3. Prefix sums give each partition its own block of path indices.
//  4. Every partition walks predecessor chains of its targets and sends the
//     paths to the consuming goroutine.

package bellmanford

import (
	"context"
	"iter"
	"slices"

	"github.com/katalvlaran/sssp/internal/parallel"
)

// Paths returns the shortest path to every reachable node except the source.
// Indices are dense; emission order across partitions is unspecified.
//
// The sequence can be consumed once: later calls (and later iterations of the
// same sequence) yield nothing. It yields nothing after a negative cycle.
// Stopping the iteration early releases the producing goroutines.
func (r *Result) Paths() iter.Seq[PathResult] {
	return func(yield func(PathResult) bool) {
		if r.negativeCycle || !r.consumed.CompareAndSwap(false, true) {
			return
		}
		r.emitPaths(yield)
	}
}

func (r *Result) emitPaths(yield func(PathResult) bool) {
	partitions := parallel.RangePartition(r.concurrency, r.nodeCount, 1)
	if len(partitions) == 0 {
		return
	}

	// 1. Count.
	counts := make([]int64, len(partitions))
	countTasks := make([]parallel.Task, len(partitions))
	for i, p := range partitions {
		countTasks[i] = func(context.Context) error {
			for node := p.Start; node < p.End(); node++ {
				if r.hasPath(node) {
					counts[i]++
				}
			}
			return nil
		}
	}
	if err := parallel.Run(context.Background(), r.concurrency, countTasks); err != nil {
		return
	}

	// 2. Index blocks.
	bases := make([]int64, len(partitions))
	var total int64
	for i, c := range counts {
		bases[i] = total
		total += c
	}
	if total == 0 {
		return
	}

	// 3. Emit.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan PathResult, r.concurrency*BatchSize)
	emitTasks := make([]parallel.Task, len(partitions))
	for i, p := range partitions {
		emitTasks[i] = func(ctx context.Context) error {
			index := bases[i]
			for node := p.Start; node < p.End(); node++ {
				if !r.hasPath(node) {
					continue
				}
				path, ok := r.buildPath(node)
				if !ok {
					continue
				}
				path.Index = index
				index++
				select {
				case out <- path:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		}
	}
	go func() {
		defer close(out)
		_ = parallel.Run(ctx, r.concurrency, emitTasks)
	}()

	for path := range out {
		if !yield(path) {
			cancel()
			for range out {
			}
			return
		}
	}
}

// buildPath walks predecessors from target back to the source. ok is false
// if the chain does not reach the source within NodeCount() steps.
func (r *Result) buildPath(target int64) (PathResult, bool) {
	nodes := []int64{target}
	costs := []float64{r.distances.Distance(target)}

	cur := target
	for steps := int64(0); cur != r.source; steps++ {
		if steps >= r.nodeCount {
			return PathResult{}, false
		}
		cur = r.distances.Predecessor(cur)
		if cur == NoPredecessor {
			return PathResult{}, false
		}
		nodes = append(nodes, cur)
		costs = append(costs, r.distances.Distance(cur))
	}
	slices.Reverse(nodes)
	slices.Reverse(costs)

	return PathResult{
		SourceNode:      r.source,
		TargetNode:      target,
		NodeIDs:         nodes,
		Costs:           costs,
		RelationshipIDs: []int64{},
	}, true
}
