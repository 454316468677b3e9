// SPDX-License-Identifier: MIT
// Package: sssp/bellmanford
//
// validate.go - parallel relationship pre-scan.

package bellmanford

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/sssp/graph"
	"github.com/katalvlaran/sssp/internal/parallel"
)

// validateRelationships rejects NaN/±Inf weights and out-of-range targets
// before the store is touched. Negative finite weights are accepted.
func validateRelationships(ctx context.Context, g graph.Graph, concurrency int, fallbackWeight float64) error {
	nodeCount := g.NodeCount()
	partitions := parallel.RangePartition(concurrency, nodeCount, parallel.DefaultMinBatchSize)

	tasks := make([]parallel.Task, len(partitions))
	for i, p := range partitions {
		local := g.ConcurrentCopy()
		tasks[i] = func(ctx context.Context) error {
			var bad error
			for node := p.Start; node < p.End() && bad == nil; node++ {
				if (node-p.Start)%BatchSize == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				local.ForEachRelationship(node, fallbackWeight, func(source, target int64, weight float64) bool {
					switch {
					case math.IsNaN(weight) || math.IsInf(weight, 0):
						bad = fmt.Errorf("%w: %d→%d weight=%g", ErrNonFiniteWeight, source, target, weight)
					case target < 0 || target >= nodeCount:
						bad = fmt.Errorf("%w: %d→%d (node count %d)", ErrTargetNotFound, source, target, nodeCount)
					}
					return bad == nil
				})
			}

			return bad
		}
	}

	return parallel.Run(ctx, concurrency, tasks)
}
