// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the Path(n) relationships followed by the closing last → first.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		first := b.AddNodes(int64(n))
		last := first + int64(n) - 1
		for u := first; u < last; u++ {
			if err := addEdge(methodCycle, b, cfg, u, u+1); err != nil {
				return err
			}
		}

		return addEdge(methodCycle, b, cfg, last, first)
	}
}
