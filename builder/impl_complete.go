// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - For every unordered pair i<j emits i → j; directed builders also emit
//     j → i so every ordered pair is connected.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/graph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		first := b.AddNodes(int64(n))
		end := first + int64(n)
		for u := first; u < end; u++ {
			for v := u + 1; v < end; v++ {
				if err := addEdge(methodComplete, b, cfg, u, v); err != nil {
					return err
				}
				if !b.Undirected() {
					if err := addEdge(methodComplete, b, cfg, v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
