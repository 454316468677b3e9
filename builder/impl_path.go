// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Allocates n nodes; emits first+i → first+i+1 for i in [0, n-2].
//   - Weight policy: cfg.weightFn(cfg.rng) for weighted builders, 0 otherwise.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		first := b.AddNodes(int64(n))
		for i := int64(1); i < int64(n); i++ {
			if err := addEdge(methodPath, b, cfg, first+i-1, first+i); err != nil {
				return err
			}
		}

		return nil
	}
}
