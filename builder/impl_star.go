// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first allocated node is the center; emits center → leaf for every
//     leaf in ascending id order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/graph"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center := b.AddNodes(int64(n))
		for leaf := center + 1; leaf < center+int64(n); leaf++ {
			if err := addEdge(methodStar, b, cfg, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
