// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible relationship
//     independently with probability p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j); allow self-loops iff b.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. The weight of an included
//     relationship is drawn right after its trial.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n nodes with independent relationship probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		first := b.AddNodes(int64(n))
		end := first + int64(n)
		include := func() bool {
			switch {
			case p == probMin:
				return false
			case p == probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}

		for u := first; u < end; u++ {
			start := first
			if b.Undirected() {
				start = u + 1
			}
			for v := start; v < end; v++ {
				if u == v && !b.Looped() {
					continue
				}
				if !include() {
					continue
				}
				if err := addEdge(methodRandomSparse, b, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
