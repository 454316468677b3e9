// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates the graph
//     builder, resolves cfg, runs cons in order, freezes the CSR.
//   - Every constructor allocates its own node block, so composing several
//     constructors yields disjoint components with consecutive ids.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect the graph.Builder mode flags (undirected/loops/weighted).
//   - Preserve determinism for the same config and call order.
type Constructor func(b *graph.Builder, cfg builderConfig) error

// BuildGraph creates a graph.Builder with graph options gopts, resolves the
// builder configuration from bopts, applies all constructors in order and
// returns the frozen CSR. Any constructor error is wrapped with the context
// "BuildGraph: %w" and returned immediately.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...)
//     or graph sentinels (graph.ErrNonFiniteWeight, ...).
func BuildGraph(gopts []graph.Option, bopts []BuilderOption, cons ...Constructor) (*graph.CSR, error) {
	b := graph.NewBuilder(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build(), nil
}

// weightFor draws the next relationship weight: cfg.weightFn for weighted
// builders, 0 otherwise.
func weightFor(b *graph.Builder, cfg builderConfig) float64 {
	if !b.Weighted() {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}

// addEdge adds u→v with the next weight, wrapping failures with method context.
func addEdge(method string, b *graph.Builder, cfg builderConfig, u, v int64) error {
	w := weightFor(b, cfg)
	if err := b.AddRelationship(u, v, w); err != nil {
		return fmt.Errorf("%s: AddRelationship(%d→%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// Topology factories, implemented in impl_*.go:
//
//	Path(n)            chain 0→1→…→n-1 (n ≥ 2)
//	Cycle(n)           Path(n) plus n-1→0 (n ≥ 3)
//	Star(n)            center 0 connected to n-1 leaves (n ≥ 2)
//	Grid(rows, cols)   4-neighborhood grid, ids row-major (rows, cols ≥ 1)
//	Complete(n)        every unordered pair (n ≥ 1)
//	RandomSparse(n, p) Erdős–Rényi-like sample (n ≥ 1, 0 ≤ p ≤ 1)
