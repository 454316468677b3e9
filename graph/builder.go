// SPDX-License-Identifier: MIT
// Package: sssp/graph
//
// builder.go - incremental construction of a CSR graph.
//
// Contract:
//   - Nodes are allocated in blocks via AddNodes; ids are never reused.
//   - AddRelationship validates eagerly and never mutates on error.
//   - Build performs a stable counting sort by source, so relationships of a
//     node keep their insertion order.

package graph

import (
	"fmt"
	"math"
)

// Builder accumulates nodes and relationships and produces a *CSR.
// A Builder is not safe for concurrent use.
type Builder struct {
	undirected bool
	weighted   bool
	allowLoops bool

	nodeCount int64
	rels      []Relationship
}

// NewBuilder creates an empty Builder. By default the resulting graph is
// directed, unweighted and rejects self-loops.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NodeCount returns the number of nodes allocated so far.
func (b *Builder) NodeCount() int64 { return b.nodeCount }

// Weighted reports whether the builder stores weights.
func (b *Builder) Weighted() bool { return b.weighted }

// Undirected reports whether relationships are mirrored.
func (b *Builder) Undirected() bool { return b.undirected }

// Looped reports whether self-loops are permitted.
func (b *Builder) Looped() bool { return b.allowLoops }

// AddNodes allocates k new nodes and returns the id of the first one.
// k <= 0 allocates nothing and returns the next free id.
func (b *Builder) AddNodes(k int64) int64 {
	first := b.nodeCount
	if k > 0 {
		b.nodeCount += k
	}

	return first
}

// AddRelationship adds source→target with the given weight (and target→source
// for undirected builders).
//
// Errors:
//   - ErrNodeNotFound if either endpoint is outside [0, NodeCount()).
//   - ErrLoopNotAllowed if source == target without WithLoops().
//   - ErrNonFiniteWeight if weight is NaN or ±Inf.
//   - ErrBadWeight if weight != 0 on an unweighted builder.
func (b *Builder) AddRelationship(source, target int64, weight float64) error {
	if source < 0 || source >= b.nodeCount {
		return fmt.Errorf("%w: source %d (node count %d)", ErrNodeNotFound, source, b.nodeCount)
	}
	if target < 0 || target >= b.nodeCount {
		return fmt.Errorf("%w: target %d (node count %d)", ErrNodeNotFound, target, b.nodeCount)
	}
	if source == target && !b.allowLoops {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, source)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %d→%d weight=%g", ErrNonFiniteWeight, source, target, weight)
	}
	if !b.weighted && weight != 0 {
		return fmt.Errorf("%w: %d→%d weight=%g", ErrBadWeight, source, target, weight)
	}

	b.rels = append(b.rels, Relationship{Source: source, Target: target, Weight: weight})
	if b.undirected && source != target {
		b.rels = append(b.rels, Relationship{Source: target, Target: source, Weight: weight})
	}

	return nil
}

// Build freezes the accumulated relationships into a CSR graph.
// The Builder may keep being used afterwards; later additions do not affect
// graphs that were already built.
func (b *Builder) Build() *CSR {
	n := b.nodeCount
	m := int64(len(b.rels))

	firstOut := make([]int64, n+1)
	head := make([]int64, m)
	var weight []float64
	if b.weighted {
		weight = make([]float64, m)
	}

	// Count out-degrees, shifted by one for the prefix sum.
	for _, r := range b.rels {
		firstOut[r.Source+1]++
	}
	for i := int64(1); i <= n; i++ {
		firstOut[i] += firstOut[i-1]
	}

	// Scatter in insertion order (stable).
	next := make([]int64, n)
	copy(next, firstOut[:n])
	for _, r := range b.rels {
		pos := next[r.Source]
		next[r.Source]++
		head[pos] = r.Target
		if weight != nil {
			weight[pos] = r.Weight
		}
	}

	return &CSR{
		nodeCount: n,
		firstOut:  firstOut,
		head:      head,
		weight:    weight,
	}
}

// FromRelationships builds a CSR over nodeCount nodes from rels.
// The first invalid relationship aborts construction.
func FromRelationships(nodeCount int64, rels []Relationship, opts ...Option) (*CSR, error) {
	b := NewBuilder(opts...)
	b.AddNodes(nodeCount)
	for i, r := range rels {
		if err := b.AddRelationship(r.Source, r.Target, r.Weight); err != nil {
			return nil, fmt.Errorf("graph: relationship %d: %w", i, err)
		}
	}

	return b.Build(), nil
}
