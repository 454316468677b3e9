// SPDX-License-Identifier: MIT
// Package: sssp/graph
//
// types.go - graph contract, relationship record, sentinel errors and options.

package graph

import "errors"

// Sentinel errors returned by Builder and FromRelationships.
var (
	// ErrNodeNotFound indicates a relationship endpoint outside [0, NodeCount()).
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("graph: bad weight for unweighted graph")

	// ErrNonFiniteWeight indicates a NaN or infinite relationship weight.
	ErrNonFiniteWeight = errors.New("graph: weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// RelationshipConsumer receives one relationship source→target with its weight.
// Returning false stops the iteration.
type RelationshipConsumer func(source, target int64, weight float64) bool

// Graph is the read-only view required by the shortest-path engines.
//
// Implementations must tolerate concurrent calls on distinct handles obtained
// through ConcurrentCopy. A single handle is only ever used by one goroutine.
type Graph interface {
	// NodeCount returns the size of the node id space.
	NodeCount() int64

	// RelationshipCount returns the number of directed relationships.
	RelationshipCount() int64

	// ConcurrentCopy returns a handle that may be used by one goroutine
	// independently of every other handle.
	ConcurrentCopy() Graph

	// ForEachRelationship visits the outgoing relationships of node.
	// Unweighted graphs report fallbackWeight.
	ForEachRelationship(node int64, fallbackWeight float64, fn RelationshipConsumer)
}

// Relationship is a single directed, weighted relationship.
type Relationship struct {
	Source int64
	Target int64
	Weight float64
}

// Option configures a Builder before relationships are added.
type Option func(b *Builder)

// WithUndirected mirrors every added relationship (source→target and target→source).
func WithUndirected() Option {
	return func(b *Builder) { b.undirected = true }
}

// WithWeighted allows non-zero relationship weights.
func WithWeighted() Option {
	return func(b *Builder) { b.weighted = true }
}

// WithLoops permits self-loops.
func WithLoops() Option {
	return func(b *Builder) { b.allowLoops = true }
}
