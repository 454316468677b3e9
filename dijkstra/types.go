// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:           id of the starting node (must be set and inside the id space).
//	– ReturnPath:       if true, return the predecessor slice for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this are skipped.
//	– InfEdgeThreshold: relationships with weight >= this threshold are treated as impassable.
//	– FallbackWeight:   weight reported by unweighted graphs.
//
// Errors (sentinel):
//
//	– ErrNoSource        if no source was provided.
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrVertexNotFound  if the source node is outside the id space.
//	– ErrNegativeWeight  if a negative relationship weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source node was provided.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source node does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that a negative (or NaN) weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative relationship weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all relationships (including zero-weight ones) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NoPredecessor marks nodes without predecessor in the returned slice.
const NoPredecessor int64 = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – must be ≥ 0. Default is +Inf (no cap).
// InfEdgeThreshold – must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Source           int64   // The id of the source node
	ReturnPath       bool    // Whether to return the predecessor slice
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which relationships are non-traversable
	FallbackWeight   float64 // Weight of relationships in unweighted graphs

	hasSource bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the source node. Must be called.
func Source(node int64) Option {
	return func(o *Options) {
		o.Source = node
		o.hasSource = true
	}
}

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on negative or NaN values.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which
// relationships are skipped entirely.
// Panics with ErrBadInfThreshold on zero, negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithFallbackWeight sets the weight reported by unweighted graphs.
func WithFallbackWeight(w float64) Option {
	return func(o *Options) {
		o.FallbackWeight = w
	}
}

// DefaultOptions returns an Options struct initialized with defaults.
//
// Defaults:
//   - Source:           unset.
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf.
//   - InfEdgeThreshold: +Inf.
//   - FallbackWeight:   1.
func DefaultOptions() Options {
	return Options{
		Source:           NoPredecessor,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		FallbackWeight:   1,
	}
}
