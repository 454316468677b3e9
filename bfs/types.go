// Package bfs declares the options, sentinels and result of the
// breadth-first walk over a graph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by BFS.
var (
	// ErrStartVertexNotFound is returned when the start id is outside [0, NodeCount()).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation reports an Option that was given a meaningless value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unreached is the Depth and Parent value of vertices BFS never reached.
const Unreached int64 = -1

// Option mutates BFSOptions. A bad value does not panic; it is kept and
// BFS returns it wrapped in ErrOptionViolation before walking.
type Option func(*BFSOptions)

// BFSOptions controls one walk.
type BFSOptions struct {
	// Ctx is checked before every dequeue.
	Ctx context.Context

	// OnVisit runs once per dequeued vertex. A non-nil error ends the walk
	// and is returned.
	OnVisit func(id int64, depth int) error

	// MaxDepth bounds the depth of enqueued vertices; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor can skip relationships by returning false.
	// Called for each relationship curr→neighbor with its weight.
	FilterNeighbor func(curr, neighbor int64, weight float64) bool

	// first invalid option, reported by BFS
	err error
}

// DefaultOptions walks everything reachable with a background context and
// no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(int64, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int64, _ float64) bool { return true },
	}
}

// WithContext replaces the background context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the visit hook. nil is ignored.
func WithOnVisit(fn func(id int64, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk below depth d (d itself is still visited).
// Zero removes the limit and a negative d is ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips relationships when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int64, weight float64) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is the BFS tree of one walk. Order lists vertices as they were
// dequeued. Depth and Parent are indexed by node id and hold Unreached for
// vertices never reached (Parent also for the start).
type BFSResult struct {
	Start  int64
	Order  []int64
	Depth  []int64
	Parent []int64
}

// Visited reports whether id was reached.
func (r *BFSResult) Visited(id int64) bool {
	return id >= 0 && id < int64(len(r.Depth)) && r.Depth[id] != Unreached
}

// PathTo follows parents from dest back to the start and returns the
// vertices in walk order. It fails when dest was not reached.
func (r *BFSResult) PathTo(dest int64) ([]int64, error) {
	if !r.Visited(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int64{}
	for cur := dest; cur != Unreached; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
