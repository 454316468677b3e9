// SPDX-License-Identifier: MIT
// Package: sssp/bellmanford
//
// types.go - sentinel errors, tuning constants and functional options.

package bellmanford

import (
	"context"
	"errors"
	"io"
	"math"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sssp/internal/parallel"
	"github.com/katalvlaran/sssp/progress"
)

// Sentinel errors returned by BellmanFord.
var (
	// ErrNilGraph indicates that a nil graph was passed to BellmanFord.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNoSource indicates that the Source option was not provided.
	ErrNoSource = errors.New("bellmanford: source node not set")

	// ErrSourceNotFound indicates a source outside [0, NodeCount()).
	ErrSourceNotFound = errors.New("bellmanford: source node not found in graph")

	// ErrNonFiniteWeight indicates a NaN or infinite relationship weight.
	ErrNonFiniteWeight = errors.New("bellmanford: relationship weight must be finite")

	// ErrTargetNotFound indicates a relationship pointing outside the node id space.
	ErrTargetNotFound = errors.New("bellmanford: relationship target not found in graph")

	// ErrBadConcurrency indicates WithConcurrency was given a value < 1.
	ErrBadConcurrency = errors.New("bellmanford: concurrency must be positive")

	// ErrBadFallbackWeight indicates WithFallbackWeight was given NaN or ±Inf.
	ErrBadFallbackWeight = errors.New("bellmanford: fallback weight must be finite")

	// ErrTaskPanicked wraps a panic raised by the graph during a run.
	ErrTaskPanicked = parallel.ErrTaskPanicked
)

const (
	// NoPredecessor marks a node without a recorded predecessor.
	NoPredecessor int64 = -1

	// NoLength marks a node without a recorded hop length.
	NoLength int64 = 0

	// BatchSize is the number of frontier positions a worker claims at once.
	BatchSize = 64

	// LocalQueueThreshold bounds the local queue a worker keeps draining on
	// its own once the shared frontier is exhausted.
	LocalQueueThreshold = 1000
)

// Phase names reported to the progress tracker.
const (
	PhaseRelax = "relax"
	PhaseSync  = "sync"
)

// RunObserver receives the summary of a finished run.
type RunObserver interface {
	ObserveRun(rounds int, relaxations, contended int64, negativeCycle bool, d time.Duration)
}

// Options configures a BellmanFord run.
type Options struct {
	// Ctx is checked between rounds and between frontier chunks.
	Ctx context.Context

	// Source is the start node. Required.
	Source int64

	// Concurrency is the number of workers.
	Concurrency int

	// TrackNegativeCycles enables hop-length bookkeeping so a negative
	// cycle is detected as soon as a walk longer than NodeCount() appears.
	TrackNegativeCycles bool

	// FallbackWeight is reported for relationships of unweighted graphs.
	FallbackWeight float64

	Logger   logrus.FieldLogger
	Progress progress.Tracker
	Observer RunObserver

	hasSource bool
}

// Option configures BellmanFord.
type Option func(*Options)

// Source sets the start node.
func Source(node int64) Option {
	return func(o *Options) {
		o.Source = node
		o.hasSource = true
	}
}

// WithConcurrency sets the number of workers. n must be >= 1.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadConcurrency.Error())
		}
		o.Concurrency = n
	}
}

// WithNegativeCycleTracking records hop lengths for early cycle detection.
func WithNegativeCycleTracking() Option {
	return func(o *Options) {
		o.TrackNegativeCycles = true
	}
}

// WithFallbackWeight sets the weight of relationships in unweighted graphs.
// w must be finite.
func WithFallbackWeight(w float64) Option {
	return func(o *Options) {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			panic(ErrBadFallbackWeight.Error())
		}
		o.FallbackWeight = w
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// WithProgress sets the progress tracker. A nil tracker is ignored.
func WithProgress(t progress.Tracker) Option {
	return func(o *Options) {
		if t != nil {
			o.Progress = t
		}
	}
}

// WithObserver sets a sink for the run summary, e.g. *metrics.Metrics.
func WithObserver(obs RunObserver) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// DefaultOptions returns the defaults:
//   - Ctx:                 context.Background()
//   - Concurrency:         runtime.GOMAXPROCS(0)
//   - TrackNegativeCycles: false
//   - FallbackWeight:      1
//   - Logger:              discards everything
//   - Progress:            progress.Noop
//
// Source is left unset.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Source:         NoPredecessor,
		Concurrency:    runtime.GOMAXPROCS(0),
		FallbackWeight: 1,
		Logger:         discardLogger(),
		Progress:       progress.Noop{},
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
