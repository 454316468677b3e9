// SPDX-License-Identifier: MIT
// Package: sssp/bellmanford
//
// bellmanford.go - input validation and the round loop.
//
// Round structure:
//  1. Seed: frontier = [source], distance(source) = 0, hop(source) = 1.
//  2. While the frontier is not empty:
//     a. reset the read cursor, run every worker through relax (barrier);
//     b. reset the frontier size, run every worker through sync (barrier).
//  3. Stop early when a negative cycle is known, the context is done, or a
//     round beyond NodeCount() would start with a non-empty frontier.

package bellmanford

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sssp/graph"
	"github.com/katalvlaran/sssp/internal/bitset"
	"github.com/katalvlaran/sssp/internal/parallel"
)

// BellmanFord computes single-source shortest paths over g, which may carry
// negative relationship weights.
//
// Validation order:
//  1. Source option present (ErrNoSource).
//  2. g non-nil (ErrNilGraph).
//  3. Source inside [0, NodeCount()) (ErrSourceNotFound).
//  4. Every weight finite (ErrNonFiniteWeight) and every target inside the
//     id space (ErrTargetNotFound).
//
// A reachable negative cycle is not an error: the Result reports it and
// yields no paths. Context cancellation and collaborator panics abort the run
// with a wrapped error and no Result.
func BellmanFord(g graph.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.hasSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	nodeCount := g.NodeCount()
	if cfg.Source < 0 || cfg.Source >= nodeCount {
		return nil, fmt.Errorf("%w: %d (node count %d)", ErrSourceNotFound, cfg.Source, nodeCount)
	}
	if err := validateRelationships(cfg.Ctx, g, cfg.Concurrency, cfg.FallbackWeight); err != nil {
		return nil, err
	}

	return newEngine(g, cfg).compute()
}

type engine struct {
	cfg     Options
	log     logrus.FieldLogger
	state   *state
	workers []*worker
	tasks   []parallel.Task
}

func newEngine(g graph.Graph, cfg Options) *engine {
	n := g.NodeCount()
	s := &state{
		distances:      NewTentativeDistances(n, cfg.TrackNegativeCycles),
		enqueued:       bitset.New(uint64(n)),
		frontier:       make([]int64, n),
		nodeCount:      n,
		fallbackWeight: cfg.FallbackWeight,
		trackHops:      cfg.TrackNegativeCycles,
		progress:       cfg.Progress,
	}
	s.cycleNode.Store(NoPredecessor)

	e := &engine{
		cfg: cfg,
		log: cfg.Logger.WithFields(logrus.Fields{
			"algorithm":   "bellman-ford",
			"source":      cfg.Source,
			"nodes":       n,
			"concurrency": cfg.Concurrency,
		}),
		state:   s,
		workers: make([]*worker, cfg.Concurrency),
		tasks:   make([]parallel.Task, cfg.Concurrency),
	}
	queueCapacity := parallel.AdjustedBatchSize(n, cfg.Concurrency, 1)
	for i := range e.workers {
		w := newWorker(g.ConcurrentCopy(), s, queueCapacity)
		e.workers[i] = w
		e.tasks[i] = w.run
	}

	return e
}

func (e *engine) compute() (*Result, error) {
	s := e.state
	ctx := e.cfg.Ctx
	start := time.Now()

	s.distances.Initialize(e.cfg.Source, NoPredecessor, 0, 1)
	s.frontier[0] = e.cfg.Source
	s.frontierSize.Store(1)
	s.enqueued.Set(uint64(e.cfg.Source))

	rounds := 0
	for s.frontierSize.Load() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("bellmanford: round %d: %w", rounds+1, err)
		}
		if s.cycleFound.Load() {
			break
		}
		// Without a reachable negative cycle every node is final after
		// nodeCount-1 rounds, so round nodeCount+1 never has work.
		if int64(rounds) >= s.nodeCount {
			s.signalNegativeCycle(s.frontier[0])
			break
		}
		rounds++
		e.log.WithFields(logrus.Fields{
			"round":    rounds,
			"frontier": s.frontierSize.Load(),
		}).Debug("round started")

		s.frontierIndex.Store(0)
		if err := e.runPhase(PhaseRelax); err != nil {
			return nil, fmt.Errorf("bellmanford: relax round %d: %w", rounds, err)
		}
		if s.cycleFound.Load() {
			break
		}

		s.frontierSize.Store(0)
		if err := e.runPhase(PhaseSync); err != nil {
			return nil, fmt.Errorf("bellmanford: sync round %d: %w", rounds, err)
		}
	}

	res := &Result{
		source:      e.cfg.Source,
		nodeCount:   s.nodeCount,
		concurrency: e.cfg.Concurrency,
		distances:   s.distances,
	}
	for _, w := range e.workers {
		res.stats.Relaxations += w.relaxations
		res.stats.Contended += w.contended
	}
	res.stats.Rounds = rounds
	res.stats.Duration = time.Since(start)

	fields := logrus.Fields{
		"rounds":      rounds,
		"relaxations": res.stats.Relaxations,
		"contended":   res.stats.Contended,
		"duration":    res.stats.Duration,
	}
	if s.cycleFound.Load() {
		res.negativeCycle = true
		res.cycle = findCycle(s.distances, s.cycleNode.Load())
		e.log.WithFields(fields).WithField("cycle_length", len(res.cycle)).Warn("negative cycle detected")
	} else {
		e.log.WithFields(fields).Info("shortest paths converged")
	}

	if e.cfg.Observer != nil {
		e.cfg.Observer.ObserveRun(rounds, res.stats.Relaxations, res.stats.Contended, res.negativeCycle, res.stats.Duration)
	}

	return res, nil
}

// runPhase runs every worker once, bracketed by progress events.
func (e *engine) runPhase(name string) error {
	e.cfg.Progress.BeginSubTask(name)
	err := parallel.Run(e.cfg.Ctx, e.cfg.Concurrency, e.tasks)
	e.cfg.Progress.EndSubTask(name)

	return err
}
