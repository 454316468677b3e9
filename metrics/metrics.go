// Package metrics defines Prometheus metrics for shortest-path runs.
//
// Metrics doubles as a progress.Tracker: phase begin/end events become phase
// counters and duration histograms, and progress units become the relaxed
// node counter. ObserveRun records the outcome of a whole run.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/sssp/progress"
)

const namespace = "sssp"

// Outcome label values of RunsTotal.
const (
	OutcomeConverged     = "converged"
	OutcomeNegativeCycle = "negative_cycle"
)

// Metrics groups the collectors of one registry.
type Metrics struct {
	PhasesTotal        *prometheus.CounterVec
	PhaseDuration      *prometheus.HistogramVec
	RelaxedNodesTotal  prometheus.Counter
	RunsTotal          *prometheus.CounterVec
	RunDuration        prometheus.Histogram
	Rounds             prometheus.Histogram
	RelaxationsTotal   prometheus.Counter
	ContendedTotal     prometheus.Counter
	LastRunRoundsGauge prometheus.Gauge

	mu     sync.Mutex
	starts map[string]time.Time
}

var _ progress.Tracker = (*Metrics)(nil)

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PhasesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "phases_total",
				Help:      "Completed engine phases by name",
			},
			[]string{"phase"},
		),
		PhaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "phase_duration_seconds",
				Help:      "Engine phase duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
			},
			[]string{"phase"},
		),
		RelaxedNodesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relaxed_nodes_total",
				Help:      "Nodes whose outgoing relationships were relaxed",
			},
		),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Completed runs by outcome",
			},
			[]string{"outcome"},
		),
		RunDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Whole run duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		Rounds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rounds",
				Help:      "Relax/sync rounds per run",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
			},
		),
		RelaxationsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relaxations_total",
				Help:      "Successful distance improvements",
			},
		),
		ContendedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "contended_updates_total",
				Help:      "Improvement attempts lost to a concurrent writer",
			},
		),
		LastRunRoundsGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_rounds",
				Help:      "Rounds taken by the most recent run",
			},
		),
		starts: make(map[string]time.Time),
	}

	if reg != nil {
		reg.MustRegister(
			m.PhasesTotal, m.PhaseDuration, m.RelaxedNodesTotal,
			m.RunsTotal, m.RunDuration, m.Rounds,
			m.RelaxationsTotal, m.ContendedTotal, m.LastRunRoundsGauge,
		)
	}

	return m
}

// BeginSubTask remembers when phase name started.
func (m *Metrics) BeginSubTask(name string) {
	m.mu.Lock()
	m.starts[name] = time.Now()
	m.mu.Unlock()
}

// EndSubTask counts phase name and observes its duration.
func (m *Metrics) EndSubTask(name string) {
	m.mu.Lock()
	start, ok := m.starts[name]
	delete(m.starts, name)
	m.mu.Unlock()

	m.PhasesTotal.WithLabelValues(name).Inc()
	if ok {
		m.PhaseDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}

// LogProgress adds relaxed nodes.
func (m *Metrics) LogProgress(units int64) {
	if units > 0 {
		m.RelaxedNodesTotal.Add(float64(units))
	}
}

// ObserveRun records the summary of one finished run.
func (m *Metrics) ObserveRun(rounds int, relaxations, contended int64, negativeCycle bool, d time.Duration) {
	outcome := OutcomeConverged
	if negativeCycle {
		outcome = OutcomeNegativeCycle
	}
	m.RunsTotal.WithLabelValues(outcome).Inc()
	m.RunDuration.Observe(d.Seconds())
	m.Rounds.Observe(float64(rounds))
	m.LastRunRoundsGauge.Set(float64(rounds))
	if relaxations > 0 {
		m.RelaxationsTotal.Add(float64(relaxations))
	}
	if contended > 0 {
		m.ContendedTotal.Add(float64(contended))
	}
}
