package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sssp/bellmanford"
	"github.com/katalvlaran/sssp/bfs"
	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/katalvlaran/sssp/graph"
	"github.com/katalvlaran/sssp/metrics"
	"github.com/katalvlaran/sssp/progress"
)

// runSummary is the printed outcome of one run.
type runSummary struct {
	Nodes         int64  `json:"nodes" yaml:"nodes"`
	Relationships int64  `json:"relationships" yaml:"relationships"`
	Source        int64  `json:"source" yaml:"source"`
	Concurrency   int    `json:"concurrency" yaml:"concurrency"`
	Memory        string `json:"memory_estimate" yaml:"memory_estimate"`

	NegativeCycle bool    `json:"negative_cycle" yaml:"negative_cycle"`
	Cycle         []int64 `json:"cycle,omitempty" yaml:"cycle,omitempty"`
	Reachable     uint64  `json:"reachable" yaml:"reachable"`

	Rounds      int    `json:"rounds" yaml:"rounds"`
	Relaxations int64  `json:"relaxations" yaml:"relaxations"`
	Contended   int64  `json:"contended" yaml:"contended"`
	Duration    string `json:"duration" yaml:"duration"`

	Paths        []pathSummary `json:"paths,omitempty" yaml:"paths,omitempty"`
	Verification string        `json:"verification,omitempty" yaml:"verification,omitempty"`
}

type pathSummary struct {
	Index  int64     `json:"index" yaml:"index"`
	Target int64     `json:"target" yaml:"target"`
	Nodes  []int64   `json:"nodes" yaml:"nodes"`
	Costs  []float64 `json:"costs" yaml:"costs"`
}

// Verification outcomes.
const (
	verifyPassed       = "passed"
	verifyReachability = "passed: reachability only (negative weights)"
	verifySkippedCycle = "skipped: negative cycle"
)

var errVerifyFailed = errors.New("verification failed")

func newRunCmd() *cobra.Command {
	var configPath string
	cfg := defaultRunConfig()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a graph and compute shortest paths from one source",
		Long: "Generate a weighted graph (path, cycle, star, grid, complete or random),\n" +
			"run parallel Bellman-Ford from --source and print a summary.\n" +
			"Settings can be read from a YAML file with --config; flags win.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				file, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				mergeConfig(&cfg, file, cmd.Flags().Changed)
			}
			log, err := newLogger(flagLogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return runEngine(cmd.Context(), cfg, log, cmd.OutOrStdout(), flagFmt)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML file with run settings")
	f.StringVar(&cfg.Topology, "topology", cfg.Topology, "Graph topology: path|cycle|star|grid|complete|random")
	f.IntVar(&cfg.Nodes, "nodes", cfg.Nodes, "Node count (all topologies but grid)")
	f.IntVar(&cfg.Rows, "rows", cfg.Rows, "Grid rows")
	f.IntVar(&cfg.Cols, "cols", cfg.Cols, "Grid columns")
	f.Float64Var(&cfg.Probability, "probability", cfg.Probability, "Relationship probability of the random topology")
	f.BoolVar(&cfg.Undirected, "undirected", cfg.Undirected, "Mirror every relationship")
	f.Int64Var(&cfg.MinWeight, "min-weight", cfg.MinWeight, "Smallest integer weight (may be negative)")
	f.Int64Var(&cfg.MaxWeight, "max-weight", cfg.MaxWeight, "Largest integer weight")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Generator seed")
	f.Int64Var(&cfg.Source, "source", cfg.Source, "Source node")
	f.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Number of workers")
	f.BoolVar(&cfg.TrackNegativeCycles, "track-negative-cycles", cfg.TrackNegativeCycles, "Detect negative cycles from hop lengths")
	f.IntVar(&cfg.Paths, "paths", cfg.Paths, "Print at most this many paths")
	f.BoolVar(&cfg.Verify, "verify", cfg.Verify, "Compare distances with Dijkstra (non-negative weights only)")
	f.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "Print Prometheus metrics after the summary")

	return cmd
}

// runEngine builds the graph, runs the engine and writes the summary (and
// optionally the metrics) to out.
func runEngine(ctx context.Context, cfg runConfig, log logrus.FieldLogger, out io.Writer, format string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	g, err := cfg.buildGraph()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"topology":      cfg.Topology,
		"nodes":         g.NodeCount(),
		"relationships": g.RelationshipCount(),
	}).Info("graph generated")

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	tracker := progress.Multi(progress.NewLogTracker(log, "bellman-ford"), m)

	opts := []bellmanford.Option{
		bellmanford.Source(cfg.Source),
		bellmanford.WithConcurrency(cfg.Concurrency),
		bellmanford.WithContext(ctx),
		bellmanford.WithLogger(log),
		bellmanford.WithProgress(tracker),
		bellmanford.WithObserver(m),
	}
	if cfg.TrackNegativeCycles {
		opts = append(opts, bellmanford.WithNegativeCycleTracking())
	}
	res, err := bellmanford.BellmanFord(g, opts...)
	if err != nil {
		return fmt.Errorf("bellman-ford: %w", err)
	}

	stats := res.Stats()
	summary := runSummary{
		Nodes:         g.NodeCount(),
		Relationships: g.RelationshipCount(),
		Source:        cfg.Source,
		Concurrency:   cfg.Concurrency,
		Memory:        bellmanford.MemoryEstimation(g.NodeCount(), cfg.Concurrency, cfg.TrackNegativeCycles).String(),
		NegativeCycle: res.ContainsNegativeCycle(),
		Cycle:         res.NegativeCycle(),
		Reachable:     res.Reachable().GetCardinality(),
		Rounds:        stats.Rounds,
		Relaxations:   stats.Relaxations,
		Contended:     stats.Contended,
		Duration:      stats.Duration.String(),
	}

	if cfg.Verify {
		summary.Verification, err = verify(g, res)
		if err != nil {
			return err
		}
	}

	if cfg.Paths > 0 {
		for p := range res.Paths() {
			summary.Paths = append(summary.Paths, pathSummary{
				Index:  p.Index,
				Target: p.TargetNode,
				Nodes:  p.NodeIDs,
				Costs:  p.Costs,
			})
			if len(summary.Paths) == cfg.Paths {
				break
			}
		}
		slices.SortFunc(summary.Paths, func(a, b pathSummary) int {
			return cmp.Compare(a.Index, b.Index)
		})
	}

	if err := writeOutput(out, format, summary); err != nil {
		return err
	}
	if cfg.Metrics {
		return writeMetrics(out, reg)
	}

	return nil
}

// verify compares the distances of res with a sequential Dijkstra run. With
// negative weights only the reachable set is compared, against BFS.
func verify(g graph.Graph, res *bellmanford.Result) (string, error) {
	if res.ContainsNegativeCycle() {
		return verifySkippedCycle, nil
	}
	want, _, err := dijkstra.Dijkstra(g, dijkstra.Source(res.Source()))
	if errors.Is(err, dijkstra.ErrNegativeWeight) {
		return verifyReachable(g, res)
	}
	if err != nil {
		return "", fmt.Errorf("dijkstra: %w", err)
	}
	for node, d := range want {
		if got := res.Distance(int64(node)); got != d {
			return "", fmt.Errorf("%w: node %d: bellman-ford=%g dijkstra=%g", errVerifyFailed, node, got, d)
		}
	}

	return verifyPassed, nil
}

func verifyReachable(g graph.Graph, res *bellmanford.Result) (string, error) {
	walk, err := bfs.BFS(g, res.Source())
	if err != nil {
		return "", fmt.Errorf("bfs: %w", err)
	}
	reachable := res.Reachable()
	for node := int64(0); node < g.NodeCount(); node++ {
		if walk.Visited(node) != reachable.Contains(uint64(node)) {
			return "", fmt.Errorf("%w: node %d: reachable=%v bfs=%v",
				errVerifyFailed, node, reachable.Contains(uint64(node)), walk.Visited(node))
		}
	}

	return verifyReachability, nil
}

// writeMetrics prints every gathered family in the text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
