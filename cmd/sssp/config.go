package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/graph"
)

// Supported generator topologies.
const (
	topologyPath     = "path"
	topologyCycle    = "cycle"
	topologyStar     = "star"
	topologyGrid     = "grid"
	topologyComplete = "complete"
	topologyRandom   = "random"
)

var (
	errUnknownTopology = errors.New("unknown topology")
	errBadConfig       = errors.New("invalid configuration")
)

// runConfig describes one generated graph and one engine run. It is read
// from an optional YAML file; command line flags take precedence.
type runConfig struct {
	Topology    string  `yaml:"topology"`
	Nodes       int     `yaml:"nodes"`
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	Probability float64 `yaml:"probability"`
	Undirected  bool    `yaml:"undirected"`
	MinWeight   int64   `yaml:"min_weight"`
	MaxWeight   int64   `yaml:"max_weight"`
	Seed        int64   `yaml:"seed"`

	Source              int64 `yaml:"source"`
	Concurrency         int   `yaml:"concurrency"`
	TrackNegativeCycles bool  `yaml:"track_negative_cycles"`

	Paths   int  `yaml:"paths"`
	Verify  bool `yaml:"verify"`
	Metrics bool `yaml:"metrics"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		Topology:    topologyRandom,
		Nodes:       1000,
		Rows:        32,
		Cols:        32,
		Probability: 0.01,
		MinWeight:   1,
		MaxWeight:   100,
		Seed:        1,
		Concurrency: 4,
	}
}

// loadConfig reads path over the defaults. Keys missing from the file keep
// their default value.
func loadConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// mergeConfig copies every setting of file into dst unless the flag of the
// same name was set explicitly.
func mergeConfig(dst *runConfig, file runConfig, changed func(name string) bool) {
	fields := []struct {
		flag string
		copy func()
	}{
		{"topology", func() { dst.Topology = file.Topology }},
		{"nodes", func() { dst.Nodes = file.Nodes }},
		{"rows", func() { dst.Rows = file.Rows }},
		{"cols", func() { dst.Cols = file.Cols }},
		{"probability", func() { dst.Probability = file.Probability }},
		{"undirected", func() { dst.Undirected = file.Undirected }},
		{"min-weight", func() { dst.MinWeight = file.MinWeight }},
		{"max-weight", func() { dst.MaxWeight = file.MaxWeight }},
		{"seed", func() { dst.Seed = file.Seed }},
		{"source", func() { dst.Source = file.Source }},
		{"concurrency", func() { dst.Concurrency = file.Concurrency }},
		{"track-negative-cycles", func() { dst.TrackNegativeCycles = file.TrackNegativeCycles }},
		{"paths", func() { dst.Paths = file.Paths }},
		{"verify", func() { dst.Verify = file.Verify }},
		{"metrics", func() { dst.Metrics = file.Metrics }},
	}
	for _, f := range fields {
		if !changed(f.flag) {
			f.copy()
		}
	}
}

// validate checks the settings that the engine and the generators would
// otherwise reject with a panic.
func (c runConfig) validate() error {
	switch {
	case c.Concurrency < 1:
		return fmt.Errorf("%w: concurrency=%d must be >= 1", errBadConfig, c.Concurrency)
	case c.MaxWeight < c.MinWeight:
		return fmt.Errorf("%w: max-weight=%d < min-weight=%d", errBadConfig, c.MaxWeight, c.MinWeight)
	case c.Paths < 0:
		return fmt.Errorf("%w: paths=%d must be >= 0", errBadConfig, c.Paths)
	}

	return nil
}

// constructor maps the topology name to a generator.
func (c runConfig) constructor() (builder.Constructor, error) {
	switch c.Topology {
	case topologyPath:
		return builder.Path(c.Nodes), nil
	case topologyCycle:
		return builder.Cycle(c.Nodes), nil
	case topologyStar:
		return builder.Star(c.Nodes), nil
	case topologyGrid:
		return builder.Grid(c.Rows, c.Cols), nil
	case topologyComplete:
		return builder.Complete(c.Nodes), nil
	case topologyRandom:
		return builder.RandomSparse(c.Nodes, c.Probability), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownTopology, c.Topology)
	}
}

// buildGraph generates the weighted graph described by c.
func (c runConfig) buildGraph() (*graph.CSR, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	cons, err := c.constructor()
	if err != nil {
		return nil, err
	}

	gopts := []graph.Option{graph.WithWeighted()}
	if c.Undirected {
		gopts = append(gopts, graph.WithUndirected())
	}
	bopts := []builder.BuilderOption{
		builder.WithSeed(c.Seed),
		builder.WithIntegerWeight(c.MinWeight, c.MaxWeight),
	}

	return builder.BuildGraph(gopts, bopts, cons)
}
