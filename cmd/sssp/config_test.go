package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/builder"
)

// writeConfig stores body in a temporary YAML file and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_DefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, "topology: grid\nrows: 4\ncols: 5\nmin_weight: -2\ntrack_negative_cycles: true\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, topologyGrid, cfg.Topology)
	require.Equal(t, 4, cfg.Rows)
	require.Equal(t, 5, cfg.Cols)
	require.Equal(t, int64(-2), cfg.MinWeight)
	require.True(t, cfg.TrackNegativeCycles)

	def := defaultRunConfig()
	require.Equal(t, def.MaxWeight, cfg.MaxWeight)
	require.Equal(t, def.Concurrency, cfg.Concurrency)
	require.Equal(t, def.Seed, cfg.Seed)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = loadConfig(writeConfig(t, "nodes: [not, a, number]\n"))
	require.Error(t, err)
}

func TestMergeConfig_FlagsWin(t *testing.T) {
	dst := defaultRunConfig()
	dst.Nodes = 42
	dst.Concurrency = 8

	file := defaultRunConfig()
	file.Topology = topologyStar
	file.Nodes = 7
	file.Concurrency = 2
	file.Verify = true

	changed := map[string]bool{"nodes": true, "concurrency": true}
	mergeConfig(&dst, file, func(name string) bool { return changed[name] })

	require.Equal(t, topologyStar, dst.Topology)
	require.True(t, dst.Verify)
	require.Equal(t, 42, dst.Nodes)
	require.Equal(t, 8, dst.Concurrency)
}

func TestRunConfig_Validate(t *testing.T) {
	cfg := defaultRunConfig()
	require.NoError(t, cfg.validate())

	bad := cfg
	bad.Concurrency = 0
	require.ErrorIs(t, bad.validate(), errBadConfig)

	bad = cfg
	bad.MinWeight, bad.MaxWeight = 5, 4
	require.ErrorIs(t, bad.validate(), errBadConfig)

	bad = cfg
	bad.Paths = -1
	require.ErrorIs(t, bad.validate(), errBadConfig)
}

func TestRunConfig_BuildGraph(t *testing.T) {
	cases := []struct {
		topology string
		nodes    int64
		rels     int64
	}{
		{topologyPath, 6, 5},
		{topologyCycle, 6, 6},
		{topologyStar, 6, 5},
		{topologyGrid, 6, 14}, // 2×3 grid: 7 undirected links, both directions
		{topologyComplete, 6, 30},
	}
	for _, tc := range cases {
		t.Run(tc.topology, func(t *testing.T) {
			cfg := defaultRunConfig()
			cfg.Topology = tc.topology
			cfg.Nodes = 6
			cfg.Rows, cfg.Cols = 2, 3
			g, err := cfg.buildGraph()
			require.NoError(t, err)
			require.Equal(t, tc.nodes, g.NodeCount())
			require.Equal(t, tc.rels, g.RelationshipCount())
			require.True(t, g.Weighted())
		})
	}

	cfg := defaultRunConfig()
	cfg.Topology = "hypercube"
	_, err := cfg.buildGraph()
	require.ErrorIs(t, err, errUnknownTopology)

	cfg = defaultRunConfig()
	cfg.Topology = topologyPath
	cfg.Nodes = 1
	_, err = cfg.buildGraph()
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRunConfig_BuildGraphDeterministic(t *testing.T) {
	cfg := defaultRunConfig()
	cfg.Nodes = 300
	cfg.Probability = 0.02

	a, err := cfg.buildGraph()
	require.NoError(t, err)
	b, err := cfg.buildGraph()
	require.NoError(t, err)
	require.Equal(t, a.RelationshipCount(), b.RelationshipCount())
	for node := int64(0); node < a.NodeCount(); node++ {
		require.Equal(t, a.Degree(node), b.Degree(node))
	}
}
