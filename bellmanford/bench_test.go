package bellmanford_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sssp/bellmanford"
	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/graph"
)

// BenchmarkBellmanFord measures a full run on weighted grids and sparse
// random graphs for several worker counts.
func BenchmarkBellmanFord(b *testing.B) {
	cases := []struct {
		name string
		cons builder.Constructor
		seed int64
	}{
		{"Grid100x100", builder.Grid(100, 100), 1},
		{"Sparse5k", builder.RandomSparse(5000, 0.001), 2},
	}

	for _, tc := range cases {
		// Build once per case to isolate algorithmic cost.
		g, err := builder.BuildGraph(
			[]graph.Option{graph.WithWeighted()},
			[]builder.BuilderOption{builder.WithSeed(tc.seed), builder.WithIntegerWeight(1, 100)},
			tc.cons,
		)
		if err != nil {
			b.Fatalf("build %s: %v", tc.name, err)
		}

		for _, conc := range []int{1, 4, 8} {
			for _, track := range []bool{false, true} {
				b.Run(fmt.Sprintf("%s/c=%d/track=%v", tc.name, conc, track), func(b *testing.B) {
					opts := []bellmanford.Option{bellmanford.Source(0), bellmanford.WithConcurrency(conc)}
					if track {
						opts = append(opts, bellmanford.WithNegativeCycleTracking())
					}
					b.ReportAllocs()
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						if _, err := bellmanford.BellmanFord(g, opts...); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		}
	}
}

// BenchmarkPaths measures path reconstruction alone.
func BenchmarkPaths(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		res, err := bellmanford.BellmanFord(g, bellmanford.Source(0), bellmanford.WithConcurrency(4))
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		for range res.Paths() {
		}
	}
}
