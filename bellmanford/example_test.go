package bellmanford_test

import (
	"fmt"

	"github.com/katalvlaran/sssp/bellmanford"
	"github.com/katalvlaran/sssp/graph"
)

// ExampleBellmanFord computes distances over a small graph with one
// shortcut and prints every shortest path.
func ExampleBellmanFord() {
	// a→b (1), a→c (4), b→c (1)
	g, _ := graph.FromRelationships(3, []graph.Relationship{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 0, Target: 2, Weight: 4},
		{Source: 1, Target: 2, Weight: 1},
	}, graph.WithWeighted())

	res, err := bellmanford.BellmanFord(g, bellmanford.Source(0), bellmanford.WithConcurrency(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("dist:", res.Distance(0), res.Distance(1), res.Distance(2))
	for p := range res.Paths() {
		fmt.Println(p.Index, p.NodeIDs, p.Costs)
	}
	// Output:
	// dist: 0 1 2
	// 0 [0 1] [0 1]
	// 1 [0 1 2] [0 1 2]
}

// ExampleBellmanFord_negativeCycle shows the outcome of a reachable
// negative cycle: no distances and no paths.
func ExampleBellmanFord_negativeCycle() {
	g, _ := graph.FromRelationships(2, []graph.Relationship{
		{Source: 0, Target: 1, Weight: -1},
		{Source: 1, Target: 0, Weight: -1},
	}, graph.WithWeighted())

	res, _ := bellmanford.BellmanFord(g,
		bellmanford.Source(0),
		bellmanford.WithConcurrency(1),
		bellmanford.WithNegativeCycleTracking(),
	)
	paths := 0
	for range res.Paths() {
		paths++
	}
	fmt.Println("negative cycle:", res.ContainsNegativeCycle())
	fmt.Println("witness length:", len(res.NegativeCycle()))
	fmt.Println("paths:", paths)
	// Output:
	// negative cycle: true
	// witness length: 2
	// paths: 0
}
