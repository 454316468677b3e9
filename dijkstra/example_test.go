// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/katalvlaran/sssp/graph"
)

// ExampleDijkstra demonstrates computing shortest paths on a simple triangle graph.
func ExampleDijkstra() {
	// 1) Undirected weighted triangle: 0-1 (1), 1-2 (2), 0-2 (5).
	b := graph.NewBuilder(graph.WithUndirected(), graph.WithWeighted())
	b.AddNodes(3)
	_ = b.AddRelationship(0, 1, 1)
	_ = b.AddRelationship(1, 2, 2)
	_ = b.AddRelationship(0, 2, 5)

	// 2) Distances only.
	dist, _, err := dijkstra.Dijkstra(b.Build(), dijkstra.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[0]=%g, dist[1]=%g, dist[2]=%g\n", dist[0], dist[1], dist[2])
	// Output: dist[0]=0, dist[1]=1, dist[2]=3
}

// ExampleDijkstra_returnPath shows path reconstruction from the predecessor slice.
func ExampleDijkstra_returnPath() {
	g, _ := graph.FromRelationships(4, []graph.Relationship{
		{Source: 0, Target: 1, Weight: 2},
		{Source: 0, Target: 2, Weight: 1},
		{Source: 2, Target: 1, Weight: 0.5},
		{Source: 1, Target: 3, Weight: 3},
		{Source: 2, Target: 3, Weight: 5},
	}, graph.WithWeighted())

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("dist to 3:", dist[3])
	fmt.Println("path:", dijkstra.PathTo(prev, 0, 3))
	// Output:
	// dist to 3: 4.5
	// path: [0 2 1 3]
}
