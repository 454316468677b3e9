package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/sssp/bfs"
	"github.com/katalvlaran/sssp/builder"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid (9 vertices).
// We expect to see the start 0, then its 2 neighbors {1, 3}, then the next frontier, etc.
func ExampleBFS() {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Print the visit order; should follow non-decreasing Manhattan distance
	fmt.Println(res.Order)
	path, _ := res.PathTo(8)
	fmt.Println(path)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 5 8]
}
