// Package sssp computes single-source shortest paths over graphs with
// negative relationship weights, in parallel.
//
// What is in here?
//
//	bellmanford/ - the parallel engine: lock-free tentative distance store,
//	               relax/sync workers, round loop with negative-cycle safety,
//	               parallel path reconstruction and memory estimation
//	graph/       - the read-only Graph contract and an immutable CSR
//	builder/     - deterministic generators (path, cycle, star, grid,
//	               complete, random sparse) with pluggable weights
//	dijkstra/    - sequential Dijkstra for non-negative weights (reference)
//	bfs/         - breadth-first search (reachability reference)
//	progress/    - phase/progress tracking (no-op, logrus, fan-out)
//	metrics/     - Prometheus collectors fed by progress and run summaries
//	cmd/sssp/    - command line front-end
//
// Quick start
//
//	g, _ := builder.BuildGraph(
//		[]graph.Option{graph.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(1), builder.WithIntegerWeight(-2, 10)},
//		builder.RandomSparse(10_000, 0.001),
//	)
//	res, err := bellmanford.BellmanFord(g,
//		bellmanford.Source(0),
//		bellmanford.WithNegativeCycleTracking(),
//	)
//	if err != nil {
//		// invalid input, cancellation or a panicking graph
//	}
//	if res.ContainsNegativeCycle() {
//		fmt.Println("witness:", res.NegativeCycle())
//		return
//	}
//	for p := range res.Paths() {
//		fmt.Println(p.TargetNode, p.NodeIDs, p.Costs)
//	}
package sssp
