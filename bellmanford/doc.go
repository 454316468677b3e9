// Package bellmanford implements a parallel, frontier-based Bellman-Ford
// single-source shortest-path engine for graphs with negative weights.
//
// What & Why:
//
//	Dijkstra requires non-negative weights. Bellman-Ford does not, at the
//	price of repeated relaxation. This engine relaxes only the frontier,
//	the nodes improved in the previous round, and spreads each round over a
//	fixed pool of workers that race on a lock-free distance store.
//
// Algorithm outline:
//
//  1. The frontier starts as [source].
//  2. Relax phase: workers claim frontier chunks of BatchSize positions with
//     an atomic fetch-and-add and relax every outgoing relationship. Improved
//     targets go to a private queue, guarded by a shared "enqueued" bitset so
//     a node appears at most once per round. A worker whose queue stays below
//     LocalQueueThreshold keeps draining it after the frontier is exhausted.
//  3. Sync phase: every worker reserves a slice of the next frontier with a
//     fetch-and-add on its size and copies its queue there.
//  4. Repeat until a round improves nothing.
//
// Concurrency:
//
//	TentativeDistances keeps one 64-bit lock word per node (the hop length,
//	or the shifted predecessor when hops are not tracked). Writers take the
//	node with a single compare-and-swap that replaces the word by its bitwise
//	complement, re-check the distance, write, and release by storing the new
//	non-negative word. Losers re-read and retry. The smallest distance always
//	wins, whatever the interleaving.
//
// Negative cycles:
//
//   - With WithNegativeCycleTracking, a relaxation producing a walk of more
//     than NodeCount() nodes proves a negative cycle and stops every worker.
//   - Always, a round beyond NodeCount() that would start with a non-empty
//     frontier proves a negative cycle.
//
// Either way Result.ContainsNegativeCycle reports true, Paths yields nothing
// and NegativeCycle returns a witness when one can be read from the
// predecessors.
//
// Complexity:
//
//   - Time:   O(V·E) worst case, O(E) per round.
//   - Memory: see MemoryEstimation.
//
// Errors:
//
//   - ErrNoSource, ErrNilGraph, ErrSourceNotFound for bad input.
//   - ErrNonFiniteWeight, ErrTargetNotFound from the pre-scan, before any
//     distance is written.
//   - Wrapped context errors on cancellation.
//   - Wrapped ErrTaskPanicked when the graph panics.
//
// Example:
//
//	res, err := bellmanford.BellmanFord(g,
//	    bellmanford.Source(0),
//	    bellmanford.WithConcurrency(8),
//	    bellmanford.WithNegativeCycleTracking(),
//	)
//	if err != nil {
//	    return err
//	}
//	for p := range res.Paths() {
//	    fmt.Println(p.TargetNode, p.Costs[len(p.Costs)-1])
//	}
package bellmanford
