// Package dijkstra provides a sequential implementation of Dijkstra's
// shortest-path algorithm over graph.Graph with non-negative weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source node to all
//     reachable nodes in O((V + E) log V) time, where V = |nodes| and E = |relationships|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest node.
//   - Supports optional path reconstruction, distance caps, and “impassable” weight thresholds.
//
// When to use:
//
//   - Graphs without negative weights, where it is much cheaper than Bellman-Ford.
//   - As a reference oracle for the parallel bellmanford engine on such graphs.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); O(V) for distances and predecessors, O(E) worst-case heap entries
//     under the “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        Source option missing.
//   - ErrNilGraph:        nil graph.
//   - ErrVertexNotFound:  source outside [0, NodeCount()).
//   - ErrNegativeWeight:  a negative (or NaN) weight found by the O(E) pre-scan.
//   - ErrBadMaxDistance:  panic from WithMaxDistance on negative values.
//   - ErrBadInfThreshold: panic from WithInfEdgeThreshold on non-positive values.
//
// API reference:
//
//	func Dijkstra(g graph.Graph, opts ...Option) (dist []float64, prev []int64, err error)
//
//	  - dist[v]: minimal distance from Source to v, or +Inf if unreachable.
//	  - prev[v]: predecessor of v on one shortest path, NoPredecessor for the
//	    source and unreachable nodes. Nil unless WithReturnPath() is set.
//
// Thread safety:
//
//   - Dijkstra only reads g; concurrent calls on an immutable graph are safe.
package dijkstra
