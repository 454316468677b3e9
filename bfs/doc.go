// Package bfs provides a breadth-first search over a graph.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (relationship count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (relationships) from start, Unreached otherwise
//   - Parent: vertex → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error).
//   - Allows filtering of individual relationships via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Reachability is independent of weights: the set of vertices BFS reaches
//     is exactly the set a shortest-path engine must assign a finite distance.
//   - Unweighted shortest paths in O(V + E) time.
//
// Determinism
//
//	Relationships are visited in graph.Graph order, so the visit sequence is
//	fully reproducible for a CSR.
//
// Complexity (V = NodeCount, E = RelationshipCount)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int64, w float64) bool { return w >= 0 }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
