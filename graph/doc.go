// Package graph provides the read-only weighted directed graph abstraction
// consumed by the shortest-path engines of this module, together with a
// compact CSR (Compressed Sparse Row) implementation and its Builder.
//
// Overview:
//
//   - Node ids are dense int64 values in [0, NodeCount()).
//   - Relationships are directed. WithUndirected() mirrors every relationship
//     at build time, so algorithms never need to special-case direction.
//   - A built *CSR is immutable and therefore safe for concurrent readers;
//     ConcurrentCopy() exists so that engines can ask for a per-goroutine
//     handle without knowing whether the implementation needs one.
//
// Traversal contract:
//
//	g.ForEachRelationship(node, fallbackWeight, func(source, target int64, weight float64) bool {
//	    // return false to stop early
//	    return true
//	})
//
//   - Relationships of a node are visited in the order they were added.
//   - Unweighted graphs report fallbackWeight for every relationship.
//
// Errors (sentinel):
//
//   - ErrNodeNotFound:    a relationship endpoint is outside the node id space.
//   - ErrBadWeight:       a non-zero weight was added to an unweighted builder.
//   - ErrNonFiniteWeight: a NaN or ±Inf weight was added.
//   - ErrLoopNotAllowed:  a self-loop was added without WithLoops().
//
// Complexity:
//
//   - Build: O(V + E) time (counting sort by source), O(V + E) space.
//   - ForEachRelationship: O(deg(node)).
package graph
