// SPDX-License-Identifier: MIT
// Package: sssp/graph
//
// csr.go - immutable Compressed Sparse Row graph.

package graph

// CSR is an immutable directed graph in Compressed Sparse Row layout.
//
// firstOut[i]..firstOut[i+1] index the relationships of node i in head/weight.
// weight is nil for unweighted graphs.
type CSR struct {
	nodeCount int64
	firstOut  []int64 // len: nodeCount + 1
	head      []int64 // len: relationshipCount; target of each relationship
	weight    []float64
}

// compile-time check
var _ Graph = (*CSR)(nil)

// NodeCount returns the number of nodes.
func (g *CSR) NodeCount() int64 { return g.nodeCount }

// RelationshipCount returns the number of directed relationships.
func (g *CSR) RelationshipCount() int64 { return int64(len(g.head)) }

// Weighted reports whether the graph stores per-relationship weights.
func (g *CSR) Weighted() bool { return g.weight != nil }

// ConcurrentCopy returns g itself: a CSR is never mutated after Build.
func (g *CSR) ConcurrentCopy() Graph { return g }

// Degree returns the out-degree of node.
func (g *CSR) Degree(node int64) int64 {
	return g.firstOut[node+1] - g.firstOut[node]
}

// RelationshipsFrom returns the index range of relationships originating from node.
func (g *CSR) RelationshipsFrom(node int64) (start, end int64) {
	return g.firstOut[node], g.firstOut[node+1]
}

// ForEachRelationship visits the outgoing relationships of node in insertion order.
func (g *CSR) ForEachRelationship(node int64, fallbackWeight float64, fn RelationshipConsumer) {
	start, end := g.firstOut[node], g.firstOut[node+1]
	for e := start; e < end; e++ {
		w := fallbackWeight
		if g.weight != nil {
			w = g.weight[e]
		}
		if !fn(node, g.head[e], w) {
			return
		}
	}
}
