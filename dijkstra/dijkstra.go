// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all relationships (O(E)) to detect negative weights and fail fast.
//   - We treat any relationship with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/sssp/graph"
)

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance to v (+Inf if unreachable).
//   - prev: predecessor slice if ReturnPath=true (nil otherwise);
//     prev[v] == NoPredecessor for the source and unreachable nodes.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be inside [0, NodeCount()) (ErrVertexNotFound).
//  4. No relationship may have a negative weight (ErrNegativeWeight).
func Dijkstra(g graph.Graph, opts ...Option) ([]float64, []int64, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists
	n := g.NodeCount()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 5) Pre-scan all relationships for negative weights.
	var scanErr error
	for u := int64(0); u < n && scanErr == nil; u++ {
		g.ForEachRelationship(u, cfg.FallbackWeight, func(source, target int64, w float64) bool {
			if w < 0 || math.IsNaN(w) {
				scanErr = fmt.Errorf("%w: %d→%d weight=%g", ErrNegativeWeight, source, target, w)
				return false
			}
			return true
		})
	}
	if scanErr != nil {
		return nil, nil, scanErr
	}

	// 6) Prepare data structures.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 7) Run.
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       graph.Graph // The input graph; read-only within Dijkstra.
	options Options     // Configuration options (Source, thresholds, etc.).
	dist    []float64   // node → current best distance from Source.
	prev    []int64     // node → predecessor on the shortest path.
	visited []bool      // Tracks if a node's distance is finalized.
	pq      nodePQ      // Min-heap of *nodeItem for lazy priority queue.
}

// init sets every distance to +Inf, the source to 0 and pushes the source.
func (r *runner) init() {
	inf := math.Inf(1)
	for v := range r.dist {
		r.dist[v] = inf
		r.prev[v] = NoPredecessor
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest node and relaxes its relationships
// until the heap is empty or the minimum exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip stale entries.
		if r.visited[item.id] {
			continue
		}

		// 3) Everything left is farther than MaxDistance.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Final.
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax attempts to improve every neighbor of u. Assumes dist[u] is final.
func (r *runner) relax(u int64) {
	r.g.ForEachRelationship(u, r.options.FallbackWeight, func(_, v int64, w float64) bool {
		// Impassable.
		if w >= r.options.InfEdgeThreshold {
			return true
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			return true
		}
		// Strictly better only, so equal distances keep their first predecessor.
		if newDist >= r.dist[v] {
			return true
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})

		return true
	})
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	id   int64
	dist float64
}

// nodePQ is a min-heap of *nodeItem, ordered by dist ascending.
// Outdated entries remain in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// PathTo rebuilds the node sequence from the source to target out of a
// predecessor slice returned with WithReturnPath. It returns nil when target
// is unreachable.
func PathTo(prev []int64, source, target int64) []int64 {
	if target < 0 || int(target) >= len(prev) {
		return nil
	}
	if target == source {
		return []int64{source}
	}
	if prev[target] == NoPredecessor {
		return nil
	}

	var path []int64
	for cur := target; cur != NoPredecessor; cur = prev[cur] {
		path = append(path, cur)
		if cur == source {
			break
		}
		if len(path) > len(prev) {
			return nil
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
