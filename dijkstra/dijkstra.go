// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - Undirected edges are relaxed toward the endpoint opposite to the settled vertex,
//     whichever endpoint was recorded as From.
//   - Parallel edges are relaxed one by one; the predecessor of a vertex is the
//     concrete *core.Edge that produced its best distance, so callers can tell
//     which of several parallel edges was used.
//   - Ties are broken by heap insertion order; with core's sequence-ordered
//     Neighbors this makes the result a pure function of the AddEdge sequence.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/metropath/core"
)

// Dijkstra computes shortest distances from Options.Source to all reachable
// vertices of the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: if ReturnPath, map from vertex ID to the edge used to reach it
//     (absent for the source and unreachable vertices); nil otherwise.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]*core.Edge, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan all edges to detect negative weights.
	var e *core.Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Prepare state
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]*core.Edge, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 5) Run
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the edge sequence from source to target out of a predecessor
// map returned by Dijkstra with WithReturnPath.
//
// Returns an empty slice when source == target, and ErrUnreachable when the
// chain of predecessors does not lead back to source.
//
// Complexity: O(L), L = number of edges on the path.
func PathTo(prev map[string]*core.Edge, source, target string) ([]*core.Edge, error) {
	if source == target {
		return []*core.Edge{}, nil
	}

	var path []*core.Edge
	cur := target
	for cur != source {
		e, ok := prev[cur]
		if !ok || len(path) > len(prev) {
			return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, target, source)
		}
		path = append(path, e)
		cur = e.Other(cur)
	}

	// Reverse into source→target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph           // The input graph; read-only within Dijkstra.
	options Options               // Configuration options.
	dist    map[string]int64      // vertex ID → best distance from Source.
	prev    map[string]*core.Edge // vertex ID → edge used to reach it.
	visited map[string]bool       // finalized vertices.
	pq      nodePQ                // min-heap of *nodeItem.
	pushes  uint64                // heap insertion counter, tie-breaker
}

// init sets dist[v] = +∞ for all v and pushes Source with distance 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// process repeatedly settles the closest unvisited vertex and relaxes its edges.
// It stops when the heap is empty, when MaxDistance is exceeded, or when Target is settled.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue // stale entry
		}
		if d > cfg.MaxDistance {
			break
		}
		r.visited[u] = true

		if cfg.Target != "" && u == cfg.Target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge incident to u and improves distances to the far endpoint.
// Equal-distance candidates never replace an existing predecessor, so the first
// edge (in Neighbors order) to reach a distance keeps it.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var v string
	var w, newDist int64
	for _, e := range neighbors {
		v = e.Other(u)
		w = e.Weight

		if r.visited[v] {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}
		if w > math.MaxInt64-r.dist[u] {
			continue // would overflow; treat as unreachable
		}

		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = e
		r.push(v, newDist)
	}

	return nil
}

func (r *runner) push(id string, dist int64) {
	r.pushes++
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, order: r.pushes})
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id    string // vertex ID
	dist  int64  // distance from source
	order uint64 // insertion order, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, order).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].order < pq[j].order
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop moves the minimum there first).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
