// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over construction-time flags and a Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.

package core

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Stats produces a deterministic, read-only snapshot of configuration flags
// and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count and count parallel pairs.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for from, inner := range g.adjacencyList {
		for to, set := range inner {
			// Adjacency is mirrored; count each unordered pair once.
			if len(set) > 1 && from <= to {
				stats.ParallelPairs++
			}
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
