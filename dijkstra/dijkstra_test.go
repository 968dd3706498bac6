// SPDX-License-Identifier: MIT
// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input validation, basic shortest paths, undirected
// traversal in both directions, parallel edges, early exit, MaxDistance
// and agreement with brute-force enumeration.
package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metropath/core"
	"github.com/katalvlaran/metropath/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_UnweightedGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", -5)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func triangle() *core.Graph {
	// A-B(1), B-C(2), A-C(5), all undirected.
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	return g
}

func TestDijkstra_Triangle_NoPath(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(), dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist["C"])
	assert.Nil(t, prev)
}

func TestDijkstra_Triangle_WithPath(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(), dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, dist)

	path, err := dijkstra.PathTo(prev, "A", "C")
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "B", path[0].Other("A"))
	assert.Equal(t, "C", path[1].Other("B"))
}

// The undirected edge A-B is stored From=A; searching from the To side must
// still reach A.
func TestDijkstra_UndirectedFromToSide(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(), dijkstra.Source("C"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist["A"])
	assert.Equal(t, int64(2), dist["B"])

	path, err := dijkstra.PathTo(prev, "C", "A")
	require.NoError(t, err)
	assert.Len(t, path, 2)
}

func TestDijkstra_ParallelEdges_LighterWins(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 7, core.WithEdgeLabel("slow"))
	_, _ = g.AddEdge("B", "A", 4, core.WithEdgeLabel("fast"))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(4), dist["B"])
	assert.Equal(t, "fast", prev["B"].Label)
}

func TestDijkstra_ParallelEdges_TieKeepsFirst(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 4, core.WithEdgeLabel("first"))
	_, _ = g.AddEdge("A", "B", 4, core.WithEdgeLabel("second"))

	for i := 0; i < 20; i++ {
		_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
		require.NoError(t, err)
		require.Equal(t, "first", prev["B"].Label, "run %d", i)
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 1)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), dist["D"])

	_, err = dijkstra.PathTo(prev, "A", "D")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestPathTo_SameVertex(t *testing.T) {
	path, err := dijkstra.PathTo(nil, "A", "A")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestDijkstra_WithTarget_StopsEarly(t *testing.T) {
	// Chain A-B-C-D; stopping at B leaves D unsettled.
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithTarget("B"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, int64(math.MaxInt64), dist["D"])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 2)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist["B"])
	assert.Equal(t, int64(math.MaxInt64), dist["C"])
}

// ------------------------------------------------------------------------
// 3. Brute-force agreement on small random multigraphs
// ------------------------------------------------------------------------

// bruteForce enumerates every simple path from s and returns the minimum
// total weight to each vertex. Simple paths suffice because weights are positive.
func bruteForce(g *core.Graph, s string) map[string]int64 {
	best := map[string]int64{}
	visited := map[string]bool{s: true}

	var walk func(u string, acc int64)
	walk = func(u string, acc int64) {
		if b, ok := best[u]; !ok || acc < b {
			best[u] = acc
		}
		edges, _ := g.Neighbors(u)
		for _, e := range edges {
			v := e.Other(u)
			if visited[v] {
				continue
			}
			visited[v] = true
			walk(v, acc+e.Weight)
			visited[v] = false
		}
	}
	walk(s, 0)

	return best
}

func TestDijkstra_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 40; round++ {
		n := 3 + r.Intn(5)
		g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
		for i := 0; i < n; i++ {
			_ = g.AddVertex(fmt.Sprintf("S%d", i))
		}
		edges := n + r.Intn(2*n)
		for i := 0; i < edges; i++ {
			u, v := r.Intn(n), r.Intn(n)
			if u == v {
				continue
			}
			_, err := g.AddEdge(fmt.Sprintf("S%d", u), fmt.Sprintf("S%d", v), int64(1+r.Intn(9)))
			require.NoError(t, err)
		}

		dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("S0"), dijkstra.WithReturnPath())
		require.NoError(t, err)
		want := bruteForce(g, "S0")

		for _, v := range g.Vertices() {
			w, reachable := want[v]
			if !reachable {
				assert.Equal(t, int64(math.MaxInt64), dist[v], "round %d vertex %s", round, v)
				continue
			}
			assert.Equal(t, w, dist[v], "round %d vertex %s", round, v)

			// The reconstructed path must add up to the reported distance.
			path, err := dijkstra.PathTo(prev, "S0", v)
			require.NoError(t, err)
			var sum int64
			for _, e := range path {
				sum += e.Weight
			}
			assert.Equal(t, dist[v], sum, "round %d path weight to %s", round, v)
		}
	}
}
