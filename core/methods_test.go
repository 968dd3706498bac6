// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/metropath/core"
)

// TestGraph_AddVertex verifies empty-ID rejection and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	MustErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID, "AddVertex(empty)")
	MustErrorNil(t, g.AddVertex(VertexA), "AddVertex(A)")
	MustErrorNil(t, g.AddVertex(VertexA), "AddVertex(A) duplicate")
	MustEqualInt(t, g.VertexCount(), 1, "VertexCount after duplicate add")
	MustEqualBool(t, g.HasVertex(VertexA), true, "HasVertex(A)")
	MustEqualBool(t, g.HasVertex(VertexEmpty), false, "HasVertex(empty)")
}

// TestGraph_AddEdge_Constraints verifies weight, loop and multi-edge policies.
func TestGraph_AddEdge_Constraints(t *testing.T) {
	plain := core.NewGraph()
	_, err := plain.AddEdge(VertexA, VertexB, 3)
	MustErrorIs(t, err, core.ErrBadWeight, "AddEdge weight on unweighted graph")

	_, err = plain.AddEdge(VertexA, VertexA, 0)
	MustErrorIs(t, err, core.ErrLoopNotAllowed, "AddEdge loop")

	_, err = plain.AddEdge(VertexEmpty, VertexA, 0)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "AddEdge empty endpoint")

	_, err = plain.AddEdge(VertexA, VertexB, 0)
	MustErrorNil(t, err, "AddEdge(A,B)")
	_, err = plain.AddEdge(VertexB, VertexA, 0)
	MustErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "AddEdge(B,A) mirror of undirected A-B")
}

// TestGraph_MultiEdges verifies that parallel edges are kept with their labels.
func TestGraph_MultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())

	id1, err := g.AddEdge(VertexA, VertexB, 5, core.WithEdgeLabel("red"))
	MustErrorNil(t, err, "AddEdge red")
	id2, err := g.AddEdge(VertexB, VertexA, 3, core.WithEdgeLabel("blue"))
	MustErrorNil(t, err, "AddEdge blue")

	MustEqualInt(t, g.EdgeCount(), 2, "EdgeCount")
	MustEqualInt(t, g.Stats().ParallelPairs, 1, "ParallelPairs")

	e1, err := g.GetEdge(id1)
	MustErrorNil(t, err, "GetEdge(id1)")
	e2, err := g.GetEdge(id2)
	MustErrorNil(t, err, "GetEdge(id2)")
	if e1.Label != "red" || e2.Label != "blue" {
		t.Fatalf("labels: got %q,%q", e1.Label, e2.Label)
	}

	_, err = g.GetEdge("e999")
	MustErrorIs(t, err, core.ErrEdgeNotFound, "GetEdge(missing)")
}

// TestGraph_Neighbors_Undirected verifies that an undirected edge is visible from both ends
// and that Other resolves the far endpoint.
func TestGraph_Neighbors_Undirected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, _ = g.AddEdge(VertexA, VertexB, 1)
	_, _ = g.AddEdge(VertexC, VertexB, 2)
	_, _ = g.AddEdge(VertexA, VertexB, 4)

	edges, err := g.Neighbors(VertexB)
	MustErrorNil(t, err, "Neighbors(B)")
	MustEqualInt(t, len(edges), 3, "len(Neighbors(B))")

	got := make([]string, 0, len(edges))
	for _, e := range edges {
		got = append(got, e.Other(VertexB))
	}
	// Insertion order: A-B(1), C-B(2), A-B(4).
	MustEqualStrings(t, got, []string{VertexA, VertexC, VertexA}, "Neighbors(B) far endpoints")

	ids, err := g.NeighborIDs(VertexB)
	MustErrorNil(t, err, "NeighborIDs(B)")
	MustEqualStrings(t, ids, []string{VertexA, VertexC}, "NeighborIDs(B)")

	_, err = g.Neighbors(VertexX)
	MustErrorIs(t, err, core.ErrVertexNotFound, "Neighbors(missing)")
	_, err = g.Neighbors(VertexEmpty)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "Neighbors(empty)")
}

// TestGraph_HasEdge_Mirrored verifies that an edge is visible from both endpoints.
func TestGraph_HasEdge_Mirrored(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexB, 0)

	out, err := g.Neighbors(VertexB)
	MustErrorNil(t, err, "Neighbors(B)")
	MustEqualInt(t, len(out), 1, "edge must be incident to B")
	MustEqualBool(t, g.HasEdge(VertexB, VertexA), true, "HasEdge(B,A)")
	MustEqualBool(t, g.HasEdge(VertexA, VertexB), true, "HasEdge(A,B)")
	MustEqualBool(t, g.HasEdge(VertexA, VertexC), false, "HasEdge(A,C)")
}

// TestGraph_Ordering verifies the deterministic enumeration contracts.
func TestGraph_Ordering(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for i := 0; i < 12; i++ {
		_, _ = g.AddEdge(VertexA, VertexB, int64(i+1))
	}
	_ = g.AddVertex(VertexC)

	// "e10" sorts before "e2" lexicographically; sequence order must win.
	edges := g.Edges()
	for i, e := range edges {
		if want := "e" + strconv.Itoa(i+1); e.ID != want {
			t.Fatalf("Edges()[%d]: got %s, want %s", i, e.ID, want)
		}
		if e.Weight != int64(i+1) {
			t.Fatalf("Edges()[%d] weight: got %d, want %d", i, e.Weight, i+1)
		}
	}
	MustEqualStrings(t, g.Vertices(), []string{VertexA, VertexB, VertexC}, "Vertices()")
}

// TestGraph_Stats verifies flag reporting and catalog sizes.
func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(VertexA, VertexB, 2)
	_, _ = g.AddEdge(VertexB, VertexC, 3)
	_ = g.AddVertex(VertexX)

	s := g.Stats()
	MustEqualBool(t, s.Weighted, true, "Stats.Weighted")
	MustEqualBool(t, s.AllowsMulti, false, "Stats.AllowsMulti")
	MustEqualInt(t, s.VertexCount, 4, "Stats.VertexCount")
	MustEqualInt(t, s.EdgeCount, 2, "Stats.EdgeCount")
	MustEqualInt(t, s.ParallelPairs, 0, "Stats.ParallelPairs")
	MustEqualBool(t, g.Weighted(), true, "Weighted()")
}
