// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory weighted graph that the
// rail network is projected onto before path search.
//
// The Graph G = (V,E) supports:
//
//   - Undirected edges only; self-loops are always rejected
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Labelled edges (WithEdgeLabel), used to tag an edge with the line it belongs to
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices() is sorted by ID. Edges() and Neighbors() are sorted by insertion
//	sequence, so algorithms that iterate them produce the same result for the
//	same sequence of AddEdge calls.
//
// Core methods:
//
//	AddVertex(id string) error                                                  // O(1)
//	HasVertex(id string) bool                                                   // O(1)
//	AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error)  // O(1)†
//	HasEdge(from, to string) bool                                               // O(1)
//	GetEdge(id string) (*Edge, error)                                           // O(1)
//	Neighbors(id string) ([]*Edge, error)                                       // O(d·log d)
//	NeighborIDs(id string) ([]string, error)                                    // O(d·log d)
//	Vertices() []string                                                         // O(V·log V)
//	Edges() []*Edge                                                             // O(E·log E)
//	VertexCount(), EdgeCount() int                                              // O(1)
//	Stats() *GraphStats                                                         // O(V+E)
//
// † amortized hash-map insertion.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
