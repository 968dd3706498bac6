// SPDX-License-Identifier: MIT

// Package bfs walks a core.Graph breadth first, counting hops and ignoring
// weights. It answers reachability questions about a network: which stations
// can be reached from a given one, how many stops away they are, and how the
// network splits into connected parts.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/metropath/core"
)

// BFS runs a breadth-first search on g from start.
// Neighbors are visited in ascending ID order, so results are deterministic.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	res := &Result{
		Depth:  map[string]int{start: 0},
		Parent: make(map[string]string),
	}
	queue := []string{start}
	for len(queue) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}

		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)

		next := res.Depth[cur] + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}

		nbrs, err := g.NeighborIDs(cur)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", cur, err)
		}
		for _, nbr := range nbrs {
			if _, seen := res.Depth[nbr]; seen || !o.FilterNeighbor(cur, nbr) {
				continue
			}
			res.Depth[nbr] = next
			res.Parent[nbr] = cur
			queue = append(queue, nbr)
		}
	}

	return res, nil
}

// Components returns the connected components of an undirected graph. Each
// component lists its vertices in visit order; components are ordered by
// their smallest vertex ID.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]struct{})
	var out [][]string
	for _, v := range g.Vertices() {
		if _, ok := seen[v]; ok {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			seen[id] = struct{}{}
		}
		out = append(out, res.Order)
	}

	return out, nil
}
