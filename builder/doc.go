// SPDX-License-Identifier: MIT

// Package builder projects a set of subway lines onto a single weighted,
// undirected multigraph (core.Graph) and keeps the indices needed to map
// graph results back to domain objects.
//
// Projection rules:
//
//   - One vertex per station, deduplicated by station ID.
//   - One undirected edge per section, weighted by the section distance and
//     labelled with the owning line, so path search can attribute each hop to
//     the line that charges for it.
//   - Parallel edges are kept: two lines joining the same pair of stations
//     stay two edges.
//   - Each line's section sequence is ranged over exactly once per build.
//
// Build never fails. An empty set of lines yields an empty network.
//
// Example:
//
//	net := builder.Build(lines, builder.WithLogger(log))
//	dist, prev, err := dijkstra.Dijkstra(net.Graph(), dijkstra.Source(net.VertexID(src)), dijkstra.WithReturnPath())
package builder
