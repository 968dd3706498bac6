// SPDX-License-Identifier: MIT

// Package metropath computes the shortest path between two stations of a
// multi-line subway network and the fare for that path.
//
// The work is split into small packages, leaves first:
//
//	subway/       Station, Line, Section, Distance, Fare and the rider context
//	core/         thread-safe weighted multigraph with labelled edges
//	builder/      projects lines onto a core graph (one edge per section)
//	dijkstra/     single-source shortest paths with edge-level predecessors
//	bfs/          hop-count search and connected parts
//	pathfinder/   stations, distance and lines ridden between two stations
//	fare/         tiered distance fare, line surcharge, age discount
//	pathservice/  request orchestration over station and line repositories
//
// Adapters:
//
//	store/memory, store/sqlite, store/postgres  repositories
//	httpapi/     GET /paths over chi
//	cli/, cmd/metropath  serve, path, import and check commands
//	config/, logging/    environment settings and slog setup
//
// A request builds a fresh network from the current lines, so edits to the
// store are visible on the next request without any cache to invalidate.
package metropath
