// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	– Space: O(V + E)
//
// Options:
//
//	– Source:      ID of the starting vertex (must be non-empty and present in the graph).
//	– Target:      optional; stop as soon as this vertex is settled.
//	– ReturnPath:  if true, return the predecessor-edge map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; vertices beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnweightedGraph if the graph is not configured to support weights.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrUnreachable     from PathTo when the target was never reached.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates that no path leads from the source to the requested target.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (must be non-empty and present in the graph).
// Target      – optional vertex ID; the search stops once it is settled.
// ReturnPath  – if true, return the predecessor-edge map; otherwise prev map is nil.
// MaxDistance – optional cap on distances to explore. Default math.MaxInt64.
type Options struct {
	Source      string // The ID of the source vertex
	Target      string // Early-exit vertex; empty means explore everything reachable
	ReturnPath  bool   // Whether to return the predecessor map
	MaxDistance int64  // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be provided.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithTarget stops the search once target is settled. Distances of vertices
// not yet settled at that point are left at math.MaxInt64 or a tentative value.
func WithTarget(target string) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithReturnPath enables generation of the predecessor-edge map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics on negative values (ErrBadMaxDistance).
func WithMaxDistance(limit int64) Option {
	if limit < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = limit
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
	}
}
