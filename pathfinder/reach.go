// SPDX-License-Identifier: MIT

package pathfinder

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/metropath/builder"
	"github.com/katalvlaran/metropath/dijkstra"
	"github.com/katalvlaran/metropath/subway"
)

// ErrNegativeRadius is returned by Reachable for a negative distance bound.
var ErrNegativeRadius = errors.New("pathfinder: distance bound must be non-negative")

// Reach is a station and its shortest distance from the origin of a search.
type Reach struct {
	Station  *subway.Station
	Distance subway.Distance
}

// Reachable lists every station whose shortest distance from source is at
// most maxDistance, nearest first. Stations at the same distance are ordered
// by ID. The source itself is not listed.
//
// Complexity: O((V + E) log V), bounded by the part of the network within maxDistance.
func Reachable(net *builder.Network, source int64, maxDistance int) ([]Reach, error) {
	if maxDistance < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeRadius, maxDistance)
	}
	if net == nil || !net.HasStation(source) {
		return nil, fmt.Errorf("%w: source %d", ErrUnknownStation, source)
	}

	from := net.VertexID(source)
	dist, _, err := dijkstra.Dijkstra(net.Graph(),
		dijkstra.Source(from),
		dijkstra.WithMaxDistance(int64(maxDistance)),
	)
	if err != nil {
		return nil, fmt.Errorf("pathfinder: search from %d: %w", source, err)
	}

	var out []Reach
	for v, d := range dist {
		if v == from || d == math.MaxInt64 {
			continue
		}
		st, ok := net.StationByVertex(v)
		if !ok {
			return nil, fmt.Errorf("pathfinder: vertex %q has no station", v)
		}
		distance, err := subway.NewDistance(int(d))
		if err != nil {
			return nil, fmt.Errorf("pathfinder: %w", err)
		}
		out = append(out, Reach{Station: st, Distance: distance})
	}

	sort.Slice(out, func(i, j int) bool {
		if a, b := out[i].Distance.Value(), out[j].Distance.Value(); a != b {
			return a < b
		}
		return out[i].Station.ID() < out[j].Station.ID()
	})

	return out, nil
}
