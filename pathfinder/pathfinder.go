// SPDX-License-Identifier: MIT

// Package pathfinder finds the shortest path between two stations of a built
// network and reports the stations visited, the total distance and the lines
// ridden.
//
// Errors (sentinel):
//
//	ErrSameStation    - source and target are the same station.
//	ErrUnknownStation - source or target is not a station of the network.
//	ErrNoPath         - both are known but lie in disconnected parts of the network.
package pathfinder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metropath/builder"
	"github.com/katalvlaran/metropath/dijkstra"
	"github.com/katalvlaran/metropath/subway"
)

// Sentinel errors returned by Find.
var (
	ErrSameStation    = errors.New("pathfinder: source and target are the same station")
	ErrUnknownStation = errors.New("pathfinder: station is not part of the network")
	ErrNoPath         = errors.New("pathfinder: no path between stations")
)

// Path is the result of a successful search.
type Path struct {
	// Stations are ordered from source to target, both inclusive.
	Stations []*subway.Station
	// Distance is the sum of section distances along the path.
	Distance subway.Distance
	// Lines are the distinct lines used, in order of first use.
	Lines []*subway.Line
}

// Find runs a shortest-path search from source to target over net.
//
// Validation order: same station, then unknown source, then unknown target.
// When several paths share the minimum distance the same one is returned for
// the same network, because the search follows section insertion order.
//
// Complexity: O((V + E) log V).
func Find(net *builder.Network, source, target int64) (*Path, error) {
	if source == target {
		return nil, fmt.Errorf("%w: %d", ErrSameStation, source)
	}
	if net == nil || !net.HasStation(source) {
		return nil, fmt.Errorf("%w: source %d", ErrUnknownStation, source)
	}
	if !net.HasStation(target) {
		return nil, fmt.Errorf("%w: target %d", ErrUnknownStation, target)
	}

	from, to := net.VertexID(source), net.VertexID(target)
	_, prev, err := dijkstra.Dijkstra(net.Graph(),
		dijkstra.Source(from),
		dijkstra.WithTarget(to),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		return nil, fmt.Errorf("pathfinder: search from %d: %w", source, err)
	}

	edges, err := dijkstra.PathTo(prev, from, to)
	if errors.Is(err, dijkstra.ErrUnreachable) {
		return nil, fmt.Errorf("%w: %d to %d", ErrNoPath, source, target)
	}
	if err != nil {
		return nil, err
	}

	first, _ := net.Station(source)
	path := &Path{Stations: make([]*subway.Station, 0, len(edges)+1)}
	path.Stations = append(path.Stations, first)

	usedLines := make(map[*subway.Line]struct{})
	var total int
	cur := from
	for _, e := range edges {
		cur = e.Other(cur)
		st, ok := net.StationByVertex(cur)
		if !ok {
			return nil, fmt.Errorf("pathfinder: vertex %q has no station", cur)
		}
		path.Stations = append(path.Stations, st)
		total += int(e.Weight)

		line, ok := net.Line(e.Label)
		if !ok {
			return nil, fmt.Errorf("pathfinder: edge %s has no line", e.ID)
		}
		if _, seen := usedLines[line]; !seen {
			usedLines[line] = struct{}{}
			path.Lines = append(path.Lines, line)
		}
	}

	path.Distance, err = subway.NewDistance(total)
	if err != nil {
		return nil, fmt.Errorf("pathfinder: %w", err)
	}

	return path, nil
}

// StationIDs returns the IDs of p.Stations in path order.
func (p *Path) StationIDs() []int64 {
	ids := make([]int64, len(p.Stations))
	for i, s := range p.Stations {
		ids[i] = s.ID()
	}

	return ids
}
