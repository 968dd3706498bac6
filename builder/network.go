// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/metropath/bfs"
	"github.com/katalvlaran/metropath/core"
	"github.com/katalvlaran/metropath/subway"
)

// Network is a request-scoped projection of the rail network onto a graph.
// It is immutable once Build returns and safe for concurrent readers.
type Network struct {
	graph *core.Graph

	idFn      func(int64) string
	stations  map[string]*subway.Station // vertex ID → station
	lines     map[string]*subway.Line    // edge label → line
	lineOrder []string                   // labels in input order
}

// Graph returns the underlying weighted multigraph.
func (n *Network) Graph() *core.Graph { return n.graph }

// VertexID returns the vertex ID a station ID maps to. The vertex may be absent
// from the graph; check with HasStation.
func (n *Network) VertexID(stationID int64) string { return n.idFn(stationID) }

// HasStation reports whether the station participates in at least one section.
func (n *Network) HasStation(stationID int64) bool {
	_, ok := n.stations[n.idFn(stationID)]

	return ok
}

// Station returns the station with the given ID, if it is part of the network.
func (n *Network) Station(stationID int64) (*subway.Station, bool) {
	s, ok := n.stations[n.idFn(stationID)]

	return s, ok
}

// StationByVertex resolves a vertex ID back to its station.
func (n *Network) StationByVertex(vertexID string) (*subway.Station, bool) {
	s, ok := n.stations[vertexID]

	return s, ok
}

// Line resolves an edge label back to the owning line.
func (n *Network) Line(label string) (*subway.Line, bool) {
	l, ok := n.lines[label]

	return l, ok
}

// Lines returns the lines of the network in build input order.
func (n *Network) Lines() []*subway.Line {
	out := make([]*subway.Line, 0, len(n.lineOrder))
	for _, label := range n.lineOrder {
		out = append(out, n.lines[label])
	}

	return out
}

// StationCount returns the number of distinct stations.
func (n *Network) StationCount() int { return len(n.stations) }

// LineCount returns the number of distinct lines.
func (n *Network) LineCount() int { return len(n.lines) }

// Components splits the network into connected parts. Each part lists its
// stations in breadth-first order from its lowest vertex ID; parts are
// ordered by that vertex ID. A fully connected network has one part.
func (n *Network) Components() ([][]*subway.Station, error) {
	parts, err := bfs.Components(n.graph)
	if err != nil {
		return nil, err
	}

	out := make([][]*subway.Station, len(parts))
	for i, vids := range parts {
		out[i] = make([]*subway.Station, len(vids))
		for j, vid := range vids {
			out[i][j] = n.stations[vid]
		}
	}

	return out, nil
}

// Stops returns the number of sections between two stations along the path
// with the fewest stops, ignoring distance. ok is false when either station
// is absent or they are not connected.
func (n *Network) Stops(from, to int64) (stops int, ok bool) {
	if !n.HasStation(from) || !n.HasStation(to) {
		return 0, false
	}
	res, err := bfs.BFS(n.graph, n.idFn(from))
	if err != nil {
		return 0, false
	}
	stops, ok = res.Depth[n.idFn(to)]

	return stops, ok
}
