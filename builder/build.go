// SPDX-License-Identifier: MIT

package builder

import (
	"strconv"

	"github.com/katalvlaran/metropath/core"
	"github.com/katalvlaran/metropath/subway"
)

// lineLabelPrefix prefixes the input index of a line to form its edge label ("L0", "L1", ...).
// Labels are index based because line names are not guaranteed unique.
const lineLabelPrefix = "L"

// Build projects lines onto a weighted, undirected multigraph.
//
// Implementation:
//   - Stage 1: Resolve options; allocate an undirected, weighted, multi-edge graph.
//   - Stage 2: For each distinct line (nil and repeated pointers are skipped),
//     range over Sections() once and add one labelled edge per section.
//   - Stage 3: Log a summary.
//
// Sections whose endpoints collapse to one vertex under a custom ID scheme are
// skipped and logged at warn level.
//
// Complexity: O(L + S) time and space, L = lines, S = sections.
func Build(lines []*subway.Line, opts ...BuilderOption) *Network {
	cfg := newBuilderConfig(opts...)

	net := &Network{
		graph:    core.NewGraph(core.WithWeighted(), core.WithMultiEdges()),
		idFn:     cfg.idFn,
		stations: make(map[string]*subway.Station),
		lines:    make(map[string]*subway.Line, len(lines)),
	}

	seen := make(map[*subway.Line]struct{}, len(lines))
	var sections int
	for i, line := range lines {
		if line == nil {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}

		label := lineLabelPrefix + strconv.Itoa(i)
		net.lines[label] = line
		net.lineOrder = append(net.lineOrder, label)

		for s := range line.Sections() {
			if err := net.addSection(label, s); err != nil {
				cfg.logger.Warn("network.section_skipped",
					"line", line.Name(), "up", s.Up().ID(), "down", s.Down().ID(), "error", err)
				continue
			}
			sections++
		}
	}

	stats := net.graph.Stats()
	cfg.logger.Debug("network.built",
		"lines", len(net.lines), "stations", len(net.stations), "sections", sections,
		"shared_pairs", stats.ParallelPairs)

	return net
}

// addSection registers both endpoints and one undirected edge for s.
func (n *Network) addSection(label string, s *subway.Section) error {
	up, down := n.idFn(s.Up().ID()), n.idFn(s.Down().ID())
	if _, err := n.graph.AddEdge(up, down, int64(s.Distance().Value()), core.WithEdgeLabel(label)); err != nil {
		return err
	}
	n.stations[up] = s.Up()
	n.stations[down] = s.Down()

	return nil
}
