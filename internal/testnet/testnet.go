// SPDX-License-Identifier: MIT

// Package testnet builds the reference network used across package tests:
//
//	             5
//	교대역 --- *2호선* --- 강남역
//	  |                     |
//	*3호선* 3           *신분당선* 10
//	  |                     |
//	남부터미널역 --- *3호선* --- 양재역
//	             2
//
// Surcharges: 신분당선 1000, 이호선 0, 삼호선 200.
package testnet

import "github.com/katalvlaran/metropath/subway"

// Station IDs of the reference network.
const (
	Gangnam  int64 = 1
	Nambu    int64 = 2
	Yangjae  int64 = 3
	Gyodae   int64 = 4
	Isolated int64 = 99 // exists as a station but sits on no line
)

// Network holds the reference stations and lines.
type Network struct {
	Stations map[int64]*subway.Station

	Sinbundang *subway.Line
	Line2      *subway.Line
	Line3      *subway.Line
}

// Lines returns the lines in a fixed order.
func (n *Network) Lines() []*subway.Line {
	return []*subway.Line{n.Sinbundang, n.Line2, n.Line3}
}

// StationList returns every station, Isolated included, ordered by ID.
func (n *Network) StationList() []*subway.Station {
	return []*subway.Station{
		n.Stations[Gangnam], n.Stations[Nambu], n.Stations[Yangjae], n.Stations[Gyodae], n.Stations[Isolated],
	}
}

// New builds a fresh reference network. Each call returns new objects.
func New() *Network {
	st := map[int64]*subway.Station{
		Gangnam:  subway.NewStation(Gangnam, "강남역"),
		Nambu:    subway.NewStation(Nambu, "남부터미널역"),
		Yangjae:  subway.NewStation(Yangjae, "양재역"),
		Gyodae:   subway.NewStation(Gyodae, "교대역"),
		Isolated: subway.NewStation(Isolated, "고립역"),
	}

	n := &Network{
		Stations:   st,
		Sinbundang: subway.NewLine("신분당선", subway.MustFare(1000)),
		Line2:      subway.NewLine("이호선", subway.ZeroFare),
		Line3:      subway.NewLine("삼호선", subway.MustFare(200)),
	}

	mustSection(n.Sinbundang, st[Gangnam], st[Yangjae], 10)
	mustSection(n.Line2, st[Gyodae], st[Gangnam], 5)
	mustSection(n.Line3, st[Gyodae], st[Nambu], 3)
	mustSection(n.Line3, st[Nambu], st[Yangjae], 2)

	return n
}

func mustSection(l *subway.Line, up, down *subway.Station, distance int) {
	if _, err := l.AddSection(up, down, subway.MustDistance(distance)); err != nil {
		panic(err)
	}
}
