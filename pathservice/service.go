// SPDX-License-Identifier: MIT

package pathservice

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/metropath/builder"
	"github.com/katalvlaran/metropath/fare"
	"github.com/katalvlaran/metropath/pathfinder"
	"github.com/katalvlaran/metropath/subway"
)

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pathservice: WithLogger(nil)")
	}

	return func(s *Service) { s.logger = l }
}

// Service computes paths and fares. It is safe for concurrent use as long as
// its repositories are.
type Service struct {
	stations StationRepository
	lines    LineRepository
	calc     *fare.Calculator
	logger   *slog.Logger
}

// NewService wires a Service. Panics when a collaborator is nil.
func NewService(stations StationRepository, lines LineRepository, calc *fare.Calculator, opts ...Option) *Service {
	if stations == nil || lines == nil || calc == nil {
		panic("pathservice: NewService requires stations, lines and calculator")
	}

	s := &Service{
		stations: stations,
		lines:    lines,
		calc:     calc,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CalculatePath returns the shortest path from req.Source to req.Target with
// its distance and the fare rider pays. A nil rider is treated as anonymous.
//
// Steps:
//  1. Resolve both stations; a missing one is KindStationNotFound.
//  2. Reject identical stations (KindSameStation).
//  3. Load all lines and build a fresh network.
//  4. Search; map unknown or unreachable stations to their kinds.
//  5. Price the trip and hydrate the station list in path order.
func (s *Service) CalculatePath(ctx context.Context, rider subway.RiderContext, req PathRequest) (*PathResponse, error) {
	if rider == nil {
		rider = subway.Anonymous{}
	}
	log := s.logger.With("source", req.Source, "target", req.Target)

	resp, err := s.calculate(ctx, rider, req)
	if err != nil {
		var pe *PathCalculateError
		if errors.As(err, &pe) {
			log.Info("path.rejected", "kind", string(pe.Kind), "reason", pe.Msg)
		} else {
			log.Error("path.failed", "error", err)
		}

		return nil, err
	}

	log.Debug("path.calculated",
		"stations", len(resp.Stations), "distance", resp.Distance, "fare", resp.Fare)

	return resp, nil
}

func (s *Service) calculate(ctx context.Context, rider subway.RiderContext, req PathRequest) (*PathResponse, error) {
	source, err := s.findStation(ctx, req.Source)
	if err != nil {
		return nil, err
	}
	target, err := s.findStation(ctx, req.Target)
	if err != nil {
		return nil, err
	}
	if source.Equal(target) {
		return nil, reject(KindSameStation, pathfinder.ErrSameStation,
			"source and target are the same station %q", source.Name())
	}

	lines, err := s.lines.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	net := builder.Build(lines, builder.WithLogger(s.logger))
	path, err := pathfinder.Find(net, source.ID(), target.ID())
	switch {
	case errors.Is(err, pathfinder.ErrSameStation):
		return nil, reject(KindSameStation, err, "source and target are the same station %q", source.Name())
	case errors.Is(err, pathfinder.ErrUnknownStation):
		return nil, reject(KindUnknownStation, err,
			"station %q or %q is not served by any line", source.Name(), target.Name())
	case errors.Is(err, pathfinder.ErrNoPath):
		return nil, reject(KindNoPath, err, "no route connects %q and %q", source.Name(), target.Name())
	case err != nil:
		return nil, err
	}

	price := s.calc.Calculate(path.Distance, path.Lines, rider)

	stations, err := s.hydrate(ctx, path)
	if err != nil {
		return nil, err
	}

	resp := &PathResponse{
		Stations: stations,
		Distance: path.Distance.Value(),
		Fare:     price.Amount(),
		Lines:    make([]string, 0, len(path.Lines)),
	}
	for _, l := range path.Lines {
		resp.Lines = append(resp.Lines, l.Name())
	}

	return resp, nil
}

func (s *Service) findStation(ctx context.Context, id int64) (*subway.Station, error) {
	st, err := s.stations.FindByID(ctx, id)
	if errors.Is(err, subway.ErrStationNotFound) {
		return nil, reject(KindStationNotFound, err, "station %d does not exist", id)
	}
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, reject(KindStationNotFound, subway.ErrStationNotFound, "station %d does not exist", id)
	}

	return st, nil
}

// hydrate loads the stations on path and returns them in path order. A
// station the repository does not return is taken from the path itself.
func (s *Service) hydrate(ctx context.Context, path *pathfinder.Path) ([]StationResponse, error) {
	found, err := s.stations.FindAllByIDIn(ctx, path.StationIDs())
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*subway.Station, len(found))
	for _, st := range found {
		if st != nil {
			byID[st.ID()] = st
		}
	}

	out := make([]StationResponse, 0, len(path.Stations))
	for _, onPath := range path.Stations {
		st, ok := byID[onPath.ID()]
		if !ok {
			st = onPath
		}
		out = append(out, StationResponse{ID: st.ID(), Name: st.Name()})
	}

	return out, nil
}
