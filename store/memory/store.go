// SPDX-License-Identifier: MIT

// Package memory keeps stations and lines in process memory and loads them
// from a YAML network catalog.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/metropath/subway"
)

// Store holds stations and lines. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	stations map[int64]*subway.Station
	lines    []*subway.Line
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{stations: make(map[int64]*subway.Station)}
}

// NewStoreFromCatalog returns a Store holding every station and line of c.
func NewStoreFromCatalog(c *Catalog) *Store {
	s := NewStore()
	for _, st := range c.Stations {
		s.SaveStation(st)
	}
	for _, l := range c.Lines {
		s.SaveLine(l)
	}

	return s
}

// SaveStation inserts or replaces a station by ID.
func (s *Store) SaveStation(st *subway.Station) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stations[st.ID()] = st
}

// SaveLine appends a line.
func (s *Store) SaveLine(l *subway.Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, l)
}

// Stations returns a station repository view of s.
func (s *Store) Stations() *StationRepository { return &StationRepository{store: s} }

// Lines returns a line repository view of s.
func (s *Store) Lines() *LineRepository { return &LineRepository{store: s} }

// StationRepository reads stations from a Store.
type StationRepository struct {
	store *Store
}

// FindByID returns the station or an error wrapping subway.ErrStationNotFound.
func (r *StationRepository) FindByID(_ context.Context, id int64) (*subway.Station, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	st, ok := r.store.stations[id]
	if !ok {
		return nil, fmt.Errorf("memory: station %d: %w", id, subway.ErrStationNotFound)
	}

	return st, nil
}

// FindAll returns every station ordered by ID.
func (r *StationRepository) FindAll(_ context.Context) ([]*subway.Station, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*subway.Station, 0, len(r.store.stations))
	for _, st := range r.store.stations {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out, nil
}

// FindAllByIDIn returns the existing stations among ids, once each, in the order of ids.
func (r *StationRepository) FindAllByIDIn(_ context.Context, ids []int64) ([]*subway.Station, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	seen := make(map[int64]struct{}, len(ids))
	out := make([]*subway.Station, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if st, ok := r.store.stations[id]; ok {
			out = append(out, st)
		}
	}

	return out, nil
}

// LineRepository reads lines from a Store.
type LineRepository struct {
	store *Store
}

// FindAll returns every line in insertion order.
func (r *LineRepository) FindAll(_ context.Context) ([]*subway.Line, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*subway.Line, len(r.store.lines))
	copy(out, r.store.lines)

	return out, nil
}
