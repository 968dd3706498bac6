// SPDX-License-Identifier: MIT

package subway

import "fmt"

// Station is a stop of the network. Stations are immutable and compared by ID.
type Station struct {
	id   int64
	name string
}

// NewStation returns a station with the given identity and display name.
func NewStation(id int64, name string) *Station {
	return &Station{id: id, name: name}
}

// ID returns the unique station identifier.
func (s *Station) ID() int64 { return s.id }

// Name returns the display name.
func (s *Station) Name() string { return s.name }

// Equal reports whether s and other denote the same station (same ID).
// Two nil stations are equal; a nil and a non-nil station are not.
func (s *Station) Equal(other *Station) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.id == other.id
}

// String implements fmt.Stringer.
func (s *Station) String() string {
	return fmt.Sprintf("%s(%d)", s.name, s.id)
}
