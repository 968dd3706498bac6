// SPDX-License-Identifier: MIT
//
// File: line.go
// Role: Line aggregate and its Sections.
// Determinism:
//   - Sections() yields chain order (up terminus first) when the stored sections
//     form a single chain, otherwise storage order.

package subway

import (
	"fmt"
	"iter"
)

// Line is a named chain of sections with a per-line fare surcharge.
// The chain shape (connected, no branching) is maintained by whoever manages
// lines; this type only reorders what it is given.
type Line struct {
	name      string
	surcharge Fare
	sections  []*Section
}

// NewLine creates a line without sections.
func NewLine(name string, surcharge Fare) *Line {
	return &Line{name: name, surcharge: surcharge}
}

// Name returns the line name.
func (l *Line) Name() string { return l.name }

// Surcharge returns the extra fare charged to riders who use this line.
func (l *Line) Surcharge() Fare { return l.surcharge }

// AddSection appends a section owned by l and returns it.
//
// Errors:
//   - ErrInvalidSection if up or down is nil, or both denote the same station.
func (l *Line) AddSection(up, down *Station, distance Distance) (*Section, error) {
	if up == nil || down == nil {
		return nil, fmt.Errorf("%w: line %q has a nil endpoint", ErrInvalidSection, l.name)
	}
	if up.Equal(down) {
		return nil, fmt.Errorf("%w: line %q joins %s to itself", ErrInvalidSection, l.name, up)
	}
	if distance.value <= 0 {
		return nil, fmt.Errorf("%w: line %q section %s-%s", ErrInvalidDistance, l.name, up, down)
	}

	s := &Section{up: up, down: down, distance: distance, line: l}
	l.sections = append(l.sections, s)

	return s, nil
}

// SectionCount returns the number of stored sections.
func (l *Line) SectionCount() int { return len(l.sections) }

// Sections returns a lazy sequence over the line's sections.
//
// The order is computed when iteration starts: starting from the up terminus
// (the only up station that is never a down station) the chain is followed
// down to the other terminus. If the stored sections do not form one chain,
// they are yielded in storage order instead.
//
// Callers should treat the sequence as single-pass.
//
// Complexity: O(S) time and space per iteration, S = number of sections.
func (l *Line) Sections() iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		for _, s := range l.chainOrder() {
			if !yield(s) {
				return
			}
		}
	}
}

// chainOrder reconstructs terminus-to-terminus order, or falls back to storage order.
func (l *Line) chainOrder() []*Section {
	n := len(l.sections)
	if n < 2 {
		return l.sections
	}

	byUp := make(map[int64]*Section, n)
	downs := make(map[int64]struct{}, n)
	for _, s := range l.sections {
		if _, dup := byUp[s.up.id]; dup {
			return l.sections // branching
		}
		byUp[s.up.id] = s
		downs[s.down.id] = struct{}{}
	}

	var head *Section
	for _, s := range l.sections {
		if _, isDown := downs[s.up.id]; !isDown {
			if head != nil {
				return l.sections // more than one terminus
			}
			head = s
		}
	}
	if head == nil {
		return l.sections // cycle
	}

	ordered := make([]*Section, 0, n)
	for cur := head; cur != nil && len(ordered) < n; cur = byUp[cur.down.id] {
		ordered = append(ordered, cur)
	}
	if len(ordered) != n {
		return l.sections // disconnected
	}

	return ordered
}

// String implements fmt.Stringer.
func (l *Line) String() string { return l.name }

// Section is a direct, weighted connection between two stations of one line.
// It is stored directionally (up to down) and traversed in both directions.
type Section struct {
	up       *Station
	down     *Station
	distance Distance
	line     *Line // non-owning
}

// Up returns the up station.
func (s *Section) Up() *Station { return s.up }

// Down returns the down station.
func (s *Section) Down() *Station { return s.down }

// Distance returns the section length.
func (s *Section) Distance() Distance { return s.distance }

// Line returns the line that owns this section.
func (s *Section) Line() *Line { return s.line }
