// SPDX-License-Identifier: MIT

package subway

import "fmt"

// Distance is a positive whole-number length (for example kilometres).
// The zero value is not a valid Distance; use NewDistance.
type Distance struct {
	value int
}

// NewDistance validates v and wraps it.
// Returns ErrInvalidDistance when v <= 0.
func NewDistance(v int) (Distance, error) {
	if v <= 0 {
		return Distance{}, fmt.Errorf("%w: got %d", ErrInvalidDistance, v)
	}

	return Distance{value: v}, nil
}

// MustDistance is like NewDistance but panics on invalid input.
// Intended for literals in fixtures and tests.
func MustDistance(v int) Distance {
	d, err := NewDistance(v)
	if err != nil {
		panic(err)
	}

	return d
}

// Value returns the wrapped integer.
func (d Distance) Value() int { return d.value }

// Add returns the sum of d and other. The sum of two positive distances is positive.
func (d Distance) Add(other Distance) Distance {
	return Distance{value: d.value + other.value}
}

// String implements fmt.Stringer.
func (d Distance) String() string { return fmt.Sprintf("%d", d.value) }
