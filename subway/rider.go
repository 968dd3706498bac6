// SPDX-License-Identifier: MIT

package subway

import "fmt"

// RiderContext identifies who is travelling, for fare discounting.
// It has exactly two variants: Anonymous and Authenticated.
type RiderContext interface {
	isRiderContext()
}

// Member is an authenticated rider as resolved by the auth layer.
type Member interface {
	Age() int
}

// Anonymous is a rider without a resolved identity. No age discount applies.
type Anonymous struct{}

func (Anonymous) isRiderContext() {}

// Authenticated is a rider whose age is known.
type Authenticated struct {
	Member Member
}

func (Authenticated) isRiderContext() {}

// member is the plain Member used outside of an auth layer.
type member struct {
	age int
}

func (m member) Age() int { return m.age }

// NewMember returns a Member with a fixed age.
// Returns ErrInvalidAge when age < 0.
func NewMember(age int) (Member, error) {
	if age < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAge, age)
	}

	return member{age: age}, nil
}

// AuthenticatedAge is a shorthand for Authenticated{Member: NewMember(age)}.
func AuthenticatedAge(age int) (RiderContext, error) {
	m, err := NewMember(age)
	if err != nil {
		return nil, err
	}

	return Authenticated{Member: m}, nil
}
