// SPDX-License-Identifier: MIT

package subway

import "fmt"

// Fare is a non-negative monetary amount. The zero value is a valid zero fare.
type Fare struct {
	amount int
}

// ZeroFare is the fare of nothing.
var ZeroFare = Fare{}

// NewFare validates v and wraps it.
// Returns ErrInvalidFare when v < 0.
func NewFare(v int) (Fare, error) {
	if v < 0 {
		return Fare{}, fmt.Errorf("%w: got %d", ErrInvalidFare, v)
	}

	return Fare{amount: v}, nil
}

// MustFare is like NewFare but panics on invalid input.
func MustFare(v int) Fare {
	f, err := NewFare(v)
	if err != nil {
		panic(err)
	}

	return f
}

// Amount returns the wrapped integer.
func (f Fare) Amount() int { return f.amount }

// Add returns f + other.
func (f Fare) Add(other Fare) Fare { return Fare{amount: f.amount + other.amount} }

// Max returns the larger of f and other.
func (f Fare) Max(other Fare) Fare {
	if other.amount > f.amount {
		return other
	}

	return f
}

// String implements fmt.Stringer.
func (f Fare) String() string { return fmt.Sprintf("%d", f.amount) }
