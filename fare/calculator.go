// SPDX-License-Identifier: MIT

package fare

import "github.com/katalvlaran/metropath/subway"

// Calculator applies a validated Policy. It holds no mutable state and is
// safe for concurrent use.
type Calculator struct {
	policy Policy
}

// NewCalculator validates p and returns a Calculator for it.
func NewCalculator(p Policy) (*Calculator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{policy: p}, nil
}

// Policy returns the schedule in use.
func (c *Calculator) Policy() Policy { return c.policy }

// Calculate returns the fare for riding distance over lines.
// A nil rider is treated as Anonymous.
func (c *Calculator) Calculate(distance subway.Distance, lines []*subway.Line, rider subway.RiderContext) subway.Fare {
	amount := c.distanceAmount(distance.Value()) + c.Surcharge(lines).Amount()

	if auth, ok := rider.(subway.Authenticated); ok && auth.Member != nil {
		amount = c.discount(amount, auth.Member.Age())
	}

	return floorFare(amount)
}

// DistanceFare returns the tiered fare for distance alone.
func (c *Calculator) DistanceFare(distance subway.Distance) subway.Fare {
	return floorFare(c.distanceAmount(distance.Value()))
}

// Surcharge returns the highest surcharge among lines, or zero for no lines.
func (c *Calculator) Surcharge(lines []*subway.Line) subway.Fare {
	highest := subway.ZeroFare
	for _, l := range lines {
		if l == nil {
			continue
		}
		highest = highest.Max(l.Surcharge())
	}

	return highest
}

func (c *Calculator) distanceAmount(d int) int {
	p := c.policy
	amount := p.BaseFare
	if d <= p.BaseDistance {
		return amount
	}

	mid := min(d, p.MidDistance) - p.BaseDistance
	amount += ceilDiv(mid, p.MidStep) * p.MidIncrement
	if d <= p.MidDistance {
		return amount
	}

	return amount + ceilDiv(d-p.MidDistance, p.LongStep)*p.LongIncrement
}

func (c *Calculator) discount(amount, age int) int {
	p := c.policy
	switch {
	case age < p.FreeUnderAge:
		return 0
	case age < p.ChildMaxAge:
		return percentOff(max(amount-p.Deduction, 0), p.ChildDiscountPercent)
	case age < p.TeenMaxAge:
		return percentOff(max(amount-p.Deduction, 0), p.TeenDiscountPercent)
	default:
		return amount
	}
}

func percentOff(amount, percent int) int {
	return amount * (100 - percent) / 100
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}

	return (a + b - 1) / b
}

func floorFare(amount int) subway.Fare {
	if amount < 0 {
		return subway.ZeroFare
	}

	return subway.MustFare(amount)
}
