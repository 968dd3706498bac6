// SPDX-License-Identifier: MIT

package fare

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPolicy indicates a policy whose values cannot describe a fare schedule.
var ErrInvalidPolicy = errors.New("fare: invalid policy")

// Policy holds every tunable number of the fare schedule.
type Policy struct {
	BaseFare      int `yaml:"base_fare"`
	BaseDistance  int `yaml:"base_distance"`
	MidDistance   int `yaml:"mid_distance"`
	MidStep       int `yaml:"mid_step"`
	MidIncrement  int `yaml:"mid_increment"`
	LongStep      int `yaml:"long_step"`
	LongIncrement int `yaml:"long_increment"`

	FreeUnderAge         int `yaml:"free_under_age"`
	ChildMaxAge          int `yaml:"child_max_age"`
	TeenMaxAge           int `yaml:"teen_max_age"`
	Deduction            int `yaml:"deduction"`
	ChildDiscountPercent int `yaml:"child_discount_percent"`
	TeenDiscountPercent  int `yaml:"teen_discount_percent"`
}

// DefaultPolicy returns the default schedule.
func DefaultPolicy() Policy {
	return Policy{
		BaseFare:      1250,
		BaseDistance:  10,
		MidDistance:   50,
		MidStep:       5,
		MidIncrement:  100,
		LongStep:      8,
		LongIncrement: 100,

		FreeUnderAge:         6,
		ChildMaxAge:          13,
		TeenMaxAge:           19,
		Deduction:            350,
		ChildDiscountPercent: 50,
		TeenDiscountPercent:  20,
	}
}

// Validate reports the first inconsistency in p, wrapped in ErrInvalidPolicy.
func (p Policy) Validate() error {
	switch {
	case p.BaseFare < 0:
		return fmt.Errorf("%w: base_fare %d is negative", ErrInvalidPolicy, p.BaseFare)
	case p.BaseDistance <= 0:
		return fmt.Errorf("%w: base_distance must be positive", ErrInvalidPolicy)
	case p.MidDistance < p.BaseDistance:
		return fmt.Errorf("%w: mid_distance %d is below base_distance %d", ErrInvalidPolicy, p.MidDistance, p.BaseDistance)
	case p.MidStep <= 0 || p.LongStep <= 0:
		return fmt.Errorf("%w: mid_step and long_step must be positive", ErrInvalidPolicy)
	case p.MidIncrement < 0 || p.LongIncrement < 0:
		return fmt.Errorf("%w: increments must not be negative", ErrInvalidPolicy)
	case p.FreeUnderAge < 0 || p.ChildMaxAge < p.FreeUnderAge || p.TeenMaxAge < p.ChildMaxAge:
		return fmt.Errorf("%w: age thresholds must satisfy 0 <= free_under_age <= child_max_age <= teen_max_age", ErrInvalidPolicy)
	case p.Deduction < 0:
		return fmt.Errorf("%w: deduction must not be negative", ErrInvalidPolicy)
	case !isPercent(p.ChildDiscountPercent) || !isPercent(p.TeenDiscountPercent):
		return fmt.Errorf("%w: discount percentages must be within [0, 100]", ErrInvalidPolicy)
	}

	return nil
}

func isPercent(v int) bool { return v >= 0 && v <= 100 }

// LoadPolicy reads a YAML policy file. Keys absent from the file keep their
// DefaultPolicy values. The result is validated.
func LoadPolicy(path string) (Policy, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("fare: read policy %s: %w", path, err)
	}

	return ParsePolicy(b)
}

// ParsePolicy decodes a YAML policy document over DefaultPolicy and validates it.
func ParsePolicy(b []byte) (Policy, error) {
	p := DefaultPolicy()
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Policy{}, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	return p, nil
}
