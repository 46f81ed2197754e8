package diffdist

import (
	"fmt"
	"math"
	"strings"
)

// Proportion is the measured conversion rate of a variation,
// with its sampling variance.
type Proportion struct {
	Mean     float64
	Variance float64
}

// ProportionFromCounts estimates a proportion from raw counts, using
// the binomial variance p(1-p)/n.
func ProportionFromCounts(conversions, visitors int) (Proportion, error) {
	if visitors <= 0 || conversions < 0 || conversions > visitors {
		return Proportion{}, fmt.Errorf("%w: %d conversions for %d visitors", ErrInvalidCounts, conversions, visitors)
	}
	n := float64(visitors)
	p := float64(conversions) / n
	return Proportion{Mean: p, Variance: p * (1 - p) / n}, nil
}

// Role tells which arm of the experiment a variation is.
type Role uint8

const (
	RoleUnset Role = iota
	RoleControl
	RoleExperiment
)

func (r Role) String() string {
	switch r {
	case RoleUnset:
		return "unset"
	case RoleControl:
		return "control"
	case RoleExperiment:
		return "experiment"
	default:
		return "<unknown Role>"
	}
}

// ParseRole accepts "control", "experiment" and the empty string.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return RoleUnset, nil
	case "control":
		return RoleControl, nil
	case "experiment":
		return RoleExperiment, nil
	default:
		return RoleUnset, fmt.Errorf("unknown variation role %q", s)
	}
}

// Variation is one arm of an experiment.
type Variation struct {
	Name       string
	Role       Role
	Proportion Proportion
}

// SplitRoles maps exactly two variations to their control and experiment
// roles. When no role is given, the first variation is the control.
func SplitRoles(variations []Variation) (control, experiment Variation, err error) {
	if len(variations) != 2 {
		return control, experiment, &UnsupportedVariationCountError{Count: len(variations)}
	}
	a, b := variations[0], variations[1]
	switch {
	case a.Role != RoleUnset && a.Role == b.Role:
		return control, experiment, fmt.Errorf("%w: %s", ErrDuplicateRole, a.Role)
	case a.Role == RoleExperiment || b.Role == RoleControl:
		a, b = b, a
	}
	a.Role, b.Role = RoleControl, RoleExperiment
	return a, b, nil
}

func (p Proportion) validate() error {
	if math.IsNaN(p.Mean) || math.IsInf(p.Mean, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidMean, p.Mean)
	}
	if p.Variance < 0 || math.IsNaN(p.Variance) {
		return fmt.Errorf("%w: variance %g", ErrDegenerateVariance, p.Variance)
	}
	return nil
}
