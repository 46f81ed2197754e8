package diffdist

import (
	"fmt"
	"math"
)

// NumberRange is an immutable [Min, Max] interval, used both
// for data space and pixel space spans.
type NumberRange struct {
	Min, Max float64
}

// NewNumberRange checks that min <= max and both are not NaN.
// Infinite bounds are accepted.
func NewNumberRange(min, max float64) (NumberRange, error) {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		return NumberRange{}, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, min, max)
	}
	return NumberRange{Min: min, Max: max}, nil
}

func (r NumberRange) Width() float64 { return r.Max - r.Min }

// Contains reports whether x lies in the closed interval.
func (r NumberRange) Contains(x float64) bool { return r.Min <= x && x <= r.Max }

// Clip returns the intersection of r and other.
// ok is false when they do not overlap on a segment of positive width.
func (r NumberRange) Clip(other NumberRange) (clipped NumberRange, ok bool) {
	clipped = NumberRange{Min: math.Max(r.Min, other.Min), Max: math.Min(r.Max, other.Max)}
	return clipped, clipped.Min < clipped.Max
}

func (r NumberRange) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}
