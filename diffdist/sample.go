package diffdist

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// SamplesPerHalf is the number of points sampled on each side of zero.
const SamplesPerHalf = 100

// Samples is an ordered sequence of (difference, density) points,
// increasing in X. Xs and Ys are positionally aligned.
type Samples struct {
	Xs, Ys []float64
}

func (s Samples) Len() int { return len(s.Xs) }

// Last returns the final point. It panics on an empty sequence.
func (s Samples) Last() (x, y float64) {
	i := len(s.Xs) - 1
	return s.Xs[i], s.Ys[i]
}

// Prepend returns a new sequence starting with (x, y);
// s is not modified.
func (s Samples) Prepend(x, y float64) Samples {
	return Samples{
		Xs: append([]float64{x}, s.Xs...),
		Ys: append([]float64{y}, s.Ys...),
	}
}

// Bounds returns the smallest and largest X.
func (s Samples) Bounds() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, x := range s.Xs {
		min = math.Min(min, x)
		max = math.Max(max, x)
	}
	return min, max
}

// XValuesBetween returns SamplesPerHalf evenly spaced values
// between min and max, both included exactly.
func (d *DifferenceDistribution) XValuesBetween(min, max float64) []float64 {
	xs := vec.Linspace(min, max, SamplesPerHalf)
	// Linspace may be off by one ulp at the end
	xs[0], xs[len(xs)-1] = min, max
	return xs
}

// YValuesFor evaluates the density at each x.
func (d *DifferenceDistribution) YValuesFor(xs []float64) []float64 {
	return vec.Map(d.Density, xs)
}

// Sample samples the density between min and max.
func (d *DifferenceDistribution) Sample(min, max float64) Samples {
	xs := d.XValuesBetween(min, max)
	return Samples{Xs: xs, Ys: d.YValuesFor(xs)}
}

// SplitAtZero samples the loss half [DataRange.Min, 0] and the gain half
// [0, DataRange.Max], clipped to DataRange.
// The last loss point is prepended to the gain half, so that
// both regions share their boundary point.
// A half lying outside DataRange is returned empty.
func (d *DifferenceDistribution) SplitAtZero() (negative, positive Samples) {
	if r, ok := d.DataRange.Clip(NumberRange{Min: math.Inf(-1), Max: 0}); ok {
		negative = d.Sample(r.Min, r.Max)
	}
	if r, ok := d.DataRange.Clip(NumberRange{Min: 0, Max: math.Inf(1)}); ok {
		positive = d.Sample(r.Min, r.Max)
	}
	if negative.Len() > 0 && positive.Len() > 0 {
		positive = positive.Prepend(negative.Last())
	}
	return negative, positive
}
