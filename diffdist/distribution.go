// Models the sampling distribution of the difference between
// two experiment proportions, and samples it into plottable points.
package diffdist

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// RangeStdDevs is the number of standard deviations on each side
// of the mean covered by DataRange. The density out there is
// below 0.04% of the peak.
const RangeStdDevs = 4

// DifferenceDistribution is the normal distribution of
// (experiment proportion - control proportion), the two proportions
// being treated as independent.
// It is built for one render pass and never mutated.
type DifferenceDistribution struct {
	Mean     float64
	Variance float64

	// DataRange covers RangeStdDevs standard deviations
	// on each side of the mean.
	DataRange NumberRange

	normal stats.NormalDist
}

// New returns the distribution of experiment - control.
func New(control, experiment Proportion) (*DifferenceDistribution, error) {
	if err := control.validate(); err != nil {
		return nil, fmt.Errorf("control: %w", err)
	}
	if err := experiment.validate(); err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}
	variance := control.Variance + experiment.Variance
	if !(variance > 0) || math.IsInf(variance, 0) {
		return nil, fmt.Errorf("%w: %g + %g", ErrDegenerateVariance, control.Variance, experiment.Variance)
	}

	d := &DifferenceDistribution{
		Mean:     experiment.Mean - control.Mean,
		Variance: variance,
	}
	d.normal = stats.NormalDist{Mu: d.Mean, Sigma: math.Sqrt(variance)}
	halfWidth := RangeStdDevs * d.normal.Sigma
	d.DataRange = NumberRange{Min: d.Mean - halfWidth, Max: d.Mean + halfWidth}
	return d, nil
}

// NewFromVariations checks that exactly two variations are given
// before building the distribution of their difference.
func NewFromVariations(variations []Variation) (*DifferenceDistribution, error) {
	control, experiment, err := SplitRoles(variations)
	if err != nil {
		return nil, err
	}
	return New(control.Proportion, experiment.Proportion)
}

func (d *DifferenceDistribution) StdDev() float64 { return d.normal.Sigma }

// Density evaluates the normal probability density at x.
func (d *DifferenceDistribution) Density(x float64) float64 {
	return d.normal.PDF(x)
}

// PeakDensity is the density at the mean.
func (d *DifferenceDistribution) PeakDensity() float64 {
	return d.Density(d.Mean)
}

// YAxisRange spans from 0 to the peak density.
func (d *DifferenceDistribution) YAxisRange() NumberRange {
	return NumberRange{Min: 0, Max: d.PeakDensity()}
}

// ProbabilityOfImprovement returns P(experiment > control).
func (d *DifferenceDistribution) ProbabilityOfImprovement() float64 {
	return 1 - d.normal.CDF(0)
}
