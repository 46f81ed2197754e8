package improvement

import (
	"errors"
	"fmt"
	"math"

	"github.com/benoitkugler/okgraph/diffdist"
	"github.com/benoitkugler/okgraph/graphdraw"
)

// AxisDivisions is the number of intervals the data range is split into.
const AxisDivisions = 5

// MaxPercentage bounds the magnitude of tick labels.
const MaxPercentage = math.MaxInt32

// ErrDegenerateControlMean is returned when the control mean cannot
// be used as the reference of the percentage labels.
var ErrDegenerateControlMean = errors.New("control mean must be non zero and finite")

// Tick is one labeled value of the x axis.
type Tick struct {
	Value      float64 // difference, in data space
	Percentage int     // improvement relative to the control mean
	Label      string
	X, Y       float64 // label anchor, in pixels
}

// TickPlan is the x axis: its range, snapped outward to whole
// multiples of Interval, and its ticks.
type TickPlan struct {
	Interval  float64
	AxisRange diffdist.NumberRange
	Ticks     []Tick
}

// AxisTickPlanner computes the labeled ticks beneath the plot rectangle.
type AxisTickPlanner struct {
	Rect          graphdraw.Rectangle
	TickFontSize  float64
	TickMarginTop float64
}

// AxisRange returns the tick interval, and dataRange widened
// to whole multiples of it.
func AxisRange(dataRange diffdist.NumberRange) (interval float64, axis diffdist.NumberRange, err error) {
	interval = dataRange.Width() / AxisDivisions
	if !(interval > 0) || math.IsInf(interval, 0) {
		return 0, axis, fmt.Errorf("%w: can't divide %s in %d", diffdist.ErrInvalidRange, dataRange, AxisDivisions)
	}
	axis = diffdist.NumberRange{
		Min: math.Floor(dataRange.Min/interval) * interval,
		Max: math.Ceil(dataRange.Max/interval) * interval,
	}
	return interval, axis, nil
}

// ConvertToPercentage expresses the difference `value` as a
// rounded percentage of improvement over controlMean.
func ConvertToPercentage(value, controlMean float64) (int, error) {
	if controlMean == 0 || math.IsNaN(controlMean) || math.IsInf(controlMean, 0) {
		return 0, fmt.Errorf("%w: got %g", ErrDegenerateControlMean, controlMean)
	}
	percentage := math.Round(((value+controlMean)/controlMean - 1) * 100)
	if !(math.Abs(percentage) <= MaxPercentage) {
		return 0, fmt.Errorf("%w: %g is too small for a difference of %g", ErrDegenerateControlMean, controlMean, value)
	}
	return int(percentage), nil
}

// Plan computes the ticks covering dataRange.
// Ticks are evenly spread across the rectangle width, with
// their labels TickFontSize + TickMarginTop below its bottom edge.
func (p AxisTickPlanner) Plan(dataRange diffdist.NumberRange, controlMean float64) (TickPlan, error) {
	interval, axis, err := AxisRange(dataRange)
	if err != nil {
		return TickPlan{}, err
	}
	count := int(math.Round(axis.Width()/interval)) + 1

	plan := TickPlan{Interval: interval, AxisRange: axis, Ticks: make([]Tick, count)}
	y := p.Rect.Bottom() + p.TickFontSize + p.TickMarginTop
	for i := range plan.Ticks {
		value := axis.Min + float64(i)*interval
		percentage, err := ConvertToPercentage(value, controlMean)
		if err != nil {
			return TickPlan{}, err
		}
		plan.Ticks[i] = Tick{
			Value:      value,
			Percentage: percentage,
			Label:      FormatPercentageImprovement(percentage),
			X:          p.Rect.X + float64(i)*p.Rect.Width/float64(count-1),
			Y:          y,
		}
	}
	return plan, nil
}
