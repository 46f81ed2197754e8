package improvement

import (
	"github.com/benoitkugler/okgraph/diffdist"
	"github.com/benoitkugler/okgraph/graphconfig"
)

// Summary is the numeric content of a graph, without drawing it.
type Summary struct {
	Control, Experiment      diffdist.Variation
	Mean, StdDev             float64
	ProbabilityOfImprovement float64
	// Improvement is the mean difference relative to the control mean,
	// as a rounded percentage.
	Improvement int
	Axis        TickPlan
}

// Summarize derives the distribution and the ticks of the graph
// `Render` would draw for the same arguments.
func Summarize(cfg graphconfig.Config, variations []diffdist.Variation) (Summary, error) {
	control, experiment, err := diffdist.SplitRoles(variations)
	if err != nil {
		return Summary{}, err
	}
	dist, err := diffdist.New(control.Proportion, experiment.Proportion)
	if err != nil {
		return Summary{}, err
	}
	planner := AxisTickPlanner{Rect: cfg.PlotRect(), TickFontSize: cfg.Axis.TickFontSize, TickMarginTop: cfg.Axis.TickMarginTop}
	plan, err := planner.Plan(dist.DataRange, control.Proportion.Mean)
	if err != nil {
		return Summary{}, err
	}
	improvement, err := ConvertToPercentage(dist.Mean, control.Proportion.Mean)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Control:                  control,
		Experiment:               experiment,
		Mean:                     dist.Mean,
		StdDev:                   dist.StdDev(),
		ProbabilityOfImprovement: dist.ProbabilityOfImprovement(),
		Improvement:              improvement,
		Axis:                     plan,
	}, nil
}
