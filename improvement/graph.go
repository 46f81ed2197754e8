package improvement

import (
	"image/color"
	"log/slog"

	"github.com/benoitkugler/okgraph/diffdist"
	"github.com/benoitkugler/okgraph/graphconfig"
	"github.com/benoitkugler/okgraph/graphdraw"
)

var _ Strategy = ImprovementGraph{} // assert interface conformance

// ImprovementGraph draws the distribution of experiment - control.
type ImprovementGraph struct {
	Config graphconfig.Config
	Logger *slog.Logger // optional
}

// graphPass holds everything derived from one pair of variations.
type graphPass struct {
	dist   *diffdist.DifferenceDistribution
	mapper CoordinateMapper
	region RegionRenderer
	rect   graphdraw.Rectangle
	plan   TickPlan

	negative, positive diffdist.Samples

	negativeColor, positiveColor color.NRGBA
	centerOpacity, centerWidth   float64
}

// Prepare builds the distribution, the axis and both curve halves.
func (g ImprovementGraph) Prepare(control, experiment diffdist.Variation, rect graphdraw.Rectangle) (Pass, error) {
	dist, err := diffdist.New(control.Proportion, experiment.Proportion)
	if err != nil {
		return nil, err
	}
	style := g.Config.Style
	negativeColor, err := graphdraw.ParseHexColor(style.NegativeColor)
	if err != nil {
		return nil, err
	}
	positiveColor, err := graphdraw.ParseHexColor(style.PositiveColor)
	if err != nil {
		return nil, err
	}

	planner := AxisTickPlanner{Rect: rect, TickFontSize: g.Config.Axis.TickFontSize, TickMarginTop: g.Config.Axis.TickMarginTop}
	plan, err := planner.Plan(dist.DataRange, control.Proportion.Mean)
	if err != nil {
		return nil, err
	}

	mapper := NewCoordinateMapper(plan.AxisRange, dist.YAxisRange(), rect)
	p := &graphPass{
		dist:   dist,
		mapper: mapper,
		region: RegionRenderer{
			Mapper:           mapper,
			Rect:             rect,
			FillOpacity:      style.FillOpacity,
			OutlineOpacity:   style.OutlineOpacity,
			OutlineLineWidth: style.OutlineLineWidth,
		},
		rect:          rect,
		plan:          plan,
		negativeColor: negativeColor,
		positiveColor: positiveColor,
		centerOpacity: style.CenterLineOpacity,
		centerWidth:   style.CenterLineWidth,
	}
	p.negative, p.positive = dist.SplitAtZero()

	if g.Logger != nil {
		g.Logger.Debug("improvement distribution",
			"mean", dist.Mean, "stddev", dist.StdDev(),
			"data_range", dist.DataRange.String(), "axis_range", plan.AxisRange.String(),
			"ticks", len(plan.Ticks))
	}
	return p, nil
}

// Draw paints the loss half, then the gain half on top of it,
// then the mean marker.
func (p *graphPass) Draw(d graphdraw.Driver) {
	p.region.Render(d, p.negative, p.negativeColor)
	p.region.Render(d, p.positive, p.positiveColor)
	p.drawCenter(d)
}

func (p *graphPass) Ticks() []Tick { return p.plan.Ticks }

// CenterLineColor is the positive color when the mean difference
// is strictly positive, the negative one otherwise.
func CenterLineColor(mean float64, negative, positive color.Color, opacity float64) color.NRGBA {
	c := negative
	if mean > 0 {
		c = positive
	}
	return graphdraw.WithOpacity(c, opacity)
}

// drawCenter draws a vertical line at the mean, up to the peak.
func (p *graphPass) drawCenter(d graphdraw.Driver) {
	x := p.mapper.DataXToPixelX(p.dist.Mean)
	top := p.mapper.DataYToPixelY(p.dist.PeakDensity())
	graphdraw.Shape{
		Path: graphdraw.Polyline([]float64{x, x}, []float64{p.rect.Bottom(), top}),
		Style: graphdraw.PathStyle{
			LineColor: CenterLineColor(p.dist.Mean, p.negativeColor, p.positiveColor, p.centerOpacity),
			Stroke:    graphdraw.DefaultStrokeOptions.WithLineWidth(p.centerWidth),
		},
	}.Draw(d)
}

// Render draws the improvement graph of `variations` into `d`,
// inside the plot rectangle of `cfg`.
func Render(d graphdraw.Driver, cfg graphconfig.Config, variations []diffdist.Variation, opts ...Option) error {
	r := NewRenderer(cfg, nil, opts...)
	r.strategy = ImprovementGraph{Config: cfg, Logger: r.logger}
	r.SetVariations(variations)
	return r.Render(d)
}
