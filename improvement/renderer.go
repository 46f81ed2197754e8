// Renders the distribution of the improvement of an experiment
// over its control, split into a loss and a gain region, with
// a mean marker and percentage labeled ticks.
//
// A Renderer owns the generic parts of a graph (rectangle,
// variations, background, axis) and delegates the curve to a Strategy.
package improvement

import (
	"image/color"
	"log/slog"

	"github.com/benoitkugler/okgraph/diffdist"
	"github.com/benoitkugler/okgraph/graphconfig"
	"github.com/benoitkugler/okgraph/graphdraw"
)

// Strategy derives everything a graph needs from the two variations.
// Prepare must not draw anything, so that a failing render
// leaves the surface untouched.
type Strategy interface {
	Prepare(control, experiment diffdist.Variation, rect graphdraw.Rectangle) (Pass, error)
}

// Pass is one prepared render of a Strategy.
type Pass interface {
	// Draw paints the graph content inside the rectangle.
	Draw(d graphdraw.Driver)
	// Ticks returns the labels of the x axis.
	Ticks() []Tick
}

// Renderer runs the render loop of a graph.
// It is not safe for concurrent use.
type Renderer struct {
	cfg        graphconfig.Config
	strategy   Strategy
	rect       graphdraw.Rectangle
	variations []diffdist.Variation
	logger     *slog.Logger
}

type Option func(*Renderer)

// WithLogger sets the logger receiving debug records about each pass.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

// WithRect overrides the plot rectangle derived from the config.
func WithRect(rect graphdraw.Rectangle) Option {
	return func(r *Renderer) { r.rect = rect }
}

// NewRenderer returns a renderer drawing with `strategy` inside
// the plot rectangle of `cfg`.
func NewRenderer(cfg graphconfig.Config, strategy Strategy, opts ...Option) *Renderer {
	r := &Renderer{cfg: cfg, strategy: strategy, rect: cfg.PlotRect(), logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) SetRect(rect graphdraw.Rectangle) { r.rect = rect }

func (r *Renderer) Rect() graphdraw.Rectangle { return r.rect }

// SetVariations stores the variations used by the next Render.
func (r *Renderer) SetVariations(variations []diffdist.Variation) {
	r.variations = append(r.variations[:0], variations...)
}

// Roles returns the control and experiment variations.
func (r *Renderer) Roles() (control, experiment diffdist.Variation, err error) {
	return diffdist.SplitRoles(r.variations)
}

// Render draws the background, the strategy content and the axis into `d`.
// The driver is only used for the duration of the call.
// On error, nothing is drawn.
func (r *Renderer) Render(d graphdraw.Driver) error {
	control, experiment, err := r.Roles()
	if err != nil {
		return err
	}
	pass, err := r.strategy.Prepare(control, experiment, r.rect)
	if err != nil {
		return err
	}
	axisColor, err := graphdraw.ParseHexColor(r.cfg.Axis.Color)
	if err != nil {
		return err
	}
	if err := r.renderBackground(d); err != nil {
		return err
	}
	pass.Draw(d)
	r.renderAxis(d, pass.Ticks(), axisColor)
	r.logger.Debug("graph rendered", "control", control.Name, "experiment", experiment.Name)
	return nil
}

func (r *Renderer) renderBackground(d graphdraw.Driver) error {
	if r.cfg.Style.BackgroundColor == "" {
		return nil
	}
	bg, err := graphdraw.ParseHexColor(r.cfg.Style.BackgroundColor)
	if err != nil {
		return err
	}
	w, h := r.cfg.Canvas.Width, r.cfg.Canvas.Height
	var p graphdraw.Path
	p.Start(graphdraw.ToFixed(0, 0))
	p.Line(graphdraw.ToFixed(w, 0))
	p.Line(graphdraw.ToFixed(w, h))
	p.Line(graphdraw.ToFixed(0, h))
	p.Stop(true)
	graphdraw.Shape{Path: p, Style: graphdraw.PathStyle{FillColor: bg, UseNonZeroWinding: true}}.Draw(d)
	return nil
}

// renderAxis draws the base line of the rectangle, and for each tick
// a short mark and its centered label.
func (r *Renderer) renderAxis(d graphdraw.Driver, ticks []Tick, col color.NRGBA) {
	bottom := r.rect.Bottom()
	style := graphdraw.PathStyle{LineColor: col, Stroke: graphdraw.DefaultStrokeOptions}

	baseLine := graphdraw.Polyline([]float64{r.rect.X, r.rect.Right()}, []float64{bottom, bottom})
	graphdraw.Shape{Path: baseLine, Style: style}.Draw(d)

	textStyle := graphdraw.TextStyle{Color: col, Size: r.cfg.Axis.TickFontSize, Anchor: graphdraw.AnchorMiddle}
	for _, tick := range ticks {
		if r.cfg.Axis.TickLength > 0 {
			mark := graphdraw.Polyline([]float64{tick.X, tick.X}, []float64{bottom, bottom + r.cfg.Axis.TickLength})
			graphdraw.Shape{Path: mark, Style: style}.Draw(d)
		}
		d.DrawText(tick.Label, graphdraw.ToFixed(tick.X, tick.Y), textStyle)
	}
}
