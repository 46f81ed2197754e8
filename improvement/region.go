package improvement

import (
	"image/color"

	"github.com/benoitkugler/okgraph/diffdist"
	"github.com/benoitkugler/okgraph/graphdraw"
)

// RegionRenderer draws one half of the curve: a translucent area
// anchored to the bottom of the rectangle, and its outline.
type RegionRenderer struct {
	Mapper CoordinateMapper
	Rect   graphdraw.Rectangle

	FillOpacity      float64
	OutlineOpacity   float64
	OutlineLineWidth float64
}

// FillPath returns the closed area under the samples:
// from the bottom at the smallest x, through every sample,
// back to the bottom at the largest x.
func (r RegionRenderer) FillPath(s diffdist.Samples) graphdraw.Path {
	minX, maxX := s.Bounds()
	bottom := r.Rect.Bottom()

	var p graphdraw.Path
	p.Start(graphdraw.ToFixed(r.Mapper.DataXToPixelX(minX), bottom))
	for i, x := range s.Xs {
		p.Line(graphdraw.ToFixed(r.Mapper.Point(x, s.Ys[i])))
	}
	p.Line(graphdraw.ToFixed(r.Mapper.DataXToPixelX(maxX), bottom))
	p.Stop(true)
	return p
}

// OutlinePath returns the open path through the samples.
func (r RegionRenderer) OutlinePath(s diffdist.Samples) graphdraw.Path {
	xs, ys := make([]float64, len(s.Xs)), make([]float64, len(s.Xs))
	for i, x := range s.Xs {
		xs[i], ys[i] = r.Mapper.Point(x, s.Ys[i])
	}
	return graphdraw.Polyline(xs, ys)
}

// Fill paints the area under the samples with col, at FillOpacity.
func (r RegionRenderer) Fill(d graphdraw.Driver, s diffdist.Samples, col color.Color) {
	graphdraw.Shape{
		Path:  r.FillPath(s),
		Style: graphdraw.PathStyle{FillColor: graphdraw.WithOpacity(col, r.FillOpacity), UseNonZeroWinding: true},
	}.Draw(d)
}

// Stroke outlines the samples with col, at OutlineOpacity.
func (r RegionRenderer) Stroke(d graphdraw.Driver, s diffdist.Samples, col color.Color) {
	graphdraw.Shape{
		Path: r.OutlinePath(s),
		Style: graphdraw.PathStyle{
			LineColor: graphdraw.WithOpacity(col, r.OutlineOpacity),
			Stroke:    graphdraw.DefaultStrokeOptions.WithLineWidth(r.OutlineLineWidth),
		},
	}.Draw(d)
}

// Render fills then outlines the samples. Empty samples are ignored.
func (r RegionRenderer) Render(d graphdraw.Driver, s diffdist.Samples, col color.Color) {
	if s.Len() == 0 {
		return
	}
	r.Fill(d, s, col)
	r.Stroke(d, s, col)
}
