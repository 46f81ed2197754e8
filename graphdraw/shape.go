package graphdraw

import "image/color"

// PathStyle holds how a path is painted.
// A nil color disables the matching operation.
type PathStyle struct {
	FillColor, LineColor color.Color
	UseNonZeroWinding    bool
	Stroke               StrokeOptions
}

// Shape binds a style to a path
type Shape struct {
	Path  Path
	Style PathStyle
}

// Draw paints the shape into the driver: fill first, then stroke.
func (s Shape) Draw(d Driver) {
	filler, stroker := d.SetupDrawers(s.Style.FillColor != nil, s.Style.LineColor != nil)
	if filler != nil {
		filler.Clear()
		filler.SetWinding(s.Style.UseNonZeroWinding)
		s.Path.DrawTo(filler)
		filler.Stop(false)

		filler.SetColor(s.Style.FillColor)
		filler.Draw()
		filler.SetWinding(true) // default is true
	}

	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(s.Style.Stroke)
		s.Path.DrawTo(stroker)
		stroker.Stop(false)

		stroker.SetColor(s.Style.LineColor)
		stroker.Draw()
	}
}
