package graphdraw

import "golang.org/x/image/math/fixed"

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Round JoinMode = iota
	Bevel
	Miter
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "round"
	case Bevel:
		return "bevel"
	case Miter:
		return "miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "butt"
	case SquareCap:
		return "square"
	case RoundCap:
		return "round"
	default:
		return "<unknown CapMode>"
	}
}

type StrokeOptions struct {
	LineWidth  fixed.Int26_6 // width of the line
	MiterLimit fixed.Int26_6 // cutoff value for the Miter join mode
	LineJoin   JoinMode
	LineCap    CapMode
}

// DefaultStrokeOptions uses round joins, which keeps
// sampled curves smooth.
var DefaultStrokeOptions = StrokeOptions{
	LineWidth:  fixed.I(1),
	MiterLimit: fixed.I(4),
	LineJoin:   Round,
	LineCap:    ButtCap,
}

// WithLineWidth returns a copy of o using the given width, in pixels.
func (o StrokeOptions) WithLineWidth(width float64) StrokeOptions {
	o.LineWidth = FloatToFixed(width)
	return o
}
