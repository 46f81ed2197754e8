package improvement

import (
	"github.com/aclements/go-moremath/scale"
	"github.com/benoitkugler/okgraph/diffdist"
	"github.com/benoitkugler/okgraph/graphdraw"
)

// CoordinateMapper is the affine transform from distribution data space
// (difference, density) to the pixel space of a rectangle.
// Larger densities are drawn higher, that is with smaller pixel y.
type CoordinateMapper struct {
	x, y scale.QQ
}

// NewCoordinateMapper maps xRange onto [rect.X, rect.Right()]
// and yRange onto [rect.Bottom(), rect.Y].
func NewCoordinateMapper(xRange, yRange diffdist.NumberRange, rect graphdraw.Rectangle) CoordinateMapper {
	return CoordinateMapper{
		x: scale.QQ{
			Src:  &scale.Linear{Min: xRange.Min, Max: xRange.Max},
			Dest: &scale.Linear{Min: rect.X, Max: rect.Right()},
		},
		y: scale.QQ{
			Src:  &scale.Linear{Min: yRange.Min, Max: yRange.Max},
			Dest: &scale.Linear{Min: rect.Bottom(), Max: rect.Y},
		},
	}
}

func (m CoordinateMapper) DataXToPixelX(x float64) float64 { return m.x.Map(x) }

func (m CoordinateMapper) DataYToPixelY(y float64) float64 { return m.y.Map(y) }

// Point maps a data point to its pixel location.
func (m CoordinateMapper) Point(x, y float64) (px, py float64) {
	return m.DataXToPixelX(x), m.DataYToPixelY(y)
}
