package graphdraw

import "golang.org/x/image/math/fixed"

// Rectangle is a drawing area, in pixel space.
type Rectangle struct {
	X, Y, Width, Height float64
}

func (r Rectangle) Right() float64 { return r.X + r.Width }

func (r Rectangle) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the rectangle has no area.
func (r Rectangle) Empty() bool { return !(r.Width > 0 && r.Height > 0) }

func FloatToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

// ToFixed converts pixel coordinates to a fixed point.
func ToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: FloatToFixed(x), Y: FloatToFixed(y)}
}

// FromFixed is the inverse of ToFixed.
func FromFixed(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}
