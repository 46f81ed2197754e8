package graphdraw

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseHexColor parses #rgb or #rrggbb colors (the # is optional).
func ParseHexColor(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %s", hex, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// HexToTransparentRGB returns the color `hex` with the given opacity,
// clamped to [0, 1].
func HexToTransparentRGB(hex string, opacity float64) (color.NRGBA, error) {
	c, err := ParseHexColor(hex)
	if err != nil {
		return c, err
	}
	return WithOpacity(c, opacity), nil
}

// WithOpacity replaces the alpha channel of c.
func WithOpacity(c color.Color, opacity float64) color.NRGBA {
	out := ToNRGBA(c)
	opacity = math.Max(0, math.Min(1, opacity))
	out.A = uint8(math.Round(opacity * 0xff))
	return out
}

// ToNRGBA converts any color to its non premultiplied form.
func ToNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
