package graphdraw

import (
	"image/color"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestParseHexColor(t *testing.T) {
	for hex, exp := range map[string]color.NRGBA{
		"#ff0000": {R: 0xff, A: 0xff},
		"#22B722": {R: 0x22, G: 0xb7, B: 0x22, A: 0xff},
		"fff":     {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		" #0a0 ":  {G: 0xaa, A: 0xff},
	} {
		got, err := ParseHexColor(hex)
		if err != nil {
			t.Fatal(err)
		}
		if got != exp {
			t.Errorf("%q: expected %v, got %v", hex, exp, got)
		}
	}

	for _, hex := range []string{"", "#ff00", "#gggggg", "red"} {
		if _, err := ParseHexColor(hex); err == nil {
			t.Errorf("%q: expected error", hex)
		}
	}
}

func TestHexToTransparentRGB(t *testing.T) {
	c, err := HexToTransparentRGB("#22B722", 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.NRGBA{R: 0x22, G: 0xb7, B: 0x22, A: 128}) {
		t.Errorf("unexpected color %v", c)
	}
	if c, _ := HexToTransparentRGB("#000000", 2); c.A != 0xff {
		t.Errorf("opacity should be clamped, got alpha %d", c.A)
	}
	if _, err := HexToTransparentRGB("#12", 0.5); err == nil {
		t.Error("expected error for invalid color")
	}
}

func TestPathToSVG(t *testing.T) {
	p := Polyline([]float64{0, 10, 20}, []float64{5, 0, 5})
	p.Stop(true)
	if got, exp := p.ToSVGPath(), "M0.000,5.000 L10.000,0.000 L20.000,5.000 Z"; got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
	p.Clear()
	if len(p) != 0 {
		t.Error("path should be empty after Clear")
	}
}

func TestShapeDraw(t *testing.T) {
	var rec Recorder
	red := color.NRGBA{R: 0xff, A: 0x80}
	path := Polyline([]float64{0, 1, 2}, []float64{0, 1, 0})
	path.Stop(true)
	Shape{
		Path: path,
		Style: PathStyle{
			FillColor:         red,
			LineColor:         color.Black,
			UseNonZeroWinding: true,
			Stroke:            DefaultStrokeOptions.WithLineWidth(2),
		},
	}.Draw(&rec)

	if len(rec.Ops) != 2 {
		t.Fatalf("expected fill and stroke, got %d operations", len(rec.Ops))
	}
	fill, stroke := rec.Ops[0], rec.Ops[1]
	if fill.Kind != OpFill || stroke.Kind != OpStroke {
		t.Fatalf("expected fill then stroke, got %s then %s", fill.Kind, stroke.Kind)
	}
	if fill.Color != red || stroke.Color != (color.NRGBA{A: 0xff}) {
		t.Errorf("unexpected colors %v %v", fill.Color, stroke.Color)
	}
	if stroke.Stroke.LineWidth != fixed.I(2) {
		t.Errorf("unexpected line width %v", stroke.Stroke.LineWidth)
	}
	if fill.Path.String() != path.String() {
		t.Errorf("expected path %s, got %s", path, fill.Path)
	}

	rec.Ops = nil
	Shape{Path: path, Style: PathStyle{LineColor: red}}.Draw(&rec)
	if len(rec.Filter(OpFill)) != 0 || len(rec.Filter(OpStroke)) != 1 {
		t.Error("a nil fill color should disable filling")
	}
}

func TestRectangle(t *testing.T) {
	r := Rectangle{X: 10, Y: 20, Width: 100, Height: 50}
	if r.Right() != 110 || r.Bottom() != 70 {
		t.Errorf("unexpected edges %v %v", r.Right(), r.Bottom())
	}
	if r.Empty() || !(Rectangle{Width: 10}).Empty() {
		t.Error("unexpected Empty result")
	}
	x, y := FromFixed(ToFixed(1.5, -2.25))
	if x != 1.5 || y != -2.25 {
		t.Errorf("fixed conversion is not exact: %v %v", x, y)
	}
}

func TestPathBounds(t *testing.T) {
	if b := (Path{}).Bounds(); b != (fixed.Rectangle26_6{}) {
		t.Errorf("expected empty bounds, got %v", b)
	}
	p := Polyline([]float64{10, 4, 30}, []float64{5, 20, -2})
	p.Stop(true)
	exp := fixed.Rectangle26_6{Min: ToFixed(4, -2), Max: ToFixed(30, 20)}
	if b := p.Bounds(); b != exp {
		t.Errorf("expected %v, got %v", exp, b)
	}
}
