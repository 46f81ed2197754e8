package improvement

import (
	"testing"

	"github.com/benoitkugler/okgraph/diffdist"
	"github.com/benoitkugler/okgraph/graphdraw"
)

func TestCoordinateMapperEndpoints(t *testing.T) {
	m := NewCoordinateMapper(
		diffdist.NumberRange{Min: -3, Max: 5},
		diffdist.NumberRange{Min: 0, Max: 2},
		graphdraw.Rectangle{X: 0, Y: 10, Width: 100, Height: 50},
	)
	if got := m.DataXToPixelX(-3); got != 0 {
		t.Errorf("expected pixel x 0, got %v", got)
	}
	if got := m.DataXToPixelX(5); got != 100 {
		t.Errorf("expected pixel x 100, got %v", got)
	}
	if got := m.DataXToPixelX(1); got != 50 {
		t.Errorf("expected pixel x 50, got %v", got)
	}
	if got := m.DataYToPixelY(0); got != 60 {
		t.Errorf("expected pixel y 60 (bottom), got %v", got)
	}
	if got := m.DataYToPixelY(2); got != 10 {
		t.Errorf("expected pixel y 10 (top), got %v", got)
	}
	if got := m.DataYToPixelY(1); got != 35 {
		t.Errorf("expected pixel y 35, got %v", got)
	}
}

func TestCoordinateMapperMonotonic(t *testing.T) {
	rect := graphdraw.Rectangle{X: 30, Y: 20, Width: 540, Height: 240}
	m := NewCoordinateMapper(diffdist.NumberRange{Min: -0.17, Max: 0.17}, diffdist.NumberRange{Min: 0, Max: 11}, rect)
	prevX, prevY := m.Point(-0.17, 0)
	if prevX != rect.X || prevY != rect.Bottom() {
		t.Errorf("expected bottom left corner, got (%v, %v)", prevX, prevY)
	}
	for i := 1; i <= 100; i++ {
		x, y := m.Point(-0.17+0.34*float64(i)/100, 11*float64(i)/100)
		if x <= prevX {
			t.Fatalf("pixel x not increasing at step %d", i)
		}
		if y >= prevY {
			t.Fatalf("pixel y not decreasing at step %d", i)
		}
		prevX, prevY = x, y
	}
}
