package graphraster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/benoitkugler/okgraph/diffdist"
	"github.com/benoitkugler/okgraph/graphconfig"
	"github.com/benoitkugler/okgraph/graphdraw"
	"github.com/benoitkugler/okgraph/improvement"
	"golang.org/x/image/font"
)

func toPngBytes(m image.Image) ([]byte, error) {
	var b bytes.Buffer
	err := png.Encode(&b, m)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func renderGraph(t *testing.T, control, experiment diffdist.Proportion) *Renderer {
	t.Helper()
	cfg := graphconfig.Default()
	_, rd, err := NewImage(int(cfg.Canvas.Width), int(cfg.Canvas.Height))
	if err != nil {
		t.Fatalf("can't create renderer: %s", err)
	}
	t.Cleanup(func() { rd.Close() })

	err = improvement.Render(rd, cfg, []diffdist.Variation{{Proportion: control}, {Proportion: experiment}})
	if err != nil {
		t.Fatalf("can't render graph: %s", err)
	}
	return rd
}

func TestRasterGraph(t *testing.T) {
	rd := renderGraph(t,
		diffdist.Proportion{Mean: 0.10, Variance: 0.0004},
		diffdist.Proportion{Mean: 0.12, Variance: 0.0009},
	)
	img := rd.Image()

	if c := img.RGBAAt(0, 0); c.R != 0xff || c.G != 0xff || c.B != 0xff {
		t.Errorf("expected white background, got %v", c)
	}
	// inside the gain region
	if c := img.RGBAAt(400, 250); !(c.G > c.R) {
		t.Errorf("expected a green tint, got %v", c)
	}
	// inside the loss region
	if c := img.RGBAAt(250, 255); !(c.R > c.G) {
		t.Errorf("expected a red tint, got %v", c)
	}

	b, err := toPngBytes(img)
	if err != nil {
		t.Fatalf("can't encode image: %s", err)
	}
	var out bytes.Buffer
	if err := rd.WritePNG(&out); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, out.Bytes()) {
		t.Error("WritePNG should encode the target image")
	}
	decoded, err := png.Decode(&out)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 600 || decoded.Bounds().Dy() != 300 {
		t.Errorf("unexpected image size %v", decoded.Bounds())
	}
}

func TestRasterText(t *testing.T) {
	_, rd, err := NewImage(100, 40)
	if err != nil {
		t.Fatal(err)
	}
	defer rd.Close()

	rd.DrawText("+12%", graphdraw.ToFixed(50, 30), graphdraw.TextStyle{Size: 16, Anchor: graphdraw.AnchorMiddle})
	img := rd.Image()
	var left, right int
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			if x < 50 {
				left++
			} else {
				right++
			}
		}
	}
	if left == 0 || right == 0 {
		t.Errorf("centered text should cover both sides of its anchor, got %d and %d pixels", left, right)
	}

	rd.DrawText("x", graphdraw.ToFixed(10, 10), graphdraw.TextStyle{Size: 0})
	if len(rd.faces) != 1 {
		t.Error("labels without a font size should be skipped")
	}
}

func TestRasterTextError(t *testing.T) {
	_, rd, err := NewImage(100, 40)
	if err != nil {
		t.Fatal(err)
	}
	errFace := errors.New("no face")
	rd.newFace = func(size float64) (font.Face, error) { return nil, errFace }

	rd.DrawText("+12%", graphdraw.ToFixed(50, 30), graphdraw.TextStyle{Size: 16})
	rd.DrawText("-3%", graphdraw.ToFixed(50, 30), graphdraw.TextStyle{Size: 12})
	if !errors.Is(rd.Err(), errFace) {
		t.Fatalf("expected the face error, got %v", rd.Err())
	}

	var b bytes.Buffer
	if err := rd.WritePNG(&b); !errors.Is(err, errFace) {
		t.Errorf("WritePNG should report the text error, got %v", err)
	}
	if b.Len() != 0 {
		t.Error("nothing should be encoded after a text error")
	}
	if err := rd.Close(); !errors.Is(err, errFace) {
		t.Errorf("Close should report the text error, got %v", err)
	}
}
