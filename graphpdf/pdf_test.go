package graphpdf

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/benoitkugler/okgraph/diffdist"
	"github.com/benoitkugler/okgraph/graphconfig"
	"github.com/benoitkugler/okgraph/graphdraw"
	"github.com/benoitkugler/okgraph/improvement"
)

func TestRenderGraph(t *testing.T) {
	cfg := graphconfig.Default()
	pdf, renderer := NewDocument(cfg.Canvas.Width, cfg.Canvas.Height)

	err := improvement.Render(renderer, cfg, []diffdist.Variation{
		{Proportion: diffdist.Proportion{Mean: 0.10, Variance: 0.0004}},
		{Proportion: diffdist.Proportion{Mean: 0.12, Variance: 0.0009}},
	})
	if err != nil {
		t.Fatalf("can't render graph: %s", err)
	}
	if pdf.Err() {
		t.Fatal(pdf.Error())
	}

	w, h := pdf.GetPageSize()
	if w != cfg.Canvas.Width || h != cfg.Canvas.Height {
		t.Errorf("unexpected page size %v x %v", w, h)
	}

	var b bytes.Buffer
	if err := Write(pdf, &b); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b.Bytes(), []byte("%PDF-")) {
		t.Error("output is not a PDF document")
	}
}

func TestPathOperators(t *testing.T) {
	pdf, renderer := NewDocument(100, 100)
	pdf.SetCompression(false)

	path := graphdraw.Polyline([]float64{10, 50, 90}, []float64{90, 10, 90})
	path.Stop(true)
	graphdraw.Shape{
		Path: path,
		Style: graphdraw.PathStyle{
			FillColor:         color.NRGBA{R: 0xff, A: 0x80},
			LineColor:         color.NRGBA{G: 0xff, A: 0xff},
			UseNonZeroWinding: true,
			Stroke:            graphdraw.DefaultStrokeOptions,
		},
	}.Draw(renderer)
	renderer.DrawText("+5%", graphdraw.ToFixed(50, 95), graphdraw.TextStyle{Size: 10, Anchor: graphdraw.AnchorMiddle})
	if pdf.Err() {
		t.Fatal(pdf.Error())
	}

	var b bytes.Buffer
	if err := Write(pdf, &b); err != nil {
		t.Fatal(err)
	}
	for _, op := range []string{" m\n", " l\n", "h\n", "f\n", "S\n", "(+5%) Tj"} {
		if !bytes.Contains(b.Bytes(), []byte(op)) {
			t.Errorf("expected operator %q in content stream", op)
		}
	}
}
