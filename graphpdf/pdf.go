// Implements a PDF backend to render graphs,
// by wrapping github.com/jung-kurt/gofpdf.
// One pixel of the graph is one PDF point.
package graphpdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/okgraph/graphdraw"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ graphdraw.Driver  = Renderer{}
	_ graphdraw.Filler  = (*filler)(nil)
	_ graphdraw.Stroker = (*stroker)(nil)
)

// LabelFont is the core font used for tick labels.
const LabelFont = "Helvetica"

type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the common path commands,
// shared by the filler and the stroker.
// PDF forbids color changes inside a path, so the path
// is only written when drawn.
type pather struct {
	pdf   *gofpdf.Fpdf
	path  graphdraw.Path
	color color.NRGBA
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation
type stroker struct {
	pather
	options graphdraw.StrokeOptions
}

// NewRenderer return a renderer which will
// write to the current page of `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

// NewDocument starts a one page document of the given size, in points,
// and returns a renderer writing to it.
func NewDocument(width, height float64) (*gofpdf.Fpdf, Renderer) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf, NewRenderer(pdf)
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (f graphdraw.Filler, s graphdraw.Stroker) {
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, useNonZeroWinding: true}
	}
	if willStroke {
		s = &stroker{pather: pather{pdf: r.pdf}, options: graphdraw.DefaultStrokeOptions}
	}
	return f, s
}

func (r Renderer) DrawText(text string, at fixed.Point26_6, style graphdraw.TextStyle) {
	if !(style.Size > 0) {
		return
	}
	c := color.NRGBA{A: 0xff}
	if style.Color != nil {
		c = graphdraw.ToNRGBA(style.Color)
	}
	r.pdf.SetFont(LabelFont, "", style.Size)
	r.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	r.pdf.SetAlpha(float64(c.A)/0xff, "Normal")

	x, y := graphdraw.FromFixed(at)
	switch style.Anchor {
	case graphdraw.AnchorMiddle:
		x -= r.pdf.GetStringWidth(text) / 2
	case graphdraw.AnchorEnd:
		x -= r.pdf.GetStringWidth(text)
	}
	r.pdf.Text(x, y, text)
}

// Write outputs the document and closes it.
func Write(pdf *gofpdf.Fpdf, w io.Writer) error {
	return pdf.Output(w)
}

func (p *pather) Clear() { p.path = nil }

func (p *pather) Start(a fixed.Point26_6) { p.path.Start(a) }

func (p *pather) Line(b fixed.Point26_6) { p.path.Line(b) }

func (p *pather) Stop(closeLoop bool) { p.path.Stop(closeLoop) }

func (p *pather) SetColor(c color.Color) { p.color = graphdraw.ToNRGBA(c) }

// writePath emits the accumulated path operators
func (p *pather) writePath() {
	for _, op := range p.path {
		switch op := op.(type) {
		case graphdraw.MoveTo:
			p.pdf.MoveTo(graphdraw.FromFixed(fixed.Point26_6(op)))
		case graphdraw.LineTo:
			p.pdf.LineTo(graphdraw.FromFixed(fixed.Point26_6(op)))
		case graphdraw.Close:
			p.pdf.ClosePath()
		}
	}
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (f *filler) Draw() {
	if len(f.path) == 0 {
		return
	}
	f.pdf.SetFillColor(int(f.color.R), int(f.color.G), int(f.color.B))
	f.pdf.SetAlpha(float64(f.color.A)/0xff, "Normal")
	f.writePath()
	styleStr := "F*"
	if f.useNonZeroWinding {
		styleStr = "F"
	}
	f.pdf.DrawPath(styleStr)
}

func (s *stroker) SetStrokeOptions(options graphdraw.StrokeOptions) {
	s.options = options
}

func (s *stroker) Draw() {
	if len(s.path) == 0 {
		return
	}
	s.pdf.SetDrawColor(int(s.color.R), int(s.color.G), int(s.color.B))
	s.pdf.SetAlpha(float64(s.color.A)/0xff, "Normal")
	s.pdf.SetLineWidth(float64(s.options.LineWidth) / 64)
	s.pdf.SetLineCapStyle(s.options.LineCap.String())
	s.pdf.SetLineJoinStyle(s.options.LineJoin.String())
	s.writePath()
	s.pdf.DrawPath("D")
}
