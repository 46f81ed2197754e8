// Implements a vector backend writing graphs as SVG documents.
// Every filled or stroked path becomes a <path> element, and
// labels become <text> elements, in drawing order.
package graphsvg

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/benoitkugler/okgraph/graphdraw"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ graphdraw.Driver  = (*Renderer)(nil)
	_ graphdraw.Filler  = (*filler)(nil)
	_ graphdraw.Stroker = (*stroker)(nil)
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	// FontFamily is used for every label.
	FontFamily = "sans-serif"
)

// Path is a <path> element.
type Path struct {
	XMLName        xml.Name `xml:"path"`
	D              string   `xml:"d,attr"`
	Fill           string   `xml:"fill,attr"`
	FillOpacity    string   `xml:"fill-opacity,attr,omitempty"`
	FillRule       string   `xml:"fill-rule,attr,omitempty"`
	Stroke         string   `xml:"stroke,attr,omitempty"`
	StrokeOpacity  string   `xml:"stroke-opacity,attr,omitempty"`
	StrokeWidth    string   `xml:"stroke-width,attr,omitempty"`
	StrokeLinejoin string   `xml:"stroke-linejoin,attr,omitempty"`
	StrokeLinecap  string   `xml:"stroke-linecap,attr,omitempty"`
}

// Text is a <text> element.
type Text struct {
	XMLName     xml.Name `xml:"text"`
	X           string   `xml:"x,attr"`
	Y           string   `xml:"y,attr"`
	Fill        string   `xml:"fill,attr"`
	FillOpacity string   `xml:"fill-opacity,attr,omitempty"`
	FontFamily  string   `xml:"font-family,attr"`
	FontSize    string   `xml:"font-size,attr"`
	TextAnchor  string   `xml:"text-anchor,attr"`
	Content     string   `xml:",chardata"`
}

// Renderer accumulates the elements of one document.
type Renderer struct {
	width, height float64
	elements      []interface{} // Path or Text
}

type pather struct {
	r     *Renderer
	path  graphdraw.Path
	color color.NRGBA
}

type filler struct {
	pather
	useNonZeroWinding bool
}

type stroker struct {
	pather
	options graphdraw.StrokeOptions
}

// NewRenderer starts an empty document of the given size, in pixels.
func NewRenderer(width, height float64) *Renderer {
	return &Renderer{width: width, height: height}
}

// Elements returns the drawn elements, as Path or Text values.
func (r *Renderer) Elements() []interface{} { return r.elements }

func (r *Renderer) SetupDrawers(willFill, willStroke bool) (f graphdraw.Filler, s graphdraw.Stroker) {
	if willFill {
		f = &filler{pather: pather{r: r}, useNonZeroWinding: true}
	}
	if willStroke {
		s = &stroker{pather: pather{r: r}, options: graphdraw.DefaultStrokeOptions}
	}
	return f, s
}

func (r *Renderer) DrawText(text string, at fixed.Point26_6, style graphdraw.TextStyle) {
	if !(style.Size > 0) {
		return
	}
	c := color.NRGBA{A: 0xff}
	if style.Color != nil {
		c = graphdraw.ToNRGBA(style.Color)
	}
	x, y := graphdraw.FromFixed(at)
	r.elements = append(r.elements, Text{
		X:           formatFloat(x),
		Y:           formatFloat(y),
		Fill:        rgb(c),
		FillOpacity: opacity(c),
		FontFamily:  FontFamily,
		FontSize:    formatFloat(style.Size),
		TextAnchor:  style.Anchor.String(),
		Content:     text,
	})
}

// WriteTo writes the complete SVG document to `w`.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc := xml.NewEncoder(cw)
	enc.Indent("", "  ")
	root := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns"}, Value: svgNamespace},
			{Name: xml.Name{Local: "width"}, Value: formatFloat(r.width)},
			{Name: xml.Name{Local: "height"}, Value: formatFloat(r.height)},
			{Name: xml.Name{Local: "viewBox"}, Value: fmt.Sprintf("0 0 %s %s", formatFloat(r.width), formatFloat(r.height))},
		},
	}
	if err := enc.EncodeToken(root); err != nil {
		return cw.n, err
	}
	for _, elem := range r.elements {
		if err := enc.Encode(elem); err != nil {
			return cw.n, fmt.Errorf("encoding svg element: %s", err)
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return cw.n, err
	}
	err := enc.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// opacity is empty for opaque colors
func opacity(c color.NRGBA) string {
	if c.A == 0xff {
		return ""
	}
	return strconv.FormatFloat(float64(c.A)/0xff, 'f', 3, 64)
}

func (p *pather) Clear() { p.path = nil }

func (p *pather) Start(a fixed.Point26_6) { p.path.Start(a) }

func (p *pather) Line(b fixed.Point26_6) { p.path.Line(b) }

func (p *pather) Stop(closeLoop bool) { p.path.Stop(closeLoop) }

func (p *pather) SetColor(c color.Color) { p.color = graphdraw.ToNRGBA(c) }

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (f *filler) Draw() {
	if len(f.path) == 0 {
		return
	}
	elem := Path{
		D:           f.path.ToSVGPath(),
		Fill:        rgb(f.color),
		FillOpacity: opacity(f.color),
	}
	if !f.useNonZeroWinding {
		elem.FillRule = "evenodd"
	}
	f.r.elements = append(f.r.elements, elem)
}

func (s *stroker) SetStrokeOptions(options graphdraw.StrokeOptions) {
	s.options = options
}

func (s *stroker) Draw() {
	if len(s.path) == 0 {
		return
	}
	s.r.elements = append(s.r.elements, Path{
		D:              s.path.ToSVGPath(),
		Fill:           "none",
		Stroke:         rgb(s.color),
		StrokeOpacity:  opacity(s.color),
		StrokeWidth:    formatFloat(float64(s.options.LineWidth) / 64),
		StrokeLinejoin: s.options.LineJoin.String(),
		StrokeLinecap:  s.options.LineCap.String(),
	})
}
