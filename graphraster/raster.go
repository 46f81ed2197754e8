// Implements a raster backend to render graphs,
// by wrapping rasterx. Labels are drawn with the Go fonts.
package graphraster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/benoitkugler/okgraph/graphdraw"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var _ graphdraw.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	img    *image.RGBA
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance

	font    *opentype.Font
	faces   map[float64]font.Face // by size
	newFace func(size float64) (font.Face, error)

	err error // first text error
}

// filler adapts rasterx.Filler to graphdraw.Filler
type filler struct{ *rasterx.Filler }

// stroker adapts rasterx.Dasher to graphdraw.Stroker
type stroker struct{ *rasterx.Dasher }

// NewRenderer returns a renderer drawing into `img`.
// In addition to rasterizing lines like a Scanner,
// it draws text with the Go Regular font.
func NewRenderer(img *image.RGBA) (*Renderer, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing Go Regular font: %s", err)
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	rd := &Renderer{
		img:    img,
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
		font:   fnt,
		faces:  make(map[float64]font.Face),
	}
	rd.newFace = rd.openFace
	return rd, nil
}

// NewImage allocates a transparent image of the given size
// and returns a renderer drawing into it.
func NewImage(width, height int) (*image.RGBA, *Renderer, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rd, err := NewRenderer(img)
	return img, rd, err
}

// Image returns the target image.
func (rd *Renderer) Image() *image.RGBA { return rd.img }

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f graphdraw.Filler, s graphdraw.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

func (f filler) SetColor(c color.Color) { f.Filler.SetColor(c) }

func (s stroker) SetColor(c color.Color) { s.Dasher.SetColor(c) }

var (
	joinToJoin = [...]rasterx.JoinMode{
		graphdraw.Round: rasterx.Round,
		graphdraw.Bevel: rasterx.Bevel,
		graphdraw.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		graphdraw.ButtCap:   rasterx.ButtCap,
		graphdraw.SquareCap: rasterx.SquareCap,
		graphdraw.RoundCap:  rasterx.RoundCap,
	}
)

func (s stroker) SetStrokeOptions(options graphdraw.StrokeOptions) {
	capFn := capToFunc[options.LineCap]
	s.SetStroke(
		options.LineWidth, options.MiterLimit, capFn, capFn,
		rasterx.RoundGap, joinToJoin[options.LineJoin], nil, 0,
	)
}

func (rd *Renderer) openFace(size float64) (font.Face, error) {
	return opentype.NewFace(rd.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func (rd *Renderer) face(size float64) (font.Face, error) {
	if face, ok := rd.faces[size]; ok {
		return face, nil
	}
	face, err := rd.newFace(size)
	if err != nil {
		return nil, err
	}
	rd.faces[size] = face
	return face, nil
}

// DrawText draws the label with its baseline at `at.Y`.
// Labels without a positive font size are skipped.
// A label whose font face can't be loaded is not drawn, and the
// error is reported by Err, WritePNG and Close.
func (rd *Renderer) DrawText(text string, at fixed.Point26_6, style graphdraw.TextStyle) {
	if !(style.Size > 0) {
		return
	}
	face, err := rd.face(style.Size)
	if err != nil {
		if rd.err == nil {
			rd.err = fmt.Errorf("loading font face of size %g for %q: %w", style.Size, text, err)
		}
		return
	}
	switch style.Anchor {
	case graphdraw.AnchorMiddle:
		at.X -= font.MeasureString(face, text) / 2
	case graphdraw.AnchorEnd:
		at.X -= font.MeasureString(face, text)
	}
	col := style.Color
	if col == nil {
		col = color.Black
	}
	d := font.Drawer{
		Dst:  rd.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  at,
	}
	d.DrawString(text)
}

// Err returns the first error met while drawing text.
func (rd *Renderer) Err() error { return rd.err }

// Close releases the font faces, and returns Err.
func (rd *Renderer) Close() error {
	for size, face := range rd.faces {
		face.Close()
		delete(rd.faces, size)
	}
	return rd.err
}

// WritePNG encodes the target image, unless a label failed to draw.
func (rd *Renderer) WritePNG(w io.Writer) error {
	if rd.err != nil {
		return rd.err
	}
	return png.Encode(w, rd.img)
}
