package graphdraw

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// This file defines the basic path structure

// Operation groups the different path commands
type Operation interface {
	// add itself on the drawer `d`
	drawTo(d Drawer)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type Close struct{}

func (op MoveTo) drawTo(d Drawer) { d.Start(fixed.Point26_6(op)) }

func (op LineTo) drawTo(d Drawer) { d.Line(fixed.Point26_6(op)) }

func (op Close) drawTo(d Drawer) { d.Stop(true) }

// Path describes a sequence of basic operations.
type Path []Operation

// DrawTo replays the path on `d`.
func (p Path) DrawTo(d Drawer) {
	inPath := false
	for _, op := range p {
		switch op.(type) {
		case MoveTo:
			if inPath {
				d.Stop(false) // implicit close if currently in path.
			}
			inPath = true
		case Close:
			inPath = false
		}
		op.drawTo(d)
	}
}

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Polyline returns an open path through the given points,
// in pixel space.
func Polyline(xs, ys []float64) Path {
	var p Path
	for i := range xs {
		pt := ToFixed(xs[i], ys[i])
		if i == 0 {
			p.Start(pt)
		} else {
			p.Line(pt)
		}
	}
	return p
}

// Bounds returns the smallest rectangle containing every point of the path.
// An empty path has empty bounds.
func (p Path) Bounds() fixed.Rectangle26_6 {
	var (
		box   fixed.Rectangle26_6
		first = true
	)
	add := func(pt fixed.Point26_6) {
		if first {
			box = fixed.Rectangle26_6{Min: pt, Max: pt}
			first = false
			return
		}
		box.Min.X, box.Max.X = min(box.Min.X, pt.X), max(box.Max.X, pt.X)
		box.Min.Y, box.Max.Y = min(box.Min.Y, pt.Y), max(box.Max.Y, pt.Y)
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			add(fixed.Point26_6(op))
		case LineTo:
			add(fixed.Point26_6(op))
		}
	}
	return box
}
