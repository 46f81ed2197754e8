package graphdraw

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

var _ Driver = (*Recorder)(nil) // assert interface conformance

// OpKind is the kind of a recorded draw operation.
type OpKind uint8

const (
	OpFill OpKind = iota
	OpStroke
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpText:
		return "text"
	default:
		return "<unknown OpKind>"
	}
}

// RecordedOp is one completed Draw or DrawText call.
type RecordedOp struct {
	Kind  OpKind
	Path  Path        // for fill and stroke
	Color color.NRGBA // for all kinds

	UseNonZeroWinding bool          // fill only
	Stroke            StrokeOptions // stroke only

	Text      string // text only
	At        fixed.Point26_6
	TextStyle TextStyle
}

// Recorder is a Driver which keeps every operation in memory,
// in drawing order, instead of painting it.
type Recorder struct {
	Ops []RecordedOp
}

// pathRecorder accumulates the current path
type pathRecorder struct {
	r     *Recorder
	path  Path
	color color.NRGBA
}

type fillRecorder struct {
	pathRecorder
	useNonZeroWinding bool
}

type strokeRecorder struct {
	pathRecorder
	options StrokeOptions
}

func (r *Recorder) SetupDrawers(willFill, willStroke bool) (f Filler, s Stroker) {
	if willFill {
		f = &fillRecorder{pathRecorder: pathRecorder{r: r}, useNonZeroWinding: true}
	}
	if willStroke {
		s = &strokeRecorder{pathRecorder: pathRecorder{r: r}, options: DefaultStrokeOptions}
	}
	return f, s
}

func (r *Recorder) DrawText(text string, at fixed.Point26_6, style TextStyle) {
	op := RecordedOp{Kind: OpText, Text: text, At: at, TextStyle: style}
	if style.Color != nil {
		op.Color = ToNRGBA(style.Color)
	}
	r.Ops = append(r.Ops, op)
}

// Filter returns the recorded operations of the given kind.
func (r *Recorder) Filter(kind OpKind) []RecordedOp {
	var out []RecordedOp
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (p *pathRecorder) Clear()                  { p.path = nil }
func (p *pathRecorder) Start(a fixed.Point26_6) { p.path.Start(a) }
func (p *pathRecorder) Line(b fixed.Point26_6)  { p.path.Line(b) }
func (p *pathRecorder) Stop(closeLoop bool)     { p.path.Stop(closeLoop) }
func (p *pathRecorder) SetColor(c color.Color)  { p.color = ToNRGBA(c) }

func (p *pathRecorder) snapshot() Path { return append(Path(nil), p.path...) }

func (f *fillRecorder) SetWinding(useNonZeroWinding bool) { f.useNonZeroWinding = useNonZeroWinding }

func (f *fillRecorder) Draw() {
	f.r.Ops = append(f.r.Ops, RecordedOp{Kind: OpFill, Path: f.snapshot(), Color: f.color, UseNonZeroWinding: f.useNonZeroWinding})
}

func (s *strokeRecorder) SetStrokeOptions(options StrokeOptions) { s.options = options }

func (s *strokeRecorder) Draw() {
	s.r.Ops = append(s.r.Ops, RecordedOp{Kind: OpStroke, Path: s.snapshot(), Color: s.color, Stroke: s.options})
}
