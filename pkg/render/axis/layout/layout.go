// Package layout computes the screen-space geometry of a 2D axis.
//
// Given two endpoints in viewport pixels, an adjusted data range and the
// text to show, [Build] produces the axis line, one tick per label, the
// label anchors and the title anchor. Ticks and text are always placed on
// the right-hand side of the direction of travel from P1 to P2: traveling
// along +x they hang below the line, traveling along +y they sit to its
// right.
//
// Positions use a y-up pixel space (origin bottom-left). A Result is
// immutable once built; callers rebuild rather than patch it.
package layout

import (
	"math"

	"github.com/matzehuels/axis2d/pkg/render/axis/scale"
	"github.com/matzehuels/axis2d/pkg/render/geom"
)

// DefaultFormat is the label format used when none is configured.
const DefaultFormat = "%.4g"

// Orientation classifies an axis segment.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
	Diagonal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	default:
		return "horizontal"
	}
}

// diagonalRatio is tan(22.5°): a segment whose short side is at least this
// fraction of its long side is treated as diagonal.
var diagonalRatio = math.Tan(math.Pi / 8)

// Classify returns the orientation of the segment p1→p2. Zero-length
// segments are horizontal.
func Classify(p1, p2 geom.Point) Orientation {
	dx, dy := math.Abs(p2.X-p1.X), math.Abs(p2.Y-p1.Y)
	switch {
	case dx == 0 && dy == 0:
		return Horizontal
	case math.Min(dx, dy) >= diagonalRatio*math.Max(dx, dy):
		return Diagonal
	case dx >= dy:
		return Horizontal
	default:
		return Vertical
	}
}

// Adjusted is the range an axis actually labels.
type Adjusted struct {
	Range    [2]float64 // first and last label value, in axis direction
	Labels   int        // number of labels and ticks
	Interval float64    // positive distance between neighbouring values
}

// Adjust derives the labelled range from a raw range and a requested
// label count. With nice set the range is rounded by [scale.ComputeRange];
// otherwise it is split evenly. An empty range (r[0] == r[1]) is flat: one
// label, zero interval, whatever nice says.
func Adjust(r [2]float64, labels int, nice bool) Adjusted {
	if r[0] == r[1] {
		return Adjusted{Range: r, Labels: 1}
	}
	if nice {
		out, n, step := scale.ComputeRange(r, labels)
		return Adjusted{Range: out, Labels: n, Interval: step}
	}
	n := max(scale.MinTicks, min(scale.MaxTicks, labels))
	return Adjusted{Range: r, Labels: n, Interval: math.Abs(r[1]-r[0]) / float64(n-1)}
}

// Flat reports whether the axis shows a single value.
func (a Adjusted) Flat() bool { return a.Labels <= 1 }

// Step returns the signed difference between consecutive label values.
func (a Adjusted) Step() float64 {
	if a.Flat() {
		return 0
	}
	return (a.Range[1] - a.Range[0]) / float64(a.Labels-1)
}

// Value returns the i-th label value. Values within a billionth of a step
// of zero are reported as exactly zero.
func (a Adjusted) Value(i int) float64 {
	step := a.Step()
	v := a.Range[0] + float64(i)*step
	if math.Abs(v) < math.Abs(step)*1e-9 || v == 0 {
		return 0
	}
	return v
}

// Values returns every label value in axis order.
func (a Adjusted) Values() []float64 {
	vs := make([]float64, a.Labels)
	for i := range vs {
		vs[i] = a.Value(i)
	}
	return vs
}

// Tick is one tick mark: Base lies on the axis line, Tip is TickLength
// pixels away on the right-hand side.
type Tick struct {
	Value float64
	Base  geom.Point
	Tip   geom.Point
}

// Segment returns the tick as a line segment.
func (t Tick) Segment() geom.Segment { return geom.Segment{A: t.Base, B: t.Tip} }

// Text is a positioned piece of text. Center is the middle of its box,
// Origin the bottom-left corner; Offset is how far Center was pushed from
// the anchor to keep the near edge clear of the ticks.
type Text struct {
	Text   string
	Center geom.Point
	Origin geom.Point
	Size   geom.Size
	Offset float64
}

// Label is the text of one tick.
type Label struct {
	Text
	Value float64
}

// Result is a complete axis layout.
type Result struct {
	Orientation Orientation
	Theta       float64    // direction of P1→P2 in radians
	Normal      geom.Point // unit right-hand normal
	Axis        geom.Segment
	Adjusted    Adjusted
	Ticks       []Tick
	Labels      []Label
	Title       *Text // nil when the title is empty

	LabelFontSize int
	TitleFontSize int
}

// MaxLabelSize returns the widest width and tallest height among labels.
func (r *Result) MaxLabelSize() geom.Size {
	var s geom.Size
	for _, l := range r.Labels {
		s.W = max(s.W, l.Size.W)
		s.H = max(s.H, l.Size.H)
	}
	return s
}
