package layout

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/axis2d/pkg/render/axis/fontsize"
	"github.com/matzehuels/axis2d/pkg/render/axis/styles"
	"github.com/matzehuels/axis2d/pkg/render/geom"
)

// titleBand widens the label band the title must clear.
const titleBand = 1.2

// ErrNonFinite is returned when an endpoint is NaN or infinite.
var ErrNonFinite = errors.New("axis endpoint is not finite")

// Input is everything Build needs. Endpoints are viewport pixels.
type Input struct {
	P1, P2   geom.Point
	Adjusted Adjusted

	Format string
	Title  string

	TickLength float64
	TickOffset float64

	// ShowLabels controls whether the title clears the label band.
	ShowLabels bool

	// Viewport size in pixels; it sets the target box for font sizing.
	ViewportWidth  int
	ViewportHeight int

	FontFactor  float64
	LabelFactor float64
	FontBounds  fontsize.Bounds

	LabelStyle styles.Text
	TitleStyle styles.Text
}

// Build lays out an axis. It measures text through m and never modifies
// its input. The only error is a non-finite endpoint.
func Build(in Input, m fontsize.Measurer) (*Result, error) {
	if !in.P1.Finite() || !in.P2.Finite() {
		return nil, fmt.Errorf("build layout (%v → %v): %w", in.P1, in.P2, ErrNonFinite)
	}
	adj := in.Adjusted
	if adj.Labels < 1 {
		adj.Labels = 1
	}

	theta := math.Atan2(in.P2.Y-in.P1.Y, in.P2.X-in.P1.X)
	r := &Result{
		Orientation: Classify(in.P1, in.P2),
		Theta:       theta,
		Normal:      geom.Pt(math.Sin(theta), -math.Cos(theta)),
		Axis:        geom.Segment{A: in.P1, B: in.P2},
		Adjusted:    adj,
	}

	r.Ticks = ticks(in, r)

	sizer := fontsize.Sizer{Measurer: m, Bounds: in.FontBounds}
	box := fontsize.TargetBox(in.ViewportWidth, in.ViewportHeight)

	texts := adj.Texts(in.Format)
	fit := sizer.FitAll(texts, in.LabelStyle, box, in.FontFactor*in.LabelFactor)
	r.LabelFontSize = fit.Size
	r.Labels = make([]Label, len(texts))
	for i, text := range texts {
		w, h := m.MeasureText(text, in.LabelStyle, fit.Size)
		r.Labels[i] = Label{
			Text:  r.place(text, r.Ticks[i].Tip, geom.Size{W: w, H: h}, in.TickOffset),
			Value: r.Ticks[i].Value,
		}
	}

	if title := strings.TrimSpace(in.Title); title != "" {
		tf := sizer.Fit(title, in.TitleStyle, box, in.FontFactor)
		r.TitleFontSize = tf.Size
		anchor := r.Axis.Midpoint().Add(r.Normal.Scale(in.TickLength))
		gap := in.TickOffset
		if in.ShowLabels {
			gap += titleBand * r.extent(r.MaxLabelSize())
		}
		t := r.place(title, anchor, tf.Measured, gap)
		r.Title = &t
	}
	return r, nil
}

// ticks spaces one tick per label evenly from P1 to P2. A flat axis gets
// a single tick at the midpoint.
func ticks(in Input, r *Result) []Tick {
	n := r.Adjusted.Labels
	out := make([]Tick, n)
	reach := r.Normal.Scale(in.TickLength)
	for i := range out {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		base := in.P1.Lerp(in.P2, t)
		out[i] = Tick{Value: r.Adjusted.Value(i), Base: base, Tip: base.Add(reach)}
	}
	return out
}

// Texts formats every label value with format, trimming surrounding
// blanks. An empty format means [DefaultFormat].
func (a Adjusted) Texts(format string) []string {
	if format == "" {
		format = DefaultFormat
	}
	texts := make([]string, a.Labels)
	for i := range texts {
		texts[i] = strings.TrimSpace(fmt.Sprintf(format, a.Value(i)))
	}
	return texts
}

// extent is the depth of a box of size s measured along the normal.
func (r *Result) extent(s geom.Size) float64 {
	switch r.Orientation {
	case Horizontal:
		return s.H
	case Vertical:
		return s.W
	default:
		return s.W*math.Abs(r.Normal.X) + s.H*math.Abs(r.Normal.Y)
	}
}

// place positions a box of size s so that its edge nearest to anchor is
// gap pixels away on the right-hand side. Horizontal axes push the box
// straight down (or up), vertical axes straight sideways, diagonal axes
// along the normal by the box's projected half-depth.
func (r *Result) place(text string, anchor geom.Point, s geom.Size, gap float64) Text {
	var push geom.Point
	var offset float64
	switch r.Orientation {
	case Horizontal:
		offset = gap + s.H/2
		push = geom.Pt(0, sign(r.Normal.Y)*offset)
	case Vertical:
		offset = gap + s.W/2
		push = geom.Pt(sign(r.Normal.X)*offset, 0)
	default:
		offset = gap + r.extent(s)/2
		push = r.Normal.Scale(offset)
	}
	c := anchor.Add(push)
	return Text{
		Text:   text,
		Center: c,
		Origin: geom.Pt(c.X-s.W/2, c.Y-s.H/2),
		Size:   s,
		Offset: offset,
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
