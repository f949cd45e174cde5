// Package axis draws a labelled 2D axis as an overlay on a viewport.
//
// An [Axis] holds its configuration as a [Spec], built lazily into a
// [layout.Result] the first time a render pass needs it. The result is
// cached and reused until one of its inputs changes: the configuration,
// the endpoint pixels or the viewport size. Drawing goes through [Drawer]
// collaborators so that any backend (SVG, raster, a test recorder) can
// serve as the output.
//
// An Axis is not safe for concurrent use.
package axis

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/axis2d/pkg/observability"
	"github.com/matzehuels/axis2d/pkg/render/axis/fontsize"
	"github.com/matzehuels/axis2d/pkg/render/axis/layout"
	"github.com/matzehuels/axis2d/pkg/render/axis/styles"
	"github.com/matzehuels/axis2d/pkg/render/viewport"
)

// Axis is a configurable, cached 2D axis.
type Axis struct {
	spec    Spec
	drawers Drawers
	bounds  fontsize.Bounds
	logger  *log.Logger

	// modified is bumped by any change that invalidates the layout;
	// rangeModified only by changes that affect the adjusted range.
	modified      uint64
	rangeModified uint64

	adjusted layout.Adjusted
	state    BuildState
	result   *layout.Result

	released bool
}

// Option configures an Axis.
type Option func(*Axis)

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(a *Axis) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithFontBounds overrides the font sizes the layout may choose from.
func WithFontBounds(b fontsize.Bounds) Option {
	return func(a *Axis) { a.bounds = b }
}

// WithDrawers gives each part of the axis its own drawer. Nil entries
// fall back to the drawer passed to New.
func WithDrawers(d Drawers) Option {
	return func(a *Axis) {
		if d.Line != nil {
			a.drawers.Line = d.Line
		}
		if d.Ticks != nil {
			a.drawers.Ticks = d.Ticks
		}
		if d.Labels != nil {
			a.drawers.Labels = d.Labels
		}
		if d.Title != nil {
			a.drawers.Title = d.Title
		}
	}
}

// New returns an axis with [DefaultSpec] that draws everything through d.
// A nil d measures with the bundled fonts and draws nothing, which is
// enough to compute layouts.
func New(d Drawer, opts ...Option) *Axis {
	if d == nil {
		d = Discard()
	}
	a := &Axis{
		spec:    DefaultSpec(),
		drawers: Drawers{Line: d, Ticks: d, Labels: d, Title: d},
		bounds:  fontsize.DefaultBounds(),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.touchRange()
	return a
}

// NewFromSpec returns an axis configured from s, with out-of-range values
// clamped.
func NewFromSpec(s Spec, d Drawer, opts ...Option) *Axis {
	a := New(d, opts...)
	a.SetSpec(s)
	return a
}

// SetDrawer routes every part of the axis through d. Text may measure
// differently in the new backend, so the layout is rebuilt on the next
// render.
func (a *Axis) SetDrawer(d Drawer) {
	if d == nil {
		d = Discard()
	}
	a.drawers = Drawers{Line: d, Ticks: d, Labels: d, Title: d}
	a.released = false
	a.touch()
}

func (a *Axis) touch() { a.modified = stamp() }

func (a *Axis) touchRange() {
	a.rangeModified = stamp()
	a.modified = a.rangeModified
}

// Spec returns a copy of the current configuration.
func (a *Axis) Spec() Spec { return a.spec }

// SetSpec replaces the whole configuration through the individual
// setters, so clamping and invalidation behave exactly as if each field
// had been set on its own.
func (a *Axis) SetSpec(s Spec) {
	a.SetPoint1(s.Point1)
	a.SetPoint2(s.Point2)
	a.SetRange(s.Range[0], s.Range[1])
	a.SetNumberOfLabels(s.NumberOfLabels)
	a.SetLabelFormat(s.LabelFormat)
	a.SetAdjustLabels(s.AdjustLabels)
	a.SetTitle(s.Title)
	a.SetAxisVisibility(s.Visibility.Axis)
	a.SetTickVisibility(s.Visibility.Ticks)
	a.SetLabelVisibility(s.Visibility.Labels)
	a.SetTitleVisibility(s.Visibility.Title)
	a.SetTickLength(s.TickLength)
	a.SetTickOffset(s.TickOffset)
	a.SetFontFactor(s.FontFactor)
	a.SetLabelFactor(s.LabelFactor)
	a.SetTitleTextStyle(s.TitleStyle)
	a.SetLabelTextStyle(s.LabelStyle)
	a.SetLineStyle(s.LineStyle)
}

// ShallowCopy copies src's configuration into a. Built state, drawers and
// cached layouts are not copied; a rebuilds on its next render.
func (a *Axis) ShallowCopy(src *Axis) {
	if src == nil || src == a {
		return
	}
	a.SetSpec(src.spec)
}

// Endpoints are compared in pixels at build time, so changing their
// coordinates needs no stamp of its own.

// SetPoint1 sets the start of the axis.
func (a *Axis) SetPoint1(c viewport.Coordinate) { a.spec.Point1 = c }

// SetPoint2 sets the end of the axis.
func (a *Axis) SetPoint2(c viewport.Coordinate) { a.spec.Point2 = c }

// Point1 returns the start of the axis.
func (a *Axis) Point1() viewport.Coordinate { return a.spec.Point1 }

// Point2 returns the end of the axis.
func (a *Axis) Point2() viewport.Coordinate { return a.spec.Point2 }

// SetRange sets the data values at Point1 and Point2. lo may exceed hi.
func (a *Axis) SetRange(lo, hi float64) {
	r := [2]float64{lo, hi}
	if r == a.spec.Range {
		return
	}
	a.spec.Range = r
	a.touchRange()
}

// Range returns the configured (unadjusted) range.
func (a *Axis) Range() [2]float64 { return a.spec.Range }

// SetNumberOfLabels sets the requested label count, clamped to
// [MinLabels, MaxLabels].
func (a *Axis) SetNumberOfLabels(n int) {
	n = clampInt(n, MinLabels, MaxLabels)
	if n == a.spec.NumberOfLabels {
		return
	}
	a.spec.NumberOfLabels = n
	a.touchRange()
}

// NumberOfLabels returns the requested label count.
func (a *Axis) NumberOfLabels() int { return a.spec.NumberOfLabels }

// SetAdjustLabels switches nice-number rounding of the range on or off.
func (a *Axis) SetAdjustLabels(on bool) {
	if on == a.spec.AdjustLabels {
		return
	}
	a.spec.AdjustLabels = on
	a.touchRange()
}

// AdjustLabels reports whether the range is rounded to nice numbers.
func (a *Axis) AdjustLabels() bool { return a.spec.AdjustLabels }

// SetLabelFormat sets the printf verb used for label text. An empty
// format selects [layout.DefaultFormat].
func (a *Axis) SetLabelFormat(f string) {
	if f == "" {
		f = layout.DefaultFormat
	}
	if f == a.spec.LabelFormat {
		return
	}
	a.spec.LabelFormat = f
	a.touch()
}

// LabelFormat returns the label format.
func (a *Axis) LabelFormat() string { return a.spec.LabelFormat }

// SetTitle sets the axis title. An empty title draws nothing.
func (a *Axis) SetTitle(t string) {
	if t == a.spec.Title {
		return
	}
	a.spec.Title = t
	a.touch()
}

// Title returns the axis title.
func (a *Axis) Title() string { return a.spec.Title }

// The line, tick and title toggles only decide what a render pass emits.
// Label visibility moves the title, so it invalidates the layout.

// SetAxisVisibility shows or hides the axis line.
func (a *Axis) SetAxisVisibility(on bool) { a.spec.Visibility.Axis = on }

// SetTickVisibility shows or hides the tick marks.
func (a *Axis) SetTickVisibility(on bool) { a.spec.Visibility.Ticks = on }

// SetTitleVisibility shows or hides the title.
func (a *Axis) SetTitleVisibility(on bool) { a.spec.Visibility.Title = on }

// SetLabelVisibility shows or hides the labels.
func (a *Axis) SetLabelVisibility(on bool) {
	if on == a.spec.Visibility.Labels {
		return
	}
	a.spec.Visibility.Labels = on
	a.touch()
}

// Visibility returns the current visibility switches.
func (a *Axis) Visibility() Visibility { return a.spec.Visibility }

// SetTickLength sets the tick length in pixels, clamped to [0, 100].
func (a *Axis) SetTickLength(n int) {
	n = clampInt(n, MinTick, MaxTick)
	if n == a.spec.TickLength {
		return
	}
	a.spec.TickLength = n
	a.touch()
}

// TickLength returns the tick length in pixels.
func (a *Axis) TickLength() int { return a.spec.TickLength }

// SetTickOffset sets the gap between tick tips and text, clamped to
// [0, 100].
func (a *Axis) SetTickOffset(n int) {
	n = clampInt(n, MinTick, MaxTick)
	if n == a.spec.TickOffset {
		return
	}
	a.spec.TickOffset = n
	a.touch()
}

// TickOffset returns the gap between tick tips and text.
func (a *Axis) TickOffset() int { return a.spec.TickOffset }

// SetFontFactor scales all text, clamped to [0.1, 2].
func (a *Axis) SetFontFactor(f float64) {
	f = clampFloat(f, MinFactor, MaxFactor)
	if f == a.spec.FontFactor {
		return
	}
	a.spec.FontFactor = f
	a.touch()
}

// FontFactor returns the overall text scale.
func (a *Axis) FontFactor() float64 { return a.spec.FontFactor }

// SetLabelFactor scales labels relative to the title, clamped to [0.1, 2].
func (a *Axis) SetLabelFactor(f float64) {
	f = clampFloat(f, MinFactor, MaxFactor)
	if f == a.spec.LabelFactor {
		return
	}
	a.spec.LabelFactor = f
	a.touch()
}

// LabelFactor returns the label scale relative to the title.
func (a *Axis) LabelFactor() float64 { return a.spec.LabelFactor }

// SetTitleTextStyle sets the title style.
func (a *Axis) SetTitleTextStyle(s styles.Text) {
	if s == a.spec.TitleStyle {
		return
	}
	a.spec.TitleStyle = s
	a.touch()
}

// TitleTextStyle returns the title style.
func (a *Axis) TitleTextStyle() styles.Text { return a.spec.TitleStyle }

// SetLabelTextStyle sets the label style.
func (a *Axis) SetLabelTextStyle(s styles.Text) {
	if s == a.spec.LabelStyle {
		return
	}
	a.spec.LabelStyle = s
	a.touch()
}

// LabelTextStyle returns the label style.
func (a *Axis) LabelTextStyle() styles.Text { return a.spec.LabelStyle }

// SetLineStyle sets the stroke of the axis line and ticks. It only
// affects drawing.
func (a *Axis) SetLineStyle(s styles.Line) { a.spec.LineStyle = s }

// LineStyle returns the stroke of the axis line and ticks.
func (a *Axis) LineStyle() styles.Line { return a.spec.LineStyle }

// AdjustedRange returns the range actually labelled, recomputing it if
// the range, label count or adjust flag changed since the last call.
func (a *Axis) AdjustedRange() [2]float64 {
	a.refreshRange()
	return a.adjusted.Range
}

// AdjustedNumberOfLabels returns the label count actually used.
func (a *Axis) AdjustedNumberOfLabels() int {
	a.refreshRange()
	return a.adjusted.Labels
}

// AdjustedInterval returns the distance between neighbouring labels.
func (a *Axis) AdjustedInterval() float64 {
	a.refreshRange()
	return a.adjusted.Interval
}

func (a *Axis) refreshRange() {
	if a.state.RangeBuildTime != 0 && a.state.RangeBuildTime >= a.rangeModified {
		return
	}
	a.adjusted = layout.Adjust(a.spec.Range, a.spec.NumberOfLabels, a.spec.AdjustLabels)
	a.state.RangeBuildTime = stamp()
}

// BuildState returns a snapshot of what the cached layout was built from.
func (a *Axis) BuildState() BuildState {
	return a.state
}

// Layout returns the layout for vp, building it if needed. It returns nil
// if no layout could ever be built.
func (a *Axis) Layout(vp viewport.Viewport) *layout.Result {
	a.build(vp)
	return a.result
}

// build brings the cached layout up to date for vp and reports whether a
// usable layout exists. A failed build leaves the previous layout and
// build state untouched.
func (a *Axis) build(vp viewport.Viewport) bool {
	if vp == nil {
		return a.result != nil
	}
	a.released = false
	w, h := vp.Size()
	p1 := vp.ToDisplay(a.spec.Point1).Round()
	p2 := vp.ToDisplay(a.spec.Point2).Round()

	if !a.state.NeedsRebuild(p1, p2, w, h, a.modified) {
		observability.Build().OnBuildSkipped()
		return a.result != nil
	}

	a.refreshRange()
	start := time.Now()
	r, err := layout.Build(layout.Input{
		P1:             p1,
		P2:             p2,
		Adjusted:       a.adjusted,
		Format:         a.spec.LabelFormat,
		Title:          a.spec.Title,
		TickLength:     float64(a.spec.TickLength),
		TickOffset:     float64(a.spec.TickOffset),
		ShowLabels:     a.spec.Visibility.Labels,
		ViewportWidth:  w,
		ViewportHeight: h,
		FontFactor:     a.spec.FontFactor,
		LabelFactor:    a.spec.LabelFactor,
		FontBounds:     a.bounds,
		LabelStyle:     a.spec.LabelStyle,
		TitleStyle:     a.spec.TitleStyle,
	}, a.drawers.Labels)
	elapsed := time.Since(start)

	if err != nil {
		a.logger.Warn("axis layout failed, keeping previous", "err", err)
		observability.Build().OnBuild(0, elapsed, err)
		return a.result != nil
	}

	a.result = r
	a.state.Record(p1, p2, w, h, r)
	observability.Build().OnBuild(len(r.Labels), elapsed, nil)
	a.logger.Debug("built axis layout",
		"orientation", r.Orientation,
		"labels", len(r.Labels),
		"range", r.Adjusted.Range,
		"label_font", r.LabelFontSize,
		"title_font", r.TitleFontSize,
		"took", elapsed)
	return true
}
