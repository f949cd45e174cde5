package axis

import (
	"reflect"

	"github.com/matzehuels/axis2d/pkg/fonts"
	"github.com/matzehuels/axis2d/pkg/render/axis/fontsize"
	"github.com/matzehuels/axis2d/pkg/render/axis/styles"
	"github.com/matzehuels/axis2d/pkg/render/geom"
	"github.com/matzehuels/axis2d/pkg/render/viewport"
)

// Drawer is a drawing backend. Coordinates are viewport pixels, y up.
// DrawText receives the bottom-left corner of the text box.
type Drawer interface {
	fontsize.Measurer
	DrawLine(a, b geom.Point, style styles.Line)
	DrawText(text string, origin geom.Point, size int, style styles.Text)
	// ReleaseResources frees backend state. It may be called repeatedly.
	ReleaseResources()
}

// Drawers assigns a drawer to each part of the axis. Text measurement
// goes through the Labels drawer.
type Drawers struct {
	Line   Drawer
	Ticks  Drawer
	Labels Drawer
	Title  Drawer
}

// each calls fn once per distinct drawer. Drawers of an incomparable
// dynamic type cannot be told apart and are visited once per part.
func (d Drawers) each(fn func(Drawer)) {
	seen := make([]Drawer, 0, 4)
	for _, x := range [...]Drawer{d.Line, d.Ticks, d.Labels, d.Title} {
		if x == nil || containsDrawer(seen, x) {
			continue
		}
		seen = append(seen, x)
		fn(x)
	}
}

func containsDrawer(list []Drawer, x Drawer) bool {
	if !reflect.TypeOf(x).Comparable() {
		return false
	}
	for _, y := range list {
		// Interface comparison checks dynamic types first, so an
		// incomparable y never reaches the value comparison here.
		if y == x {
			return true
		}
	}
	return false
}

// RenderOpaqueGeometry draws the axis line and tick marks and returns the
// number of parts drawn (0, 1 or 2). A part is the axis line or the whole
// tick set, not a single primitive: ten tick marks count once.
func (a *Axis) RenderOpaqueGeometry(vp viewport.Viewport) int {
	if !a.build(vp) {
		return 0
	}
	r, vis, line := a.result, a.spec.Visibility, a.spec.LineStyle
	n := 0
	if vis.Axis {
		a.drawers.Line.DrawLine(r.Axis.A, r.Axis.B, line)
		n++
	}
	if vis.Ticks && len(r.Ticks) > 0 {
		for _, t := range r.Ticks {
			a.drawers.Ticks.DrawLine(t.Base, t.Tip, line)
		}
		n++
	}
	return n
}

// RenderOverlay draws the labels and title and returns the number of
// parts drawn (0, 1 or 2). All labels together form one part and the
// title another.
func (a *Axis) RenderOverlay(vp viewport.Viewport) int {
	if !a.build(vp) {
		return 0
	}
	r, vis := a.result, a.spec.Visibility
	n := 0
	if vis.Labels && len(r.Labels) > 0 {
		for _, l := range r.Labels {
			a.drawers.Labels.DrawText(l.Text.Text, l.Origin, r.LabelFontSize, a.spec.LabelStyle)
		}
		n++
	}
	if vis.Title && r.Title != nil {
		a.drawers.Title.DrawText(r.Title.Text, r.Title.Origin, r.TitleFontSize, a.spec.TitleStyle)
		n++
	}
	return n
}

// RenderTranslucentGeometry draws nothing and returns 0 parts; an axis
// has no translucent parts.
func (a *Axis) RenderTranslucentGeometry(viewport.Viewport) int { return 0 }

// ReleaseGraphicsResources asks every drawer to free its resources. The
// cached layout is kept. Calling it again before the next render, or
// before any render at all, does nothing.
func (a *Axis) ReleaseGraphicsResources() {
	if a.released {
		return
	}
	a.released = true
	a.drawers.each(func(d Drawer) { d.ReleaseResources() })
}

// discard measures with the bundled fonts and draws nothing.
type discard struct{ m *fonts.Measurer }

// Discard returns a Drawer that measures text with the bundled fonts and
// ignores all drawing.
func Discard() Drawer { return &discard{m: fonts.NewMeasurer()} }

func (d *discard) MeasureText(text string, s styles.Text, size int) (float64, float64) {
	return d.m.MeasureText(text, s, size)
}
func (*discard) DrawLine(geom.Point, geom.Point, styles.Line)  {}
func (*discard) DrawText(string, geom.Point, int, styles.Text) {}
func (d *discard) ReleaseResources()                           { d.m.Release() }
