package layout

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/axis2d/pkg/render/axis/fontsize"
	"github.com/matzehuels/axis2d/pkg/render/axis/styles"
	"github.com/matzehuels/axis2d/pkg/render/geom"
)

// gridMeasurer sizes text as 6px per rune by 12px, scaled by size/10.
type gridMeasurer struct{}

func (gridMeasurer) MeasureText(text string, _ styles.Text, size int) (float64, float64) {
	k := float64(size) / 10
	return 6 * k * float64(len([]rune(text))), 12 * k
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func nearPt(a, b geom.Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func baseInput(p1, p2 geom.Point) Input {
	return Input{
		P1:             p1,
		P2:             p2,
		Adjusted:       Adjust([2]float64{0, 100}, 11, true),
		Format:         "%g",
		Title:          "Pressure",
		TickLength:     5,
		TickOffset:     2,
		ShowLabels:     true,
		ViewportWidth:  800,
		ViewportHeight: 600,
		FontFactor:     1,
		LabelFactor:    0.75,
		FontBounds:     fontsize.DefaultBounds(),
	}
}

func mustBuild(t *testing.T, in Input) *Result {
	t.Helper()
	r, err := Build(in, gridMeasurer{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return r
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 geom.Point
		want   Orientation
	}{
		{"left to right", geom.Pt(0, 0), geom.Pt(100, 0), Horizontal},
		{"right to left", geom.Pt(100, 0), geom.Pt(0, 0), Horizontal},
		{"slight tilt", geom.Pt(0, 0), geom.Pt(100, 20), Horizontal},
		{"upwards", geom.Pt(0, 0), geom.Pt(0, 100), Vertical},
		{"steep", geom.Pt(0, 0), geom.Pt(-20, -100), Vertical},
		{"45 degrees", geom.Pt(0, 0), geom.Pt(100, 100), Diagonal},
		{"shallow diagonal", geom.Pt(0, 0), geom.Pt(100, 50), Diagonal},
		{"zero length", geom.Pt(5, 5), geom.Pt(5, 5), Horizontal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.p1, tt.p2); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdjust(t *testing.T) {
	tests := []struct {
		name       string
		r          [2]float64
		labels     int
		nice       bool
		wantRange  [2]float64
		wantLabels int
		wantStep   float64
	}{
		{"nice", [2]float64{0.25, 96.7}, 10, true, [2]float64{0, 100}, 11, 10},
		{"even split", [2]float64{0.25, 96.7}, 10, false, [2]float64{0.25, 96.7}, 10, (96.7 - 0.25) / 9},
		{"even split reversed", [2]float64{10, 0}, 3, false, [2]float64{10, 0}, 3, 5},
		{"labels clamped", [2]float64{0, 1}, 99, false, [2]float64{0, 1}, 25, 1.0 / 24},
		{"flat ignores nice", [2]float64{7, 7}, 5, true, [2]float64{7, 7}, 1, 0},
		{"flat without nice", [2]float64{0, 0}, 5, false, [2]float64{0, 0}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Adjust(tt.r, tt.labels, tt.nice)
			if !near(got.Range[0], tt.wantRange[0]) || !near(got.Range[1], tt.wantRange[1]) {
				t.Errorf("Range = %v, want %v", got.Range, tt.wantRange)
			}
			if got.Labels != tt.wantLabels {
				t.Errorf("Labels = %d, want %d", got.Labels, tt.wantLabels)
			}
			if !near(got.Interval, tt.wantStep) {
				t.Errorf("Interval = %v, want %v", got.Interval, tt.wantStep)
			}
		})
	}
}

func TestAdjustedValuesSnapZero(t *testing.T) {
	a := Adjust([2]float64{-0.3, 0.3}, 7, false)
	vs := a.Values()
	if vs[3] != 0 || math.Signbit(vs[3]) {
		t.Errorf("middle value = %v, want exactly +0", vs[3])
	}
	if !near(vs[0], -0.3) || !near(vs[6], 0.3) {
		t.Errorf("end values = %v, %v, want -0.3, 0.3", vs[0], vs[6])
	}
}

func TestAdjustedStepReversed(t *testing.T) {
	a := Adjust([2]float64{100, 0}, 11, true)
	if a.Step() >= 0 {
		t.Errorf("Step() = %v, want negative for reversed axis", a.Step())
	}
	if a.Interval <= 0 {
		t.Errorf("Interval = %v, want positive", a.Interval)
	}
}

func TestBuildHorizontal(t *testing.T) {
	in := baseInput(geom.Pt(100, 100), geom.Pt(500, 100))
	r := mustBuild(t, in)

	if r.Orientation != Horizontal {
		t.Fatalf("Orientation = %v, want horizontal", r.Orientation)
	}
	if len(r.Ticks) != 11 || len(r.Labels) != 11 {
		t.Fatalf("got %d ticks, %d labels, want 11 each", len(r.Ticks), len(r.Labels))
	}
	for i, tk := range r.Ticks {
		wantBase := geom.Pt(100+40*float64(i), 100)
		if !nearPt(tk.Base, wantBase) {
			t.Errorf("tick %d base = %v, want %v", i, tk.Base, wantBase)
		}
		if !nearPt(tk.Tip, geom.Pt(wantBase.X, 95)) {
			t.Errorf("tick %d tip = %v, want below the line", i, tk.Tip)
		}
		if !near(tk.Value, 10*float64(i)) {
			t.Errorf("tick %d value = %v, want %v", i, tk.Value, 10*float64(i))
		}
	}
	for i, l := range r.Labels {
		top := l.Origin.Y + l.Size.H
		if !near(top, 95-in.TickOffset) {
			t.Errorf("label %d top edge = %v, want %v", i, top, 95-in.TickOffset)
		}
		if !near(l.Center.X, r.Ticks[i].Tip.X) {
			t.Errorf("label %d center x = %v, want %v", i, l.Center.X, r.Ticks[i].Tip.X)
		}
	}
	if got := r.Labels[10].Text.Text; got != "100" {
		t.Errorf("last label = %q, want %q", got, "100")
	}
}

func TestBuildSwappedEndpointsFlipsSide(t *testing.T) {
	fwd := mustBuild(t, baseInput(geom.Pt(100, 100), geom.Pt(500, 100)))
	rev := mustBuild(t, baseInput(geom.Pt(500, 100), geom.Pt(100, 100)))

	for i := range fwd.Ticks {
		if fwd.Ticks[i].Value != rev.Ticks[i].Value {
			t.Errorf("tick %d value %v != %v", i, fwd.Ticks[i].Value, rev.Ticks[i].Value)
		}
		if fwd.Ticks[i].Tip.Y >= 100 {
			t.Errorf("forward tick %d should hang below, tip %v", i, fwd.Ticks[i].Tip)
		}
		if rev.Ticks[i].Tip.Y <= 100 {
			t.Errorf("reversed tick %d should rise above, tip %v", i, rev.Ticks[i].Tip)
		}
		if rev.Labels[i].Origin.Y < 100 {
			t.Errorf("reversed label %d should be above the line, origin %v", i, rev.Labels[i].Origin)
		}
	}

	// Same set of positions along the line, walked in the other direction.
	n := len(fwd.Ticks)
	for i := range fwd.Ticks {
		if !near(fwd.Ticks[i].Base.X, rev.Ticks[n-1-i].Base.X) {
			t.Errorf("base %d = %v, mirrored base = %v", i, fwd.Ticks[i].Base, rev.Ticks[n-1-i].Base)
		}
	}
}

func TestBuildVertical(t *testing.T) {
	in := baseInput(geom.Pt(100, 100), geom.Pt(100, 500))
	r := mustBuild(t, in)

	if r.Orientation != Vertical {
		t.Fatalf("Orientation = %v, want vertical", r.Orientation)
	}
	for i, l := range r.Labels {
		tip := r.Ticks[i].Tip
		if !near(tip.X, 105) {
			t.Errorf("tick %d tip x = %v, want 105 (right of upward axis)", i, tip.X)
		}
		if !near(l.Origin.X, 105+in.TickOffset) {
			t.Errorf("label %d left edge = %v, want %v", i, l.Origin.X, 105+in.TickOffset)
		}
		if !near(l.Center.Y, tip.Y) {
			t.Errorf("label %d center y = %v, want %v", i, l.Center.Y, tip.Y)
		}
	}
}

func TestBuildDiagonalNearEdgeClearsTick(t *testing.T) {
	in := baseInput(geom.Pt(100, 100), geom.Pt(400, 400))
	r := mustBuild(t, in)
	if r.Orientation != Diagonal {
		t.Fatalf("Orientation = %v, want diagonal", r.Orientation)
	}

	n := r.Normal
	for i, l := range r.Labels {
		d := l.Center.Sub(r.Ticks[i].Tip)
		along := d.X*n.X + d.Y*n.Y
		half := (l.Size.W*math.Abs(n.X) + l.Size.H*math.Abs(n.Y)) / 2
		if !near(along-half, in.TickOffset) {
			t.Errorf("label %d near edge at %v, want %v", i, along-half, in.TickOffset)
		}
	}
}

func TestBuildTitle(t *testing.T) {
	in := baseInput(geom.Pt(100, 300), geom.Pt(500, 300))

	with := mustBuild(t, in)
	if with.Title == nil {
		t.Fatal("Title = nil, want title")
	}
	if !near(with.Title.Center.X, 300) {
		t.Errorf("title center x = %v, want 300", with.Title.Center.X)
	}
	band := titleBand * with.MaxLabelSize().H
	wantTop := 300 - in.TickLength - in.TickOffset - band
	if top := with.Title.Origin.Y + with.Title.Size.H; !near(top, wantTop) {
		t.Errorf("title top = %v, want %v", top, wantTop)
	}
	lowestLabel := with.Labels[0].Origin.Y
	if with.Title.Origin.Y+with.Title.Size.H > lowestLabel {
		t.Errorf("title overlaps labels: title top %v, label bottom %v", with.Title.Origin.Y+with.Title.Size.H, lowestLabel)
	}

	in.ShowLabels = false
	without := mustBuild(t, in)
	wantTop = 300 - in.TickLength - in.TickOffset
	if top := without.Title.Origin.Y + without.Title.Size.H; !near(top, wantTop) {
		t.Errorf("title top without labels = %v, want %v", top, wantTop)
	}

	in.Title = "   "
	if r := mustBuild(t, in); r.Title != nil {
		t.Errorf("Title = %+v, want nil for blank title", r.Title)
	}
}

func TestBuildFlatRange(t *testing.T) {
	in := baseInput(geom.Pt(0, 0), geom.Pt(200, 0))
	in.Adjusted = Adjust([2]float64{42, 42}, 7, true)
	r := mustBuild(t, in)

	if len(r.Ticks) != 1 || len(r.Labels) != 1 {
		t.Fatalf("got %d ticks, %d labels, want 1 each", len(r.Ticks), len(r.Labels))
	}
	if !nearPt(r.Ticks[0].Base, geom.Pt(100, 0)) {
		t.Errorf("flat tick at %v, want midpoint", r.Ticks[0].Base)
	}
	if r.Labels[0].Text.Text != "42" {
		t.Errorf("flat label = %q, want %q", r.Labels[0].Text.Text, "42")
	}
}

func TestBuildLabelCountMatchesAdjusted(t *testing.T) {
	for n := 2; n <= 25; n++ {
		in := baseInput(geom.Pt(0, 0), geom.Pt(600, 0))
		in.Adjusted = Adjust([2]float64{-3.3, 17.9}, n, true)
		r := mustBuild(t, in)
		if len(r.Labels) != in.Adjusted.Labels || len(r.Ticks) != in.Adjusted.Labels {
			t.Errorf("requested %d: %d labels, %d ticks, want %d", n, len(r.Labels), len(r.Ticks), in.Adjusted.Labels)
		}
		for i, l := range r.Labels {
			if l.Value != in.Adjusted.Value(i) {
				t.Errorf("requested %d: label %d value %v, want %v", n, i, l.Value, in.Adjusted.Value(i))
			}
		}
	}
}

func TestBuildLabelFormat(t *testing.T) {
	in := baseInput(geom.Pt(0, 0), geom.Pt(600, 0))
	in.Adjusted = Adjust([2]float64{0, 1}, 3, false)
	in.Format = "%-8.2f"
	r := mustBuild(t, in)

	want := []string{"0.00", "0.50", "1.00"}
	for i, l := range r.Labels {
		if l.Text.Text != want[i] {
			t.Errorf("label %d = %q, want %q", i, l.Text.Text, want[i])
		}
	}

	in.Format = ""
	r = mustBuild(t, in)
	if r.Labels[1].Text.Text != "0.5" {
		t.Errorf("default format label = %q, want %q", r.Labels[1].Text.Text, "0.5")
	}
}

func TestBuildUniformLabelFont(t *testing.T) {
	r := mustBuild(t, baseInput(geom.Pt(0, 0), geom.Pt(600, 0)))
	if r.LabelFontSize < fontsize.DefaultMin || r.LabelFontSize > fontsize.DefaultMax {
		t.Errorf("LabelFontSize = %d, outside bounds", r.LabelFontSize)
	}
	for i, l := range r.Labels {
		if !near(l.Size.H, r.Labels[0].Size.H) {
			t.Errorf("label %d height %v differs from label 0 height %v", i, l.Size.H, r.Labels[0].Size.H)
		}
	}
	if r.TitleFontSize < r.LabelFontSize {
		t.Errorf("TitleFontSize = %d, want >= LabelFontSize %d", r.TitleFontSize, r.LabelFontSize)
	}
}

func TestBuildNonFiniteEndpoint(t *testing.T) {
	in := baseInput(geom.Pt(math.NaN(), 0), geom.Pt(10, 0))
	_, err := Build(in, gridMeasurer{})
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("Build() error = %v, want ErrNonFinite", err)
	}
}

func TestBuildZeroLengthSegment(t *testing.T) {
	in := baseInput(geom.Pt(50, 50), geom.Pt(50, 50))
	r := mustBuild(t, in)
	for i, tk := range r.Ticks {
		if !nearPt(tk.Base, geom.Pt(50, 50)) {
			t.Errorf("tick %d base = %v, want (50, 50)", i, tk.Base)
		}
	}
	if !nearPt(r.Normal, geom.Pt(0, -1)) {
		t.Errorf("Normal = %v, want (0, -1)", r.Normal)
	}
}

func TestAdjustedTexts(t *testing.T) {
	adj := Adjust([2]float64{0, 1}, 3, false)
	tests := []struct {
		format string
		want   []string
	}{
		{"", []string{"0", "0.5", "1"}},
		{"%6.2f", []string{"0.00", "0.50", "1.00"}},
		{"%g%%", []string{"0%", "0.5%", "1%"}},
	}
	for _, tt := range tests {
		got := adj.Texts(tt.format)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Texts(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
