package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/axis2d/pkg/errors"
	"github.com/matzehuels/axis2d/pkg/render/axis"
	"github.com/matzehuels/axis2d/pkg/render/axis/styles"
	"github.com/matzehuels/axis2d/pkg/render/geom"
	"github.com/matzehuels/axis2d/pkg/render/viewport"
)

var vp = viewport.Fixed{Width: 400, Height: 300}

func newAxis(title string) *axis.Axis {
	s := axis.DefaultSpec()
	s.Title = title
	return axis.NewFromSpec(s, nil)
}

func TestRenderSVG(t *testing.T) {
	a := newAxis("Depth <m>")
	data, err := Render(a, vp, FormatSVG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	doc := string(data)

	if !strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 300"`) {
		t.Errorf("unexpected header: %.80s", doc)
	}
	if !strings.HasSuffix(doc, "</svg>\n") {
		t.Error("document not closed")
	}

	r := a.Layout(vp)
	if got, want := strings.Count(doc, "<line "), 1+len(r.Ticks); got != want {
		t.Errorf("lines = %d, want %d", got, want)
	}
	if got, want := strings.Count(doc, "<text "), len(r.Labels)+1; got != want {
		t.Errorf("texts = %d, want %d", got, want)
	}
	if !strings.Contains(doc, "Depth &lt;m&gt;") {
		t.Error("title not escaped")
	}
	if !strings.Contains(doc, `font-weight="bold"`) {
		t.Error("bold title style not emitted")
	}
}

func TestRenderHiddenParts(t *testing.T) {
	a := newAxis("T")
	a.SetTickVisibility(false)
	a.SetTitleVisibility(false)

	data, err := Render(a, vp, FormatSVG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	doc := string(data)
	if got := strings.Count(doc, "<line "); got != 1 {
		t.Errorf("lines = %d, want only the axis line", got)
	}
	if got, want := strings.Count(doc, "<text "), a.AdjustedNumberOfLabels(); got != want {
		t.Errorf("texts = %d, want %d", got, want)
	}
}

func TestSVGFlipsY(t *testing.T) {
	s := NewSVG(100, 50)
	s.DrawLine(geom.Pt(0, 0), geom.Pt(100, 10), styles.DefaultLine())
	doc := string(s.Bytes())
	if !strings.Contains(doc, `x1="0.00" y1="50.00" x2="100.00" y2="40.00"`) {
		t.Errorf("line not flipped: %s", doc)
	}
}

func TestSVGShadow(t *testing.T) {
	s := NewSVG(100, 50, WithBackground("#fff"))
	s.DrawText("x", geom.Pt(10, 10), 12, styles.Text{Shadow: true, Color: "#ff0000"})
	doc := string(s.Bytes())
	if got := strings.Count(doc, "<text "); got != 2 {
		t.Errorf("texts = %d, want shadow and text", got)
	}
	if !strings.Contains(doc, `fill="#ff0000"`) || !strings.Contains(doc, `fill="#000000"`) {
		t.Errorf("missing text or shadow color: %s", doc)
	}
	if !strings.Contains(doc, `<rect width="100%" height="100%" fill="#ffffff"/>`) {
		t.Error("background not drawn")
	}
}

func TestRenderPNG(t *testing.T) {
	a := newAxis("Time")
	a.SetPoint1(viewport.Pixels(50, 150))
	a.SetPoint2(viewport.Pixels(350, 150))
	a.SetLineStyle(styles.Line{Width: 3, Color: "#000"})
	data, err := Render(a, vp, FormatPNG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("bounds = %v, want 400x300", b)
	}

	// The axis line is three pixels wide around row 150.
	r, g, bl, _ := img.At(200, 150).RGBA()
	if r > 0x8000 || g > 0x8000 || bl > 0x8000 {
		t.Errorf("pixel on axis line is not dark: %v", img.At(200, 150))
	}
	r, g, bl, _ = img.At(399, 0).RGBA()
	if r != 0xffff || g != 0xffff || bl != 0xffff {
		t.Errorf("corner pixel is not background: %v", img.At(399, 0))
	}
}

func TestRenderJSON(t *testing.T) {
	a := newAxis("Range")
	a.SetRange(0.25, 96.7)
	a.SetNumberOfLabels(10)

	data, err := Render(a, vp, FormatJSON)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Width != 400 || out.Height != 300 {
		t.Errorf("size = %dx%d, want 400x300", out.Width, out.Height)
	}
	if out.Orientation != "horizontal" {
		t.Errorf("Orientation = %q, want horizontal", out.Orientation)
	}
	if len(out.Labels) != 11 || len(out.Ticks) != 11 {
		t.Errorf("labels/ticks = %d/%d, want 11/11", len(out.Labels), len(out.Ticks))
	}
	if out.Labels[0].Text != "0" || out.Labels[10].Text != "100" {
		t.Errorf("label texts = %q..%q, want 0..100", out.Labels[0].Text, out.Labels[10].Text)
	}
	if out.Title == nil || out.Title.Text != "Range" {
		t.Errorf("Title = %+v", out.Title)
	}
	if math.Abs(out.Interval-10) > 1e-9 {
		t.Errorf("Interval = %v, want 10", out.Interval)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name   string
		axis   func() *axis.Axis
		v      viewport.Viewport
		format string
		code   errors.Code
	}{
		{"unknown format", func() *axis.Axis { return newAxis("") }, vp, "pdf", errors.ErrCodeInvalidFormat},
		{"empty viewport", func() *axis.Axis { return newAxis("") }, viewport.Fixed{}, FormatSVG, errors.ErrCodeInvalidSpec},
		{"non-finite endpoint", func() *axis.Axis {
			a := newAxis("")
			a.SetPoint1(viewport.Pixels(math.NaN(), 0))
			return a
		}, vp, FormatJSON, errors.ErrCodeInvalidSpec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.axis(), tt.v, tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("Render() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestContentType(t *testing.T) {
	for format, want := range map[string]string{
		FormatSVG:  "image/svg+xml",
		FormatPNG:  "image/png",
		FormatJSON: "application/json",
	} {
		if got := ContentType(format); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", format, got, want)
		}
	}
}
