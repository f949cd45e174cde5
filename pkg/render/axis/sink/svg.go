package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/axis2d/pkg/fonts"
	"github.com/matzehuels/axis2d/pkg/render/axis/styles"
	"github.com/matzehuels/axis2d/pkg/render/geom"
)

// shadowColor is drawn one pixel right of and below shadowed text.
const shadowColor = "#000000"

// SVGOption configures an [SVG] sink.
type SVGOption func(*SVG)

// WithBackground fills the canvas with a solid color before any drawing.
func WithBackground(color string) SVGOption { return func(s *SVG) { s.background = color } }

// SVG is a Drawer that writes SVG elements. Incoming coordinates are
// y-up viewport pixels; they are flipped into SVG's y-down space.
type SVG struct {
	width, height int
	background    string
	m             *fonts.Measurer
	body          bytes.Buffer
}

// NewSVG returns an empty SVG canvas of w×h pixels.
func NewSVG(w, h int, opts ...SVGOption) *SVG {
	s := &SVG{width: w, height: h, m: fonts.NewMeasurer()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SVG) flip(y float64) float64 { return float64(s.height) - y }

// MeasureText implements axis.Drawer.
func (s *SVG) MeasureText(text string, style styles.Text, size int) (float64, float64) {
	return s.m.MeasureText(text, style, size)
}

// DrawLine implements axis.Drawer.
func (s *SVG) DrawLine(a, b geom.Point, style styles.Line) {
	fmt.Fprintf(&s.body, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-linecap="square"/>`+"\n",
		a.X, s.flip(a.Y), b.X, s.flip(b.Y), styles.Hex(styles.ParseColor(style.Color)), max(style.Width, 0.5))
}

// DrawText implements axis.Drawer. origin is the bottom-left corner of
// the measured text box.
func (s *SVG) DrawText(text string, origin geom.Point, size int, style styles.Text) {
	baseline := origin.Y + s.m.Descent(style, size)
	if style.Shadow {
		s.text(text, origin.X+1, s.flip(baseline), size, style, shadowColor)
		baseline++
	}
	s.text(text, origin.X, s.flip(baseline), size, style, styles.Hex(style.RGBA()))
}

func (s *SVG) text(text string, x, y float64, size int, style styles.Text, fill string) {
	fmt.Fprintf(&s.body, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%d"`,
		x, y, escapeXML(fonts.CSSFamily(style)), size)
	if style.Bold {
		s.body.WriteString(` font-weight="bold"`)
	}
	if style.Italic {
		s.body.WriteString(` font-style="italic"`)
	}
	fmt.Fprintf(&s.body, ` fill="%s">%s</text>`+"\n", fill, escapeXML(text))
}

// ReleaseResources implements axis.Drawer. It drops cached font faces;
// the drawn document is kept.
func (s *SVG) ReleaseResources() { s.m.Release() }

// Bytes returns the complete SVG document drawn so far.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		s.width, s.height, s.width, s.height)
	if s.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", styles.Hex(styles.ParseColor(s.background)))
	}
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
