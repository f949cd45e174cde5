// Package styles holds the opaque appearance records an axis passes
// through to its drawing collaborators.
package styles

import (
	"fmt"
	"image/color"
	"strings"
)

// Font families understood by the bundled font set. Any other family
// name is passed through to vector sinks and falls back to Sans for
// measurement.
const (
	FamilySans = "sans"
	FamilyMono = "mono"
)

// Text describes how a title or label is drawn.
type Text struct {
	Family string `toml:"family" json:"family"`
	Bold   bool   `toml:"bold" json:"bold"`
	Italic bool   `toml:"italic" json:"italic"`
	Shadow bool   `toml:"shadow" json:"shadow"`
	Color  string `toml:"color" json:"color"` // #rrggbb
}

// DefaultTitle returns the style used for axis titles.
func DefaultTitle() Text {
	return Text{Family: FamilySans, Bold: true, Color: "#000000"}
}

// DefaultLabel returns the style used for tick labels.
func DefaultLabel() Text {
	return Text{Family: FamilySans, Color: "#000000"}
}

// Mono reports whether the family maps to the monospaced face.
func (t Text) Mono() bool {
	switch strings.ToLower(t.Family) {
	case FamilyMono, "courier", "monospace":
		return true
	}
	return false
}

// RGBA parses Color, falling back to opaque black.
func (t Text) RGBA() color.RGBA { return ParseColor(t.Color) }

// Line describes the stroke of the axis line and tick marks.
type Line struct {
	Width float64 `toml:"width" json:"width"`
	Color string  `toml:"color" json:"color"`
}

// DefaultLine returns a one pixel black stroke.
func DefaultLine() Line {
	return Line{Width: 1, Color: "#000000"}
}

// ParseColor parses "#rgb" or "#rrggbb". Anything else is opaque black.
func ParseColor(s string) color.RGBA {
	c := color.RGBA{A: 255}
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err == nil {
			c.R, c.G, c.B = r*17, g*17, b*17
		}
	case 6:
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "%2x%2x%2x", &r, &g, &b); err == nil {
			c.R, c.G, c.B = r, g, b
		}
	}
	return c
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
