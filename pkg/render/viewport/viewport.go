// Package viewport maps axis endpoint coordinates to viewport pixels.
//
// An endpoint is a [Coordinate]: a pair of numbers tagged with the system
// they are expressed in. Display coordinates are pixels with the origin at
// the bottom-left corner; normalized viewport coordinates run from 0 to 1
// across the viewport; view coordinates run from -1 to 1.
package viewport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/axis2d/pkg/render/geom"
)

// System names the coordinate system of a Coordinate.
type System string

const (
	Display            System = "display"
	NormalizedViewport System = "normalized"
	View               System = "view"
)

// ParseSystem accepts the system names above, case-insensitively. The
// empty string selects NormalizedViewport.
func ParseSystem(s string) (System, error) {
	switch System(strings.ToLower(strings.TrimSpace(s))) {
	case "", NormalizedViewport:
		return NormalizedViewport, nil
	case Display, "pixels":
		return Display, nil
	case View:
		return View, nil
	}
	return "", fmt.Errorf("unknown coordinate system %q", s)
}

// Coordinate is a 2D position in some coordinate system.
type Coordinate struct {
	System System  `toml:"system" json:"system"`
	X      float64 `toml:"x" json:"x"`
	Y      float64 `toml:"y" json:"y"`
}

// Normalized returns a normalized viewport coordinate.
func Normalized(x, y float64) Coordinate {
	return Coordinate{System: NormalizedViewport, X: x, Y: y}
}

// Pixels returns a display coordinate.
func Pixels(x, y float64) Coordinate {
	return Coordinate{System: Display, X: x, Y: y}
}

// Viewport is the window an axis is drawn into.
type Viewport interface {
	// Size returns the viewport size in pixels.
	Size() (w, h int)
	// ToDisplay converts c to viewport pixels.
	ToDisplay(c Coordinate) geom.Point
}

// Fixed is a viewport of constant size.
type Fixed struct {
	Width, Height int
}

// Size implements Viewport.
func (f Fixed) Size() (int, int) { return f.Width, f.Height }

// ToDisplay implements Viewport.
func (f Fixed) ToDisplay(c Coordinate) geom.Point {
	return Transform(c, f.Width, f.Height)
}

// Transform converts c to pixels for a viewport of the given size.
func Transform(c Coordinate, w, h int) geom.Point {
	fw, fh := float64(w), float64(h)
	switch c.System {
	case Display:
		return geom.Pt(c.X, c.Y)
	case View:
		return geom.Pt((c.X+1)/2*fw, (c.Y+1)/2*fh)
	default:
		return geom.Pt(c.X*fw, c.Y*fh)
	}
}

// ParseCoordinate parses "x,y" or "system:x,y", e.g. "0.1,0.1" or
// "display:40,30". Without a system prefix the coordinate is normalized.
func ParseCoordinate(s string) (Coordinate, error) {
	var c Coordinate
	sys, xy, ok := strings.Cut(s, ":")
	if !ok {
		sys, xy = "", s
	}
	system, err := ParseSystem(sys)
	if err != nil {
		return c, err
	}
	xs, ys, ok := strings.Cut(xy, ",")
	if !ok {
		return c, fmt.Errorf("coordinate %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return c, fmt.Errorf("coordinate %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return c, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return Coordinate{System: system, X: x, Y: y}, nil
}

// String formats c so that ParseCoordinate reads it back.
func (c Coordinate) String() string {
	sys := c.System
	if sys == "" {
		sys = NormalizedViewport
	}
	return fmt.Sprintf("%s:%g,%g", sys, c.X, c.Y)
}
