// Package geom holds the small value types shared by the axis packages.
//
// All coordinates are viewport pixels with the origin at the bottom-left
// corner and y growing upwards. Sinks that write y-down image formats flip
// the y axis themselves.
package geom

import "math"

// Point is a position in viewport pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Lerp returns the point at fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Round snaps p to the nearest whole pixel.
func (p Point) Round() Point { return Point{math.Round(p.X), math.Round(p.Y)} }

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Segment is a straight line between two points.
type Segment struct {
	A, B Point
}

// Length returns the euclidean length of the segment.
func (s Segment) Length() float64 { return math.Hypot(s.B.X-s.A.X, s.B.Y-s.A.Y) }

// Midpoint returns the point halfway between A and B.
func (s Segment) Midpoint() Point { return s.A.Lerp(s.B, 0.5) }

// Size is a width/height pair in pixels.
type Size struct {
	W, H float64
}

// Fits reports whether s fits inside box on both axes.
func (s Size) Fits(box Size) bool { return s.W <= box.W && s.H <= box.H }

// Scale returns s with both dimensions multiplied by k.
func (s Size) Scale(k float64) Size { return Size{s.W * k, s.H * k} }
