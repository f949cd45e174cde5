// Package fontsize chooses integer font sizes that make text fit a box.
//
// The sizer binary-searches point sizes between a floor and a ceiling,
// measuring each candidate through a [Measurer]. It never returns a size
// below the floor: text that cannot fit at any size is drawn at the floor
// size rather than disappearing.
package fontsize

import (
	"github.com/matzehuels/axis2d/pkg/render/axis/styles"
	"github.com/matzehuels/axis2d/pkg/render/geom"
)

const (
	// DefaultMin is the floor size returned when nothing fits.
	DefaultMin = 6

	// DefaultMax is the largest size ever tried.
	DefaultMax = 72

	// heightRatio relates a viewport's perimeter to a readable line height.
	heightRatio = 0.015
)

// Measurer reports the rendered width and height of text in pixels.
type Measurer interface {
	MeasureText(text string, style styles.Text, size int) (w, h float64)
}

// Bounds limits the sizes the sizer may return. Min is forced to at
// least 1 and Max to at least Min.
type Bounds struct {
	Min, Max int
}

// DefaultBounds returns {DefaultMin, DefaultMax}.
func DefaultBounds() Bounds { return Bounds{Min: DefaultMin, Max: DefaultMax} }

func (b Bounds) normalized() Bounds {
	lo := max(1, b.Min)
	return Bounds{Min: lo, Max: max(lo, b.Max)}
}

// Result is the outcome of a fit.
type Result struct {
	Size     int       // chosen point size
	Measured geom.Size // rendered extent at Size; the max over all items for FitAll
	Fits     bool      // false when the floor size was used without fitting
}

// Sizer fits text into boxes using a Measurer.
type Sizer struct {
	Measurer Measurer
	Bounds   Bounds
}

// New returns a sizer with the default bounds.
func New(m Measurer) Sizer {
	return Sizer{Measurer: m, Bounds: DefaultBounds()}
}

// TargetBox derives the representative text box of a viewport: as wide as
// its longest side and as tall as 1.5% of its perimeter half.
func TargetBox(width, height int) geom.Size {
	w, h := float64(max(0, width)), float64(max(0, height))
	return geom.Size{W: max(w, h), H: heightRatio * (w + h)}
}

// Fit returns the largest size at which text fits box scaled by factor.
func (s Sizer) Fit(text string, style styles.Text, box geom.Size, factor float64) Result {
	return s.FitAll([]string{text}, style, box, factor)
}

// FitAll returns one size shared by every text, chosen as the largest
// size at which all of them fit box scaled by factor. Measured holds the
// widest width and tallest height over the set at that size.
func (s Sizer) FitAll(texts []string, style styles.Text, box geom.Size, factor float64) Result {
	b := s.Bounds.normalized()
	target := box.Scale(factor)

	lo, hi := b.Min, b.Max
	best := 0
	var bestSize geom.Size
	for lo <= hi {
		mid := lo + (hi-lo)/2
		ext := s.extent(texts, style, mid)
		if ext.Fits(target) {
			best, bestSize = mid, ext
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if best == 0 {
		return Result{Size: b.Min, Measured: s.extent(texts, style, b.Min)}
	}
	return Result{Size: best, Measured: bestSize, Fits: true}
}

// extent measures every text at size and returns the bounding maximum.
func (s Sizer) extent(texts []string, style styles.Text, size int) geom.Size {
	var ext geom.Size
	for _, t := range texts {
		w, h := s.Measurer.MeasureText(t, style, size)
		ext.W = max(ext.W, w)
		ext.H = max(ext.H, h)
	}
	return ext
}
