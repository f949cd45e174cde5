// Package fonts provides the bundled Go font faces used to measure and
// rasterize axis text.
//
// The fonts come from golang.org/x/image/font/gofont, so they are compiled
// into the binary and need no files at runtime. Parsed fonts are shared
// process-wide; faces are not safe for concurrent use and are therefore
// owned by a [Measurer].
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/axis2d/pkg/render/axis/styles"
)

// CSS font-family stacks matching the bundled faces.
const (
	FontFamily     = `'Go', 'Helvetica Neue', Arial, sans-serif`
	MonoFontFamily = `'Go Mono', 'Courier New', monospace`
)

type variant int

const (
	regular variant = iota
	bold
	italic
	boldItalic
	mono
	monoBold
	monoItalic
	monoBoldItalic
	numVariants
)

var ttfs = [numVariants][]byte{
	regular:        goregular.TTF,
	bold:           gobold.TTF,
	italic:         goitalic.TTF,
	boldItalic:     gobolditalic.TTF,
	mono:           gomono.TTF,
	monoBold:       gomonobold.TTF,
	monoItalic:     gomonoitalic.TTF,
	monoBoldItalic: gomonobolditalic.TTF,
}

// Parsed fonts, computed once on first access.
var (
	parsed    [numVariants]*truetype.Font
	parseErr  [numVariants]error
	parseOnce [numVariants]sync.Once
)

func variantOf(s styles.Text) variant {
	v := regular
	if s.Mono() {
		v = mono
	}
	switch {
	case s.Bold && s.Italic:
		v += 3
	case s.Italic:
		v += 2
	case s.Bold:
		v++
	}
	return v
}

// Font returns the parsed TrueType font for a text style.
func Font(s styles.Text) (*truetype.Font, error) {
	v := variantOf(s)
	parseOnce[v].Do(func() {
		parsed[v], parseErr[v] = truetype.Parse(ttfs[v])
		if parseErr[v] != nil {
			parseErr[v] = fmt.Errorf("parse font variant %d: %w", v, parseErr[v])
		}
	})
	return parsed[v], parseErr[v]
}

// CSSFamily returns the font-family stack a vector sink should emit.
func CSSFamily(s styles.Text) string {
	if s.Mono() {
		return MonoFontFamily
	}
	return FontFamily
}

type faceKey struct {
	v    variant
	size int
}

// Measurer measures strings with the bundled fonts at 72 DPI, so one
// point equals one pixel. The zero value is ready to use. A Measurer
// must not be shared between goroutines.
type Measurer struct {
	faces map[faceKey]font.Face
}

// NewMeasurer returns an empty Measurer.
func NewMeasurer() *Measurer {
	return &Measurer{}
}

// Face returns the face for a style at a point size. Faces are cached for
// the lifetime of the Measurer. If the font cannot be parsed the fixed
// 7x13 bitmap face is returned instead.
func (m *Measurer) Face(s styles.Text, size int) font.Face {
	if m.faces == nil {
		m.faces = make(map[faceKey]font.Face)
	}
	key := faceKey{variantOf(s), max(1, size)}
	if f, ok := m.faces[key]; ok {
		return f
	}

	var face font.Face = basicfont.Face7x13
	if f, err := Font(s); err == nil {
		face = truetype.NewFace(f, &truetype.Options{
			Size:    float64(key.size),
			DPI:     72,
			Hinting: font.HintingNone,
		})
	}
	m.faces[key] = face
	return face
}

// MeasureText returns the advance width and line height of text.
func (m *Measurer) MeasureText(text string, s styles.Text, size int) (w, h float64) {
	face := m.Face(s, size)
	adv := font.MeasureString(face, text)
	met := face.Metrics()
	w = float64(adv) / 64
	h = float64(met.Ascent+met.Descent) / 64
	if s.Shadow {
		w++
		h++
	}
	return w, h
}

// Descent returns the distance from the baseline to the bottom of the
// line box, in pixels.
func (m *Measurer) Descent(s styles.Text, size int) float64 {
	return float64(m.Face(s, size).Metrics().Descent) / 64
}

// Release drops every cached face.
func (m *Measurer) Release() {
	for _, f := range m.faces {
		_ = f.Close()
	}
	m.faces = nil
}
