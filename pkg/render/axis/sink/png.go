package sink

import (
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/matzehuels/axis2d/pkg/fonts"
	"github.com/matzehuels/axis2d/pkg/render/axis/styles"
	"github.com/matzehuels/axis2d/pkg/render/geom"
)

// PNGOption configures a [PNG] sink.
type PNGOption func(*pngConfig)

type pngConfig struct {
	background string
}

// WithPNGBackground sets the canvas color. The default is white; an empty
// string leaves the canvas transparent.
func WithPNGBackground(color string) PNGOption {
	return func(c *pngConfig) { c.background = color }
}

// PNG is a Drawer that rasterizes onto a gg context with the same fonts
// used for measurement.
type PNG struct {
	dc *gg.Context
	m  *fonts.Measurer
}

// NewPNG returns a w×h raster canvas.
func NewPNG(w, h int, opts ...PNGOption) *PNG {
	cfg := pngConfig{background: "#ffffff"}
	for _, opt := range opts {
		opt(&cfg)
	}
	dc := gg.NewContext(max(w, 1), max(h, 1))
	if cfg.background != "" {
		dc.SetColor(styles.ParseColor(cfg.background))
		dc.Clear()
	}
	return &PNG{dc: dc, m: fonts.NewMeasurer()}
}

func (p *PNG) flip(y float64) float64 { return float64(p.dc.Height()) - y }

// MeasureText implements axis.Drawer.
func (p *PNG) MeasureText(text string, style styles.Text, size int) (float64, float64) {
	return p.m.MeasureText(text, style, size)
}

// DrawLine implements axis.Drawer.
func (p *PNG) DrawLine(a, b geom.Point, style styles.Line) {
	p.dc.SetColor(styles.ParseColor(style.Color))
	p.dc.SetLineWidth(max(style.Width, 0.5))
	p.dc.SetLineCapSquare()
	p.dc.DrawLine(a.X, p.flip(a.Y), b.X, p.flip(b.Y))
	p.dc.Stroke()
}

// DrawText implements axis.Drawer.
func (p *PNG) DrawText(text string, origin geom.Point, size int, style styles.Text) {
	p.dc.SetFontFace(p.m.Face(style, size))
	baseline := origin.Y + p.m.Descent(style, size)
	if style.Shadow {
		p.dc.SetColor(styles.ParseColor(shadowColor))
		p.dc.DrawString(text, origin.X+1, p.flip(baseline))
		baseline++
	}
	p.dc.SetColor(style.RGBA())
	p.dc.DrawString(text, origin.X, p.flip(baseline))
}

// ReleaseResources implements axis.Drawer. The pixels are kept.
func (p *PNG) ReleaseResources() { p.m.Release() }

// Image returns the canvas.
func (p *PNG) Image() image.Image { return p.dc.Image() }

// Encode writes the canvas as PNG.
func (p *PNG) Encode(w io.Writer) error { return p.dc.EncodePNG(w) }
