package sink

import (
	"bytes"

	"github.com/matzehuels/axis2d/pkg/errors"
	"github.com/matzehuels/axis2d/pkg/render/axis"
	"github.com/matzehuels/axis2d/pkg/render/viewport"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	default:
		return "application/json"
	}
}

// Render draws a into a fresh canvas of vp's size and returns the encoded
// document. It attaches the canvas as a's drawer for the duration of the
// call and releases it afterwards.
func Render(a *axis.Axis, vp viewport.Viewport, format string) ([]byte, error) {
	if err := errors.ValidateOutputFormat(format); err != nil {
		return nil, err
	}
	w, h := vp.Size()
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "viewport %dx%d is empty", w, h)
	}

	switch format {
	case FormatSVG:
		s := NewSVG(w, h)
		if err := draw(a, vp, s); err != nil {
			return nil, err
		}
		return s.Bytes(), nil

	case FormatPNG:
		p := NewPNG(w, h)
		if err := draw(a, vp, p); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := p.Encode(&buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
		}
		return buf.Bytes(), nil

	default:
		a.SetDrawer(axis.Discard())
		defer a.ReleaseGraphicsResources()
		r := a.Layout(vp)
		if r == nil {
			return nil, errNoLayout(a)
		}
		return MarshalLayout(r, w, h, a.Visibility())
	}
}

func draw(a *axis.Axis, vp viewport.Viewport, d axis.Drawer) error {
	a.SetDrawer(d)
	defer a.ReleaseGraphicsResources()
	if a.Layout(vp) == nil {
		return errNoLayout(a)
	}
	a.RenderOpaqueGeometry(vp)
	a.RenderTranslucentGeometry(vp)
	a.RenderOverlay(vp)
	return nil
}

func errNoLayout(a *axis.Axis) error {
	return errors.New(errors.ErrCodeInvalidSpec, "axis endpoints %v and %v do not map to finite pixels", a.Point1(), a.Point2())
}
