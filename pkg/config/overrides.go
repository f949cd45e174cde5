package config

import (
	"strings"

	"github.com/matzehuels/axis2d/pkg/errors"
	"github.com/matzehuels/axis2d/pkg/render/viewport"
)

// Overrides are individual settings given on a command line or in a
// query string. Nil fields leave the file value alone.
type Overrides struct {
	Min, Max      *float64
	Labels        *int
	Format        *string
	Title         *string
	P1, P2        *viewport.Coordinate
	Width, Height *int
	Adjust        *bool

	// Hide lists parts to hide: axis, ticks, labels, title.
	Hide []string
}

// Apply writes the set overrides into f and normalizes the result.
func (f *File) Apply(o Overrides) error {
	if o.Min != nil {
		f.Axis.Range[0] = *o.Min
	}
	if o.Max != nil {
		f.Axis.Range[1] = *o.Max
	}
	if o.Labels != nil {
		f.Axis.NumberOfLabels = *o.Labels
	}
	if o.Format != nil {
		f.Axis.LabelFormat = *o.Format
	}
	if o.Title != nil {
		f.Axis.Title = *o.Title
	}
	if o.P1 != nil {
		f.Axis.Point1 = *o.P1
	}
	if o.P2 != nil {
		f.Axis.Point2 = *o.P2
	}
	if o.Width != nil {
		f.Viewport.Width = *o.Width
	}
	if o.Height != nil {
		f.Viewport.Height = *o.Height
	}
	if o.Adjust != nil {
		f.Axis.AdjustLabels = *o.Adjust
	}
	for _, part := range o.Hide {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "":
		case "axis":
			f.Axis.Visibility.Axis = false
		case "ticks":
			f.Axis.Visibility.Ticks = false
		case "labels":
			f.Axis.Visibility.Labels = false
		case "title":
			f.Axis.Visibility.Title = false
		default:
			return errors.New(errors.ErrCodeInvalidInput, "cannot hide %q (want axis, ticks, labels or title)", part)
		}
	}
	return f.Normalize()
}
