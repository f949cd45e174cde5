// Package config reads and writes axis description files.
//
// An axis file is TOML with an [axis] table holding an [axis.Spec] and an
// optional [viewport] table with the canvas size:
//
//	[axis]
//	title  = "Temperature (°C)"
//	range  = [-12.5, 38]
//	labels = 8
//	format = "%.0f"
//
//	[axis.point1]
//	system = "normalized"
//	x = 0.1
//	y = 0.1
//
//	[axis.point2]
//	x = 0.9
//	y = 0.1
//
//	[viewport]
//	width  = 800
//	height = 200
//
// Keys left out keep their defaults from [axis.DefaultSpec].
//
// [axis.Spec]: github.com/matzehuels/axis2d/pkg/render/axis.Spec
// [axis.DefaultSpec]: github.com/matzehuels/axis2d/pkg/render/axis.DefaultSpec
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/axis2d/pkg/errors"
	"github.com/matzehuels/axis2d/pkg/render/axis"
	"github.com/matzehuels/axis2d/pkg/render/viewport"
)

// MaxViewport bounds both sides of the canvas.
const MaxViewport = 8192

// Viewport is the canvas size in pixels.
type Viewport struct {
	Width  int `toml:"width" json:"width"`
	Height int `toml:"height" json:"height"`
}

// Fixed returns the viewport as a [viewport.Fixed].
func (v Viewport) Fixed() viewport.Fixed {
	return viewport.Fixed{Width: v.Width, Height: v.Height}
}

// File is the content of an axis file.
type File struct {
	Axis     axis.Spec `toml:"axis" json:"axis"`
	Viewport Viewport  `toml:"viewport" json:"viewport"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	return File{
		Axis:     axis.DefaultSpec(),
		Viewport: Viewport{Width: 640, Height: 480},
	}
}

// Load reads and validates an axis file.
func Load(path string) (File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return File{}, errors.New(errors.ErrCodeFileNotFound, "axis file not found: %s", path)
	}
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "load %s", path)
	}
	return f, nil
}

// Decode parses an axis file on top of [Default] and validates it.
// Unknown keys are rejected so that typos do not pass silently.
func Decode(r io.Reader) (File, error) {
	f := Default()
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "parse axis file")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return File{}, errors.New(errors.ErrCodeInvalidSpec, "unknown keys: %s", strings.Join(names, ", "))
	}
	if err := f.Normalize(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Encode writes f as TOML.
func Encode(w io.Writer, f File) error {
	return toml.NewEncoder(w).Encode(f)
}

// Normalize validates f in place: coordinate systems are canonicalized,
// the label format and range are checked, the viewport is bounded, and
// numeric settings are clamped the way the axis setters clamp them.
func (f *File) Normalize() error {
	for _, c := range []*viewport.Coordinate{&f.Axis.Point1, &f.Axis.Point2} {
		sys, err := viewport.ParseSystem(string(c.System))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSpec, err, "axis endpoint")
		}
		c.System = sys
	}
	if f.Axis.LabelFormat == "" {
		f.Axis.LabelFormat = axis.DefaultSpec().LabelFormat
	}
	if err := errors.ValidateLabelFormat(f.Axis.LabelFormat); err != nil {
		return err
	}
	if err := errors.ValidateRange(f.Axis.Range[0], f.Axis.Range[1]); err != nil {
		return err
	}
	v := f.Viewport
	if v.Width <= 0 || v.Height <= 0 || v.Width > MaxViewport || v.Height > MaxViewport {
		return errors.New(errors.ErrCodeInvalidSpec, "viewport %dx%d out of range (1..%d)", v.Width, v.Height, MaxViewport)
	}
	f.Axis = f.Axis.Clamped()
	return nil
}
