package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/axis2d/pkg/errors"
	"github.com/matzehuels/axis2d/pkg/render/axis"
	"github.com/matzehuels/axis2d/pkg/render/viewport"
)

const sample = `
[axis]
title  = "Temperature"
range  = [-12.5, 38]
labels = 8
format = "%.0f"
adjust = false
tick_length = 7

[axis.point1]
system = "display"
x = 40
y = 30

[axis.point2]
x = 0.9
y = 0.1

[axis.visibility]
axis = true
ticks = false
labels = true
title = true

[axis.label_style]
family = "mono"
color = "#336699"

[viewport]
width  = 800
height = 200
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	s := f.Axis
	if s.Title != "Temperature" || s.Range != [2]float64{-12.5, 38} || s.NumberOfLabels != 8 {
		t.Errorf("axis = %+v", s)
	}
	if s.LabelFormat != "%.0f" || s.AdjustLabels || s.TickLength != 7 {
		t.Errorf("format/adjust/tick = %q %v %d", s.LabelFormat, s.AdjustLabels, s.TickLength)
	}
	if s.Point1 != viewport.Pixels(40, 30) {
		t.Errorf("Point1 = %+v", s.Point1)
	}
	if s.Point2 != viewport.Normalized(0.9, 0.1) {
		t.Errorf("Point2 = %+v, want normalized default system", s.Point2)
	}
	if s.Visibility.Ticks || !s.Visibility.Labels {
		t.Errorf("Visibility = %+v", s.Visibility)
	}
	if s.LabelStyle.Family != "mono" || s.LabelStyle.Color != "#336699" {
		t.Errorf("LabelStyle = %+v", s.LabelStyle)
	}

	// Keys not in the file keep their defaults.
	def := axis.DefaultSpec()
	if s.TickOffset != def.TickOffset || s.FontFactor != def.FontFactor || s.TitleStyle != def.TitleStyle {
		t.Errorf("defaults lost: offset %d factor %v title %+v", s.TickOffset, s.FontFactor, s.TitleStyle)
	}
	if f.Viewport != (Viewport{Width: 800, Height: 200}) {
		t.Errorf("Viewport = %+v", f.Viewport)
	}
}

func TestDecodeEmptyIsDefault(t *testing.T) {
	f, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if f != Default() {
		t.Errorf("Decode(\"\") = %+v, want Default()", f)
	}
}

func TestDecodeClamps(t *testing.T) {
	f, err := Decode(strings.NewReader("[axis]\nlabels = 400\nfont_factor = 9.0\ntick_offset = -4\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if f.Axis.NumberOfLabels != axis.MaxLabels || f.Axis.FontFactor != axis.MaxFactor || f.Axis.TickOffset != 0 {
		t.Errorf("not clamped: %+v", f.Axis)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"syntax", "[axis\n", errors.ErrCodeInvalidSpec},
		{"unknown key", "[axis]\ntitel = \"x\"\n", errors.ErrCodeInvalidSpec},
		{"wrong type", "[axis]\nlabels = \"five\"\n", errors.ErrCodeInvalidSpec},
		{"range length", "[axis]\nrange = [1, 2, 3]\n", errors.ErrCodeInvalidSpec},
		{"bad system", "[axis.point1]\nsystem = \"world\"\n", errors.ErrCodeInvalidSpec},
		{"bad format", "[axis]\nformat = \"%d\"\n", errors.ErrCodeInvalidLabelFormat},
		{"nan range", "[axis]\nrange = [nan, 1.0]\n", errors.ErrCodeInvalidRange},
		{"zero viewport", "[viewport]\nwidth = 0\n", errors.ErrCodeInvalidSpec},
		{"huge viewport", "[viewport]\nheight = 100000\n", errors.ErrCodeInvalidSpec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	f := Default()
	f.Axis.Title = "Depth"
	f.Axis.Range = [2]float64{100, -3.25}
	f.Axis.Point2 = viewport.Pixels(12, 400)
	f.Viewport = Viewport{Width: 320, Height: 640}

	var buf bytes.Buffer
	if err := Encode(&buf, f); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error: %v\n%s", err, buf.String())
	}
	if got != f {
		t.Errorf("round trip:\n got %+v\nwant %+v", got, f)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "axis.toml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if f.Axis.Title != "Temperature" {
		t.Errorf("Title = %q", f.Axis.Title)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
	if _, err := Load(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Load(\"\") error = %v, want INVALID_PATH", err)
	}
}

func TestLoadInvalidKeepsCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	_ = os.WriteFile(path, []byte("[axis]\nformat = \"%s\"\n"), 0o644)

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidSpec) {
		t.Errorf("Load() error = %v, want INVALID_SPEC at the boundary", err)
	}
	if !strings.Contains(err.Error(), "INVALID_LABEL_FORMAT") {
		t.Errorf("Load() error = %v, want the cause preserved", err)
	}
}
