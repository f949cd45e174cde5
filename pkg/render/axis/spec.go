package axis

import (
	"github.com/matzehuels/axis2d/pkg/render/axis/layout"
	"github.com/matzehuels/axis2d/pkg/render/axis/scale"
	"github.com/matzehuels/axis2d/pkg/render/axis/styles"
	"github.com/matzehuels/axis2d/pkg/render/viewport"
)

// Limits enforced by the setters.
const (
	MinLabels = scale.MinTicks
	MaxLabels = scale.MaxTicks

	MinTick = 0
	MaxTick = 100

	MinFactor = 0.1
	MaxFactor = 2.0
)

// Visibility switches the four parts of an axis on and off.
type Visibility struct {
	Axis   bool `toml:"axis" json:"axis"`
	Ticks  bool `toml:"ticks" json:"ticks"`
	Labels bool `toml:"labels" json:"labels"`
	Title  bool `toml:"title" json:"title"`
}

// All returns a Visibility with every part shown.
func All() Visibility { return Visibility{Axis: true, Ticks: true, Labels: true, Title: true} }

// Spec is the full configuration of an axis. It carries no built state,
// so copying a Spec between axes copies configuration only.
type Spec struct {
	Point1 viewport.Coordinate `toml:"point1" json:"point1"`
	Point2 viewport.Coordinate `toml:"point2" json:"point2"`

	Range          [2]float64 `toml:"range" json:"range"`
	NumberOfLabels int        `toml:"labels" json:"labels"`
	LabelFormat    string     `toml:"format" json:"format"`
	AdjustLabels   bool       `toml:"adjust" json:"adjust"`
	Title          string     `toml:"title" json:"title"`

	Visibility Visibility `toml:"visibility" json:"visibility"`

	TickLength  int     `toml:"tick_length" json:"tick_length"`
	TickOffset  int     `toml:"tick_offset" json:"tick_offset"`
	FontFactor  float64 `toml:"font_factor" json:"font_factor"`
	LabelFactor float64 `toml:"label_factor" json:"label_factor"`

	TitleStyle styles.Text `toml:"title_style" json:"title_style"`
	LabelStyle styles.Text `toml:"label_style" json:"label_style"`
	LineStyle  styles.Line `toml:"line_style" json:"line_style"`
}

// DefaultSpec returns a horizontal axis across the lower three quarters
// of the viewport, labelled 0..1 with five nice labels.
func DefaultSpec() Spec {
	return Spec{
		Point1:         viewport.Normalized(0, 0),
		Point2:         viewport.Normalized(0.75, 0),
		Range:          [2]float64{0, 1},
		NumberOfLabels: 5,
		LabelFormat:    layout.DefaultFormat,
		AdjustLabels:   true,
		Visibility:     All(),
		TickLength:     5,
		TickOffset:     2,
		FontFactor:     1,
		LabelFactor:    0.75,
		TitleStyle:     styles.DefaultTitle(),
		LabelStyle:     styles.DefaultLabel(),
		LineStyle:      styles.DefaultLine(),
	}
}

// Clamped returns s with every bounded field forced into range.
func (s Spec) Clamped() Spec {
	s.NumberOfLabels = clampInt(s.NumberOfLabels, MinLabels, MaxLabels)
	s.TickLength = clampInt(s.TickLength, MinTick, MaxTick)
	s.TickOffset = clampInt(s.TickOffset, MinTick, MaxTick)
	s.FontFactor = clampFloat(s.FontFactor, MinFactor, MaxFactor)
	s.LabelFactor = clampFloat(s.LabelFactor, MinFactor, MaxFactor)
	return s
}

func clampInt(v, lo, hi int) int { return max(lo, min(hi, v)) }

func clampFloat(v, lo, hi float64) float64 {
	if v != v { // NaN
		return lo
	}
	return max(lo, min(hi, v))
}
