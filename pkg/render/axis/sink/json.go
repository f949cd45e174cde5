package sink

import (
	"encoding/json"

	"github.com/matzehuels/axis2d/pkg/render/axis"
	"github.com/matzehuels/axis2d/pkg/render/axis/layout"
	"github.com/matzehuels/axis2d/pkg/render/geom"
)

type jsonOutput struct {
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	Orientation   string     `json:"orientation"`
	Theta         float64    `json:"theta"`
	Normal        jsonPoint  `json:"normal"`
	Range         [2]float64 `json:"range"`
	Interval      float64    `json:"interval"`
	LabelFontSize int        `json:"label_font_size"`
	TitleFontSize int        `json:"title_font_size,omitempty"`
	Axis          *jsonLine  `json:"axis,omitempty"`
	Ticks         []jsonTick `json:"ticks,omitempty"`
	Labels        []jsonText `json:"labels,omitempty"`
	Title         *jsonText  `json:"title,omitempty"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonLine struct {
	From jsonPoint `json:"from"`
	To   jsonPoint `json:"to"`
}

type jsonTick struct {
	Value float64   `json:"value"`
	Base  jsonPoint `json:"base"`
	Tip   jsonPoint `json:"tip"`
}

type jsonText struct {
	Text   string    `json:"text"`
	Value  *float64  `json:"value,omitempty"`
	Center jsonPoint `json:"center"`
	Origin jsonPoint `json:"origin"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
}

func pt(p geom.Point) jsonPoint { return jsonPoint{X: p.X, Y: p.Y} }

func text(t layout.Text) jsonText {
	return jsonText{
		Text:   t.Text,
		Center: pt(t.Center),
		Origin: pt(t.Origin),
		Width:  t.Size.W,
		Height: t.Size.H,
	}
}

// MarshalLayout exports a layout as pretty-printed JSON for renderers
// that do their own drawing. Only parts switched on in vis are included.
// Coordinates are y-up viewport pixels.
func MarshalLayout(r *layout.Result, w, h int, vis axis.Visibility) ([]byte, error) {
	out := jsonOutput{
		Width:         w,
		Height:        h,
		Orientation:   r.Orientation.String(),
		Theta:         r.Theta,
		Normal:        pt(r.Normal),
		Range:         r.Adjusted.Range,
		Interval:      r.Adjusted.Interval,
		LabelFontSize: r.LabelFontSize,
	}
	if vis.Axis {
		out.Axis = &jsonLine{From: pt(r.Axis.A), To: pt(r.Axis.B)}
	}
	if vis.Ticks {
		out.Ticks = make([]jsonTick, len(r.Ticks))
		for i, t := range r.Ticks {
			out.Ticks[i] = jsonTick{Value: t.Value, Base: pt(t.Base), Tip: pt(t.Tip)}
		}
	}
	if vis.Labels {
		out.Labels = make([]jsonText, len(r.Labels))
		for i, l := range r.Labels {
			jt := text(l.Text)
			v := l.Value
			jt.Value = &v
			out.Labels[i] = jt
		}
	}
	if vis.Title && r.Title != nil {
		t := text(*r.Title)
		out.Title = &t
		out.TitleFontSize = r.TitleFontSize
	}
	return json.MarshalIndent(out, "", "  ")
}
