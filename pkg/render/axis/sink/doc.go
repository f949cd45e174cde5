// Package sink provides drawing backends and output encoders for axes.
//
// A sink is an [axis.Drawer]: the axis measures text through it while
// building its layout and then draws lines and text into it. This
// package provides:
//
//   - [SVG]: vector output; text is emitted as <text> elements
//   - [PNG]: raster output drawn with fogleman/gg
//   - [MarshalLayout]: JSON export of the computed geometry
//
// [Render] wires an axis to the right sink for a format name and returns
// the encoded bytes:
//
//	a := axis.NewFromSpec(spec, nil)
//	svg, err := sink.Render(a, viewport.Fixed{Width: 640, Height: 480}, sink.FormatSVG)
//
// Both drawing sinks measure with [fonts.Measurer], so a layout built for
// one renders identically in the other.
//
// [axis.Drawer]: github.com/matzehuels/axis2d/pkg/render/axis.Drawer
// [fonts.Measurer]: github.com/matzehuels/axis2d/pkg/fonts.Measurer
package sink
