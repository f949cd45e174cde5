// Package render groups the drawing packages of axis2d.
//
// # Overview
//
// Nothing lives in this package itself. Its subpackages are layered from
// plain geometry up to finished documents:
//
//   - [geom]: points, segments and sizes in pixel space
//   - [viewport]: coordinate systems and their conversion to pixels
//   - [axis/scale]: nice-number rounding of a data range
//   - [axis/styles]: text and line styles
//   - [axis/fontsize]: the largest font size that fits a target box
//   - [axis/layout]: tick, label and title placement for one axis
//   - [axis]: the configurable, cached axis and its render passes
//   - [axis/sink]: SVG, PNG and JSON drawing backends
//
// # Coordinates
//
// Layouts are computed in display pixels with y pointing up. Backends
// that draw into images with y pointing down flip on output.
//
// [geom]: github.com/matzehuels/axis2d/pkg/render/geom
// [viewport]: github.com/matzehuels/axis2d/pkg/render/viewport
// [axis/scale]: github.com/matzehuels/axis2d/pkg/render/axis/scale
// [axis/styles]: github.com/matzehuels/axis2d/pkg/render/axis/styles
// [axis/fontsize]: github.com/matzehuels/axis2d/pkg/render/axis/fontsize
// [axis/layout]: github.com/matzehuels/axis2d/pkg/render/axis/layout
// [axis]: github.com/matzehuels/axis2d/pkg/render/axis
// [axis/sink]: github.com/matzehuels/axis2d/pkg/render/axis/sink
package render
