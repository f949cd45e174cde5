// Package pkg provides the libraries behind axis2d.
//
// # Overview
//
// axis2d lays out a labelled axis between two points of a viewport and
// draws it as an overlay. The pkg directory is organized into three areas:
//
//  1. [render] - Geometry, coordinate systems and the axis engine
//  2. [config] - TOML axis files
//  3. [cache] - Rendered artifact caches (file, Redis)
//
// plus the ambient packages [errors], [observability], [fonts] and
// [buildinfo].
//
// # Architecture
//
// The data flow through axis2d:
//
//	TOML file / flags / query string
//	         ↓
//	    [config] package (decode, override, validate)
//	         ↓
//	    [render/axis] package (nice range → font sizes → layout, cached)
//	         ↓
//	    [render/axis/sink] package (SVG, PNG or JSON)
//	         ↓
//	    [cache] package (keyed by spec, viewport and format)
//
// # Quick Start
//
//	a := axis.New(nil)
//	a.SetRange(0.25, 96.7)
//	a.SetNumberOfLabels(10)
//	a.SetTitle("Load (%)")
//	svg, err := sink.Render(a, viewport.Fixed{Width: 800, Height: 200}, sink.FormatSVG)
//
// [render]: github.com/matzehuels/axis2d/pkg/render
// [config]: github.com/matzehuels/axis2d/pkg/config
// [cache]: github.com/matzehuels/axis2d/pkg/cache
// [errors]: github.com/matzehuels/axis2d/pkg/errors
// [observability]: github.com/matzehuels/axis2d/pkg/observability
// [fonts]: github.com/matzehuels/axis2d/pkg/fonts
// [buildinfo]: github.com/matzehuels/axis2d/pkg/buildinfo
package pkg
