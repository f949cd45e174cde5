package axis

import (
	"sync/atomic"

	"github.com/matzehuels/axis2d/pkg/render/axis/layout"
	"github.com/matzehuels/axis2d/pkg/render/geom"
)

// clock issues build and modification stamps. Stamps only ever grow, so
// "built after modified" is a plain comparison.
var clock atomic.Uint64

func stamp() uint64 { return clock.Add(1) }

// BuildState remembers what the last layout was built from.
type BuildState struct {
	Point1, Point2 geom.Point // pixel-snapped endpoints
	Width, Height  int        // viewport size

	TitleFontSize int
	LabelFontSize int

	RangeBuildTime uint64 // when the adjusted range was last computed
	BuildTime      uint64 // when the layout was last built; 0 = never
}

// NeedsRebuild reports whether a layout built from s is stale for the
// given endpoints, viewport size and configuration stamp.
func (s BuildState) NeedsRebuild(p1, p2 geom.Point, w, h int, modified uint64) bool {
	switch {
	case s.BuildTime == 0, s.BuildTime < modified:
		return true
	case p1 != s.Point1, p2 != s.Point2:
		return true
	case w != s.Width, h != s.Height:
		return true
	}
	return false
}

// Record stores the snapshot a successful build used.
func (s *BuildState) Record(p1, p2 geom.Point, w, h int, r *layout.Result) {
	s.Point1, s.Point2 = p1, p2
	s.Width, s.Height = w, h
	s.TitleFontSize = r.TitleFontSize
	s.LabelFontSize = r.LabelFontSize
	s.BuildTime = stamp()
}
