package retained

import (
	"github.com/gogpu/tkpath"
	"github.com/gogpu/tkpath/internal/flatten"
)

type segKind int

const (
	segLine segKind = iota
	segQuad
	segCubic
)

// segment is one figure segment in user space.
type segment struct {
	kind segKind
	pts  [3]tkpath.Point // control points then end point
}

// figure is one subpath.
type figure struct {
	start  tkpath.Point
	segs   []segment
	closed bool
}

// end returns the last point of f.
func (f *figure) end() tkpath.Point {
	if len(f.segs) == 0 {
		return f.start
	}
	s := f.segs[len(f.segs)-1]
	switch s.kind {
	case segQuad:
		return s.pts[1]
	case segCubic:
		return s.pts[2]
	}
	return s.pts[0]
}

// flattenFigures returns the figures as user-space polylines.
func flattenFigures(figs []*figure, tol float64) []flatten.Subpath {
	b := flatten.NewBuilder(tol)
	for _, f := range figs {
		b.MoveTo(flatten.Point(f.start))
		for _, s := range f.segs {
			switch s.kind {
			case segLine:
				b.LineTo(flatten.Point(s.pts[0]))
			case segQuad:
				b.QuadTo(flatten.Point(s.pts[0]), flatten.Point(s.pts[1]))
			case segCubic:
				b.CubicTo(flatten.Point(s.pts[0]), flatten.Point(s.pts[1]), flatten.Point(s.pts[2]))
			}
		}
		if f.closed {
			b.Close()
		}
	}
	return b.Subpaths()
}
