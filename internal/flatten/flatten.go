// Package flatten converts path construction calls into polylines.
package flatten

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Tolerance is the default maximum distance, in device pixels, between a
// curve and its polyline.
const Tolerance = 0.1

// maxDepth bounds curve subdivision; 2^16 segments per curve.
const maxDepth = 16

// Subpath is one flattened subpath.
type Subpath struct {
	Points []Point
	Closed bool
}

// Builder accumulates subpaths. A segment added without a preceding
// MoveTo starts a subpath at the current point, which after Close is the
// start of the closed subpath.
type Builder struct {
	tolerance float64
	subs      []Subpath
	cur       Point
	open      bool
	hasPoint  bool
}

// NewBuilder returns a builder flattening curves to within tolerance.
// Non-positive values select Tolerance.
func NewBuilder(tolerance float64) *Builder {
	if tolerance <= 0 {
		tolerance = Tolerance
	}
	return &Builder{tolerance: tolerance}
}

// SetTolerance changes the tolerance for subsequent curves.
func (b *Builder) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		b.tolerance = tolerance
	}
}

// Reset discards all subpaths.
func (b *Builder) Reset() {
	b.subs = b.subs[:0]
	b.cur = Point{}
	b.open = false
	b.hasPoint = false
}

// MoveTo starts a new subpath.
func (b *Builder) MoveTo(p Point) {
	b.subs = append(b.subs, Subpath{Points: []Point{p}})
	b.cur = p
	b.open = true
	b.hasPoint = true
}

func (b *Builder) ensureOpen() {
	if !b.open {
		b.MoveTo(b.cur)
	}
}

func (b *Builder) add(p Point) {
	s := &b.subs[len(b.subs)-1]
	s.Points = append(s.Points, p)
	b.cur = p
}

// LineTo adds a straight segment.
func (b *Builder) LineTo(p Point) {
	b.ensureOpen()
	b.add(p)
}

// QuadTo adds a quadratic Bezier segment.
func (b *Builder) QuadTo(c, p Point) {
	b.ensureOpen()
	b.quad(b.cur, c, p, 0)
}

// CubicTo adds a cubic Bezier segment.
func (b *Builder) CubicTo(c1, c2, p Point) {
	b.ensureOpen()
	b.cubic(b.cur, c1, c2, p, 0)
}

// Close closes the current subpath and moves the pen to its start.
func (b *Builder) Close() {
	if !b.open {
		return
	}
	s := &b.subs[len(b.subs)-1]
	s.Closed = true
	b.cur = s.Points[0]
	b.open = false
}

// Current returns the pen position, or false before the first MoveTo.
func (b *Builder) Current() (Point, bool) {
	return b.cur, b.hasPoint
}

// Subpaths returns the accumulated subpaths. The slice is owned by the
// builder until the next Reset.
func (b *Builder) Subpaths() []Subpath {
	return b.subs
}

// Empty reports whether no subpath has been started.
func (b *Builder) Empty() bool {
	return len(b.subs) == 0
}

// Transform applies fn to every point of every subpath.
func (b *Builder) Transform(fn func(Point) Point) {
	for i := range b.subs {
		pts := b.subs[i].Points
		for j := range pts {
			pts[j] = fn(pts[j])
		}
	}
	b.cur = fn(b.cur)
}

// Polygons returns the subpaths as point lists, each implicitly closed, for
// filling.
func (b *Builder) Polygons() [][]Point {
	out := make([][]Point, 0, len(b.subs))
	for _, s := range b.subs {
		if len(s.Points) > 1 {
			out = append(out, s.Points)
		}
	}
	return out
}

// Cubic flattens one cubic curve, returning the points after p0.
func Cubic(p0, p1, p2, p3 Point, tolerance float64) []Point {
	b := Builder{tolerance: tolerance, subs: []Subpath{{}}}
	b.cubic(p0, p1, p2, p3, 0)
	return b.subs[0].Points
}

// Quad flattens one quadratic curve, returning the points after p0.
func Quad(p0, p1, p2 Point, tolerance float64) []Point {
	b := Builder{tolerance: tolerance, subs: []Subpath{{}}}
	b.quad(p0, p1, p2, 0)
	return b.subs[0].Points
}

func (b *Builder) quad(p0, p1, p2 Point, depth int) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < b.tolerance {
		b.add(p2)
		return
	}
	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(q0, q1, 0.5)
	b.quad(p0, q0, q2, depth+1)
	b.quad(q2, q1, p2, depth+1)
}

func (b *Builder) cubic(p0, p1, p2, p3 Point, depth int) {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxDepth || d < b.tolerance {
		b.add(p3)
		return
	}
	// de Casteljau split at t = 0.5
	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(p2, p3, 0.5)
	r0 := lerp(q0, q1, 0.5)
	r1 := lerp(q1, q2, 0.5)
	s := lerp(r0, r1, 0.5)
	b.cubic(p0, q0, r0, s, depth+1)
	b.cubic(s, r1, q2, p3, depth+1)
}

func lerp(p, q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// distanceToLine returns the distance from p to segment ab.
func distanceToLine(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	l2 := abx*abx + aby*aby
	if l2 < 1e-20 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+abx*t), p.Y-(a.Y+aby*t))
}
