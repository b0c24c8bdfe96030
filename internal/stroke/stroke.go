package stroke

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

func (p Point) add(v Point) Point     { return Point{X: p.X + v.X, Y: p.Y + v.Y} }
func (p Point) sub(v Point) Point     { return Point{X: p.X - v.X, Y: p.Y - v.Y} }
func (p Point) scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }
func (p Point) dot(v Point) float64   { return p.X*v.X + p.Y*v.Y }
func (p Point) cross(v Point) float64 { return p.X*v.Y - p.Y*v.X }
func (p Point) length() float64       { return math.Hypot(p.X, p.Y) }
func (p Point) perp() Point           { return Point{X: -p.Y, Y: p.X} }

func (p Point) normalize() (Point, bool) {
	l := p.length()
	if l < 1e-12 {
		return Point{}, false
	}
	return Point{X: p.X / l, Y: p.Y / l}, true
}

// LineCap specifies the shape of open subpath ends.
type LineCap int

const (
	// LineCapButt ends exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound adds a half disc of radius width/2.
	LineCapRound
	// LineCapSquare extends width/2 beyond the endpoint.
	LineCapSquare
)

// LineJoin specifies the shape of corners.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet, falling back
	// to a bevel beyond the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound fills a disc at the corner.
	LineJoinRound
	// LineJoinBevel cuts the corner with a straight edge.
	LineJoinBevel
)

// Stroke defines the style for stroke outlining.
type Stroke struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64

	// Tolerance bounds the chord error of round joins and caps. Zero
	// means 0.1.
	Tolerance float64
}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Outline returns the polygons whose nonzero union is the stroke of
// polys. Every polygon is wound the same way, so overlapping pieces never
// cancel: each segment contributes a quad, each corner a join piece and
// each open end a cap.
func Outline(s Stroke, polys []Polyline) [][]Point {
	if s.Width <= 0 {
		return nil
	}
	o := outliner{style: s, hw: s.Width / 2}
	if o.style.Tolerance <= 0 {
		o.style.Tolerance = 0.1
	}
	for _, pl := range polys {
		o.polyline(pl)
	}
	return o.out
}

type outliner struct {
	style Stroke
	hw    float64
	out   [][]Point
}

// emit appends poly with positive orientation.
func (o *outliner) emit(poly []Point) {
	if len(poly) < 3 {
		return
	}
	if signedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	o.out = append(o.out, poly)
}

func signedArea(poly []Point) float64 {
	var a float64
	for i := range poly {
		j := (i + 1) % len(poly)
		a += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return a / 2
}

// dedup removes consecutive duplicate points, and the closing duplicate of
// closed polylines.
func dedup(pts []Point, closed bool) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && p.sub(out[len(out)-1]).length() < 1e-9 {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0].sub(out[len(out)-1]).length() < 1e-9 {
		out = out[:len(out)-1]
	}
	return out
}

func (o *outliner) polyline(pl Polyline) {
	pts := dedup(pl.Points, pl.Closed)
	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		o.dot(pts[0])
		return
	}
	n := len(pts)
	segs := n - 1
	if pl.Closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		o.segment(pts[i], pts[(i+1)%n])
	}
	if pl.Closed {
		for i := 0; i < n; i++ {
			o.join(pts[(i+n-1)%n], pts[i], pts[(i+1)%n])
		}
		return
	}
	for i := 1; i < n-1; i++ {
		o.join(pts[i-1], pts[i], pts[i+1])
	}
	o.cap(pts[0], pts[0].sub(pts[1]))
	o.cap(pts[n-1], pts[n-1].sub(pts[n-2]))
}

// dot strokes a zero-length subpath: round and square caps leave a mark,
// butt caps do not.
func (o *outliner) dot(p Point) {
	switch o.style.Cap {
	case LineCapRound:
		o.emit(o.disc(p))
	case LineCapSquare:
		h := o.hw
		o.emit([]Point{{p.X - h, p.Y - h}, {p.X + h, p.Y - h}, {p.X + h, p.Y + h}, {p.X - h, p.Y + h}})
	}
}

func (o *outliner) segment(a, b Point) {
	u, ok := b.sub(a).normalize()
	if !ok {
		return
	}
	n := u.perp().scale(o.hw)
	o.emit([]Point{a.add(n), b.add(n), b.sub(n), a.sub(n)})
}

// join fills the wedge between the segments meeting at v.
func (o *outliner) join(prev, v, next Point) {
	u0, ok0 := v.sub(prev).normalize()
	u1, ok1 := next.sub(v).normalize()
	if !ok0 || !ok1 {
		return
	}
	cross := u0.cross(u1)
	dot := u0.dot(u1)
	if math.Abs(cross) < 1e-9 && dot > 0 {
		return // collinear
	}
	if o.style.Join == LineJoinRound {
		o.emit(o.disc(v))
		return
	}
	// The outer side is opposite to the turn direction.
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n0 := u0.perp().scale(side * o.hw)
	n1 := u1.perp().scale(side * o.hw)
	a, b := v.add(n0), v.add(n1)
	if o.style.Join == LineJoinMiter && miterOK(dot, o.style.MiterLimit) {
		// Outer offset lines meet at v + (n0+n1)/(1+cos).
		m := v.add(n0.add(n1).scale(1 / (1 + dot)))
		o.emit([]Point{v, a, m, b})
		return
	}
	o.emit([]Point{v, a, b})
}

// miterOK reports whether the miter length ratio 1/cos(φ/2) for a turn
// with cos φ = dot stays within limit.
func miterOK(dot, limit float64) bool {
	return 2 < (1+dot)*limit*limit
}

// cap adds the end shape at p; dir points outward along the line.
func (o *outliner) cap(p, dir Point) {
	u, ok := dir.normalize()
	if !ok {
		return
	}
	switch o.style.Cap {
	case LineCapRound:
		o.emit(o.disc(p))
	case LineCapSquare:
		n := u.perp().scale(o.hw)
		e := u.scale(o.hw)
		o.emit([]Point{p.add(n), p.add(n).add(e), p.sub(n).add(e), p.sub(n)})
	}
}

// disc returns a polygon approximating the circle of radius hw about c.
func (o *outliner) disc(c Point) []Point {
	steps := circleSteps(o.hw, o.style.Tolerance)
	pts := make([]Point, steps)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(steps)
		pts[i] = Point{X: c.X + o.hw*math.Cos(a), Y: c.Y + o.hw*math.Sin(a)}
	}
	return pts
}

// circleSteps returns the number of chords keeping a circle of radius r
// within tol.
func circleSteps(r, tol float64) int {
	if r <= tol {
		return 8
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-tol/r)))
	return max(8, min(n, 256))
}
