package tkpath

import "math"

// Default flattening step counts.
const (
	CurveToSegments    = 18
	QuadBezierSegments = 12
	EllipseSegments    = 48
)

// CurveSegments evaluates the cubic with control polygon ctrl at numSteps
// uniform parameter steps. The start point is included only when
// includeFirst is set, so consecutive curves can share end points.
func CurveSegments(ctrl [4]Point, includeFirst bool, numSteps int) []Point {
	numSteps = max(numSteps, 1)
	pts := make([]Point, 0, numSteps+1)
	if includeFirst {
		pts = append(pts, ctrl[0])
	}
	for i := 1; i <= numSteps; i++ {
		t := float64(i) / float64(numSteps)
		u := 1 - t
		a, b, c, d := u*u*u, 3*t*u*u, 3*t*t*u, t*t*t
		pts = append(pts, Point{
			X: a*ctrl[0].X + b*ctrl[1].X + c*ctrl[2].X + d*ctrl[3].X,
			Y: a*ctrl[0].Y + b*ctrl[1].Y + c*ctrl[2].Y + d*ctrl[3].Y,
		})
	}
	return pts
}

// QuadSegments is CurveSegments for a quadratic curve.
func QuadSegments(ctrl [3]Point, includeFirst bool, numSteps int) []Point {
	return CurveSegments(QuadToCubic(ctrl), includeFirst, numSteps)
}

// QuadToCubic returns the cubic control polygon equal to a quadratic.
func QuadToCubic(q [3]Point) [4]Point {
	return [4]Point{
		q[0],
		q[0].Add(q[1].Sub(q[0]).Mul(2.0 / 3.0)),
		q[1].Add(q[2].Sub(q[1]).Mul(1.0 / 3.0)),
		q[2],
	}
}

// MaxSegments returns the default flattening budget of p: the number of
// line segments its atoms produce at the default step counts.
func MaxSegments(p *Path) int {
	var cur Point
	n := 0
	for _, a := range p.Atoms() {
		switch a := a.(type) {
		case *MoveTo:
			cur = Point{X: a.X, Y: a.Y}
		case *LineTo:
			n++
			cur = Point{X: a.X, Y: a.Y}
		case *CurveTo:
			n += CurveToSegments
			cur = Point{X: a.X, Y: a.Y}
		case *QuadBezier:
			n += QuadBezierSegments
			cur = Point{X: a.X, Y: a.Y}
		case *Arc:
			ca, res := EndpointToCentralArc(cur.X, cur.Y, a.X, a.Y, a.RX, a.RY, a.Angle, a.LargeArc, a.Sweep)
			switch res {
			case ArcOK:
				n += ca.Segments() * CurveToSegments
			case ArcLine:
				n++
			}
			cur = Point{X: a.X, Y: a.Y}
		case *Close:
			n++
			cur = Point{X: a.X, Y: a.Y}
		case *Rect:
			n += 4
			cur = Point{X: a.X, Y: a.Y}
		case *Ellipse:
			n += EllipseSegments
		}
	}
	return n
}

// polyline is one flattened subpath.
type polyline struct {
	pts    []Point
	closed bool
}

// flattener turns atoms into polylines under a transform.
type flattener struct {
	m     TMatrix
	scale float64 // step multiplier derived from the budget
	out   []polyline
	cur   polyline
	pen   Point // user-space current point
}

// flattenPath flattens p into device-space polylines. Curve step counts
// are the defaults reduced proportionally when the total would exceed
// maxSegments; maxSegments <= 0 means no limit. Every curve keeps at least
// two steps and line atoms are never merged, so a budget below that floor
// is exceeded.
func flattenPath(p *Path, m TMatrix, maxSegments int) []polyline {
	f := &flattener{m: m, scale: 1}
	if maxSegments > 0 {
		if total := MaxSegments(p); total > maxSegments {
			f.scale = float64(maxSegments) / float64(total)
		}
	}
	for _, a := range p.Atoms() {
		f.atom(a)
	}
	f.flush()
	return f.out
}

// steps scales a default step count by the budget, keeping two steps so
// a curve never collapses to its chord.
func (f *flattener) steps(n int) int {
	return max(2, int(math.Round(float64(n)*f.scale)))
}

func (f *flattener) flush() {
	if len(f.cur.pts) > 1 || (len(f.cur.pts) == 1 && f.cur.closed) {
		f.out = append(f.out, f.cur)
	}
	f.cur = polyline{}
}

func (f *flattener) moveTo(p Point) {
	f.flush()
	f.pen = p
	f.cur.pts = append(f.cur.pts, f.m.TransformPoint(p))
}

// ensurePen starts an implicit subpath after a Close.
func (f *flattener) ensurePen() {
	if len(f.cur.pts) == 0 {
		f.moveTo(f.pen)
	}
}

func (f *flattener) lineTo(p Point) {
	f.ensurePen()
	f.cur.pts = append(f.cur.pts, f.m.TransformPoint(p))
	f.pen = p
}

func (f *flattener) cubicTo(c [4]Point, steps int) {
	f.ensurePen()
	for _, q := range CurveSegments(c, false, f.steps(steps)) {
		f.cur.pts = append(f.cur.pts, f.m.TransformPoint(q))
	}
	f.pen = c[3]
}

func (f *flattener) closePath(origin Point) {
	if len(f.cur.pts) > 0 {
		f.cur.closed = true
		f.flush()
	}
	f.pen = origin
}

func (f *flattener) atom(a Atom) {
	switch a := a.(type) {
	case *MoveTo:
		f.moveTo(Point{X: a.X, Y: a.Y})
	case *LineTo:
		f.lineTo(Point{X: a.X, Y: a.Y})
	case *CurveTo:
		f.cubicTo([4]Point{f.pen, {X: a.CX1, Y: a.CY1}, {X: a.CX2, Y: a.CY2}, {X: a.X, Y: a.Y}}, CurveToSegments)
	case *QuadBezier:
		f.cubicTo(QuadToCubic([3]Point{f.pen, {X: a.CX, Y: a.CY}, {X: a.X, Y: a.Y}}), QuadBezierSegments)
	case *Arc:
		for _, b := range ArcToBezier(f.pen.X, f.pen.Y, a) {
			f.atom(b)
		}
		f.pen = Point{X: a.X, Y: a.Y}
	case *Close:
		f.closePath(Point{X: a.X, Y: a.Y})
	case *Rect:
		f.flush()
		x2, y2 := a.X+a.Width, a.Y+a.Height
		f.cur.pts = []Point{
			f.m.TransformPoint(Point{X: a.X, Y: a.Y}),
			f.m.TransformPoint(Point{X: x2, Y: a.Y}),
			f.m.TransformPoint(Point{X: x2, Y: y2}),
			f.m.TransformPoint(Point{X: a.X, Y: y2}),
		}
		f.closePath(Point{X: a.X, Y: a.Y})
	case *Ellipse:
		f.flush()
		start, quarters := EllipseCurves(a.CX, a.CY, a.RX, a.RY)
		f.cur.pts = append(f.cur.pts, f.m.TransformPoint(start))
		f.pen = start
		for _, q := range quarters {
			f.cubicTo([4]Point{f.pen, {X: q.CX1, Y: q.CY1}, {X: q.CX2, Y: q.CY2}, {X: q.X, Y: q.Y}}, EllipseSegments/4)
		}
		f.closePath(start)
	}
}
