package tkpath

import "math"

// ArcResult classifies the outcome of endpoint-to-center conversion.
type ArcResult int

const (
	// ArcOK means the arc has a valid center parameterization.
	ArcOK ArcResult = iota
	// ArcLine means a radius is zero and the arc degenerates to a line.
	ArcLine
	// ArcSkip means the endpoints coincide and nothing is drawn.
	ArcSkip
)

// String returns the name of the result.
func (r ArcResult) String() string {
	switch r {
	case ArcOK:
		return "ok"
	case ArcLine:
		return "line"
	case ArcSkip:
		return "skip"
	}
	return "unknown"
}

// kappa is the control distance of a quarter circle cubic, 4/3·tan(π/8).
const kappa = 0.5522847498307936

// maxArcSegment is the largest sweep covered by one cubic.
const maxArcSegment = math.Pi / 2

// CentralArc is the center parameterization of an elliptical arc. Phi,
// Theta1 and DTheta are in radians; DTheta is negative for sweep=false.
type CentralArc struct {
	CX, CY float64
	RX, RY float64
	Phi    float64
	Theta1 float64
	DTheta float64
}

// EndpointToCentralArc converts an SVG endpoint arc from (x1, y1) to
// (x2, y2) into center form. Radii too small for the chord are scaled up
// uniformly until the arc exists.
//
// Coincident endpoints give ArcSkip, whatever the flags: no full ellipse
// is drawn. A zero radius gives ArcLine.
func EndpointToCentralArc(x1, y1, x2, y2, rx, ry, phiDeg float64, largeArc, sweep bool) (CentralArc, ArcResult) {
	if x1 == x2 && y1 == y2 {
		return CentralArc{}, ArcSkip
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return CentralArc{}, ArcLine
	}

	phi := math.Mod(phiDeg, 360) * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// Midpoint difference in the ellipse's local frame.
	dx2 := (x1 - x2) / 2
	dy2 := (y1 - y2) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	if lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
	den := rx2*y1p*y1p + ry2*x1p*x1p
	coef := 0.0
	if den > 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta1 := math.Atan2(uy, ux)
	dtheta := math.Atan2(vy, vx) - theta1
	// atan2 differences lie in (-2π, 2π); fold them onto the sweep side.
	if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	} else if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	}

	return CentralArc{
		CX: cx, CY: cy,
		RX: rx, RY: ry,
		Phi:    phi,
		Theta1: theta1,
		DTheta: dtheta,
	}, ArcOK
}

// point returns the arc point at angle theta.
func (a CentralArc) point(theta float64) Point {
	sinPhi, cosPhi := math.Sincos(a.Phi)
	s, c := math.Sincos(theta)
	return Point{
		X: a.CX + a.RX*c*cosPhi - a.RY*s*sinPhi,
		Y: a.CY + a.RX*c*sinPhi + a.RY*s*cosPhi,
	}
}

// derivative returns d/dθ of point(θ).
func (a CentralArc) derivative(theta float64) Point {
	sinPhi, cosPhi := math.Sincos(a.Phi)
	s, c := math.Sincos(theta)
	return Point{
		X: -a.RX*s*cosPhi - a.RY*c*sinPhi,
		Y: -a.RX*s*sinPhi + a.RY*c*cosPhi,
	}
}

// Segments returns how many cubics approximate the arc: one per started
// quarter turn.
func (a CentralArc) Segments() int {
	n := int(math.Ceil(math.Abs(a.DTheta)/maxArcSegment - 1e-9))
	return max(n, 1)
}

// Curves returns the cubic approximation, segments of equal sweep no
// larger than 90 degrees. The last end point is the exact arc end.
func (a CentralArc) Curves() []*CurveTo {
	n := a.Segments()
	delta := a.DTheta / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4)

	curves := make([]*CurveTo, 0, n)
	theta := a.Theta1
	p0 := a.point(theta)
	for range n {
		next := theta + delta
		p3 := a.point(next)
		d0 := a.derivative(theta)
		d1 := a.derivative(next)
		curves = append(curves, &CurveTo{
			CX1: p0.X + k*d0.X, CY1: p0.Y + k*d0.Y,
			CX2: p3.X - k*d1.X, CY2: p3.Y - k*d1.Y,
			X: p3.X, Y: p3.Y,
		})
		theta, p0 = next, p3
	}
	return curves
}

// ArcToBezier converts arc, starting at the current point (x1, y1), into
// atoms: CurveTo atoms for a proper arc, one LineTo for a zero radius and
// nothing for coincident endpoints.
func ArcToBezier(x1, y1 float64, arc *Arc) []Atom {
	ca, res := EndpointToCentralArc(x1, y1, arc.X, arc.Y, arc.RX, arc.RY, arc.Angle, arc.LargeArc, arc.Sweep)
	switch res {
	case ArcSkip:
		return nil
	case ArcLine:
		return []Atom{&LineTo{X: arc.X, Y: arc.Y}}
	}
	curves := ca.Curves()
	// Snap the chain onto the requested end point.
	last := curves[len(curves)-1]
	last.X, last.Y = arc.X, arc.Y

	atoms := make([]Atom, len(curves))
	for i, c := range curves {
		atoms[i] = c
	}
	return atoms
}

// AppendArc appends the Bezier form of arc, starting at (x1, y1), to p.
func AppendArc(p *Path, x1, y1 float64, arc *Arc) {
	p.Append(ArcToBezier(x1, y1, arc)...)
}

// EllipseCurves returns the start point and the four quarter cubics of an
// ellipse, running clockwise on screen from the rightmost point.
func EllipseCurves(cx, cy, rx, ry float64) (Point, [4]CurveTo) {
	kx, ky := kappa*rx, kappa*ry
	return Point{X: cx + rx, Y: cy}, [4]CurveTo{
		{CX1: cx + rx, CY1: cy + ky, CX2: cx + kx, CY2: cy + ry, X: cx, Y: cy + ry},
		{CX1: cx - kx, CY1: cy + ry, CX2: cx - rx, CY2: cy + ky, X: cx - rx, Y: cy},
		{CX1: cx - rx, CY1: cy - ky, CX2: cx - kx, CY2: cy - ry, X: cx, Y: cy - ry},
		{CX1: cx + kx, CY1: cy - ry, CX2: cx + rx, CY2: cy - ky, X: cx + rx, Y: cy},
	}
}
