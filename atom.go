package tkpath

import "math"

// Atom is one path construction command. The set of implementations is
// closed: MoveTo, LineTo, CurveTo, QuadBezier, Arc, Close, Rect, Ellipse.
// Atoms are held by pointer so translate and scale can mutate in place.
type Atom interface {
	isAtom()
}

// MoveTo starts a new subpath at (X, Y).
type MoveTo struct{ X, Y float64 }

// LineTo draws a straight segment to (X, Y).
type LineTo struct{ X, Y float64 }

// CurveTo draws a cubic Bezier with control points (CX1, CY1) and
// (CX2, CY2) ending at (X, Y).
type CurveTo struct{ CX1, CY1, CX2, CY2, X, Y float64 }

// QuadBezier draws a quadratic Bezier with control point (CX, CY).
type QuadBezier struct{ CX, CY, X, Y float64 }

// Arc draws an elliptical arc to (X, Y) in SVG endpoint form. Angle is
// the x-axis rotation in degrees.
type Arc struct {
	RX, RY   float64
	Angle    float64
	LargeArc bool
	Sweep    bool
	X, Y     float64
}

// Close closes the current subpath. X and Y hold the subpath start,
// which becomes the current point.
type Close struct{ X, Y float64 }

// Rect is a closed axis-aligned rectangle subpath.
type Rect struct{ X, Y, Width, Height float64 }

// Ellipse is a closed ellipse subpath.
type Ellipse struct{ CX, CY, RX, RY float64 }

func (*MoveTo) isAtom()     {}
func (*LineTo) isAtom()     {}
func (*CurveTo) isAtom()    {}
func (*QuadBezier) isAtom() {}
func (*Arc) isAtom()        {}
func (*Close) isAtom()      {}
func (*Rect) isAtom()       {}
func (*Ellipse) isAtom()    {}

// Path is the atom list of one item. It is owned by the item that built
// it and is rebuilt, not copied, when the item's coordinates change.
//
// A Close atom must follow a MoveTo in the same list; the list is not
// validated against this.
type Path struct {
	atoms []Atom
}

// NewPath returns a path holding atoms.
func NewPath(atoms ...Atom) *Path {
	p := &Path{}
	p.Append(atoms...)
	return p
}

// Append adds atoms at the end of the list.
func (p *Path) Append(atoms ...Atom) {
	p.atoms = append(p.atoms, atoms...)
}

// Reset drops every atom.
func (p *Path) Reset() {
	clear(p.atoms)
	p.atoms = p.atoms[:0]
}

// Len returns the number of atoms.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.atoms)
}

// Atoms returns the atom list. The slice aliases the path.
func (p *Path) Atoms() []Atom {
	if p == nil {
		return nil
	}
	return p.atoms
}

// Translate moves every coordinate of every atom by (dx, dy).
func (p *Path) Translate(dx, dy float64) {
	for _, a := range p.Atoms() {
		switch a := a.(type) {
		case *MoveTo:
			a.X += dx
			a.Y += dy
		case *LineTo:
			a.X += dx
			a.Y += dy
		case *CurveTo:
			a.CX1 += dx
			a.CY1 += dy
			a.CX2 += dx
			a.CY2 += dy
			a.X += dx
			a.Y += dy
		case *QuadBezier:
			a.CX += dx
			a.CY += dy
			a.X += dx
			a.Y += dy
		case *Arc:
			a.X += dx
			a.Y += dy
		case *Close:
			a.X += dx
			a.Y += dy
		case *Rect:
			a.X += dx
			a.Y += dy
		case *Ellipse:
			a.CX += dx
			a.CY += dy
		}
	}
}

// Scale scales every coordinate about (ox, oy). Radii and sizes scale by
// the absolute factors; a negative factor on a Rect moves its origin so
// its size stays non-negative.
func (p *Path) Scale(ox, oy, sx, sy float64) {
	sc := func(x, y float64) (float64, float64) {
		return ox + (x-ox)*sx, oy + (y-oy)*sy
	}
	for _, a := range p.Atoms() {
		switch a := a.(type) {
		case *MoveTo:
			a.X, a.Y = sc(a.X, a.Y)
		case *LineTo:
			a.X, a.Y = sc(a.X, a.Y)
		case *CurveTo:
			a.CX1, a.CY1 = sc(a.CX1, a.CY1)
			a.CX2, a.CY2 = sc(a.CX2, a.CY2)
			a.X, a.Y = sc(a.X, a.Y)
		case *QuadBezier:
			a.CX, a.CY = sc(a.CX, a.CY)
			a.X, a.Y = sc(a.X, a.Y)
		case *Arc:
			a.RX *= math.Abs(sx)
			a.RY *= math.Abs(sy)
			if sx*sy < 0 {
				// A reflection reverses the arc orientation.
				a.Sweep = !a.Sweep
				a.Angle = -a.Angle
			}
			a.X, a.Y = sc(a.X, a.Y)
		case *Close:
			a.X, a.Y = sc(a.X, a.Y)
		case *Rect:
			x, y := sc(a.X, a.Y)
			w, h := a.Width*sx, a.Height*sy
			if w < 0 {
				x, w = x+w, -w
			}
			if h < 0 {
				y, h = y+h, -h
			}
			a.X, a.Y, a.Width, a.Height = x, y, w, h
		case *Ellipse:
			a.CX, a.CY = sc(a.CX, a.CY)
			a.RX *= math.Abs(sx)
			a.RY *= math.Abs(sy)
		}
	}
}

// Points returns every on-path vertex (subpath starts and segment ends)
// in order. Rect and Ellipse contribute no vertices.
func (p *Path) Points() []Point {
	var pts []Point
	for _, a := range p.Atoms() {
		switch a := a.(type) {
		case *MoveTo:
			pts = append(pts, Point{X: a.X, Y: a.Y})
		case *LineTo:
			pts = append(pts, Point{X: a.X, Y: a.Y})
		case *CurveTo:
			pts = append(pts, Point{X: a.X, Y: a.Y})
		case *QuadBezier:
			pts = append(pts, Point{X: a.X, Y: a.Y})
		case *Arc:
			pts = append(pts, Point{X: a.X, Y: a.Y})
		case *Close:
			pts = append(pts, Point{X: a.X, Y: a.Y})
		}
	}
	return pts
}

// Endpoints returns the points that orient the arrows of an open path:
// the first vertex and the point that leaves it, and the point that
// enters the last vertex followed by the last vertex. For curves the
// adjacent control point gives the direction.
func (p *Path) Endpoints() (first, second, penult, last Point, err error) {
	atoms := p.Atoms()
	var verts []Point
	var lastIn Point
	for _, a := range atoms {
		if _, ok := a.(*MoveTo); !ok && len(verts) == 0 {
			return first, second, penult, last, ErrNoArrowSegments
		}
		switch a := a.(type) {
		case *MoveTo:
			verts = append(verts, Point{X: a.X, Y: a.Y})
		case *LineTo:
			lastIn = verts[len(verts)-1]
			verts = append(verts, Point{X: a.X, Y: a.Y})
			if len(verts) == 2 {
				second = verts[1]
			}
		case *CurveTo:
			lastIn = Point{X: a.CX2, Y: a.CY2}
			if len(verts) == 1 {
				second = Point{X: a.CX1, Y: a.CY1}
			}
			verts = append(verts, Point{X: a.X, Y: a.Y})
		case *QuadBezier:
			lastIn = Point{X: a.CX, Y: a.CY}
			if len(verts) == 1 {
				second = lastIn
			}
			verts = append(verts, Point{X: a.X, Y: a.Y})
		case *Arc:
			lastIn = verts[len(verts)-1]
			verts = append(verts, Point{X: a.X, Y: a.Y})
			if len(verts) == 2 {
				second = verts[1]
			}
		default:
			// Close, Rect and Ellipse have no open end.
			return first, second, penult, last, ErrNoArrowSegments
		}
	}
	if len(verts) < 2 {
		return first, second, penult, last, ErrNoArrowSegments
	}
	return verts[0], second, lastIn, verts[len(verts)-1], nil
}

// endCoords returns pointers to the coordinates of the first or last
// vertex-bearing atom.
func (p *Path) endCoords(fromEnd bool) (x, y *float64) {
	atoms := p.Atoms()
	for k := range atoms {
		i := k
		if fromEnd {
			i = len(atoms) - 1 - k
		}
		switch a := atoms[i].(type) {
		case *MoveTo:
			return &a.X, &a.Y
		case *LineTo:
			return &a.X, &a.Y
		case *CurveTo:
			return &a.X, &a.Y
		case *QuadBezier:
			return &a.X, &a.Y
		case *Arc:
			return &a.X, &a.Y
		}
	}
	return nil, nil
}
