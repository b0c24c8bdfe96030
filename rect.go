package tkpath

import "math"

// emptyCoord is the sentinel magnitude of an empty PathRect.
const emptyCoord = 1e36

// PathRect is an axis-aligned bounding box with X1 <= X2 and Y1 <= Y2.
// The empty rectangle returned by NewEmptyPathRect is inverted so that
// including the first point yields a degenerate box at that point.
type PathRect struct {
	X1, Y1, X2, Y2 float64
}

// NewEmptyPathRect returns the "no content yet" sentinel.
func NewEmptyPathRect() PathRect {
	return PathRect{X1: emptyCoord, Y1: emptyCoord, X2: -emptyCoord, Y2: -emptyCoord}
}

// IsEmpty reports whether r holds no points.
func (r PathRect) IsEmpty() bool {
	return r.X1 > r.X2 || r.Y1 > r.Y2
}

// Width returns X2-X1, or 0 for the empty rectangle.
func (r PathRect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.X2 - r.X1
}

// Height returns Y2-Y1, or 0 for the empty rectangle.
func (r PathRect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Y2 - r.Y1
}

// IncludePoint grows r to contain (x, y).
func (r *PathRect) IncludePoint(x, y float64) {
	r.X1 = math.Min(r.X1, x)
	r.Y1 = math.Min(r.Y1, y)
	r.X2 = math.Max(r.X2, x)
	r.Y2 = math.Max(r.Y2, y)
}

// Union returns the smallest rectangle containing r and o.
func (r PathRect) Union(o PathRect) PathRect {
	switch {
	case o.IsEmpty():
		return r
	case r.IsEmpty():
		return o
	}
	return PathRect{
		X1: math.Min(r.X1, o.X1),
		Y1: math.Min(r.Y1, o.Y1),
		X2: math.Max(r.X2, o.X2),
		Y2: math.Max(r.Y2, o.Y2),
	}
}

// Outset grows r by d on every side. Empty stays empty.
func (r PathRect) Outset(d float64) PathRect {
	if r.IsEmpty() {
		return r
	}
	return PathRect{X1: r.X1 - d, Y1: r.Y1 - d, X2: r.X2 + d, Y2: r.Y2 + d}
}

// Inset shrinks r by d on every side. The result is empty when d exceeds
// half the width or height.
func (r PathRect) Inset(d float64) PathRect {
	return r.Outset(-d)
}

// Translate moves r by (dx, dy).
func (r PathRect) Translate(dx, dy float64) PathRect {
	if r.IsEmpty() {
		return r
	}
	return PathRect{X1: r.X1 + dx, Y1: r.Y1 + dy, X2: r.X2 + dx, Y2: r.Y2 + dy}
}

// Scale scales r about (ox, oy), renormalizing for negative factors.
func (r PathRect) Scale(ox, oy, sx, sy float64) PathRect {
	if r.IsEmpty() {
		return r
	}
	x1, x2 := ox+(r.X1-ox)*sx, ox+(r.X2-ox)*sx
	y1, y2 := oy+(r.Y1-oy)*sy, oy+(r.Y2-oy)*sy
	return PathRect{
		X1: math.Min(x1, x2), Y1: math.Min(y1, y2),
		X2: math.Max(x1, x2), Y2: math.Max(y1, y2),
	}
}

// Transform returns the axis-aligned envelope of r's four corners under m.
// For rectilinear matrices the result is exact.
func (r PathRect) Transform(m TMatrix) PathRect {
	if r.IsEmpty() {
		return r
	}
	if m.IsRectilinear() {
		x1, y1 := m.Apply(r.X1, r.Y1)
		x2, y2 := m.Apply(r.X2, r.Y2)
		return PathRect{
			X1: math.Min(x1, x2), Y1: math.Min(y1, y2),
			X2: math.Max(x1, x2), Y2: math.Max(y1, y2),
		}
	}
	out := NewEmptyPathRect()
	for _, c := range r.Corners() {
		out.IncludePoint(m.Apply(c.X, c.Y))
	}
	return out
}

// Corners returns the four corners clockwise from (X1,Y1).
func (r PathRect) Corners() [4]Point {
	return [4]Point{
		{X: r.X1, Y: r.Y1},
		{X: r.X2, Y: r.Y1},
		{X: r.X2, Y: r.Y2},
		{X: r.X1, Y: r.Y2},
	}
}

// Contains reports whether (x, y) lies inside r, borders included.
func (r PathRect) Contains(x, y float64) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// ContainsRect reports whether o lies entirely inside r.
func (r PathRect) ContainsRect(o PathRect) bool {
	if o.IsEmpty() {
		return true
	}
	return o.X1 >= r.X1 && o.X2 <= r.X2 && o.Y1 >= r.Y1 && o.Y2 <= r.Y2
}

// Overlaps reports whether r and o share any point.
func (r PathRect) Overlaps(o PathRect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.X1 <= o.X2 && o.X1 <= r.X2 && r.Y1 <= o.Y2 && o.Y1 <= r.Y2
}
