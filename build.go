package tkpath

import (
	"fmt"
	"math"
)

// PolylineAtoms builds MoveTo/LineTo atoms from flat x,y coordinates. It
// needs at least two points.
func PolylineAtoms(coords []float64) (*Path, error) {
	if err := checkCoords(coords, 2); err != nil {
		return nil, err
	}
	p := &Path{atoms: make([]Atom, 0, len(coords)/2)}
	p.Append(&MoveTo{X: coords[0], Y: coords[1]})
	for i := 2; i < len(coords); i += 2 {
		p.Append(&LineTo{X: coords[i], Y: coords[i+1]})
	}
	return p, nil
}

// PolygonAtoms is PolylineAtoms followed by a Close back to the first
// point.
func PolygonAtoms(coords []float64) (*Path, error) {
	p, err := PolylineAtoms(coords)
	if err != nil {
		return nil, err
	}
	p.Append(&Close{X: coords[0], Y: coords[1]})
	return p, nil
}

func checkCoords(coords []float64, minPoints int) error {
	if len(coords)%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrOddCoordinates, len(coords))
	}
	if len(coords) < 2*minPoints {
		return fmt.Errorf("%w: expected at least %d coordinates, got %d", ErrTooFewPoints, 2*minPoints, len(coords))
	}
	return nil
}

// RoundedRectAtoms builds a rectangle with corner radii rx, ry. Radii are
// clamped to half the side lengths; a zero radius gives a Rect atom.
// Negative sizes are normalized.
func RoundedRectAtoms(x, y, w, h, rx, ry float64) *Path {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	rx = math.Min(math.Abs(rx), w/2)
	ry = math.Min(math.Abs(ry), h/2)
	if rx == 0 || ry == 0 {
		return NewPath(&Rect{X: x, Y: y, Width: w, Height: h})
	}
	x2, y2 := x+w, y+h
	return NewPath(
		&MoveTo{X: x + rx, Y: y},
		&LineTo{X: x2 - rx, Y: y},
		&Arc{RX: rx, RY: ry, Sweep: true, X: x2, Y: y + ry},
		&LineTo{X: x2, Y: y2 - ry},
		&Arc{RX: rx, RY: ry, Sweep: true, X: x2 - rx, Y: y2},
		&LineTo{X: x + rx, Y: y2},
		&Arc{RX: rx, RY: ry, Sweep: true, X: x, Y: y2 - ry},
		&LineTo{X: x, Y: y + ry},
		&Arc{RX: rx, RY: ry, Sweep: true, X: x + rx, Y: y},
		&Close{X: x + rx, Y: y},
	)
}

// EllipseAtoms builds a single Ellipse atom; a circle when rx == ry.
func EllipseAtoms(cx, cy, rx, ry float64) *Path {
	return NewPath(&Ellipse{CX: cx, CY: cy, RX: math.Abs(rx), RY: math.Abs(ry)})
}

// LineAtoms builds a two-point line.
func LineAtoms(x1, y1, x2, y2 float64) *Path {
	return NewPath(&MoveTo{X: x1, Y: y1}, &LineTo{X: x2, Y: y2})
}
