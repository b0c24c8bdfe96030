package tkpath

import "math"

// BareBbox returns the envelope of every point that defines p: vertices
// and curve control points. For curves this over-estimates the drawn
// extent; callers rely on the box being conservative. Arcs contribute
// the control points of their Bezier form.
func BareBbox(p *Path) PathRect {
	r := NewEmptyPathRect()
	var cur Point
	for _, a := range p.Atoms() {
		switch a := a.(type) {
		case *MoveTo:
			r.IncludePoint(a.X, a.Y)
			cur = Point{X: a.X, Y: a.Y}
		case *LineTo:
			r.IncludePoint(a.X, a.Y)
			cur = Point{X: a.X, Y: a.Y}
		case *CurveTo:
			r.IncludePoint(a.CX1, a.CY1)
			r.IncludePoint(a.CX2, a.CY2)
			r.IncludePoint(a.X, a.Y)
			cur = Point{X: a.X, Y: a.Y}
		case *QuadBezier:
			r.IncludePoint(a.CX, a.CY)
			r.IncludePoint(a.X, a.Y)
			cur = Point{X: a.X, Y: a.Y}
		case *Arc:
			for _, b := range ArcToBezier(cur.X, cur.Y, a) {
				switch b := b.(type) {
				case *CurveTo:
					r.IncludePoint(b.CX1, b.CY1)
					r.IncludePoint(b.CX2, b.CY2)
				}
			}
			r.IncludePoint(a.X, a.Y)
			cur = Point{X: a.X, Y: a.Y}
		case *Close:
			r.IncludePoint(a.X, a.Y)
			cur = Point{X: a.X, Y: a.Y}
		case *Rect:
			r.IncludePoint(a.X, a.Y)
			r.IncludePoint(a.X+a.Width, a.Y+a.Height)
			cur = Point{X: a.X, Y: a.Y}
		case *Ellipse:
			r.IncludePoint(a.CX-a.RX, a.CY-a.RY)
			r.IncludePoint(a.CX+a.RX, a.CY+a.RY)
		}
	}
	return r
}

// StrokeOutset returns how far the painted stroke of style can reach
// beyond the bare geometry: half the width, times the miter limit for
// miter joins and times √2 for projecting caps. Zero without a stroke.
func StrokeOutset(style *Style) float64 {
	if !style.HasStroke() {
		return 0
	}
	d := style.StrokeWidth / 2
	factor := 1.0
	if style.LineJoin == LineJoinMiter {
		factor = math.Max(factor, style.MiterLimit)
	}
	if style.LineCap == LineCapProjecting {
		factor = math.Max(factor, math.Sqrt2)
	}
	return d * factor
}

// TotalBboxFromBare inflates a bare bbox by the stroke outset of style.
func TotalBboxFromBare(bare PathRect, style *Style) PathRect {
	return bare.Outset(StrokeOutset(style))
}

// TotalBbox returns the user-space box covering everything style paints
// for p. It always contains BareBbox(p).
func TotalBbox(p *Path, style *Style) PathRect {
	return TotalBboxFromBare(BareBbox(p), style)
}

// EffectiveMatrix returns the transform of an item: the style matrix
// applied first, then the canvas matrix.
func EffectiveMatrix(canvas *TMatrix, style *Style) TMatrix {
	m := MatrixOrIdentity(canvas)
	if style != nil && style.Matrix != nil {
		m = Compose(m, *style.Matrix)
	}
	return m
}

// ItemBbox returns the canvas-space box of p painted with style under the
// canvas matrix. Rectilinear transforms map the box exactly; others take
// the envelope of its corners.
func ItemBbox(p *Path, style *Style, canvas *TMatrix) PathRect {
	return TotalBbox(p, style).Transform(EffectiveMatrix(canvas, style))
}
