package tkpath

import "math"

// BuildPath replays the atoms of p as path construction calls on ctx.
// Runs of line segments are sent as one LinesTo.
func BuildPath(ctx DrawingContext, p *Path) {
	atoms := p.Atoms()
	for i := 0; i < len(atoms); i++ {
		switch a := atoms[i].(type) {
		case *MoveTo:
			ctx.MoveTo(a.X, a.Y)
		case *LineTo:
			j := i + 1
			for j < len(atoms) {
				if _, ok := atoms[j].(*LineTo); !ok {
					break
				}
				j++
			}
			if j-i == 1 {
				ctx.LineTo(a.X, a.Y)
				continue
			}
			pts := make([]Point, 0, j-i)
			for _, l := range atoms[i:j] {
				l := l.(*LineTo)
				pts = append(pts, Point{X: l.X, Y: l.Y})
			}
			ctx.LinesTo(pts)
			i = j - 1
		case *CurveTo:
			ctx.CurveTo(a.CX1, a.CY1, a.CX2, a.CY2, a.X, a.Y)
		case *QuadBezier:
			ctx.QuadBezier(a.CX, a.CY, a.X, a.Y)
		case *Arc:
			ctx.ArcTo(a.RX, a.RY, a.Angle, a.LargeArc, a.Sweep, a.X, a.Y)
		case *Close:
			ctx.ClosePath()
		case *Rect:
			ctx.Rect(a.X, a.Y, a.Width, a.Height)
		case *Ellipse:
			ctx.Oval(a.CX, a.CY, a.RX, a.RY)
		}
	}
}

// PaintPath builds p on ctx and paints it with style in the current
// transform. Gradient fills clip to the path, paint the gradient over the
// bare bbox and release the clip; the path is rebuilt for the stroke when
// the context consumed it.
//
// The returned error is the protocol error of a tracked context, if any.
func PaintPath(ctx DrawingContext, p *Path, style *Style) error {
	if p.Len() == 0 || style == nil {
		return ctxErr(ctx)
	}
	ctx.BeginPath(style)
	BuildPath(ctx, p)

	stroke := style.HasStroke()
	switch {
	case style.FillGradient != nil:
		ctx.ClipToPath(style.FillRule)
		PaintGradient(ctx, BareBbox(p), style.FillGradient, style.FillRule, style.FillOpacity)
		ctx.ReleaseClipToPath()
		if stroke {
			if ctx.DrawingDestroysPath() {
				BuildPath(ctx, p)
			}
			ctx.Stroke(style)
		}
	case style.Fill != nil && stroke:
		ctx.FillAndStroke(style)
	case style.Fill != nil:
		ctx.Fill(style)
	case stroke:
		ctx.Stroke(style)
	}
	ctx.EndPath()
	return ctxErr(ctx)
}

// DrawPath paints p with the item transform: the canvas matrix m with the
// style matrix applied first. State is saved and restored around the
// paint.
func DrawPath(ctx DrawingContext, p *Path, style *Style, m *TMatrix) error {
	ctx.SaveState()
	ctx.PushTMatrix(EffectiveMatrix(m, style))
	err := PaintPath(ctx, p, style)
	ctx.RestoreState()
	if err != nil {
		return err
	}
	return ctxErr(ctx)
}

// PaintGradient dispatches g to the matching gradient primitive of ctx.
func PaintGradient(ctx DrawingContext, bbox PathRect, g Gradient, rule FillRule, opacity float64) {
	switch g := g.(type) {
	case *LinearGradientFill:
		ctx.PaintLinearGradient(bbox, g, rule, opacity)
	case *RadialGradientFill:
		ctx.PaintRadialGradient(bbox, g, rule, opacity)
	}
}

// PaintArrow paints a configured arrow head of a line drawn with
// lineStyle. Filled arrows take the line's stroke color as their fill.
func PaintArrow(ctx DrawingContext, arrow *ArrowDescr, lineStyle *Style) error {
	p := ArrowPath(arrow)
	if p == nil || !lineStyle.HasStroke() {
		return ctxErr(ctx)
	}
	style := ArrowStyle(arrow, lineStyle)
	return PaintPath(ctx, p, &style)
}

// ArcToCurves adds an endpoint arc to ctx as cubic segments starting from
// the current point. Backends without native elliptical arcs implement
// ArcTo with it. Without a current point the arc is dropped.
func ArcToCurves(ctx DrawingContext, rx, ry, phiDeg float64, largeArc, sweep bool, x, y float64) {
	cur, ok := ctx.CurrentPoint()
	if !ok {
		return
	}
	arc := &Arc{RX: rx, RY: ry, Angle: phiDeg, LargeArc: largeArc, Sweep: sweep, X: x, Y: y}
	for _, a := range ArcToBezier(cur.X, cur.Y, arc) {
		switch a := a.(type) {
		case *LineTo:
			ctx.LineTo(a.X, a.Y)
		case *CurveTo:
			ctx.CurveTo(a.CX1, a.CY1, a.CX2, a.CY2, a.X, a.Y)
		}
	}
}

// WidthCode classifies a stroke width for pixel alignment: 1 for odd
// integer widths, 2 for even integer widths, 0 otherwise.
func WidthCode(width float64) int {
	w := math.Round(width)
	if w < 1 || math.Abs(width-w) > 1e-3 {
		return 0
	}
	if int(w)%2 == 1 {
		return 1
	}
	return 2
}

// Depixelize moves device coordinate x to a pixel center for odd widths
// (code 1) or a pixel boundary for even widths (code 2) so axis-aligned
// strokes cover whole pixels. Code 0 returns x unchanged.
func Depixelize(widthCode int, x float64) float64 {
	switch widthCode {
	case 1:
		return math.Floor(x+0.001) + 0.5
	case 2:
		return math.Floor(x + 0.001)
	}
	return x
}

// ctxErr returns the sticky error of contexts that keep one.
func ctxErr(ctx DrawingContext) error {
	if e, ok := ctx.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}
