package retained

import (
	"image"

	"github.com/gogpu/tkpath"
	"github.com/gogpu/tkpath/backend"
)

func init() {
	tkpath.Register(backend.Retained, New)
}

// Context is a retained-figure drawing context.
type Context struct {
	*backend.Canvas

	figures   []*figure
	widthCode int
}

var (
	_ tkpath.DrawingContext = (*Context)(nil)
	_ tkpath.TextContext    = (*Context)(nil)
	_ tkpath.Eraser         = (*Context)(nil)
	_ tkpath.Snapshotter    = (*Context)(nil)
)

// New creates a context drawing into dst.
func New(dst *image.RGBA, cfg tkpath.RenderConfig) (tkpath.DrawingContext, error) {
	c, err := backend.NewCanvas(backend.Retained, dst, cfg)
	if err != nil {
		return nil, err
	}
	return &Context{Canvas: c}, nil
}

// DrawingDestroysPath reports false: figures survive painting.
func (c *Context) DrawingDestroysPath() bool { return false }

func (c *Context) BeginPath(style *tkpath.Style) {
	c.figures = c.figures[:0]
	c.widthCode = 0
	if style != nil {
		c.widthCode = c.WidthCode(style)
	}
}

// current returns the open figure, or nil.
func (c *Context) current() *figure {
	if len(c.figures) == 0 {
		return nil
	}
	f := c.figures[len(c.figures)-1]
	if f.closed {
		// A segment after a close continues from the figure start.
		nf := &figure{start: f.start}
		c.figures = append(c.figures, nf)
		return nf
	}
	return f
}

func (c *Context) snap(x, y float64) tkpath.Point {
	return c.SnapUser(c.widthCode, tkpath.Point{X: x, Y: y})
}

func (c *Context) MoveTo(x, y float64) {
	c.figures = append(c.figures, &figure{start: c.snap(x, y)})
}

func (c *Context) LineTo(x, y float64) {
	if f := c.current(); f != nil {
		f.segs = append(f.segs, segment{kind: segLine, pts: [3]tkpath.Point{c.snap(x, y)}})
	}
}

// LinesTo adds a polyline, like AddLines.
func (c *Context) LinesTo(pts []tkpath.Point) {
	f := c.current()
	if f == nil {
		return
	}
	for _, p := range pts {
		f.segs = append(f.segs, segment{kind: segLine, pts: [3]tkpath.Point{c.snap(p.X, p.Y)}})
	}
}

func (c *Context) ArcTo(rx, ry, phiDeg float64, largeArc, sweep bool, x, y float64) {
	tkpath.ArcToCurves(c, rx, ry, phiDeg, largeArc, sweep, x, y)
}

func (c *Context) QuadBezier(cx, cy, x, y float64) {
	if f := c.current(); f != nil {
		f.segs = append(f.segs, segment{kind: segQuad, pts: [3]tkpath.Point{{X: cx, Y: cy}, c.snap(x, y)}})
	}
}

func (c *Context) CurveTo(cx1, cy1, cx2, cy2, x, y float64) {
	if f := c.current(); f != nil {
		f.segs = append(f.segs, segment{kind: segCubic, pts: [3]tkpath.Point{{X: cx1, Y: cy1}, {X: cx2, Y: cy2}, c.snap(x, y)}})
	}
}

// Rect adds a closed rectangle figure.
func (c *Context) Rect(x, y, width, height float64) {
	p0 := c.snap(x, y)
	p1 := c.snap(x+width, y+height)
	c.figures = append(c.figures, &figure{
		start: p0,
		segs: []segment{
			{kind: segLine, pts: [3]tkpath.Point{{X: p1.X, Y: p0.Y}}},
			{kind: segLine, pts: [3]tkpath.Point{p1}},
			{kind: segLine, pts: [3]tkpath.Point{{X: p0.X, Y: p1.Y}}},
		},
		closed: true,
	})
}

// Oval adds a closed ellipse figure of four cubic quarters.
func (c *Context) Oval(cx, cy, rx, ry float64) {
	start, quarters := tkpath.EllipseCurves(cx, cy, rx, ry)
	f := &figure{start: start, closed: true}
	for _, q := range quarters {
		f.segs = append(f.segs, segment{kind: segCubic, pts: [3]tkpath.Point{{X: q.CX1, Y: q.CY1}, {X: q.CX2, Y: q.CY2}, {X: q.X, Y: q.Y}}})
	}
	c.figures = append(c.figures, f)
}

func (c *Context) ClosePath() {
	if n := len(c.figures); n > 0 {
		c.figures[n-1].closed = true
	}
}

// CurrentPoint returns the end of the last figure in user coordinates.
func (c *Context) CurrentPoint() (tkpath.Point, bool) {
	n := len(c.figures)
	if n == 0 {
		return tkpath.Point{}, false
	}
	f := c.figures[n-1]
	if f.closed {
		return f.start, true
	}
	return f.end(), true
}

func (c *Context) fillMask(rule tkpath.FillRule) *image.Alpha {
	if len(c.figures) == 0 {
		return nil
	}
	return c.FillUser(flattenFigures(c.figures, c.UserTolerance()), rule)
}

func (c *Context) Fill(style *tkpath.Style) {
	if style == nil || style.Fill == nil {
		return
	}
	c.FillMask(c.fillMask(style.FillRule), backend.Solid(style.Fill, style.FillOpacity))
}

func (c *Context) Stroke(style *tkpath.Style) {
	if !style.HasStroke() || len(c.figures) == 0 {
		return
	}
	if style.LineCap == tkpath.LineCapNotLast {
		c.Unsupported("notlast cap", "fallback", "butt")
	}
	mask := c.StrokeUser(style, flattenFigures(c.figures, c.UserTolerance()))
	c.FillMask(mask, backend.Solid(style.Stroke, style.StrokeOpacity))
}

func (c *Context) FillAndStroke(style *tkpath.Style) {
	c.Fill(style)
	c.Stroke(style)
}

func (c *Context) EndPath() {
	c.figures = c.figures[:0]
}

// ClipToPath intersects the clip with the figures. The figures are kept.
func (c *Context) ClipToPath(rule tkpath.FillRule) {
	c.ClipMask(c.fillMask(rule))
}

// PaintLinearGradient shades every pixel of bbox, honoring the spread
// method.
func (c *Context) PaintLinearGradient(bbox tkpath.PathRect, fill *tkpath.LinearGradientFill, rule tkpath.FillRule, opacity float64) {
	if fill == nil || len(fill.Stops) == 0 {
		return
	}
	if src, ok := c.GradientSource(fill, bbox, opacity); ok {
		c.FillMask(c.AreaMask(bbox), src)
	}
}

// PaintRadialGradient draws one band per adjacent stop pair.
func (c *Context) PaintRadialGradient(bbox tkpath.PathRect, fill *tkpath.RadialGradientFill, rule tkpath.FillRule, opacity float64) {
	if fill == nil || len(fill.Stops) == 0 {
		return
	}
	if fill.Method != tkpath.SpreadPad {
		c.Unsupported("radial gradient spread", "method", fill.Method.String(), "fallback", "pad")
	}
	area := c.AreaMask(bbox)
	segs := tkpath.RadialSegments(fill)
	if len(segs) == 0 {
		last := fill.Stops[len(fill.Stops)-1]
		c.FillMask(area, backend.Solid(&last.Color, last.Opacity*opacity))
		return
	}
	for _, seg := range segs {
		if src, ok := c.RadialSource(fill, seg, bbox, opacity); ok {
			c.FillMask(area, src)
		}
	}
}
