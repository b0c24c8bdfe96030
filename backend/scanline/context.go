package scanline

import (
	"image"

	"github.com/gogpu/tkpath"
	"github.com/gogpu/tkpath/backend"
	"github.com/gogpu/tkpath/internal/flatten"
)

func init() {
	tkpath.Register(backend.Scanline, New)
}

// Context is a vertex-store drawing context.
type Context struct {
	*backend.Canvas

	// vertices holds the flattened path in user coordinates.
	vertices  *flatten.Builder
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
	c, err := backend.NewCanvas(backend.Scanline, dst, cfg)
	if err != nil {
		return nil, err
	}
	return &Context{
		Canvas:   c,
		vertices: flatten.NewBuilder(flatten.Tolerance),
	}, nil
}

// DrawingDestroysPath reports false: the vertex store survives painting.
func (c *Context) DrawingDestroysPath() bool { return false }

func (c *Context) BeginPath(style *tkpath.Style) {
	c.vertices.Reset()
	c.vertices.SetTolerance(c.UserTolerance())
	c.widthCode = 0
	if style != nil {
		c.widthCode = c.WidthCode(style)
	}
}

func (c *Context) vertex(x, y float64) flatten.Point {
	return flatten.Point(c.SnapUser(c.widthCode, tkpath.Point{X: x, Y: y}))
}

func (c *Context) MoveTo(x, y float64) {
	c.vertices.MoveTo(c.vertex(x, y))
}

func (c *Context) LineTo(x, y float64) {
	if _, ok := c.vertices.Current(); ok {
		c.vertices.LineTo(c.vertex(x, y))
	}
}

func (c *Context) LinesTo(pts []tkpath.Point) {
	for _, p := range pts {
		c.LineTo(p.X, p.Y)
	}
}

func (c *Context) ArcTo(rx, ry, phiDeg float64, largeArc, sweep bool, x, y float64) {
	tkpath.ArcToCurves(c, rx, ry, phiDeg, largeArc, sweep, x, y)
}

func (c *Context) QuadBezier(cx, cy, x, y float64) {
	if _, ok := c.vertices.Current(); ok {
		c.vertices.QuadTo(flatten.Point{X: cx, Y: cy}, c.vertex(x, y))
	}
}

func (c *Context) CurveTo(cx1, cy1, cx2, cy2, x, y float64) {
	if _, ok := c.vertices.Current(); ok {
		c.vertices.CubicTo(flatten.Point{X: cx1, Y: cy1}, flatten.Point{X: cx2, Y: cy2}, c.vertex(x, y))
	}
}

func (c *Context) Rect(x, y, width, height float64) {
	c.MoveTo(x, y)
	c.LineTo(x+width, y)
	c.LineTo(x+width, y+height)
	c.LineTo(x, y+height)
	c.ClosePath()
}

func (c *Context) Oval(cx, cy, rx, ry float64) {
	start, quarters := tkpath.EllipseCurves(cx, cy, rx, ry)
	c.vertices.MoveTo(flatten.Point(start))
	for _, q := range quarters {
		c.vertices.CubicTo(flatten.Point{X: q.CX1, Y: q.CY1}, flatten.Point{X: q.CX2, Y: q.CY2}, flatten.Point{X: q.X, Y: q.Y})
	}
	c.vertices.Close()
}

func (c *Context) ClosePath() {
	c.vertices.Close()
}

// CurrentPoint returns the last vertex in user coordinates.
func (c *Context) CurrentPoint() (tkpath.Point, bool) {
	p, ok := c.vertices.Current()
	return tkpath.Point(p), ok
}

func (c *Context) Fill(style *tkpath.Style) {
	if style == nil || style.Fill == nil || c.vertices.Empty() {
		return
	}
	mask := c.FillUser(c.vertices.Subpaths(), style.FillRule)
	c.FillMask(mask, backend.Solid(style.Fill, style.FillOpacity))
}

func (c *Context) Stroke(style *tkpath.Style) {
	if !style.HasStroke() || c.vertices.Empty() {
		return
	}
	if style.LineCap == tkpath.LineCapNotLast {
		c.Unsupported("notlast cap", "fallback", "butt")
	}
	mask := c.StrokeUser(style, c.vertices.Subpaths())
	c.FillMask(mask, backend.Solid(style.Stroke, style.StrokeOpacity))
}

func (c *Context) FillAndStroke(style *tkpath.Style) {
	c.Fill(style)
	c.Stroke(style)
}

func (c *Context) EndPath() {
	c.vertices.Reset()
}

func (c *Context) ClipToPath(rule tkpath.FillRule) {
	c.ClipMask(c.FillUser(c.vertices.Subpaths(), rule))
}

func (c *Context) PaintLinearGradient(bbox tkpath.PathRect, fill *tkpath.LinearGradientFill, rule tkpath.FillRule, opacity float64) {
	if fill != nil {
		c.span(bbox, fill, opacity)
	}
}

func (c *Context) PaintRadialGradient(bbox tkpath.PathRect, fill *tkpath.RadialGradientFill, rule tkpath.FillRule, opacity float64) {
	if fill != nil {
		c.span(bbox, fill, opacity)
	}
}

// span shades bbox pixel by pixel through the clip.
func (c *Context) span(bbox tkpath.PathRect, g tkpath.Gradient, opacity float64) {
	if len(g.GradientStops()) == 0 {
		return
	}
	src, ok := c.GradientSource(g, bbox, opacity)
	if !ok {
		c.Unsupported("gradient", "reason", "singular transform")
		return
	}
	c.FillMask(c.AreaMask(bbox), src)
}
