package immediate

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/tkpath"
	"github.com/gogpu/tkpath/backend"
	"github.com/gogpu/tkpath/internal/flatten"
	"github.com/gogpu/tkpath/internal/raster"
	"github.com/gogpu/tkpath/internal/stroke"
)

func init() {
	tkpath.Register(backend.Immediate, New)
}

// Context is an immediate-mode drawing context.
type Context struct {
	*backend.Canvas

	width, height int

	// The native path: a vector rasterizer fed in device space, plus the
	// same geometry flattened for stroking and even-odd fills.
	z     *vector.Rasterizer
	flat  *flatten.Builder
	empty bool

	widthCode int
	pen       tkpath.Point // user space
	start     tkpath.Point
	hasPen    bool
}

var (
	_ tkpath.DrawingContext = (*Context)(nil)
	_ tkpath.TextContext    = (*Context)(nil)
	_ tkpath.Eraser         = (*Context)(nil)
	_ tkpath.Snapshotter    = (*Context)(nil)
)

// New creates a context drawing into dst.
func New(dst *image.RGBA, cfg tkpath.RenderConfig) (tkpath.DrawingContext, error) {
	c, err := backend.NewCanvas(backend.Immediate, dst, cfg)
	if err != nil {
		return nil, err
	}
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	return &Context{
		Canvas: c,
		width:  w,
		height: h,
		z:      vector.NewRasterizer(w, h),
		flat:   flatten.NewBuilder(flatten.Tolerance),
		empty:  true,
	}, nil
}

// DrawingDestroysPath reports true: painting consumes the path.
func (c *Context) DrawingDestroysPath() bool { return true }

// BeginPath starts an empty path.
func (c *Context) BeginPath(style *tkpath.Style) {
	c.clearPath()
	c.widthCode = 0
	if style != nil {
		c.widthCode = c.WidthCode(style)
	}
}

func (c *Context) clearPath() {
	c.z.Reset(c.width, c.height)
	c.flat.Reset()
	c.empty = true
	c.hasPen = false
}

// device maps a user point through the CTM and the pixel alignment.
func (c *Context) device(x, y float64) tkpath.Point {
	return backend.SnapDevice(c.widthCode, c.CTM.TransformPoint(tkpath.Point{X: x, Y: y}))
}

// curveDevice maps a control point; control points are not aligned.
func (c *Context) curveDevice(x, y float64) tkpath.Point {
	return c.CTM.TransformPoint(tkpath.Point{X: x, Y: y})
}

func (c *Context) MoveTo(x, y float64) {
	p := c.device(x, y)
	if c.hasPen {
		// Fill coverage needs every subpath closed.
		c.z.ClosePath()
	}
	c.z.MoveTo(float32(p.X), float32(p.Y))
	c.flat.MoveTo(flatten.Point(p))
	c.empty = false
	c.pen = tkpath.Point{X: x, Y: y}
	c.start = c.pen
	c.hasPen = true
}

func (c *Context) LineTo(x, y float64) {
	if !c.hasPen {
		return
	}
	p := c.device(x, y)
	c.z.LineTo(float32(p.X), float32(p.Y))
	c.flat.LineTo(flatten.Point(p))
	c.pen = tkpath.Point{X: x, Y: y}
}

func (c *Context) LinesTo(pts []tkpath.Point) {
	for _, p := range pts {
		c.LineTo(p.X, p.Y)
	}
}

// ArcTo adds the arc as cubic curves; the native path has no elliptical
// arc primitive.
func (c *Context) ArcTo(rx, ry, phiDeg float64, largeArc, sweep bool, x, y float64) {
	tkpath.ArcToCurves(c, rx, ry, phiDeg, largeArc, sweep, x, y)
}

func (c *Context) QuadBezier(cx, cy, x, y float64) {
	if !c.hasPen {
		return
	}
	q := c.curveDevice(cx, cy)
	p := c.device(x, y)
	c.z.QuadTo(float32(q.X), float32(q.Y), float32(p.X), float32(p.Y))
	c.flat.QuadTo(flatten.Point(q), flatten.Point(p))
	c.pen = tkpath.Point{X: x, Y: y}
}

func (c *Context) CurveTo(cx1, cy1, cx2, cy2, x, y float64) {
	if !c.hasPen {
		return
	}
	q1 := c.curveDevice(cx1, cy1)
	q2 := c.curveDevice(cx2, cy2)
	p := c.device(x, y)
	c.z.CubeTo(float32(q1.X), float32(q1.Y), float32(q2.X), float32(q2.Y), float32(p.X), float32(p.Y))
	c.flat.CubicTo(flatten.Point(q1), flatten.Point(q2), flatten.Point(p))
	c.pen = tkpath.Point{X: x, Y: y}
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
	c.MoveTo(start.X, start.Y)
	for _, q := range quarters {
		c.CurveTo(q.CX1, q.CY1, q.CX2, q.CY2, q.X, q.Y)
	}
	c.ClosePath()
}

func (c *Context) ClosePath() {
	if !c.hasPen {
		return
	}
	c.z.ClosePath()
	c.flat.Close()
	c.pen = c.start
}

// CurrentPoint returns the pen in user coordinates.
func (c *Context) CurrentPoint() (tkpath.Point, bool) {
	return c.pen, c.hasPen
}

// coverage returns the mask of the current path under rule.
func (c *Context) coverage(rule tkpath.FillRule) *image.Alpha {
	if c.empty {
		return nil
	}
	if rule == tkpath.FillRuleEvenOdd {
		return c.Coverage(polygons(c.flat), raster.FillRuleEvenOdd)
	}
	c.z.ClosePath()
	return c.draw(c.z)
}

// draw renders a vector rasterizer into a full-surface mask.
func (c *Context) draw(z *vector.Rasterizer) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, c.width, c.height))
	z.DrawOp = draw.Src
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	if !c.Config.AntiAlias {
		for i, a := range mask.Pix {
			if a >= 0x80 {
				mask.Pix[i] = 0xff
			} else {
				mask.Pix[i] = 0
			}
		}
	}
	return mask
}

func (c *Context) strokeMask(style *tkpath.Style) *image.Alpha {
	subs := c.flat.Subpaths()
	if len(subs) == 0 {
		return nil
	}
	polys := make([]stroke.Polyline, len(subs))
	for i, s := range subs {
		pts := make([]stroke.Point, len(s.Points))
		for j, p := range s.Points {
			pts[j] = stroke.Point(p)
		}
		polys[i] = stroke.Polyline{Points: pts, Closed: s.Closed}
	}
	outline := backend.StrokeOutline(style, polys, c.CTM.MeanScale(), flatten.Tolerance)
	if len(outline) == 0 {
		return nil
	}
	z := vector.NewRasterizer(c.width, c.height)
	for _, poly := range outline {
		z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
	}
	return c.draw(z)
}

func (c *Context) Fill(style *tkpath.Style) {
	if style != nil && style.Fill != nil {
		c.FillMask(c.coverage(style.FillRule), backend.Solid(style.Fill, style.FillOpacity))
	}
	c.clearPath()
}

func (c *Context) Stroke(style *tkpath.Style) {
	if style.HasStroke() {
		c.stroke(style)
	}
	c.clearPath()
}

func (c *Context) stroke(style *tkpath.Style) {
	if style.LineCap == tkpath.LineCapNotLast {
		c.Unsupported("notlast cap", "fallback", "butt")
	}
	c.FillMask(c.strokeMask(style), backend.Solid(style.Stroke, style.StrokeOpacity))
}

// FillAndStroke fills then strokes the same path before consuming it.
func (c *Context) FillAndStroke(style *tkpath.Style) {
	if style != nil && style.Fill != nil {
		c.FillMask(c.coverage(style.FillRule), backend.Solid(style.Fill, style.FillOpacity))
	}
	if style.HasStroke() {
		c.stroke(style)
	}
	c.clearPath()
}

func (c *Context) EndPath() {
	c.clearPath()
}

// ClipToPath intersects the clip with the path, consuming it.
func (c *Context) ClipToPath(rule tkpath.FillRule) {
	mask := c.coverage(rule)
	c.ClipMask(mask)
	c.clearPath()
}

func (c *Context) PaintLinearGradient(bbox tkpath.PathRect, fill *tkpath.LinearGradientFill, rule tkpath.FillRule, opacity float64) {
	if fill == nil {
		return
	}
	c.spread(fill.Method)
	segs := tkpath.AxialSegments(fill)
	if len(segs) == 0 {
		c.single(bbox, fill.Stops, opacity)
		return
	}
	area := c.AreaMask(bbox)
	for _, seg := range segs {
		if src, ok := c.AxialSource(fill, seg, bbox, opacity); ok {
			c.FillMask(area, src)
		}
	}
}

func (c *Context) PaintRadialGradient(bbox tkpath.PathRect, fill *tkpath.RadialGradientFill, rule tkpath.FillRule, opacity float64) {
	if fill == nil {
		return
	}
	c.spread(fill.Method)
	segs := tkpath.RadialSegments(fill)
	if len(segs) == 0 {
		c.single(bbox, fill.Stops, opacity)
		return
	}
	area := c.AreaMask(bbox)
	for _, seg := range segs {
		if src, ok := c.RadialSource(fill, seg, bbox, opacity); ok {
			c.FillMask(area, src)
		}
	}
}

func (c *Context) spread(m tkpath.SpreadMethod) {
	if m != tkpath.SpreadPad {
		c.Unsupported("gradient spread", "method", m.String(), "fallback", "pad")
	}
}

// single paints a gradient without a stop pair as its last stop color.
func (c *Context) single(bbox tkpath.PathRect, stops tkpath.GradientStopArray, opacity float64) {
	if len(stops) == 0 {
		return
	}
	last := stops[len(stops)-1]
	c.FillMask(c.AreaMask(bbox), backend.Solid(&last.Color, last.Opacity*opacity))
}

func polygons(b *flatten.Builder) [][]raster.Point {
	subs := b.Polygons()
	out := make([][]raster.Point, len(subs))
	for i, s := range subs {
		poly := make([]raster.Point, len(s))
		for j, p := range s {
			poly[j] = raster.Point(p)
		}
		out[i] = poly
	}
	return out
}
