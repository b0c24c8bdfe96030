package backend

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/tkpath"
	"github.com/gogpu/tkpath/internal/flatten"
	"github.com/gogpu/tkpath/internal/raster"
	"github.com/gogpu/tkpath/internal/stroke"
)

func floor(v float64) int { return int(math.Floor(v)) }
func ceil(v float64) int  { return int(math.Ceil(v)) }

// RasterRule converts a fill rule.
func RasterRule(r tkpath.FillRule) raster.FillRule {
	if r == tkpath.FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

// StrokeParams converts the stroke fields of style, with the width
// multiplied by scale.
func StrokeParams(style *tkpath.Style, scale float64) stroke.Stroke {
	s := stroke.Stroke{
		Width:      style.StrokeWidth * scale,
		MiterLimit: style.MiterLimit,
	}
	switch style.LineCap {
	case tkpath.LineCapRound:
		s.Cap = stroke.LineCapRound
	case tkpath.LineCapProjecting:
		s.Cap = stroke.LineCapSquare
	default:
		s.Cap = stroke.LineCapButt
	}
	switch style.LineJoin {
	case tkpath.LineJoinMiter:
		s.Join = stroke.LineJoinMiter
	case tkpath.LineJoinBevel:
		s.Join = stroke.LineJoinBevel
	default:
		s.Join = stroke.LineJoinRound
	}
	return s
}

// StrokeOutline dashes polys with style's pattern and returns the stroke
// polygons. Lengths are multiplied by scale, for callers stroking in
// device space; tol bounds the chord error of round joins and caps.
func StrokeOutline(style *tkpath.Style, polys []stroke.Polyline, scale, tol float64) [][]raster.Point {
	if style.Dash.IsDashed() {
		d := style.Dash.Scale(scale)
		polys = stroke.Dash(polys, d.Effective(), d.NormalizedOffset())
	}
	params := StrokeParams(style, scale)
	params.Tolerance = tol
	out := stroke.Outline(params, polys)
	return toRaster(out)
}

func toRaster(polys [][]stroke.Point) [][]raster.Point {
	out := make([][]raster.Point, len(polys))
	for i, poly := range polys {
		rp := make([]raster.Point, len(poly))
		for j, p := range poly {
			rp[j] = raster.Point(p)
		}
		out[i] = rp
	}
	return out
}

// UserTolerance returns the flattening tolerance in user units that keeps
// the device error within flatten.Tolerance under the current transform.
func (c *Canvas) UserTolerance() float64 {
	if s := c.CTM.AbsMax(); s > 1e-9 {
		return flatten.Tolerance / s
	}
	return flatten.Tolerance
}

// FillUser rasterizes user-space subpaths under the current transform.
func (c *Canvas) FillUser(subs []flatten.Subpath, rule tkpath.FillRule) *image.Alpha {
	polys := make([][]raster.Point, 0, len(subs))
	for _, s := range subs {
		if len(s.Points) < 2 {
			continue
		}
		poly := make([]raster.Point, len(s.Points))
		for i, p := range s.Points {
			poly[i] = raster.Point(c.CTM.TransformPoint(tkpath.Point(p)))
		}
		polys = append(polys, poly)
	}
	return c.rast.Mask(polys, RasterRule(rule))
}

// StrokeUser strokes user-space subpaths with style, then rasterizes the
// outline under the current transform, so non-uniform scales widen the
// stroke the way they widen the geometry.
func (c *Canvas) StrokeUser(style *tkpath.Style, subs []flatten.Subpath) *image.Alpha {
	polys := make([]stroke.Polyline, len(subs))
	for i, s := range subs {
		pts := make([]stroke.Point, len(s.Points))
		for j, p := range s.Points {
			pts[j] = stroke.Point(p)
		}
		polys[i] = stroke.Polyline{Points: pts, Closed: s.Closed}
	}
	outline := StrokeOutline(style, polys, 1, c.UserTolerance())
	for _, poly := range outline {
		for i, p := range poly {
			poly[i] = raster.Point(c.CTM.TransformPoint(tkpath.Point(p)))
		}
	}
	return c.rast.Mask(outline, raster.FillRuleNonZero)
}

// Solid returns a uniform source for c at opacity.
func Solid(c *tkpath.Color, opacity float64) raster.Source {
	if c == nil {
		return raster.Uniform{}
	}
	return raster.Uniform(c.NRGBA(opacity))
}

// Coverage rasterizes device polygons.
func (c *Canvas) Coverage(polys [][]raster.Point, rule raster.FillRule) *image.Alpha {
	return c.rast.Mask(polys, rule)
}

// FillMask composites src through mask and the clip.
func (c *Canvas) FillMask(mask *image.Alpha, src raster.Source) {
	c.Surface.Fill(mask, src)
}

// ClipMask intersects the clip with mask.
func (c *Canvas) ClipMask(mask *image.Alpha) {
	c.Surface.PushClip(mask)
}

// WidthCode returns the pixel alignment class of style's stroke under the
// current transform. Alignment applies only to uniform axis-aligned
// transforms and only when enabled.
func (c *Canvas) WidthCode(style *tkpath.Style) int {
	if !c.Config.Depixelize || !style.HasStroke() {
		return 0
	}
	m := c.CTM
	if !m.IsRectilinear() || math.Abs(m.A) != math.Abs(m.D) {
		return 0
	}
	return tkpath.WidthCode(style.StrokeWidth * math.Abs(m.A))
}

// SnapDevice aligns a device point.
func SnapDevice(code int, p tkpath.Point) tkpath.Point {
	if code == 0 {
		return p
	}
	return tkpath.Point{X: tkpath.Depixelize(code, p.X), Y: tkpath.Depixelize(code, p.Y)}
}

// SnapUser aligns a user point by snapping its device image.
func (c *Canvas) SnapUser(code int, p tkpath.Point) tkpath.Point {
	if code == 0 {
		return p
	}
	inv, err := c.CTM.Invert()
	if err != nil {
		return p
	}
	return inv.TransformPoint(SnapDevice(code, c.CTM.TransformPoint(p)))
}

// AreaMask returns the device coverage of a user-space rectangle.
func (c *Canvas) AreaMask(r tkpath.PathRect) *image.Alpha {
	if r.IsEmpty() {
		return nil
	}
	corners := r.Corners()
	poly := make([]raster.Point, len(corners))
	for i, p := range corners {
		poly[i] = raster.Point(c.CTM.TransformPoint(p))
	}
	return c.rast.Mask([][]raster.Point{poly}, raster.FillRuleNonZero)
}

// gradientInverse returns the map from device pixels to gradient space
// for a gradient painted over bbox.
func (c *Canvas) gradientInverse(g tkpath.Gradient, bbox tkpath.PathRect) (tkpath.TMatrix, bool) {
	user, err := c.CTM.Invert()
	if err != nil {
		return tkpath.TMatrix{}, false
	}
	grad, err := tkpath.GradientSpace(bbox, g.GradientUnits()).Invert()
	if err != nil {
		return tkpath.TMatrix{}, false
	}
	return tkpath.Compose(grad, user), true
}

// GradientSource evaluates g at every pixel, spread method included.
func (c *Canvas) GradientSource(g tkpath.Gradient, bbox tkpath.PathRect, opacity float64) (raster.Source, bool) {
	inv, ok := c.gradientInverse(g, bbox)
	if !ok {
		return nil, false
	}
	linear := c.Config.LinearRGB
	return raster.SourceFunc(func(x, y int) color.NRGBA {
		col, a := tkpath.EvaluateGradient(g, inv, pixelCenter(x, y), opacity, linear)
		return col.NRGBA(a)
	}), true
}

// AxialSource shades one two-stop segment of a linear gradient. Pixels
// beyond a non-extending end stay transparent.
func (c *Canvas) AxialSource(g tkpath.Gradient, seg tkpath.AxialSegment, bbox tkpath.PathRect, opacity float64) (raster.Source, bool) {
	inv, ok := c.gradientInverse(g, bbox)
	if !ok {
		return nil, false
	}
	linear := c.Config.LinearRGB
	return raster.SourceFunc(func(x, y int) color.NRGBA {
		t, ok := seg.ParamAt(inv.TransformPoint(pixelCenter(x, y)))
		if !ok {
			return color.NRGBA{}
		}
		col, a := seg.ColorAt(t, linear)
		return col.NRGBA(a * opacity)
	}), true
}

// RadialSource shades one two-stop segment of a radial gradient.
func (c *Canvas) RadialSource(g tkpath.Gradient, seg tkpath.RadialSegment, bbox tkpath.PathRect, opacity float64) (raster.Source, bool) {
	inv, ok := c.gradientInverse(g, bbox)
	if !ok {
		return nil, false
	}
	linear := c.Config.LinearRGB
	return raster.SourceFunc(func(x, y int) color.NRGBA {
		t, ok := seg.ParamAt(inv.TransformPoint(pixelCenter(x, y)))
		if !ok {
			return color.NRGBA{}
		}
		col, a := seg.ColorAt(t, linear)
		return col.NRGBA(a * opacity)
	}), true
}

func pixelCenter(x, y int) tkpath.Point {
	return tkpath.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}
