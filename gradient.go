package tkpath

import (
	"math"

	"github.com/gogpu/tkpath/internal/color"
)

// stopEpsilon is the offset difference below which two stops are treated
// as coincident and produce no shading segment.
const stopEpsilon = 1e-6

// SpreadMethod defines how a gradient extends beyond [0,1].
type SpreadMethod int

const (
	// SpreadPad continues the edge colors (default).
	SpreadPad SpreadMethod = iota
	// SpreadRepeat tiles the gradient.
	SpreadRepeat
	// SpreadReflect tiles the gradient, mirroring every other tile.
	SpreadReflect
)

var spreadNames = [...]string{
	SpreadPad:     "pad",
	SpreadRepeat:  "repeat",
	SpreadReflect: "reflect",
}

func (m SpreadMethod) String() string {
	if int(m) < len(spreadNames) {
		return spreadNames[m]
	}
	return "unknown"
}

// GradientUnits selects the coordinate system of gradient geometry.
type GradientUnits int

const (
	// UnitsBoundingBox maps (0,0)-(1,1) onto the painted item's bbox.
	UnitsBoundingBox GradientUnits = iota
	// UnitsUserSpace uses the item's user coordinates directly.
	UnitsUserSpace
)

// GradientStop is one color stop.
type GradientStop struct {
	Offset  float64
	Color   Color
	Opacity float64
}

// GradientStopArray is the stop list of a gradient, ordered by
// non-decreasing offset by convention. The order is not enforced.
type GradientStopArray []GradientStop

// ColorAt returns the interpolated color and opacity at offset t. Values
// outside the stop range take the nearest end stop.
func (s GradientStopArray) ColorAt(t float64, linearRGB bool) (Color, float64) {
	switch {
	case len(s) == 0:
		return Black, 0
	case t <= s[0].Offset:
		return s[0].Color, s[0].Opacity
	case t >= s[len(s)-1].Offset:
		last := s[len(s)-1]
		return last.Color, last.Opacity
	}
	for i := 1; i < len(s); i++ {
		if t > s[i].Offset {
			continue
		}
		a, b := s[i-1], s[i]
		span := b.Offset - a.Offset
		if span < stopEpsilon {
			return b.Color, b.Opacity
		}
		u := (t - a.Offset) / span
		return LerpColor(a.Color, b.Color, u, linearRGB), a.Opacity + (b.Opacity-a.Opacity)*u
	}
	last := s[len(s)-1]
	return last.Color, last.Opacity
}

// LerpColor interpolates two colors, in linear light when linearRGB is
// set and in sRGB otherwise.
func LerpColor(a, b Color, t float64, linearRGB bool) Color {
	if !linearRGB {
		return a.Lerp(b, t)
	}
	out := color.Lerp(color.RGB(a), color.RGB(b), t, color.Linear)
	return Color(out)
}

// SpreadResolver maps an unbounded gradient parameter into [0,1].
type SpreadResolver interface {
	Resolve(t float64) float64
}

// PadSpread clamps to [0,1].
type PadSpread struct{}

// Resolve implements SpreadResolver.
func (PadSpread) Resolve(t float64) float64 {
	return min(max(t, 0), 1)
}

// RepeatSpread keeps the fractional part, a sawtooth of period 1.
type RepeatSpread struct{}

// Resolve implements SpreadResolver.
func (RepeatSpread) Resolve(t float64) float64 {
	return t - math.Floor(t)
}

// ReflectSpread is a triangle wave of period 2: 0→1 then 1→0.
type ReflectSpread struct{}

// Resolve implements SpreadResolver.
func (ReflectSpread) Resolve(t float64) float64 {
	t = math.Mod(math.Abs(t), 2)
	if t > 1 {
		t = 2 - t
	}
	return t
}

// SpreadFor returns the resolver of m. Unknown methods pad.
func SpreadFor(m SpreadMethod) SpreadResolver {
	switch m {
	case SpreadRepeat:
		return RepeatSpread{}
	case SpreadReflect:
		return ReflectSpread{}
	}
	return PadSpread{}
}

// Gradient is a gradient fill: *LinearGradientFill or *RadialGradientFill.
type Gradient interface {
	isGradient()
	// GradientStops returns the stop array.
	GradientStops() GradientStopArray
	// Spread returns the spread method.
	Spread() SpreadMethod
	// GradientUnits returns the coordinate system of the geometry.
	GradientUnits() GradientUnits
	// ParamAt returns the unresolved gradient parameter at a point given
	// in gradient space.
	ParamAt(p Point) float64
}

// LinearGradientFill varies color along the transition line from
// (Transition.X1, Transition.Y1) to (Transition.X2, Transition.Y2).
type LinearGradientFill struct {
	Transition PathRect
	Stops      GradientStopArray
	Method     SpreadMethod
	Units      GradientUnits
}

// NewLinearGradientFill returns a left-to-right gradient in bbox units.
func NewLinearGradientFill(stops ...GradientStop) *LinearGradientFill {
	return &LinearGradientFill{
		Transition: PathRect{X1: 0, Y1: 0, X2: 1, Y2: 0},
		Stops:      stops,
	}
}

func (*LinearGradientFill) isGradient() {}

// GradientStops implements Gradient.
func (g *LinearGradientFill) GradientStops() GradientStopArray { return g.Stops }

// Spread implements Gradient.
func (g *LinearGradientFill) Spread() SpreadMethod { return g.Method }

// GradientUnits implements Gradient.
func (g *LinearGradientFill) GradientUnits() GradientUnits { return g.Units }

// ParamAt projects p onto the transition line. A zero-length line
// yields 0 everywhere.
func (g *LinearGradientFill) ParamAt(p Point) float64 {
	p1 := Point{X: g.Transition.X1, Y: g.Transition.Y1}
	d := Point{X: g.Transition.X2, Y: g.Transition.Y2}.Sub(p1)
	l2 := d.Dot(d)
	if l2 == 0 {
		return 0
	}
	return p.Sub(p1).Dot(d) / l2
}

// RadialGradientFill varies color over circles growing from the focal
// point (offset 0) to the circle of Radius around the center (offset 1).
type RadialGradientFill struct {
	CenterX, CenterY float64
	FocalX, FocalY   float64
	Radius           float64
	Stops            GradientStopArray
	Method           SpreadMethod
	Units            GradientUnits
}

// NewRadialGradientFill returns a centered gradient in bbox units.
func NewRadialGradientFill(stops ...GradientStop) *RadialGradientFill {
	return &RadialGradientFill{
		CenterX: 0.5, CenterY: 0.5,
		FocalX: 0.5, FocalY: 0.5,
		Radius: 0.5,
		Stops:  stops,
	}
}

func (*RadialGradientFill) isGradient() {}

// GradientStops implements Gradient.
func (g *RadialGradientFill) GradientStops() GradientStopArray { return g.Stops }

// Spread implements Gradient.
func (g *RadialGradientFill) Spread() SpreadMethod { return g.Method }

// GradientUnits implements Gradient.
func (g *RadialGradientFill) GradientUnits() GradientUnits { return g.Units }

// focal returns the focal point, pulled inside the outer circle when it
// lies on or beyond it.
func (g *RadialGradientFill) focal() Point {
	c := Point{X: g.CenterX, Y: g.CenterY}
	f := Point{X: g.FocalX, Y: g.FocalY}
	d := f.Sub(c)
	if l, limit := d.Length(), 0.999*g.Radius; l > limit && l > 0 {
		f = c.Add(d.Mul(limit / l))
	}
	return f
}

// ParamAt returns t such that p lies on the circle centered at
// focal + t·(center-focal) with radius t·Radius.
func (g *RadialGradientFill) ParamAt(p Point) float64 {
	if g.Radius <= 0 {
		return 1
	}
	f := g.focal()
	d := Point{X: g.CenterX, Y: g.CenterY}.Sub(f)
	e := p.Sub(f)
	ed := e.Dot(d)
	ee := e.Dot(e)
	a := d.Dot(d) - g.Radius*g.Radius // negative: focal is inside
	disc := ed*ed - a*ee
	if disc < 0 {
		disc = 0
	}
	return (ed - math.Sqrt(disc)) / a
}

// GradientSpace returns the transform from gradient coordinates to user
// coordinates: the identity for user-space units, the unit square onto
// bbox for bbox units.
func GradientSpace(bbox PathRect, units GradientUnits) TMatrix {
	if units == UnitsUserSpace || bbox.IsEmpty() {
		return Identity()
	}
	return TMatrix{A: bbox.Width(), D: bbox.Height(), Tx: bbox.X1, Ty: bbox.Y1}
}

// EvaluateGradient returns the straight-alpha color of g at user-space
// point p, applying the spread method and an extra opacity factor.
// inverse maps user space to gradient space.
func EvaluateGradient(g Gradient, inverse TMatrix, p Point, opacity float64, linearRGB bool) (Color, float64) {
	t := SpreadFor(g.Spread()).Resolve(g.ParamAt(inverse.TransformPoint(p)))
	c, a := g.GradientStops().ColorAt(t, linearRGB)
	return c, a * opacity
}
