package tkpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = RGB(1, 0, 0)
	blue = RGB(0, 0, 1)
)

func TestAxialSegmentsTwoStops(t *testing.T) {
	g := NewLinearGradientFill(
		GradientStop{Offset: 0, Color: red, Opacity: 1},
		GradientStop{Offset: 1, Color: blue, Opacity: 1},
	)
	g.Transition = PathRect{X1: 2, Y1: 3, X2: 12, Y2: 8}

	segs := AxialSegments(g)
	require.Len(t, segs, 1)
	assert.Equal(t, Pt(2, 3), segs[0].Start)
	assert.Equal(t, Pt(12, 8), segs[0].End)
	assert.Equal(t, red, segs[0].StartColor)
	assert.Equal(t, blue, segs[0].EndColor)
	assert.True(t, segs[0].ExtendStart)
	assert.True(t, segs[0].ExtendEnd)
}

func TestAxialSegmentsSkipsCoincidentStops(t *testing.T) {
	green := RGB(0, 1, 0)
	tests := []struct {
		name    string
		offsets []float64
		want    int
	}{
		{"three stops", []float64{0, 0.5, 1}, 2},
		{"hard edge", []float64{0, 0.5, 0.5 + 1e-7, 1}, 2},
		{"coincident at start", []float64{0, 0, 1}, 1},
		{"coincident at end", []float64{0, 1, 1}, 1},
		{"all coincident", []float64{0.3, 0.3}, 0},
		{"one stop", []float64{0.3}, 0},
		{"no stops", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewLinearGradientFill()
			for i, off := range tt.offsets {
				c := []Color{red, green, blue}[i%3]
				g.Stops = append(g.Stops, GradientStop{Offset: off, Color: c, Opacity: 1})
			}
			segs := AxialSegments(g)
			require.Len(t, segs, tt.want)
			for i, s := range segs {
				assert.Equal(t, i == 0, s.ExtendStart, "segment %d", i)
				assert.Equal(t, i == len(segs)-1, s.ExtendEnd, "segment %d", i)
				assert.NotEqual(t, s.Start, s.End, "segment %d", i)
			}
		})
	}
}

func TestRadialSegments(t *testing.T) {
	g := NewRadialGradientFill(
		GradientStop{Offset: 0, Color: red, Opacity: 1},
		GradientStop{Offset: 0.5, Color: blue, Opacity: 0.5},
		GradientStop{Offset: 1, Color: red, Opacity: 0},
	)
	g.FocalX = 0.25

	segs := RadialSegments(g)
	require.Len(t, segs, 2)
	assert.Equal(t, Pt(0.25, 0.5), segs[0].StartCenter)
	assert.Zero(t, segs[0].StartRadius)
	assert.Equal(t, Pt(0.375, 0.5), segs[0].EndCenter)
	assert.Equal(t, 0.25, segs[0].EndRadius)
	assert.Equal(t, Pt(0.5, 0.5), segs[1].EndCenter)
	assert.Equal(t, 0.5, segs[1].EndRadius)
	assert.Equal(t, 0.5, segs[1].StartOpacity)
	assert.True(t, segs[0].ExtendStart)
	assert.False(t, segs[0].ExtendEnd)
	assert.True(t, segs[1].ExtendEnd)
}

func TestRadialFocalClamped(t *testing.T) {
	g := NewRadialGradientFill()
	g.FocalX = 1.5
	f := g.focal()
	assert.InDelta(t, 0.5+0.999*0.5, f.X, 1e-12)
	assert.Equal(t, 0.5, f.Y)
}

func TestSpreadResolvers(t *testing.T) {
	tests := []struct {
		method SpreadMethod
		in     float64
		want   float64
	}{
		{SpreadPad, -0.5, 0},
		{SpreadPad, 0.3, 0.3},
		{SpreadPad, 1.7, 1},
		{SpreadRepeat, 0.3, 0.3},
		{SpreadRepeat, 1.25, 0.25},
		{SpreadRepeat, -0.25, 0.75},
		{SpreadReflect, 0.3, 0.3},
		{SpreadReflect, 1.25, 0.75},
		{SpreadReflect, -0.25, 0.25},
		{SpreadReflect, 2.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, SpreadFor(tt.method).Resolve(tt.in), 1e-12, "t=%v", tt.in)
		})
	}
	assert.IsType(t, PadSpread{}, SpreadFor(SpreadMethod(42)))
	assert.Equal(t, "unknown", SpreadMethod(42).String())
}

func TestStopArrayColorAt(t *testing.T) {
	stops := GradientStopArray{
		{Offset: 0.2, Color: Black, Opacity: 1},
		{Offset: 0.8, Color: White, Opacity: 0.5},
	}
	tests := []struct {
		name        string
		t           float64
		wantGray    float64
		wantOpacity float64
	}{
		{"before first", 0, 0, 1},
		{"first", 0.2, 0, 1},
		{"middle", 0.5, 0.5, 0.75},
		{"last", 0.8, 1, 0.5},
		{"after last", 1, 1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, op := stops.ColorAt(tt.t, false)
			assert.InDelta(t, tt.wantGray, c.R, 1e-12)
			assert.InDelta(t, tt.wantGray, c.B, 1e-12)
			assert.InDelta(t, tt.wantOpacity, op, 1e-12)
		})
	}

	c, op := GradientStopArray(nil).ColorAt(0.5, false)
	assert.Equal(t, Black, c)
	assert.Zero(t, op)
}

func TestLerpColorLinearLight(t *testing.T) {
	srgb := LerpColor(Black, White, 0.5, false)
	assert.InDelta(t, 0.5, srgb.G, 1e-12)

	lin := LerpColor(Black, White, 0.5, true)
	// Half the light is brighter than half the sRGB value.
	assert.Greater(t, lin.G, 0.7)
	assert.Less(t, lin.G, 0.75)
	assert.InDelta(t, lin.R, lin.B, 1e-12)

	end := LerpColor(red, blue, 1, true)
	assert.InDelta(t, 0, end.R, 1e-6)
	assert.InDelta(t, 1, end.B, 1e-6)
}

func TestGradientParamAt(t *testing.T) {
	lin := NewLinearGradientFill()
	assert.InDelta(t, 0.25, lin.ParamAt(Pt(0.25, 7)), 1e-12)
	assert.InDelta(t, -1, lin.ParamAt(Pt(-1, 0)), 1e-12)
	lin.Transition = PathRect{X1: 1, Y1: 1, X2: 1, Y2: 1}
	assert.Zero(t, lin.ParamAt(Pt(5, 5)))

	rad := NewRadialGradientFill()
	assert.InDelta(t, 0, rad.ParamAt(Pt(0.5, 0.5)), 1e-12)
	assert.InDelta(t, 0.5, rad.ParamAt(Pt(0.75, 0.5)), 1e-12)
	assert.InDelta(t, 1, rad.ParamAt(Pt(0.5, 0)), 1e-12)
	assert.InDelta(t, 2, rad.ParamAt(Pt(1.5, 0.5)), 1e-12)
	rad.Radius = 0
	assert.Equal(t, 1.0, rad.ParamAt(Pt(0.75, 0.5)))
}

func TestGradientSpace(t *testing.T) {
	bbox := PathRect{X1: 10, Y1: 20, X2: 30, Y2: 60}
	m := GradientSpace(bbox, UnitsBoundingBox)
	assert.Equal(t, Pt(10, 20), m.TransformPoint(Pt(0, 0)))
	assert.Equal(t, Pt(30, 60), m.TransformPoint(Pt(1, 1)))
	assert.True(t, GradientSpace(bbox, UnitsUserSpace).IsIdentity())
	assert.True(t, GradientSpace(NewEmptyPathRect(), UnitsBoundingBox).IsIdentity())
}

func TestEvaluateGradient(t *testing.T) {
	g := NewLinearGradientFill(
		GradientStop{Offset: 0, Color: red, Opacity: 1},
		GradientStop{Offset: 1, Color: blue, Opacity: 1},
	)
	bbox := PathRect{X1: 10, Y1: 0, X2: 30, Y2: 20}
	inv, err := GradientSpace(bbox, g.Units).Invert()
	require.NoError(t, err)

	c, op := EvaluateGradient(g, inv, Pt(20, 5), 0.5, false)
	assert.InDelta(t, 0.5, c.R, 1e-12)
	assert.InDelta(t, 0.5, c.B, 1e-12)
	assert.InDelta(t, 0.5, op, 1e-12)

	c, _ = EvaluateGradient(g, inv, Pt(35, 5), 1, false)
	assert.Equal(t, blue, c, "pad keeps the end color")

	g.Method = SpreadRepeat
	c, _ = EvaluateGradient(g, inv, Pt(35, 5), 1, false)
	assert.InDelta(t, 0.75, c.R, 1e-12)

	g.Method = SpreadReflect
	c, _ = EvaluateGradient(g, inv, Pt(35, 5), 1, false)
	assert.InDelta(t, 0.25, c.R, 1e-12)
}

func TestSegmentParamAt(t *testing.T) {
	ax := AxialSegment{Start: Pt(0, 0), End: Pt(10, 0), ExtendEnd: true}
	u, ok := ax.ParamAt(Pt(5, 3))
	assert.True(t, ok)
	assert.InDelta(t, 0.5, u, 1e-12)
	_, ok = ax.ParamAt(Pt(-5, 0))
	assert.False(t, ok)
	u, ok = ax.ParamAt(Pt(15, 0))
	assert.True(t, ok)
	assert.Equal(t, 1.0, u)
	_, ok = AxialSegment{}.ParamAt(Pt(1, 1))
	assert.False(t, ok)

	rad := RadialSegment{EndRadius: 10}
	u, ok = rad.ParamAt(Pt(5, 0))
	assert.True(t, ok)
	assert.InDelta(t, 0.5, u, 1e-12)
	_, ok = rad.ParamAt(Pt(20, 0))
	assert.False(t, ok)
	rad.ExtendEnd = true
	u, ok = rad.ParamAt(Pt(20, 0))
	assert.True(t, ok)
	assert.Equal(t, 1.0, u)

	c, op := RadialSegment{StartColor: Black, EndColor: White, StartOpacity: 1}.ColorAt(0.5, false)
	assert.InDelta(t, 0.5, c.G, 1e-12)
	assert.InDelta(t, 0.5, op, 1e-12)
}
