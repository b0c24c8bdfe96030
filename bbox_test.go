package tkpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBareBboxClosedRect(t *testing.T) {
	p, err := PolygonAtoms([]float64{0, 0, 10, 0, 10, 10, 0, 10})
	require.NoError(t, err)
	assert.Equal(t, PathRect{X1: 0, Y1: 0, X2: 10, Y2: 10}, BareBbox(p))

	r := NewPath(&Rect{X: 0, Y: 0, Width: 10, Height: 10})
	assert.Equal(t, PathRect{X1: 0, Y1: 0, X2: 10, Y2: 10}, BareBbox(r))
}

func TestBareBboxEmpty(t *testing.T) {
	assert.True(t, BareBbox(NewPath()).IsEmpty())
	assert.True(t, BareBbox(nil).IsEmpty())
}

func TestBareBboxContainsControlPoints(t *testing.T) {
	p := MustParsePathData("M0 0 C 30 -40 60 90 100 10 Q 140 -20 120 60 L 50 50")
	box := BareBbox(p)
	for _, a := range p.Atoms() {
		switch a := a.(type) {
		case *CurveTo:
			assert.True(t, box.Contains(a.CX1, a.CY1))
			assert.True(t, box.Contains(a.CX2, a.CY2))
		case *QuadBezier:
			assert.True(t, box.Contains(a.CX, a.CY))
		}
	}
	assert.Equal(t, -40.0, box.Y1)
	assert.Equal(t, 90.0, box.Y2)
	assert.Equal(t, 140.0, box.X2)
}

func TestBareBboxCoversArc(t *testing.T) {
	p := NewPath(&MoveTo{X: 0, Y: 0}, &Arc{RX: 5, RY: 5, Sweep: true, X: 10, Y: 0})
	box := BareBbox(p)
	ca, res := EndpointToCentralArc(0, 0, 10, 0, 5, 5, 0, false, true)
	require.Equal(t, ArcOK, res)
	for i := 0; i <= 32; i++ {
		q := ca.point(ca.Theta1 + ca.DTheta*float64(i)/32)
		assert.True(t, box.Outset(1e-9).Contains(q.X, q.Y), "arc point %v outside %v", q, box)
	}
}

func TestBareBboxEllipse(t *testing.T) {
	box := BareBbox(EllipseAtoms(50, 40, 20, 10))
	assert.Equal(t, PathRect{X1: 30, Y1: 30, X2: 70, Y2: 50}, box)
}

func TestBareBboxTranslation(t *testing.T) {
	build := func() *Path {
		return MustParsePathData("M5 5 L 20 8 C 25 0 30 30 40 12 A 6 4 20 0 1 50 20 Z")
	}
	p := build()
	want := BareBbox(p).Translate(7, -3)
	p.Translate(7, -3)
	got := BareBbox(p)
	assert.InDelta(t, want.X1, got.X1, 1e-9)
	assert.InDelta(t, want.Y1, got.Y1, 1e-9)
	assert.InDelta(t, want.X2, got.X2, 1e-9)
	assert.InDelta(t, want.Y2, got.Y2, 1e-9)
}

func TestStrokeOutset(t *testing.T) {
	black := Black
	stroked := func(width float64, join LineJoin, lineCap LineCap) *Style {
		return &Style{Stroke: &black, StrokeWidth: width, LineJoin: join, LineCap: lineCap, MiterLimit: 4}
	}
	tests := []struct {
		name  string
		style *Style
		want  float64
	}{
		{"no stroke", &Style{Fill: &black}, 0},
		{"nil style", nil, 0},
		{"zero width", stroked(0, LineJoinRound, LineCapButt), 0},
		{"round join", stroked(2, LineJoinRound, LineCapButt), 1},
		{"bevel join round cap", stroked(4, LineJoinBevel, LineCapRound), 2},
		{"miter join", stroked(2, LineJoinMiter, LineCapButt), 4},
		{"projecting cap", stroked(2, LineJoinBevel, LineCapProjecting), math.Sqrt2},
		{"miter beats projecting", stroked(2, LineJoinMiter, LineCapProjecting), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, StrokeOutset(tt.style), 1e-12)
		})
	}
}

func TestTotalBboxContainsBare(t *testing.T) {
	paths := []string{
		"M0 0 L 10 0 L 10 10 Z",
		"M-5 3 C 0 20 10 -20 15 3",
		"M0 0 A 10 5 30 1 0 20 0",
	}
	style := DefaultStyle()
	style.StrokeWidth = 3
	style.LineJoin = LineJoinMiter
	for _, d := range paths {
		p := MustParsePathData(d)
		bare := BareBbox(p)
		total := TotalBbox(p, &style)
		assert.True(t, total.ContainsRect(bare), d)
		assert.InDelta(t, bare.Width()+2*6, total.Width(), 1e-9, d)
	}
}

func TestEffectiveMatrix(t *testing.T) {
	canvas := Scale(2, 2)
	sm := Translate(5, 0)
	style := &Style{Matrix: &sm}

	// The style matrix applies before the canvas matrix.
	x, y := EffectiveMatrix(&canvas, style).Apply(1, 1)
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 2.0, y)

	assert.True(t, EffectiveMatrix(nil, nil).IsIdentity())
	assert.Equal(t, canvas, EffectiveMatrix(&canvas, &Style{}))
}

func TestItemBbox(t *testing.T) {
	p := NewPath(&Rect{X: 0, Y: 0, Width: 10, Height: 10})
	style := DefaultStyle()
	canvas := Compose(Translate(100, 50), Scale(2, 2))

	got := ItemBbox(p, &style, &canvas)
	assert.Equal(t, PathRect{X1: 99, Y1: 49, X2: 121, Y2: 71}, got)

	rot := Rotate(math.Pi / 4)
	got = ItemBbox(p, &Style{}, &rot)
	assert.InDelta(t, -10/math.Sqrt2, got.X1, 1e-9)
	assert.InDelta(t, 10/math.Sqrt2, got.X2, 1e-9)
	assert.InDelta(t, 0, got.Y1, 1e-9)
	assert.InDelta(t, 20/math.Sqrt2, got.Y2, 1e-9)
}

func TestPathRect(t *testing.T) {
	r := NewEmptyPathRect()
	assert.True(t, r.IsEmpty())
	assert.Zero(t, r.Width())

	r.IncludePoint(3, 4)
	assert.False(t, r.IsEmpty())
	assert.Equal(t, PathRect{X1: 3, Y1: 4, X2: 3, Y2: 4}, r)

	r.IncludePoint(-1, 10)
	assert.Equal(t, 4.0, r.Width())
	assert.Equal(t, 6.0, r.Height())

	u := r.Union(PathRect{X1: 0, Y1: 0, X2: 1, Y2: 1})
	assert.Equal(t, PathRect{X1: -1, Y1: 0, X2: 3, Y2: 10}, u)
	assert.Equal(t, r, r.Union(NewEmptyPathRect()))
	assert.Equal(t, r, NewEmptyPathRect().Union(r))

	assert.True(t, u.ContainsRect(r))
	assert.True(t, r.Overlaps(u))
	assert.False(t, r.Overlaps(PathRect{X1: 50, Y1: 50, X2: 60, Y2: 60}))
	assert.False(t, r.Overlaps(NewEmptyPathRect()))

	assert.Equal(t, PathRect{X1: 0, Y1: 5, X2: 2, Y2: 9}, r.Inset(1))
	assert.Equal(t, PathRect{X1: -2, Y1: 3, X2: 4, Y2: 11}, r.Outset(1))
	assert.True(t, r.Inset(3).IsEmpty())
	assert.True(t, NewEmptyPathRect().Outset(5).IsEmpty())
}
