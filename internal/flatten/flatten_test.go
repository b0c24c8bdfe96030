package flatten

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderLines(t *testing.T) {
	b := NewBuilder(0)
	_, ok := b.Current()
	assert.False(t, ok)
	assert.True(t, b.Empty())

	b.MoveTo(Point{0, 0})
	b.LineTo(Point{10, 0})
	b.LineTo(Point{10, 10})
	b.Close()
	cur, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, Point{0, 0}, cur, "close returns to the subpath start")

	// A segment after Close opens a new subpath at the start point.
	b.LineTo(Point{0, 10})
	subs := b.Subpaths()
	require.Len(t, subs, 2)
	assert.True(t, subs[0].Closed)
	assert.Equal(t, []Point{{0, 0}, {10, 0}, {10, 10}}, subs[0].Points)
	assert.False(t, subs[1].Closed)
	assert.Equal(t, []Point{{0, 0}, {0, 10}}, subs[1].Points)

	b.Reset()
	assert.True(t, b.Empty())
}

func TestPolygonsSkipsSinglePoints(t *testing.T) {
	b := NewBuilder(0)
	b.MoveTo(Point{1, 1})
	b.MoveTo(Point{0, 0})
	b.LineTo(Point{5, 5})
	polys := b.Polygons()
	require.Len(t, polys, 1)
	assert.Equal(t, []Point{{0, 0}, {5, 5}}, polys[0])
}

func TestTransform(t *testing.T) {
	b := NewBuilder(0)
	b.MoveTo(Point{1, 2})
	b.LineTo(Point{3, 4})
	b.Transform(func(p Point) Point { return Point{p.X * 2, p.Y + 1} })
	assert.Equal(t, []Point{{2, 3}, {6, 5}}, b.Subpaths()[0].Points)
	cur, _ := b.Current()
	assert.Equal(t, Point{6, 5}, cur)
}

func TestCubicWithinTolerance(t *testing.T) {
	const r = 100.0
	const k = 0.5522847498 * r
	tests := []struct {
		name string
		tol  float64
	}{
		{"default", Tolerance},
		{"coarse", 2},
		{"fine", 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p0 := Point{r, 0}
			pts := Cubic(p0, Point{r, k}, Point{k, r}, Point{0, r}, tt.tol)
			require.NotEmpty(t, pts)
			assert.Equal(t, Point{0, r}, pts[len(pts)-1])

			prev := p0
			for _, p := range pts {
				assert.InDelta(t, r, math.Hypot(p.X, p.Y), 0.05)
				mid := lerp(prev, p, 0.5)
				assert.Less(t, r-math.Hypot(mid.X, mid.Y), tt.tol+0.05)
				prev = p
			}
		})
	}
}

func TestFinerToleranceGivesMorePoints(t *testing.T) {
	p0, p1, p2 := Point{0, 0}, Point{50, 100}, Point{100, 0}
	coarse := Quad(p0, p1, p2, 1)
	fine := Quad(p0, p1, p2, 0.01)
	assert.Greater(t, len(fine), len(coarse))
	assert.Equal(t, p2, coarse[len(coarse)-1])
}

func TestStraightCurves(t *testing.T) {
	pts := Cubic(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0}, Tolerance)
	assert.Equal(t, []Point{{3, 0}}, pts)

	b := NewBuilder(Tolerance)
	b.MoveTo(Point{0, 0})
	b.QuadTo(Point{1, 1}, Point{2, 2})
	assert.Equal(t, []Point{{0, 0}, {2, 2}}, b.Subpaths()[0].Points)
}
