package tkpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolylineAtoms(t *testing.T) {
	p, err := PolylineAtoms([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []Atom{
		&MoveTo{X: 1, Y: 2},
		&LineTo{X: 3, Y: 4},
		&LineTo{X: 5, Y: 6},
	}, p.Atoms())

	p, err = PolygonAtoms([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 4, p.Len())
	assert.Equal(t, &Close{X: 1, Y: 2}, p.Atoms()[3])
}

func TestPolylineAtomsErrors(t *testing.T) {
	tests := []struct {
		name    string
		coords  []float64
		polygon bool
		want    error
	}{
		{"odd", []float64{1, 2, 3}, false, ErrOddCoordinates},
		{"odd polygon", []float64{1, 2, 3, 4, 5}, true, ErrOddCoordinates},
		{"one point", []float64{1, 2}, false, ErrTooFewPoints},
		{"empty", nil, true, ErrTooFewPoints},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			build := PolylineAtoms
			if tt.polygon {
				build = PolygonAtoms
			}
			p, err := build(tt.coords)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, p)
		})
	}
}

func TestRoundedRectAtoms(t *testing.T) {
	t.Run("square corners", func(t *testing.T) {
		p := RoundedRectAtoms(10, 20, -4, 6, 0, 3)
		assert.Equal(t, []Atom{&Rect{X: 6, Y: 20, Width: 4, Height: 6}}, p.Atoms())
	})
	t.Run("clamped radii", func(t *testing.T) {
		p := RoundedRectAtoms(0, 0, 10, 4, 8, 8)
		require.Equal(t, 10, p.Len())
		arc := p.Atoms()[2].(*Arc)
		assert.Equal(t, 5.0, arc.RX)
		assert.Equal(t, 2.0, arc.RY)
	})
	t.Run("bbox", func(t *testing.T) {
		p := RoundedRectAtoms(0, 0, 40, 30, 4, 4)
		box := BareBbox(p)
		assert.InDelta(t, 0, box.X1, 1e-9)
		assert.InDelta(t, 0, box.Y1, 1e-9)
		assert.InDelta(t, 40, box.X2, 1e-9)
		assert.InDelta(t, 30, box.Y2, 1e-9)
	})
}

func TestEllipseAndLineAtoms(t *testing.T) {
	assert.Equal(t, []Atom{&Ellipse{CX: 1, CY: 2, RX: 3, RY: 4}}, EllipseAtoms(1, 2, -3, 4).Atoms())
	assert.Equal(t, []Atom{&MoveTo{X: 1, Y: 2}, &LineTo{X: 3, Y: 4}}, LineAtoms(1, 2, 3, 4).Atoms())
}

func TestPathPoints(t *testing.T) {
	p := MustParsePathData("M0 0 L 10 0 Q 15 5 10 10 A 5 5 0 0 1 0 10 Z")
	assert.Equal(t, []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}, p.Points())

	assert.Empty(t, NewPath(&Rect{Width: 1, Height: 1}).Points())
	p.Reset()
	assert.Zero(t, p.Len())
	assert.Zero(t, (*Path)(nil).Len())
}

func TestPathScale(t *testing.T) {
	p := NewPath(&MoveTo{X: 2, Y: 2}, &LineTo{X: 4, Y: 6}, &Rect{X: 1, Y: 1, Width: 2, Height: 2})
	p.Scale(0, 0, -2, 3)
	atoms := p.Atoms()
	assert.Equal(t, &MoveTo{X: -4, Y: 6}, atoms[0])
	assert.Equal(t, &LineTo{X: -8, Y: 18}, atoms[1])
	assert.Equal(t, &Rect{X: -6, Y: 3, Width: 4, Height: 6}, atoms[2])
}
