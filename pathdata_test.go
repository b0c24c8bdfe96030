package tkpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePathData(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want []Atom
	}{
		{
			name: "relative with h v z",
			d:    "M10 20 l 5 5 h 10 v -5 z",
			want: []Atom{
				&MoveTo{X: 10, Y: 20},
				&LineTo{X: 15, Y: 25},
				&LineTo{X: 25, Y: 25},
				&LineTo{X: 25, Y: 20},
				&Close{X: 10, Y: 20},
			},
		},
		{
			name: "implicit lineto",
			d:    "M0 0 10 0 10 10",
			want: []Atom{&MoveTo{}, &LineTo{X: 10}, &LineTo{X: 10, Y: 10}},
		},
		{
			name: "relative implicit lineto",
			d:    "m1 1 2 2",
			want: []Atom{&MoveTo{X: 1, Y: 1}, &LineTo{X: 3, Y: 3}},
		},
		{
			name: "commas",
			d:    "M1,2L3,4",
			want: []Atom{&MoveTo{X: 1, Y: 2}, &LineTo{X: 3, Y: 4}},
		},
		{
			name: "smooth cubic",
			d:    "M0 0 C 0 10 10 10 10 0 S 20 -10 20 0",
			want: []Atom{
				&MoveTo{},
				&CurveTo{CX1: 0, CY1: 10, CX2: 10, CY2: 10, X: 10},
				&CurveTo{CX1: 10, CY1: -10, CX2: 20, CY2: -10, X: 20},
			},
		},
		{
			name: "smooth cubic without predecessor",
			d:    "M5 5 S 10 10 20 5",
			want: []Atom{&MoveTo{X: 5, Y: 5}, &CurveTo{CX1: 5, CY1: 5, CX2: 10, CY2: 10, X: 20, Y: 5}},
		},
		{
			name: "smooth quadratic",
			d:    "M0 0 Q 5 10 10 0 T 20 0",
			want: []Atom{
				&MoveTo{},
				&QuadBezier{CX: 5, CY: 10, X: 10},
				&QuadBezier{CX: 15, CY: -10, X: 20},
			},
		},
		{
			name: "arc",
			d:    "M0 0 A 5 5 30 0 1 10 0",
			want: []Atom{&MoveTo{}, &Arc{RX: 5, RY: 5, Angle: 30, Sweep: true, X: 10}},
		},
		{
			name: "relative arc with packed flags",
			d:    "M2 2 a5,5 0 1,0 10,0",
			want: []Atom{&MoveTo{X: 2, Y: 2}, &Arc{RX: 5, RY: 5, LargeArc: true, X: 12, Y: 2}},
		},
		{
			name: "subpath after close",
			d:    "M0 0 L 5 0 Z L 0 5",
			want: []Atom{&MoveTo{}, &LineTo{X: 5}, &Close{}, &LineTo{Y: 5}},
		},
		{
			name: "empty",
			d:    "  ",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePathData(tt.d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Atoms())
		})
	}
}

func TestParsePathDataErrors(t *testing.T) {
	tests := []struct {
		name    string
		d       string
		wantMsg string
	}{
		{"no moveto", "L 1 1", "must start with a moveto at position 1"},
		{"missing number", "M 1", "needs 2 numbers"},
		{"unknown command", "M0 0 X 1", "unknown command 'X'"},
		{"bad arc flag", "M0 0 A 5 5 0 2 0 1 1", "arc flag must be 0 or 1"},
		{"number after close", "M0 0 L 1 1 Z 5 5", "number without command"},
		{"truncated curve", "M0 0 C 1 2 3", "needs 6 numbers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePathData(tt.d)
			require.ErrorIs(t, err, ErrBadPathData)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Nil(t, p)
		})
	}
}

func TestPathStringRoundTrip(t *testing.T) {
	in := MustParsePathData("M0 0 L10 0 C 12 3 14 6 10 10 Q 5 15 0 10 A 5 5 0 0 1 0 0 Z")
	out, err := ParsePathData(in.String())
	require.NoError(t, err)
	assert.Equal(t, in.Atoms(), out.Atoms())
	assert.Equal(t, "M0 0 L10 0 C12 3 14 6 10 10 Q5 15 0 10 A5 5 0 0 1 0 0 Z", in.String())
}

func TestPathStringShapes(t *testing.T) {
	p := NewPath(&Rect{X: 1, Y: 2, Width: 3, Height: 4})
	assert.Equal(t, "M1 2 h3 v4 h-3 Z", p.String())

	e, err := ParsePathData(EllipseAtoms(0, 0, 2, 1).String())
	require.NoError(t, err)
	box := BareBbox(e)
	assert.InDelta(t, -2, box.X1, 1e-9)
	assert.InDelta(t, -1, box.Y1, 1e-9)
	assert.InDelta(t, 2, box.X2, 1e-9)
	assert.InDelta(t, 1, box.Y2, 1e-9)
}

func TestMustParsePathDataPanics(t *testing.T) {
	assert.Panics(t, func() { MustParsePathData("Z") })
}
