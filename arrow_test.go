package tkpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurePathArrowsShortensOpenLine(t *testing.T) {
	p, err := PolylineAtoms([]float64{0, 0, 10, 0})
	require.NoError(t, err)
	style := DefaultStyle()
	end := NewArrowDescr(8, 8)

	require.NoError(t, ConfigurePathArrows(p, nil, &end, &style))

	last := p.Atoms()[1].(*LineTo)
	assert.InDelta(t, 2, last.X, 1e-9)
	assert.Zero(t, last.Y)

	require.True(t, end.Configured)
	assert.Equal(t, Pt(10, 0), end.Points[ArrowTipIndex])
	assert.Equal(t, Pt(2, 0), end.Points[0])
	assert.Equal(t, Pt(2, 4), end.Points[1])
	assert.Equal(t, Pt(2, -4), end.Points[3])
	assert.Equal(t, Pt(2, 0), end.Points[ArrowLineIndex])
}

func TestConfigurePathArrowsIsIdempotent(t *testing.T) {
	p, err := PolylineAtoms([]float64{0, 0, 10, 0})
	require.NoError(t, err)
	style := DefaultStyle()
	start := NewArrowDescr(3, 4)
	end := NewArrowDescr(8, 8)

	for range 3 {
		require.NoError(t, ConfigurePathArrows(p, &start, &end, &style))
	}
	first := p.Atoms()[0].(*MoveTo)
	last := p.Atoms()[1].(*LineTo)
	assert.InDelta(t, 3, first.X, 1e-9)
	assert.InDelta(t, 2, last.X, 1e-9)
	assert.Equal(t, Pt(0, 0), start.Points[ArrowTipIndex])
	assert.Equal(t, Pt(10, 0), end.Points[ArrowTipIndex])
}

func TestConfigurePathArrowsDisableRestoresEnd(t *testing.T) {
	p, err := PolylineAtoms([]float64{0, 0, 10, 0})
	require.NoError(t, err)
	style := DefaultStyle()
	end := NewArrowDescr(8, 8)
	last := p.Atoms()[1].(*LineTo)

	require.NoError(t, ConfigurePathArrows(p, nil, &end, &style))
	assert.InDelta(t, 2, last.X, 1e-9)

	end.Enabled = false
	require.NoError(t, ConfigurePathArrows(p, nil, &end, &style))
	assert.InDelta(t, 10, last.X, 1e-9)
	assert.False(t, end.Configured)

	require.NoError(t, ConfigurePathArrows(p, nil, &end, &style))
	assert.InDelta(t, 10, last.X, 1e-9)

	end.Enabled = true
	require.NoError(t, ConfigurePathArrows(p, nil, &end, &style))
	assert.InDelta(t, 2, last.X, 1e-9)
	assert.Equal(t, Pt(10, 0), end.Points[ArrowTipIndex])
}

func TestConfigurePathArrowsFilledLineKeepsEnds(t *testing.T) {
	p, err := PolylineAtoms([]float64{0, 0, 10, 0, 10, 10})
	require.NoError(t, err)
	style := filledStyle()
	end := NewArrowDescr(4, 4)

	require.NoError(t, ConfigurePathArrows(p, nil, &end, &style))
	last := p.Atoms()[2].(*LineTo)
	assert.Equal(t, Pt(10, 10), Pt(last.X, last.Y))
	assert.Equal(t, Pt(10, 10), end.Points[ArrowLineIndex])
	// The arrow points along the last segment.
	assert.Equal(t, Pt(10, 6), end.Points[0])
}

func TestConfigurePathArrowsErrors(t *testing.T) {
	style := DefaultStyle()
	end := NewArrowDescr(4, 4)
	tests := []struct {
		name string
		p    *Path
	}{
		{"empty", NewPath()},
		{"single point", NewPath(&MoveTo{X: 1, Y: 1})},
		{"closed", MustParsePathData("M0 0 L 10 0 Z")},
		{"rect", NewPath(&Rect{Width: 4, Height: 4})},
		{"no moveto", NewPath(&LineTo{X: 1, Y: 1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ConfigurePathArrows(tt.p, nil, &end, &style), ErrNoArrowSegments)
		})
	}
}

func TestConfigurePathArrowsCurveDirection(t *testing.T) {
	// The arrow follows the tangent at the end: the last control point.
	p := MustParsePathData("M0 0 C 0 10 20 10 20 0")
	style := DefaultStyle()
	end := NewArrowDescr(4, 2)
	require.NoError(t, ConfigurePathArrows(p, nil, &end, &style))
	assert.Equal(t, Pt(20, 0), end.Points[ArrowTipIndex])
	assert.InDelta(t, 20, end.Points[0].X, 1e-9)
	assert.InDelta(t, 4, end.Points[0].Y, 1e-9)
}

func TestArrowPullback(t *testing.T) {
	tests := []struct {
		name  string
		arrow ArrowDescr
		width float64
		want  float64
	}{
		{"flat base", NewArrowDescr(8, 8), 1, 8},
		{"notched", ArrowDescr{Length: 8, Width: 8, Fill: 0.5}, 1, 4},
		{"chevron hairline", ArrowDescr{Length: 8, Width: 8}, 0, 0},
		{"chevron thick line", ArrowDescr{Length: 8, Width: 8}, 2, 2},
		{"line wider than arrow", ArrowDescr{Length: 8, Width: 4, Fill: 0.25}, 8, 8},
		{"width defaults to length", ArrowDescr{Length: 6, Fill: 0.5}, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ArrowPullback(&tt.arrow, tt.width), 1e-12)
		})
	}
}

func TestConfigureArrowDegenerate(t *testing.T) {
	style := DefaultStyle()
	disabled := ArrowDescr{Length: 5}
	assert.Equal(t, Pt(3, 3), ConfigureArrow(Pt(3, 3), Pt(0, 0), &disabled, &style, true))
	assert.False(t, disabled.Configured)
	assert.Nil(t, ArrowPath(&disabled))

	zero := NewArrowDescr(5, 5)
	assert.Equal(t, Pt(3, 3), ConfigureArrow(Pt(3, 3), Pt(3, 3), &zero, &style, true))
	assert.True(t, zero.Configured)
	for _, q := range zero.Points {
		assert.Equal(t, Pt(3, 3), q)
	}
	assert.Nil(t, ArrowPath(&zero), "collapsed arrows draw nothing")
}

func TestArrowPathAndStyle(t *testing.T) {
	style := DefaultStyle()
	blueStroke := RGB(0, 0, 1)
	style.Stroke = &blueStroke
	style.StrokeOpacity = 0.5
	style.Dash = NewDash(2, 2)

	filled := NewArrowDescr(4, 4)
	ConfigureArrow(Pt(10, 0), Pt(0, 0), &filled, &style, true)
	p := ArrowPath(&filled)
	require.NotNil(t, p)
	assert.Equal(t, 6, p.Len())
	assert.IsType(t, &Close{}, p.Atoms()[5])

	as := ArrowStyle(&filled, &style)
	require.NotNil(t, as.Fill)
	assert.Equal(t, blueStroke, *as.Fill)
	assert.Equal(t, 0.5, as.FillOpacity)
	assert.Nil(t, as.Stroke)
	assert.Nil(t, as.Dash)

	chevron := ArrowDescr{Enabled: true, Length: 4, Width: 4}
	ConfigureArrow(Pt(10, 0), Pt(0, 0), &chevron, &style, true)
	p = ArrowPath(&chevron)
	require.NotNil(t, p)
	assert.Equal(t, 3, p.Len())
	cs := ArrowStyle(&chevron, &style)
	assert.Nil(t, cs.Fill)
	assert.NotNil(t, cs.Stroke)
	assert.Nil(t, cs.Dash)
}

func TestArrowTransforms(t *testing.T) {
	style := DefaultStyle()
	a := NewArrowDescr(4, 4)
	ConfigureArrow(Pt(10, 0), Pt(0, 0), &a, &style, true)

	TranslateArrow(&a, 5, 5)
	assert.Equal(t, Pt(15, 5), a.Points[ArrowTipIndex])
	ScaleArrow(&a, 0, 0, 2, 2)
	assert.Equal(t, Pt(30, 10), a.Points[ArrowTipIndex])

	r := NewEmptyPathRect()
	IncludeArrowPoints(&r, &a)
	assert.Equal(t, PathRect{X1: 22, Y1: 6, X2: 30, Y2: 14}, r)

	var unset ArrowDescr
	TranslateArrow(&unset, 1, 1)
	assert.Equal(t, Point{}, unset.Points[0])
}
