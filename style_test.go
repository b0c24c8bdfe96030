package tkpath

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"red", color.NRGBA{R: 255, A: 255}},
		{"SteelBlue", color.NRGBA{R: 70, G: 130, B: 180, A: 255}},
		{" navy ", color.NRGBA{B: 128, A: 255}},
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#f80", color.NRGBA{R: 255, G: 136, A: 255}},
		{"#102030", color.NRGBA{R: 16, G: 32, B: 48, A: 255}},
		{"#ffff80000000", color.NRGBA{R: 255, G: 128, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.NRGBA(1))
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12", "#12345", "#ggg", "#1234567"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			assert.Error(t, err)
		})
	}
}

func TestColorNRGBA(t *testing.T) {
	c := Color{R: -0.5, G: 0.5, B: 2}
	assert.Equal(t, color.NRGBA{R: 0, G: 128, B: 255, A: 64}, c.NRGBA(0.25))
	assert.Equal(t, RGB(1, 0, 0), FromColor(color.RGBA{R: 255, A: 255}))
	assert.Equal(t, RGB(0.5, 0.5, 0.5), Black.Lerp(White, 0.5))
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	require.NotNil(t, s.Stroke)
	assert.Equal(t, Black, *s.Stroke)
	assert.Equal(t, 1.0, s.StrokeWidth)
	assert.Equal(t, LineCapButt, s.LineCap)
	assert.Equal(t, LineJoinRound, s.LineJoin)
	assert.Equal(t, 4.0, s.MiterLimit)
	assert.Equal(t, FillRuleNonZero, s.FillRule)
	assert.False(t, s.HasFill())
	assert.True(t, s.HasStroke())

	// Each call returns its own stroke color.
	s.Stroke.R = 1
	assert.Equal(t, Black, *DefaultStyle().Stroke)
	assert.Equal(t, Color{}, Black)
}

func TestStyleHasPaint(t *testing.T) {
	var nilStyle *Style
	assert.False(t, nilStyle.HasFill())
	assert.False(t, nilStyle.HasStroke())
	assert.True(t, (&Style{FillGradient: NewLinearGradientFill()}).HasFill())
	assert.False(t, (&Style{Stroke: &Color{}}).HasStroke(), "zero width")
}

func TestMergeStyles(t *testing.T) {
	base := DefaultStyle()
	fill := RGB(0, 1, 0)
	stroke := RGB(1, 0, 0)
	m := Translate(3, 4)
	named := Style{
		Fill:        &fill,
		FillOpacity: 0.5,
		FillRule:    FillRuleEvenOdd,
		Stroke:      &stroke,
		StrokeWidth: 3,
		LineCap:     LineCapRound,
		Dash:        NewDash(4, 2),
		Matrix:      &m,
	}

	t.Run("masked fields only", func(t *testing.T) {
		out := MergeStyles(base, named, OptFill|OptStrokeWidth, 0)
		require.NotNil(t, out.Fill)
		assert.Equal(t, fill, *out.Fill)
		assert.Equal(t, 3.0, out.StrokeWidth)
		assert.Equal(t, Black, *out.Stroke)
		assert.Equal(t, 1.0, out.FillOpacity)
		assert.Nil(t, out.Dash)
		assert.Nil(t, out.Matrix)
	})
	t.Run("groups", func(t *testing.T) {
		out := MergeStyles(base, named, OptAllFill|OptAllStroke|OptMatrix, 0)
		assert.Equal(t, FillRuleEvenOdd, out.FillRule)
		assert.Equal(t, LineCapRound, out.LineCap)
		assert.Equal(t, []float64{4, 2}, out.Dash.Array)
		assert.Equal(t, m, *out.Matrix)
	})
	t.Run("flags", func(t *testing.T) {
		out := MergeStyles(base, named, OptAllFill|OptAllStroke, MergeNotFill)
		assert.Nil(t, out.Fill)
		assert.Equal(t, 3.0, out.StrokeWidth)

		out = MergeStyles(base, named, OptAllFill|OptAllStroke, MergeNotStroke)
		assert.NotNil(t, out.Fill)
		assert.Equal(t, 1.0, out.StrokeWidth)
	})
	t.Run("no shared state", func(t *testing.T) {
		out := MergeStyles(base, named, OptAllFill|OptAllStroke|OptMatrix, 0)
		out.Fill.G = 0
		out.Stroke.R = 0
		out.Dash.Array[0] = 99
		out.Matrix.Tx = 99
		assert.Equal(t, 1.0, fill.G)
		assert.Equal(t, 1.0, stroke.R)
		assert.Equal(t, 4.0, named.Dash.Array[0])
		assert.Equal(t, 3.0, m.Tx)
	})
}

func TestStyleEnumStrings(t *testing.T) {
	assert.Equal(t, "nonzero", FillRuleNonZero.String())
	assert.Equal(t, "evenodd", FillRuleEvenOdd.String())
	assert.Equal(t, "projecting", LineCapProjecting.String())
	assert.Equal(t, "unknown", LineCap(99).String())
	assert.Equal(t, "miter", LineJoinMiter.String())
	assert.Equal(t, "unknown", LineJoin(99).String())
	assert.Equal(t, "best", InterpolationBest.String())
	assert.Equal(t, "unknown", Interpolation(99).String())
}
