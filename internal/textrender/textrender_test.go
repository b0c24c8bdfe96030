package textrender

import (
	"image"
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestMeasure(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	one := r.Measure("M", 20)
	assert.Greater(t, one.Width, 0.0)
	assert.Greater(t, one.Ascent, 0.0)
	assert.Greater(t, one.Descent, 0.0)

	three := r.Measure("MMM", 20)
	assert.InDelta(t, 3*one.Width, three.Width, 0.5)

	double := r.Measure("M", 40)
	assert.InDelta(t, 2*one.Width, double.Width, 0.5)
}

func TestMeasureDegenerate(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	assert.Equal(t, Metrics{}, r.Measure("abc", 0))
	assert.Equal(t, Metrics{}, r.Measure("", 12))
}

func TestDefaultIsShared(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestNewRejectsGarbage(t *testing.T) {
	_, err := New([]byte("not a font"))
	assert.Error(t, err)
}

func TestMask(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	clip := image.Rect(0, 0, 100, 40)

	m := r.Mask("Hello", 2, 25, 16, clip)
	require.NotNil(t, m)
	assert.True(t, m.Rect.In(clip))
	inked := 0
	for _, a := range m.Pix {
		if a > 0 {
			inked++
		}
	}
	assert.Positive(t, inked)

	tests := []struct {
		name string
		s    string
		x, y float64
		size float64
	}{
		{"empty", "", 2, 25, 16},
		{"zero size", "Hello", 2, 25, 0},
		{"outside clip", "Hello", 500, 500, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, r.Mask(tt.s, tt.x, tt.y, tt.size, clip))
		})
	}
}

func TestFaceCache(t *testing.T) {
	r, err := New(goregular.TTF)
	require.NoError(t, err)
	a, err := r.face(12)
	require.NoError(t, err)
	b, err := r.face(12.001)
	require.NoError(t, err)
	assert.Same(t, a, b, "sizes within 1/64 share a face")
	assert.Equal(t, 1, r.faces.Len())
}

func TestDirectionAndScript(t *testing.T) {
	assert.Equal(t, di.DirectionLTR, direction("abc"))
	assert.Equal(t, di.DirectionLTR, direction(""))
	assert.Equal(t, di.DirectionRTL, direction("שלום"))
	assert.Equal(t, language.Latin, script([]rune("  abc")))
	assert.Equal(t, language.Latin, script(nil))
}
