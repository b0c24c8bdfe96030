package recording

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/tkpath"
)

func TestResourcePoolStyles(t *testing.T) {
	p := NewResourcePool()
	assert.Equal(t, StyleRef(InvalidRef), p.AddStyle(nil))
	assert.Nil(t, p.GetStyle(StyleRef(InvalidRef)))

	a := redStyle()
	r1 := p.AddStyle(&a)
	r2 := p.AddStyle(&a)
	assert.Equal(t, r1, r2, "repeated style shares a slot")
	assert.Equal(t, 1, p.StyleCount())

	b := a
	b.StrokeWidth = 3
	r3 := p.AddStyle(&b)
	assert.NotEqual(t, r1, r3)
	assert.Equal(t, 2, p.StyleCount())
	assert.Equal(t, 3.0, p.GetStyle(r3).StrokeWidth)
}

func TestResourcePoolDashedStylesNotShared(t *testing.T) {
	p := NewResourcePool()
	s := redStyle()
	s.Dash = tkpath.NewDash(2, 2)
	p.AddStyle(&s)
	p.AddStyle(&s)
	assert.Equal(t, 2, p.StyleCount())
}

func TestResourcePoolImages(t *testing.T) {
	p := NewResourcePool()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	ref := p.AddImage(img)
	assert.Equal(t, 1, p.ImageCount())
	assert.Same(t, img, p.GetImage(ref))
	assert.Nil(t, p.GetImage(ImageRef(InvalidRef)))
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		typ  CommandType
		want string
	}{
		{CmdBeginPath, "BeginPath"},
		{CmdLinesTo, "LinesTo"},
		{CmdFillAndStroke, "FillAndStroke"},
		{CmdReleaseClip, "ReleaseClipToPath"},
		{CmdSave, "SaveState"},
		{CmdRestore, "RestoreState"},
		{CommandType(255), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}
