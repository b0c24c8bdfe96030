package textrender

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// face returns the cached glyph face for size, rounded to 1/64 pixel.
func (r *Renderer) face(size float64) (font.Face, error) {
	size = math.Round(size*64) / 64
	return r.faces.GetOrCreate(size, func() (font.Face, error) {
		return opentype.NewFace(r.drawFont, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
	})
}

// Mask rasterizes s with its baseline origin at device point (x, y) and
// returns the glyph coverage limited to clip. Nil means nothing was
// drawn.
func (r *Renderer) Mask(s string, x, y, size float64, clip image.Rectangle) *image.Alpha {
	if s == "" || size <= 0 {
		return nil
	}
	face, err := r.face(size)
	if err != nil {
		return nil
	}
	dot := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}

	r.mu.Lock()
	defer r.mu.Unlock()
	bounds, _ := font.BoundString(face, s)
	area := image.Rect(
		(dot.X+bounds.Min.X).Floor(), (dot.Y+bounds.Min.Y).Floor(),
		(dot.X+bounds.Max.X).Ceil(), (dot.Y+bounds.Max.Y).Ceil(),
	).Intersect(clip)
	if area.Empty() {
		return nil
	}
	mask := image.NewAlpha(area)
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  dot,
	}
	d.DrawString(s)
	return mask
}
