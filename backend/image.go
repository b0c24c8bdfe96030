package backend

import (
	"image"
	"image/color"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/tkpath"
	"github.com/gogpu/tkpath/internal/raster"
)

// Image draws img into the user-space rectangle at (x, y) under the
// current transform and clip.
func (c *Canvas) Image(img image.Image, x, y, width, height float64, params tkpath.ImageParams) {
	if img == nil {
		c.Unsupported("image", "reason", "nil image")
		return
	}
	src := raster.PrepareImage(img, ImageOptions(img.Bounds(), params))
	sw, sh := float64(src.Rect.Dx()), float64(src.Rect.Dy())
	if sw == 0 || sh == 0 {
		return
	}
	if width <= 0 {
		width = sw
	}
	if height <= 0 {
		height = sh
	}
	place := tkpath.TMatrix{A: width / sw, D: height / sh, Tx: x, Ty: y}
	m := tkpath.Compose(c.CTM, place)
	c.Surface.DrawImage(src, f64.Aff3{m.A, m.C, m.Tx, m.B, m.D, m.Ty}, filter(params.Interpolation))
}

// ImageOptions converts item image parameters for an image with the
// given bounds.
func ImageOptions(bounds image.Rectangle, params tkpath.ImageParams) raster.ImageOptions {
	opts := raster.ImageOptions{
		Opacity:    params.EffectiveOpacity(),
		TintAmount: params.TintAmount,
	}
	if params.Region != nil {
		opts.Region = params.SourceRect(bounds)
	}
	if params.Tint != nil {
		t := params.Tint.NRGBA(1)
		opts.Tint = &color.NRGBA{R: t.R, G: t.G, B: t.B, A: 0xff}
	}
	return opts
}

func filter(i tkpath.Interpolation) raster.Filter {
	switch i {
	case tkpath.InterpolationNone:
		return raster.FilterNearest
	case tkpath.InterpolationBest:
		return raster.FilterBest
	}
	return raster.FilterBilinear
}
