package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Filter selects the resampling used when an image is transformed.
type Filter int

const (
	FilterNearest Filter = iota
	FilterBilinear
	FilterBest
)

// ImageOptions control how a source image is prepared before drawing.
type ImageOptions struct {
	// Region is the source rectangle in image coordinates. It may extend
	// past the image bounds, in which case the image is tiled. The zero
	// rectangle selects the whole image.
	Region image.Rectangle

	// Opacity multiplies alpha, in (0,1].
	Opacity float64

	// Tint blends pixel luminance toward the tint color by TintAmount.
	Tint       *color.NRGBA
	TintAmount float64
}

// PrepareImage returns the region of img with opacity and tint applied as
// a straight-alpha image whose bounds start at the origin.
func PrepareImage(img image.Image, opts ImageOptions) *image.NRGBA {
	b := img.Bounds()
	r := opts.Region
	if r.Empty() {
		r = b
	}
	var out *image.NRGBA
	switch {
	case r == b:
		out = imaging.Clone(img)
	case r.In(b):
		out = imaging.Crop(img, r)
	default:
		out = tile(img, r)
	}

	opacity := opts.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	tint := opts.Tint != nil && opts.TintAmount > 0
	if opacity == 1 && !tint {
		return out
	}
	amount := min(opts.TintAmount, 1)
	return imaging.AdjustFunc(out, func(c color.NRGBA) color.NRGBA {
		if tint {
			lum := (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
			c.R = mixTint(c.R, opts.Tint.R, lum, amount)
			c.G = mixTint(c.G, opts.Tint.G, lum, amount)
			c.B = mixTint(c.B, opts.Tint.B, lum, amount)
		}
		c.A = uint8(float64(c.A)*opacity + 0.5)
		return c
	})
}

// mixTint moves v toward the tint channel scaled by luminance.
func mixTint(v, tint uint8, lum, amount float64) uint8 {
	out := (1-amount)*float64(v) + amount*float64(tint)*lum
	return uint8(math.Min(math.Max(out, 0), 255) + 0.5)
}

// tile fills r with copies of img aligned to its bounds.
func tile(img image.Image, r image.Rectangle) *image.NRGBA {
	b := img.Bounds()
	out := imaging.New(r.Dx(), r.Dy(), color.Transparent)
	if b.Empty() {
		return out
	}
	w, h := b.Dx(), b.Dy()
	x0 := r.Min.X - mod(r.Min.X-b.Min.X, w)
	y0 := r.Min.Y - mod(r.Min.Y-b.Min.Y, h)
	for y := y0; y < r.Max.Y; y += h {
		for x := x0; x < r.Max.X; x += w {
			out = imaging.Paste(out, img, image.Pt(x-r.Min.X, y-r.Min.Y))
		}
	}
	return out
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// DrawImage draws a prepared image through the clip. s2d maps source
// pixel coordinates to device coordinates.
func (s *Surface) DrawImage(src *image.NRGBA, s2d f64.Aff3, filter Filter) {
	sr := src.Bounds()
	if sr.Empty() {
		return
	}
	opts := &draw.Options{}
	if clip := s.Clip(); clip != nil {
		opts.DstMask = clip
	}

	// Axis-aligned upscaling or downscaling with the best filter goes
	// through a Lanczos resize, then a plain blit.
	if filter == FilterBest && s2d[1] == 0 && s2d[3] == 0 && s2d[0] > 0 && s2d[4] > 0 {
		w := int(math.Round(float64(sr.Dx()) * s2d[0]))
		h := int(math.Round(float64(sr.Dy()) * s2d[4]))
		if w <= 0 || h <= 0 {
			return
		}
		resized := imaging.Resize(src, w, h, imaging.Lanczos)
		translate := f64.Aff3{1, 0, math.Round(s2d[2]), 0, 1, math.Round(s2d[5])}
		draw.NearestNeighbor.Transform(s.dst, translate, resized, resized.Bounds(), draw.Over, opts)
		return
	}
	interpolator(filter).Transform(s.dst, s2d, src, sr, draw.Over, opts)
}

func interpolator(f Filter) draw.Transformer {
	switch f {
	case FilterNearest:
		return draw.NearestNeighbor
	case FilterBest:
		return draw.CatmullRom
	}
	return draw.ApproxBiLinear
}
