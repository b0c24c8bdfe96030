package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Source supplies the straight-alpha color of each device pixel painted
// through a mask.
type Source interface {
	Shade(x, y int) color.NRGBA
}

// Uniform is a single-color source.
type Uniform color.NRGBA

// Shade implements Source.
func (u Uniform) Shade(int, int) color.NRGBA { return color.NRGBA(u) }

// SourceFunc adapts a function to Source.
type SourceFunc func(x, y int) color.NRGBA

// Shade implements Source.
func (f SourceFunc) Shade(x, y int) color.NRGBA { return f(x, y) }

// Surface composites coverage masks onto an RGBA destination through a
// stack of clip masks.
type Surface struct {
	dst   *image.RGBA
	clips []*image.Alpha // clips[i] is the intersection of all clips up to i
}

// NewSurface wraps dst.
func NewSurface(dst *image.RGBA) *Surface {
	return &Surface{dst: dst}
}

// Image returns the destination.
func (s *Surface) Image() *image.RGBA { return s.dst }

// Bounds returns the destination bounds.
func (s *Surface) Bounds() image.Rectangle { return s.dst.Bounds() }

// Clip returns the active clip mask, or nil when unclipped.
func (s *Surface) Clip() *image.Alpha {
	if len(s.clips) == 0 {
		return nil
	}
	return s.clips[len(s.clips)-1]
}

// ClipDepth returns the number of pushed clips.
func (s *Surface) ClipDepth() int { return len(s.clips) }

// PushClip intersects the clip with m. A nil m clips everything.
func (s *Surface) PushClip(m *image.Alpha) {
	if m == nil {
		m = image.NewAlpha(image.Rectangle{})
	}
	if cur := s.Clip(); cur != nil {
		m = intersect(cur, m)
	}
	s.clips = append(s.clips, m)
}

// PopClip removes the last clip. It reports false when none was pushed.
func (s *Surface) PopClip() bool {
	if len(s.clips) == 0 {
		return false
	}
	s.clips = s.clips[:len(s.clips)-1]
	return true
}

// TruncateClips pops clips until depth remain.
func (s *Surface) TruncateClips(depth int) {
	if depth < len(s.clips) {
		s.clips = s.clips[:depth]
	}
}

func intersect(a, b *image.Alpha) *image.Alpha {
	r := a.Rect.Intersect(b.Rect)
	out := image.NewAlpha(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ca := uint32(a.AlphaAt(x, y).A)
			cb := uint32(b.AlphaAt(x, y).A)
			out.Pix[out.PixOffset(x, y)] = uint8(ca * cb / 0xff)
		}
	}
	return out
}

// Fill composites src over the destination through mask and the clip
// using source-over.
func (s *Surface) Fill(mask *image.Alpha, src Source) {
	if mask == nil {
		return
	}
	clip := s.Clip()
	r := mask.Rect.Intersect(s.dst.Rect)
	if clip != nil {
		r = r.Intersect(clip.Rect)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := uint32(mask.Pix[mask.PixOffset(x, y)])
			if clip != nil {
				cov = cov * uint32(clip.Pix[clip.PixOffset(x, y)]) / 0xff
			}
			if cov == 0 {
				continue
			}
			s.blend(x, y, src.Shade(x, y), cov)
		}
	}
}

// blend composites c with coverage cov (0..255) at (x, y).
func (s *Surface) blend(x, y int, c color.NRGBA, cov uint32) {
	sa := uint32(c.A) * cov / 0xff
	if sa == 0 {
		return
	}
	i := s.dst.PixOffset(x, y)
	p := s.dst.Pix[i : i+4 : i+4]
	inv := 0xff - sa
	p[0] = uint8((uint32(c.R)*sa + uint32(p[0])*inv) / 0xff)
	p[1] = uint8((uint32(c.G)*sa + uint32(p[1])*inv) / 0xff)
	p[2] = uint8((uint32(c.B)*sa + uint32(p[2])*inv) / 0xff)
	p[3] = uint8((sa*0xff + uint32(p[3])*inv) / 0xff)
}

// Erase clears r to transparent, ignoring the clip.
func (s *Surface) Erase(r image.Rectangle) {
	draw.Draw(s.dst, r, image.Transparent, image.Point{}, draw.Src)
}

// Snapshot returns a copy of the destination: *image.RGBA when
// premultiplied, else *image.NRGBA.
func (s *Surface) Snapshot(premultiplied bool) image.Image {
	if !premultiplied {
		return imaging.Clone(s.dst)
	}
	out := image.NewRGBA(s.dst.Rect)
	copy(out.Pix, s.dst.Pix)
	return out
}
