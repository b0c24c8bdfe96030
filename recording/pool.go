package recording

import (
	"image"

	"github.com/gogpu/tkpath"
)

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
// Styles are copied on add so later changes by the caller do not leak
// into the recording.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	styles []*tkpath.Style
	images []image.Image
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		styles: make([]*tkpath.Style, 0, 32),
		images: make([]image.Image, 0, 8),
	}
}

// AddStyle adds a copy of style and returns its reference. A nil style
// yields InvalidRef. Adding the style most recently added again returns
// the existing reference.
func (p *ResourcePool) AddStyle(style *tkpath.Style) StyleRef {
	if style == nil {
		return StyleRef(InvalidRef)
	}
	if n := len(p.styles); n > 0 && sameStyle(p.styles[n-1], style) {
		// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
		return StyleRef(uint32(n - 1))
	}
	s := tkpath.MergeStyles(*style, tkpath.Style{}, 0, 0)
	p.styles = append(p.styles, &s)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return StyleRef(uint32(len(p.styles) - 1))
}

// sameStyle compares the value fields and pointed-to values of a and b.
func sameStyle(a, b *tkpath.Style) bool {
	if a.FillGradient != b.FillGradient || a.FillOpacity != b.FillOpacity ||
		a.FillRule != b.FillRule || a.StrokeWidth != b.StrokeWidth ||
		a.StrokeOpacity != b.StrokeOpacity || a.LineCap != b.LineCap ||
		a.LineJoin != b.LineJoin || a.MiterLimit != b.MiterLimit {
		return false
	}
	return eqPtr(a.Fill, b.Fill) && eqPtr(a.Stroke, b.Stroke) &&
		eqPtr(a.Matrix, b.Matrix) && a.Dash == nil && b.Dash == nil
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// GetStyle returns the style for the given reference, or nil.
func (p *ResourcePool) GetStyle(ref StyleRef) *tkpath.Style {
	if int(ref) >= len(p.styles) {
		return nil
	}
	return p.styles[ref]
}

// StyleCount returns the number of styles in the pool.
func (p *ResourcePool) StyleCount() int {
	return len(p.styles)
}

// AddImage adds an image to the pool and returns its reference.
// Images are stored as is; image.Image values are treated as immutable.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for the given reference, or nil.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}
