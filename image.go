package tkpath

import (
	"fmt"
	"image"
)

// Anchor says which point of an image or text box the item coordinates
// name.
type Anchor int

const (
	AnchorNW Anchor = iota // default
	AnchorN
	AnchorNE
	AnchorW
	AnchorC
	AnchorE
	AnchorSW
	AnchorS
	AnchorSE
)

var anchorNames = [...]string{
	AnchorNW: "nw",
	AnchorN:  "n",
	AnchorNE: "ne",
	AnchorW:  "w",
	AnchorC:  "c",
	AnchorE:  "e",
	AnchorSW: "sw",
	AnchorS:  "s",
	AnchorSE: "se",
}

func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return "unknown"
}

// ParseAnchor parses an anchor name such as "nw" or "c".
func ParseAnchor(s string) (Anchor, error) {
	if s == "center" {
		return AnchorC, nil
	}
	for i, n := range anchorNames {
		if n == s {
			return Anchor(i), nil
		}
	}
	return AnchorNW, fmt.Errorf("tkpath: bad anchor %q", s)
}

// offset returns the fractions of width and height between the anchor
// point and the top-left corner.
func (a Anchor) offset() (fx, fy float64) {
	switch a {
	case AnchorN, AnchorC, AnchorS:
		fx = 0.5
	case AnchorNE, AnchorE, AnchorSE:
		fx = 1
	}
	switch a {
	case AnchorW, AnchorC, AnchorE:
		fy = 0.5
	case AnchorSW, AnchorS, AnchorSE:
		fy = 1
	}
	return fx, fy
}

// AnchorBox returns the box of the given size whose anchor point is at
// (x, y).
func AnchorBox(x, y, width, height float64, anchor Anchor) PathRect {
	fx, fy := anchor.offset()
	x1 := x - fx*width
	y1 := y - fy*height
	return PathRect{X1: x1, Y1: y1, X2: x1 + width, Y2: y1 + height}
}

// ImageSize returns the drawn size of an image item: the explicit width
// and height when positive, else the source region or image size.
func ImageSize(bounds image.Rectangle, params ImageParams, width, height float64) (float64, float64) {
	src := params.SourceRect(bounds)
	w, h := float64(src.Dx()), float64(src.Dy())
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}
	return w, h
}

// ImageBbox returns the user-space box of an image item.
func ImageBbox(img image.Image, x, y, width, height float64, anchor Anchor, params ImageParams) PathRect {
	w, h := ImageSize(img.Bounds(), params, width, height)
	return AnchorBox(x, y, w, h, anchor)
}

// PaintImage draws an image item placed by anchor under the canvas matrix
// m and the item matrix.
func PaintImage(ctx DrawingContext, img image.Image, x, y, width, height float64, anchor Anchor, params ImageParams, m, item *TMatrix) error {
	box := ImageBbox(img, x, y, width, height, anchor, params)
	ctx.SaveState()
	ctx.PushTMatrix(MatrixOrIdentity(m))
	if item != nil {
		ctx.PushTMatrix(*item)
	}
	ctx.Image(img, box.X1, box.Y1, box.Width(), box.Height(), params)
	ctx.RestoreState()
	return ctxErr(ctx)
}
