package tkpath

import "image"

// DrawingContext is the contract between path items and a rendering
// backend. One context wraps one native drawing state for the duration of
// a paint and is discarded with Close.
//
// A paint follows a fixed sequence: BeginPath, path construction
// (MoveTo and the segment calls), then Fill, Stroke, FillAndStroke or a
// clip and gradient paint, and finally EndPath. Transforms and clips are
// scoped by SaveState and RestoreState. Methods do not return errors:
// unsupported features are skipped and logged at debug level. Wrap a
// context with [Track] to detect protocol misuse.
//
// Contexts are not safe for concurrent use.
type DrawingContext interface {
	// BeginPath starts a new, empty path painted with style.
	BeginPath(style *Style)

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a straight segment from the current point.
	LineTo(x, y float64)

	// LinesTo adds one straight segment per point.
	LinesTo(pts []Point)

	// ArcTo adds an elliptical arc in SVG endpoint form. phiDeg is the
	// rotation of the ellipse's x axis in degrees.
	ArcTo(rx, ry, phiDeg float64, largeArc, sweep bool, x, y float64)

	// QuadBezier adds a quadratic Bezier segment.
	QuadBezier(cx, cy, x, y float64)

	// CurveTo adds a cubic Bezier segment.
	CurveTo(cx1, cy1, cx2, cy2, x, y float64)

	// Rect adds a closed axis-aligned rectangle subpath.
	Rect(x, y, width, height float64)

	// Oval adds a closed ellipse subpath.
	Oval(cx, cy, rx, ry float64)

	// ClosePath closes the current subpath.
	ClosePath()

	// Image draws img into the rectangle at (x, y). A zero width or height
	// takes the source size.
	Image(img image.Image, x, y, width, height float64, params ImageParams)

	// ClipToPath intersects the clip with the current path.
	ClipToPath(rule FillRule)

	// ReleaseClipToPath undoes the last ClipToPath.
	ReleaseClipToPath()

	// Stroke paints the outline of the current path.
	Stroke(style *Style)

	// Fill paints the interior of the current path using style's fill
	// rule.
	Fill(style *Style)

	// FillAndStroke paints the interior, then the outline.
	FillAndStroke(style *Style)

	// EndPath finishes the current path.
	EndPath()

	// PushTMatrix concatenates m onto the current transform; m applies
	// to coordinates first.
	PushTMatrix(m TMatrix)

	// SaveState pushes the transform and clip.
	SaveState()

	// RestoreState pops the state pushed by the matching SaveState.
	RestoreState()

	// PaintLinearGradient paints fill over bbox, limited to the current
	// clip.
	PaintLinearGradient(bbox PathRect, fill *LinearGradientFill, rule FillRule, opacity float64)

	// PaintRadialGradient paints fill over bbox, limited to the current
	// clip.
	PaintRadialGradient(bbox PathRect, fill *RadialGradientFill, rule FillRule, opacity float64)

	// CurrentPoint returns the pen position in user coordinates, or false
	// when no subpath is open.
	CurrentPoint() (Point, bool)

	// DrawingDestroysPath reports whether Fill, Stroke and clipping
	// consume the current path, forcing callers to rebuild it before
	// painting again.
	DrawingDestroysPath() bool

	// Close releases the native state. The context must not be used
	// afterwards.
	Close() error
}

// TextContext is implemented by contexts that can measure and draw text.
type TextContext interface {
	// MeasureText returns the metrics of s in the given font size.
	MeasureText(s string, size float64) TextMetrics

	// DrawText draws s with its baseline origin at (x, y), filled with
	// style's fill color.
	DrawText(style *Style, s string, x, y, size float64)
}

// Eraser is implemented by contexts that can clear a region of their
// surface to transparent.
type Eraser interface {
	Erase(x, y, width, height float64)
}

// Snapshotter is implemented by contexts that can return a copy of their
// surface. The copy is an *image.RGBA, or an *image.NRGBA when the context
// was opened with premultiplied alpha disabled.
type Snapshotter interface {
	Snapshot() image.Image
}

// TextMetrics describes measured text.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Interpolation selects the filter used when an image is scaled.
type Interpolation int

const (
	// InterpolationNone uses nearest-neighbor sampling.
	InterpolationNone Interpolation = iota
	// InterpolationFast uses bilinear sampling (default for items).
	InterpolationFast
	// InterpolationBest uses the highest quality filter available.
	InterpolationBest
)

var interpolationNames = [...]string{
	InterpolationNone: "none",
	InterpolationFast: "fast",
	InterpolationBest: "best",
}

func (i Interpolation) String() string {
	if int(i) < len(interpolationNames) {
		return interpolationNames[i]
	}
	return "unknown"
}

// ImageParams are the optional parameters of DrawingContext.Image.
type ImageParams struct {
	// Opacity multiplies the image alpha. Zero is treated as opaque; use
	// a small positive value for nearly transparent images.
	Opacity float64

	// Tint, when set, blends the luminance of each pixel toward the tint
	// color by TintAmount in [0,1].
	Tint       *Color
	TintAmount float64

	Interpolation Interpolation

	// Region selects the source rectangle in image pixels. A region larger
	// than the image tiles it. Nil means the whole image.
	Region *PathRect
}

// EffectiveOpacity returns Opacity with zero mapped to 1.
func (p ImageParams) EffectiveOpacity() float64 {
	if p.Opacity <= 0 || p.Opacity > 1 {
		return 1
	}
	return p.Opacity
}

// SourceRect returns the integer source region for an image of the given
// bounds.
func (p ImageParams) SourceRect(bounds image.Rectangle) image.Rectangle {
	if p.Region == nil {
		return bounds
	}
	r := p.Region
	return image.Rect(int(r.X1), int(r.Y1), int(r.X2), int(r.Y2)).Add(bounds.Min)
}
