package recording

import (
	"fmt"
	"image"

	"github.com/gogpu/tkpath"
	"github.com/gogpu/tkpath/internal/textrender"
)

func init() {
	tkpath.Register(Name, func(dst *image.RGBA, cfg tkpath.RenderConfig) (tkpath.DrawingContext, error) {
		if dst == nil {
			return nil, fmt.Errorf("recording: nil destination")
		}
		return NewRecorder(dst.Rect.Dx(), dst.Rect.Dy()), nil
	})
}

// Name is the registry name of the recording context. A context opened
// under this name captures commands and never writes to the destination
// image; only its size is used.
const Name = "recording"

// Recorder is a DrawingContext that captures every call as a command
// instead of rasterizing. Use FinishRecording to obtain a Recording that
// can be replayed onto any other context.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	_ = tkpath.DrawPath(rec, path, &style, nil)
//	r := rec.FinishRecording()
//	err := r.Replay("scanline", dst)
//
// The Recorder tracks the current point in user coordinates, so helpers
// that depend on it, such as tkpath.ArcToCurves, work against it.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	pen, start tkpath.Point
	hasPen     bool
	closed     bool
}

var (
	_ tkpath.DrawingContext = (*Recorder)(nil)
	_ tkpath.TextContext    = (*Recorder)(nil)
	_ tkpath.Eraser         = (*Recorder)(nil)
)

// NewRecorder creates a Recorder for a surface of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
}

// FinishRecording returns a Recording of the commands so far. The
// Recorder should not be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

func (r *Recorder) add(cmd Command) {
	r.commands = append(r.commands, cmd)
}

func (r *Recorder) moved(x, y float64) {
	r.pen = tkpath.Point{X: x, Y: y}
	r.start = r.pen
	r.hasPen = true
}

func (r *Recorder) drew(x, y float64) {
	r.pen = tkpath.Point{X: x, Y: y}
}

func (r *Recorder) BeginPath(style *tkpath.Style) {
	r.hasPen = false
	r.add(BeginPathCommand{Style: r.resources.AddStyle(style)})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.add(MoveToCommand{X: x, Y: y})
	r.moved(x, y)
}

func (r *Recorder) LineTo(x, y float64) {
	r.add(LineToCommand{X: x, Y: y})
	r.drew(x, y)
}

func (r *Recorder) LinesTo(pts []tkpath.Point) {
	if len(pts) == 0 {
		return
	}
	r.add(LinesToCommand{Points: append([]tkpath.Point(nil), pts...)})
	last := pts[len(pts)-1]
	r.drew(last.X, last.Y)
}

func (r *Recorder) ArcTo(rx, ry, phiDeg float64, largeArc, sweep bool, x, y float64) {
	r.add(ArcToCommand{RX: rx, RY: ry, Phi: phiDeg, LargeArc: largeArc, Sweep: sweep, X: x, Y: y})
	r.drew(x, y)
}

func (r *Recorder) QuadBezier(cx, cy, x, y float64) {
	r.add(QuadBezierCommand{CX: cx, CY: cy, X: x, Y: y})
	r.drew(x, y)
}

func (r *Recorder) CurveTo(cx1, cy1, cx2, cy2, x, y float64) {
	r.add(CurveToCommand{CX1: cx1, CY1: cy1, CX2: cx2, CY2: cy2, X: x, Y: y})
	r.drew(x, y)
}

func (r *Recorder) Rect(x, y, width, height float64) {
	r.add(RectCommand{X: x, Y: y, Width: width, Height: height})
	r.moved(x, y)
}

func (r *Recorder) Oval(cx, cy, rx, ry float64) {
	r.add(OvalCommand{CX: cx, CY: cy, RX: rx, RY: ry})
	r.moved(cx+rx, cy)
}

func (r *Recorder) ClosePath() {
	r.add(ClosePathCommand{})
	r.pen = r.start
}

func (r *Recorder) EndPath() {
	r.add(EndPathCommand{})
	r.hasPen = false
}

func (r *Recorder) Fill(style *tkpath.Style) {
	r.add(FillCommand{Style: r.resources.AddStyle(style)})
}

func (r *Recorder) Stroke(style *tkpath.Style) {
	r.add(StrokeCommand{Style: r.resources.AddStyle(style)})
}

func (r *Recorder) FillAndStroke(style *tkpath.Style) {
	r.add(FillAndStrokeCommand{Style: r.resources.AddStyle(style)})
}

func (r *Recorder) Image(img image.Image, x, y, width, height float64, params tkpath.ImageParams) {
	r.add(ImageCommand{
		Image:  r.resources.AddImage(img),
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Params: params,
	})
}

func (r *Recorder) PaintLinearGradient(bbox tkpath.PathRect, fill *tkpath.LinearGradientFill, rule tkpath.FillRule, opacity float64) {
	r.add(PaintLinearGradientCommand{BBox: bbox, Fill: fill, Rule: rule, Opacity: opacity})
}

func (r *Recorder) PaintRadialGradient(bbox tkpath.PathRect, fill *tkpath.RadialGradientFill, rule tkpath.FillRule, opacity float64) {
	r.add(PaintRadialGradientCommand{BBox: bbox, Fill: fill, Rule: rule, Opacity: opacity})
}

func (r *Recorder) ClipToPath(rule tkpath.FillRule) {
	r.add(ClipToPathCommand{Rule: rule})
}

func (r *Recorder) ReleaseClipToPath() {
	r.add(ReleaseClipCommand{})
}

func (r *Recorder) PushTMatrix(m tkpath.TMatrix) {
	r.add(PushTMatrixCommand{Matrix: m})
}

func (r *Recorder) SaveState() {
	r.add(SaveCommand{})
}

func (r *Recorder) RestoreState() {
	r.add(RestoreCommand{})
}

// CurrentPoint returns the pen position in user coordinates.
func (r *Recorder) CurrentPoint() (tkpath.Point, bool) {
	return r.pen, r.hasPen
}

// DrawingDestroysPath reports false; the recording keeps paths intact.
func (r *Recorder) DrawingDestroysPath() bool { return false }

// MeasureText measures with the built-in font so text bboxes match the
// raster backends.
func (r *Recorder) MeasureText(s string, size float64) tkpath.TextMetrics {
	tr, err := textrender.Default()
	if err != nil {
		return tkpath.TextMetrics{}
	}
	m := tr.Measure(s, size)
	return tkpath.TextMetrics{Width: m.Width, Ascent: m.Ascent, Descent: m.Descent}
}

func (r *Recorder) DrawText(style *tkpath.Style, s string, x, y, size float64) {
	r.add(DrawTextCommand{Style: r.resources.AddStyle(style), Text: s, X: x, Y: y, Size: size})
}

func (r *Recorder) Erase(x, y, width, height float64) {
	r.add(EraseCommand{X: x, Y: y, Width: width, Height: height})
}

// Close marks the recorder closed. Commands remain available.
func (r *Recorder) Close() error {
	if r.closed {
		return tkpath.ErrContextClosed
	}
	r.closed = true
	return nil
}
