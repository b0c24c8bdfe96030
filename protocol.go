package tkpath

import (
	"fmt"
	"image"
)

// ContextState is the protocol state of a tracked context.
type ContextState int

const (
	// StateOpen: created, no path in progress.
	StateOpen ContextState = iota
	// StatePathStarted: BeginPath called, no current point.
	StatePathStarted
	// StateBuilding: the path has a current point.
	StateBuilding
	// StatePathEnded: EndPath called.
	StatePathEnded
	// StateClosed: Close called; every further call is an error.
	StateClosed
)

var stateNames = [...]string{
	StateOpen:        "open",
	StatePathStarted: "path-started",
	StateBuilding:    "building",
	StatePathEnded:   "path-ended",
	StateClosed:      "closed",
}

func (s ContextState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Tracked wraps a DrawingContext and checks the call sequence. Calls that
// violate the protocol are dropped and the first violation is kept as a
// sticky error, available from Err, in the manner of bufio.Scanner.
type Tracked struct {
	ctx        DrawingContext
	state      ContextState
	saveDepth  int
	clipDepth  int
	err        error
	violations int
}

var _ DrawingContext = (*Tracked)(nil)

// Track wraps ctx.
func Track(ctx DrawingContext) *Tracked {
	return &Tracked{ctx: ctx}
}

// Unwrap returns the wrapped context, for access to optional interfaces
// such as TextContext.
func (t *Tracked) Unwrap() DrawingContext { return t.ctx }

// State returns the current protocol state.
func (t *Tracked) State() ContextState { return t.state }

// Err returns the first protocol violation, or nil.
func (t *Tracked) Err() error { return t.err }

// Violations returns how many calls were dropped.
func (t *Tracked) Violations() int { return t.violations }

func (t *Tracked) fail(op string, err error) bool {
	t.violations++
	if t.err == nil {
		t.err = fmt.Errorf("%s: %w", op, err)
	}
	return false
}

// live reports whether the context accepts calls.
func (t *Tracked) live(op string) bool {
	if t.state == StateClosed {
		return t.fail(op, ErrContextClosed)
	}
	return true
}

// inPath reports whether a path is under construction.
func (t *Tracked) inPath(op string) bool {
	if !t.live(op) {
		return false
	}
	if t.state != StatePathStarted && t.state != StateBuilding {
		return t.fail(op, ErrNoCurrentPath)
	}
	return true
}

// hasPoint reports whether the path has a current point.
func (t *Tracked) hasPoint(op string) bool {
	if !t.inPath(op) {
		return false
	}
	if t.state != StateBuilding {
		return t.fail(op, ErrNoCurrentPoint)
	}
	return true
}

// painted updates the state after an operation that may consume the
// path.
func (t *Tracked) painted() {
	if t.ctx.DrawingDestroysPath() {
		t.state = StatePathStarted
	}
}

func (t *Tracked) BeginPath(style *Style) {
	if t.live("BeginPath") {
		t.ctx.BeginPath(style)
		t.state = StatePathStarted
	}
}

func (t *Tracked) MoveTo(x, y float64) {
	if t.inPath("MoveTo") {
		t.ctx.MoveTo(x, y)
		t.state = StateBuilding
	}
}

func (t *Tracked) LineTo(x, y float64) {
	if t.hasPoint("LineTo") {
		t.ctx.LineTo(x, y)
	}
}

func (t *Tracked) LinesTo(pts []Point) {
	if t.hasPoint("LinesTo") {
		t.ctx.LinesTo(pts)
	}
}

func (t *Tracked) ArcTo(rx, ry, phiDeg float64, largeArc, sweep bool, x, y float64) {
	if t.hasPoint("ArcTo") {
		t.ctx.ArcTo(rx, ry, phiDeg, largeArc, sweep, x, y)
	}
}

func (t *Tracked) QuadBezier(cx, cy, x, y float64) {
	if t.hasPoint("QuadBezier") {
		t.ctx.QuadBezier(cx, cy, x, y)
	}
}

func (t *Tracked) CurveTo(cx1, cy1, cx2, cy2, x, y float64) {
	if t.hasPoint("CurveTo") {
		t.ctx.CurveTo(cx1, cy1, cx2, cy2, x, y)
	}
}

func (t *Tracked) Rect(x, y, width, height float64) {
	if t.inPath("Rect") {
		t.ctx.Rect(x, y, width, height)
		t.state = StateBuilding
	}
}

func (t *Tracked) Oval(cx, cy, rx, ry float64) {
	if t.inPath("Oval") {
		t.ctx.Oval(cx, cy, rx, ry)
		t.state = StateBuilding
	}
}

func (t *Tracked) ClosePath() {
	if t.hasPoint("ClosePath") {
		t.ctx.ClosePath()
	}
}

func (t *Tracked) Image(img image.Image, x, y, width, height float64, params ImageParams) {
	if t.live("Image") {
		t.ctx.Image(img, x, y, width, height, params)
	}
}

func (t *Tracked) ClipToPath(rule FillRule) {
	if t.inPath("ClipToPath") {
		t.ctx.ClipToPath(rule)
		t.clipDepth++
		t.painted()
	}
}

func (t *Tracked) ReleaseClipToPath() {
	if !t.live("ReleaseClipToPath") {
		return
	}
	if t.clipDepth == 0 {
		t.fail("ReleaseClipToPath", ErrUnbalancedRestore)
		return
	}
	t.clipDepth--
	t.ctx.ReleaseClipToPath()
}

func (t *Tracked) Stroke(style *Style) {
	if t.inPath("Stroke") {
		t.ctx.Stroke(style)
		t.painted()
	}
}

func (t *Tracked) Fill(style *Style) {
	if t.inPath("Fill") {
		t.ctx.Fill(style)
		t.painted()
	}
}

func (t *Tracked) FillAndStroke(style *Style) {
	if t.inPath("FillAndStroke") {
		t.ctx.FillAndStroke(style)
		t.painted()
	}
}

func (t *Tracked) EndPath() {
	if t.inPath("EndPath") {
		t.ctx.EndPath()
		t.state = StatePathEnded
	}
}

func (t *Tracked) PushTMatrix(m TMatrix) {
	if t.live("PushTMatrix") {
		t.ctx.PushTMatrix(m)
	}
}

func (t *Tracked) SaveState() {
	if t.live("SaveState") {
		t.saveDepth++
		t.ctx.SaveState()
	}
}

func (t *Tracked) RestoreState() {
	if !t.live("RestoreState") {
		return
	}
	if t.saveDepth == 0 {
		t.fail("RestoreState", ErrUnbalancedRestore)
		return
	}
	t.saveDepth--
	t.ctx.RestoreState()
}

func (t *Tracked) PaintLinearGradient(bbox PathRect, fill *LinearGradientFill, rule FillRule, opacity float64) {
	if t.live("PaintLinearGradient") {
		t.ctx.PaintLinearGradient(bbox, fill, rule, opacity)
	}
}

func (t *Tracked) PaintRadialGradient(bbox PathRect, fill *RadialGradientFill, rule FillRule, opacity float64) {
	if t.live("PaintRadialGradient") {
		t.ctx.PaintRadialGradient(bbox, fill, rule, opacity)
	}
}

func (t *Tracked) CurrentPoint() (Point, bool) {
	if t.state != StateBuilding {
		return Point{}, false
	}
	return t.ctx.CurrentPoint()
}

func (t *Tracked) DrawingDestroysPath() bool {
	return t.ctx.DrawingDestroysPath()
}

// Close closes the wrapped context. Closing twice reports
// ErrContextClosed.
func (t *Tracked) Close() error {
	if t.state == StateClosed {
		t.fail("Close", ErrContextClosed)
		return fmt.Errorf("Close: %w", ErrContextClosed)
	}
	t.state = StateClosed
	return t.ctx.Close()
}
