package recording

import (
	"image"

	"github.com/gogpu/tkpath"
)

// Recording is an immutable container for recorded drawing commands.
// It can be replayed onto any DrawingContext.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recorded surface.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recorded surface.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording onto ctx. Text and erase commands are
// skipped, with a debug log, when ctx lacks the capability. The returned
// error is the protocol error of a tracked context, if any.
//
// Recorded paths survive painting. On a context whose drawing destroys
// the path, the construction commands since the last BeginPath are sent
// again before the next call that needs the consumed path.
func (r *Recording) Playback(ctx tkpath.DrawingContext) error {
	destroys := ctx.DrawingDestroysPath()
	var (
		path     []Command
		consumed bool
	)
	for _, cmd := range r.commands {
		switch cmd.(type) {
		case BeginPathCommand, EndPathCommand:
			path, consumed = path[:0], false
		case MoveToCommand, LineToCommand, LinesToCommand, ArcToCommand,
			QuadBezierCommand, CurveToCommand, RectCommand, OvalCommand,
			ClosePathCommand:
			if consumed {
				r.rebuild(ctx, path)
				consumed = false
			}
			path = append(path, cmd)
		case FillCommand, StrokeCommand, FillAndStrokeCommand, ClipToPathCommand:
			if consumed {
				r.rebuild(ctx, path)
			}
			consumed = destroys
		}
		r.replay(ctx, cmd)
	}
	if e, ok := ctx.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

func (r *Recording) rebuild(ctx tkpath.DrawingContext, path []Command) {
	for _, cmd := range path {
		r.replay(ctx, cmd)
	}
}

func (r *Recording) replay(ctx tkpath.DrawingContext, cmd Command) {
	style := r.resources.GetStyle
	switch c := cmd.(type) {
	case BeginPathCommand:
		ctx.BeginPath(style(c.Style))
	case MoveToCommand:
		ctx.MoveTo(c.X, c.Y)
	case LineToCommand:
		ctx.LineTo(c.X, c.Y)
	case LinesToCommand:
		ctx.LinesTo(c.Points)
	case ArcToCommand:
		ctx.ArcTo(c.RX, c.RY, c.Phi, c.LargeArc, c.Sweep, c.X, c.Y)
	case QuadBezierCommand:
		ctx.QuadBezier(c.CX, c.CY, c.X, c.Y)
	case CurveToCommand:
		ctx.CurveTo(c.CX1, c.CY1, c.CX2, c.CY2, c.X, c.Y)
	case RectCommand:
		ctx.Rect(c.X, c.Y, c.Width, c.Height)
	case OvalCommand:
		ctx.Oval(c.CX, c.CY, c.RX, c.RY)
	case ClosePathCommand:
		ctx.ClosePath()
	case EndPathCommand:
		ctx.EndPath()
	case FillCommand:
		ctx.Fill(style(c.Style))
	case StrokeCommand:
		ctx.Stroke(style(c.Style))
	case FillAndStrokeCommand:
		ctx.FillAndStroke(style(c.Style))
	case ImageCommand:
		ctx.Image(r.resources.GetImage(c.Image), c.X, c.Y, c.Width, c.Height, c.Params)
	case PaintLinearGradientCommand:
		ctx.PaintLinearGradient(c.BBox, c.Fill, c.Rule, c.Opacity)
	case PaintRadialGradientCommand:
		ctx.PaintRadialGradient(c.BBox, c.Fill, c.Rule, c.Opacity)
	case DrawTextCommand:
		if tc, ok := ctx.(tkpath.TextContext); ok {
			tc.DrawText(style(c.Style), c.Text, c.X, c.Y, c.Size)
		} else {
			tkpath.Logger().Debug("recording: text skipped, context cannot draw text")
		}
	case EraseCommand:
		if e, ok := ctx.(tkpath.Eraser); ok {
			e.Erase(c.X, c.Y, c.Width, c.Height)
		} else {
			tkpath.Logger().Debug("recording: erase skipped, context cannot erase")
		}
	case ClipToPathCommand:
		ctx.ClipToPath(c.Rule)
	case ReleaseClipCommand:
		ctx.ReleaseClipToPath()
	case PushTMatrixCommand:
		ctx.PushTMatrix(c.Matrix)
	case SaveCommand:
		ctx.SaveState()
	case RestoreCommand:
		ctx.RestoreState()
	}
}

// Replay opens the named backend on dst, plays the recording into it and
// closes the context.
func (r *Recording) Replay(name string, dst *image.RGBA, opts ...tkpath.Option) error {
	return tkpath.Render(name, dst, r.Playback, opts...)
}
