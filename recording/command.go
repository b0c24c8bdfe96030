package recording

import "github.com/gogpu/tkpath"

// CommandType identifies the type of a command.
// Each command type corresponds to one DrawingContext call.
type CommandType uint8

const (
	// Path construction
	CmdBeginPath CommandType = iota
	CmdMoveTo
	CmdLineTo
	CmdLinesTo
	CmdArcTo
	CmdQuadBezier
	CmdCurveTo
	CmdRect
	CmdOval
	CmdClosePath
	CmdEndPath

	// Painting
	CmdFill
	CmdStroke
	CmdFillAndStroke
	CmdImage
	CmdPaintLinearGradient
	CmdPaintRadialGradient
	CmdDrawText
	CmdErase

	// State
	CmdClipToPath
	CmdReleaseClip
	CmdPushTMatrix
	CmdSave
	CmdRestore
)

var commandTypeNames = [...]string{
	CmdBeginPath:           "BeginPath",
	CmdMoveTo:              "MoveTo",
	CmdLineTo:              "LineTo",
	CmdLinesTo:             "LinesTo",
	CmdArcTo:               "ArcTo",
	CmdQuadBezier:          "QuadBezier",
	CmdCurveTo:             "CurveTo",
	CmdRect:                "Rect",
	CmdOval:                "Oval",
	CmdClosePath:           "ClosePath",
	CmdEndPath:             "EndPath",
	CmdFill:                "Fill",
	CmdStroke:              "Stroke",
	CmdFillAndStroke:       "FillAndStroke",
	CmdImage:               "Image",
	CmdPaintLinearGradient: "PaintLinearGradient",
	CmdPaintRadialGradient: "PaintRadialGradient",
	CmdDrawText:            "DrawText",
	CmdErase:               "Erase",
	CmdClipToPath:          "ClipToPath",
	CmdReleaseClip:         "ReleaseClipToPath",
	CmdPushTMatrix:         "PushTMatrix",
	CmdSave:                "SaveState",
	CmdRestore:             "RestoreState",
}

// String returns the DrawingContext method name of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// StyleRef is a reference to a style in the resource pool.
type StyleRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// InvalidRef marks a missing resource, such as a nil style.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a style.
func (r StyleRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference points to an image.
func (r ImageRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// BeginPathCommand starts a path painted with Style.
type BeginPathCommand struct {
	Style StyleRef
}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// MoveToCommand starts a subpath.
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a line segment.
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// LinesToCommand adds a run of line segments.
type LinesToCommand struct {
	Points []tkpath.Point
}

// Type implements Command.
func (LinesToCommand) Type() CommandType { return CmdLinesTo }

// ArcToCommand adds an elliptical arc in endpoint form.
type ArcToCommand struct {
	RX, RY, Phi     float64
	LargeArc, Sweep bool
	X, Y            float64
}

// Type implements Command.
func (ArcToCommand) Type() CommandType { return CmdArcTo }

// QuadBezierCommand adds a quadratic segment.
type QuadBezierCommand struct {
	CX, CY, X, Y float64
}

// Type implements Command.
func (QuadBezierCommand) Type() CommandType { return CmdQuadBezier }

// CurveToCommand adds a cubic segment.
type CurveToCommand struct {
	CX1, CY1, CX2, CY2, X, Y float64
}

// Type implements Command.
func (CurveToCommand) Type() CommandType { return CmdCurveTo }

// RectCommand adds a rectangle subpath.
type RectCommand struct {
	X, Y, Width, Height float64
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// OvalCommand adds an ellipse subpath.
type OvalCommand struct {
	CX, CY, RX, RY float64
}

// Type implements Command.
func (OvalCommand) Type() CommandType { return CmdOval }

// ClosePathCommand closes the subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// EndPathCommand finishes the path.
type EndPathCommand struct{}

// Type implements Command.
func (EndPathCommand) Type() CommandType { return CmdEndPath }

// --------------------------------------------------------------------------
// Paint Commands
// --------------------------------------------------------------------------

// FillCommand fills the current path.
type FillCommand struct {
	Style StyleRef
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand strokes the current path.
type StrokeCommand struct {
	Style StyleRef
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// FillAndStrokeCommand fills then strokes the current path.
type FillAndStrokeCommand struct {
	Style StyleRef
}

// Type implements Command.
func (FillAndStrokeCommand) Type() CommandType { return CmdFillAndStroke }

// ImageCommand draws an image.
type ImageCommand struct {
	Image               ImageRef
	X, Y, Width, Height float64
	Params              tkpath.ImageParams
}

// Type implements Command.
func (ImageCommand) Type() CommandType { return CmdImage }

// PaintLinearGradientCommand paints a linear gradient over BBox.
type PaintLinearGradientCommand struct {
	BBox    tkpath.PathRect
	Fill    *tkpath.LinearGradientFill
	Rule    tkpath.FillRule
	Opacity float64
}

// Type implements Command.
func (PaintLinearGradientCommand) Type() CommandType { return CmdPaintLinearGradient }

// PaintRadialGradientCommand paints a radial gradient over BBox.
type PaintRadialGradientCommand struct {
	BBox    tkpath.PathRect
	Fill    *tkpath.RadialGradientFill
	Rule    tkpath.FillRule
	Opacity float64
}

// Type implements Command.
func (PaintRadialGradientCommand) Type() CommandType { return CmdPaintRadialGradient }

// DrawTextCommand draws text with its baseline origin at (X, Y).
type DrawTextCommand struct {
	Style StyleRef
	Text  string
	X, Y  float64
	Size  float64
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// EraseCommand clears a rectangle.
type EraseCommand struct {
	X, Y, Width, Height float64
}

// Type implements Command.
func (EraseCommand) Type() CommandType { return CmdErase }

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// ClipToPathCommand clips to the current path.
type ClipToPathCommand struct {
	Rule tkpath.FillRule
}

// Type implements Command.
func (ClipToPathCommand) Type() CommandType { return CmdClipToPath }

// ReleaseClipCommand undoes the last clip.
type ReleaseClipCommand struct{}

// Type implements Command.
func (ReleaseClipCommand) Type() CommandType { return CmdReleaseClip }

// PushTMatrixCommand concatenates a transform.
type PushTMatrixCommand struct {
	Matrix tkpath.TMatrix
}

// Type implements Command.
func (PushTMatrixCommand) Type() CommandType { return CmdPushTMatrix }

// SaveCommand saves the transform and clip.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the last saved state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }
