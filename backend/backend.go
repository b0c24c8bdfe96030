package backend

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/tkpath"
	"github.com/gogpu/tkpath/internal/raster"
)

// Backend names.
const (
	Immediate = "immediate"
	Retained  = "retained"
	Scanline  = "scanline"
)

// ErrEmptySurface is returned when a context is opened on a destination
// with no pixels.
var ErrEmptySurface = errors.New("backend: empty destination surface")

// state is one SaveState entry.
type state struct {
	ctm       tkpath.TMatrix
	clipDepth int
}

// Canvas is the device state shared by the raster backends: the current
// transform, the save stack and the clip stack over one destination.
type Canvas struct {
	Surface *raster.Surface
	Config  tkpath.RenderConfig
	CTM     tkpath.TMatrix

	name   string
	log    *slog.Logger
	rast   *raster.Rasterizer
	saved  []state
	closed bool
}

// NewCanvas prepares a canvas over dst. A nil or empty dst fails with
// ErrEmptySurface.
func NewCanvas(name string, dst *image.RGBA, cfg tkpath.RenderConfig) (*Canvas, error) {
	if dst == nil || dst.Rect.Empty() {
		return nil, ErrEmptySurface
	}
	if dst.Rect.Min != (image.Point{}) {
		return nil, fmt.Errorf("backend: destination must start at the origin, got %v", dst.Rect.Min)
	}
	return &Canvas{
		Surface: raster.NewSurface(dst),
		Config:  cfg,
		CTM:     tkpath.Identity(),
		name:    name,
		log:     cfg.Log().With("backend", name),
		rast:    raster.NewRasterizer(dst.Rect.Dx(), dst.Rect.Dy(), cfg.AntiAlias),
	}, nil
}

// Log returns the backend's logger.
func (c *Canvas) Log() *slog.Logger { return c.log }

// Unsupported logs a skipped feature at debug level.
func (c *Canvas) Unsupported(feature string, args ...any) {
	c.log.Debug("tkpath: unsupported feature skipped", append([]any{"feature", feature}, args...)...)
}

// Rasterizer returns the coverage rasterizer sized to the surface.
func (c *Canvas) Rasterizer() *raster.Rasterizer { return c.rast }

// PushTMatrix concatenates m so that it applies to coordinates first.
func (c *Canvas) PushTMatrix(m tkpath.TMatrix) {
	c.CTM = tkpath.Compose(c.CTM, m)
}

// SaveState pushes the transform and clip depth.
func (c *Canvas) SaveState() {
	c.saved = append(c.saved, state{ctm: c.CTM, clipDepth: c.Surface.ClipDepth()})
}

// RestoreState pops the last SaveState. Clips pushed since are dropped.
func (c *Canvas) RestoreState() {
	n := len(c.saved)
	if n == 0 {
		c.log.Debug("tkpath: restore without save ignored")
		return
	}
	s := c.saved[n-1]
	c.saved = c.saved[:n-1]
	c.CTM = s.ctm
	c.Surface.TruncateClips(s.clipDepth)
}

// ReleaseClipToPath pops the last path clip.
func (c *Canvas) ReleaseClipToPath() {
	if !c.Surface.PopClip() {
		c.log.Debug("tkpath: release without clip ignored")
	}
}

// Close drops the state stacks. The surface pixels are kept.
func (c *Canvas) Close() error {
	if c.closed {
		return tkpath.ErrContextClosed
	}
	c.closed = true
	c.saved = nil
	c.Surface.TruncateClips(0)
	return nil
}

// Erase clears the device envelope of a user-space rectangle.
func (c *Canvas) Erase(x, y, width, height float64) {
	r := tkpath.PathRect{X1: x, Y1: y, X2: x + width, Y2: y + height}.Transform(c.CTM)
	c.Surface.Erase(DeviceRect(r))
}

// Snapshot returns a copy of the surface in the configured alpha
// representation.
func (c *Canvas) Snapshot() image.Image {
	return c.Surface.Snapshot(c.Config.PremultipliedAlpha)
}

// DeviceRect rounds r outward to whole pixels.
func DeviceRect(r tkpath.PathRect) image.Rectangle {
	if r.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(floor(r.X1), floor(r.Y1), ceil(r.X2), ceil(r.Y2))
}
