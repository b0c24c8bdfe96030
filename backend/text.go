package backend

import (
	"github.com/gogpu/tkpath"
	"github.com/gogpu/tkpath/internal/textrender"
)

// MeasureText measures s with the built-in font. Sizes are in user units.
func (c *Canvas) MeasureText(s string, size float64) tkpath.TextMetrics {
	r, err := textrender.Default()
	if err != nil {
		c.log.Debug("tkpath: text measure unavailable", "err", err)
		return tkpath.TextMetrics{}
	}
	m := r.Measure(s, size)
	return tkpath.TextMetrics{Width: m.Width, Ascent: m.Ascent, Descent: m.Descent}
}

// DrawText fills s with style's fill color, baseline origin at user point
// (x, y). The font size follows the mean scale of the transform; rotation
// and shear are not applied to glyphs.
func (c *Canvas) DrawText(style *tkpath.Style, s string, x, y, size float64) {
	if style == nil || style.Fill == nil {
		return
	}
	r, err := textrender.Default()
	if err != nil {
		c.log.Debug("tkpath: text drawing unavailable", "err", err)
		return
	}
	if !c.CTM.IsRectilinear() {
		c.Unsupported("rotated text", "text", s)
	}
	o := c.CTM.TransformPoint(tkpath.Point{X: x, Y: y})
	mask := r.Mask(s, o.X, o.Y, size*c.CTM.MeanScale(), c.Surface.Bounds())
	if mask == nil {
		return
	}
	c.Surface.Fill(mask, Solid(style.Fill, style.FillOpacity))
}
