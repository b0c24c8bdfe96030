package tkpath

// Arrow polygon layout.
const (
	ArrowPoints         = 6 // points stored per arrow
	ArrowDrawablePoints = 5 // closed outline notch, flare, tip, flare, notch
	ArrowTipIndex       = 2 // the line's original end point
	ArrowLineIndex      = 5 // where the shortened line now ends
)

// ArrowDescr describes the arrow head at one end of a line and caches its
// computed polygon. It is owned by the line item and recomputed each time
// the line geometry changes.
type ArrowDescr struct {
	Enabled bool
	// Length is the distance from the tip to the flare points along the
	// line.
	Length float64
	// Width is the full width across the flare points. Zero means Length.
	Width float64
	// Fill is the notch depth as a fraction of Length: 1 gives a flat
	// base, smaller values a swept-back notch, 0 a stroked chevron.
	Fill float64

	// Points holds the computed polygon; valid once Configured is set.
	Points     [ArrowPoints]Point
	Configured bool
}

// NewArrowDescr returns an enabled arrow with a flat base.
func NewArrowDescr(length, width float64) ArrowDescr {
	return ArrowDescr{Enabled: true, Length: length, Width: width, Fill: 1}
}

func (a *ArrowDescr) shapeWidth() float64 {
	if a.Width > 0 {
		return a.Width
	}
	return a.Length
}

// Filled reports whether the arrow is drawn as a filled polygon rather
// than a chevron.
func (a *ArrowDescr) Filled() bool {
	return a.Fill > 0
}

// IsOpen reports whether a line with the given style and end points gets
// its ends pulled back under arrow heads: it has no fill and its ends do
// not coincide.
func IsOpen(style *Style, first, last Point) bool {
	return !style.HasFill() && first != last
}

// PreconfigureArrow restores the line end *pf to the arrow tip recorded by
// a previous configuration, so repeated configuration does not shorten
// the line again. This also holds for an arrow that has since been
// disabled: the line gets its full length back.
func PreconfigureArrow(pf *Point, arrow *ArrowDescr) {
	if arrow.Configured {
		*pf = arrow.Points[ArrowTipIndex]
	}
}

// ArrowPullback returns how far an open line of the given stroke width is
// shortened under arrow: to the notch, or further back where the arrow's
// half width first covers the line's half width.
func ArrowPullback(arrow *ArrowDescr, strokeWidth float64) float64 {
	l := arrow.Length
	backup := l * min(max(arrow.Fill, 0), 1)
	if w := arrow.shapeWidth(); w > 0 {
		backup = max(backup, l*strokeWidth/w)
	}
	return min(backup, l)
}

// ConfigureArrow computes the polygon of the arrow with its tip at pf,
// pointing away from pn, and returns the new line end point. Disabled
// arrows and zero-length directions leave the end point at pf; the
// latter collapse the polygon onto the tip. Only open lines are
// shortened.
func ConfigureArrow(pf, pn Point, arrow *ArrowDescr, style *Style, isOpen bool) Point {
	if !arrow.Enabled {
		arrow.Configured = false
		return pf
	}
	for i := range arrow.Points {
		arrow.Points[i] = pf
	}
	arrow.Configured = true

	d := pf.Sub(pn)
	length := d.Length()
	if length == 0 {
		return pf
	}
	u := d.Mul(1 / length)      // tip direction
	n := Point{X: -u.Y, Y: u.X} // left normal

	l := arrow.Length
	hw := arrow.shapeWidth() / 2
	base := pf.Sub(u.Mul(l))
	notch := pf.Sub(u.Mul(l * min(max(arrow.Fill, 0), 1)))

	arrow.Points[0] = notch
	arrow.Points[1] = base.Add(n.Mul(hw))
	arrow.Points[2] = pf
	arrow.Points[3] = base.Sub(n.Mul(hw))
	arrow.Points[4] = notch

	if !isOpen {
		arrow.Points[ArrowLineIndex] = pf
		return pf
	}
	width := 0.0
	if style.HasStroke() {
		width = style.StrokeWidth
	}
	end := pf.Sub(u.Mul(ArrowPullback(arrow, width)))
	arrow.Points[ArrowLineIndex] = end
	return end
}

// TranslateArrow moves the cached polygon.
func TranslateArrow(arrow *ArrowDescr, dx, dy float64) {
	if !arrow.Configured {
		return
	}
	for i := range arrow.Points {
		arrow.Points[i].X += dx
		arrow.Points[i].Y += dy
	}
}

// ScaleArrow scales the cached polygon about (ox, oy).
func ScaleArrow(arrow *ArrowDescr, ox, oy, sx, sy float64) {
	if !arrow.Configured {
		return
	}
	for i := range arrow.Points {
		arrow.Points[i].X = ox + (arrow.Points[i].X-ox)*sx
		arrow.Points[i].Y = oy + (arrow.Points[i].Y-oy)*sy
	}
}

// IncludeArrowPoints grows r to contain the drawable arrow points.
func IncludeArrowPoints(r *PathRect, arrow *ArrowDescr) {
	if !arrow.Enabled || !arrow.Configured {
		return
	}
	for _, p := range arrow.Points[:ArrowDrawablePoints] {
		r.IncludePoint(p.X, p.Y)
	}
}

// ArrowPath returns the atoms that draw arrow: a closed outline for filled
// arrows, the flare-tip-flare chevron otherwise. Nil when the arrow is not
// drawable.
func ArrowPath(arrow *ArrowDescr) *Path {
	if !arrow.Enabled || !arrow.Configured {
		return nil
	}
	pts := arrow.Points
	if pts[1] == pts[ArrowTipIndex] && pts[3] == pts[ArrowTipIndex] {
		return nil
	}
	p := &Path{}
	if arrow.Filled() {
		p.Append(&MoveTo{X: pts[0].X, Y: pts[0].Y})
		for _, q := range pts[1:ArrowDrawablePoints] {
			p.Append(&LineTo{X: q.X, Y: q.Y})
		}
		p.Append(&Close{X: pts[0].X, Y: pts[0].Y})
		return p
	}
	p.Append(&MoveTo{X: pts[1].X, Y: pts[1].Y},
		&LineTo{X: pts[2].X, Y: pts[2].Y},
		&LineTo{X: pts[3].X, Y: pts[3].Y})
	return p
}

// ArrowStyle returns the style arrows are painted with: filled arrows use
// the stroke color as their fill, chevrons keep the line's stroke.
func ArrowStyle(arrow *ArrowDescr, line *Style) Style {
	s := *line
	s.Dash = nil
	s.FillGradient = nil
	if arrow.Filled() {
		s.Fill = line.Stroke
		s.FillOpacity = line.StrokeOpacity
		s.Stroke = nil
		return s
	}
	s.Fill = nil
	return s
}

// ConfigurePathArrows configures the start and end arrows of an open path
// and moves its first and last vertices to the shortened line ends.
// Either arrow may be nil.
func ConfigurePathArrows(p *Path, start, end *ArrowDescr, style *Style) error {
	first, second, penult, last, err := p.Endpoints()
	if err != nil {
		return err
	}
	if start != nil {
		PreconfigureArrow(&first, start)
	}
	if end != nil {
		PreconfigureArrow(&last, end)
	}
	open := IsOpen(style, first, last)

	if start != nil {
		nf := ConfigureArrow(first, second, start, style, open)
		x, y := p.endCoords(false)
		*x, *y = nf.X, nf.Y
	}
	if end != nil {
		nl := ConfigureArrow(last, penult, end, style, open)
		x, y := p.endCoords(true)
		*x, *y = nl.X, nl.Y
	}
	return nil
}
