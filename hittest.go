package tkpath

import "math"

// AreaResult is the tri-state outcome of an area test.
type AreaResult int

const (
	// AreaOutside means the item lies entirely outside the area.
	AreaOutside AreaResult = -1
	// AreaOverlapping means the item and the area partly overlap.
	AreaOverlapping AreaResult = 0
	// AreaInside means the item lies entirely inside the area.
	AreaInside AreaResult = 1
)

func (r AreaResult) String() string {
	switch r {
	case AreaOutside:
		return "outside"
	case AreaOverlapping:
		return "overlapping"
	case AreaInside:
		return "inside"
	}
	return "unknown"
}

// endShape is how a thick polyline ends at one vertex.
type endShape int

const (
	endButt endShape = iota
	endRound
	endSquare
)

func capShape(c LineCap) endShape {
	switch c {
	case LineCapRound:
		return endRound
	case LineCapProjecting:
		return endSquare
	}
	return endButt
}

// PathToPoint returns the distance from pt to the painted shape of p, all
// in canvas coordinates under the canvas matrix m. Points inside a filled
// area are at distance 0; the stroke reduces the distance by half its
// width, clamped at 0. maxSegments bounds the flattening cost, see
// MaxSegments. The bound is approximate: curves keep at least two
// segments each and lines one, whatever the budget.
func PathToPoint(p *Path, style *Style, m *TMatrix, maxSegments int, pt Point) float64 {
	tm := EffectiveMatrix(m, style)
	polys := flattenPath(p, tm, maxSegments)
	if len(polys) == 0 {
		return math.Inf(1)
	}
	if style.HasFill() && pointInPolylines(polys, style.FillRule, pt) {
		return 0
	}

	best := math.Inf(1)
	if style.HasStroke() {
		width := style.StrokeWidth * tm.MeanScale()
		for _, pl := range polys {
			best = math.Min(best, ThickPolygonToPoint(style.LineJoin, style.MiterLimit, style.LineCap, width, pl.closed, pl.pts, pt))
		}
		return best
	}
	for _, pl := range polys {
		best = math.Min(best, outlineDistance(pl.pts, pl.closed || style.HasFill(), pt))
	}
	return best
}

// PathToArea classifies p against the canvas-space rectangle area.
func PathToArea(p *Path, style *Style, m *TMatrix, maxSegments int, area PathRect) AreaResult {
	tm := EffectiveMatrix(m, style)
	polys := flattenPath(p, tm, maxSegments)
	if len(polys) == 0 {
		return AreaOutside
	}
	hw := 0.0
	if style.HasStroke() {
		hw = style.StrokeWidth * tm.MeanScale() / 2
	}

	inside := area.Outset(-hw)
	allIn := !inside.IsEmpty()
	for _, pl := range polys {
		for _, q := range pl.pts {
			if !inside.Contains(q.X, q.Y) {
				allIn = false
			}
		}
	}
	if allIn {
		return AreaInside
	}

	grown := area.Outset(hw)
	for _, pl := range polys {
		if PolylineToArea(pl.pts, pl.closed || style.HasFill(), grown) != AreaOutside {
			return AreaOverlapping
		}
	}
	if style.HasFill() {
		c := Point{X: (area.X1 + area.X2) / 2, Y: (area.Y1 + area.Y2) / 2}
		if pointInPolylines(polys, style.FillRule, c) {
			return AreaOverlapping
		}
	}
	return AreaOutside
}

// PointInPath reports whether pt lies in the filled interior of p under
// rule. Open subpaths are closed implicitly.
func PointInPath(p *Path, m *TMatrix, rule FillRule, maxSegments int, pt Point) bool {
	return pointInPolylines(flattenPath(p, MatrixOrIdentity(m), maxSegments), rule, pt)
}

func pointInPolylines(polys []polyline, rule FillRule, pt Point) bool {
	crossings, winding := 0, 0
	for _, pl := range polys {
		_, c, w := PolygonToPointEx(pl.pts, pt)
		crossings += c
		winding += w
	}
	if rule == FillRuleEvenOdd {
		return crossings%2 == 1
	}
	return winding != 0
}

// PolygonToPoint returns the distance from pt to the closed polygon poly,
// 0 when pt is inside by the even-odd rule.
func PolygonToPoint(poly []Point, pt Point) float64 {
	d, crossings, _ := PolygonToPointEx(poly, pt)
	if crossings%2 == 1 {
		return 0
	}
	return d
}

// PolygonToPointEx returns the distance from pt to the outline of the
// implicitly closed polygon poly, the number of outline crossings of the
// ray from pt toward +X, and the winding number of poly around pt.
func PolygonToPointEx(poly []Point, pt Point) (dist float64, crossings, winding int) {
	dist = math.Inf(1)
	n := len(poly)
	for i := range n {
		a, b := poly[i], poly[(i+1)%n]
		dist = math.Min(dist, segmentDistance(pt, a, b))
		if (a.Y <= pt.Y) == (b.Y <= pt.Y) {
			continue
		}
		x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > pt.X {
			crossings++
			if b.Y > a.Y {
				winding++
			} else {
				winding--
			}
		}
	}
	return dist, crossings, winding
}

func outlineDistance(pts []Point, closed bool, pt Point) float64 {
	if len(pts) == 1 {
		return pt.Distance(pts[0])
	}
	best := math.Inf(1)
	n := len(pts)
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		best = math.Min(best, segmentDistance(pt, pts[i], pts[(i+1)%n]))
	}
	return best
}

// ThickPolygonToPoint returns the distance from pt to the area covered by
// stroking poly with the given width. Caps apply to the ends of open
// polylines. Miter joins extend to the miter point while the miter ratio
// stays within miterLimit and fall back to bevels beyond it.
func ThickPolygonToPoint(join LineJoin, miterLimit float64, lineCap LineCap, width float64, closed bool, poly []Point, pt Point) float64 {
	hw := width / 2
	n := len(poly)
	switch n {
	case 0:
		return math.Inf(1)
	case 1:
		if capShape(lineCap) == endButt {
			return math.Inf(1)
		}
		return math.Max(0, pt.Distance(poly[0])-hw)
	}
	inner := endButt
	if join == LineJoinRound {
		inner = endRound
	}
	last := n - 1
	if closed {
		last = n
	}
	best := math.Inf(1)
	for i := 0; i < last && best > 0; i++ {
		start, end := inner, inner
		if !closed {
			if i == 0 {
				start = capShape(lineCap)
			}
			if i == n-2 {
				end = capShape(lineCap)
			}
		}
		best = math.Min(best, thickSegmentDistance(poly[i], poly[(i+1)%n], hw, start, end, pt))
	}
	if inner == endRound {
		return best
	}
	for i := 0; i < n && best > 0; i++ {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		prev, next := poly[(i+n-1)%n], poly[(i+1)%n]
		if w := joinWedge(prev, poly[i], next, hw, join == LineJoinMiter, miterLimit); w != nil {
			best = math.Min(best, PolygonToPoint(w, pt))
		}
	}
	return best
}

// joinWedge returns the polygon filling the outer corner at v between the
// segments prev-v and v-next: the bevel triangle, or the miter quad when
// miter is set and the miter ratio 1/cos(φ/2) for the turn φ is within
// limit.
func joinWedge(prev, v, next Point, hw float64, miter bool, limit float64) []Point {
	d1, d2 := v.Sub(prev), next.Sub(v)
	l1, l2 := d1.Length(), d2.Length()
	if l1 == 0 || l2 == 0 {
		return nil
	}
	d1, d2 = d1.Mul(1/l1), d2.Mul(1/l2)
	cross := d1.Cross(d2)
	if cross == 0 {
		return nil
	}
	s := -math.Copysign(hw, cross)
	n1 := Point{X: -d1.Y, Y: d1.X}.Mul(s)
	n2 := Point{X: -d2.Y, Y: d2.X}.Mul(s)
	dot := d1.Dot(d2)
	if miter && 2 < (1+dot)*limit*limit {
		m := v.Add(n1.Add(n2).Mul(1 / (1 + dot)))
		return []Point{v, v.Add(n1), m, v.Add(n2)}
	}
	return []Point{v, v.Add(n1), v.Add(n2)}
}

// thickSegmentDistance measures in the segment's local frame: u along the
// segment from a, v across it.
func thickSegmentDistance(a, b Point, hw float64, start, end endShape, pt Point) float64 {
	ab := b.Sub(a)
	l := ab.Length()
	if l == 0 {
		if start == endButt && end == endButt {
			return math.Inf(1)
		}
		return math.Max(0, pt.Distance(a)-hw)
	}
	dir := ab.Mul(1 / l)
	rel := pt.Sub(a)
	u := rel.Dot(dir)
	v := math.Abs(rel.Cross(dir))

	lo, hi := 0.0, l
	if start == endSquare {
		lo = -hw
	}
	if end == endSquare {
		hi = l + hw
	}
	switch {
	case u < lo && start == endRound:
		return math.Max(0, pt.Distance(a)-hw)
	case u > hi && end == endRound:
		return math.Max(0, pt.Distance(b)-hw)
	}
	du := math.Max(0, math.Max(lo-u, u-hi))
	dv := math.Max(0, v-hw)
	return math.Hypot(du, dv)
}

// PolylineToArea classifies the outline of poly against area: inside when
// every vertex is in it, overlapping when any vertex is in it or any edge
// crosses it, outside otherwise.
func PolylineToArea(poly []Point, closed bool, area PathRect) AreaResult {
	if len(poly) == 0 {
		return AreaOutside
	}
	in := 0
	for _, q := range poly {
		if area.Contains(q.X, q.Y) {
			in++
		}
	}
	switch {
	case in == len(poly):
		return AreaInside
	case in > 0:
		return AreaOverlapping
	}
	n := len(poly)
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		if segmentHitsRect(poly[i], poly[(i+1)%n], area) {
			return AreaOverlapping
		}
	}
	return AreaOutside
}

// segmentHitsRect clips a-b against r (Liang-Barsky).
func segmentHitsRect(a, b Point, r PathRect) bool {
	t0, t1 := 0.0, 1.0
	d := b.Sub(a)
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return false
			}
			t1 = math.Min(t1, t)
		}
		return true
	}
	return clip(-d.X, a.X-r.X1) && clip(d.X, r.X2-a.X) &&
		clip(-d.Y, a.Y-r.Y1) && clip(d.Y, r.Y2-a.Y) && t0 <= t1
}

// RectToPoint returns the distance from pt to rect stroked with width and
// optionally filled.
func RectToPoint(rect PathRect, width float64, filled bool, pt Point) float64 {
	hw := width / 2
	if filled && rect.Contains(pt.X, pt.Y) {
		return 0
	}
	dx := math.Max(0, math.Max(rect.X1-pt.X, pt.X-rect.X2))
	dy := math.Max(0, math.Max(rect.Y1-pt.Y, pt.Y-rect.Y2))
	var d float64
	if dx == 0 && dy == 0 {
		// Inside: distance to the nearest edge.
		d = math.Min(math.Min(pt.X-rect.X1, rect.X2-pt.X), math.Min(pt.Y-rect.Y1, rect.Y2-pt.Y))
	} else {
		d = math.Hypot(dx, dy)
	}
	return math.Max(0, d-hw)
}

// RectToArea classifies rect stroked with width against area.
func RectToArea(rect PathRect, width float64, filled bool, area PathRect) AreaResult {
	hw := width / 2
	outer := rect.Outset(hw)
	switch {
	case !outer.Overlaps(area):
		return AreaOutside
	case area.ContainsRect(outer):
		return AreaInside
	}
	if !filled {
		// An unfilled frame misses an area lying wholly in its hole.
		if hole := rect.Outset(-hw); !hole.IsEmpty() && hole.X1 < area.X1 && hole.X2 > area.X2 &&
			hole.Y1 < area.Y1 && hole.Y2 > area.Y2 {
			return AreaOutside
		}
	}
	return AreaOverlapping
}

// RectToPointWithMatrix is RectToPoint for a rect drawn under m. The
// rectilinear case maps the rect exactly; otherwise the transformed
// corners are tested as a polygon.
func RectToPointWithMatrix(rect PathRect, m *TMatrix, width float64, filled bool, pt Point) float64 {
	tm := MatrixOrIdentity(m)
	w := width * tm.MeanScale()
	if tm.IsRectilinear() {
		return RectToPoint(rect.Transform(tm), w, filled, pt)
	}
	poly := transformedCorners(rect, tm)
	if filled {
		if _, c, _ := PolygonToPointEx(poly, pt); c%2 == 1 {
			return 0
		}
	}
	return ThickPolygonToPoint(LineJoinMiter, DefaultMiterLimit, LineCapButt, w, true, poly, pt)
}

// RectToAreaWithMatrix is RectToArea for a rect drawn under m.
func RectToAreaWithMatrix(rect PathRect, m *TMatrix, width float64, filled bool, area PathRect) AreaResult {
	tm := MatrixOrIdentity(m)
	w := width * tm.MeanScale()
	if tm.IsRectilinear() {
		return RectToArea(rect.Transform(tm), w, filled, area)
	}
	poly := transformedCorners(rect, tm)
	res := PolylineToArea(poly, true, area.Outset(w/2))
	if res == AreaOutside && filled {
		c := Point{X: (area.X1 + area.X2) / 2, Y: (area.Y1 + area.Y2) / 2}
		if _, n, _ := PolygonToPointEx(poly, c); n%2 == 1 {
			return AreaOverlapping
		}
	}
	if res == AreaInside && !area.Outset(-w/2).ContainsRect(rect.Transform(tm)) {
		return AreaOverlapping
	}
	return res
}

func transformedCorners(rect PathRect, m TMatrix) []Point {
	c := rect.Corners()
	pts := make([]Point, len(c))
	for i, q := range c {
		pts[i] = m.TransformPoint(q)
	}
	return pts
}
