package tkpath

import "math"

// AxialSegment is one two-color linear shading between adjacent stops, in
// gradient space. ExtendStart/ExtendEnd continue the edge color beyond
// the segment; only the first and last segments of a gradient set them.
type AxialSegment struct {
	Start, End               Point
	StartColor, EndColor     Color
	StartOpacity, EndOpacity float64
	ExtendStart, ExtendEnd   bool
}

// RadialSegment is one two-color radial shading between adjacent stops.
type RadialSegment struct {
	StartCenter              Point
	StartRadius              float64
	EndCenter                Point
	EndRadius                float64
	StartColor, EndColor     Color
	StartOpacity, EndOpacity float64
	ExtendStart, ExtendEnd   bool
}

// stopPairs calls fn for every adjacent stop pair whose offsets differ by
// at least stopEpsilon, flagging the first and last pair it emits.
func stopPairs(stops GradientStopArray, fn func(a, b GradientStop, first, last bool)) {
	var pairs []int
	for i := 0; i+1 < len(stops); i++ {
		if math.Abs(stops[i+1].Offset-stops[i].Offset) >= stopEpsilon {
			pairs = append(pairs, i)
		}
	}
	for k, i := range pairs {
		fn(stops[i], stops[i+1], k == 0, k == len(pairs)-1)
	}
}

// AxialSegments splits g into one shading per adjacent stop pair, placed
// on the transition line. Two stops at 0 and 1 give a single segment
// spanning the whole line.
func AxialSegments(g *LinearGradientFill) []AxialSegment {
	p1 := Point{X: g.Transition.X1, Y: g.Transition.Y1}
	p2 := Point{X: g.Transition.X2, Y: g.Transition.Y2}
	var segs []AxialSegment
	stopPairs(g.Stops, func(a, b GradientStop, first, last bool) {
		segs = append(segs, AxialSegment{
			Start:        p1.Lerp(p2, a.Offset),
			End:          p1.Lerp(p2, b.Offset),
			StartColor:   a.Color,
			EndColor:     b.Color,
			StartOpacity: a.Opacity,
			EndOpacity:   b.Opacity,
			ExtendStart:  first,
			ExtendEnd:    last,
		})
	})
	return segs
}

// RadialSegments splits g into one shading per adjacent stop pair. The
// circles move from the focal point to the center and grow from zero to
// Radius as the offset goes from 0 to 1.
func RadialSegments(g *RadialGradientFill) []RadialSegment {
	f := g.focal()
	c := Point{X: g.CenterX, Y: g.CenterY}
	var segs []RadialSegment
	stopPairs(g.Stops, func(a, b GradientStop, first, last bool) {
		segs = append(segs, RadialSegment{
			StartCenter:  f.Lerp(c, a.Offset),
			StartRadius:  g.Radius * a.Offset,
			EndCenter:    f.Lerp(c, b.Offset),
			EndRadius:    g.Radius * b.Offset,
			StartColor:   a.Color,
			EndColor:     b.Color,
			StartOpacity: a.Opacity,
			EndOpacity:   b.Opacity,
			ExtendStart:  first,
			ExtendEnd:    last,
		})
	})
	return segs
}

// ParamAt returns the segment parameter of p in [0,1], or false when p
// falls outside the segment on a side that does not extend.
func (s AxialSegment) ParamAt(p Point) (float64, bool) {
	d := s.End.Sub(s.Start)
	l2 := d.Dot(d)
	if l2 == 0 {
		return 0, false
	}
	return clampExtend(p.Sub(s.Start).Dot(d)/l2, s.ExtendStart, s.ExtendEnd)
}

// ParamAt returns the largest parameter whose interpolated circle passes
// through p, following the two-circle conic gradient model.
func (s RadialSegment) ParamAt(p Point) (float64, bool) {
	cd := s.EndCenter.Sub(s.StartCenter)
	pd := p.Sub(s.StartCenter)
	dr := s.EndRadius - s.StartRadius
	a := cd.Dot(cd) - dr*dr
	b := pd.Dot(cd) + s.StartRadius*dr
	c := pd.Dot(pd) - s.StartRadius*s.StartRadius

	var roots []float64
	if math.Abs(a) < 1e-12 {
		if b != 0 {
			roots = append(roots, c/(2*b))
		}
	} else {
		disc := b*b - a*c
		if disc < 0 {
			return 0, false
		}
		sq := math.Sqrt(disc)
		r1, r2 := (b+sq)/a, (b-sq)/a
		roots = append(roots, max(r1, r2), min(r1, r2))
	}
	for _, t := range roots {
		if s.StartRadius+t*dr < 0 {
			continue
		}
		if u, ok := clampExtend(t, s.ExtendStart, s.ExtendEnd); ok {
			return u, true
		}
	}
	return 0, false
}

func clampExtend(t float64, extendStart, extendEnd bool) (float64, bool) {
	switch {
	case t < 0:
		return 0, extendStart
	case t > 1:
		return 1, extendEnd
	}
	return t, true
}

// ColorAt interpolates the segment colors.
func (s AxialSegment) ColorAt(t float64, linearRGB bool) (Color, float64) {
	return LerpColor(s.StartColor, s.EndColor, t, linearRGB), s.StartOpacity + (s.EndOpacity-s.StartOpacity)*t
}

// ColorAt interpolates the segment colors.
func (s RadialSegment) ColorAt(t float64, linearRGB bool) (Color, float64) {
	return LerpColor(s.StartColor, s.EndColor, t, linearRGB), s.StartOpacity + (s.EndOpacity-s.StartOpacity)*t
}
