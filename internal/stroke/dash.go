package stroke

import "math"

// Dash splits polylines into the "on" runs of a dash pattern. Pattern
// lengths alternate on and off starting with on; offset shifts the
// pattern start along each polyline. Closed polylines are dashed as open
// ones that return to their start. An empty or all-zero pattern returns
// polys unchanged.
func Dash(polys []Polyline, pattern []float64, offset float64) []Polyline {
	total := 0.0
	for _, d := range pattern {
		if d < 0 {
			return polys
		}
		total += d
	}
	if len(pattern) == 0 || total <= 0 {
		return polys
	}
	// Odd patterns repeat to give an even on/off sequence.
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
		total *= 2
	}
	offset = math.Mod(offset, total)
	if offset < 0 {
		offset += total
	}

	var out []Polyline
	for _, pl := range polys {
		pts := pl.Points
		if pl.Closed && len(pts) > 0 {
			pts = append(append([]Point(nil), pts...), pts[0])
		}
		out = dashOne(out, pts, pattern, offset)
	}
	return out
}

func dashOne(out []Polyline, pts []Point, pattern []float64, offset float64) []Polyline {
	if len(pts) < 2 {
		return out
	}
	// Find the dash index and the distance left in it at the start.
	idx := 0
	left := pattern[0]
	for offset > 0 {
		if offset < left {
			left -= offset
			break
		}
		offset -= left
		idx = (idx + 1) % len(pattern)
		left = pattern[idx]
	}

	var cur []Point
	on := idx%2 == 0
	if on {
		cur = append(cur, pts[0])
	}
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		seg := b.sub(a).length()
		pos := 0.0
		for seg-pos > left {
			pos += left
			p := a.add(b.sub(a).scale(pos / seg))
			if on {
				cur = append(cur, p)
				out = append(out, Polyline{Points: cur})
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			left = pattern[idx]
		}
		left -= seg - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, Polyline{Points: cur})
	}
	return out
}
