// Package raster provides scanline rasterization into coverage masks, plus
// the compositing surface shared by the raster backends.
package raster

import (
	"image"
	"math"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// SupersampleShift is log2 of the vertical samples per pixel row in
// anti-aliased mode.
const SupersampleShift = 2

// SupersampleScale is the number of vertical samples per pixel row.
const SupersampleScale = 1 << SupersampleShift

// Rasterizer turns polygons into coverage masks.
type Rasterizer struct {
	width, height int
	antiAlias     bool
	aet           *ActiveEdgeTable
	acc           []float32
}

// NewRasterizer creates a rasterizer for a width x height surface.
func NewRasterizer(width, height int, antiAlias bool) *Rasterizer {
	return &Rasterizer{
		width:     width,
		height:    height,
		antiAlias: antiAlias,
		aet:       NewActiveEdgeTable(),
		acc:       make([]float32, width+1),
	}
}

// AntiAlias reports whether masks get fractional coverage.
func (r *Rasterizer) AntiAlias() bool { return r.antiAlias }

// Mask returns the coverage of polys under rule. Each polygon is closed
// implicitly. The mask covers only the touched rows and columns; nil
// means nothing is covered.
//
// In anti-aliased mode every pixel row is sampled at SupersampleScale
// sub-scanlines and each span contributes its exact horizontal overlap
// with every pixel. Otherwise a pixel is covered when its center is.
func (r *Rasterizer) Mask(polys [][]Point, rule FillRule) *image.Alpha {
	edges := make([]Edge, 0, 64)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	xMin, xMax := math.Inf(1), math.Inf(-1)
	for _, poly := range polys {
		n := len(poly)
		if n < 2 {
			continue
		}
		for i := range poly {
			p0, p1 := poly[i], poly[(i+1)%n]
			if e, ok := NewEdge(p0, p1); ok {
				edges = append(edges, e)
				yMin = math.Min(yMin, e.y0)
				yMax = math.Max(yMax, e.y1)
				xMin = math.Min(xMin, math.Min(e.x0, e.x1))
				xMax = math.Max(xMax, math.Max(e.x0, e.x1))
			}
		}
	}
	if len(edges) == 0 {
		return nil
	}
	bounds := image.Rect(
		int(math.Floor(xMin)), int(math.Floor(yMin)),
		int(math.Ceil(xMax)), int(math.Ceil(yMax)),
	).Intersect(image.Rect(0, 0, r.width, r.height))
	if bounds.Empty() {
		return nil
	}

	mask := image.NewAlpha(bounds)
	samples := 1
	if r.antiAlias {
		samples = SupersampleScale
	}
	weight := float32(1) / float32(samples)
	acc := r.acc[:r.width]
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		clear(acc)
		touched := false
		for s := 0; s < samples; s++ {
			sy := float64(y) + (float64(s)+0.5)/float64(samples)
			r.aet.Clear()
			for i := range edges {
				if edges[i].Crosses(sy) {
					r.aet.AddAtY(&edges[i], sy)
				}
			}
			if len(r.aet.Edges()) == 0 {
				continue
			}
			r.aet.Sort()
			r.aet.Spans(rule, func(x1, x2 float64) {
				if r.antiAlias {
					r.accumulate(acc, x1, x2, weight)
				} else {
					r.centers(acc, x1, x2)
				}
				touched = true
			})
		}
		if !touched {
			continue
		}
		row := mask.Pix[(y-bounds.Min.Y)*mask.Stride:]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := acc[x]
			if c <= 0 {
				continue
			}
			if c >= 1 {
				row[x-bounds.Min.X] = 0xff
			} else {
				row[x-bounds.Min.X] = uint8(c*255 + 0.5)
			}
		}
	}
	return mask
}

// accumulate adds weight times the horizontal overlap of [x1,x2) with
// every pixel.
func (r *Rasterizer) accumulate(acc []float32, x1, x2 float64, weight float32) {
	x1 = math.Max(x1, 0)
	x2 = math.Min(x2, float64(r.width))
	if x1 >= x2 {
		return
	}
	first := int(x1)
	last := int(math.Ceil(x2)) - 1
	if first == last {
		acc[first] += float32(x2-x1) * weight
		return
	}
	acc[first] += float32(float64(first+1)-x1) * weight
	for x := first + 1; x < last; x++ {
		acc[x] += weight
	}
	acc[last] += float32(x2-float64(last)) * weight
}

// centers covers the pixels whose centers lie in [x1,x2).
func (r *Rasterizer) centers(acc []float32, x1, x2 float64) {
	from := max(int(math.Ceil(x1-0.5)), 0)
	to := min(int(math.Ceil(x2-0.5)), r.width)
	for x := from; x < to; x++ {
		acc[x] = 1
	}
}

// RectMask returns the mask of an axis-aligned device rectangle.
func (r *Rasterizer) RectMask(x0, y0, x1, y1 float64) *image.Alpha {
	return r.Mask([][]Point{{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}}, FillRuleNonZero)
}
