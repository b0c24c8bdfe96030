package raster

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Edge is a non-horizontal polygon edge stored top to bottom.
type Edge struct {
	x0, y0 float64 // top
	x1, y1 float64 // bottom
	dxdy   float64
	dir    int // +1 when the original edge pointed down, -1 up
}

// NewEdge creates an edge from p0 to p1. The second result is false for
// horizontal edges, which never cross a scanline.
func NewEdge(p0, p1 Point) (Edge, bool) {
	if p0.Y == p1.Y {
		return Edge{}, false
	}
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return Edge{
		x0:   p0.X,
		y0:   p0.Y,
		x1:   p1.X,
		y1:   p1.Y,
		dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
		dir:  dir,
	}, true
}

// XAtY returns the x coordinate of the edge at y.
func (e *Edge) XAtY(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// Crosses reports whether the scanline at y crosses the edge. The top
// end is inclusive, the bottom exclusive, so shared vertices count once.
func (e *Edge) Crosses(y float64) bool {
	return e.y0 <= y && y < e.y1
}

// ActiveEdge is an edge crossing the current scanline.
type ActiveEdge struct {
	X   float64
	Dir int
}

// ActiveEdgeTable collects the edges crossing one scanline, sorted by x.
type ActiveEdgeTable struct {
	edges []ActiveEdge
}

// NewActiveEdgeTable creates an empty table.
func NewActiveEdgeTable() *ActiveEdgeTable {
	return &ActiveEdgeTable{edges: make([]ActiveEdge, 0, 32)}
}

// AddAtY adds edge with its x evaluated at y.
func (aet *ActiveEdgeTable) AddAtY(edge *Edge, y float64) {
	aet.edges = append(aet.edges, ActiveEdge{X: edge.XAtY(y), Dir: edge.dir})
}

// Sort orders edges by x (insertion sort; tables are short).
func (aet *ActiveEdgeTable) Sort() {
	for i := 1; i < len(aet.edges); i++ {
		key := aet.edges[i]
		j := i - 1
		for j >= 0 && aet.edges[j].X > key.X {
			aet.edges[j+1] = aet.edges[j]
			j--
		}
		aet.edges[j+1] = key
	}
}

// Edges returns the active edges.
func (aet *ActiveEdgeTable) Edges() []ActiveEdge {
	return aet.edges
}

// Clear empties the table, keeping its storage.
func (aet *ActiveEdgeTable) Clear() {
	aet.edges = aet.edges[:0]
}

// Spans calls fn for every inside interval of the sorted table under
// rule.
func (aet *ActiveEdgeTable) Spans(rule FillRule, fn func(x1, x2 float64)) {
	edges := aet.edges
	if rule == FillRuleEvenOdd {
		for i := 0; i+1 < len(edges); i += 2 {
			fn(edges[i].X, edges[i+1].X)
		}
		return
	}
	winding := 0
	var start float64
	for _, e := range edges {
		if winding == 0 {
			start = e.X
		}
		winding += e.Dir
		if winding == 0 {
			fn(start, e.X)
		}
	}
}
