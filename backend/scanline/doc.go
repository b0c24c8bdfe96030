// Package scanline registers the "scanline" tkpath backend.
//
// The backend follows the AGG model: path calls are flattened into a
// vertex store as they arrive, and painting runs the vertices through the
// scanline rasterizer of internal/raster. Gradient fills are evaluated per
// pixel by a span generator, so every spread method is supported for
// both linear and radial gradients.
//
//	import _ "github.com/gogpu/tkpath/backend/scanline"
package scanline
