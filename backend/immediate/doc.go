// Package immediate registers the "immediate" tkpath backend.
//
// The backend follows the CoreGraphics model: coordinates are transformed
// by the current matrix as they are added, so the path lives in device
// space, and every paint or clip consumes it. Nonzero fills are
// rasterized with golang.org/x/image/vector. Gradients are drawn as one
// two-color shading per adjacent stop pair; only the pad spread method is
// available, repeat and reflect fall back to pad.
//
// Import the package for its side effect:
//
//	import _ "github.com/gogpu/tkpath/backend/immediate"
package immediate
