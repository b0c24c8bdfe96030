// Package backend holds the raster plumbing shared by the tkpath drawing
// context backends.
//
// The backends differ in how they hold a path and how they paint
// gradients, but all of them composite into an *image.RGBA through a
// Canvas, which owns the transform stack, the clip stack, image and text
// drawing, and surface snapshots:
//
//	import (
//		"github.com/gogpu/tkpath"
//		_ "github.com/gogpu/tkpath/backend/scanline"
//	)
//
//	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))
//	err := tkpath.Render("scanline", dst, func(ctx tkpath.DrawingContext) error {
//		return tkpath.DrawPath(ctx, path, &style, nil)
//	})
//
// # Available Backends
//
//   - "immediate": device-space path, consumed by every paint
//   - "retained": user-space figure list, transform applied at paint
//   - "scanline": flattened vertex store with per-pixel span shading
package backend
