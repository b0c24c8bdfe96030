// Package tkpath provides the geometry and rendering abstraction layer for
// SVG-like vector path items.
//
// # Overview
//
// A path item is described by an atom list: a sequence of move, line,
// curve, quadratic, arc, close, rect and ellipse commands. The package
// computes bounding boxes and hit-test results over atom lists and paints
// them through a [DrawingContext], the contract that every rendering
// backend implements.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/tkpath"
//	    _ "github.com/gogpu/tkpath/backend/scanline"
//	)
//
//	var p tkpath.Path
//	p.Append(&tkpath.MoveTo{X: 10, Y: 10}, &tkpath.LineTo{X: 90, Y: 10},
//	    &tkpath.Arc{RX: 40, RY: 40, Sweep: true, X: 10, Y: 10})
//
//	style := tkpath.DefaultStyle()
//	style.Fill = &tkpath.Color{R: 1, G: 0.5}
//
//	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
//	err := tkpath.Render("scanline", dst, func(ctx tkpath.DrawingContext) error {
//	    return tkpath.DrawPath(ctx, &p, &style, nil)
//	})
//
// # Backends
//
// Three raster backends register themselves on import:
//   - immediate: transforms points as they are added and consumes the path
//     on every paint operation
//   - retained: keeps the figure list in user space and transforms it when
//     painting
//   - scanline: flattens into a vertex store and evaluates gradients per span
//
// The recording package registers a fourth context that captures calls for
// later playback.
//
// # Coordinate System
//
// Origin at top-left, X increases right, Y increases down. Arc rotation
// angles are given in degrees.
package tkpath
