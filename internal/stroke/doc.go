// Package stroke converts flattened polylines into fillable stroke
// outlines.
//
// A stroke is built as a union of simple pieces rather than as a single
// offset contour:
//   - one quad per segment, width wide
//   - one wedge per corner (miter, bevel) or a disc (round)
//   - one cap per open end (square box or disc; butt adds nothing)
//
// Every piece is wound the same way, so filling them together with the
// nonzero rule paints their union with no seams or cancelled overlaps.
//
// # Usage
//
//	s := stroke.Stroke{Width: 2, Cap: stroke.LineCapRound, Join: stroke.LineJoinMiter, MiterLimit: 4}
//	lines := stroke.Dash(polys, []float64{6, 3}, 0)
//	polygons := stroke.Outline(s, lines)
//
// Dash patterns alternate on and off lengths; an odd-length pattern is
// repeated once to make it even.
package stroke
