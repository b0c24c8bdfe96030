// Package textrender measures and draws single-line text for the raster
// backends using the embedded Go Regular font.
//
// Measurement shapes the string with go-text/typesetting so advances
// include kerning and ligatures. Drawing rasterizes glyphs through
// golang.org/x/image/font into a coverage mask the caller composites.
package textrender
