package tkpath

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an RGB color with components in [0,1]. Opacity is carried
// separately by the style.
type Color struct {
	R, G, B float64
}

// Black and White are the common defaults.
var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

// RGB returns a color from components in [0,1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// FromColor converts a standard color, dropping its alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
}

// NRGBA returns the color with the given opacity as a straight-alpha color.
func (c Color) NRGBA(opacity float64) color.NRGBA {
	return color.NRGBA{
		R: clampByte(c.R),
		G: clampByte(c.G),
		B: clampByte(c.B),
		A: clampByte(opacity),
	}
}

// Lerp interpolates between c (t=0) and d (t=1).
func (c Color) Lerp(d Color, t float64) Color {
	return Color{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
	}
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// ParseColor accepts "#rgb", "#rrggbb", "#rrrrggggbbbb" and SVG color
// names such as "steelblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromColor(c), nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("tkpath: unknown color name %q", s)
	}
	var digits int
	switch len(hex) {
	case 3, 6, 12:
		digits = len(hex) / 3
	default:
		return Color{}, fmt.Errorf("tkpath: invalid color %q", s)
	}
	var comp [3]float64
	maxV := float64(uint64(1)<<(4*digits) - 1)
	for i := range comp {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 64)
		if err != nil {
			return Color{}, fmt.Errorf("tkpath: invalid color %q: %w", s, err)
		}
		comp[i] = float64(v) / maxV
	}
	return Color{R: comp[0], G: comp[1], B: comp[2]}, nil
}

// FillRule selects how path interiors are determined.
type FillRule int

const (
	// FillRuleNonZero fills where the winding number is non-zero.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd fills where the crossing count is odd.
	FillRuleEvenOdd
)

// String returns the option spelling of the rule.
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// LineCap is the shape of open stroke ends.
type LineCap int

const (
	// LineCapButt ends the stroke flat at the end point.
	LineCapButt LineCap = iota
	// LineCapRound adds a half disc.
	LineCapRound
	// LineCapProjecting adds a half square.
	LineCapProjecting
	// LineCapNotLast is butt with the last pixel left undrawn. Raster
	// backends draw it as butt.
	LineCapNotLast
)

var lineCapNames = [...]string{
	LineCapButt:       "butt",
	LineCapRound:      "round",
	LineCapProjecting: "projecting",
	LineCapNotLast:    "notlast",
}

func (c LineCap) String() string {
	if int(c) < len(lineCapNames) {
		return lineCapNames[c]
	}
	return "unknown"
}

// LineJoin is the shape of stroke corners.
type LineJoin int

const (
	// LineJoinRound rounds corners. It is the default.
	LineJoinRound LineJoin = iota
	// LineJoinMiter extends the edges up to the miter limit.
	LineJoinMiter
	// LineJoinBevel cuts corners flat.
	LineJoinBevel
)

var lineJoinNames = [...]string{
	LineJoinRound: "round",
	LineJoinMiter: "miter",
	LineJoinBevel: "bevel",
}

func (j LineJoin) String() string {
	if int(j) < len(lineJoinNames) {
		return lineJoinNames[j]
	}
	return "unknown"
}

// Style is the effective paint style of one item. The core reads it and
// never modifies it during a paint or measure call.
type Style struct {
	// Fill is the solid fill color; nil means no solid fill.
	Fill *Color
	// FillGradient, when set, takes precedence over Fill.
	FillGradient Gradient
	FillOpacity  float64
	FillRule     FillRule

	// Stroke is the stroke color; nil means no stroke.
	Stroke        *Color
	StrokeWidth   float64
	StrokeOpacity float64
	LineCap       LineCap
	LineJoin      LineJoin
	MiterLimit    float64
	Dash          *Dash

	// Matrix is applied after the canvas matrix; nil is the identity.
	Matrix *TMatrix
}

// DefaultStyle returns the option defaults: a black stroke of width 1,
// butt caps, round joins, miter limit 4, nonzero fill rule, no fill.
func DefaultStyle() Style {
	black := Black
	return Style{
		FillOpacity:   1,
		FillRule:      FillRuleNonZero,
		Stroke:        &black,
		StrokeWidth:   1,
		StrokeOpacity: 1,
		LineCap:       LineCapButt,
		LineJoin:      LineJoinRound,
		MiterLimit:    DefaultMiterLimit,
	}
}

// DefaultMiterLimit is the miter limit of DefaultStyle.
const DefaultMiterLimit = 4

// HasFill reports whether the style paints an interior.
func (s *Style) HasFill() bool {
	return s != nil && (s.Fill != nil || s.FillGradient != nil)
}

// HasStroke reports whether the style paints an outline.
func (s *Style) HasStroke() bool {
	return s != nil && s.Stroke != nil && s.StrokeWidth > 0
}

// StyleOption is a bit set naming the style fields a named style sets.
type StyleOption uint32

const (
	OptFill StyleOption = 1 << iota
	OptFillOpacity
	OptFillRule
	OptStroke
	OptStrokeWidth
	OptStrokeOpacity
	OptLineCap
	OptLineJoin
	OptMiterLimit
	OptDash
	OptMatrix

	OptAllFill   = OptFill | OptFillOpacity | OptFillRule
	OptAllStroke = OptStroke | OptStrokeWidth | OptStrokeOpacity | OptLineCap |
		OptLineJoin | OptMiterLimit | OptDash
)

// MergeFlags restrict a merge.
type MergeFlags uint32

const (
	// MergeNotFill skips the fill group; used for items that cannot fill.
	MergeNotFill MergeFlags = 1 << iota
	// MergeNotStroke skips the stroke group.
	MergeNotStroke
)

// MergeStyles returns a new style: base with every field named in mask
// taken from named. Pointer fields are copied so the result shares no
// mutable state with either input.
func MergeStyles(base, named Style, mask StyleOption, flags MergeFlags) Style {
	if flags&MergeNotFill != 0 {
		mask &^= OptAllFill
	}
	if flags&MergeNotStroke != 0 {
		mask &^= OptAllStroke
	}
	out := base
	if mask&OptFill != 0 {
		out.Fill = named.Fill
		out.FillGradient = named.FillGradient
	}
	if mask&OptFillOpacity != 0 {
		out.FillOpacity = named.FillOpacity
	}
	if mask&OptFillRule != 0 {
		out.FillRule = named.FillRule
	}
	if mask&OptStroke != 0 {
		out.Stroke = named.Stroke
	}
	if mask&OptStrokeWidth != 0 {
		out.StrokeWidth = named.StrokeWidth
	}
	if mask&OptStrokeOpacity != 0 {
		out.StrokeOpacity = named.StrokeOpacity
	}
	if mask&OptLineCap != 0 {
		out.LineCap = named.LineCap
	}
	if mask&OptLineJoin != 0 {
		out.LineJoin = named.LineJoin
	}
	if mask&OptMiterLimit != 0 {
		out.MiterLimit = named.MiterLimit
	}
	if mask&OptDash != 0 {
		out.Dash = named.Dash
	}
	if mask&OptMatrix != 0 {
		out.Matrix = named.Matrix
	}
	out.Fill = cloneColor(out.Fill)
	out.Stroke = cloneColor(out.Stroke)
	out.Dash = out.Dash.Clone()
	if out.Matrix != nil {
		m := *out.Matrix
		out.Matrix = &m
	}
	return out
}

func cloneColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	cc := *c
	return &cc
}
