package tkpath

import "fmt"

// TextAnchor aligns text horizontally around its item coordinate.
type TextAnchor int

const (
	TextAnchorStart TextAnchor = iota
	TextAnchorMiddle
	TextAnchorEnd
)

var textAnchorNames = [...]string{
	TextAnchorStart:  "start",
	TextAnchorMiddle: "middle",
	TextAnchorEnd:    "end",
}

func (a TextAnchor) String() string {
	if int(a) < len(textAnchorNames) {
		return textAnchorNames[a]
	}
	return "unknown"
}

// ParseTextAnchor parses "start", "middle" or "end".
func ParseTextAnchor(s string) (TextAnchor, error) {
	for i, n := range textAnchorNames {
		if n == s {
			return TextAnchor(i), nil
		}
	}
	return TextAnchorStart, fmt.Errorf("tkpath: bad text anchor %q", s)
}

// TextOrigin returns the baseline origin for text measured as tm whose
// anchor point is x.
func TextOrigin(tm TextMetrics, x float64, anchor TextAnchor) float64 {
	switch anchor {
	case TextAnchorMiddle:
		return x - tm.Width/2
	case TextAnchorEnd:
		return x - tm.Width
	}
	return x
}

// TextBbox returns the user-space box of text measured as tm with its
// anchor at (x, y) on the baseline.
func TextBbox(tm TextMetrics, x, y float64, anchor TextAnchor) PathRect {
	x1 := TextOrigin(tm, x, anchor)
	return PathRect{X1: x1, Y1: y - tm.Ascent, X2: x1 + tm.Width, Y2: y + tm.Descent}
}

// textContext finds the text capability of ctx, looking through
// wrappers.
func textContext(ctx DrawingContext) (TextContext, bool) {
	for {
		if tc, ok := ctx.(TextContext); ok {
			return tc, true
		}
		u, ok := ctx.(interface{ Unwrap() DrawingContext })
		if !ok {
			return nil, false
		}
		ctx = u.Unwrap()
	}
}

// MeasureText measures s on ctx. The second result is false when the
// backend cannot handle text.
func MeasureText(ctx DrawingContext, s string, size float64) (TextMetrics, bool) {
	tc, ok := textContext(ctx)
	if !ok {
		return TextMetrics{}, false
	}
	return tc.MeasureText(s, size), true
}

// PaintText draws a text item anchored at (x, y) under the item
// transform. Backends without text support skip it and log at debug
// level.
func PaintText(ctx DrawingContext, style *Style, s string, x, y, size float64, anchor TextAnchor, m *TMatrix) error {
	tc, ok := textContext(ctx)
	if !ok {
		Logger().Debug("tkpath: text not supported by backend, skipped")
		return ctxErr(ctx)
	}
	tm := tc.MeasureText(s, size)
	ctx.SaveState()
	ctx.PushTMatrix(EffectiveMatrix(m, style))
	tc.DrawText(style, s, TextOrigin(tm, x, anchor), y, size)
	ctx.RestoreState()
	return ctxErr(ctx)
}
