package textrender

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/tkpath/internal/cache"
)

// Metrics describes measured text in pixels.
type Metrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// maxFaces bounds the glyph faces kept per renderer, one per size.
const maxFaces = 16

// Renderer measures and draws text in one font. It is safe for concurrent
// use.
type Renderer struct {
	shapeFont *font.Font
	drawFont  *opentype.Font

	mu     sync.Mutex
	shaper shaping.HarfbuzzShaper
	faces  *cache.Cache[float64, xfont.Face]
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
	defaultErr      error
)

// Default returns the shared renderer for the embedded Go Regular font.
func Default() (*Renderer, error) {
	defaultOnce.Do(func() {
		defaultRenderer, defaultErr = New(goregular.TTF)
	})
	return defaultRenderer, defaultErr
}

// New parses a TrueType or OpenType font.
func New(ttf []byte) (*Renderer, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("textrender: parse font: %w", err)
	}
	otf, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("textrender: parse font: %w", err)
	}
	return &Renderer{
		shapeFont: face.Font,
		drawFont:  otf,
		faces:     cache.New[float64, xfont.Face](maxFaces),
	}, nil
}

// Measure returns the advance width and line extents of s at size.
func (r *Renderer) Measure(s string, size float64) Metrics {
	runes := []rune(s)
	if size <= 0 || len(runes) == 0 {
		return Metrics{}
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: direction(s),
		Face:      font.NewFace(r.shapeFont),
		Size:      fixed.Int26_6(size * 64),
		Script:    script(runes),
		Language:  language.NewLanguage("en"),
	}
	r.mu.Lock()
	out := r.shaper.Shape(input)
	r.mu.Unlock()

	return Metrics{
		Width:   math.Abs(fromFixed(out.Advance)),
		Ascent:  fromFixed(out.LineBounds.Ascent),
		Descent: math.Abs(fromFixed(out.LineBounds.Descent)),
	}
}

// direction returns right-to-left when the paragraph starts with a
// right-to-left run.
func direction(s string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return di.DirectionLTR
	}
	o, err := p.Order()
	if err != nil || o.NumRuns() == 0 {
		return di.DirectionLTR
	}
	if run := o.Run(0); run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// script returns the script of the first non-space rune.
func script(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
