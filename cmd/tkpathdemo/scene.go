package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/tkpath"
)

var errBadScene = errors.New("tkpathdemo: bad scene")

// Scene is the TOML document rendered by the demo.
//
//	width = 200
//	height = 120
//	background = "white"
//
//	[[item]]
//	kind = "path"
//	d = "M10 10 L190 110"
//	stroke = "steelblue"
//	stroke_width = 3
//	end_arrow = { length = 12, width = 8, fill = 0.7 }
type Scene struct {
	Width      int       `toml:"width"`
	Height     int       `toml:"height"`
	Background string    `toml:"background"`
	Backend    string    `toml:"backend"`
	AntiAlias  *bool     `toml:"antialias"`
	Depixelize bool      `toml:"depixelize"`
	LinearRGB  bool      `toml:"linear_rgb"`
	Matrix     []float64 `toml:"matrix"`
	Items      []Item    `toml:"item"`
}

// Item is one canvas item of a scene.
type Item struct {
	Kind string `toml:"kind"`

	D      string    `toml:"d"`
	Coords []float64 `toml:"coords"`
	X      float64   `toml:"x"`
	Y      float64   `toml:"y"`
	Width  float64   `toml:"width"`
	Height float64   `toml:"height"`
	RX     float64   `toml:"rx"`
	RY     float64   `toml:"ry"`

	Fill          string    `toml:"fill"`
	FillOpacity   *float64  `toml:"fill_opacity"`
	FillRule      string    `toml:"fill_rule"`
	Gradient      *Gradient `toml:"gradient"`
	Stroke        string    `toml:"stroke"`
	StrokeWidth   *float64  `toml:"stroke_width"`
	StrokeOpacity *float64  `toml:"stroke_opacity"`
	LineCap       string    `toml:"line_cap"`
	LineJoin      string    `toml:"line_join"`
	MiterLimit    *float64  `toml:"miter_limit"`
	Dash          []float64 `toml:"dash"`
	DashOffset    float64   `toml:"dash_offset"`
	Matrix        []float64 `toml:"matrix"`
	StartArrow    *Arrow    `toml:"start_arrow"`
	EndArrow      *Arrow    `toml:"end_arrow"`

	Text   string  `toml:"text"`
	Size   float64 `toml:"size"`
	Anchor string  `toml:"anchor"`

	Image         string    `toml:"image"`
	Opacity       float64   `toml:"opacity"`
	Tint          string    `toml:"tint"`
	TintAmount    float64   `toml:"tint_amount"`
	Interpolation string    `toml:"interpolation"`
	Region        []float64 `toml:"region"`
}

// Gradient is a gradient fill. Geometry is in bbox units unless
// user_space is set.
type Gradient struct {
	Type      string    `toml:"type"`
	Spread    string    `toml:"spread"`
	UserSpace bool      `toml:"user_space"`
	Line      []float64 `toml:"line"`
	Center    []float64 `toml:"center"`
	Focal     []float64 `toml:"focal"`
	Radius    float64   `toml:"radius"`
	Stops     []Stop    `toml:"stops"`
}

// Stop is one gradient stop.
type Stop struct {
	Offset  float64  `toml:"offset"`
	Color   string   `toml:"color"`
	Opacity *float64 `toml:"opacity"`
}

// Arrow configures an arrow head.
type Arrow struct {
	Length float64  `toml:"length"`
	Width  float64  `toml:"width"`
	Fill   *float64 `toml:"fill"`
}

// LoadScene decodes a scene from r. Unknown keys are rejected.
func LoadScene(r io.Reader) (*Scene, error) {
	var s Scene
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", errBadScene, row, col, derr.Error())
		}
		return nil, fmt.Errorf("%w: %w", errBadScene, err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: width and height must be positive", errBadScene)
	}
	return &s, nil
}

// LoadSceneFile decodes the scene stored at path.
func LoadSceneFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadScene(f)
}

// Options returns the render options the scene asks for.
func (s *Scene) Options() []tkpath.Option {
	opts := []tkpath.Option{
		tkpath.WithDepixelize(s.Depixelize),
		tkpath.WithLinearRGB(s.LinearRGB),
	}
	if s.AntiAlias != nil {
		opts = append(opts, tkpath.WithAntiAlias(*s.AntiAlias))
	}
	return opts
}

func parseMatrix(v []float64) (*tkpath.TMatrix, error) {
	switch len(v) {
	case 0:
		return nil, nil
	case 6:
		return &tkpath.TMatrix{A: v[0], B: v[1], C: v[2], D: v[3], Tx: v[4], Ty: v[5]}, nil
	}
	return nil, fmt.Errorf("%w: matrix needs 6 numbers, got %d", errBadScene, len(v))
}

func parseColor(s string) (*tkpath.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := tkpath.ParseColor(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func lookup[T fmt.Stringer](kind, s string, def T, values ...T) (T, error) {
	if s == "" {
		return def, nil
	}
	for _, v := range values {
		if v.String() == s {
			return v, nil
		}
	}
	return def, fmt.Errorf("%w: bad %s %q", errBadScene, kind, s)
}

// Style builds the item style on top of the option defaults.
func (it *Item) Style() (tkpath.Style, error) {
	s := tkpath.DefaultStyle()
	var err error
	if it.Stroke != "" {
		if s.Stroke, err = parseColor(it.Stroke); err != nil {
			return s, err
		}
	}
	if s.Fill, err = parseColor(it.Fill); err != nil {
		return s, err
	}
	if it.StrokeWidth != nil {
		s.StrokeWidth = *it.StrokeWidth
	}
	if it.FillOpacity != nil {
		s.FillOpacity = *it.FillOpacity
	}
	if it.StrokeOpacity != nil {
		s.StrokeOpacity = *it.StrokeOpacity
	}
	if it.MiterLimit != nil {
		s.MiterLimit = *it.MiterLimit
	}
	if s.FillRule, err = lookup("fill rule", it.FillRule, tkpath.FillRuleNonZero,
		tkpath.FillRuleNonZero, tkpath.FillRuleEvenOdd); err != nil {
		return s, err
	}
	if s.LineCap, err = lookup("line cap", it.LineCap, tkpath.LineCapButt,
		tkpath.LineCapButt, tkpath.LineCapRound, tkpath.LineCapProjecting, tkpath.LineCapNotLast); err != nil {
		return s, err
	}
	if s.LineJoin, err = lookup("line join", it.LineJoin, tkpath.LineJoinRound,
		tkpath.LineJoinRound, tkpath.LineJoinMiter, tkpath.LineJoinBevel); err != nil {
		return s, err
	}
	if len(it.Dash) > 0 {
		if s.Dash = tkpath.NewDash(it.Dash...); s.Dash != nil {
			s.Dash.Offset = it.DashOffset
		}
	}
	if s.Matrix, err = parseMatrix(it.Matrix); err != nil {
		return s, err
	}
	if it.Gradient != nil {
		if s.FillGradient, err = it.Gradient.Fill(); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Fill converts the gradient description.
func (g *Gradient) Fill() (tkpath.Gradient, error) {
	stops := make(tkpath.GradientStopArray, 0, len(g.Stops))
	for _, st := range g.Stops {
		c, err := tkpath.ParseColor(st.Color)
		if err != nil {
			return nil, err
		}
		op := 1.0
		if st.Opacity != nil {
			op = *st.Opacity
		}
		stops = append(stops, tkpath.GradientStop{Offset: st.Offset, Color: c, Opacity: op})
	}
	spread, err := lookup("spread", g.Spread, tkpath.SpreadPad,
		tkpath.SpreadPad, tkpath.SpreadRepeat, tkpath.SpreadReflect)
	if err != nil {
		return nil, err
	}
	units := tkpath.UnitsBoundingBox
	if g.UserSpace {
		units = tkpath.UnitsUserSpace
	}

	switch g.Type {
	case "", "linear":
		f := tkpath.NewLinearGradientFill(stops...)
		f.Method, f.Units = spread, units
		if len(g.Line) > 0 {
			if len(g.Line) != 4 {
				return nil, fmt.Errorf("%w: gradient line needs 4 numbers", errBadScene)
			}
			f.Transition = tkpath.PathRect{X1: g.Line[0], Y1: g.Line[1], X2: g.Line[2], Y2: g.Line[3]}
		}
		return f, nil
	case "radial":
		f := tkpath.NewRadialGradientFill(stops...)
		f.Method, f.Units = spread, units
		if len(g.Center) == 2 {
			f.CenterX, f.CenterY = g.Center[0], g.Center[1]
			f.FocalX, f.FocalY = f.CenterX, f.CenterY
		}
		if len(g.Focal) == 2 {
			f.FocalX, f.FocalY = g.Focal[0], g.Focal[1]
		}
		if g.Radius > 0 {
			f.Radius = g.Radius
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: bad gradient type %q", errBadScene, g.Type)
}

func (a *Arrow) descr() *tkpath.ArrowDescr {
	if a == nil {
		return nil
	}
	d := tkpath.NewArrowDescr(a.Length, a.Width)
	if a.Fill != nil {
		d.Fill = *a.Fill
	}
	return &d
}

// ImageParams converts the image options of an image item.
func (it *Item) ImageParams() (tkpath.ImageParams, error) {
	p := tkpath.ImageParams{Opacity: it.Opacity, TintAmount: it.TintAmount}
	var err error
	if p.Tint, err = parseColor(it.Tint); err != nil {
		return p, err
	}
	if p.Interpolation, err = lookup("interpolation", it.Interpolation, tkpath.InterpolationFast,
		tkpath.InterpolationNone, tkpath.InterpolationFast, tkpath.InterpolationBest); err != nil {
		return p, err
	}
	switch len(it.Region) {
	case 0:
	case 4:
		p.Region = &tkpath.PathRect{X1: it.Region[0], Y1: it.Region[1], X2: it.Region[2], Y2: it.Region[3]}
	default:
		return p, fmt.Errorf("%w: region needs 4 numbers", errBadScene)
	}
	return p, nil
}

func loadImage(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(true))
}
