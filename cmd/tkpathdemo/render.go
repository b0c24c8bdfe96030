package main

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/tkpath"
	"github.com/gogpu/tkpath/recording"
)

// Draw paints every item of the scene onto ctx in order.
func (s *Scene) Draw(ctx tkpath.DrawingContext, baseDir string) error {
	m, err := parseMatrix(s.Matrix)
	if err != nil {
		return err
	}
	for i := range s.Items {
		if err := s.Items[i].draw(ctx, m, baseDir); err != nil {
			return fmt.Errorf("item %d (%s): %w", i, s.Items[i].Kind, err)
		}
	}
	return nil
}

// Path builds the atoms of a shape item.
func (it *Item) Path() (*tkpath.Path, error) {
	switch it.Kind {
	case "path":
		return tkpath.ParsePathData(it.D)
	case "polyline":
		return tkpath.PolylineAtoms(it.Coords)
	case "polygon":
		return tkpath.PolygonAtoms(it.Coords)
	case "line":
		if len(it.Coords) != 4 {
			return nil, fmt.Errorf("%w: line needs 4 coords", errBadScene)
		}
		c := it.Coords
		return tkpath.LineAtoms(c[0], c[1], c[2], c[3]), nil
	case "rect":
		return tkpath.RoundedRectAtoms(it.X, it.Y, it.Width, it.Height, it.RX, it.RY), nil
	case "oval", "circle":
		ry := it.RY
		if ry == 0 {
			ry = it.RX
		}
		return tkpath.EllipseAtoms(it.X, it.Y, it.RX, ry), nil
	}
	return nil, fmt.Errorf("%w: unknown item kind %q", errBadScene, it.Kind)
}

func (it *Item) draw(ctx tkpath.DrawingContext, m *tkpath.TMatrix, baseDir string) error {
	style, err := it.Style()
	if err != nil {
		return err
	}
	switch it.Kind {
	case "text":
		anchor, err := tkpath.ParseTextAnchor(orDefault(it.Anchor, "start"))
		if err != nil {
			return err
		}
		if style.Fill == nil {
			black := tkpath.Black
			style.Fill = &black
		}
		size := it.Size
		if size <= 0 {
			size = 12
		}
		return tkpath.PaintText(ctx, &style, it.Text, it.X, it.Y, size, anchor, m)
	case "image":
		anchor, err := tkpath.ParseAnchor(orDefault(it.Anchor, "nw"))
		if err != nil {
			return err
		}
		params, err := it.ImageParams()
		if err != nil {
			return err
		}
		img, err := loadImage(resolve(baseDir, it.Image))
		if err != nil {
			return err
		}
		return tkpath.PaintImage(ctx, img, it.X, it.Y, it.Width, it.Height, anchor, params, m, style.Matrix)
	}

	p, err := it.Path()
	if err != nil {
		return err
	}
	start, end := it.StartArrow.descr(), it.EndArrow.descr()
	if start != nil || end != nil {
		if err := tkpath.ConfigurePathArrows(p, start, end, &style); err != nil {
			return err
		}
	}
	if err := tkpath.DrawPath(ctx, p, &style, m); err != nil {
		return err
	}
	for _, a := range []*tkpath.ArrowDescr{start, end} {
		if a == nil {
			continue
		}
		ctx.SaveState()
		ctx.PushTMatrix(tkpath.EffectiveMatrix(m, &style))
		err := tkpath.PaintArrow(ctx, a, &style)
		ctx.RestoreState()
		if err != nil {
			return err
		}
	}
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Render draws the scene into a new image with the named backend. The
// recording backend never writes pixels and is refused.
func (s *Scene) Render(backend, baseDir string, opts ...tkpath.Option) (*image.RGBA, error) {
	if backend == recording.Name {
		return nil, fmt.Errorf("backend %q does not rasterize, use the record command", backend)
	}
	dst := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	if s.Background != "" {
		bg, err := tkpath.ParseColor(s.Background)
		if err != nil {
			return nil, err
		}
		draw.Draw(dst, dst.Bounds(), image.NewUniform(bg.NRGBA(1)), image.Point{}, draw.Src)
	}
	opts = append(s.Options(), opts...)
	err := tkpath.Render(backend, dst, func(ctx tkpath.DrawingContext) error {
		return s.Draw(ctx, baseDir)
	}, opts...)
	if err != nil {
		return nil, err
	}
	return dst, nil
}
