package tkpath_test

import (
	"fmt"
	"image"

	"github.com/gogpu/tkpath"
	_ "github.com/gogpu/tkpath/backend/scanline"
)

// ExampleRender paints a filled square on the scanline backend.
func ExampleRender() {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))

	red := tkpath.RGB(1, 0, 0)
	style := tkpath.DefaultStyle()
	style.Fill = &red
	style.Stroke = nil

	p := tkpath.MustParsePathData("M5 5 h10 v10 h-10 z")
	err := tkpath.Render("scanline", dst, func(ctx tkpath.DrawingContext) error {
		return tkpath.DrawPath(ctx, p, &style, nil)
	})
	if err != nil {
		fmt.Println("render failed:", err)
		return
	}

	fmt.Println(dst.RGBAAt(10, 10), dst.RGBAAt(2, 2))
	// Output: {255 0 0 255} {0 0 0 0}
}

// ExampleParsePathData shows relative commands resolved to absolute atoms.
func ExampleParsePathData() {
	p, err := tkpath.ParsePathData("m10 10 l5 0 v5 z")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)
	fmt.Println(tkpath.BareBbox(p))
	// Output:
	// M10 10 L15 10 L15 15 Z
	// {10 10 15 15}
}

// ExamplePathToPoint measures the distance from a point to a stroked
// rectangle outline.
func ExamplePathToPoint() {
	p := tkpath.NewPath(&tkpath.Rect{Width: 10, Height: 10})
	style := tkpath.DefaultStyle()

	budget := tkpath.MaxSegments(p)

	fmt.Println(tkpath.PathToPoint(p, &style, nil, budget, tkpath.Pt(5, 5)))
	fmt.Println(tkpath.PathToPoint(p, &style, nil, budget, tkpath.Pt(15, 5)))
	// Output:
	// 4.5
	// 4.5
}

// ExampleTrack reports the first misuse of a context.
func ExampleTrack() {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	ctx := tkpath.Track(tkpath.MustOpen("scanline", dst))
	defer ctx.Close()

	ctx.LineTo(1, 1)
	ctx.RestoreState()
	fmt.Println(ctx.Err())
	fmt.Println(ctx.Violations())
	// Output:
	// LineTo: tkpath: no current path
	// 2
}
