package recording_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/tkpath"
	_ "github.com/gogpu/tkpath/backend/immediate"
	_ "github.com/gogpu/tkpath/backend/scanline"
	"github.com/gogpu/tkpath/recording"
)

func scene(t *testing.T, ctx tkpath.DrawingContext) {
	t.Helper()
	blue := tkpath.RGB(0, 0, 1)
	style := tkpath.DefaultStyle()
	style.Fill = &blue
	style.StrokeWidth = 2
	path := tkpath.NewPath(
		&tkpath.Rect{X: 4, Y: 4, Width: 20, Height: 12},
		&tkpath.Ellipse{CX: 20, CY: 20, RX: 6, RY: 4},
	)
	require.NoError(t, tkpath.DrawPath(ctx, path, &style, nil))

	red := tkpath.RGB(1, 0, 0)
	shaded := tkpath.DefaultStyle()
	shaded.Stroke = &red
	shaded.StrokeWidth = 4
	shaded.FillGradient = tkpath.NewLinearGradientFill(
		tkpath.GradientStop{Offset: 0, Color: tkpath.RGB(1, 1, 1), Opacity: 1},
		tkpath.GradientStop{Offset: 1, Color: tkpath.RGB(0, 1, 0), Opacity: 1},
	)
	square := tkpath.NewPath(&tkpath.Rect{X: 8, Y: 8, Width: 16, Height: 16})
	require.NoError(t, tkpath.DrawPath(ctx, square, &shaded, nil))
}

func TestReplayMatchesDirectRendering(t *testing.T) {
	for _, name := range []string{"immediate", "scanline"} {
		t.Run(name, func(t *testing.T) {
			direct := image.NewRGBA(image.Rect(0, 0, 32, 32))
			require.NoError(t, tkpath.Render(name, direct, func(ctx tkpath.DrawingContext) error {
				scene(t, ctx)
				return nil
			}))

			rec := recording.NewRecorder(32, 32)
			scene(t, rec)
			replayed := image.NewRGBA(image.Rect(0, 0, 32, 32))
			require.NoError(t, rec.FinishRecording().Replay(name, replayed))

			assert.Equal(t, direct.Pix, replayed.Pix)
			assert.Equal(t, color.RGBA{R: 255, A: 255}, replayed.RGBAAt(16, 24), "stroke kept after gradient clip")
		})
	}
}

func TestPlaybackReportsProtocolError(t *testing.T) {
	rec := recording.NewRecorder(8, 8)
	rec.LineTo(1, 1)
	r := rec.FinishRecording()

	other := recording.NewRecorder(8, 8)
	err := r.Playback(tkpath.Track(other))
	assert.ErrorIs(t, err, tkpath.ErrNoCurrentPath)
}

func TestPlaybackOntoRecorder(t *testing.T) {
	rec := recording.NewRecorder(8, 8)
	scene(t, rec)
	rec.Erase(0, 0, 2, 2)
	rec.DrawText(nil, "x", 1, 6, 8)
	r := rec.FinishRecording()

	dup := recording.NewRecorder(8, 8)
	require.NoError(t, r.Playback(dup))
	assert.Equal(t, len(r.Commands()), len(dup.Commands()))
	assert.Equal(t, 1, r.Count(recording.CmdErase))
	assert.Equal(t, 1, r.Count(recording.CmdDrawText))
}
