package main

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/tkpath"
	"github.com/gogpu/tkpath/recording"
)

func TestLoadScene(t *testing.T) {
	s, err := LoadSceneFile("testdata/shapes.toml")
	require.NoError(t, err)

	assert.Equal(t, 120, s.Width)
	assert.Equal(t, 80, s.Height)
	assert.Equal(t, "scanline", s.Backend)
	require.Len(t, s.Items, 4)
	assert.Equal(t, "rect", s.Items[0].Kind)
	require.NotNil(t, s.Items[1].Gradient)
	assert.Len(t, s.Items[1].Gradient.Stops, 2)
	require.NotNil(t, s.Items[2].EndArrow)
	assert.Equal(t, 8.0, s.Items[2].EndArrow.Length)
}

func TestLoadSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no size", `background = "white"`},
		{"unknown key", "width = 1\nheight = 1\ncolour = 3"},
		{"syntax", "width = = 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScene(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, errBadScene)
		})
	}
}

func TestItemStyle(t *testing.T) {
	w := 3.0
	it := Item{
		Fill:        "red",
		Stroke:      "#00f",
		StrokeWidth: &w,
		FillRule:    "evenodd",
		LineCap:     "round",
		LineJoin:    "miter",
		Dash:        []float64{4, 2},
		DashOffset:  1,
		Matrix:      []float64{2, 0, 0, 2, 5, 5},
	}
	s, err := it.Style()
	require.NoError(t, err)

	require.NotNil(t, s.Fill)
	assert.Equal(t, tkpath.RGB(1, 0, 0), *s.Fill)
	require.NotNil(t, s.Stroke)
	assert.Equal(t, tkpath.RGB(0, 0, 1), *s.Stroke)
	assert.Equal(t, 3.0, s.StrokeWidth)
	assert.Equal(t, tkpath.FillRuleEvenOdd, s.FillRule)
	assert.Equal(t, tkpath.LineCapRound, s.LineCap)
	assert.Equal(t, tkpath.LineJoinMiter, s.LineJoin)
	require.NotNil(t, s.Dash)
	assert.Equal(t, 1.0, s.Dash.Offset)
	require.NotNil(t, s.Matrix)
	assert.Equal(t, 5.0, s.Matrix.Tx)
}

func TestItemStyleErrors(t *testing.T) {
	tests := []struct {
		name string
		item Item
	}{
		{"color", Item{Fill: "not-a-color"}},
		{"cap", Item{LineCap: "pointy"}},
		{"matrix", Item{Matrix: []float64{1, 2}}},
		{"spread", Item{Gradient: &Gradient{Spread: "mirror"}}},
		{"gradient type", Item{Gradient: &Gradient{Type: "conic"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.item.Style()
			assert.Error(t, err)
		})
	}
}

func TestItemPath(t *testing.T) {
	tests := []struct {
		item    Item
		wantErr bool
	}{
		{Item{Kind: "path", D: "M0 0 L10 10"}, false},
		{Item{Kind: "polyline", Coords: []float64{0, 0, 5, 5}}, false},
		{Item{Kind: "polyline", Coords: []float64{0, 0, 5}}, true},
		{Item{Kind: "polygon", Coords: []float64{0, 0, 5, 0, 5, 5}}, false},
		{Item{Kind: "line", Coords: []float64{0, 0, 5, 5}}, false},
		{Item{Kind: "line", Coords: []float64{0, 0}}, true},
		{Item{Kind: "rect", Width: 5, Height: 5}, false},
		{Item{Kind: "oval", RX: 5}, false},
		{Item{Kind: "star"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.item.Kind, func(t *testing.T) {
			p, err := tt.item.Path()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Positive(t, p.Len())
		})
	}
}

func TestRenderScene(t *testing.T) {
	s, err := LoadSceneFile("testdata/shapes.toml")
	require.NoError(t, err)

	for _, backend := range []string{"immediate", "retained", "scanline"} {
		t.Run(backend, func(t *testing.T) {
			img, err := s.Render(backend, "testdata")
			require.NoError(t, err)

			// Inside the red rect, away from its stroke.
			assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(30, 25))
			// Background corner.
			assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.RGBAAt(118, 2))
		})
	}
}

func TestRenderUnknownBackend(t *testing.T) {
	s := &Scene{Width: 4, Height: 4}
	_, err := s.Render("plotter", "")
	assert.ErrorIs(t, err, tkpath.ErrUnknownBackend)
}

func TestRenderRefusesRecordingBackend(t *testing.T) {
	s := &Scene{Width: 4, Height: 4}
	img, err := s.Render(recording.Name, "")
	require.Error(t, err)
	assert.Nil(t, img)
	assert.Contains(t, err.Error(), "record command")
}

func TestRecordScene(t *testing.T) {
	s, err := LoadSceneFile("testdata/shapes.toml")
	require.NoError(t, err)

	rec := recording.NewRecorder(s.Width, s.Height)
	tracked := tkpath.Track(rec)
	require.NoError(t, s.Draw(tracked, "testdata"))
	require.NoError(t, tracked.Err())

	r := rec.FinishRecording()
	assert.Equal(t, r.Count(recording.CmdSave), r.Count(recording.CmdRestore))
	assert.Equal(t, 1, r.Count(recording.CmdDrawText))
	assert.Equal(t, 1, r.Count(recording.CmdPaintRadialGradient))

	var buf bytes.Buffer
	require.NoError(t, dumpRecording(&buf, r))
	assert.Contains(t, buf.String(), "BeginPath")
	assert.Contains(t, buf.String(), "DrawText")
}
