// Package recording captures DrawingContext calls as commands that can be
// replayed onto any other context.
//
// The Recorder is itself a DrawingContext, so path items paint into it
// exactly as they paint into a raster backend:
//
//	rec := recording.NewRecorder(200, 100)
//	_ = tkpath.DrawPath(rec, path, &style, nil)
//	r := rec.FinishRecording()
//
// A Recording replays onto an open context, or opens a backend by name:
//
//	ctx, _ := tkpath.Open("retained", dst)
//	err := r.Playback(ctx)
//
//	err = r.Replay("scanline", dst)
//
// Replaying the same recording onto different backends is how their
// output is compared in tests.
//
// Styles are copied into a ResourcePool when recorded, so callers may
// reuse and mutate a Style between calls. Gradient fills and images are
// stored by reference and must not change after they are recorded.
//
// The package registers itself under the name "recording"; a context
// opened that way records into a throwaway Recorder sized to the
// destination and never touches its pixels.
package recording
