// Package recording provides a surface that records drawing operations.
//
// A Recorder implements surface.Surface (plus the optional text and image
// capabilities) by appending one typed command per call instead of
// rasterizing. Commands can be inspected, counted and printed, which makes the
// Recorder the natural test double for code that drives a surface, and a
// finished Recording can be replayed onto any other surface.
//
// Design follows Cairo's approach of typed command structs for inspectability
// and debuggability. Styles, images and pixel blocks are stored in a
// ResourcePool and referenced by typed handles.
//
// # Example
//
//	rec := recording.NewRecorder(800, 600)
//	session := shape.NewSession(rec)
//	session.Star().Make().Position(100, 100).Radius(20, 50).Create(shape.Fill)
//
//	lines := recording.Filter[recording.LineToCommand](rec.Commands())
//
//	// Replay onto a raster surface
//	rec.FinishRecording().Playback(dst)
//
// # Pixels
//
// The Recorder keeps a pixel buffer so that ImageData and PutImageData
// round-trip. Fill and Stroke never touch it; only PutImageData and Reset do.
package recording
