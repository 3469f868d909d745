// Package shape is a fluent shape-composition layer over a 2D canvas surface.
//
// Instead of sequencing move, line, arc and curve calls by hand, a caller
// describes a shape declaratively and lets the builder derive the path:
//
//	rec := recording.NewRecorder(200, 200)
//	s := shape.NewSession(rec)
//
//	err := s.RoundRect().Make().
//		Position(10, 10).
//		Size(100, 50).
//		Radius(10).
//		Color("#3366ff").
//		Create(shape.Fill)
//
// # Sessions and builders
//
// A Session owns the surface, the shared paint state (Style) and one builder
// per shape kind. Builders follow a make → setters → create lifecycle:
//
//   - Make resets the builder's configuration and the paint state, keeping
//     only the composite operation.
//   - Setters validate their arguments and either store them or record an
//     error, leaving the configuration untouched.
//   - Create derives the geometry, emits the path and fills or strokes it.
//
// Errors are sticky: after a failed setter every later call in the chain is
// a no-op and Create returns the first error without touching the surface.
// Err reports it mid-chain.
//
// Only one builder is live at a time. Calling Make on another builder of the
// same Session makes the previous one stale; further calls on it fail with
// ErrStale. A created builder rejects new shape parameters (ErrConsumed) until
// it is made again, but style calls such as Clip remain available so the
// just-drawn path can be reused.
//
// # Style
//
// Every builder implements Styleable: fill color, gradients, patterns,
// border, shadow, composite operation, clip and reset. Style calls mutate
// the Session's paint state, which is read when Create runs, so they may be
// issued in any order before it.
//
// # Surfaces
//
// The package draws on any surface.Surface. backend/raster renders with gg;
// recording captures each call as a typed command and is the test double used
// throughout this module.
package shape
