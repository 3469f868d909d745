// Package geom derives shape vertices and control points from declarative
// parameters.
//
// Every function here is pure: it takes numbers, returns points or segment
// descriptors, and never touches a drawing surface. The shape builders in
// package shape call into geom before emitting any primitive, so a shape whose
// geometry cannot be derived fails before the surface is mutated.
//
// # Coordinate System
//
// Same convention as gg and HTML Canvas:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians unless a function says degrees
package geom
