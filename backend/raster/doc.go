// Package raster provides a CPU surface backed by a gg.Context.
//
// The surface keeps the canvas path model on top of gg: the current path is
// held in device space, the transform is applied as each point is issued, and
// the path survives Fill and Stroke until BeginPath. Shapes drawn with a
// shadow or with a composite operation other than source-over are rendered
// into a scratch layer first and then combined with the surface pixels.
//
// Importing the package registers the "raster" backend:
//
//	import _ "github.com/gogpu/gg-shape/backend/raster"
//
//	s, err := surface.NewSurfaceByName("raster", 640, 480)
package raster
