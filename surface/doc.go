// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the rendering surface the shape builders draw on and
// the style model they share.
//
// A Surface is an immediate-mode 2D canvas: a current path built from
// primitive operations (move, line, arc, arc-to, curves, rect), committed by
// Fill or Stroke, plus a clip region, a coordinate transform and raw pixel
// access. Everything a shape needs beyond geometry travels in a single Style
// value handed to SetStyle before the path is committed.
//
// # Implementations
//
//   - backend/raster: software rendering on a gg.Context
//   - recording: records each call as a typed command for tests and replay
//
// Backends register themselves with the package registry so tools can select
// one by name:
//
//	import _ "github.com/gogpu/gg-shape/backend/raster"
//
//	s, err := surface.NewSurfaceByName("raster", 800, 600)
//
// # Optional capabilities
//
// Text and image drawing are optional. Callers probe for them with a type
// assertion against TextSurface and ImageSurface.
//
// # Enumerations
//
// Line caps, line joins, composite operations, pattern repetition, text
// alignment, text baseline, font style and font variant are closed
// enumerations. Each has a String method returning the canvas keyword and a
// Parse function accepting it, so scene files and other textual inputs can
// round-trip through them.
package surface
