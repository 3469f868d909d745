// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
)

// Surface is the immediate-mode canvas the shape builders drive.
//
// Path operations accumulate into a current path that Fill, Stroke and Clip
// consume. The path is reset only by BeginPath; after Fill the same path can
// still be stroked or clipped. Coordinates are in user space, transformed by
// the current transform at the time each operation is issued.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// BeginPath discards the current path.
	BeginPath()

	// ClosePath connects the current point back to the start of the subpath.
	ClosePath()

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a straight segment to (x, y). Without a current point it
	// behaves like MoveTo.
	LineTo(x, y float64)

	// Arc adds a circular arc around (cx, cy). Angles are in radians,
	// measured clockwise from the positive X axis on the Y-down surface.
	Arc(cx, cy, r, start, end float64, anticlockwise bool)

	// ArcTo adds an arc of radius r tangent to the line from the current
	// point to (x1, y1) and to the line from (x1, y1) to (x2, y2).
	ArcTo(x1, y1, x2, y2, r float64)

	// QuadraticCurveTo adds a quadratic Bézier through control (cx, cy).
	QuadraticCurveTo(cx, cy, x, y float64)

	// BezierCurveTo adds a cubic Bézier through two control points.
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)

	// Rect adds a closed rectangular subpath.
	Rect(x, y, w, h float64)

	// SetStyle replaces the style used by subsequent Fill and Stroke calls.
	SetStyle(st Style)

	// Fill paints the interior of the current path.
	Fill() error

	// Stroke paints the outline of the current path.
	Stroke() error

	// Clip intersects the clip region with the current path.
	Clip()

	// Translate moves the coordinate origin.
	Translate(x, y float64)

	// Rotate rotates the coordinate frame by angle radians.
	Rotate(angle float64)

	// Scale scales the coordinate frame.
	Scale(x, y float64)

	// ImageData returns a copy of the pixels inside r as non-premultiplied
	// RGBA, four bytes per pixel, row-major. Pixels outside the surface read
	// as transparent black.
	ImageData(r image.Rectangle) []byte

	// PutImageData writes a width×height block of RGBA pixels with its
	// top-left corner at (dx, dy), ignoring transform, clip, composite and
	// shadow. Pixels falling outside the surface are dropped.
	PutImageData(pix []byte, width, height, dx, dy int)

	// Reset clears every pixel to transparent black and drops the current
	// path, clip region and transform.
	Reset()
}

// TextAttrs selects how text is laid out relative to its anchor point.
type TextAttrs struct {
	Font     Font
	Align    TextAlign
	Baseline TextBaseline
	// Lang is an optional BCP 47 tag used for case mapping.
	Lang string
}

// TextMetrics reports the measured extent of a string.
type TextMetrics struct {
	Width  float64
	Height float64
}

// TextSurface is an optional interface for surfaces that can render text.
type TextSurface interface {
	Surface

	// FillText paints s with its anchor at (x, y) using the fill paint.
	FillText(s string, x, y float64, attrs TextAttrs) error

	// StrokeText outlines s with its anchor at (x, y) using the stroke paint.
	StrokeText(s string, x, y float64, attrs TextAttrs) error

	// MeasureText returns the extent of s in the given font.
	MeasureText(s string, font Font) (TextMetrics, error)
}

// Rect is a rectangle in user space.
type Rect struct {
	X, Y, W, H float64
}

// ImageSurface is an optional interface for surfaces that can draw images.
type ImageSurface interface {
	Surface

	// DrawImage draws the src sub-rectangle of img scaled into dst.
	// An empty src means the whole image.
	DrawImage(img image.Image, src image.Rectangle, dst Rect) error
}

// Options configures surface creation through the registry.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int
}

// MaxPixels bounds the area of surfaces and of pixel buffers exchanged
// with them.
const MaxPixels = 1 << 28

// PixelBytes returns the length of a w×h buffer of 4-byte pixels. ok is
// false when either side is not positive or the area exceeds MaxPixels.
func PixelBytes(w, h int) (n int, ok bool) {
	if w <= 0 || h <= 0 || w > MaxPixels/h {
		return 0, false
	}
	return 4 * w * h, true
}
