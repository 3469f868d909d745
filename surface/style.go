// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"slices"
)

// PaintKind discriminates the source of a Paint.
type PaintKind uint8

const (
	// PaintSolid paints a single color.
	PaintSolid PaintKind = iota
	// PaintGradient paints a linear or radial gradient.
	PaintGradient
	// PaintPattern paints a tiled image.
	PaintPattern
)

// Paint is the source of color for fills and strokes.
type Paint struct {
	Kind     PaintKind
	Color    color.Color
	Gradient Gradient
	Pattern  *Pattern
}

// SolidPaint returns a Paint of a single color.
func SolidPaint(c color.Color) Paint {
	return Paint{Kind: PaintSolid, Color: c}
}

// GradientPaint returns a Paint drawing g.
func GradientPaint(g Gradient) Paint {
	return Paint{Kind: PaintGradient, Gradient: g}
}

// PatternPaint returns a Paint tiling p.
func PatternPaint(p *Pattern) Paint {
	return Paint{Kind: PaintPattern, Pattern: p}
}

// ColorStop is one entry of a gradient: a color at an offset in [0, 1].
type ColorStop struct {
	Offset float64
	Color  color.Color
}

// Gradient is either a *LinearGradient or a *RadialGradient.
type Gradient interface {
	// ColorStops returns the stops in the order they were added.
	ColorStops() []ColorStop

	gradient()
}

// LinearGradient interpolates along the line from (X0, Y0) to (X1, Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

// ColorStops returns the stops in the order they were added.
func (g *LinearGradient) ColorStops() []ColorStop { return g.Stops }

func (*LinearGradient) gradient() {}

// RadialGradient interpolates between the inner circle (X0, Y0, R0) and the
// outer circle (X1, Y1, R1).
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

// ColorStops returns the stops in the order they were added.
func (g *RadialGradient) ColorStops() []ColorStop { return g.Stops }

func (*RadialGradient) gradient() {}

// SortedStops returns a copy of stops ordered by offset. Stops sharing an
// offset keep their insertion order.
func SortedStops(stops []ColorStop) []ColorStop {
	out := slices.Clone(stops)
	slices.SortStableFunc(out, func(a, b ColorStop) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})
	return out
}

// Pattern tiles an image over the painted area.
type Pattern struct {
	Image  image.Image
	Repeat Repeat
}

// Shadow describes the drop shadow cast by fills and strokes. The zero value
// casts no shadow.
type Shadow struct {
	Blur    float64
	OffsetX float64
	OffsetY float64
	Color   color.Color
}

// Shadow defaults used when a caller asks for a shadow without specifying
// every parameter.
const (
	DefaultShadowBlur    = 2
	DefaultShadowOffsetX = 10
	DefaultShadowOffsetY = 10
)

// DefaultShadowColor is the grey used for shadows without an explicit color.
var DefaultShadowColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

// Visible reports whether the shadow would paint anything.
func (s Shadow) Visible() bool {
	if s.Color == nil {
		return false
	}
	if _, _, _, a := s.Color.RGBA(); a == 0 {
		return false
	}
	return s.Blur > 0 || s.OffsetX != 0 || s.OffsetY != 0
}

// Style is the complete paint state read by Fill and Stroke.
type Style struct {
	Fill       Paint
	Stroke     Paint
	LineWidth  float64
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64
	Dash       []float64
	DashOffset float64
	Shadow     Shadow
	Composite  CompositeOp
}

// DefaultStyle returns the canvas defaults: black fill and stroke, 1px butt
// lines with miter joins and a miter limit of 10, no dash, no shadow,
// source-over compositing.
func DefaultStyle() Style {
	return Style{
		Fill:       SolidPaint(color.Black),
		Stroke:     SolidPaint(color.Black),
		LineWidth:  1,
		LineCap:    LineCapButt,
		LineJoin:   LineJoinMiter,
		MiterLimit: 10,
	}
}

// Clone returns a copy that shares no mutable slices with s.
func (s Style) Clone() Style {
	s.Dash = slices.Clone(s.Dash)
	return s
}

// WithFill returns a copy with the specified fill paint.
func (s Style) WithFill(p Paint) Style {
	s.Fill = p
	return s
}

// WithStroke returns a copy with the specified stroke paint.
func (s Style) WithStroke(p Paint) Style {
	s.Stroke = p
	return s
}

// WithLineWidth returns a copy with the specified line width.
func (s Style) WithLineWidth(w float64) Style {
	s.LineWidth = w
	return s
}

// WithDash returns a copy with the specified dash pattern.
func (s Style) WithDash(dash ...float64) Style {
	s.Dash = slices.Clone(dash)
	return s
}

// WithShadow returns a copy with the specified shadow.
func (s Style) WithShadow(sh Shadow) Style {
	s.Shadow = sh
	return s
}

// WithComposite returns a copy with the specified composite operation.
func (s Style) WithComposite(op CompositeOp) Style {
	s.Composite = op
	return s
}
