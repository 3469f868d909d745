package geom

import "math"

// SkewOffset returns the sideways shift between the top and bottom edges of a
// parallelogram of the given height whose base angle is angle radians.
//
// The offset is sqrt(|(sin θ·h)² − h²|), which is zero at 90° and never
// negative: θ and 180°−θ give the same shape, leaning right.
func SkewOffset(height, angle float64) float64 {
	sh := math.Sin(angle) * height
	return math.Sqrt(math.Abs(sh*sh - height*height))
}

// Parallelogram returns the four vertices of a parallelogram centered on
// center. The bottom edge runs from the bottom-left vertex to the
// bottom-right one; the top edge is shifted right by SkewOffset.
//
// Order: bottom-right, top-right, top-left, bottom-left. The path that draws it
// starts at the bottom-right vertex and visits the rest in order.
func Parallelogram(center Point, width, height, angle float64) [4]Point {
	short := SkewOffset(height, angle)
	hw, hh, hs := width/2, height/2, short/2
	return [4]Point{
		{X: center.X + hw - hs, Y: center.Y + hh},
		{X: center.X + hw + hs, Y: center.Y - hh},
		{X: center.X - hw + hs, Y: center.Y - hh},
		{X: center.X - hw - hs, Y: center.Y + hh},
	}
}

// Trapezium returns the four vertices of an isosceles trapezium centered on
// center with independent top and bottom widths.
//
// Order: top-left, top-right, bottom-right, bottom-left.
func Trapezium(center Point, height, top, bottom float64) [4]Point {
	hh := height / 2
	return [4]Point{
		{X: center.X - top/2, Y: center.Y - hh},
		{X: center.X + top/2, Y: center.Y - hh},
		{X: center.X + bottom/2, Y: center.Y + hh},
		{X: center.X - bottom/2, Y: center.Y + hh},
	}
}
