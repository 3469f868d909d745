package geom

import "math"

// ArcToSegment describes one canvas-style arcTo call: an arc of Radius
// tangent to the line from the current point to P1 and to the line from P1 to
// P2.
type ArcToSegment struct {
	P1, P2 Point
	Radius float64
}

// RoundRect is the derived outline of a rounded rectangle: a start point on
// the top edge followed by four corner arcs.
type RoundRect struct {
	Start   Point
	Corners [4]ArcToSegment
}

// RoundedRect derives the outline of the rectangle (x, y, w, h) with corner
// radius r.
//
// The start point sits r along the top edge, in the direction the top edge
// runs: to the right for w >= 0, to the left for negative w. A negative height
// needs no correction because the offset is horizontal. The radius is clamped
// to half of the smaller absolute side.
func RoundedRect(x, y, w, h, r float64) RoundRect {
	r = math.Max(0, math.Min(r, math.Min(math.Abs(w), math.Abs(h))/2))
	off := r
	if w < 0 {
		off = -r
	}
	return RoundRect{
		Start: Point{X: x + off, Y: y},
		Corners: [4]ArcToSegment{
			{P1: Point{X: x + w, Y: y}, P2: Point{X: x + w, Y: y + h}, Radius: r},
			{P1: Point{X: x + w, Y: y + h}, P2: Point{X: x, Y: y + h}, Radius: r},
			{P1: Point{X: x, Y: y + h}, P2: Point{X: x, Y: y}, Radius: r},
			{P1: Point{X: x, Y: y}, P2: Point{X: x + off, Y: y}, Radius: r},
		},
	}
}
