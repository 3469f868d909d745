package geom

import "math"

// RegularPolygon returns the vertices of a regular polygon with the given
// number of sides inscribed in a circle of radius r around center.
//
// Vertex i sits at angle i·2π/sides, i ∈ [0, sides], so the result has
// sides+1 entries and the last one revisits vertex 0. Callers that close the
// path explicitly may drop it. Returns nil when sides < 3.
func RegularPolygon(center Point, r float64, sides int) []Point {
	if sides < 3 {
		return nil
	}
	step := 2 * math.Pi / float64(sides)
	pts := make([]Point, sides+1)
	for i := 0; i < sides; i++ {
		theta := float64(i) * step
		pts[i] = Point{
			X: center.X + math.Cos(theta)*r,
			Y: center.Y + math.Sin(theta)*r,
		}
	}
	pts[sides] = pts[0]
	return pts
}

// Star returns the 2·points vertices of a star around center, alternating
// outer and inner radius and starting with an outer vertex.
//
// With each = 360/points degrees, outer vertex i sits at (90 - each) + each·i
// degrees and inner vertex i half a step further. Angles are measured with the
// sine negated, so the first outer vertex of a five-pointed star lands at
// 18° above the positive X axis on a Y-down surface. Returns nil when
// points < 2.
func Star(center Point, inner, outer float64, points int) []Point {
	if points < 2 {
		return nil
	}
	each := 360 / float64(points)
	small := 90 - each
	large := each/2 + small

	pts := make([]Point, 0, 2*points)
	for i := 0; i < points; i++ {
		a := Radians(small + each*float64(i))
		pts = append(pts, Point{
			X: center.X + math.Cos(a)*outer,
			Y: center.Y - math.Sin(a)*outer,
		})
		b := Radians(large + each*float64(i))
		pts = append(pts, Point{
			X: center.X + math.Cos(b)*inner,
			Y: center.Y - math.Sin(b)*inner,
		})
	}
	return pts
}
