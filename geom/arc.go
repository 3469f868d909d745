package geom

import "math"

const twoPi = 2 * math.Pi

// NormalizeArc adjusts end so that sweeping from start to end in the requested
// direction follows canvas rules: a clockwise sweep never goes backwards, an
// anticlockwise sweep never goes forwards, and sweeps are capped at a full
// turn.
func NormalizeArc(start, end float64, anticlockwise bool) (float64, float64) {
	if !anticlockwise {
		if end-start >= twoPi {
			return start, start + twoPi
		}
		if end < start {
			d := math.Mod(end-start, twoPi)
			if d < 0 {
				d += twoPi
			}
			end = start + d
		}
		return start, end
	}
	if start-end >= twoPi {
		return start, start - twoPi
	}
	if end > start {
		d := math.Mod(end-start, twoPi)
		if d > 0 {
			d -= twoPi
		}
		end = start + d
	}
	return start, end
}

// CubicSegment is one cubic Bézier piece of a flattened arc.
type CubicSegment struct {
	P0, C1, C2, P1 Point
}

// ArcCubics approximates the circular arc around center with radius r from
// start to end (already normalized) with cubic segments of at most a quarter
// turn each.
func ArcCubics(center Point, r, start, end float64) []CubicSegment {
	sweep := end - start
	if sweep == 0 || r == 0 {
		return nil
	}
	n := int(math.Ceil(math.Abs(sweep)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	segs := make([]CubicSegment, 0, n)
	for i := 0; i < n; i++ {
		a1 := start + float64(i)*step
		segs = append(segs, arcSegment(center, r, a1, a1+step))
	}
	return segs
}

func arcSegment(center Point, r, a1, a2 float64) CubicSegment {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	p0 := Point{X: center.X + r*cos1, Y: center.Y + r*sin1}
	p1 := Point{X: center.X + r*cos2, Y: center.Y + r*sin2}
	return CubicSegment{
		P0: p0,
		C1: Point{X: p0.X - alpha*r*sin1, Y: p0.Y + alpha*r*cos1},
		C2: Point{X: p1.X + alpha*r*sin2, Y: p1.Y - alpha*r*cos2},
		P1: p1,
	}
}

// ArcPoint returns the point at angle a on the circle around center.
func ArcPoint(center Point, r, a float64) Point {
	return Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
}

// TangentArc is the solved form of a canvas arcTo call.
//
// When Degenerate is set the call reduces to a straight line to P1 (coincident
// points, collinear points or zero radius). Otherwise the path runs straight
// to T0 and then along the arc around Center from Start to End.
type TangentArc struct {
	Degenerate    bool
	P1            Point
	T0, T1        Point
	Center        Point
	Radius        float64
	Start, End    float64
	Anticlockwise bool
}

// SolveArcTo solves arcTo(p1, p2, r) from the current point p0: the arc of
// radius r tangent to the segments p0→p1 and p1→p2.
func SolveArcTo(p0, p1, p2 Point, r float64) TangentArc {
	v0 := p0.Sub(p1)
	v2 := p2.Sub(p1)
	if r == 0 || v0.Length() == 0 || v2.Length() == 0 || math.Abs(v0.Cross(v2)) < 1e-12 {
		return TangentArc{Degenerate: true, P1: p1}
	}
	u0 := v0.Normalize()
	u2 := v2.Normalize()

	// Angle at the corner between the two legs.
	cosTheta := u0.X*u2.X + u0.Y*u2.Y
	theta := math.Acos(math.Max(-1, math.Min(1, cosTheta)))
	d := r / math.Tan(theta/2)

	t0 := p1.Add(u0.Mul(d))
	t1 := p1.Add(u2.Mul(d))
	bisector := u0.Add(u2).Normalize()
	center := p1.Add(bisector.Mul(r / math.Sin(theta/2)))

	start := t0.Sub(center).Angle()
	end := t1.Sub(center).Angle()
	sweep := math.Remainder(end-start, twoPi)
	return TangentArc{
		P1:            p1,
		T0:            t0,
		T1:            t1,
		Center:        center,
		Radius:        r,
		Start:         start,
		End:           start + sweep,
		Anticlockwise: sweep < 0,
	}
}
