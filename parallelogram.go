package shape

import (
	"github.com/gogpu/gg-shape/geom"
	"github.com/gogpu/gg-shape/surface"
)

// DefaultParallelogramAngle is the base angle, in degrees, of a fresh
// parallelogram.
const DefaultParallelogramAngle = 45

// ParallelogramBuilder draws parallelograms from a bounding box and a base
// angle. Create switches the line cap to round.
type ParallelogramBuilder struct {
	common[*ParallelogramBuilder]
	center optPoint
	size   optSize
	angle  float64 // degrees
}

// Make starts a new parallelogram with a 45° base angle.
func (b *ParallelogramBuilder) Make() *ParallelogramBuilder {
	b.begin()
	b.center, b.size, b.angle = optPoint{}, optSize{}, DefaultParallelogramAngle
	return b
}

// Position sets the center.
func (b *ParallelogramBuilder) Position(x, y float64) *ParallelogramBuilder {
	if b.open("Position") && b.check(checkNumeric(b.op("Position"), "position", x, y)) {
		b.center.set(x, y)
	}
	return b
}

// Size sets the length of the horizontal edges and the height.
func (b *ParallelogramBuilder) Size(w, h float64) *ParallelogramBuilder {
	if b.open("Size") && b.check(checkNonNegative(b.op("Size"), "size", w, h)) {
		b.size.set(w, h)
	}
	return b
}

// Angle sets the base angle in degrees. 90 gives a rectangle; θ and
// 180−θ draw the same shape.
func (b *ParallelogramBuilder) Angle(deg float64) *ParallelogramBuilder {
	if b.open("Angle") && b.check(checkNumeric(b.op("Angle"), "angle", deg)) {
		b.angle = deg
	}
	return b
}

// Create draws the parallelogram starting from its bottom-right vertex.
func (b *ParallelogramBuilder) Create(mode DrawMode) error {
	return finish(&b.common, mode, func() (plan, error) {
		if err := required(b.kind, req{"position", b.center.ok}, req{"size", b.size.ok}); err != nil {
			return plan{}, err
		}
		b.s.style.LineCap = surface.LineCapRound
		v := geom.Parallelogram(b.center.Point, b.size.w, b.size.h, geom.Radians(b.angle))
		var p plan
		p.move(v[0])
		for _, pt := range v[1:] {
			p.line(pt)
		}
		p.closed = true
		return p, nil
	})
}
