package shape

import "github.com/gogpu/gg-shape/geom"

// RoundRectBuilder draws rectangles with rounded corners as four tangent
// arcs.
type RoundRectBuilder struct {
	common[*RoundRectBuilder]
	pos    optPoint
	size   optSize
	radius float64
}

// Make starts a new rounded rectangle with a zero corner radius.
func (b *RoundRectBuilder) Make() *RoundRectBuilder {
	b.begin()
	b.pos, b.size, b.radius = optPoint{}, optSize{}, 0
	return b
}

// Position sets the top-left corner.
func (b *RoundRectBuilder) Position(x, y float64) *RoundRectBuilder {
	if b.open("Position") && b.check(checkNumeric(b.op("Position"), "position", x, y)) {
		b.pos.set(x, y)
	}
	return b
}

// Size sets the width and height.
func (b *RoundRectBuilder) Size(w, h float64) *RoundRectBuilder {
	if b.open("Size") && b.check(checkNumeric(b.op("Size"), "size", w, h)) {
		b.size.set(w, h)
	}
	return b
}

// Radius sets the corner radius. It is clamped to half the smaller side when
// the shape is created.
func (b *RoundRectBuilder) Radius(r float64) *RoundRectBuilder {
	if b.open("Radius") && b.check(checkNonNegative(b.op("Radius"), "radius", r)) {
		b.radius = r
	}
	return b
}

// Create draws the rounded rectangle: a move to the top edge followed by
// four arc-to corners.
func (b *RoundRectBuilder) Create(mode DrawMode) error {
	return finish(&b.common, mode, func() (plan, error) {
		if err := required(b.kind, req{"position", b.pos.ok}, req{"size", b.size.ok}); err != nil {
			return plan{}, err
		}
		rr := geom.RoundedRect(b.pos.X, b.pos.Y, b.size.w, b.size.h, b.radius)
		var p plan
		p.move(rr.Start)
		for _, c := range rr.Corners {
			p.arcTo(c)
		}
		p.closed = true
		return p, nil
	})
}
