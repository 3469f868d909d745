package shape

import "github.com/gogpu/gg-shape/geom"

// DefaultTrapeziumHeight is the height of a fresh trapezium.
const DefaultTrapeziumHeight = 100

// TrapeziumBuilder draws isosceles trapezia with independent top and bottom
// widths.
type TrapeziumBuilder struct {
	common[*TrapeziumBuilder]
	center      optPoint
	height      float64
	top, bottom float64
	hasWidth    bool
}

// Make starts a new trapezium of height 100.
func (b *TrapeziumBuilder) Make() *TrapeziumBuilder {
	b.begin()
	*b = TrapeziumBuilder{common: b.common, height: DefaultTrapeziumHeight}
	return b
}

// Position sets the center.
func (b *TrapeziumBuilder) Position(x, y float64) *TrapeziumBuilder {
	if b.open("Position") && b.check(checkNumeric(b.op("Position"), "position", x, y)) {
		b.center.set(x, y)
	}
	return b
}

// Height sets the distance between the parallel edges.
func (b *TrapeziumBuilder) Height(h float64) *TrapeziumBuilder {
	if b.open("Height") && b.check(checkNonNegative(b.op("Height"), "height", h)) {
		b.height = h
	}
	return b
}

// Width sets the lengths of the top (up) and bottom (down) edges.
func (b *TrapeziumBuilder) Width(up, down float64) *TrapeziumBuilder {
	if b.open("Width") && b.check(checkNonNegative(b.op("Width"), "width", up, down)) {
		b.top, b.bottom, b.hasWidth = up, down, true
	}
	return b
}

// Create draws the trapezium from its bottom-left vertex up the left side,
// across the top and back down, ending on the bottom-left vertex.
func (b *TrapeziumBuilder) Create(mode DrawMode) error {
	return finish(&b.common, mode, func() (plan, error) {
		if err := required(b.kind, req{"position", b.center.ok}, req{"width", b.hasWidth}); err != nil {
			return plan{}, err
		}
		v := geom.Trapezium(b.center.Point, b.height, b.top, b.bottom)
		var p plan
		p.move(v[3])
		for _, pt := range v {
			p.line(pt)
		}
		p.closed = true
		return p, nil
	})
}
