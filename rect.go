package shape

import "github.com/gogpu/gg-shape/geom"

// optPoint is a point parameter that may not have been set yet.
type optPoint struct {
	geom.Point
	ok bool
}

func (o *optPoint) set(x, y float64) { *o = optPoint{Point: geom.Pt(x, y), ok: true} }

// optSize is a width/height pair that may not have been set yet.
type optSize struct {
	w, h float64
	ok   bool
}

func (o *optSize) set(w, h float64) { *o = optSize{w: w, h: h, ok: true} }

// RectBuilder draws axis-aligned rectangles.
type RectBuilder struct {
	common[*RectBuilder]
	pos  optPoint
	size optSize
}

// Make starts a new rectangle.
func (b *RectBuilder) Make() *RectBuilder {
	b.begin()
	b.pos, b.size = optPoint{}, optSize{}
	return b
}

// Position sets the top-left corner.
func (b *RectBuilder) Position(x, y float64) *RectBuilder {
	if b.open("Position") && b.check(checkNumeric(b.op("Position"), "position", x, y)) {
		b.pos.set(x, y)
	}
	return b
}

// Size sets the width and height. Negative values extend left or up.
func (b *RectBuilder) Size(w, h float64) *RectBuilder {
	if b.open("Size") && b.check(checkNumeric(b.op("Size"), "size", w, h)) {
		b.size.set(w, h)
	}
	return b
}

// Create draws the rectangle.
func (b *RectBuilder) Create(mode DrawMode) error {
	return finish(&b.common, mode, func() (plan, error) {
		if err := required(b.kind, req{"position", b.pos.ok}, req{"size", b.size.ok}); err != nil {
			return plan{}, err
		}
		var p plan
		p.rect(b.pos.X, b.pos.Y, b.size.w, b.size.h)
		p.closed = true
		return p, nil
	})
}

