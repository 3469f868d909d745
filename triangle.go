package shape

import "github.com/gogpu/gg-shape/geom"

// TriangleBuilder draws a triangle through three points.
type TriangleBuilder struct {
	common[*TriangleBuilder]
	points []geom.Point
}

// Make starts a new triangle.
func (b *TriangleBuilder) Make() *TriangleBuilder {
	b.begin()
	b.points = b.points[:0]
	return b
}

// Point appends a vertex. A fourth vertex is rejected.
func (b *TriangleBuilder) Point(x, y float64) *TriangleBuilder {
	if !b.open("Point") || !b.check(checkNumeric(b.op("Point"), "point", x, y)) {
		return b
	}
	if len(b.points) == 3 {
		return b.fail(invalid(b.op("Point"), "point", "a triangle has three points"))
	}
	b.points = append(b.points, geom.Pt(x, y))
	return b
}

// Create draws the triangle.
func (b *TriangleBuilder) Create(mode DrawMode) error {
	return finish(&b.common, mode, func() (plan, error) {
		if len(b.points) != 3 {
			return plan{}, &GeometryError{Shape: b.kind, Reason: "needs three points", Err: ErrIncomplete}
		}
		var p plan
		p.move(b.points[0])
		p.line(b.points[1])
		p.line(b.points[2])
		p.closed = true
		return p, nil
	})
}
