package shape

import (
	"strconv"

	"github.com/gogpu/gg-shape/geom"
)

// Polygon defaults.
const (
	DefaultPolygonSides  = 3
	DefaultPolygonRadius = 100
)

// PolygonBuilder draws regular polygons inscribed in a circle.
type PolygonBuilder struct {
	common[*PolygonBuilder]
	center optPoint
	sides  int
	radius float64
}

// Make starts a new polygon with 3 sides and radius 100.
func (b *PolygonBuilder) Make() *PolygonBuilder {
	b.begin()
	b.center, b.sides, b.radius = optPoint{}, DefaultPolygonSides, DefaultPolygonRadius
	return b
}

// Position sets the center.
func (b *PolygonBuilder) Position(x, y float64) *PolygonBuilder {
	if b.open("Position") && b.check(checkNumeric(b.op("Position"), "position", x, y)) {
		b.center.set(x, y)
	}
	return b
}

// Side sets the number of sides, at least 3.
func (b *PolygonBuilder) Side(n int) *PolygonBuilder {
	if !b.open("Side") {
		return b
	}
	if n < 3 {
		return b.fail(invalid(b.op("Side"), "side", strconv.Itoa(n)+" is fewer than 3"))
	}
	if n > MaxVertices {
		return b.fail(invalid(b.op("Side"), "side", strconv.Itoa(n)+" exceeds "+strconv.Itoa(MaxVertices)))
	}
	b.sides = n
	return b
}

// Radius sets the circumradius.
func (b *PolygonBuilder) Radius(r float64) *PolygonBuilder {
	if b.open("Radius") && b.check(checkNonNegative(b.op("Radius"), "radius", r)) {
		b.radius = r
	}
	return b
}

// Create draws the polygon starting from the vertex at angle zero.
func (b *PolygonBuilder) Create(mode DrawMode) error {
	return finish(&b.common, mode, func() (plan, error) {
		if err := required(b.kind, req{"position", b.center.ok}); err != nil {
			return plan{}, err
		}
		pts := geom.RegularPolygon(b.center.Point, b.radius, b.sides)
		var p plan
		p.move(pts[0])
		for _, v := range pts[1:] {
			p.line(v)
		}
		p.closed = true
		return p, nil
	})
}
