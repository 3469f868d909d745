package shape

import (
	"strconv"

	"github.com/gogpu/gg-shape/geom"
)

// DefaultStarPoints is the number of points of a fresh star.
const DefaultStarPoints = 5

// StarBuilder draws N-pointed stars alternating between an outer and an
// inner radius.
type StarBuilder struct {
	common[*StarBuilder]
	center       optPoint
	points       int
	inner, outer float64
	hasRadius    bool
}

// Make starts a new five-pointed star.
func (b *StarBuilder) Make() *StarBuilder {
	b.begin()
	*b = StarBuilder{common: b.common, points: DefaultStarPoints}
	return b
}

// Position sets the center.
func (b *StarBuilder) Position(x, y float64) *StarBuilder {
	if b.open("Position") && b.check(checkNumeric(b.op("Position"), "position", x, y)) {
		b.center.set(x, y)
	}
	return b
}

// Points sets the number of points, at least 2.
func (b *StarBuilder) Points(n int) *StarBuilder {
	if !b.open("Points") {
		return b
	}
	if n < 2 {
		return b.fail(invalid(b.op("Points"), "points", strconv.Itoa(n)+" is fewer than 2"))
	}
	if n > MaxVertices/2 {
		return b.fail(invalid(b.op("Points"), "points", strconv.Itoa(n)+" exceeds "+strconv.Itoa(MaxVertices/2)))
	}
	b.points = n
	return b
}

// Radius sets the inner and outer radius.
func (b *StarBuilder) Radius(inner, outer float64) *StarBuilder {
	if b.open("Radius") && b.check(checkNonNegative(b.op("Radius"), "radius", inner, outer)) {
		b.inner, b.outer, b.hasRadius = inner, outer, true
	}
	return b
}

// Create draws the star as 2N line segments. The first one starts the
// subpath, so no explicit move is emitted.
func (b *StarBuilder) Create(mode DrawMode) error {
	return finish(&b.common, mode, func() (plan, error) {
		if err := required(b.kind, req{"position", b.center.ok}, req{"radius", b.hasRadius}); err != nil {
			return plan{}, err
		}
		var p plan
		for _, v := range geom.Star(b.center.Point, b.inner, b.outer, b.points) {
			p.line(v)
		}
		p.closed = true
		return p, nil
	})
}
