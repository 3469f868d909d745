package shape

import (
	"math"

	"github.com/gogpu/gg-shape/geom"
)

// DefaultArcToRadius is the arc-to radius used when Radial is not called.
const DefaultArcToRadius = 10

// ArcBuilder draws circular arcs in one of two modes.
//
// Center mode: Position, Radius, optionally Angle (degrees, default a full
// circle) and Direction.
//
// Arc-to mode: From and To, optionally Radial (default 10) and Start. The arc
// is tangent to the line from the current point to From and to the line from
// From to To. Start moves to an explicit current point first; without it the
// arc-to has no current point and the surface treats it as a move to From.
//
// Calling any arc-to setter selects arc-to mode. If center parameters were
// also set, arc-to mode takes precedence and the center parameters are
// ignored.
type ArcBuilder struct {
	common[*ArcBuilder]

	center        optPoint
	radius        float64
	hasRadius     bool
	start, end    float64 // radians
	anticlockwise bool

	arcTo  bool
	origin optPoint
	from   optPoint
	to     optPoint
	radial float64
}

// Make starts a new arc.
func (b *ArcBuilder) Make() *ArcBuilder {
	b.begin()
	*b = ArcBuilder{common: b.common, end: 2 * math.Pi, radial: DefaultArcToRadius}
	return b
}

// Position sets the center of a center-mode arc.
func (b *ArcBuilder) Position(x, y float64) *ArcBuilder {
	if b.open("Position") && b.check(checkNumeric(b.op("Position"), "position", x, y)) {
		b.center.set(x, y)
	}
	return b
}

// Radius sets the radius of a center-mode arc.
func (b *ArcBuilder) Radius(r float64) *ArcBuilder {
	if b.open("Radius") && b.check(checkNonNegative(b.op("Radius"), "radius", r)) {
		b.radius, b.hasRadius = r, true
	}
	return b
}

// Angle sets the start and end angles in degrees, measured clockwise from
// the positive X axis.
func (b *ArcBuilder) Angle(start, end float64) *ArcBuilder {
	if b.open("Angle") && b.check(checkNumeric(b.op("Angle"), "angle", start, end)) {
		b.start, b.end = geom.Radians(start), geom.Radians(end)
	}
	return b
}

// Direction selects anticlockwise sweeping when true.
func (b *ArcBuilder) Direction(anticlockwise bool) *ArcBuilder {
	if b.open("Direction") {
		b.anticlockwise = anticlockwise
	}
	return b
}

// Start sets the current point an arc-to begins from.
func (b *ArcBuilder) Start(x, y float64) *ArcBuilder {
	if b.open("Start") && b.check(checkNumeric(b.op("Start"), "start", x, y)) {
		b.origin.set(x, y)
		b.arcTo = true
	}
	return b
}

// From sets the corner point of an arc-to.
func (b *ArcBuilder) From(x, y float64) *ArcBuilder {
	if b.open("From") && b.check(checkNumeric(b.op("From"), "from", x, y)) {
		b.from.set(x, y)
		b.arcTo = true
	}
	return b
}

// To sets the point the arc-to's second tangent heads for.
func (b *ArcBuilder) To(x, y float64) *ArcBuilder {
	if b.open("To") && b.check(checkNumeric(b.op("To"), "to", x, y)) {
		b.to.set(x, y)
		b.arcTo = true
	}
	return b
}

// Radial sets the arc-to radius.
func (b *ArcBuilder) Radial(r float64) *ArcBuilder {
	if b.open("Radial") && b.check(checkNonNegative(b.op("Radial"), "radial", r)) {
		b.radial = r
		b.arcTo = true
	}
	return b
}

// Create draws the arc. The path is left open.
func (b *ArcBuilder) Create(mode DrawMode) error {
	return finish(&b.common, mode, func() (plan, error) {
		var p plan
		if b.arcTo {
			if b.center.ok || b.hasRadius {
				b.s.log.Debug("shape: arc-to parameters override center mode", "shape", b.kind)
			}
			if err := required(b.kind, req{"from", b.from.ok}, req{"to", b.to.ok}); err != nil {
				return plan{}, err
			}
			if b.origin.ok {
				p.move(b.origin.Point)
			}
			p.arcTo(geom.ArcToSegment{P1: b.from.Point, P2: b.to.Point, Radius: b.radial})
			return p, nil
		}
		if err := required(b.kind, req{"position", b.center.ok}, req{"radius", b.hasRadius}); err != nil {
			return plan{}, err
		}
		p.arc(b.center.Point, b.radius, b.start, b.end, b.anticlockwise)
		return p, nil
	})
}
