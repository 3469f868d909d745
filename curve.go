package shape

import (
	"fmt"

	"github.com/gogpu/gg-shape/geom"
)

// CurveBuilder draws a quadratic or cubic Bézier curve. One control point
// selects a quadratic curve, two a cubic one.
type CurveBuilder struct {
	common[*CurveBuilder]
	start    optPoint
	end      optPoint
	controls []geom.Point
}

// Make starts a new curve.
func (b *CurveBuilder) Make() *CurveBuilder {
	b.begin()
	b.start, b.end, b.controls = optPoint{}, optPoint{}, nil
	return b
}

// Start sets the first end point.
func (b *CurveBuilder) Start(x, y float64) *CurveBuilder {
	if b.open("Start") && b.check(checkNumeric(b.op("Start"), "start", x, y)) {
		b.start.set(x, y)
	}
	return b
}

// Control appends a control point. More than two are accepted here and
// rejected by Create.
func (b *CurveBuilder) Control(x, y float64) *CurveBuilder {
	if b.open("Control") && b.check(checkNumeric(b.op("Control"), "control", x, y)) {
		b.controls = append(b.controls, geom.Pt(x, y))
	}
	return b
}

// End sets the last end point.
func (b *CurveBuilder) End(x, y float64) *CurveBuilder {
	if b.open("End") && b.check(checkNumeric(b.op("End"), "end", x, y)) {
		b.end.set(x, y)
	}
	return b
}

// Create draws the curve. The path is left open.
func (b *CurveBuilder) Create(mode DrawMode) error {
	return finish(&b.common, mode, func() (plan, error) {
		if err := required(b.kind, req{"start", b.start.ok}, req{"end", b.end.ok}); err != nil {
			return plan{}, err
		}
		c, err := geom.DispatchCurve(b.start.Point, b.end.Point, b.controls...)
		if err != nil {
			return plan{}, &GeometryError{Shape: b.kind, Reason: fmt.Sprintf("got %d", len(b.controls)), Err: ErrControlPoints}
		}
		var p plan
		p.move(c.Start)
		p.curve(c)
		return p, nil
	})
}
