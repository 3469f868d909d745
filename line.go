package shape

import (
	"slices"

	"github.com/gogpu/gg-shape/geom"
)

// DefaultMiterLimit is the miter limit applied by a fresh line builder.
const DefaultMiterLimit = 10

// LineBuilder draws open polylines. Lines are stroke-only.
type LineBuilder struct {
	common[*LineBuilder]
	dash  []float64
	cap   LineCap
	join  LineJoin
	limit float64
	move  optPoint
	marks []geom.Point
}

// Make starts a new line with butt caps, miter joins, a miter limit of 10
// and no dash.
func (b *LineBuilder) Make() *LineBuilder {
	b.begin()
	*b = LineBuilder{common: b.common, limit: DefaultMiterLimit}
	return b
}

// Dash sets the dash pattern: alternating dash and gap lengths. No arguments
// select a solid line.
func (b *LineBuilder) Dash(segments ...float64) *LineBuilder {
	if b.open("Dash") && b.check(checkNonNegative(b.op("Dash"), "dash", segments...)) {
		b.dash = slices.Clone(segments)
	}
	return b
}

// Cap sets the line cap.
func (b *LineBuilder) Cap(c LineCap) *LineBuilder {
	if b.open("Cap") && b.check(checkEnum(b.op("Cap"), "cap", c)) {
		b.cap = c
	}
	return b
}

// Join sets the line join.
func (b *LineBuilder) Join(j LineJoin) *LineBuilder {
	if b.open("Join") && b.check(checkEnum(b.op("Join"), "join", j)) {
		b.join = j
	}
	return b
}

// Limit sets the miter limit.
func (b *LineBuilder) Limit(limit float64) *LineBuilder {
	if b.open("Limit") && b.check(checkPositive(b.op("Limit"), "limit", limit)) {
		b.limit = limit
	}
	return b
}

// Move sets the first point of the line.
func (b *LineBuilder) Move(x, y float64) *LineBuilder {
	if b.open("Move") && b.check(checkNumeric(b.op("Move"), "move", x, y)) {
		b.move.set(x, y)
	}
	return b
}

// Mark appends a point the line passes through.
func (b *LineBuilder) Mark(x, y float64) *LineBuilder {
	if b.open("Mark") && b.check(checkNumeric(b.op("Mark"), "mark", x, y)) {
		b.marks = append(b.marks, geom.Pt(x, y))
	}
	return b
}

// Create strokes the polyline from Move through every Mark in order.
func (b *LineBuilder) Create() error {
	return finish(&b.common, Stroke, func() (plan, error) {
		if err := required(b.kind, req{"move", b.move.ok}, req{"mark", len(b.marks) > 0}); err != nil {
			return plan{}, err
		}
		st := &b.s.style
		st.LineCap, st.LineJoin, st.MiterLimit = b.cap, b.join, b.limit
		*st = st.WithDash(b.dash...)

		var p plan
		p.move(b.move.Point)
		for _, m := range b.marks {
			p.line(m)
		}
		return p, nil
	})
}
