package shape

import (
	"math"
	"strconv"

	"github.com/gogpu/gg-shape/geom"
)

// GridBuilder strokes a square grid over the whole surface.
type GridBuilder struct {
	common[*GridBuilder]
	step  float64
	close bool
}

// Make starts a new grid.
func (b *GridBuilder) Make() *GridBuilder {
	b.begin()
	b.step, b.close = 0, false
	return b
}

// Step sets the cell size. Steps giving more than MaxGridLines lines
// along either surface side are rejected.
func (b *GridBuilder) Step(space float64) *GridBuilder {
	if !b.open("Step") || !b.check(checkPositive(b.op("Step"), "step", space)) {
		return b
	}
	side := float64(max(b.s.surf.Width(), b.s.surf.Height()))
	if side/space >= MaxGridLines {
		return b.fail(invalid(b.op("Step"), "step", "too small for a "+
			strconv.Itoa(b.s.surf.Width())+"x"+strconv.Itoa(b.s.surf.Height())+" surface"))
	}
	b.step = space
	return b
}

// Close selects a closed grid that ends on the last whole cell instead of
// running to the surface edges.
func (b *GridBuilder) Close(closed bool) *GridBuilder {
	if b.open("Close") {
		b.close = closed
	}
	return b
}

// lines returns the grid segments, horizontal lines first.
func (b *GridBuilder) lines() [][2]geom.Point {
	w, h := float64(b.s.surf.Width()), float64(b.s.surf.Height())
	var out [][2]geom.Point
	if b.close {
		rows := math.Floor(h / b.step)
		cols := math.Floor(w / b.step)
		for i := 0.0; i <= rows; i++ {
			y := i * b.step
			out = append(out, [2]geom.Point{geom.Pt(0, y), geom.Pt(cols*b.step, y)})
		}
		for i := 0.0; i <= cols; i++ {
			x := i * b.step
			out = append(out, [2]geom.Point{geom.Pt(x, 0), geom.Pt(x, rows*b.step)})
		}
		return out
	}
	for y := 0.0; y <= h; y += b.step {
		out = append(out, [2]geom.Point{geom.Pt(0, y), geom.Pt(w, y)})
	}
	for x := 0.0; x <= w; x += b.step {
		out = append(out, [2]geom.Point{geom.Pt(x, 0), geom.Pt(x, h)})
	}
	return out
}

// Create strokes every grid line as its own path.
func (b *GridBuilder) Create() error {
	if !b.open("Create") {
		return b.err
	}
	if b.step <= 0 {
		b.fail(&GeometryError{Shape: b.kind, Reason: "missing step", Err: ErrIncomplete})
		return b.err
	}
	b.consumed = true
	for _, seg := range b.lines() {
		var p plan
		p.move(seg[0])
		p.line(seg[1])
		if err := b.s.commit(b.kind, p, Stroke); err != nil {
			return err
		}
	}
	return nil
}
