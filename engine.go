package shape

import (
	"fmt"

	"github.com/gogpu/gg-shape/geom"
)

// DrawMode selects whether Create fills or strokes the shape.
type DrawMode uint8

const (
	// Fill paints the interior with the fill paint.
	Fill DrawMode = iota
	// Stroke paints the outline with the stroke paint and line style.
	Stroke
)

func (m DrawMode) String() string {
	switch m {
	case Fill:
		return "fill"
	case Stroke:
		return "stroke"
	}
	return fmt.Sprintf("DrawMode(%d)", uint8(m))
}

// ParseDrawMode parses "fill" or "stroke".
func ParseDrawMode(s string) (DrawMode, error) {
	switch s {
	case "fill":
		return Fill, nil
	case "stroke":
		return Stroke, nil
	}
	return 0, fmt.Errorf("shape: unknown draw mode %q", s)
}

// opKind names one primitive path operation.
type opKind uint8

const (
	opMove opKind = iota
	opLine
	opArc
	opArcTo
	opQuad
	opCubic
	opRect
)

// pathOp is one primitive with its arguments in surface order.
type pathOp struct {
	kind opKind
	args [6]float64
	ccw  bool
}

// plan is the derived primitive sequence of one shape. Closed shapes close
// the subpath before painting; open ones paint first and close afterwards,
// so the close never adds a segment to the painted outline.
type plan struct {
	ops    []pathOp
	closed bool
}

func (p *plan) move(pt geom.Point) { p.ops = append(p.ops, pathOp{kind: opMove, args: [6]float64{pt.X, pt.Y}}) }
func (p *plan) line(pt geom.Point) { p.ops = append(p.ops, pathOp{kind: opLine, args: [6]float64{pt.X, pt.Y}}) }

func (p *plan) arc(c geom.Point, r, start, end float64, ccw bool) {
	p.ops = append(p.ops, pathOp{kind: opArc, args: [6]float64{c.X, c.Y, r, start, end}, ccw: ccw})
}

func (p *plan) arcTo(seg geom.ArcToSegment) {
	p.ops = append(p.ops, pathOp{kind: opArcTo, args: [6]float64{seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y, seg.Radius}})
}

func (p *plan) curve(c geom.Curve) {
	switch c.Kind {
	case geom.CurveQuadratic:
		p.ops = append(p.ops, pathOp{kind: opQuad, args: [6]float64{
			c.Controls[0].X, c.Controls[0].Y, c.End.X, c.End.Y,
		}})
	case geom.CurveCubic:
		p.ops = append(p.ops, pathOp{kind: opCubic, args: [6]float64{
			c.Controls[0].X, c.Controls[0].Y, c.Controls[1].X, c.Controls[1].Y, c.End.X, c.End.Y,
		}})
	}
}

func (p *plan) rect(x, y, w, h float64) {
	p.ops = append(p.ops, pathOp{kind: opRect, args: [6]float64{x, y, w, h}})
}

// commit hands the current paint state and the plan to the surface and
// paints it: begin-path, primitives, close-path and fill or stroke.
func (s *Session) commit(kind string, p plan, mode DrawMode) error {
	surf := s.surf
	surf.SetStyle(s.style.Clone())
	surf.BeginPath()
	for _, op := range p.ops {
		a := op.args
		switch op.kind {
		case opMove:
			surf.MoveTo(a[0], a[1])
		case opLine:
			surf.LineTo(a[0], a[1])
		case opArc:
			surf.Arc(a[0], a[1], a[2], a[3], a[4], op.ccw)
		case opArcTo:
			surf.ArcTo(a[0], a[1], a[2], a[3], a[4])
		case opQuad:
			surf.QuadraticCurveTo(a[0], a[1], a[2], a[3])
		case opCubic:
			surf.BezierCurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case opRect:
			surf.Rect(a[0], a[1], a[2], a[3])
		}
	}
	if p.closed {
		surf.ClosePath()
	}
	var err error
	if mode == Stroke {
		err = surf.Stroke()
	} else {
		err = surf.Fill()
	}
	if !p.closed {
		surf.ClosePath()
	}
	if err != nil {
		s.log.Warn("shape: surface rejected paint", "shape", kind, "mode", mode, "err", err)
		return fmt.Errorf("shape: %s: %s: %w", kind, mode, err)
	}
	s.log.Debug("shape: created", "shape", kind, "mode", mode, "ops", len(p.ops))
	return nil
}

// finish validates mode, runs build and commits the resulting plan. It
// marks the builder consumed whether or not the surface accepted the paint.
func finish[T any](c *common[T], mode DrawMode, build func() (plan, error)) error {
	if !c.open("Create") {
		return c.err
	}
	if !ValidateEnum(mode, Fill, Stroke) {
		c.fail(invalid(c.op("Create"), "mode", mode.String()))
		return c.err
	}
	p, err := build()
	if err != nil {
		c.fail(err)
		return c.err
	}
	c.consumed = true
	return c.s.commit(c.kind, p, mode)
}
