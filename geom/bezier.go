package geom

import (
	"errors"
	"fmt"
)

// CurveKind tells which Bézier primitive a set of control points maps to.
type CurveKind uint8

const (
	// CurveQuadratic is a quadratic Bézier: start, one control, end.
	CurveQuadratic CurveKind = iota + 1
	// CurveCubic is a cubic Bézier: start, two controls, end.
	CurveCubic
)

// String returns the curve kind name.
func (k CurveKind) String() string {
	switch k {
	case CurveQuadratic:
		return "quadratic"
	case CurveCubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// ErrControlCount is returned by DispatchCurve for control point counts other
// than one or two.
var ErrControlCount = errors.New("geom: curve needs one or two control points")

// Curve is a Bézier segment ready to be emitted after a move to Start.
type Curve struct {
	Kind     CurveKind
	Start    Point
	Controls []Point
	End      Point
}

// DispatchCurve selects the Bézier primitive for the number of control
// points: one gives a quadratic curve, two a cubic curve.
func DispatchCurve(start, end Point, controls ...Point) (Curve, error) {
	c := Curve{Start: start, End: end, Controls: append([]Point(nil), controls...)}
	switch len(controls) {
	case 1:
		c.Kind = CurveQuadratic
	case 2:
		c.Kind = CurveCubic
	default:
		return Curve{}, fmt.Errorf("%w: got %d", ErrControlCount, len(controls))
	}
	return c, nil
}
