package raster

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-shape/geom"
)

// device maps a user space point through the current transform.
func (c *Canvas) device(x, y float64) geom.Point {
	p := c.ctm.TransformPoint(gg.Pt(x, y))
	return geom.Pt(p.X, p.Y)
}

// user maps a device point back to user space.
func (c *Canvas) user(p geom.Point) geom.Point {
	q := c.ctm.Invert().TransformPoint(gg.Pt(p.X, p.Y))
	return geom.Pt(q.X, q.Y)
}

// BeginPath implements surface.Surface.
func (c *Canvas) BeginPath() {
	c.path = gg.NewPath()
	c.hasCur = false
}

// MoveTo implements surface.Surface.
func (c *Canvas) MoveTo(x, y float64) {
	c.moveDevice(c.device(x, y))
}

func (c *Canvas) moveDevice(p geom.Point) {
	c.path.MoveTo(p.X, p.Y)
	c.cur, c.start, c.hasCur = p, p, true
}

// LineTo implements surface.Surface.
func (c *Canvas) LineTo(x, y float64) {
	c.lineDevice(c.device(x, y))
}

func (c *Canvas) lineDevice(p geom.Point) {
	if !c.hasCur {
		c.moveDevice(p)
		return
	}
	c.path.LineTo(p.X, p.Y)
	c.cur = p
}

// ClosePath implements surface.Surface.
func (c *Canvas) ClosePath() {
	if !c.hasCur {
		return
	}
	c.path.Close()
	c.cur = c.start
}

// QuadraticCurveTo implements surface.Surface.
func (c *Canvas) QuadraticCurveTo(cx, cy, x, y float64) {
	cp := c.device(cx, cy)
	if !c.hasCur {
		c.moveDevice(cp)
	}
	p := c.device(x, y)
	c.path.QuadraticTo(cp.X, cp.Y, p.X, p.Y)
	c.cur = p
}

// BezierCurveTo implements surface.Surface.
func (c *Canvas) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c1 := c.device(c1x, c1y)
	if !c.hasCur {
		c.moveDevice(c1)
	}
	c2 := c.device(c2x, c2y)
	p := c.device(x, y)
	c.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
	c.cur = p
}

// Rect implements surface.Surface.
func (c *Canvas) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
	// A new subpath starts at the rectangle origin.
	c.MoveTo(x, y)
}

// Arc implements surface.Surface.
func (c *Canvas) Arc(cx, cy, r, start, end float64, anticlockwise bool) {
	start, end = geom.NormalizeArc(start, end, anticlockwise)
	c.arc(geom.Pt(cx, cy), r, start, end)
}

// arc joins the current point to the arc start with a line and appends the
// arc. Angles must already be normalized.
func (c *Canvas) arc(center geom.Point, r, start, end float64) {
	first := geom.ArcPoint(center, r, start)
	c.LineTo(first.X, first.Y)
	for _, seg := range geom.ArcCubics(center, r, start, end) {
		c1 := c.device(seg.C1.X, seg.C1.Y)
		c2 := c.device(seg.C2.X, seg.C2.Y)
		p := c.device(seg.P1.X, seg.P1.Y)
		c.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		c.cur = p
	}
}

// ArcTo implements surface.Surface.
func (c *Canvas) ArcTo(x1, y1, x2, y2, r float64) {
	if !c.hasCur {
		c.MoveTo(x1, y1)
		return
	}
	p0 := c.user(c.cur)
	ta := geom.SolveArcTo(p0, geom.Pt(x1, y1), geom.Pt(x2, y2), r)
	if ta.Degenerate {
		c.LineTo(x1, y1)
		return
	}
	c.arc(ta.Center, ta.Radius, ta.Start, ta.End)
}
