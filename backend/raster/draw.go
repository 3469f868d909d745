package raster

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-shape/internal/composite"
	"github.com/gogpu/gg-shape/internal/effect"
	"github.com/gogpu/gg-shape/surface"
)

// renderFunc draws one shape onto ctx. The context transform is already
// set to the canvas transform.
type renderFunc func(ctx *gg.Context) error

// Fill implements surface.Surface.
func (c *Canvas) Fill() error {
	p := c.path.Clone()
	return c.draw(func(ctx *gg.Context) error {
		c.applyBrush(ctx, c.style.Fill)
		ctx.SetFillRule(gg.FillRuleNonZero)
		ctx.SetPath(p)
		return ctx.Fill()
	})
}

// Stroke implements surface.Surface.
func (c *Canvas) Stroke() error {
	p := c.path.Clone()
	return c.draw(func(ctx *gg.Context) error {
		c.applyBrush(ctx, c.style.Stroke)
		c.applyLine(ctx)
		ctx.SetPath(p)
		return ctx.Stroke()
	})
}

// Clip implements surface.Surface.
func (c *Canvas) Clip() {
	p := c.path.Clone()
	c.ctx.SetTransform(gg.Identity())
	c.ctx.SetPath(p)
	c.ctx.Clip()
	c.clips = append(c.clips, p)
	c.clipMask = nil
}

// draw renders fn onto the canvas honoring the shadow and composite
// operation of the current style.
func (c *Canvas) draw(fn renderFunc) error {
	st := c.style
	if !st.Shadow.Visible() && st.Composite == surface.SourceOver {
		c.ctx.SetTransform(c.ctm)
		err := fn(c.ctx)
		c.ctx.SetTransform(gg.Identity())
		return err
	}

	layer := c.scratch()
	layer.SetTransform(c.ctm)
	err := fn(layer)
	layer.SetTransform(gg.Identity())
	if err != nil {
		return err
	}

	src := layer.ResizeTarget().Data()
	dst := c.pm.Data()
	coverage := c.coverage()
	if sh := effect.DropShadow(src, c.width, c.height, st.Shadow); sh != nil {
		composite.Apply(dst, sh, st.Composite, coverage)
	}
	composite.Apply(dst, src, st.Composite, coverage)
	c.pm.NotifyPixelsChanged()
	return nil
}

// scratch returns the cleared offscreen layer.
func (c *Canvas) scratch() *gg.Context {
	if c.layer == nil {
		c.layer = gg.NewContext(c.width, c.height)
	}
	c.layer.Clear()
	return c.layer
}

// coverage returns the clip region as one alpha byte per pixel, or nil
// when nothing is clipped.
func (c *Canvas) coverage() []byte {
	if len(c.clips) == 0 {
		return nil
	}
	if c.clipMask != nil {
		return c.clipMask
	}
	mask := gg.NewContext(c.width, c.height)
	defer mask.Close()
	for _, p := range c.clips {
		mask.SetPath(p)
		mask.Clip()
	}
	mask.SetFillBrush(gg.Solid(gg.White))
	mask.DrawRectangle(0, 0, float64(c.width), float64(c.height))
	_ = mask.Fill()

	pix := mask.ResizeTarget().Data()
	c.clipMask = make([]byte, c.width*c.height)
	for i := range c.clipMask {
		c.clipMask[i] = pix[4*i+3]
	}
	return c.clipMask
}

func (c *Canvas) applyLine(ctx *gg.Context) {
	st := c.style
	ctx.SetLineWidth(st.LineWidth)
	ctx.SetMiterLimit(st.MiterLimit)
	switch st.LineCap {
	case surface.LineCapRound:
		ctx.SetLineCap(gg.LineCapRound)
	case surface.LineCapSquare:
		ctx.SetLineCap(gg.LineCapSquare)
	default:
		ctx.SetLineCap(gg.LineCapButt)
	}
	switch st.LineJoin {
	case surface.LineJoinRound:
		ctx.SetLineJoin(gg.LineJoinRound)
	case surface.LineJoinBevel:
		ctx.SetLineJoin(gg.LineJoinBevel)
	default:
		ctx.SetLineJoin(gg.LineJoinMiter)
	}

	dash := st.Dash
	if len(dash) == 0 {
		ctx.ClearDash()
		return
	}
	// An odd dash list is repeated to make it even.
	if len(dash)%2 == 1 {
		dash = append(append([]float64(nil), dash...), dash...)
	}
	ctx.SetDash(dash...)
	ctx.SetDashOffset(st.DashOffset)
}
