package raster

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-shape/surface"
)

// applyBrush installs p as the context brush. Gradients and patterns are
// defined in user space, so they are sampled through the inverse of the
// canvas transform current at paint time.
func (c *Canvas) applyBrush(ctx *gg.Context, p surface.Paint) {
	ctx.SetFillBrush(brushFor(p, c.ctm.Invert()))
}

func brushFor(p surface.Paint, inv gg.Matrix) gg.Brush {
	switch p.Kind {
	case surface.PaintGradient:
		if g := gradientBrush(p.Gradient); g != nil {
			return userSpace(g, inv)
		}
		return gg.Solid(gg.Transparent)
	case surface.PaintPattern:
		if p.Pattern == nil || p.Pattern.Image == nil {
			return gg.Solid(gg.Transparent)
		}
		return userSpace(patternBrush(p.Pattern), inv)
	default:
		if p.Color == nil {
			return gg.Solid(gg.Black)
		}
		return gg.Solid(gg.FromColor(p.Color))
	}
}

// userSpace wraps b so that it is sampled at user space coordinates.
func userSpace(b gg.Brush, inv gg.Matrix) gg.Brush {
	if inv.IsIdentity() {
		return b
	}
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		u := inv.TransformPoint(gg.Pt(x, y))
		return b.ColorAt(u.X, u.Y)
	})
}

func gradientBrush(g surface.Gradient) gg.Brush {
	switch g := g.(type) {
	case *surface.LinearGradient:
		b := gg.NewLinearGradientBrush(g.X0, g.Y0, g.X1, g.Y1)
		for _, s := range surface.SortedStops(g.Stops) {
			b.AddColorStop(s.Offset, gg.FromColor(s.Color))
		}
		return b
	case *surface.RadialGradient:
		// gg radial gradients share one center; the inner circle center
		// becomes the focal point.
		b := gg.NewRadialGradientBrush(g.X1, g.Y1, g.R0, g.R1)
		if g.X0 != g.X1 || g.Y0 != g.Y1 {
			b.SetFocus(g.X0, g.Y0)
		}
		for _, s := range surface.SortedStops(g.Stops) {
			b.AddColorStop(s.Offset, gg.FromColor(s.Color))
		}
		return b
	}
	return nil
}

// patternBrush tiles the pattern image from the user space origin.
func patternBrush(p *surface.Pattern) gg.Brush {
	img := clone.AsRGBA(p.Image)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	repeatX := p.Repeat == surface.RepeatBoth || p.Repeat == surface.RepeatX
	repeatY := p.Repeat == surface.RepeatBoth || p.Repeat == surface.RepeatY
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		ix, ok := tile(x, w, repeatX)
		if !ok {
			return gg.Transparent
		}
		iy, ok := tile(y, h, repeatY)
		if !ok {
			return gg.Transparent
		}
		return rgbaAt(img, ix, iy)
	})
}

// tile maps coordinate v onto [0, n). Without repeat, coordinates outside
// the image report false.
func tile(v float64, n int, repeat bool) (int, bool) {
	i := int(math.Floor(v))
	if repeat {
		i %= n
		if i < 0 {
			i += n
		}
		return i, true
	}
	return i, i >= 0 && i < n
}

func rgbaAt(img *image.RGBA, x, y int) gg.RGBA {
	b := img.Bounds()
	return gg.FromColor(img.RGBAAt(b.Min.X+x, b.Min.Y+y))
}
