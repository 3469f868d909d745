package raster

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-shape/internal/composite"
	"github.com/gogpu/gg-shape/surface"
)

// ImageData implements surface.Surface.
func (c *Canvas) ImageData(r image.Rectangle) []byte {
	r = r.Canon()
	n, ok := surface.PixelBytes(r.Dx(), r.Dy())
	if !ok {
		return nil
	}
	out := make([]byte, n)
	in := r.Intersect(image.Rect(0, 0, c.width, c.height))
	if in.Empty() {
		return out
	}
	data := c.pm.Data()
	rowLen := 4 * in.Dx()
	for y := in.Min.Y; y < in.Max.Y; y++ {
		src := 4 * (y*c.width + in.Min.X)
		dst := 4 * ((y-r.Min.Y)*r.Dx() + (in.Min.X - r.Min.X))
		copy(out[dst:dst+rowLen], data[src:src+rowLen])
	}
	composite.Unpremultiply(out)
	return out
}

// PutImageData implements surface.Surface.
func (c *Canvas) PutImageData(pix []byte, width, height, dx, dy int) {
	n, ok := surface.PixelBytes(width, height)
	if !ok || len(pix) < n || dx > math.MaxInt-width || dy > math.MaxInt-height {
		return
	}
	target := image.Rect(dx, dy, dx+width, dy+height).Intersect(image.Rect(0, 0, c.width, c.height))
	if target.Empty() {
		return
	}
	data := c.pm.Data()
	rowLen := 4 * target.Dx()
	for y := target.Min.Y; y < target.Max.Y; y++ {
		src := 4 * ((y-dy)*width + (target.Min.X - dx))
		dst := 4 * (y*c.width + target.Min.X)
		row := data[dst : dst+rowLen]
		copy(row, pix[src:src+rowLen])
		composite.Premultiply(row)
	}
	c.pm.NotifyPixelsChanged()
}

// DrawImage implements surface.ImageSurface.
func (c *Canvas) DrawImage(img image.Image, src image.Rectangle, dst surface.Rect) error {
	b := img.Bounds()
	if src.Empty() {
		src = b
	}
	// gg image buffers start at the origin.
	src = src.Intersect(b).Sub(b.Min)
	if src.Empty() || dst.W == 0 || dst.H == 0 {
		return nil
	}
	buf := gg.ImageBufFromImage(img)
	opts := gg.DrawImageOptions{
		X:         dst.X,
		Y:         dst.Y,
		DstWidth:  dst.W,
		DstHeight: dst.H,
		SrcRect:   &src,
	}
	return c.draw(func(ctx *gg.Context) error {
		ctx.DrawImageEx(buf, opts)
		return nil
	})
}
