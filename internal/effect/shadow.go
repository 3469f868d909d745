// Package effect renders drop shadows for shape layers.
//
// A shape is first rasterized alone into a premultiplied RGBA layer. The
// shadow is derived from that layer's alpha channel:
//
//  1. Extract alpha, shifted by the shadow offset
//  2. Gaussian blur the alpha
//  3. Colorize with the shadow color
//
// The caller composites the shadow and then the layer itself onto the
// surface.
package effect

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"

	"github.com/gogpu/gg-shape/surface"
)

// DropShadow returns the shadow of layer, a premultiplied RGBA buffer of
// w×h pixels, as a new premultiplied buffer of the same size. It returns
// nil when the shadow is invisible or the layer is empty.
func DropShadow(layer []byte, w, h int, sh surface.Shadow) []byte {
	if !sh.Visible() || w <= 0 || h <= 0 || len(layer) < 4*w*h {
		return nil
	}
	alpha := extractAlpha(layer, w, h, int(math.Round(sh.OffsetX)), int(math.Round(sh.OffsetY)))
	if alpha == nil {
		return nil
	}
	if sh.Blur > 0 {
		alpha = blurAlpha(alpha, sh.Blur)
	}
	return colorize(alpha, sh.Color)
}

// extractAlpha copies the alpha channel of layer into an image, moved by
// (dx, dy). Alpha shifted in from outside the layer is zero. It returns
// nil if nothing of the layer remains visible.
func extractAlpha(layer []byte, w, h, dx, dy int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	visible := false
	for y := 0; y < h; y++ {
		sy := y - dy
		if sy < 0 || sy >= h {
			continue
		}
		for x := 0; x < w; x++ {
			sx := x - dx
			if sx < 0 || sx >= w {
				continue
			}
			a := layer[4*(sy*w+sx)+3]
			if a != 0 {
				// Black at alpha a is a valid premultiplied pixel.
				img.Pix[4*(y*w+x)+3] = a
				visible = true
			}
		}
	}
	if !visible {
		return nil
	}
	return img
}

// blurAlpha applies a Gaussian blur for a canvas shadowBlur value. Canvas
// blurs with a standard deviation of half the blur value; bild's kernel
// exp(-x²/4r) has a variance of 2r.
func blurAlpha(img *image.RGBA, shadowBlur float64) *image.RGBA {
	sigma := shadowBlur / 2
	radius := max(sigma*sigma/2, 1)
	return blur.Gaussian(img, radius)
}

// colorize turns the blurred alpha mask into a premultiplied shadow layer.
func colorize(mask *image.RGBA, c color.Color) []byte {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	out := make([]byte, len(mask.Pix))
	for i := 0; i+3 < len(mask.Pix); i += 4 {
		a := mulDiv255(mask.Pix[i+3], n.A)
		if a == 0 {
			continue
		}
		out[i] = mulDiv255(n.R, a)
		out[i+1] = mulDiv255(n.G, a)
		out[i+2] = mulDiv255(n.B, a)
		out[i+3] = a
	}
	return out
}

func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}
