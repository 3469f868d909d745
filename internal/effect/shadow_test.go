package effect

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg-shape/surface"
)

// square returns a w×h premultiplied layer with an opaque white s×s square
// at (x, y).
func square(w, h, x, y, s int) []byte {
	pix := make([]byte, 4*w*h)
	for j := y; j < y+s; j++ {
		for i := x; i < x+s; i++ {
			o := 4 * (j*w + i)
			pix[o], pix[o+1], pix[o+2], pix[o+3] = 255, 255, 255, 255
		}
	}
	return pix
}

func alphaAt(pix []byte, w, x, y int) byte { return pix[4*(y*w+x)+3] }

func TestDropShadowOffsetWithoutBlur(t *testing.T) {
	const w, h = 20, 20
	layer := square(w, h, 2, 2, 4)
	sh := surface.Shadow{OffsetX: 5, OffsetY: 3, Color: color.NRGBA{R: 255, A: 255}}

	out := DropShadow(layer, w, h, sh)
	if out == nil {
		t.Fatal("DropShadow returned nil")
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inside := x >= 7 && x < 11 && y >= 5 && y < 9
			a := alphaAt(out, w, x, y)
			if inside && a != 255 {
				t.Fatalf("alpha at (%d,%d) = %d, want 255", x, y, a)
			}
			if !inside && a != 0 {
				t.Fatalf("alpha at (%d,%d) = %d, want 0", x, y, a)
			}
		}
	}
	if o := 4 * (6*w + 8); out[o] != 255 || out[o+1] != 0 || out[o+2] != 0 {
		t.Errorf("shadow color = %v, want red", out[o:o+4])
	}
}

func TestDropShadowTranslucentColor(t *testing.T) {
	const w, h = 8, 8
	layer := square(w, h, 0, 0, 2)
	sh := surface.Shadow{OffsetX: 1, OffsetY: 1, Color: color.NRGBA{R: 255, A: 128}}
	out := DropShadow(layer, w, h, sh)
	o := 4 * (1*w + 1)
	if out[o+3] != 128 || out[o] != 128 {
		t.Errorf("pixel = %v, want premultiplied half red", out[o:o+4])
	}
}

func TestDropShadowBlurSpreads(t *testing.T) {
	const w, h = 40, 40
	layer := square(w, h, 10, 10, 20)
	sh := surface.Shadow{Blur: 8, Color: color.Black}

	out := DropShadow(layer, w, h, sh)
	if out == nil {
		t.Fatal("DropShadow returned nil")
	}
	if a := alphaAt(out, w, 20, 20); a < 200 {
		t.Errorf("center alpha = %d, want mostly opaque", a)
	}
	if a := alphaAt(out, w, 8, 20); a == 0 {
		t.Error("blur did not spread past the edge")
	}
	if a := alphaAt(out, w, 10, 20); a == 255 {
		t.Error("edge alpha not softened")
	}
}

func TestDropShadowInvisible(t *testing.T) {
	layer := square(4, 4, 0, 0, 4)
	tests := []struct {
		name string
		sh   surface.Shadow
	}{
		{"zero", surface.Shadow{}},
		{"no offset or blur", surface.Shadow{Color: color.Black}},
		{"transparent color", surface.Shadow{Blur: 2, Color: color.Transparent}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := DropShadow(layer, 4, 4, tt.sh); out != nil {
				t.Error("expected nil shadow")
			}
		})
	}

	// Offset fully out of the layer.
	sh := surface.Shadow{OffsetX: 10, Color: color.Black}
	if out := DropShadow(layer, 4, 4, sh); out != nil {
		t.Error("shadow moved off the layer should be nil")
	}
}
