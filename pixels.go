package shape

import (
	"image"
	"math"
	"strconv"

	"github.com/gogpu/gg-shape/surface"
)

// PixelRegion is a rectangle of non-premultiplied RGBA pixels, four bytes
// per pixel, row-major. Regions are issued by a PixelBuffer; only regions
// issued by the same session's buffer can be put back.
type PixelRegion struct {
	// X and Y are where the region was captured from; zero for allocated
	// regions.
	X, Y          int
	Width, Height int
	Pix           []byte

	issuer *PixelBuffer
}

// Bounds returns the region's extent in its own coordinates.
func (r *PixelRegion) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// Image returns the region as an *image.NRGBA sharing its pixels.
func (r *PixelRegion) Image() *image.NRGBA {
	return &image.NRGBA{Pix: r.Pix, Stride: 4 * r.Width, Rect: r.Bounds()}
}

// PixelBuffer captures and writes rectangular pixel regions of the
// session's surface.
type PixelBuffer struct {
	s *Session
}

func checkDims(op string, w, h int) error {
	size := strconv.Itoa(w) + "x" + strconv.Itoa(h)
	if w <= 0 || h <= 0 {
		return invalid(op, "size", size+" is empty")
	}
	if _, ok := surface.PixelBytes(w, h); !ok {
		return invalid(op, "size", size+" exceeds "+strconv.Itoa(surface.MaxPixels)+" pixels")
	}
	return nil
}

// Capture reads the w×h region at (x, y). Parts outside the surface read
// as transparent black.
func (p *PixelBuffer) Capture(x, y, w, h int) (*PixelRegion, error) {
	if err := checkDims("pixels.Capture", w, h); err != nil {
		return nil, err
	}
	if x > math.MaxInt-w || y > math.MaxInt-h {
		return nil, invalid("pixels.Capture", "position", "region extends past the coordinate range")
	}
	pix := p.s.surf.ImageData(image.Rect(x, y, x+w, y+h))
	p.s.log.Debug("shape: pixels captured", "x", x, "y", y, "w", w, "h", h)
	return &PixelRegion{X: x, Y: y, Width: w, Height: h, Pix: pix, issuer: p}, nil
}

// Allocate returns a transparent w×h region.
func (p *PixelBuffer) Allocate(w, h int) (*PixelRegion, error) {
	if err := checkDims("pixels.Allocate", w, h); err != nil {
		return nil, err
	}
	return &PixelRegion{Width: w, Height: h, Pix: make([]byte, 4*w*h), issuer: p}, nil
}

// Put writes r with its top-left corner at (dx, dy). With a dirty
// rectangle, given in region coordinates, only that part of the region is
// written, still relative to (dx, dy). A region may be put any number of
// times.
func (p *PixelBuffer) Put(r *PixelRegion, dx, dy int, dirty ...image.Rectangle) error {
	if r == nil || r.issuer != p {
		return &StateError{Op: "pixels.Put", Err: ErrForeignRegion}
	}
	if n, ok := surface.PixelBytes(r.Width, r.Height); !ok || len(r.Pix) != n {
		return invalid("pixels.Put", "region", "pixel slice does not match its size")
	}
	if len(dirty) > 1 {
		return invalid("pixels.Put", "dirty", "at most one dirty rectangle")
	}
	area := r.Bounds()
	if len(dirty) == 1 {
		area = dirty[0].Canon().Intersect(area)
		if area.Empty() {
			return nil
		}
	}
	if area == r.Bounds() {
		p.s.surf.PutImageData(r.Pix, r.Width, r.Height, dx, dy)
		return nil
	}
	sub := make([]byte, 0, 4*area.Dx()*area.Dy())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		row := 4 * (y*r.Width + area.Min.X)
		sub = append(sub, r.Pix[row:row+4*area.Dx()]...)
	}
	p.s.surf.PutImageData(sub, area.Dx(), area.Dy(), dx+area.Min.X, dy+area.Min.Y)
	return nil
}
