package shape

import (
	"context"
	"image"

	"github.com/gogpu/gg-shape/surface"
)

// ImageBuilder draws images and moves pixel regions. Drawing needs a
// surface that implements surface.ImageSurface.
type ImageBuilder struct {
	common[*ImageBuilder]
	img     image.Image
	pos     optPoint
	size    optSize
	srcPos  optPoint
	srcSize optSize
}

// Make starts a new image operation.
func (b *ImageBuilder) Make() *ImageBuilder {
	b.begin()
	*b = ImageBuilder{common: b.common}
	return b
}

// Src loads the image at uri, blocking until it is loaded, the session's
// load timeout expires or ctx is done. Use Session.Fetch and SrcImage to
// load without blocking.
func (b *ImageBuilder) Src(ctx context.Context, uri string) *ImageBuilder {
	if !b.open("Src") {
		return b
	}
	img, err := b.s.load(ctx, uri)
	if err != nil {
		return b.fail(err)
	}
	b.img = img
	return b
}

// SrcImage sets an already decoded image.
func (b *ImageBuilder) SrcImage(img image.Image) *ImageBuilder {
	if !b.open("SrcImage") {
		return b
	}
	if img == nil || img.Bounds().Empty() {
		return b.fail(invalid(b.op("SrcImage"), "image", "must be a non-empty image"))
	}
	b.img = img
	return b
}

// Position sets the destination top-left corner, and the origin of Get.
func (b *ImageBuilder) Position(x, y float64) *ImageBuilder {
	if b.open("Position") && b.check(checkNumeric(b.op("Position"), "position", x, y)) {
		b.pos.set(x, y)
	}
	return b
}

// Size sets the destination size, and the size of Get and Open.
func (b *ImageBuilder) Size(w, h float64) *ImageBuilder {
	if b.open("Size") && b.check(checkNonNegative(b.op("Size"), "size", w, h)) {
		b.size.set(w, h)
	}
	return b
}

// SourcePosition sets the top-left corner of the source rectangle.
func (b *ImageBuilder) SourcePosition(x, y float64) *ImageBuilder {
	if b.open("SourcePosition") && b.check(checkNonNegative(b.op("SourcePosition"), "sourcePosition", x, y)) {
		b.srcPos.set(x, y)
	}
	return b
}

// SourceSize sets the size of the source rectangle.
func (b *ImageBuilder) SourceSize(w, h float64) *ImageBuilder {
	if b.open("SourceSize") && b.check(checkNonNegative(b.op("SourceSize"), "sourceSize", w, h)) {
		b.srcSize.set(w, h)
	}
	return b
}

// Draw draws the image. With a source rectangle the cropped part is scaled
// into the destination; otherwise the whole image is drawn at Position,
// scaled to Size when one was given.
func (b *ImageBuilder) Draw() error {
	if !b.open("Draw") {
		return b.err
	}
	if err := required(b.kind, req{"image", b.img != nil}, req{"position", b.pos.ok}); err != nil {
		b.fail(err)
		return b.err
	}
	is, ok := b.s.surf.(surface.ImageSurface)
	if !ok {
		b.fail(&StateError{Op: b.op("Draw"), Err: ErrUnsupported})
		return b.err
	}

	bounds := b.img.Bounds()
	var src image.Rectangle
	dst := surface.Rect{X: b.pos.X, Y: b.pos.Y, W: float64(bounds.Dx()), H: float64(bounds.Dy())}
	if b.srcPos.ok && b.srcSize.ok {
		origin := bounds.Min.Add(image.Pt(int(b.srcPos.X), int(b.srcPos.Y)))
		src = image.Rectangle{Min: origin, Max: origin.Add(image.Pt(int(b.srcSize.w), int(b.srcSize.h)))}.Intersect(bounds)
		if src.Empty() {
			b.fail(&GeometryError{Shape: b.kind, Reason: "source rectangle outside the image", Err: ErrIncomplete})
			return b.err
		}
		dst.W, dst.H = float64(src.Dx()), float64(src.Dy())
	}
	if b.size.ok {
		dst.W, dst.H = b.size.w, b.size.h
	}

	b.consumed = true
	b.s.surf.SetStyle(b.s.style.Clone())
	if err := is.DrawImage(b.img, src, dst); err != nil {
		b.s.log.Warn("shape: image rejected", "err", err)
		return err
	}
	b.s.log.Debug("shape: image drawn", "src", src, "dst", dst)
	return nil
}

// Get captures the region at Position of Size.
func (b *ImageBuilder) Get() (*PixelRegion, error) {
	if !b.live("Get") {
		return nil, b.err
	}
	if err := required(b.kind, req{"position", b.pos.ok}, req{"size", b.size.ok}); err != nil {
		b.fail(err)
		return nil, b.err
	}
	return b.s.pixels.Capture(int(b.pos.X), int(b.pos.Y), int(b.size.w), int(b.size.h))
}

// Open allocates a transparent region of Size.
func (b *ImageBuilder) Open() (*PixelRegion, error) {
	if !b.live("Open") {
		return nil, b.err
	}
	if err := required(b.kind, req{"size", b.size.ok}); err != nil {
		b.fail(err)
		return nil, b.err
	}
	return b.s.pixels.Allocate(int(b.size.w), int(b.size.h))
}

// Put writes a region obtained from Get or Open back at (x, y), limited to
// dirty when given.
func (b *ImageBuilder) Put(r *PixelRegion, x, y int, dirty ...image.Rectangle) error {
	if !b.live("Put") {
		return b.err
	}
	return b.s.pixels.Put(r, x, y, dirty...)
}
