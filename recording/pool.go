package recording

import (
	"image"
	"slices"

	"github.com/gogpu/gg-shape/surface"
)

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
// Each Add operation clones mutable resources to ensure immutability.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	styles []surface.Style
	images []image.Image
	pixels [][]byte
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		styles: make([]surface.Style, 0, 32),
		images: make([]image.Image, 0, 8),
		pixels: make([][]byte, 0, 4),
	}
}

// AddStyle adds a style to the pool and returns its reference.
// The style is cloned so later changes by the caller do not leak in.
func (p *ResourcePool) AddStyle(st surface.Style) StyleRef {
	p.styles = append(p.styles, st.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return StyleRef(uint32(len(p.styles) - 1))
}

// Style returns the style for the given reference.
// Returns false if the reference is out of range.
func (p *ResourcePool) Style(ref StyleRef) (surface.Style, bool) {
	if int(ref) >= len(p.styles) {
		return surface.Style{}, false
	}
	return p.styles[ref].Clone(), true
}

// AddImage adds an image to the pool and returns its reference.
// Images are stored directly; callers must not mutate them afterwards.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// Image returns the image for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) Image(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// AddPixels adds a copy of a pixel block and returns its reference.
func (p *ResourcePool) AddPixels(pix []byte) PixelsRef {
	p.pixels = append(p.pixels, slices.Clone(pix))
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PixelsRef(uint32(len(p.pixels) - 1))
}

// Pixels returns the pixel block for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) Pixels(ref PixelsRef) []byte {
	if int(ref) >= len(p.pixels) {
		return nil
	}
	return p.pixels[ref]
}

// Counts returns the number of styles, images and pixel blocks in the pool.
func (p *ResourcePool) Counts() (styles, images, pixels int) {
	return len(p.styles), len(p.images), len(p.pixels)
}
