package raster

import (
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/gg-shape/geom"
	"github.com/gogpu/gg-shape/internal/fontmatch"
	"github.com/gogpu/gg-shape/surface"
)

// BackendName is the registry name of this backend.
const BackendName = "raster"

// FontResolver maps a font description to a face.
type FontResolver interface {
	Face(f surface.Font) (text.Face, error)
}

// Canvas is a surface.Surface drawing into a gg pixmap.
//
// Canvas is NOT thread-safe.
type Canvas struct {
	width, height int

	pm  *gg.Pixmap
	ctx *gg.Context
	log *slog.Logger

	fonts    FontResolver
	fontOpts []fontmatch.Option

	path   *gg.Path
	cur    geom.Point
	start  geom.Point
	hasCur bool

	ctm   gg.Matrix
	style surface.Style

	clips    []*gg.Path
	clipMask []byte

	layer *gg.Context
}

var (
	_ surface.TextSurface  = (*Canvas)(nil)
	_ surface.ImageSurface = (*Canvas)(nil)
)

// Option configures a Canvas.
type Option func(*Canvas)

// WithLogger sets the logger for the canvas. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Canvas) {
		if l != nil {
			c.log = l
		}
	}
}

// WithFontResolver sets how text fonts are resolved. The default resolver
// uses the system fonts with the Go fonts as fallback.
func WithFontResolver(r FontResolver) Option {
	return func(c *Canvas) { c.fonts = r }
}

// WithFontOptions passes options to the default font resolver.
func WithFontOptions(opts ...fontmatch.Option) Option {
	return func(c *Canvas) { c.fontOpts = append(c.fontOpts, opts...) }
}

func init() {
	surface.Register(BackendName, 10, func(o surface.Options) (surface.Surface, error) {
		return New(o.Width, o.Height)
	})
}

// New creates a transparent canvas of the given size.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if _, ok := surface.PixelBytes(width, height); !ok {
		return nil, &surface.InvalidSizeError{Width: width, Height: height}
	}
	pm := gg.NewPixmap(width, height)
	c := &Canvas{
		width:  width,
		height: height,
		pm:     pm,
		ctx:    gg.NewContext(width, height, gg.WithPixmap(pm)),
		log:    slog.New(slog.DiscardHandler),
		path:   gg.NewPath(),
		ctm:    gg.Identity(),
		style:  surface.DefaultStyle(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log.Debug("raster: canvas created", "width", width, "height", height)
	return c, nil
}

// Width implements surface.Surface.
func (c *Canvas) Width() int { return c.width }

// Height implements surface.Surface.
func (c *Canvas) Height() int { return c.height }

// Pixmap returns the pixel storage. Pixels are premultiplied RGBA.
func (c *Canvas) Pixmap() *gg.Pixmap { return c.pm }

// Image returns a snapshot of the canvas.
func (c *Canvas) Image() image.Image {
	return c.pm.ToImage()
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.pm.EncodePNG(w)
}

// Close releases the gg contexts.
func (c *Canvas) Close() error {
	if c.layer != nil {
		_ = c.layer.Close()
		c.layer = nil
	}
	return c.ctx.Close()
}

// SetStyle implements surface.Surface.
func (c *Canvas) SetStyle(st surface.Style) {
	c.style = st.Clone()
}

// Translate implements surface.Surface.
func (c *Canvas) Translate(x, y float64) {
	c.ctm = c.ctm.Multiply(gg.Translate(x, y))
}

// Rotate implements surface.Surface.
func (c *Canvas) Rotate(angle float64) {
	c.ctm = c.ctm.Multiply(gg.Rotate(angle))
}

// Scale implements surface.Surface.
func (c *Canvas) Scale(x, y float64) {
	c.ctm = c.ctm.Multiply(gg.Scale(x, y))
}

// Reset implements surface.Surface.
func (c *Canvas) Reset() {
	c.pm.Clear(gg.Transparent)
	c.pm.NotifyPixelsChanged()
	c.BeginPath()
	c.ctm = gg.Identity()
	c.ctx.ResetClip()
	c.clips = nil
	c.clipMask = nil
}
