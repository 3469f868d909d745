package shape

import (
	"context"
	"image"
	"log/slog"
	"sync"

	"github.com/gogpu/gg-shape/loader"
	"github.com/gogpu/gg-shape/surface"
)

// Re-exported surface types, so most callers only import this package.
type (
	Style        = surface.Style
	ColorStop    = surface.ColorStop
	Shadow       = surface.Shadow
	CompositeOp  = surface.CompositeOp
	LineCap      = surface.LineCap
	LineJoin     = surface.LineJoin
	Repeat       = surface.Repeat
	TextAlign    = surface.TextAlign
	TextBaseline = surface.TextBaseline
	FontStyle    = surface.FontStyle
	FontVariant  = surface.FontVariant
)

// Session is one drawing session on a surface: the paint state shared by
// all shapes plus one builder per shape kind.
//
// A Session is single-threaded. Use one Session per logical caller; two
// sessions on the same surface do not share configuration, only pixels.
type Session struct {
	surf   surface.Surface
	style  surface.Style
	gen    uint64
	log    *slog.Logger
	opts   sessionOptions
	frames *FrameMeter

	loaderOnce sync.Once
	loader     *loader.Loader

	rect          *RectBuilder
	roundRect     *RoundRectBuilder
	arc           *ArcBuilder
	line          *LineBuilder
	curve         *CurveBuilder
	triangle      *TriangleBuilder
	polygon       *PolygonBuilder
	trapezium     *TrapeziumBuilder
	parallelogram *ParallelogramBuilder
	star          *StarBuilder
	grid          *GridBuilder
	text          *TextBuilder
	image         *ImageBuilder
	pixels        *PixelBuffer
}

// NewSession creates a Session drawing on surf.
func NewSession(surf surface.Surface, opts ...SessionOption) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	s := &Session{
		surf:   surf,
		style:  surface.DefaultStyle(),
		log:    o.logger,
		opts:   o,
		frames: NewFrameMeter(o.clock),
		loader: o.loader,
	}
	s.pixels = &PixelBuffer{s: s}
	return s
}

// Surface returns the surface the session draws on.
func (s *Session) Surface() surface.Surface { return s.surf }

// Style returns a copy of the current paint state.
func (s *Session) Style() surface.Style { return s.style.Clone() }

// Clean clears the whole surface, drops its clip and transform, and restores
// the default paint state including the composite operation.
func (s *Session) Clean() {
	s.surf.Reset()
	s.style = surface.DefaultStyle()
	s.log.Debug("shape: surface cleaned")
}

// Frames returns the session's frame meter.
func (s *Session) Frames() *FrameMeter { return s.frames }

// Pixels returns the session's pixel buffer.
func (s *Session) Pixels() *PixelBuffer { return s.pixels }

// Coordinate returns the coordinate-frame helper for the surface.
func (s *Session) Coordinate() Coordinate { return Coordinate{s: s} }

// Rect returns the rectangle builder.
func (s *Session) Rect() *RectBuilder {
	if s.rect == nil {
		s.rect = &RectBuilder{}
		s.rect.common = newCommon(s, "rect", s.rect)
	}
	return s.rect
}

// RoundRect returns the rounded-rectangle builder.
func (s *Session) RoundRect() *RoundRectBuilder {
	if s.roundRect == nil {
		s.roundRect = &RoundRectBuilder{}
		s.roundRect.common = newCommon(s, "roundRect", s.roundRect)
	}
	return s.roundRect
}

// Arc returns the arc builder.
func (s *Session) Arc() *ArcBuilder {
	if s.arc == nil {
		s.arc = &ArcBuilder{}
		s.arc.common = newCommon(s, "arc", s.arc)
	}
	return s.arc
}

// Line returns the line builder.
func (s *Session) Line() *LineBuilder {
	if s.line == nil {
		s.line = &LineBuilder{}
		s.line.common = newCommon(s, "line", s.line)
	}
	return s.line
}

// Curve returns the Bézier curve builder.
func (s *Session) Curve() *CurveBuilder {
	if s.curve == nil {
		s.curve = &CurveBuilder{}
		s.curve.common = newCommon(s, "curve", s.curve)
	}
	return s.curve
}

// Triangle returns the triangle builder.
func (s *Session) Triangle() *TriangleBuilder {
	if s.triangle == nil {
		s.triangle = &TriangleBuilder{}
		s.triangle.common = newCommon(s, "triangle", s.triangle)
	}
	return s.triangle
}

// Polygon returns the regular-polygon builder.
func (s *Session) Polygon() *PolygonBuilder {
	if s.polygon == nil {
		s.polygon = &PolygonBuilder{}
		s.polygon.common = newCommon(s, "polygon", s.polygon)
	}
	return s.polygon
}

// Trapezium returns the trapezium builder.
func (s *Session) Trapezium() *TrapeziumBuilder {
	if s.trapezium == nil {
		s.trapezium = &TrapeziumBuilder{}
		s.trapezium.common = newCommon(s, "trapezium", s.trapezium)
	}
	return s.trapezium
}

// Parallelogram returns the parallelogram builder.
func (s *Session) Parallelogram() *ParallelogramBuilder {
	if s.parallelogram == nil {
		s.parallelogram = &ParallelogramBuilder{}
		s.parallelogram.common = newCommon(s, "parallelogram", s.parallelogram)
	}
	return s.parallelogram
}

// Star returns the star builder.
func (s *Session) Star() *StarBuilder {
	if s.star == nil {
		s.star = &StarBuilder{}
		s.star.common = newCommon(s, "star", s.star)
	}
	return s.star
}

// Grid returns the grid builder.
func (s *Session) Grid() *GridBuilder {
	if s.grid == nil {
		s.grid = &GridBuilder{}
		s.grid.common = newCommon(s, "grid", s.grid)
	}
	return s.grid
}

// Text returns the text builder.
func (s *Session) Text() *TextBuilder {
	if s.text == nil {
		s.text = &TextBuilder{}
		s.text.common = newCommon(s, "text", s.text)
	}
	return s.text
}

// Image returns the image builder.
func (s *Session) Image() *ImageBuilder {
	if s.image == nil {
		s.image = &ImageBuilder{}
		s.image.common = newCommon(s, "image", s.image)
	}
	return s.image
}

// Fetch starts loading an image source in the background. The returned
// future is bounded by the session's load timeout and can be cancelled.
func (s *Session) Fetch(ctx context.Context, uri string) *loader.Future {
	return s.imageLoader().Start(ctx, uri)
}

func (s *Session) imageLoader() *loader.Loader {
	s.loaderOnce.Do(func() {
		if s.loader == nil {
			s.loader = loader.New(loader.WithLogger(s.log))
		}
	})
	return s.loader
}

// load blocks until uri is loaded, the session timeout expires or ctx is
// done. Failures are returned as *ResourceError.
func (s *Session) load(ctx context.Context, uri string) (image.Image, error) {
	if s.opts.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.loadTimeout)
		defer cancel()
	}
	f := s.imageLoader().Start(ctx, uri)
	defer f.Cancel()
	im, err := f.Wait(ctx)
	if err != nil {
		s.log.Warn("shape: image load failed", "uri", uri, "err", err)
		return nil, &ResourceError{URI: uri, Err: err}
	}
	s.log.Debug("shape: image loaded", "uri", uri, "bounds", im.Bounds())
	return im, nil
}

// nextGen starts a new configuration scope and returns its generation.
func (s *Session) nextGen() uint64 {
	s.gen++
	return s.gen
}

// resetStyle restores the default paint state, keeping the composite
// operation, which persists until changed or Clean.
func (s *Session) resetStyle() {
	s.style = surface.DefaultStyle().WithComposite(s.style.Composite)
}

// resetEffects restores shadow, dash, fill and stroke to their defaults.
func (s *Session) resetEffects() {
	def := surface.DefaultStyle()
	s.style = s.style.WithShadow(def.Shadow).WithDash().WithFill(def.Fill).WithStroke(def.Stroke)
	s.style.DashOffset = 0
}
