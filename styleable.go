package shape

import (
	"context"
	"image"
	"image/color"

	"github.com/gogpu/gg-shape/surface"
)

// Styleable is the capability set shared by every shape builder. Each
// method returns the builder itself so calls chain.
//
// Style calls mutate the session's paint state. They are read by Create, not
// at call time, so their order relative to the shape setters does not
// matter.
type Styleable[T any] interface {
	// Color sets the fill to a CSS color.
	Color(css string) T
	// FillColor sets the fill to c.
	FillColor(c color.Color) T
	// Gradient sets the fill to a linear or radial gradient.
	Gradient(g surface.Gradient) T
	// Pattern loads uri and sets the fill to the tiled image. It blocks until
	// the image is loaded, the session's load timeout expires or ctx is done.
	Pattern(ctx context.Context, uri string, repeat Repeat) T
	// PatternImage sets the fill to img tiled according to repeat.
	PatternImage(img image.Image, repeat Repeat) T
	// Border sets the stroke width and color.
	Border(width float64, css string) T
	// Shadow sets the drop shadow. Zero values select the defaults: blur 2,
	// offsets 10, grey.
	Shadow(blur, offsetX, offsetY float64, css string) T
	// Compose sets the composite operation for this and later shapes.
	Compose(op CompositeOp) T
	// Clip intersects the surface clip region with the current path.
	Clip() T
	// Reset restores shadow, dash, fill and stroke to their defaults.
	Reset() T
	// Err returns the first error recorded in the current chain.
	Err() error
}

var (
	_ Styleable[*RectBuilder]          = (*RectBuilder)(nil)
	_ Styleable[*RoundRectBuilder]     = (*RoundRectBuilder)(nil)
	_ Styleable[*ArcBuilder]           = (*ArcBuilder)(nil)
	_ Styleable[*LineBuilder]          = (*LineBuilder)(nil)
	_ Styleable[*CurveBuilder]         = (*CurveBuilder)(nil)
	_ Styleable[*TriangleBuilder]      = (*TriangleBuilder)(nil)
	_ Styleable[*PolygonBuilder]       = (*PolygonBuilder)(nil)
	_ Styleable[*TrapeziumBuilder]     = (*TrapeziumBuilder)(nil)
	_ Styleable[*ParallelogramBuilder] = (*ParallelogramBuilder)(nil)
	_ Styleable[*StarBuilder]          = (*StarBuilder)(nil)
	_ Styleable[*GridBuilder]          = (*GridBuilder)(nil)
	_ Styleable[*TextBuilder]          = (*TextBuilder)(nil)
	_ Styleable[*ImageBuilder]         = (*ImageBuilder)(nil)
)

// common carries the lifecycle state of one builder and implements
// Styleable for it. self is the embedding builder, returned from every call.
type common[T any] struct {
	s        *Session
	self     T
	kind     string
	gen      uint64
	made     bool
	consumed bool
	err      error
}

func newCommon[T any](s *Session, kind string, self T) common[T] {
	return common[T]{s: s, self: self, kind: kind}
}

// begin opens a new configuration scope: the builder becomes the session's
// live builder and the paint state returns to its defaults.
func (c *common[T]) begin() {
	c.gen = c.s.nextGen()
	c.made = true
	c.consumed = false
	c.err = nil
	c.s.resetStyle()
	c.s.log.Debug("shape: make", "shape", c.kind, "gen", c.gen)
}

// live reports whether style calls may proceed, recording a StateError
// otherwise.
func (c *common[T]) live(op string) bool {
	if c.err != nil {
		return false
	}
	switch {
	case !c.made:
		c.err = &StateError{Op: c.kind + "." + op, Err: ErrNotMade}
	case c.gen != c.s.gen:
		c.err = &StateError{Op: c.kind + "." + op, Err: ErrStale}
	default:
		return true
	}
	c.s.log.Warn("shape: builder not usable", "shape", c.kind, "op", op, "err", c.err)
	return false
}

// open reports whether shape parameters may be set or the shape created.
func (c *common[T]) open(op string) bool {
	if !c.live(op) {
		return false
	}
	if c.consumed {
		c.err = &StateError{Op: c.kind + "." + op, Err: ErrConsumed}
		c.s.log.Warn("shape: builder not usable", "shape", c.kind, "op", op, "err", c.err)
		return false
	}
	return true
}

// fail records err as the chain's error and returns the builder.
func (c *common[T]) fail(err error) T {
	if c.err == nil {
		c.err = err
		c.s.log.Warn("shape: rejected", "shape", c.kind, "err", err)
	}
	return c.self
}

// check records err if it is non-nil and reports whether it was nil.
func (c *common[T]) check(err error) bool {
	if err != nil {
		c.fail(err)
		return false
	}
	return true
}

func (c *common[T]) op(name string) string { return c.kind + "." + name }

// Err returns the first error recorded since the last Make.
func (c *common[T]) Err() error { return c.err }

// Color sets the fill to a CSS color.
func (c *common[T]) Color(css string) T {
	if !c.live("Color") {
		return c.self
	}
	col, err := ParseColor(css)
	if err != nil {
		return c.fail(invalid(c.op("Color"), "color", err.Error()))
	}
	c.s.style = c.s.style.WithFill(surface.SolidPaint(col))
	return c.self
}

// FillColor sets the fill to col.
func (c *common[T]) FillColor(col color.Color) T {
	if !c.live("FillColor") {
		return c.self
	}
	if col == nil {
		return c.fail(invalid(c.op("FillColor"), "color", "must not be nil"))
	}
	c.s.style = c.s.style.WithFill(surface.SolidPaint(col))
	return c.self
}

// Gradient sets the fill to g after checking its geometry and stops.
func (c *common[T]) Gradient(g surface.Gradient) T {
	if !c.live("Gradient") || !c.check(validateGradient(c.op("Gradient"), g)) {
		return c.self
	}
	c.s.style = c.s.style.WithFill(surface.GradientPaint(cloneGradient(g)))
	return c.self
}

func validateGradient(op string, g surface.Gradient) error {
	switch g := g.(type) {
	case *surface.LinearGradient:
		if g == nil {
			return invalid(op, "gradient", "must not be nil")
		}
		if err := checkNumeric(op, "start/end", g.X0, g.Y0, g.X1, g.Y1); err != nil {
			return err
		}
	case *surface.RadialGradient:
		if g == nil {
			return invalid(op, "gradient", "must not be nil")
		}
		if err := checkNumeric(op, "inner/outer", g.X0, g.Y0, g.X1, g.Y1); err != nil {
			return err
		}
		if err := checkNonNegative(op, "radius", g.R0, g.R1); err != nil {
			return err
		}
	default:
		return invalid(op, "gradient", "must be linear or radial")
	}
	for _, st := range g.ColorStops() {
		if !ValidateNumeric(st.Offset) || st.Offset < 0 || st.Offset > 1 {
			return invalid(op, "stop", "position must be a number between 0 and 1")
		}
		if st.Color == nil {
			return invalid(op, "stop", "color must not be nil")
		}
	}
	return nil
}

func cloneGradient(g surface.Gradient) surface.Gradient {
	switch g := g.(type) {
	case *surface.LinearGradient:
		cp := *g
		cp.Stops = append([]surface.ColorStop(nil), g.Stops...)
		return &cp
	case *surface.RadialGradient:
		cp := *g
		cp.Stops = append([]surface.ColorStop(nil), g.Stops...)
		return &cp
	}
	return g
}

// Pattern loads uri and sets the fill to the tiled image. On failure the
// chain records a *ResourceError and the fill is unchanged.
func (c *common[T]) Pattern(ctx context.Context, uri string, repeat Repeat) T {
	if !c.live("Pattern") || !c.check(checkEnum(c.op("Pattern"), "repeat", repeat)) {
		return c.self
	}
	img, err := c.s.load(ctx, uri)
	if err != nil {
		return c.fail(err)
	}
	c.s.style = c.s.style.WithFill(surface.PatternPaint(&surface.Pattern{Image: img, Repeat: repeat}))
	return c.self
}

// PatternImage sets the fill to img tiled according to repeat.
func (c *common[T]) PatternImage(img image.Image, repeat Repeat) T {
	if !c.live("PatternImage") || !c.check(checkEnum(c.op("PatternImage"), "repeat", repeat)) {
		return c.self
	}
	if img == nil || img.Bounds().Empty() {
		return c.fail(invalid(c.op("PatternImage"), "image", "must be a non-empty image"))
	}
	c.s.style = c.s.style.WithFill(surface.PatternPaint(&surface.Pattern{Image: img, Repeat: repeat}))
	return c.self
}

// Border sets the stroke width and color.
func (c *common[T]) Border(width float64, css string) T {
	if !c.live("Border") || !c.check(checkNonNegative(c.op("Border"), "width", width)) {
		return c.self
	}
	col, err := ParseColor(css)
	if err != nil {
		return c.fail(invalid(c.op("Border"), "color", err.Error()))
	}
	c.s.style = c.s.style.WithLineWidth(width).WithStroke(surface.SolidPaint(col))
	return c.self
}

// Shadow sets the drop shadow. Zero values select the defaults.
func (c *common[T]) Shadow(blur, offsetX, offsetY float64, css string) T {
	if !c.live("Shadow") || !c.check(checkNumeric(c.op("Shadow"), "blur/offset", blur, offsetX, offsetY)) {
		return c.self
	}
	if blur < 0 {
		return c.fail(invalid(c.op("Shadow"), "blur", "must not be negative"))
	}
	sh := surface.Shadow{Blur: blur, OffsetX: offsetX, OffsetY: offsetY, Color: surface.DefaultShadowColor}
	if sh.Blur == 0 {
		sh.Blur = surface.DefaultShadowBlur
	}
	if sh.OffsetX == 0 {
		sh.OffsetX = surface.DefaultShadowOffsetX
	}
	if sh.OffsetY == 0 {
		sh.OffsetY = surface.DefaultShadowOffsetY
	}
	if css != "" {
		col, err := ParseColor(css)
		if err != nil {
			return c.fail(invalid(c.op("Shadow"), "color", err.Error()))
		}
		sh.Color = col
	}
	c.s.style = c.s.style.WithShadow(sh)
	return c.self
}

// Compose sets the composite operation for this and later shapes. It
// survives Make and is only cleared by another Compose or Session.Clean.
func (c *common[T]) Compose(op CompositeOp) T {
	if !c.live("Compose") || !c.check(checkEnum(c.op("Compose"), "composite", op)) {
		return c.self
	}
	c.s.style = c.s.style.WithComposite(op)
	return c.self
}

// Clip intersects the surface clip region with the current path, typically
// the path of the shape just created.
func (c *common[T]) Clip() T {
	if !c.live("Clip") {
		return c.self
	}
	c.s.surf.Clip()
	return c.self
}

// Reset restores shadow, dash, fill and stroke to their defaults.
func (c *common[T]) Reset() T {
	if !c.live("Reset") {
		return c.self
	}
	c.s.resetEffects()
	return c.self
}
