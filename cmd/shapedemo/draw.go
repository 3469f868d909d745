package main

import (
	"context"
	"fmt"

	shape "github.com/gogpu/gg-shape"
	"github.com/gogpu/gg-shape/surface"
)

// styler is the style capability every shape builder shares.
type styler[T any] interface {
	Color(css string) T
	Border(width float64, css string) T
	Shadow(blur, offsetX, offsetY float64, css string) T
	Compose(op shape.CompositeOp) T
}

// DrawScene draws every shape of sc with s, stopping at the first error.
func DrawScene(ctx context.Context, s *shape.Session, sc *Scene) error {
	if sc.Background != "" {
		w, h := float64(s.Surface().Width()), float64(s.Surface().Height())
		err := s.Rect().Make().Position(0, 0).Size(w, h).Color(sc.Background).Create(shape.Fill)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	for i, sh := range sc.Shapes {
		if err := drawShape(ctx, s, sh); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, sh.Kind, err)
		}
	}
	return nil
}

func drawShape(ctx context.Context, s *shape.Session, sh Shape) error {
	mode := shape.Fill
	if sh.Mode != "" {
		m, err := shape.ParseDrawMode(sh.Mode)
		if err != nil {
			return err
		}
		mode = m
	}

	switch sh.Kind {
	case "rect":
		b, err := styled(s.Rect().Make(), sh)
		if err != nil {
			return err
		}
		b.Position(xy(sh.Position)).Size(xy(sh.Size))
		return b.Create(mode)

	case "roundrect":
		b, err := styled(s.RoundRect().Make(), sh)
		if err != nil {
			return err
		}
		b.Position(xy(sh.Position)).Size(xy(sh.Size))
		if len(sh.Radius) > 0 {
			b.Radius(sh.Radius[0])
		}
		return b.Create(mode)

	case "arc":
		b, err := styled(s.Arc().Make(), sh)
		if err != nil {
			return err
		}
		if len(sh.To) > 0 {
			if len(sh.Start) > 0 {
				b.Start(xy(sh.Start))
			}
			b.From(xy(sh.Position)).To(xy(sh.To))
			if len(sh.Radius) > 0 {
				b.Radial(sh.Radius[0])
			}
			return b.Create(mode)
		}
		b.Position(xy(sh.Position)).Direction(sh.Anticlockwise)
		if len(sh.Radius) > 0 {
			b.Radius(sh.Radius[0])
		}
		if len(sh.Angle) == 2 {
			b.Angle(sh.Angle[0], sh.Angle[1])
		}
		return b.Create(mode)

	case "line":
		b, err := styled(s.Line().Make(), sh)
		if err != nil {
			return err
		}
		if err := lineStyle(b, sh); err != nil {
			return err
		}
		if len(sh.Start) > 0 {
			b.Move(xy(sh.Start))
		}
		for _, m := range sh.Marks {
			b.Mark(xy(m))
		}
		return b.Create()

	case "curve":
		b, err := styled(s.Curve().Make(), sh)
		if err != nil {
			return err
		}
		b.Start(xy(sh.Start)).End(xy(sh.End))
		for _, c := range sh.Controls {
			b.Control(xy(c))
		}
		return b.Create(mode)

	case "triangle":
		b, err := styled(s.Triangle().Make(), sh)
		if err != nil {
			return err
		}
		for _, v := range sh.Vertices {
			b.Point(xy(v))
		}
		return b.Create(mode)

	case "polygon":
		b, err := styled(s.Polygon().Make(), sh)
		if err != nil {
			return err
		}
		b.Position(xy(sh.Position))
		if sh.Sides > 0 {
			b.Side(sh.Sides)
		}
		if len(sh.Radius) > 0 {
			b.Radius(sh.Radius[0])
		}
		return b.Create(mode)

	case "star":
		b, err := styled(s.Star().Make(), sh)
		if err != nil {
			return err
		}
		b.Position(xy(sh.Position))
		if sh.Points > 0 {
			b.Points(sh.Points)
		}
		if len(sh.Radius) == 2 {
			b.Radius(sh.Radius[0], sh.Radius[1])
		}
		return b.Create(mode)

	case "trapezium":
		b, err := styled(s.Trapezium().Make(), sh)
		if err != nil {
			return err
		}
		b.Position(xy(sh.Position)).Height(sh.Height).Width(xy(sh.Widths))
		return b.Create(mode)

	case "parallelogram":
		b, err := styled(s.Parallelogram().Make(), sh)
		if err != nil {
			return err
		}
		b.Position(xy(sh.Position)).Size(xy(sh.Size))
		if len(sh.Angle) > 0 {
			b.Angle(sh.Angle[0])
		}
		return b.Create(mode)

	case "grid":
		b, err := styled(s.Grid().Make(), sh)
		if err != nil {
			return err
		}
		return b.Step(sh.Step).Close(sh.Closed).Create()

	case "text":
		b, err := styled(s.Text().Make(), sh)
		if err != nil {
			return err
		}
		if err := textStyle(b, sh.Font); err != nil {
			return err
		}
		return b.Position(xy(sh.Position)).Write(sh.Text).Create(mode)

	case "image":
		b, err := styled(s.Image().Make(), sh)
		if err != nil {
			return err
		}
		b.Src(ctx, sh.Src).Position(xy(sh.Position))
		if len(sh.Size) > 0 {
			b.Size(xy(sh.Size))
		}
		return b.Draw()
	}
	return fmt.Errorf("unknown shape kind %q", sh.Kind)
}

// styled applies the shared style fields of sh to b.
func styled[T styler[T]](b T, sh Shape) (T, error) {
	if sh.Compose != "" {
		op, err := surface.ParseCompositeOp(sh.Compose)
		if err != nil {
			return b, err
		}
		b = b.Compose(op)
	}
	if sh.Color != "" {
		b = b.Color(sh.Color)
	}
	if sh.Border != nil {
		color := sh.Border.Color
		if color == "" {
			color = "black"
		}
		b = b.Border(sh.Border.Width, color)
	}
	if sh.Shadow != nil {
		b = b.Shadow(sh.Shadow.Blur, sh.Shadow.OffsetX, sh.Shadow.OffsetY, sh.Shadow.Color)
	}
	return b, nil
}

func lineStyle(b *shape.LineBuilder, sh Shape) error {
	if len(sh.Dash) > 0 {
		b.Dash(sh.Dash...)
	}
	if sh.Cap != "" {
		c, err := surface.ParseLineCap(sh.Cap)
		if err != nil {
			return err
		}
		b.Cap(c)
	}
	if sh.Join != "" {
		j, err := surface.ParseLineJoin(sh.Join)
		if err != nil {
			return err
		}
		b.Join(j)
	}
	return nil
}

func textStyle(b *shape.TextBuilder, f *FontSpec) error {
	if f == nil {
		return nil
	}
	if f.Family != "" {
		b.Family(f.Family)
	}
	if f.Size > 0 {
		b.Size(f.Size)
	}
	if f.Weight > 0 {
		b.Weight(f.Weight)
	}
	if f.Lang != "" {
		b.Lang(f.Lang)
	}
	if f.Style != "" {
		v, err := surface.ParseFontStyle(f.Style)
		if err != nil {
			return err
		}
		b.Style(v)
	}
	if f.Variant != "" {
		v, err := surface.ParseFontVariant(f.Variant)
		if err != nil {
			return err
		}
		b.Variant(v)
	}
	if f.Align != "" {
		v, err := surface.ParseTextAlign(f.Align)
		if err != nil {
			return err
		}
		b.Align(v)
	}
	if f.Baseline != "" {
		v, err := surface.ParseTextBaseline(f.Baseline)
		if err != nil {
			return err
		}
		b.Baseline(v)
	}
	return nil
}

// xy returns the first two values of v, zero filled.
func xy(v []float64) (float64, float64) {
	var x, y float64
	if len(v) > 0 {
		x = v[0]
	}
	if len(v) > 1 {
		y = v[1]
	}
	return x, y
}
