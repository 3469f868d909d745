package shape

import (
	"strconv"

	"golang.org/x/text/language"

	"github.com/gogpu/gg-shape/surface"
)

// TextBuilder draws a single line of text. It needs a surface that
// implements surface.TextSurface.
type TextBuilder struct {
	common[*TextBuilder]
	pos   optPoint
	text  string
	attrs surface.TextAttrs
}

// Make starts a new text run in the default font (10px sans-serif), start
// aligned on the alphabetic baseline.
func (b *TextBuilder) Make() *TextBuilder {
	b.begin()
	b.pos, b.text, b.attrs = optPoint{}, "", surface.TextAttrs{}
	return b
}

// Position sets the anchor point.
func (b *TextBuilder) Position(x, y float64) *TextBuilder {
	if b.open("Position") && b.check(checkNumeric(b.op("Position"), "position", x, y)) {
		b.pos.set(x, y)
	}
	return b
}

// Write sets the text.
func (b *TextBuilder) Write(s string) *TextBuilder {
	if b.open("Write") {
		b.text = s
	}
	return b
}

// Align sets the horizontal anchor.
func (b *TextBuilder) Align(a TextAlign) *TextBuilder {
	if b.open("Align") && b.check(checkEnum(b.op("Align"), "align", a)) {
		b.attrs.Align = a
	}
	return b
}

// Baseline sets the vertical anchor.
func (b *TextBuilder) Baseline(bl TextBaseline) *TextBuilder {
	if b.open("Baseline") && b.check(checkEnum(b.op("Baseline"), "baseline", bl)) {
		b.attrs.Baseline = bl
	}
	return b
}

// Style sets the font style.
func (b *TextBuilder) Style(st FontStyle) *TextBuilder {
	if b.open("Style") && b.check(checkEnum(b.op("Style"), "style", st)) {
		b.attrs.Font.Style = st
	}
	return b
}

// Variant sets the font variant.
func (b *TextBuilder) Variant(v FontVariant) *TextBuilder {
	if b.open("Variant") && b.check(checkEnum(b.op("Variant"), "variant", v)) {
		b.attrs.Font.Variant = v
	}
	return b
}

// Weight sets the numeric font weight, 1 to 1000.
func (b *TextBuilder) Weight(w int) *TextBuilder {
	if !b.open("Weight") {
		return b
	}
	if w < 1 || w > 1000 {
		return b.fail(invalid(b.op("Weight"), "weight", strconv.Itoa(w)+" outside 1..1000"))
	}
	b.attrs.Font.Weight = w
	return b
}

// Size sets the em size in pixels.
func (b *TextBuilder) Size(px float64) *TextBuilder {
	if b.open("Size") && b.check(checkPositive(b.op("Size"), "size", px)) {
		b.attrs.Font.Size = px
	}
	return b
}

// Family sets the comma separated font family list.
func (b *TextBuilder) Family(family string) *TextBuilder {
	if b.open("Family") {
		b.attrs.Font.Family = family
	}
	return b
}

// Lang sets the BCP 47 language of the text, used for case mapping.
func (b *TextBuilder) Lang(tag string) *TextBuilder {
	if !b.open("Lang") {
		return b
	}
	t, err := language.Parse(tag)
	if err != nil {
		return b.fail(invalid(b.op("Lang"), "lang", err.Error()))
	}
	b.attrs.Lang = t.String()
	return b
}

// Font returns the font the text will be drawn in.
func (b *TextBuilder) Font() surface.Font { return b.attrs.Font.Normalized() }

// Create fills or strokes the text.
func (b *TextBuilder) Create(mode DrawMode) error {
	if !b.open("Create") {
		return b.err
	}
	if !ValidateEnum(mode, Fill, Stroke) {
		b.fail(invalid(b.op("Create"), "mode", mode.String()))
		return b.err
	}
	if err := required(b.kind, req{"position", b.pos.ok}); err != nil {
		b.fail(err)
		return b.err
	}
	ts, ok := b.s.surf.(surface.TextSurface)
	if !ok {
		b.fail(&StateError{Op: b.op("Create"), Err: ErrUnsupported})
		return b.err
	}
	b.consumed = true
	b.s.surf.SetStyle(b.s.style.Clone())
	attrs := b.attrs
	attrs.Font = attrs.Font.Normalized()
	var err error
	if mode == Stroke {
		err = ts.StrokeText(b.text, b.pos.X, b.pos.Y, attrs)
	} else {
		err = ts.FillText(b.text, b.pos.X, b.pos.Y, attrs)
	}
	if err != nil {
		b.s.log.Warn("shape: text rejected", "font", attrs.Font.String(), "err", err)
		return err
	}
	b.s.log.Debug("shape: created", "shape", b.kind, "mode", mode, "font", attrs.Font.String())
	return nil
}

// Measure returns the advance width of s in the configured font. Like the
// style calls it needs a made, current builder and also works after Create.
func (b *TextBuilder) Measure(s string) (float64, error) {
	if !b.live("Measure") {
		return 0, b.err
	}
	ts, ok := b.s.surf.(surface.TextSurface)
	if !ok {
		return 0, &StateError{Op: b.op("Measure"), Err: ErrUnsupported}
	}
	m, err := ts.MeasureText(s, b.attrs.Font.Normalized())
	if err != nil {
		return 0, err
	}
	return m.Width, nil
}
