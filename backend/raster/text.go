package raster

import (
	"strings"
	"unicode"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/gg-shape/internal/fontmatch"
	"github.com/gogpu/gg-shape/surface"
)

// smallCapsScale sizes synthesized small capitals relative to the em size.
const smallCapsScale = 0.8

// textRun is a piece of a line set in a single face.
type textRun struct {
	s    string
	face text.Face
}

// FillText implements surface.TextSurface.
func (c *Canvas) FillText(s string, x, y float64, attrs surface.TextAttrs) error {
	p, err := c.textPath(s, x, y, attrs)
	if err != nil {
		return err
	}
	return c.draw(func(ctx *gg.Context) error {
		c.applyBrush(ctx, c.style.Fill)
		ctx.SetFillRule(gg.FillRuleNonZero)
		ctx.SetPath(p)
		return ctx.Fill()
	})
}

// StrokeText implements surface.TextSurface.
func (c *Canvas) StrokeText(s string, x, y float64, attrs surface.TextAttrs) error {
	p, err := c.textPath(s, x, y, attrs)
	if err != nil {
		return err
	}
	return c.draw(func(ctx *gg.Context) error {
		c.applyBrush(ctx, c.style.Stroke)
		c.applyLine(ctx)
		ctx.SetPath(p)
		return ctx.Stroke()
	})
}

// MeasureText implements surface.TextSurface.
func (c *Canvas) MeasureText(s string, font surface.Font) (surface.TextMetrics, error) {
	runs, width, err := c.layout(s, font, "")
	if err != nil {
		return surface.TextMetrics{}, err
	}
	var h float64
	if len(runs) > 0 {
		m := runs[0].face.Metrics()
		h = m.Ascent + m.Descent
	} else if face, err := c.face(font); err == nil {
		m := face.Metrics()
		h = m.Ascent + m.Descent
	}
	return surface.TextMetrics{Width: width, Height: h}, nil
}

func (c *Canvas) face(f surface.Font) (text.Face, error) {
	if c.fonts == nil {
		opts := append([]fontmatch.Option{fontmatch.WithLogger(c.log)}, c.fontOpts...)
		r, err := fontmatch.New(opts...)
		if err != nil {
			return nil, err
		}
		c.fonts = r
	}
	return c.fonts.Face(f.Normalized())
}

// layout splits s into runs and returns their total advance. Small caps
// render lowercase letters as capitals in a smaller face.
func (c *Canvas) layout(s string, font surface.Font, lang string) ([]textRun, float64, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
	if s == "" {
		return nil, 0, nil
	}

	font = font.Normalized()
	base, err := c.face(font)
	if err != nil {
		return nil, 0, err
	}
	if font.Variant != surface.VariantSmallCaps {
		return []textRun{{s: s, face: base}}, base.Advance(s), nil
	}

	small := font
	small.Size *= smallCapsScale
	smallFace, err := c.face(small)
	if err != nil {
		return nil, 0, err
	}
	upper := cases.Upper(language.Make(lang))

	var runs []textRun
	var width float64
	for len(s) > 0 {
		lower := unicode.IsLower(firstRune(s))
		end := strings.IndexFunc(s, func(r rune) bool { return unicode.IsLower(r) != lower })
		if end < 0 {
			end = len(s)
		}
		run := textRun{s: s[:end], face: base}
		if lower {
			run = textRun{s: upper.String(s[:end]), face: smallFace}
		}
		runs = append(runs, run)
		width += run.face.Advance(run.s)
		s = s[end:]
	}
	return runs, width, nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// textPath lays out s and returns its glyph outlines in device space.
func (c *Canvas) textPath(s string, x, y float64, attrs surface.TextAttrs) (*gg.Path, error) {
	runs, width, err := c.layout(s, attrs.Font, attrs.Lang)
	if err != nil {
		return nil, err
	}
	p := gg.NewPath()
	if len(runs) == 0 {
		return p, nil
	}

	switch attrs.Align {
	case surface.AlignCenter:
		x -= width / 2
	case surface.AlignEnd, surface.AlignRight:
		x -= width
	}
	m := runs[0].face.Metrics()
	switch attrs.Baseline {
	case surface.BaselineTop:
		y += m.Ascent
	case surface.BaselineHanging:
		y += m.Ascent * 0.8
	case surface.BaselineMiddle:
		y += (m.Ascent - m.Descent) / 2
	case surface.BaselineIdeographic, surface.BaselineBottom:
		y -= m.Descent
	}

	ext := text.NewOutlineExtractor()
	for _, run := range runs {
		c.appendRun(p, ext, run, x, y)
		x += run.face.Advance(run.s)
	}
	return p, nil
}

func (c *Canvas) appendRun(p *gg.Path, ext *text.OutlineExtractor, run textRun, x, y float64) {
	src := run.face.Source()
	if src == nil {
		return
	}
	parsed := src.Parsed()
	for g := range run.face.Glyphs(run.s) {
		outline, err := ext.ExtractOutline(parsed, g.GID, run.face.Size())
		if err != nil || outline == nil || outline.IsEmpty() {
			continue
		}
		ox, oy := x+g.X, y+g.Y
		pt := func(op text.OutlinePoint) gg.Point {
			return c.ctm.TransformPoint(gg.Pt(ox+float64(op.X), oy+float64(op.Y)))
		}
		open := false
		for _, seg := range outline.Segments {
			switch seg.Op {
			case text.OutlineOpMoveTo:
				if open {
					p.Close()
				}
				a := pt(seg.Points[0])
				p.MoveTo(a.X, a.Y)
				open = true
			case text.OutlineOpLineTo:
				a := pt(seg.Points[0])
				p.LineTo(a.X, a.Y)
			case text.OutlineOpQuadTo:
				a, b := pt(seg.Points[0]), pt(seg.Points[1])
				p.QuadraticTo(a.X, a.Y, b.X, b.Y)
			case text.OutlineOpCubicTo:
				a, b, d := pt(seg.Points[0]), pt(seg.Points[1]), pt(seg.Points[2])
				p.CubicTo(a.X, a.Y, b.X, b.Y, d.X, d.Y)
			}
		}
		if open {
			p.Close()
		}
	}
}
