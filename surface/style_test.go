// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image/color"
	"testing"
)

func TestEnumRoundTrip(t *testing.T) {
	for op := SourceOver; op <= Xor; op++ {
		got, err := ParseCompositeOp(op.String())
		if err != nil || got != op {
			t.Errorf("ParseCompositeOp(%q) = %v, %v", op.String(), got, err)
		}
	}
	for c := LineCapButt; c <= LineCapSquare; c++ {
		if got, err := ParseLineCap(c.String()); err != nil || got != c {
			t.Errorf("ParseLineCap(%q) = %v, %v", c.String(), got, err)
		}
	}
	for b := BaselineAlphabetic; b <= BaselineBottom; b++ {
		if got, err := ParseTextBaseline(b.String()); err != nil || got != b {
			t.Errorf("ParseTextBaseline(%q) = %v, %v", b.String(), got, err)
		}
	}
}

func TestEnumRejectsUnknown(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) error
	}{
		{"composite", func(s string) error { _, err := ParseCompositeOp(s); return err }},
		{"cap", func(s string) error { _, err := ParseLineCap(s); return err }},
		{"join", func(s string) error { _, err := ParseLineJoin(s); return err }},
		{"repeat", func(s string) error { _, err := ParseRepeat(s); return err }},
		{"align", func(s string) error { _, err := ParseTextAlign(s); return err }},
		{"baseline", func(s string) error { _, err := ParseTextBaseline(s); return err }},
		{"style", func(s string) error { _, err := ParseFontStyle(s); return err }},
		{"variant", func(s string) error { _, err := ParseFontVariant(s); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var uv *UnknownValueError
			if err := tt.parse("Source-Over "); !errors.As(err, &uv) {
				t.Errorf("err = %v, want UnknownValueError", err)
			}
		})
	}
	if CompositeOp(200).Valid() {
		t.Error("CompositeOp(200).Valid() = true")
	}
	if got := CompositeOp(200).String(); got != "CompositeOp(200)" {
		t.Errorf("String() = %q", got)
	}
}

func TestFontString(t *testing.T) {
	tests := []struct {
		font Font
		want string
	}{
		{Font{}, "10px sans-serif"},
		{Font{Size: 16, Family: "serif"}, "16px serif"},
		{Font{Style: FontItalic, Variant: VariantSmallCaps, Weight: 700, Size: 12.5, Family: "Times New Roman, serif"},
			"italic small-caps 700 12.5px 'Times New Roman', serif"},
		{Font{Weight: 400, Family: `"Noto Sans"`}, "10px 'Noto Sans'"},
		{Font{Family: " , "}, "10px sans-serif"},
	}
	for _, tt := range tests {
		if got := tt.font.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.font, got, tt.want)
		}
	}
}

func TestSortedStops(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	in := []ColorStop{{1, blue}, {0, red}, {0.5, green}, {0.5, red}}
	got := SortedStops(in)
	want := []ColorStop{{0, red}, {0.5, green}, {0.5, red}, {1, blue}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stop %d = %v, want %v", i, got[i], want[i])
		}
	}
	if in[0].Offset != 1 {
		t.Error("SortedStops modified its input")
	}
}

func TestShadowVisible(t *testing.T) {
	tests := []struct {
		name string
		s    Shadow
		want bool
	}{
		{"zero", Shadow{}, false},
		{"no color", Shadow{Blur: 4}, false},
		{"transparent", Shadow{Blur: 4, Color: color.Transparent}, false},
		{"offset only", Shadow{OffsetX: 3, Color: color.Black}, true},
		{"blur only", Shadow{Blur: 1, Color: DefaultShadowColor}, true},
		{"no blur no offset", Shadow{Color: color.Black}, false},
	}
	for _, tt := range tests {
		if got := tt.s.Visible(); got != tt.want {
			t.Errorf("%s: Visible() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStyleCloneDetachesDash(t *testing.T) {
	a := DefaultStyle().WithDash(4, 2)
	b := a.Clone()
	b.Dash[0] = 9
	if a.Dash[0] != 4 {
		t.Errorf("Clone shares dash slice: %v", a.Dash)
	}
	if a.LineWidth != 1 || a.MiterLimit != 10 || a.Composite != SourceOver {
		t.Errorf("unexpected defaults: %+v", a)
	}
}
