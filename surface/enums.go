// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "fmt"

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt LineCap = iota

	// LineCapRound specifies a semicircular line cap.
	LineCapRound

	// LineCapSquare specifies a square line cap (extends by half width).
	LineCapSquare
)

var lineCapNames = [...]string{"butt", "round", "square"}

func (c LineCap) String() string { return enumName(lineCapNames[:], int(c), "LineCap") }

// Valid reports whether c is a known line cap.
func (c LineCap) Valid() bool { return int(c) < len(lineCapNames) }

// ParseLineCap parses a canvas lineCap keyword.
func ParseLineCap(s string) (LineCap, error) {
	i, err := parseEnum(lineCapNames[:], s, "line cap")
	return LineCap(i), err
}

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota

	// LineJoinRound specifies a rounded join.
	LineJoinRound

	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

var lineJoinNames = [...]string{"miter", "round", "bevel"}

func (j LineJoin) String() string { return enumName(lineJoinNames[:], int(j), "LineJoin") }

// Valid reports whether j is a known line join.
func (j LineJoin) Valid() bool { return int(j) < len(lineJoinNames) }

// ParseLineJoin parses a canvas lineJoin keyword.
func ParseLineJoin(s string) (LineJoin, error) {
	i, err := parseEnum(lineJoinNames[:], s, "line join")
	return LineJoin(i), err
}

// CompositeOp is the rule combining newly drawn pixels with the existing
// ones. The zero value is source-over.
type CompositeOp uint8

const (
	// SourceOver draws new pixels on top of existing ones.
	SourceOver CompositeOp = iota
	// SourceIn keeps new pixels only where the destination is opaque.
	SourceIn
	// SourceOut keeps new pixels only where the destination is transparent.
	SourceOut
	// SourceAtop draws new pixels only over existing content.
	SourceAtop
	// DestinationOver draws new pixels behind existing ones.
	DestinationOver
	// DestinationIn keeps existing pixels where the new shape is opaque.
	DestinationIn
	// DestinationOut keeps existing pixels where the new shape is transparent.
	DestinationOut
	// DestinationAtop keeps existing pixels only inside the new shape, drawn over it.
	DestinationAtop
	// Lighter adds the color values.
	Lighter
	// Copy replaces the destination with the new shape.
	Copy
	// Xor keeps pixels where exactly one of source and destination is opaque.
	Xor
)

var compositeNames = [...]string{
	"source-over", "source-in", "source-out", "source-atop",
	"destination-over", "destination-in", "destination-out", "destination-atop",
	"lighter", "copy", "xor",
}

func (op CompositeOp) String() string {
	return enumName(compositeNames[:], int(op), "CompositeOp")
}

// Valid reports whether op is a known composite operation.
func (op CompositeOp) Valid() bool { return int(op) < len(compositeNames) }

// ParseCompositeOp parses a globalCompositeOperation keyword.
func ParseCompositeOp(s string) (CompositeOp, error) {
	i, err := parseEnum(compositeNames[:], s, "composite operation")
	return CompositeOp(i), err
}

// Repeat selects how a pattern tiles.
type Repeat uint8

const (
	// RepeatBoth tiles in both directions.
	RepeatBoth Repeat = iota
	// RepeatX tiles horizontally only.
	RepeatX
	// RepeatY tiles vertically only.
	RepeatY
	// NoRepeat draws the pattern image once.
	NoRepeat
)

var repeatNames = [...]string{"repeat", "repeat-x", "repeat-y", "no-repeat"}

func (r Repeat) String() string { return enumName(repeatNames[:], int(r), "Repeat") }

// Valid reports whether r is a known repetition mode.
func (r Repeat) Valid() bool { return int(r) < len(repeatNames) }

// ParseRepeat parses a createPattern repetition keyword.
func ParseRepeat(s string) (Repeat, error) {
	i, err := parseEnum(repeatNames[:], s, "repeat mode")
	return Repeat(i), err
}

// TextAlign is the horizontal anchor of text relative to its position.
type TextAlign uint8

const (
	// AlignStart anchors at the start edge (left for left-to-right text).
	AlignStart TextAlign = iota
	// AlignCenter anchors at the horizontal center.
	AlignCenter
	// AlignEnd anchors at the end edge.
	AlignEnd
	// AlignLeft anchors at the left edge.
	AlignLeft
	// AlignRight anchors at the right edge.
	AlignRight
)

var textAlignNames = [...]string{"start", "center", "end", "left", "right"}

func (a TextAlign) String() string { return enumName(textAlignNames[:], int(a), "TextAlign") }

// Valid reports whether a is a known alignment.
func (a TextAlign) Valid() bool { return int(a) < len(textAlignNames) }

// ParseTextAlign parses a textAlign keyword.
func ParseTextAlign(s string) (TextAlign, error) {
	i, err := parseEnum(textAlignNames[:], s, "text align")
	return TextAlign(i), err
}

// TextBaseline is the vertical anchor of text relative to its position.
type TextBaseline uint8

const (
	// BaselineAlphabetic anchors at the alphabetic baseline.
	BaselineAlphabetic TextBaseline = iota
	// BaselineTop anchors at the top of the em box.
	BaselineTop
	// BaselineHanging anchors at the hanging baseline.
	BaselineHanging
	// BaselineMiddle anchors at the middle of the em box.
	BaselineMiddle
	// BaselineIdeographic anchors at the ideographic baseline.
	BaselineIdeographic
	// BaselineBottom anchors at the bottom of the em box.
	BaselineBottom
)

var textBaselineNames = [...]string{"alphabetic", "top", "hanging", "middle", "ideographic", "bottom"}

func (b TextBaseline) String() string {
	return enumName(textBaselineNames[:], int(b), "TextBaseline")
}

// Valid reports whether b is a known baseline.
func (b TextBaseline) Valid() bool { return int(b) < len(textBaselineNames) }

// ParseTextBaseline parses a textBaseline keyword.
func ParseTextBaseline(s string) (TextBaseline, error) {
	i, err := parseEnum(textBaselineNames[:], s, "text baseline")
	return TextBaseline(i), err
}

// FontStyle is the slant of a font.
type FontStyle uint8

const (
	// FontNormal is upright.
	FontNormal FontStyle = iota
	// FontItalic is a true italic.
	FontItalic
	// FontOblique is a slanted upright face.
	FontOblique
)

var fontStyleNames = [...]string{"normal", "italic", "oblique"}

func (s FontStyle) String() string { return enumName(fontStyleNames[:], int(s), "FontStyle") }

// Valid reports whether s is a known font style.
func (s FontStyle) Valid() bool { return int(s) < len(fontStyleNames) }

// ParseFontStyle parses a CSS font-style keyword.
func ParseFontStyle(s string) (FontStyle, error) {
	i, err := parseEnum(fontStyleNames[:], s, "font style")
	return FontStyle(i), err
}

// FontVariant selects between normal glyphs and small capitals.
type FontVariant uint8

const (
	// VariantNormal uses the regular glyphs.
	VariantNormal FontVariant = iota
	// VariantSmallCaps renders lowercase letters as small capitals.
	VariantSmallCaps
)

var fontVariantNames = [...]string{"normal", "small-caps"}

func (v FontVariant) String() string {
	return enumName(fontVariantNames[:], int(v), "FontVariant")
}

// Valid reports whether v is a known font variant.
func (v FontVariant) Valid() bool { return int(v) < len(fontVariantNames) }

// ParseFontVariant parses a CSS font-variant keyword.
func ParseFontVariant(s string) (FontVariant, error) {
	i, err := parseEnum(fontVariantNames[:], s, "font variant")
	return FontVariant(i), err
}

// UnknownValueError is returned by the Parse functions for keywords outside
// the enumeration.
type UnknownValueError struct {
	Kind  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("surface: unknown %s %q", e.Kind, e.Value)
}

func enumName(names []string, i int, typ string) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%s(%d)", typ, i)
}

func parseEnum(names []string, s, kind string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, &UnknownValueError{Kind: kind, Value: s}
}
