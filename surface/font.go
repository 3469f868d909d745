// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"strconv"
	"strings"
)

// Font is a CSS-style font description.
type Font struct {
	Style   FontStyle
	Variant FontVariant
	// Weight is the numeric CSS weight, 100 to 900. Zero means 400.
	Weight int
	// Size is the em size in pixels. Zero means 10.
	Size float64
	// Family is a comma separated list of family names. Empty means
	// sans-serif.
	Family string
}

// Font defaults matching the canvas initial font "10px sans-serif".
const (
	DefaultFontSize   = 10
	DefaultFontWeight = 400
	DefaultFontFamily = "sans-serif"
)

// Normalized returns f with zero fields replaced by their defaults.
func (f Font) Normalized() Font {
	if f.Weight == 0 {
		f.Weight = DefaultFontWeight
	}
	if f.Size == 0 {
		f.Size = DefaultFontSize
	}
	if strings.TrimSpace(f.Family) == "" {
		f.Family = DefaultFontFamily
	}
	return f
}

// Families splits Family into trimmed names with any quotes removed.
func (f Font) Families() []string {
	var out []string
	for _, name := range strings.Split(f.Family, ",") {
		name = strings.Trim(strings.TrimSpace(name), `'"`)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// String returns the CSS font shorthand, for example
// "italic small-caps 700 16px 'Times New Roman', serif". Keywords at their
// default value are omitted and family names containing spaces are quoted.
func (f Font) String() string {
	f = f.Normalized()
	parts := make([]string, 0, 5)
	if f.Style != FontNormal {
		parts = append(parts, f.Style.String())
	}
	if f.Variant != VariantNormal {
		parts = append(parts, f.Variant.String())
	}
	if f.Weight != DefaultFontWeight {
		parts = append(parts, strconv.Itoa(f.Weight))
	}
	parts = append(parts, strconv.FormatFloat(f.Size, 'f', -1, 64)+"px")

	families := f.Families()
	if len(families) == 0 {
		families = []string{DefaultFontFamily}
	}
	for i, name := range families {
		if strings.Contains(name, " ") {
			families[i] = "'" + name + "'"
		}
	}
	parts = append(parts, strings.Join(families, ", "))
	return strings.Join(parts, " ")
}
