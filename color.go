package shape

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// errBadColor is wrapped by ParseColor failures.
var errBadColor = errors.New("unrecognized color")

// ParseColor parses a CSS color string:
//
//   - hex: #rgb, #rgba, #rrggbb, #rrggbbaa
//   - functional: rgb(r, g, b), rgba(r, g, b, a), hsl(h, s%, l%), hsla(h, s%, l%, a)
//   - the CSS named colors and "transparent"
//
// Matching is case-insensitive and ignores surrounding space.
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return nil, fmt.Errorf("%w: empty string", errBadColor)
	case v == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(v, "#"):
		return parseHexColor(v)
	case strings.HasPrefix(v, "rgb"):
		return parseRGBFunc(v)
	case strings.HasPrefix(v, "hsl"):
		return parseHSLFunc(v)
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", errBadColor, s)
}

func parseHexColor(v string) (color.Color, error) {
	digits := v[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return nil, fmt.Errorf("%w: %q has %d hex digits", errBadColor, v, len(digits))
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return nil, fmt.Errorf("%w: %q", errBadColor, v)
		}
	}
	return gg.Hex(digits).Color(), nil
}

// funcArgs splits "name(a, b, c)" into its arguments.
func funcArgs(v string, names ...string) ([]string, bool) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return nil, false
	}
	if !ValidateEnum(strings.TrimSpace(v[:open]), names...) {
		return nil, false
	}
	body := v[open+1 : len(v)-1]
	parts := strings.FieldsFunc(body, func(r rune) bool { return r == ',' || r == ' ' || r == '/' })
	return parts, true
}

func parseRGBFunc(v string) (color.Color, error) {
	args, ok := funcArgs(v, "rgb", "rgba")
	if !ok || (len(args) != 3 && len(args) != 4) {
		return nil, fmt.Errorf("%w: %q", errBadColor, v)
	}
	var ch [3]float64
	for i := range ch {
		f, err := parseComponent(args[i], 255)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadColor, v, err)
		}
		ch[i] = f
	}
	a := 1.0
	if len(args) == 4 {
		f, err := parseComponent(args[3], 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadColor, v, err)
		}
		a = f
	}
	return gg.RGBA2(ch[0], ch[1], ch[2], a).Color(), nil
}

func parseHSLFunc(v string) (color.Color, error) {
	args, ok := funcArgs(v, "hsl", "hsla")
	if !ok || (len(args) != 3 && len(args) != 4) {
		return nil, fmt.Errorf("%w: %q", errBadColor, v)
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil || !ValidateNumeric(h) {
		return nil, fmt.Errorf("%w: %q: bad hue", errBadColor, v)
	}
	sat, err1 := parseComponent(args[1], 1)
	lig, err2 := parseComponent(args[2], 1)
	if err := errors.Join(err1, err2); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", errBadColor, v, err)
	}
	c := gg.HSL(h, sat, lig)
	if len(args) == 4 {
		a, err := parseComponent(args[3], 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errBadColor, v, err)
		}
		c.A = a
	}
	return c.Color(), nil
}

// parseComponent parses a number or percentage and returns it scaled to
// [0, 1], where scale is the value that maps to 1.
func parseComponent(s string, scale float64) (float64, error) {
	pct := strings.HasSuffix(s, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil || !ValidateNumeric(f) {
		return 0, fmt.Errorf("bad component %q", s)
	}
	if pct {
		f /= 100
	} else {
		f /= scale
	}
	return min(max(f, 0), 1), nil
}
