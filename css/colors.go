package css

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// NormalizeColor rewrites color value into canonical lowercase "#rrggbb"
// form. Supported inputs: #rgb, #rrggbb, rgb()/rgba() with integer or
// percentage components (rgba only when fully opaque) and SVG color names.
// Returns false when value is not a color we can canonicalize, keywords like
// "transparent" and "currentcolor" included.
func NormalizeColor(v Value) (Value, bool) {
	if v.Shape != ShapePrimitive {
		return v, false
	}

	var (
		c  color.RGBA
		ok bool
	)
	switch v.Kind {
	case KindHash:
		c, ok = parseHexColor(strings.TrimPrefix(v.Raw, "#"))
	case KindFunction:
		c, ok = parseRGBFunction(v.Raw)
	case KindIdent:
		c, ok = colornames.Map[strings.ToLower(v.Raw)]
	}
	if !ok {
		return v, false
	}

	canonical := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return Value{Raw: canonical, Keyword: canonical, Kind: KindHash, Shape: ShapePrimitive}, true
}

func parseHexColor(hex string) (color.RGBA, bool) {
	switch len(hex) {
	case 3:
		// #RGB -> #RRGGBB
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, true
}

func parseRGBFunction(raw string) (color.RGBA, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))

	var inner string
	switch {
	case strings.HasPrefix(lower, "rgba("):
		inner = strings.TrimPrefix(lower, "rgba(")
	case strings.HasPrefix(lower, "rgb("):
		inner = strings.TrimPrefix(lower, "rgb(")
	default:
		return color.RGBA{}, false
	}
	inner = strings.TrimSuffix(inner, ")")

	// both legacy comma separated and space separated forms
	parts := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, false
	}
	if len(parts) == 4 {
		// only opaque colors could be expressed as #rrggbb
		alpha := parts[3]
		if strings.HasSuffix(alpha, "%") {
			if a, err := strconv.ParseFloat(strings.TrimSuffix(alpha, "%"), 64); err != nil || a < 100 {
				return color.RGBA{}, false
			}
		} else if a, err := strconv.ParseFloat(alpha, 64); err != nil || a < 1 {
			return color.RGBA{}, false
		}
	}

	var comps [3]uint8
	for i := range 3 {
		c, ok := parseColorComponent(parts[i])
		if !ok {
			return color.RGBA{}, false
		}
		comps[i] = c
	}
	return color.RGBA{R: comps[0], G: comps[1], B: comps[2], A: 0xff}, true
}

func parseColorComponent(s string) (uint8, bool) {
	var (
		f   float64
		err error
	)
	if pct, found := strings.CutSuffix(s, "%"); found {
		if f, err = strconv.ParseFloat(pct, 64); err != nil {
			return 0, false
		}
		f = f * 255 / 100
	} else if f, err = strconv.ParseFloat(s, 64); err != nil {
		return 0, false
	}
	// out of range values are clamped
	f = min(max(f, 0), 255)
	return uint8(f + 0.5), true
}

// colorBearingShorthands lists shorthand properties whose values may contain
// color items even though their names do not mention color.
var colorBearingShorthands = map[string]struct{}{
	"border":        {},
	"border-top":    {},
	"border-right":  {},
	"border-bottom": {},
	"border-left":   {},
	"outline":       {},
	"background":    {},
}

// NormalizeColors rewrites color values of the declaration in place into
// canonical form. Affected are properties with "color" in their name and
// color items of border, outline and background shorthands. Calling it more
// than once has no further effect.
func (d *Declaration) NormalizeColors() {
	for i := range d.entries {
		e := &d.entries[i]
		_, shorthand := colorBearingShorthands[e.Name]
		if !shorthand && !strings.Contains(e.Name, "color") {
			continue
		}
		e.Value = normalizeValueColors(e.Value)
	}
}

func normalizeValueColors(v Value) Value {
	switch v.Shape {
	case ShapePrimitive:
		if nv, ok := NormalizeColor(v); ok {
			return nv
		}
	case ShapeList:
		changed := false
		items := make([]Value, len(v.Items))
		for i, item := range v.Items {
			if nv, ok := NormalizeColor(item); ok {
				item, changed = nv, true
			}
			items[i] = item
		}
		if changed {
			v.Items = items
			v.Raw = joinItems(items)
			v.Keyword = v.Raw
		}
	}
	return v
}

// joinItems rebuilds raw text of a list from its items. Comma sticks to the
// preceding item, slash to both neighbours.
func joinItems(items []Value) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 && !item.IsDelim(",") && !item.IsDelim("/") && !items[i-1].IsDelim("/") {
			sb.WriteByte(' ')
		}
		sb.WriteString(item.Raw)
	}
	return sb.String()
}
