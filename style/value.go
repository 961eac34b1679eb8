package style

import (
	"math"
	"strconv"
	"strings"

	"cascade/css"
)

// Unit classifies a value. Classification predicates of Value are pure
// functions of it.
type Unit int

const (
	UnitUnknown Unit = iota
	UnitNumber
	UnitPx
	UnitPt
	UnitPc
	UnitIn
	UnitCm
	UnitMm
	UnitPercent
	UnitEm
	UnitEx
	UnitRem
	UnitVw
	UnitVh
	UnitVmin
	UnitVmax
	UnitIdent
	UnitString
	UnitColor
	UnitURI
	UnitFunction
	UnitList
)

var unitNames = [...]string{
	UnitUnknown:  "unknown",
	UnitNumber:   "",
	UnitPx:       "px",
	UnitPt:       "pt",
	UnitPc:       "pc",
	UnitIn:       "in",
	UnitCm:       "cm",
	UnitMm:       "mm",
	UnitPercent:  "%",
	UnitEm:       "em",
	UnitEx:       "ex",
	UnitRem:      "rem",
	UnitVw:       "vw",
	UnitVh:       "vh",
	UnitVmin:     "vmin",
	UnitVmax:     "vmax",
	UnitIdent:    "ident",
	UnitString:   "string",
	UnitColor:    "color",
	UnitURI:      "uri",
	UnitFunction: "function",
	UnitList:     "list",
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "unknown"
}

// dimensionUnits maps lowercased CSS unit suffixes to units.
var dimensionUnits = map[string]Unit{
	"px":   UnitPx,
	"pt":   UnitPt,
	"pc":   UnitPc,
	"in":   UnitIn,
	"cm":   UnitCm,
	"mm":   UnitMm,
	"em":   UnitEm,
	"ex":   UnitEx,
	"rem":  UnitRem,
	"vw":   UnitVw,
	"vh":   UnitVh,
	"vmin": UnitVmin,
	"vmax": UnitVmax,
}

// pixelsPer converts absolute lengths to CSS pixels (96 per inch).
var pixelsPer = map[Unit]float64{
	UnitPx: 1,
	UnitPt: 96. / 72.,
	UnitPc: 16,
	UnitIn: 96,
	UnitCm: 96. / 2.54,
	UnitMm: 96. / 25.4,
}

// Value is a single CSS value: either primitive (number, length, keyword,
// color...) or a list of primitive values, never both. Values are never
// modified after construction, use Copy to get an independent one.
type Value struct {
	raw       string
	magnitude float64
	numeric   bool
	unit      Unit
	keyword   string
	important bool
	inherit   bool
	items     []Value
}

// NewValue builds value from what declaration source supplied. Priority is
// the declaration priority string ("important" or empty).
func NewValue(cv css.Value, priority string) Value {
	v := fromCSS(cv)
	v.important = strings.EqualFold(priority, "important")
	return v
}

func fromCSS(cv css.Value) Value {
	if cv.Shape == css.ShapeList {
		items := make([]Value, 0, len(cv.Items))
		for _, item := range cv.Items {
			items = append(items, fromCSS(item))
		}
		return Value{raw: cv.Raw, unit: UnitList, items: items}
	}

	v := Value{raw: cv.Raw, keyword: cv.Keyword}
	switch cv.Kind {
	case css.KindNumber:
		v.unit, v.magnitude, v.numeric = UnitNumber, cv.Value, true
	case css.KindPercentage:
		v.unit, v.magnitude, v.numeric = UnitPercent, cv.Value, true
	case css.KindDimension:
		v.magnitude, v.numeric = cv.Value, true
		if u, ok := dimensionUnits[strings.ToLower(cv.Unit)]; ok {
			v.unit = u
		}
	case css.KindIdent:
		v.unit = UnitIdent
		v.inherit = cv.Keyword == "inherit"
	case css.KindString:
		v.unit = UnitString
	case css.KindHash:
		v.unit = UnitColor
	case css.KindURL:
		v.unit = UnitURI
	case css.KindFunction:
		v.unit = UnitFunction
		if strings.HasPrefix(cv.Keyword, "rgb") || strings.HasPrefix(cv.Keyword, "hsl") {
			v.unit = UnitColor
		}
	case css.KindDelim:
		v.unit = UnitUnknown
	}
	return v
}

// Length creates numeric value with given unit.
func Length(magnitude float64, unit Unit) Value {
	return Value{
		raw:       strconv.FormatFloat(magnitude, 'f', -1, 64) + unit.String(),
		magnitude: magnitude,
		numeric:   true,
		unit:      unit,
	}
}

// Px creates absolute pixel length.
func Px(magnitude float64) Value {
	return Length(magnitude, UnitPx)
}

// Keyword creates identifier value.
func Keyword(kw string) Value {
	kw = strings.ToLower(kw)
	return Value{raw: kw, keyword: kw, unit: UnitIdent, inherit: kw == "inherit"}
}

// Inherit creates value of the "inherit" keyword.
func Inherit() Value {
	return Keyword("inherit")
}

// ListOf creates list value out of primitive items.
func ListOf(items ...Value) Value {
	parts := make([]string, 0, len(items))
	for i, item := range items {
		if item.IsList() {
			panic("style: nested list values are not allowed")
		}
		if i > 0 && item.raw == "," && len(parts) > 0 {
			parts[len(parts)-1] += ","
			continue
		}
		parts = append(parts, item.raw)
	}
	return Value{raw: strings.Join(parts, " "), unit: UnitList, items: append([]Value(nil), items...)}
}

// Raw returns textual form of the value as declared.
func (v Value) Raw() string { return v.raw }

// Unit returns unit kind of the value.
func (v Value) Unit() Unit { return v.unit }

// Magnitude returns numeric part of the value, second result is false for
// non-numeric values.
func (v Value) Magnitude() (float64, bool) { return v.magnitude, v.numeric }

// Keyword returns lowercased keyword (or color, string, url content).
func (v Value) Keyword() string { return v.keyword }

// Important reports "!important" priority.
func (v Value) Important() bool { return v.important }

// Items returns list items, nil for primitive values.
func (v Value) Items() []Value { return v.items }

// IsList reports whether value is a list.
func (v Value) IsList() bool { return v.unit == UnitList }

// IsPrimitive reports whether value is a single scalar, keyword or color.
func (v Value) IsPrimitive() bool { return v.unit != UnitList }

// IsAbsoluteUnit reports values that need no context to be computed.
func (v Value) IsAbsoluteUnit() bool {
	switch v.unit {
	case UnitNumber, UnitPx, UnitPt, UnitPc, UnitIn, UnitCm, UnitMm,
		UnitIdent, UnitString, UnitColor, UnitURI:
		return true
	}
	return false
}

// RequiresComputation reports relative units which could only be computed
// knowing element context.
func (v Value) RequiresComputation() bool {
	switch v.unit {
	case UnitPercent, UnitEm, UnitEx, UnitRem, UnitVw, UnitVh, UnitVmin, UnitVmax:
		return true
	}
	return false
}

// ForcedInherit reports values declared as literal "inherit".
func (v Value) ForcedInherit() bool { return v.inherit }

// IsLength reports numeric values with length units (including relative ones).
func (v Value) IsLength() bool {
	if !v.numeric {
		return false
	}
	switch v.unit {
	case UnitNumber, UnitPercent, UnitUnknown:
		// unitless zero is a length
		return v.unit == UnitNumber && v.magnitude == 0
	}
	return true
}

// ToPixels converts absolute length to pixels.
func (v Value) ToPixels() (float64, bool) {
	if !v.numeric {
		return 0, false
	}
	if v.unit == UnitNumber && v.magnitude == 0 {
		return 0, true
	}
	k, ok := pixelsPer[v.unit]
	if !ok {
		return 0, false
	}
	return v.magnitude * k, true
}

// WithPriority returns copy of the value carrying priority of p.
func (v Value) WithPriority(p Value) Value {
	v = v.Copy()
	v.important = p.important
	return v
}

// Copy returns deep copy of the value.
func (v Value) Copy() Value {
	if v.items != nil {
		items := make([]Value, len(v.items))
		for i := range v.items {
			items[i] = v.items[i].Copy()
		}
		v.items = items
	}
	return v
}

// Equal compares values ignoring their textual form.
func (v Value) Equal(o Value) bool {
	if v.unit != o.unit || v.numeric != o.numeric || v.keyword != o.keyword ||
		v.important != o.important || v.inherit != o.inherit || len(v.items) != len(o.items) {
		return false
	}
	if v.numeric && math.Abs(v.magnitude-o.magnitude) > 1e-9 {
		return false
	}
	if v.unit == UnitFunction || v.unit == UnitUnknown {
		if v.raw != o.raw {
			return false
		}
	}
	for i := range v.items {
		if !v.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}

// String returns textual form with priority.
func (v Value) String() string {
	if v.important {
		return v.raw + " !important"
	}
	return v.raw
}
