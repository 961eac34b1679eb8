package style

import (
	"strings"

	"golang.org/x/image/colornames"
)

// longhand names a single property produced by shorthand expansion. Key
// identifies the slot the splitter assigns value to, several longhands may
// share the same slot (all sides of "border" share "width", for example).
type longhand struct {
	name string
	key  string
}

// shorthand is generic expansion strategy: list longhands in emission order,
// split value into slots, fill unassigned slots with initial values of the
// longhands. A lone "inherit" expands to "inherit" on every longhand.
type shorthand struct {
	longhands func(name string) []longhand
	split     func(v Value) (map[string]Value, bool)
}

func (s shorthand) Explode(decl Declaration, name string, seq int) []*Property {
	cv, ok := decl.PropertyValue(name)
	if !ok {
		return nil
	}
	v := NewValue(cv, decl.PropertyPriority(name))

	var slots map[string]Value
	if !v.ForcedInherit() {
		if slots, ok = s.split(v); !ok {
			return nil
		}
	}

	names := s.longhands(name)
	props := make([]*Property, 0, len(names))
	for i, lh := range names {
		var lv Value
		if v.ForcedInherit() {
			lv = Inherit()
		} else if lv, ok = slots[lh.key]; !ok {
			lv, _ = InitialValue(lh.name)
		}
		props = append(props, NewProperty(lh.name, seq+i, lv.WithPriority(v)))
	}
	return props
}

var sides = [...]string{"top", "right", "bottom", "left"}

// components returns value items without delimiters, primitive value is its
// own single component.
func components(v Value) []Value {
	if v.IsPrimitive() {
		return []Value{v}
	}
	out := make([]Value, 0, len(v.items))
	for _, item := range v.items {
		if item.unit == UnitUnknown && !item.numeric {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Four sides: margin, padding, border-width, border-style, border-color.

func boxLonghands(name string) []longhand {
	out := make([]longhand, 0, len(sides))
	prefix, suffix := name, ""
	if rest, ok := strings.CutPrefix(name, "border"); ok && rest != "" {
		prefix, suffix = "border", rest
	}
	for _, side := range sides {
		out = append(out, longhand{name: prefix + "-" + side + suffix, key: side})
	}
	return out
}

func splitBox(v Value) (map[string]Value, bool) {
	items := components(v)
	var top, right, bottom, left Value
	switch len(items) {
	case 1:
		top, right, bottom, left = items[0], items[0], items[0], items[0]
	case 2:
		top, right, bottom, left = items[0], items[1], items[0], items[1]
	case 3:
		top, right, bottom, left = items[0], items[1], items[2], items[1]
	case 4:
		top, right, bottom, left = items[0], items[1], items[2], items[3]
	default:
		return nil, false
	}
	return map[string]Value{"top": top, "right": right, "bottom": bottom, "left": left}, true
}

// Border and outline: any order of width, style and color, each at most once.

var borderStyles = map[string]struct{}{
	"none": {}, "hidden": {}, "dotted": {}, "dashed": {}, "solid": {},
	"double": {}, "groove": {}, "ridge": {}, "inset": {}, "outset": {},
}

var borderWidths = map[string]struct{}{
	"thin": {}, "medium": {}, "thick": {},
}

func isColor(v Value) bool {
	if v.unit == UnitColor {
		return true
	}
	if v.unit != UnitIdent {
		return false
	}
	switch v.keyword {
	case "transparent", "currentcolor", "invert":
		return true
	}
	_, ok := colornames.Map[v.keyword]
	return ok
}

func sideLonghands(name string) []longhand {
	return []longhand{
		{name: name + "-width", key: "width"},
		{name: name + "-style", key: "style"},
		{name: name + "-color", key: "color"},
	}
}

func borderLonghands(string) []longhand {
	out := make([]longhand, 0, len(sides)*3)
	for _, side := range sides {
		out = append(out, sideLonghands("border-"+side)...)
	}
	return out
}

func splitBorderSide(v Value) (map[string]Value, bool) {
	slots := make(map[string]Value, 3)
	assign := func(key string, item Value) bool {
		if _, dup := slots[key]; dup {
			return false
		}
		slots[key] = item
		return true
	}
	for _, item := range components(v) {
		var ok bool
		switch {
		case item.IsLength():
			ok = assign("width", item)
		case item.unit == UnitIdent && has(borderWidths, item.keyword):
			ok = assign("width", item)
		case item.unit == UnitIdent && has(borderStyles, item.keyword):
			ok = assign("style", item)
		case isColor(item):
			ok = assign("color", item)
		}
		if !ok {
			return nil, false
		}
	}
	return slots, true
}

// Background: color, image, repeat, attachment and position in any order,
// position may take up to two items.

var backgroundRepeats = map[string]struct{}{
	"repeat": {}, "repeat-x": {}, "repeat-y": {}, "no-repeat": {}, "space": {}, "round": {},
}

var backgroundAttachments = map[string]struct{}{
	"scroll": {}, "fixed": {}, "local": {},
}

var positionKeywords = map[string]struct{}{
	"left": {}, "right": {}, "top": {}, "bottom": {}, "center": {},
}

func backgroundLonghands(string) []longhand {
	return []longhand{
		{name: "background-color", key: "color"},
		{name: "background-image", key: "image"},
		{name: "background-repeat", key: "repeat"},
		{name: "background-attachment", key: "attachment"},
		{name: "background-position", key: "position"},
	}
}

func isImage(v Value) bool {
	switch v.unit {
	case UnitURI:
		return true
	case UnitIdent:
		return v.keyword == "none"
	case UnitFunction:
		return strings.Contains(v.keyword, "gradient(")
	}
	return false
}

func splitBackground(v Value) (map[string]Value, bool) {
	slots := make(map[string]Value, 5)
	var position []Value
	for _, item := range components(v) {
		key := ""
		switch {
		case isImage(item):
			key = "image"
		case item.unit == UnitIdent && has(backgroundRepeats, item.keyword):
			key = "repeat"
		case item.unit == UnitIdent && has(backgroundAttachments, item.keyword):
			key = "attachment"
		case item.IsLength() || item.unit == UnitPercent ||
			(item.unit == UnitIdent && has(positionKeywords, item.keyword)):
			if len(position) == 2 {
				return nil, false
			}
			position = append(position, item)
			continue
		case isColor(item):
			key = "color"
		default:
			return nil, false
		}
		if _, dup := slots[key]; dup {
			return nil, false
		}
		slots[key] = item
	}
	switch len(position) {
	case 1:
		slots["position"] = position[0]
	case 2:
		slots["position"] = ListOf(position...)
	}
	return slots, true
}

// List style: type, position and image in any order. "none" sets type first,
// then image.

var listStylePositions = map[string]struct{}{
	"inside": {}, "outside": {},
}

func listStyleLonghands(string) []longhand {
	return []longhand{
		{name: "list-style-type", key: "type"},
		{name: "list-style-position", key: "position"},
		{name: "list-style-image", key: "image"},
	}
}

func splitListStyle(v Value) (map[string]Value, bool) {
	slots := make(map[string]Value, 3)
	nones := 0
	for _, item := range components(v) {
		key := ""
		switch {
		case item.unit == UnitIdent && item.keyword == "none":
			nones++
			continue
		case item.unit == UnitIdent && has(listStylePositions, item.keyword):
			key = "position"
		case item.unit == UnitURI:
			key = "image"
		case item.unit == UnitIdent || item.unit == UnitString:
			key = "type"
		default:
			return nil, false
		}
		if _, dup := slots[key]; dup {
			return nil, false
		}
		slots[key] = item
	}
	for range nones {
		switch {
		case !hasSlot(slots, "type"):
			slots["type"] = Keyword("none")
		case !hasSlot(slots, "image"):
			slots["image"] = Keyword("none")
		default:
			return nil, false
		}
	}
	return slots, true
}

// Font: [style || variant || weight]? size [/ line-height]? family, or a
// single system font keyword.

var fontStyles = map[string]struct{}{
	"italic": {}, "oblique": {},
}

var fontWeights = map[string]struct{}{
	"bold": {}, "bolder": {}, "lighter": {},
}

var fontSizes = map[string]struct{}{
	"xx-small": {}, "x-small": {}, "small": {}, "medium": {}, "large": {},
	"x-large": {}, "xx-large": {}, "larger": {}, "smaller": {},
}

var systemFonts = map[string]struct{}{
	"caption": {}, "icon": {}, "menu": {}, "message-box": {}, "small-caption": {}, "status-bar": {},
}

func fontLonghands(string) []longhand {
	return []longhand{
		{name: "font-style", key: "style"},
		{name: "font-variant", key: "variant"},
		{name: "font-weight", key: "weight"},
		{name: "font-size", key: "size"},
		{name: "line-height", key: "line-height"},
		{name: "font-family", key: "family"},
	}
}

func isFontSize(v Value) bool {
	return v.IsLength() || v.unit == UnitPercent || (v.unit == UnitIdent && has(fontSizes, v.keyword))
}

func isFontWeight(v Value) bool {
	if v.unit == UnitIdent {
		return has(fontWeights, v.keyword)
	}
	m, ok := v.Magnitude()
	return ok && v.unit == UnitNumber && m >= 1 && m <= 1000
}

func splitFont(v Value) (map[string]Value, bool) {
	if v.IsPrimitive() {
		if v.unit == UnitIdent && has(systemFonts, v.keyword) {
			return map[string]Value{"family": v}, true
		}
		return nil, false
	}

	slots := make(map[string]Value, 6)
	items := v.items
	i := 0
	// optional style, variant and weight preceding size, "normal" fits any
	for ; i < len(items); i++ {
		item := items[i]
		key := ""
		switch {
		case item.unit == UnitIdent && item.keyword == "normal":
			continue
		case item.unit == UnitIdent && has(fontStyles, item.keyword):
			key = "style"
		case item.unit == UnitIdent && item.keyword == "small-caps":
			key = "variant"
		case isFontSize(item) && (item.unit != UnitNumber || item.IsLength()):
			// numbers other than unitless zero are weights
		case isFontWeight(item):
			key = "weight"
		default:
			return nil, false
		}
		if key == "" {
			break
		}
		if _, dup := slots[key]; dup {
			return nil, false
		}
		slots[key] = item
	}
	if i == len(items) || !isFontSize(items[i]) {
		return nil, false
	}
	slots["size"] = items[i]
	i++

	if i < len(items) && items[i].unit == UnitUnknown && items[i].raw == "/" {
		if i+1 >= len(items) {
			return nil, false
		}
		slots["line-height"] = items[i+1]
		i += 2
	}

	family := items[i:]
	switch len(family) {
	case 0:
		return nil, false
	case 1:
		slots["family"] = family[0]
	default:
		slots["family"] = ListOf(family...)
	}
	return slots, true
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func hasSlot(slots map[string]Value, key string) bool {
	_, ok := slots[key]
	return ok
}

// Strategies are stateless and shared by all registries.
var (
	boxExpander        = shorthand{longhands: boxLonghands, split: splitBox}
	borderSideExpander = shorthand{longhands: sideLonghands, split: splitBorderSide}
	borderExpander     = shorthand{longhands: borderLonghands, split: splitBorderSide}
	backgroundExpander = shorthand{longhands: backgroundLonghands, split: splitBackground}
	listStyleExpander  = shorthand{longhands: listStyleLonghands, split: splitListStyle}
	fontExpander       = shorthand{longhands: fontLonghands, split: splitFont}
)
