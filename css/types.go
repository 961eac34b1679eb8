package css

import (
	"strings"
)

// ValueKind is the lexical class of a single (primitive) value item.
type ValueKind int

const (
	KindUnknown    ValueKind = iota // Anything the tokenizer produced that we do not classify
	KindNumber                      // 1.5
	KindDimension                   // 12px, 1.2em
	KindPercentage                  // 50%
	KindIdent                       // bold, inherit, red
	KindString                      // "Times New Roman"
	KindHash                        // #fff
	KindFunction                    // rgb(1, 2, 3), calc(...)
	KindURL                         // url(image.png)
	KindDelim                       // "," or "/" separating list items
)

var kindNames = [...]string{
	KindUnknown:    "unknown",
	KindNumber:     "number",
	KindDimension:  "dimension",
	KindPercentage: "percentage",
	KindIdent:      "ident",
	KindString:     "string",
	KindHash:       "hash",
	KindFunction:   "function",
	KindURL:        "url",
	KindDelim:      "delim",
}

func (k ValueKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Shape tells how a declared value is structured.
type Shape int

const (
	// ShapeCustom covers values we cannot interpret as either a single item
	// or a list of items: custom properties, var() references, empty values.
	ShapeCustom Shape = iota
	ShapePrimitive
	ShapeList
)

func (s Shape) String() string {
	switch s {
	case ShapePrimitive:
		return "primitive"
	case ShapeList:
		return "list"
	default:
		return "custom"
	}
}

// Value represents a parsed CSS property value.
//
// A primitive value carries its data directly, a list value carries
// primitive Items in source order (delimiters included as KindDelim items).
type Value struct {
	Raw     string    // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64   // Numeric value if applicable
	Unit    string    // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string    // Keyword if applicable: "bold", "italic", "center", etc.
	Kind    ValueKind // Lexical class of a primitive value
	Shape   Shape
	Items   []Value // List items, only for ShapeList
}

// IsDelim reports whether the value is a list separator ("," or "/").
func (v Value) IsDelim(d string) bool {
	return v.Kind == KindDelim && v.Raw == d
}

// Entry is a single "name: value [!important]" declaration.
type Entry struct {
	Name      string
	Value     Value
	Important bool
}

// Declaration is an ordered list of property declarations as they appear in
// a rule body or a style attribute. The same property may be declared more
// than once, all entries are kept.
type Declaration struct {
	entries []Entry
}

// NewDeclaration creates empty declaration.
func NewDeclaration() *Declaration {
	return &Declaration{}
}

// Set appends declaration for the property.
func (d *Declaration) Set(name string, v Value, important bool) {
	d.entries = append(d.entries, Entry{Name: strings.ToLower(name), Value: v, Important: important})
}

// Len returns number of entries.
func (d *Declaration) Len() int {
	return len(d.entries)
}

// lookup returns index of the entry which wins for the property: the last
// important one if any, otherwise the last one.
func (d *Declaration) lookup(name string) int {
	found := -1
	for i := len(d.entries) - 1; i >= 0; i-- {
		if d.entries[i].Name != name {
			continue
		}
		if d.entries[i].Important {
			return i
		}
		if found < 0 {
			found = i
		}
	}
	return found
}

// PropertyValue returns the declared value for a property.
func (d *Declaration) PropertyValue(name string) (Value, bool) {
	if i := d.lookup(name); i >= 0 {
		return d.entries[i].Value, true
	}
	return Value{}, false
}

// PropertyPriority returns "important" when winning declaration of the
// property carries !important and empty string otherwise.
func (d *Declaration) PropertyPriority(name string) string {
	if i := d.lookup(name); i >= 0 && d.entries[i].Important {
		return "important"
	}
	return ""
}

// Occurrences returns how many times property was declared.
func (d *Declaration) Occurrences(name string) int {
	var n int
	for _, e := range d.entries {
		if e.Name == name {
			n++
		}
	}
	return n
}

// Names returns declared property names in order of first appearance.
func (d *Declaration) Names() []string {
	names := make([]string, 0, len(d.entries))
	seen := make(map[string]struct{}, len(d.entries))
	for _, e := range d.entries {
		if _, ok := seen[e.Name]; ok {
			continue
		}
		seen[e.Name] = struct{}{}
		names = append(names, e.Name)
	}
	return names
}

// Clone returns independent copy of the declaration.
func (d *Declaration) Clone() *Declaration {
	out := &Declaration{entries: make([]Entry, len(d.entries))}
	for i, e := range d.entries {
		e.Value = e.Value.clone()
		out.entries[i] = e
	}
	return out
}

// String returns declaration as CSS text.
func (d *Declaration) String() string {
	var sb strings.Builder
	for i, e := range d.entries {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.Name)
		sb.WriteString(": ")
		sb.WriteString(e.Value.Raw)
		if e.Important {
			sb.WriteString(" !important")
		}
		sb.WriteByte(';')
	}
	return sb.String()
}

func (v Value) clone() Value {
	if v.Items != nil {
		items := make([]Value, len(v.Items))
		for i := range v.Items {
			items[i] = v.Items[i].clone()
		}
		v.Items = items
	}
	return v
}

// Rule represents a single CSS rule (selector + declarations).
type Rule struct {
	Selector    string       // Selector text as written, a single member of a group
	Declaration *Declaration // Declarations in source order
}

// Stylesheet represents a parsed CSS stylesheet.
type Stylesheet struct {
	Rules    []Rule   // Rules in source order
	Warnings []string // Warnings for unsupported features
}

// RulesBySelector returns all rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, r := range s.Rules {
		if r.Selector == selector {
			matches = append(matches, r)
		}
	}
	return matches
}
