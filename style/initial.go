package style

// initialValues holds CSS 2.1 initial values of longhand properties. Values
// depending on user agent (color, text-align) are not listed.
var initialValues = func() map[string]Value {
	zero := Length(0, UnitNumber)
	m := map[string]Value{
		"background-color":      Keyword("transparent"),
		"background-image":      Keyword("none"),
		"background-repeat":     Keyword("repeat"),
		"background-attachment": Keyword("scroll"),
		"background-position":   ListOf(Length(0, UnitPercent), Length(0, UnitPercent)),

		"outline-width": Keyword("medium"),
		"outline-style": Keyword("none"),
		"outline-color": Keyword("invert"),

		"list-style-type":     Keyword("disc"),
		"list-style-position": Keyword("outside"),
		"list-style-image":    Keyword("none"),

		"font-style":   Keyword("normal"),
		"font-variant": Keyword("normal"),
		"font-weight":  Keyword("normal"),
		"font-size":    Keyword("medium"),
		"line-height":  Keyword("normal"),
		"font-family":  Keyword("serif"),

		"display":         Keyword("inline"),
		"position":        Keyword("static"),
		"float":           Keyword("none"),
		"clear":           Keyword("none"),
		"visibility":      Keyword("visible"),
		"overflow":        Keyword("visible"),
		"z-index":         Keyword("auto"),
		"width":           Keyword("auto"),
		"height":          Keyword("auto"),
		"min-width":       zero,
		"min-height":      zero,
		"max-width":       Keyword("none"),
		"max-height":      Keyword("none"),
		"vertical-align":  Keyword("baseline"),
		"text-indent":     zero,
		"text-decoration": Keyword("none"),
		"text-transform":  Keyword("none"),
		"letter-spacing":  Keyword("normal"),
		"word-spacing":    Keyword("normal"),
		"white-space":     Keyword("normal"),
		"direction":       Keyword("ltr"),
		"border-collapse": Keyword("separate"),
		"caption-side":    Keyword("top"),
		"empty-cells":     Keyword("show"),
		"orphans":         Length(2, UnitNumber),
		"widows":          Length(2, UnitNumber),
	}
	for _, side := range sides {
		m["margin-"+side] = zero
		m["padding-"+side] = zero
		m[side] = Keyword("auto")
		m["border-"+side+"-width"] = Keyword("medium")
		m["border-"+side+"-style"] = Keyword("none")
		m["border-"+side+"-color"] = Keyword("currentcolor")
	}
	return m
}()

// InitialValue returns initial value of the longhand property.
func InitialValue(name string) (Value, bool) {
	v, ok := initialValues[name]
	if !ok {
		return Value{}, false
	}
	return v.Copy(), true
}
