package style

import (
	"strings"

	"go.uber.org/zap"

	"cascade/css"
)

// Declaration is the source of declared values, see css.Declaration.
type Declaration interface {
	PropertyValue(name string) (css.Value, bool)
	PropertyPriority(name string) string
	Occurrences(name string) int
	Names() []string
	NormalizeColors()
}

// multiValued lists properties which legitimately take several values without
// being shorthands.
var multiValued = map[string]struct{}{
	"background-position": {},
	"font-family":         {},
}

// Factory turns declarations into property records.
type Factory struct {
	reg  *Registry
	diag Diagnostics
	log  *zap.Logger
}

// NewFactory creates factory. Nil registry means default one, nil diagnostics
// are logged.
func NewFactory(reg *Registry, diag Diagnostics, log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	if reg == nil {
		reg = NewRegistry()
	}
	if diag == nil {
		diag = NewLogSink(log)
	}
	return &Factory{reg: reg, diag: diag, log: log.Named("explode")}
}

// Explode creates property records for the named property of decl. Longhands
// of shorthand properties are returned in their canonical order with
// sequence numbers starting at seq. Returned records are owned by caller.
func (f *Factory) Explode(decl Declaration, name string, seq int) []*Property {
	if strings.Contains(name, "color") {
		decl.NormalizeColors()
	}

	cv, ok := decl.PropertyValue(name)
	if !ok {
		f.diag.Report(Diagnostic{Kind: KindUnhandledShape, Property: name})
		return nil
	}
	if n := decl.Occurrences(name); n > 1 {
		f.log.Debug("Property declared multiple times, using winning declaration", zap.String("property", name), zap.Int("count", n))
	}

	strategy, hasStrategy := f.reg.Lookup(name)
	switch cv.Shape {
	case css.ShapePrimitive:
		if hasStrategy {
			return f.delegate(strategy, decl, name, seq, cv)
		}
	case css.ShapeList:
		if hasStrategy {
			return f.delegate(strategy, decl, name, seq, cv)
		}
		if _, ok := multiValued[name]; !ok {
			f.diag.Report(Diagnostic{Kind: KindMissingExpander, Property: name, Value: cv.Raw})
		}
	default:
		f.diag.Report(Diagnostic{Kind: KindUnhandledShape, Property: name, Value: cv.Raw})
		return nil
	}
	return []*Property{NewProperty(name, seq, NewValue(cv, decl.PropertyPriority(name)))}
}

func (f *Factory) delegate(s Strategy, decl Declaration, name string, seq int, cv css.Value) []*Property {
	props := s.Explode(decl, name, seq)
	if len(props) == 0 {
		f.log.Debug("Invalid shorthand value ignored", zap.String("property", name), zap.String("value", cv.Raw))
	}
	return props
}

// ExplodeAll explodes every property of decl in declaration order. Sequence
// numbers continue from seq, next free number is returned.
func (f *Factory) ExplodeAll(decl Declaration, seq int) ([]*Property, int) {
	var out []*Property
	for _, name := range decl.Names() {
		props := f.Explode(decl, name, seq)
		seq += len(props)
		out = append(out, props...)
	}
	return out, seq
}
