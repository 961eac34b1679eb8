package style

import (
	"maps"
	"slices"
)

// Strategy explodes shorthand property into ordered longhand records.
// Declaration must contain the named property, records get sequence numbers
// starting with seq. Invalid shorthand value produces no records.
type Strategy interface {
	Explode(decl Declaration, name string, seq int) []*Property
}

// Registry maps shorthand property names to expansion strategies. It is
// immutable after construction and could be shared between goroutines.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry returns registry with all supported shorthands.
func NewRegistry() *Registry {
	return &Registry{strategies: map[string]Strategy{
		"margin":        boxExpander,
		"padding":       boxExpander,
		"border-width":  boxExpander,
		"border-color":  boxExpander,
		"border-style":  boxExpander,
		"border-top":    borderSideExpander,
		"border-right":  borderSideExpander,
		"border-bottom": borderSideExpander,
		"border-left":   borderSideExpander,
		"border":        borderExpander,
		"outline":       borderSideExpander,
		"background":    backgroundExpander,
		"list-style":    listStyleExpander,
		"font":          fontExpander,
	}}
}

// With returns new registry which additionally (or instead) uses s for name.
func (r *Registry) With(name string, s Strategy) *Registry {
	strategies := maps.Clone(r.strategies)
	if strategies == nil {
		strategies = make(map[string]Strategy, 1)
	}
	strategies[name] = s
	return &Registry{strategies: strategies}
}

// Lookup finds strategy by exact property name.
func (r *Registry) Lookup(name string) (Strategy, bool) {
	s, ok := r.strategies[name]
	return s, ok
}

// Names returns sorted list of shorthand names.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.strategies))
}
