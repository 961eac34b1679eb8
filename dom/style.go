package dom

import (
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"cascade/style"
)

// Style is the set of property records of a single element. Only the
// cascade winner is kept for every property name.
type Style struct {
	props    map[string]*style.Property
	fontSize float64 // px, known after resolution
}

func NewStyle() *Style {
	return &Style{props: make(map[string]*style.Property)}
}

// Add merges records into the set.
func (s *Style) Add(props ...*style.Property) {
	for _, p := range props {
		if cur, ok := s.props[p.Name()]; ok {
			p = style.Winner([]*style.Property{cur, p})
		}
		s.props[p.Name()] = p
	}
}

// Get returns record for the property.
func (s *Style) Get(name string) (*style.Property, bool) {
	if s == nil {
		return nil, false
	}
	p, ok := s.props[name]
	return p, ok
}

// Names returns property names in natural order.
func (s *Style) Names() []string {
	if s == nil {
		return nil
	}
	names := slices.Collect(maps.Keys(s.props))
	sort.Sort(natural.StringSlice(names))
	return names
}

// FontSize returns element font size in pixels, zero before resolution.
func (s *Style) FontSize() float64 {
	if s == nil {
		return 0
	}
	return s.fontSize
}

func (s *Style) Len() int {
	if s == nil {
		return 0
	}
	return len(s.props)
}
