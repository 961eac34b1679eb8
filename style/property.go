package style

import (
	"fmt"
)

// Context gives a property access to its element's position in the tree.
// Implementations are supplied by the caller which walks the document in
// pre-order, so parent records are always resolved before children ask.
type Context interface {
	// Parent returns resolved record of the same property on parent element.
	// Returns false for the document root.
	Parent(name string) (*Property, bool)
	// Compute converts relative value of the named property into absolute
	// one. Returns false when conversion is not possible in this context, the
	// value is then kept as is.
	Compute(name string, v Value) (Value, bool)
}

type resolution int

const (
	unresolved resolution = iota
	resolved
)

// Property holds value of a single property through its resolution
// lifecycle: specified (as declared), computed (inheritance and relative
// units applied) and actual (environment restrictions applied).
type Property struct {
	name      string
	sequence  int
	specified Value

	state    resolution
	computed Value // valid only when state is resolved
	actual   Value // valid only when state is resolved
}

// NewProperty creates unresolved property record. Sequence is 0-based order of
// the record in its declaration and is used to break ties between records
// for the same property.
func NewProperty(name string, sequence int, specified Value) *Property {
	return &Property{name: name, sequence: sequence, specified: specified}
}

// Name returns property name, e.g. "margin-top".
func (p *Property) Name() string { return p.name }

// Sequence returns declaration order index.
func (p *Property) Sequence() int { return p.sequence }

// Specified returns value as declared.
func (p *Property) Specified() Value { return p.specified }

// Computed returns computed value, which is the specified one until property
// is resolved.
func (p *Property) Computed() Value {
	if p.state == resolved {
		return p.computed
	}
	return p.specified
}

// Actual returns computed value restricted by presentation environment. Until
// property is resolved this is the computed value.
func (p *Property) Actual() Value {
	if p.state == resolved {
		return p.actual
	}
	return p.Computed()
}

// IsResolved reports if property has an absolute value or a relative value
// which has been computed already. Absolute values never wait for
// resolution, the record state is not changed for them.
func (p *Property) IsResolved() bool {
	return p.state == resolved || (p.specified.IsAbsoluteUnit() && !p.specified.ForcedInherit())
}

// IsResolvable reports if resolution could change the value: it is either
// inherited or a relative primitive value.
func (p *Property) IsResolvable() bool {
	return p.specified.ForcedInherit() ||
		(p.specified.IsPrimitive() && !p.specified.IsAbsoluteUnit())
}

// Resolve computes property value in the given context. Once resolved,
// values never change and subsequent calls do nothing. Problems are reported
// to diag and resolution falls back to the specified value.
//
// Parent records must be resolved first, asking for unresolved parent is a
// programming error.
func (p *Property) Resolve(ctx Context, diag Diagnostics) {
	if p.state == resolved {
		return
	}
	if p.specified.IsAbsoluteUnit() && !p.specified.ForcedInherit() {
		// nothing to do, accessors return specified value
		return
	}
	if diag == nil {
		diag = nopSink{}
	}

	computed := p.specified
	if p.IsResolvable() {
		if p.specified.ForcedInherit() {
			parent, ok := lookupParent(ctx, p.name)
			if ok {
				if !parent.IsResolved() {
					panic(fmt.Sprintf("style: parent property %q is not resolved, tree must be resolved in pre-order", p.name))
				}
				computed = parent.Computed().Copy()
			} else {
				diag.Report(Diagnostic{Kind: KindInheritAtRoot, Property: p.name, Value: p.specified.String()})
			}
		}
		// parent value could be relative itself if it was never computed
		if computed.RequiresComputation() && ctx != nil {
			if v, ok := ctx.Compute(p.name, computed); ok {
				computed = v
			}
		}
	}

	p.computed = computed
	p.actual = restrict(computed)
	p.state = resolved
}

func lookupParent(ctx Context, name string) (*Property, bool) {
	if ctx == nil {
		return nil, false
	}
	parent, ok := ctx.Parent(name)
	return parent, ok && parent != nil
}

// restrict applies limitations of presentation environment to computed
// value, for example reduced color palette. No restrictions presently.
func restrict(computed Value) Value {
	return computed
}

// Copy returns structural copy: same name, sequence and specified value, but
// fresh (unresolved) state.
func (p *Property) Copy() *Property {
	return NewProperty(p.name, p.sequence, p.specified.Copy())
}

// CopyForInherit returns copy to be used by child element inheriting this
// property: the copy is resolved and shares computed and actual values with
// the original.
func (p *Property) CopyForInherit() *Property {
	if !p.IsResolved() {
		panic(fmt.Sprintf("style: inheriting unresolved property %q", p.name))
	}
	np := p.Copy()
	np.computed = p.Computed()
	np.actual = p.Actual()
	np.state = resolved
	return np
}

// String returns "name=specified" for debugging.
func (p *Property) String() string {
	return p.name + "=" + p.specified.String()
}

// Winner selects record which wins the cascade among records for the same
// property: important declarations beat normal ones, then the latest by
// sequence wins. Returns nil for empty input.
func Winner(props []*Property) *Property {
	var w *Property
	for _, p := range props {
		if w == nil {
			w = p
			continue
		}
		pi, wi := p.specified.Important(), w.specified.Important()
		if pi != wi {
			if pi {
				w = p
			}
			continue
		}
		if p.sequence >= w.sequence {
			w = p
		}
	}
	return w
}
