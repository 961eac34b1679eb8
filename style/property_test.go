package style

import (
	"testing"
)

type testContext struct {
	parents map[string]*Property
	// fontSize is used to compute em and percentages
	fontSize float64
}

func (c *testContext) Parent(name string) (*Property, bool) {
	p, ok := c.parents[name]
	return p, ok
}

func (c *testContext) Compute(_ string, v Value) (Value, bool) {
	m, _ := v.Magnitude()
	switch v.Unit() {
	case UnitEm:
		return Px(m * c.fontSize), true
	case UnitPercent:
		return Px(m * c.fontSize / 100), true
	}
	return v, false
}

func TestProperty_AbsoluteIsResolved(t *testing.T) {
	for _, v := range []Value{Px(12), Length(3, UnitPt), Keyword("bold"), Keyword("red")} {
		p := NewProperty("x", 0, v)
		if !p.IsResolved() {
			t.Errorf("%s: expected resolved without context", p)
		}
		if p.IsResolvable() {
			t.Errorf("%s: absolute value must not be resolvable", p)
		}
		if !p.Computed().Equal(v) || !p.Actual().Equal(v) {
			t.Errorf("%s: computed/actual differ from specified", p)
		}
	}
}

func TestProperty_ResolveRelative(t *testing.T) {
	p := NewProperty("margin-top", 3, Length(1.5, UnitEm))
	if p.IsResolved() {
		t.Fatal("relative value must not be resolved before resolution")
	}
	if !p.IsResolvable() {
		t.Fatal("relative value must be resolvable")
	}

	var diag Collector
	p.Resolve(&testContext{fontSize: 10}, &diag)

	if !p.IsResolved() {
		t.Fatal("expected resolved property")
	}
	if !p.Computed().Equal(Px(15)) {
		t.Errorf("computed = %s, want 15px", p.Computed())
	}
	if !p.Actual().Equal(p.Computed()) {
		t.Errorf("actual = %s, want %s", p.Actual(), p.Computed())
	}
	if !p.Specified().Equal(Length(1.5, UnitEm)) {
		t.Errorf("specified value changed to %s", p.Specified())
	}
	if diag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", diag.Err())
	}
}

func TestProperty_ResolveIsIdempotent(t *testing.T) {
	p := NewProperty("margin-top", 0, Length(2, UnitEm))
	p.Resolve(&testContext{fontSize: 10}, nil)
	first := p.Computed()

	// different context must not matter once resolved
	p.Resolve(&testContext{fontSize: 100}, nil)
	if !p.Computed().Equal(first) || !p.Actual().Equal(first) {
		t.Errorf("second resolution changed value: %s -> %s", first, p.Computed())
	}
}

func TestProperty_InheritFromParent(t *testing.T) {
	parent := NewProperty("font-size", 0, Length(2, UnitEm))
	parent.Resolve(&testContext{fontSize: 8}, nil)

	child := NewProperty("font-size", 7, Inherit())
	if child.IsResolved() {
		t.Fatal("inherit must not be resolved before resolution")
	}
	if !child.IsResolvable() {
		t.Fatal("inherit must be resolvable")
	}

	var diag Collector
	child.Resolve(&testContext{parents: map[string]*Property{"font-size": parent}, fontSize: 100}, &diag)

	if !child.Computed().Equal(parent.Computed()) {
		t.Errorf("computed = %s, want parent's %s", child.Computed(), parent.Computed())
	}
	if !child.Specified().ForcedInherit() {
		t.Errorf("specified value changed to %s", child.Specified())
	}
	if diag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", diag.Err())
	}
}

func TestProperty_InheritAbsoluteParent(t *testing.T) {
	parent := NewProperty("color", 0, Keyword("red"))
	child := NewProperty("color", 1, Inherit())
	child.Resolve(&testContext{parents: map[string]*Property{"color": parent}}, nil)

	if !child.Computed().Equal(Keyword("red")) {
		t.Errorf("computed = %s, want red", child.Computed())
	}
}

func TestProperty_InheritAtRoot(t *testing.T) {
	p := NewProperty("color", 0, Inherit())

	var diag Collector
	p.Resolve(&testContext{}, &diag)
	p.Resolve(&testContext{}, &diag)

	if !p.IsResolved() {
		t.Fatal("expected resolved property")
	}
	if !p.Computed().Equal(p.Specified()) {
		t.Errorf("computed = %s, want specified %s", p.Computed(), p.Specified())
	}
	if diag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", diag.Len())
	}
	if d := diag.Diagnostics()[0]; d.Kind != KindInheritAtRoot || d.Property != "color" {
		t.Errorf("unexpected diagnostic %+v", d)
	}
}

func TestProperty_InheritWithoutContext(t *testing.T) {
	p := NewProperty("color", 0, Inherit())

	var diag Collector
	p.Resolve(nil, &diag)
	if diag.Len() != 1 {
		t.Errorf("expected one diagnostic, got %d", diag.Len())
	}
}

func TestProperty_InheritUnresolvedParentPanics(t *testing.T) {
	parent := NewProperty("font-size", 0, Length(2, UnitEm))
	child := NewProperty("font-size", 1, Inherit())

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unresolved parent")
		}
	}()
	child.Resolve(&testContext{parents: map[string]*Property{"font-size": parent}}, nil)
}

func TestProperty_ListNotResolvable(t *testing.T) {
	p := NewProperty("font-family", 0, ListOf(Keyword("arial"), Keyword("serif")))
	if p.IsResolvable() {
		t.Error("list value must not be resolvable")
	}
	if p.IsResolved() {
		t.Error("list value must not be resolved before resolution")
	}

	var diag Collector
	p.Resolve(&testContext{}, &diag)
	if !p.IsResolved() {
		t.Error("expected resolved property")
	}
	if !p.Computed().Equal(p.Specified()) || !p.Actual().Equal(p.Specified()) {
		t.Errorf("computed = %s, want %s", p.Computed(), p.Specified())
	}
	if diag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", diag.Err())
	}
}

func TestProperty_UncomputableKeepsSpecified(t *testing.T) {
	p := NewProperty("width", 0, Length(5, UnitVw))
	p.Resolve(&testContext{}, nil)
	if !p.IsResolved() || !p.Computed().Equal(Length(5, UnitVw)) {
		t.Errorf("computed = %s, want 5vw", p.Computed())
	}
}

func TestProperty_Copy(t *testing.T) {
	p := NewProperty("margin-top", 4, Length(1, UnitEm))
	p.Resolve(&testContext{fontSize: 16}, nil)

	cp := p.Copy()
	if cp.IsResolved() {
		t.Error("copy must have fresh resolution state")
	}
	if cp.Name() != p.Name() || cp.Sequence() != p.Sequence() || !cp.Specified().Equal(p.Specified()) {
		t.Errorf("copy %s(%d) differs from %s(%d)", cp, cp.Sequence(), p, p.Sequence())
	}
	if !cp.Computed().Equal(Length(1, UnitEm)) {
		t.Errorf("copy computed = %s, want specified", cp.Computed())
	}
}

func TestProperty_CopyForInherit(t *testing.T) {
	p := NewProperty("font-size", 2, Length(50, UnitPercent))
	p.Resolve(&testContext{fontSize: 20}, nil)

	cp := p.CopyForInherit()
	if !cp.IsResolved() {
		t.Fatal("inherited copy must be resolved")
	}
	if !cp.Computed().Equal(p.Computed()) || !cp.Actual().Equal(p.Actual()) {
		t.Errorf("copy computed/actual = %s/%s, want %s/%s", cp.Computed(), cp.Actual(), p.Computed(), p.Actual())
	}

	// absolute values are resolved without explicit resolution
	abs := NewProperty("color", 0, Keyword("red")).CopyForInherit()
	if !abs.IsResolved() || !abs.Computed().Equal(Keyword("red")) {
		t.Errorf("unexpected inherited copy %s", abs)
	}
}

func TestProperty_CopyForInheritUnresolvedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewProperty("font-size", 0, Length(1, UnitEm)).CopyForInherit()
}

func TestProperty_String(t *testing.T) {
	p := NewProperty("margin-top", 0, Px(1).WithPriority(Value{important: true}))
	if got := p.String(); got != "margin-top=1px !important" {
		t.Errorf("String() = %q", got)
	}
}

func TestWinner(t *testing.T) {
	normal1 := NewProperty("color", 0, Keyword("red"))
	normal2 := NewProperty("color", 5, Keyword("blue"))
	important := NewProperty("color", 2, Keyword("green").WithPriority(Value{important: true}))

	tests := []struct {
		name  string
		props []*Property
		want  *Property
	}{
		{"empty", nil, nil},
		{"single", []*Property{normal1}, normal1},
		{"latest wins", []*Property{normal2, normal1}, normal2},
		{"important wins", []*Property{normal1, important, normal2}, important},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Winner(tt.props); got != tt.want {
				t.Errorf("Winner() = %v, want %v", got, tt.want)
			}
		})
	}
}
