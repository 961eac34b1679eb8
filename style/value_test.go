package style

import (
	"math"
	"testing"

	"go.uber.org/zap"

	"cascade/css"
)

func parseValue(t *testing.T, decl string) Value {
	t.Helper()
	d := css.NewParser(zap.NewNop()).ParseDeclaration("x: " + decl)
	cv, ok := d.PropertyValue("x")
	if !ok {
		t.Fatalf("unable to parse %q", decl)
	}
	return NewValue(cv, d.PropertyPriority("x"))
}

func TestNewValue_Classification(t *testing.T) {
	tests := []struct {
		input    string
		unit     Unit
		absolute bool
		relative bool
		inherit  bool
	}{
		{"12px", UnitPx, true, false, false},
		{"12PX", UnitPx, true, false, false},
		{"10pt", UnitPt, true, false, false},
		{"1.5", UnitNumber, true, false, false},
		{"1.5em", UnitEm, false, true, false},
		{"2rem", UnitRem, false, true, false},
		{"50%", UnitPercent, false, true, false},
		{"10vmin", UnitVmin, false, true, false},
		{"bold", UnitIdent, true, false, false},
		{"inherit", UnitIdent, true, false, true},
		{"INHERIT", UnitIdent, true, false, true},
		{`"Times"`, UnitString, true, false, false},
		{"#fff", UnitColor, true, false, false},
		{"rgb(1, 2, 3)", UnitColor, true, false, false},
		{"url(a.png)", UnitURI, true, false, false},
		{"calc(1px + 2em)", UnitFunction, false, false, false},
		{"90deg", UnitUnknown, false, false, false},
		{"1px 2px", UnitList, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v := parseValue(t, tt.input)
			if v.Unit() != tt.unit {
				t.Errorf("unit = %s, want %s", v.Unit(), tt.unit)
			}
			if v.IsAbsoluteUnit() != tt.absolute {
				t.Errorf("IsAbsoluteUnit = %v, want %v", v.IsAbsoluteUnit(), tt.absolute)
			}
			if v.RequiresComputation() != tt.relative {
				t.Errorf("RequiresComputation = %v, want %v", v.RequiresComputation(), tt.relative)
			}
			if v.ForcedInherit() != tt.inherit {
				t.Errorf("ForcedInherit = %v, want %v", v.ForcedInherit(), tt.inherit)
			}
			if v.IsList() == v.IsPrimitive() {
				t.Errorf("value must be either list or primitive")
			}
		})
	}
}

func TestNewValue_Priority(t *testing.T) {
	v := parseValue(t, "12px !important")
	if !v.Important() {
		t.Fatal("expected important value")
	}
	if v.String() != "12px !important" {
		t.Errorf("String() = %q", v.String())
	}
	if v.Raw() != "12px" {
		t.Errorf("Raw() = %q", v.Raw())
	}
}

func TestValue_ToPixels(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"12px", 12, true},
		{"12pt", 16, true},
		{"1in", 96, true},
		{"2.54cm", 96, true},
		{"1pc", 16, true},
		{"0", 0, true},
		{"3", 0, false},
		{"1em", 0, false},
		{"50%", 0, false},
		{"bold", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseValue(t, tt.input).ToPixels()
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_IsLength(t *testing.T) {
	for in, want := range map[string]bool{
		"0":    true,
		"1px":  true,
		"2em":  true,
		"3":    false,
		"50%":  false,
		"bold": false,
	} {
		if got := parseValue(t, in).IsLength(); got != want {
			t.Errorf("IsLength(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValue_Equal(t *testing.T) {
	if !Px(12).Equal(parseValue(t, "12.0px")) {
		t.Error("expected 12px values to be equal regardless of textual form")
	}
	if Px(12).Equal(Length(12, UnitPt)) {
		t.Error("different units must not be equal")
	}
	if Px(12).Equal(Px(12).WithPriority(parseValue(t, "1px !important"))) {
		t.Error("priority must be compared")
	}
	if !Keyword("Bold").Equal(parseValue(t, "bold")) {
		t.Error("expected keywords to be equal")
	}
	if !parseValue(t, "1px 2px").Equal(ListOf(Px(1), Px(2))) {
		t.Error("expected lists to be equal")
	}
}

func TestValue_CopyIsDeep(t *testing.T) {
	orig := ListOf(Px(1), Px(2))
	cp := orig.Copy()
	cp.items[0] = Px(10)
	if m, _ := orig.Items()[0].Magnitude(); m != 1 {
		t.Errorf("copy shares items with original")
	}
}

func TestListOf(t *testing.T) {
	v := ListOf(Keyword("arial"), parseValue(t, ","), Keyword("serif"))
	if v.Raw() != "arial, serif" {
		t.Errorf("Raw() = %q", v.Raw())
	}
	if !v.IsList() || len(v.Items()) != 3 {
		t.Errorf("unexpected list %v", v.Items())
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on nested list")
		}
	}()
	ListOf(v)
}
