package css_test

import (
	"testing"

	"go.uber.org/zap"

	"cascade/css"
)

func TestNormalizeColor(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#F00", "#ff0000", true},
		{"#00FF7f", "#00ff7f", true},
		{"red", "#ff0000", true},
		{"CornflowerBlue", "#6495ed", true},
		{"rgb(255, 0, 0)", "#ff0000", true},
		{"rgb(100%, 50%, 0%)", "#ff8000", true},
		{"rgba(0, 0, 255, 1)", "#0000ff", true},
		{"rgb(300, -5, 0)", "#ff0000", true},
		{"rgba(0, 0, 255, 0.5)", "", false},
		{"transparent", "", false},
		{"currentcolor", "", false},
		{"#12", "", false},
		{"12px", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			val, _ := p.ParseDeclaration("color: " + tt.in).PropertyValue("color")
			got, ok := css.NormalizeColor(val)
			if ok != tt.ok {
				t.Fatalf("NormalizeColor(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !ok {
				if got.Raw != val.Raw {
					t.Errorf("value changed on failure: %q -> %q", val.Raw, got.Raw)
				}
				return
			}
			if got.Raw != tt.want || got.Kind != css.KindHash {
				t.Errorf("NormalizeColor(%q) = %q (%s), want %q", tt.in, got.Raw, got.Kind, tt.want)
			}
		})
	}
}

func TestDeclaration_NormalizeColors(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	decl := p.ParseDeclaration(`color: Red; background-color: rgb(0,128,0); border: 1px solid #ABC; font-family: red, serif; margin: 1px`)
	decl.NormalizeColors()

	check := func(name, want string) {
		t.Helper()
		val, _ := decl.PropertyValue(name)
		if val.Raw != want {
			t.Errorf("%s: expected %q, got %q", name, want, val.Raw)
		}
	}
	check("color", "#ff0000")
	check("background-color", "#008000")
	check("border", "1px solid #aabbcc")
	check("font-family", "red, serif")
	check("margin", "1px")

	border, _ := decl.PropertyValue("border")
	if border.Items[2].Kind != css.KindHash {
		t.Errorf("expected border color item to become hash, got %s", border.Items[2].Kind)
	}

	// second pass must not change anything
	before := decl.String()
	decl.NormalizeColors()
	if after := decl.String(); after != before {
		t.Errorf("normalization is not idempotent: %q -> %q", before, after)
	}
}
