package dom

import (
	"slices"
	"testing"

	"cascade/style"
)

func TestStyle_Add(t *testing.T) {
	s := NewStyle()
	s.Add(
		style.NewProperty("margin-top", 1, style.Px(1)),
		style.NewProperty("margin-top", 2, style.Px(2)),
		style.NewProperty("margin-left", 3, style.Px(3)),
	)

	p, ok := s.Get("margin-top")
	if !ok || p.Sequence() != 2 {
		t.Errorf("expected later declaration to win, got %v", p)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if _, ok := s.Get("padding-top"); ok {
		t.Error("unexpected property")
	}
}

func TestStyle_Names(t *testing.T) {
	s := NewStyle()
	for i, name := range []string{"z-index", "border-2", "border-10", "border-1", "color"} {
		s.Add(style.NewProperty(name, i, style.Keyword("x")))
	}
	want := []string{"border-1", "border-2", "border-10", "color", "z-index"}
	if got := s.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestStyle_Nil(t *testing.T) {
	var s *Style
	if _, ok := s.Get("color"); ok {
		t.Error("nil style has no properties")
	}
	if s.Names() != nil || s.Len() != 0 || s.FontSize() != 0 {
		t.Error("nil style must be empty")
	}
}
