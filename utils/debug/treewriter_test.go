package debug

import (
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "html", nil, "html\n"},
		{"depth 1", 1, "body", nil, "  body\n"},
		{"depth 2", 2, "p", nil, "    p\n"},
		{"with formatting", 1, "div#%s", []any{"main"}, "  div#main\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Transition(t *testing.T) {
	tests := []struct {
		name     string
		depth    int
		label    string
		from, to string
		want     string
	}{
		{"unchanged", 0, "color", "#ff0000", "#ff0000", "color: #ff0000\n"},
		{"computed", 1, "font-size", "2em", "32px", "  font-size: 2em -> 32px\n"},
		{"important", 2, "margin-top", "1px !important", "1px !important", "    margin-top: 1px !important\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Transition(tt.depth, tt.label, tt.from, tt.to)
			if got := tw.String(); got != tt.want {
				t.Errorf("Transition() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Tree(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "html")
	tw.Transition(1, "font-size", "20px", "20px")
	tw.Line(2, "body")
	tw.Transition(3, "font-size", "inherit", "20px")

	want := "html\n  font-size: 20px\n    body\n      font-size: inherit -> 20px\n"
	if got := tw.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
