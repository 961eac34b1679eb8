package debug

import (
	"fmt"
	"strings"
)

// TreeWriter builds indented text dumps, two spaces per level.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Transition writes "label: from -> to", or just "label: from" when value did
// not change.
func (tw TreeWriter) Transition(depth int, label, from, to string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(from)
	if to != from {
		tw.w.WriteString(" -> ")
		tw.w.WriteString(to)
	}
	tw.w.WriteByte('\n')
}
