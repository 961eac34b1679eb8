package dom

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"cascade/utils/debug"
)

// DefaultLabelTemplate renders elements as CSS-like selectors: div#id.class.
const DefaultLabelTemplate = `{{ .Name }}{{ with .ID }}#{{ . }}{{ end }}{{ range .Classes }}.{{ . }}{{ end }}`

// LabelValues is what element label template could use.
type LabelValues struct {
	Name       string
	ID         string
	Classes    []string
	Depth      int
	Properties int
}

// Labeler names elements in dumps.
type Labeler struct {
	tmpl *template.Template
}

// NewLabeler parses label template, empty text selects default one.
func NewLabeler(text string) (*Labeler, error) {
	if len(text) == 0 {
		text = DefaultLabelTemplate
	}
	tmpl, err := template.New("label").Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse label template: %w", err)
	}
	return &Labeler{tmpl: tmpl}, nil
}

// Label expands template for the element.
func (l *Labeler) Label(e *Element, depth int) (string, error) {
	values := LabelValues{
		Name:       e.Name,
		ID:         e.ID,
		Classes:    strings.Fields(e.Class),
		Depth:      depth,
		Properties: e.Style.Len(),
	}
	buf := new(bytes.Buffer)
	if err := l.tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand label template for element %s: %w", e.Name, err)
	}
	return buf.String(), nil
}

// Dump returns readable tree of resolved document: every element with its
// properties, specified and computed values.
func Dump(doc *Document, l *Labeler) (string, error) {
	tw := debug.NewTreeWriter()

	var err error
	doc.Walk(func(e *Element, depth int) bool {
		var label string
		if label, err = l.Label(e, depth); err != nil {
			return false
		}
		tw.Line(depth*2, "%s", label)
		for _, name := range e.Style.Names() {
			p, _ := e.Style.Get(name)
			tw.Transition(depth*2+1, name, p.Specified().String(), p.Computed().String())
		}
		return err == nil
	})
	if err != nil {
		return "", err
	}
	return tw.String(), nil
}
