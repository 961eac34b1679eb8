// Package dom keeps minimal document tree with inline styles and resolves
// property values for every element.
package dom

import (
	"cascade/css"
)

// Element is a document node which could carry style.
type Element struct {
	Name        string
	ID          string
	Class       string
	Parent      *Element
	Children    []*Element
	Declaration *css.Declaration // inline style attribute, never nil
	Style       *Style           // set by Resolver
}

// Document is an element tree.
type Document struct {
	Root *Element
}

func newElement(name string, parent *Element) *Element {
	e := &Element{Name: name, Parent: parent, Declaration: css.NewDeclaration()}
	if parent != nil {
		parent.Children = append(parent.Children, e)
	}
	return e
}

// Walk visits elements in pre-order, every parent before its children.
// Returning false from fn skips element's subtree.
func (d *Document) Walk(fn func(e *Element, depth int) bool) {
	if d == nil || d.Root == nil {
		return
	}
	walk(d.Root, 0, fn)
}

func walk(e *Element, depth int, fn func(*Element, int) bool) {
	if !fn(e, depth) {
		return
	}
	for _, c := range e.Children {
		walk(c, depth+1, fn)
	}
}

// Len returns number of elements in the document.
func (d *Document) Len() int {
	n := 0
	d.Walk(func(*Element, int) bool {
		n++
		return true
	})
	return n
}

// FindByID returns first element with given id attribute.
func (d *Document) FindByID(id string) *Element {
	var found *Element
	d.Walk(func(e *Element, _ int) bool {
		if found != nil {
			return false
		}
		if e.ID == id {
			found = e
			return false
		}
		return true
	})
	return found
}
