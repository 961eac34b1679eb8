package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"cascade/css"
)

// Loader builds documents reading inline style attributes of elements.
type Loader struct {
	parser *css.Parser
	log    *zap.Logger
}

func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{parser: css.NewParser(log), log: log.Named("loader")}
}

// LoadHTML parses HTML document, its root is the <html> element.
func (l *Loader) LoadHTML(r io.Reader) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse html: %w", err)
	}

	var root *html.Node
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			root = c
			break
		}
	}
	if root == nil {
		return nil, errors.New("html document has no root element")
	}

	doc := &Document{Root: l.fromHTML(root, nil)}
	l.log.Debug("HTML document loaded", zap.Int("elements", doc.Len()))
	return doc, nil
}

func (l *Loader) fromHTML(n *html.Node, parent *Element) *Element {
	e := newElement(n.Data, parent)
	for _, a := range n.Attr {
		if a.Namespace != "" {
			continue
		}
		switch strings.ToLower(a.Key) {
		case "id":
			e.ID = a.Val
		case "class":
			e.Class = a.Val
		case "style":
			e.Declaration = l.parser.ParseDeclaration(a.Val)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			l.fromHTML(c, e)
		}
	}
	return e
}

// LoadXML parses XML document (XHTML, FB2 or any other vocabulary using
// "style" attributes).
func (l *Loader) LoadXML(r io.Reader) (*Document, error) {
	xd := etree.NewDocument()
	if _, err := xd.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to parse xml: %w", err)
	}
	root := xd.Root()
	if root == nil {
		return nil, errors.New("xml document has no root element")
	}

	doc := &Document{Root: l.fromXML(root, nil)}
	l.log.Debug("XML document loaded", zap.Int("elements", doc.Len()))
	return doc, nil
}

func (l *Loader) fromXML(x *etree.Element, parent *Element) *Element {
	e := newElement(x.Tag, parent)
	e.ID = x.SelectAttrValue("id", "")
	e.Class = x.SelectAttrValue("class", "")
	if s := x.SelectAttrValue("style", ""); s != "" {
		e.Declaration = l.parser.ParseDeclaration(s)
	}
	for _, c := range x.ChildElements() {
		l.fromXML(c, e)
	}
	return e
}
