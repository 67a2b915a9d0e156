package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dpotapov/go-markup/diag"
)

// NetHTMLFactory builds golang.org/x/net/html trees, so a parsed fragment can be handed to code
// that already works with *html.Node (html.Render, selectors built on x/net/html).
type NetHTMLFactory struct {
	documentElement, head, body *html.Node
}

var _ NodeFactory[*html.Node] = (*NetHTMLFactory)(nil)

// ParseNetHTML parses markup into a new *html.Node document.
func ParseNetHTML(markup string) (*html.Node, diag.List) {
	doc := &html.Node{Type: html.DocumentNode}
	diags := ParseFragment[*html.Node](markup, doc, &NetHTMLFactory{})
	return doc, diags
}

func (f *NetHTMLFactory) CreateElement(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: atom.Lookup([]byte(tag)), Data: tag}
}

func (f *NetHTMLFactory) CreateText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func (f *NetHTMLFactory) AppendChild(parent, child *html.Node) {
	parent.AppendChild(child)
}

func (f *NetHTMLFactory) SetAttribute(el *html.Node, name, value string) {
	for i := range el.Attr {
		if el.Attr[i].Key == name {
			el.Attr[i].Val = value
			return
		}
	}
	el.Attr = append(el.Attr, html.Attribute{Key: name, Val: value})
}

func (f *NetHTMLFactory) IsVoid(tag string) bool { return IsVoidElement(tag) }

func (f *NetHTMLFactory) DocumentElement() (*html.Node, bool) {
	return f.documentElement, f.documentElement != nil
}

func (f *NetHTMLFactory) SetDocumentElement(el *html.Node) { f.documentElement = el }
func (f *NetHTMLFactory) SetHead(el *html.Node)            { f.head = el }
func (f *NetHTMLFactory) SetBody(el *html.Node)            { f.body = el }

// Head returns the registered <head> element or nil.
func (f *NetHTMLFactory) Head() *html.Node { return f.head }

// Body returns the registered <body> element or nil.
func (f *NetHTMLFactory) Body() *html.Node { return f.body }
