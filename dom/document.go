package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dpotapov/go-markup/diag"
)

// Document is a tree of *Node values and the NodeFactory that builds it.
type Document struct {
	// Root is the document node. Fragments are attached to it unless a parent is given.
	Root *Node

	documentElement, head, body *Node
}

var _ NodeFactory[*Node] = (*Document)(nil)

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{Root: &Node{Type: html.DocumentNode}}
}

// Parse parses markup into a new Document.
func Parse(markup string) (*Document, diag.List) {
	d := NewDocument()
	diags := d.ParseFragment(markup, nil)
	return d, diags
}

// ParseFragment parses markup and attaches the nodes to parent, or to d.Root if parent is nil.
func (d *Document) ParseFragment(markup string, parent *Node) diag.List {
	if parent == nil {
		parent = d.Root
	}
	return ParseFragment[*Node](markup, parent, d)
}

// DocumentElement returns the registered <html> element.
func (d *Document) DocumentElement() (*Node, bool) {
	return d.documentElement, d.documentElement != nil
}

// Head returns the registered <head> element or nil.
func (d *Document) Head() *Node { return d.head }

// Body returns the registered <body> element or nil.
func (d *Document) Body() *Node { return d.body }

func (d *Document) SetDocumentElement(el *Node) { d.documentElement = el }
func (d *Document) SetHead(el *Node)            { d.head = el }
func (d *Document) SetBody(el *Node)            { d.body = el }

func (d *Document) CreateElement(tag string) *Node {
	return &Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}
}

func (d *Document) CreateText(text string) *Node {
	return &Node{Type: html.TextNode, Data: text}
}

func (d *Document) AppendChild(parent, child *Node) {
	parent.AppendChild(child)
}

func (d *Document) SetAttribute(el *Node, name, value string) {
	el.SetAttribute(name, value)
}

func (d *Document) IsVoid(tag string) bool {
	return IsVoidElement(tag)
}
