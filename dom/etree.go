package dom

import (
	"github.com/beevik/etree"

	"github.com/dpotapov/go-markup/diag"
)

// EtreeFactory builds github.com/beevik/etree documents. Nodes are etree.Token values: the
// parser creates *etree.Element and *etree.CharData tokens. To fill a document, pass
// &doc.Element as the parent.
type EtreeFactory struct {
	documentElement, head, body *etree.Element
}

var _ NodeFactory[etree.Token] = (*EtreeFactory)(nil)

// ParseEtree parses markup into a new etree document.
func ParseEtree(markup string) (*etree.Document, diag.List) {
	doc := etree.NewDocument()
	diags := ParseFragment[etree.Token](markup, &doc.Element, &EtreeFactory{})
	return doc, diags
}

func (f *EtreeFactory) CreateElement(tag string) etree.Token {
	return etree.NewElement(tag)
}

func (f *EtreeFactory) CreateText(text string) etree.Token {
	return etree.NewText(text)
}

// AppendChild attaches child to parent. Parents other than *etree.Element cannot have
// children and are ignored.
func (f *EtreeFactory) AppendChild(parent, child etree.Token) {
	if p, ok := parent.(*etree.Element); ok {
		p.AddChild(child)
	}
}

func (f *EtreeFactory) SetAttribute(el etree.Token, name, value string) {
	if e, ok := el.(*etree.Element); ok {
		e.CreateAttr(name, value)
	}
}

func (f *EtreeFactory) IsVoid(tag string) bool { return IsVoidElement(tag) }

func (f *EtreeFactory) DocumentElement() (etree.Token, bool) {
	if f.documentElement == nil {
		return nil, false
	}
	return f.documentElement, true
}

func (f *EtreeFactory) SetDocumentElement(el etree.Token) { f.documentElement = asElement(el) }
func (f *EtreeFactory) SetHead(el etree.Token)            { f.head = asElement(el) }
func (f *EtreeFactory) SetBody(el etree.Token)            { f.body = asElement(el) }

// Head returns the registered <head> element or nil.
func (f *EtreeFactory) Head() *etree.Element { return f.head }

// Body returns the registered <body> element or nil.
func (f *EtreeFactory) Body() *etree.Element { return f.body }

func asElement(t etree.Token) *etree.Element {
	el, _ := t.(*etree.Element)
	return el
}
