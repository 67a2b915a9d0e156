package dom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// A NodeFactory creates and attaches the nodes requested by ParseFragment. The parser never
// owns the nodes and never branches on concrete element types; everything tag-specific lives
// behind the factory.
type NodeFactory[N any] interface {
	// CreateElement returns a detached element for the lower-case tag name.
	CreateElement(tag string) N
	// CreateText returns a detached text node.
	CreateText(text string) N
	// AppendChild attaches child as the last child of parent.
	AppendChild(parent, child N)
	// SetAttribute sets an attribute of an element created by CreateElement.
	SetAttribute(el N, name, value string)
	// IsVoid reports whether elements with the tag never have a closing tag or children.
	IsVoid(tag string) bool

	// DocumentElement returns the registered <html> element, if any.
	DocumentElement() (N, bool)
	// SetDocumentElement, SetHead and SetBody register the document's structural elements.
	SetDocumentElement(el N)
	SetHead(el N)
	SetBody(el N)
}

var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// IsVoidElement reports whether tag is one of the HTML void elements: area, base, br, col,
// embed, hr, img, input, link, meta, param, source, track and wbr.
func IsVoidElement(tag string) bool {
	return voidElements[atom.Lookup([]byte(strings.ToLower(tag)))]
}
