// Package dom builds node trees from HTML fragments.
//
// The fragment parser is a tag-matching tree builder, not an HTML5 tokenizer: for every start
// tag it looks for the closing tag of the same name, counting nested elements with that name,
// and recurses into the markup between them. Node construction is delegated to a NodeFactory,
// so the same parser fills a *Node tree (Document), a golang.org/x/net/html tree
// (NetHTMLFactory) or a github.com/beevik/etree document (EtreeFactory).
package dom

import "github.com/dpotapov/go-markup/diag"

// Diagnostic codes recorded by this package.
const (
	CodeUnclosedElement     diag.Code = "dom.unclosed-element"
	CodeStrayEndTag         diag.Code = "dom.stray-end-tag"
	CodeUnterminatedTag     diag.Code = "dom.unterminated-tag"
	CodeUnterminatedComment diag.Code = "dom.unterminated-comment"
)

const whitespace = " \t\r\n\f"
