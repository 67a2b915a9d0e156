package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Render writes the HTML serialization of n and its subtree to w. A document node renders its
// children.
func Render(w io.Writer, n *Node) error {
	if err := html.Render(w, toNetHTML(n)); err != nil {
		return fmt.Errorf("render <%s>: %w", n.Data, err)
	}
	return nil
}

// OuterHTML returns the HTML serialization of n and its subtree. Rendering errors are dropped.
func (n *Node) OuterHTML() string {
	var buf strings.Builder
	_ = Render(&buf, n)
	return buf.String()
}

// toNetHTML copies the subtree rooted at n into a golang.org/x/net/html tree.
func toNetHTML(n *Node) *html.Node {
	dst := &html.Node{Type: n.Type, DataAtom: n.DataAtom, Data: n.Data}
	for _, a := range n.Attr {
		dst.Attr = append(dst.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dst.AppendChild(toNetHTML(c))
	}
	return dst
}
