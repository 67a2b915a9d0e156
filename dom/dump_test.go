package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
)

func dumpIndent(w io.Writer, level int) {
	_, _ = io.WriteString(w, "| ")
	for i := 0; i < level; i++ {
		_, _ = io.WriteString(w, "  ")
	}
}

func dumpAttr(w io.Writer, level int, key, val string) {
	_, _ = io.WriteString(w, "\n")
	dumpIndent(w, level)
	_, _ = fmt.Fprintf(w, `%s="%s"`, key, val)
}

func dumpLevel(w io.Writer, n *Node, level int) {
	dumpIndent(w, level)
	level++
	switch n.Type {
	case html.ElementNode:
		_, _ = fmt.Fprintf(w, "<%s>", n.Data)
		for _, a := range n.Attr {
			dumpAttr(w, level, a.Key, a.Val)
		}
	case html.TextNode:
		_, _ = fmt.Fprintf(w, `"%s"`, n.Data)
	default:
		_, _ = fmt.Fprintf(w, "?%d", n.Type)
	}
	_, _ = io.WriteString(w, "\n")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dumpLevel(w, c, level)
	}
}

// dump renders the children of n, one node or attribute per line.
func dump(n *Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dumpLevel(&b, c, 0)
	}
	return b.String()
}

func dumpNetHTMLLevel(w io.Writer, n *html.Node, level int) {
	dumpIndent(w, level)
	level++
	switch n.Type {
	case html.ElementNode:
		_, _ = fmt.Fprintf(w, "<%s>", n.Data)
		for _, a := range n.Attr {
			dumpAttr(w, level, a.Key, a.Val)
		}
	case html.TextNode:
		_, _ = fmt.Fprintf(w, `"%s"`, n.Data)
	default:
		_, _ = fmt.Fprintf(w, "?%d", n.Type)
	}
	_, _ = io.WriteString(w, "\n")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dumpNetHTMLLevel(w, c, level)
	}
}

func dumpNetHTML(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dumpNetHTMLLevel(&b, c, 0)
	}
	return b.String()
}

func dumpEtreeLevel(w io.Writer, t etree.Token, level int) {
	dumpIndent(w, level)
	level++
	switch t := t.(type) {
	case *etree.Element:
		_, _ = fmt.Fprintf(w, "<%s>", t.Tag)
		for _, a := range t.Attr {
			dumpAttr(w, level, a.FullKey(), a.Value)
		}
		_, _ = io.WriteString(w, "\n")
		for _, c := range t.Child {
			dumpEtreeLevel(w, c, level)
		}
	case *etree.CharData:
		_, _ = fmt.Fprintf(w, "\"%s\"\n", t.Data)
	default:
		_, _ = fmt.Fprintf(w, "?%T\n", t)
	}
}

func dumpEtree(doc *etree.Document) string {
	var b strings.Builder
	for _, c := range doc.Child {
		dumpEtreeLevel(&b, c, 0)
	}
	return b.String()
}

// removeIndent measures the indentation of the first line and removes that
// amount of leading whitespace from all lines.
// The very first \n is also removed.
func removeIndent(s string) string {
	s = strings.TrimLeft(s, "\n") // ignore leading newline

	// find first non-whitespace character
	i := strings.IndexFunc(s, func(r rune) bool {
		return r != ' ' && r != '\t'
	})
	if i == -1 {
		return s
	}

	// remove that amount of leading whitespace from all lines
	lines := strings.Split(s, "\n")
	for j, line := range lines {
		if len(line) >= i {
			lines[j] = line[i:]
		} else {
			lines[j] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.Join(lines, "\n")
}
