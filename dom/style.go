package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dpotapov/go-markup/css"
	"github.com/dpotapov/go-markup/diag"
)

// Stylesheets parses the content of every <style> element below root, in document order.
func Stylesheets(root *Node) ([]*css.Document, diag.List) {
	var (
		sheets []*css.Document
		diags  diag.List
	)
	var walk func(*Node)
	walk = func(n *Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.DataAtom == atom.Style {
				doc, d := css.Parse(c.TextContent())
				sheets = append(sheets, doc)
				diags.Append(d)
				continue
			}
			walk(c)
		}
	}
	walk(root)
	return sheets, diags
}

// InlineStyle parses the style attribute of el. An element without one has no declarations.
func InlineStyle(el *Node) ([]css.Declaration, diag.List) {
	s, ok := el.Attribute("style")
	if !ok {
		return nil, nil
	}
	return css.ParseDeclarations(s)
}

// SetInlineStyle replaces the style attribute of el with decls. Property names are converted
// to kebab-case. An empty list removes the attribute.
func SetInlineStyle(el *Node, decls []css.Declaration) {
	if len(decls) == 0 {
		el.RemoveAttribute("style")
		return
	}
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = css.Kebab(d.Property) + ": " + d.Value
	}
	el.SetAttribute("style", strings.Join(parts, "; "))
}
