package dom

import (
	"fmt"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/dpotapov/go-markup/diag"
)

// Select parses markup with NetHTMLFactory and returns the nodes matching the XPath
// expression, in document order.
func Select(markup, xpath string) ([]*html.Node, diag.List, error) {
	doc, diags := ParseNetHTML(markup)
	nodes, err := htmlquery.QueryAll(doc, xpath)
	if err != nil {
		return nil, diags, fmt.Errorf("xpath %q: %w", xpath, err)
	}
	return nodes, diags, nil
}
