package dom

import (
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/dpotapov/go-markup/diag"
)

func TestSelect(t *testing.T) {
	src := `<html><body><ul><li class="x">one</li><li>two</li><li class="x">three<li>four</ul></body></html>`

	nodes, diags, err := Select(src, `//li[@class="x"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "threefour"}, innerTexts(nodes))
	assert.Equal(t, []diag.Code{CodeUnclosedElement, CodeUnclosedElement}, diags.Codes())

	nodes, _, err = Select(src, "//body")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "html", nodes[0].Parent.Data)

	nodes, _, err = Select(src, "//table")
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestSelect_InvalidExpression(t *testing.T) {
	_, _, err := Select("<p>x</p>", "//p[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `xpath "//p["`)
}

func TestSelect_Render(t *testing.T) {
	nodes, _, err := Select(`<div><a href="/a">A</a><img src="i.png"></div>`, "//div/*")
	require.NoError(t, err)

	var b strings.Builder
	for _, n := range nodes {
		require.NoError(t, html.Render(&b, n))
	}
	assert.Equal(t, `<a href="/a">A</a><img src="i.png"/>`, b.String())
}

func innerTexts(nodes []*html.Node) []string {
	texts := make([]string, len(nodes))
	for i, n := range nodes {
		texts[i] = htmlquery.InnerText(n)
	}
	return texts
}
