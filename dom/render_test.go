package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name, text, want string
	}{
		{"text", "a &amp; b", "a &amp; b"},
		{"element with attributes", `<p class="a" hidden>x</p>`, `<p class="a" hidden="">x</p>`},
		{"void element", `<img src="i.png"><br/>`, `<img src="i.png"/><br/>`},
		{"nested", "<div><div>x</div></div>", "<div><div>x</div></div>"},
		{"recovered", "<div><span>", "<div><span></span></div>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := Parse(tt.text)
			var b strings.Builder
			require.NoError(t, Render(&b, doc.Root))
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestRender_ReparseIsStable(t *testing.T) {
	src := `<ul id="l"><li>a &lt; b</li><li><a href="/x?a=1&amp;b=2">x</a></li></ul>`
	doc, diags := Parse(src)
	require.Empty(t, diags)

	again, diags := Parse(doc.Root.FirstChild.OuterHTML())
	require.Empty(t, diags)
	assert.Equal(t, dump(doc.Root), dump(again.Root))
}

func TestRender_VoidWithChildren(t *testing.T) {
	img := &Node{Type: html.ElementNode, Data: "img"}
	img.AppendChild(&Node{Type: html.TextNode, Data: "x"})

	var b strings.Builder
	err := Render(&b, img)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render <img>")
}
