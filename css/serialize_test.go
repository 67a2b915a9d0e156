package css

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name, text, want string
	}{
		{
			name: "empty document",
			text: "",
			want: "",
		},
		{
			name: "declarations",
			text: ".a{color:red;color:blue}",
			want: ".a {\n  color: red;\n  color: blue;\n}",
		},
		{
			name: "block-less at-rule",
			text: `@import "x.css";`,
			want: `@import "x.css";`,
		},
		{
			name: "empty block at-rule",
			text: "@font-face {}",
			want: "@font-face {}",
		},
		{
			name: "empty style rule",
			text: ".a {   }",
			want: ".a {}",
		},
		{
			name: "nested",
			text: "@media screen { .a { color: red } }",
			want: removeIndent(`
				@media screen {
				  .a {
				    color: red;
				  }
				}`),
		},
		{
			name: "comments",
			text: "/*top*/ .a { /* in */ top: 0 }",
			want: "/* top */\n.a {\n  /* in */\n  top: 0;\n}",
		},
		{
			name: "several rules",
			text: `@charset "utf-8"; .a {} .b { margin: 0 }`,
			want: "@charset \"utf-8\";\n.a {}\n.b {\n  margin: 0;\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := Parse(tt.text)
			if diff := cmp.Diff(tt.want, Serialize(doc, 0)); diff != "" {
				t.Errorf("Serialize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSerialize_Indent(t *testing.T) {
	r := NewStyleRule(".a", Declaration{Property: "backgroundColor", Value: "red"})
	require.Equal(t, "    .a {\n      background-color: red;\n    }", Serialize(r, 2))
	require.Equal(t, ".a {\n  background-color: red;\n}", r.String())
}

func TestSerialize_Constructed(t *testing.T) {
	doc := NewDocument(
		RuleItem{Rule: NewAtRule("import", `url("a.css")`, false)},
		RuleItem{Rule: NewAtRule("font-face", "", true)},
		RuleItem{Rule: NewAtRule("media", "print", false, RuleItem{Rule: NewStyleRule("p")})},
	)
	want := "@import url(\"a.css\");\n@font-face {}\n@media print {\n  p {}\n}"
	require.Equal(t, want, doc.String())
}

func TestSerialize_RoundTrip(t *testing.T) {
	srcs := []string{
		".a { color: red; margin: 0 auto }",
		"/* a */ .a { /* b */ color: red; /* c */ } /* d */",
		"@media screen and (min-width: 10px) { .a { top: 0 } @supports (x: y) { .b { left: 0 } } }",
		`@import "x.css"; @namespace svg url(http://www.w3.org/2000/svg); .a {}`,
		"@font-face {} @page :first { margin: 1in }",
		`.a::after { content: "{;}" } .b > .c ~ .d { x: y }`,
		"color: red; .a { b: c }",
		".a /* sel */ { color: red /* val */ }",
		".a { font-family: Bob's Font; color: red }",
		`.a { content: "it's" }`,
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			doc, diags := Parse(src)
			require.Empty(t, diags)

			once := Serialize(doc, 0)
			reparsed, diags := Parse(once)
			require.Empty(t, diags)
			if diff := cmp.Diff(dump(doc), dump(reparsed)); diff != "" {
				t.Errorf("reparsed content mismatch (-want +got):\n%s", diff)
			}

			twice := Serialize(reparsed, 0)
			require.Equal(t, once, twice)
		})
	}
}

func TestSerialize_UnterminatedIsIdempotent(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{`content: "abc`, `content: "abc;`},
		{"color: red /* x", "color: red /* x;"},
		{".a { content: 'x; top: 0 }", ".a {\n  content: 'x;\n  top: 0;\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			doc, _ := Parse(tt.src)
			once := Serialize(doc, 0)
			require.Equal(t, tt.want, once)

			reparsed, _ := Parse(once)
			require.Equal(t, once, Serialize(reparsed, 0))
		})
	}
}

func TestKebab(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"backgroundColor", "background-color"},
		{"color", "color"},
		{"background-color", "background-color"},
		{"zIndex", "z-index"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"WebkitTransform", "-webkit-transform"},
		{"-webkit-transform", "-webkit-transform"},
		{"margin2Top", "margin2-top"},
		{"borderXLWidth", "border-x-l-width"},
		{"MSTransform", "-m-s-transform"},
		{"--mainColor", "--mainColor"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Kebab(tt.in))
		})
	}
}
