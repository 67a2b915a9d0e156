package css

import "github.com/dpotapov/go-markup/diag"

// ParseDeclarations parses the body of an inline style attribute, e.g.
// "color: red; margin: 0". Nested rules are not allowed there and are dropped with a warning.
func ParseDeclarations(src string) ([]Declaration, diag.List) {
	doc, diags := Parse(src)
	var decls []Declaration
	for _, it := range doc.items {
		switch it := it.(type) {
		case Declaration:
			decls = append(decls, it)
		case RuleItem:
			diags.Addf(diag.Warning, CodeNestedInInline, "rule %q dropped from inline style", Serialize(it.Rule, 0))
		case Comment:
		}
	}
	return decls, diags
}
