/*
Package css implements a lenient, order-preserving CSS parser and serializer.

Parsing is a linear forward scan: the scanner locates the next significant delimiter ("{", ";"
or a comment opener), recurses into matched brace blocks and produces an ordered list of content
items (declarations, nested rules and comments). Nothing is reordered or merged, so a parsed
document serializes back to text with the same rules in the same order.

	doc, diags := css.Parse(`@media print { .a { color: red } }`)
	fmt.Println(css.Serialize(doc, 0))

The parser never fails. Malformed input is recovered from and every recovery that drops input
is reported in the returned diag.List.

Documents are edited with the methods of Block, which are promoted to Document, StyleRule and
AtRule. Edits address nested rules by their logical rule index (comments and declarations are
not counted) or by RuleID.
*/
package css

import "github.com/dpotapov/go-markup/diag"

// Diagnostic codes recorded by this package.
const (
	CodeUnmatchedBrace      diag.Code = "css.unmatched-brace"
	CodeStrayBrace          diag.Code = "css.stray-brace"
	CodeUnterminatedComment diag.Code = "css.unterminated-comment"
	CodeEmptyFragment       diag.Code = "css.empty-fragment"
	CodeNestedInInline      diag.Code = "css.rule-in-inline-style"
)
