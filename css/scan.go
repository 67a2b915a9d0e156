package css

import (
	"strings"

	"github.com/dpotapov/go-markup/diag"
)

const whitespace = " \t\r\n\f"

// Parse parses src into a Document. It never fails: unparseable parts are dropped and the
// recoveries that lose input are reported in the returned list.
func Parse(src string) (*Document, diag.List) {
	s := &scanner{src: src}
	items := s.scan(0, len(src))
	return NewDocument(items...), s.diags
}

// ParseRules parses src and returns its top-level rules. Top-level declarations and comments
// are ignored.
func ParseRules(src string) ([]Rule, diag.List) {
	doc, diags := Parse(src)
	return doc.Children(), diags
}

// A scanner tokenizes a CSS source into content items. It is not reused between parses.
type scanner struct {
	src   string
	diags diag.List

	commentReported bool
}

// scan returns the content items of src[start:end]. The cursor only moves forward, so the
// scan is bounded by the span length on any input.
func (s *scanner) scan(start, end int) []Item {
	var items []Item
	pos := start
	for {
		pos = skipSpace(s.src, pos, end)
		if pos >= end {
			return items
		}

		if strings.HasPrefix(s.src[pos:end], "/*") {
			next, ok := skipComment(s.src[:end], pos)
			text := s.src[pos+2 : end]
			if ok {
				text = s.src[pos+2 : next-2]
			} else {
				s.unterminatedComment(pos, end)
			}
			items = append(items, Comment{Text: strings.TrimSpace(text)})
			pos = next
			continue
		}

		i := s.nextDelimiter(pos, end)
		if i < 0 {
			// trailing fragment without a terminator
			if it, ok := statement(s.src[pos:end]); ok {
				items = append(items, it)
			}
			return items
		}

		switch s.src[i] {
		case '{':
			closing := MatchBrace(s.src[:end], i)
			if closing < 0 {
				s.diags.Add(diag.Warning, CodeUnmatchedBrace, s.src, i, end-i,
					"no closing brace for %q, rest of the block is dropped", strings.TrimSpace(s.src[pos:i]))
				return items
			}
			body := s.scan(i+1, closing)
			items = append(items, RuleItem{Rule: newRule(s.src[pos:i], body)})
			pos = closing + 1
		case ';':
			if it, ok := statement(s.src[pos:i]); ok {
				items = append(items, it)
			}
			pos = i + 1
		case '}':
			s.diags.Add(diag.Warning, CodeStrayBrace, s.src, i, 1, "unexpected closing brace")
			if it, ok := statement(s.src[pos:i]); ok {
				items = append(items, it)
			}
			pos = i + 1
		}
	}
}

// nextDelimiter returns the index of the first "{", ";" or "}" in src[pos:end] that is not
// inside a string or a comment, or -1. An unterminated quote or comment does not hide the
// delimiters after it.
func (s *scanner) nextDelimiter(pos, end int) int {
	src := s.src[:end]
	for i := pos; i < end; i++ {
		switch c := src[i]; {
		case c == '"' || c == '\'':
			if next, ok := skipString(src, i); ok {
				i = next - 1
			}
		case c == '/' && i+1 < end && src[i+1] == '*':
			next, ok := skipComment(src, i)
			if !ok {
				s.unterminatedComment(i, end)
				continue
			}
			i = next - 1
		case c == '{' || c == ';' || c == '}':
			return i
		}
	}
	return -1
}

// unterminatedComment records the first unterminated comment of the source.
func (s *scanner) unterminatedComment(pos, end int) {
	if s.commentReported {
		return
	}
	s.commentReported = true
	s.diags.Add(diag.Warning, CodeUnterminatedComment, s.src, pos, end-pos, "comment is not terminated")
}

// statement turns a terminated (or trailing) statement into a block-less at-rule or a
// declaration. ok is false if the statement has no usable property and value.
func statement(stmt string) (Item, bool) {
	stmt = strings.TrimSpace(stmt)
	if strings.HasPrefix(stmt, "@") {
		name, cond := splitAtPrelude(stmt[1:])
		return RuleItem{Rule: NewAtRule(name, cond, false)}, true
	}
	prop, value, ok := strings.Cut(stmt, ":")
	if !ok {
		return nil, false
	}
	prop, value = strings.TrimSpace(prop), strings.TrimSpace(value)
	if prop == "" || value == "" {
		return nil, false
	}
	return Declaration{Property: prop, Value: value}, true
}

// newRule classifies the prelude of a braced block.
func newRule(prelude string, body []Item) Rule {
	prelude = strings.TrimSpace(prelude)
	if strings.HasPrefix(prelude, "@") {
		name, cond := splitAtPrelude(prelude[1:])
		return NewAtRule(name, cond, true, body...)
	}
	return NewStyleRule(prelude, body...)
}

// splitAtPrelude splits "media screen and (x)" into the name "media" and the condition
// "screen and (x)".
func splitAtPrelude(s string) (name, condition string) {
	i := strings.IndexAny(s, whitespace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func skipSpace(src string, pos, end int) int {
	for pos < end && strings.IndexByte(whitespace, src[pos]) >= 0 {
		pos++
	}
	return pos
}
