package css

import "strings"

// MatchBrace returns the index of the "}" closing the "{" at src[open], or -1 if src ends
// first. Braces inside quoted strings and comments are not counted. A quote or "/*" that is
// never closed is an ordinary character.
func MatchBrace(src string, open int) int {
	if open < 0 || open >= len(src) || src[open] != '{' {
		return -1
	}
	depth := 0
	for i := open; i < len(src); i++ {
		switch c := src[i]; {
		case c == '"' || c == '\'':
			if next, ok := skipString(src, i); ok {
				i = next - 1
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			if next, ok := skipComment(src, i); ok {
				i = next - 1
			}
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// skipString returns the index just past the string opened by the quote at src[i]. ok is
// false if a newline or the end of src comes before the closing quote.
func skipString(src string, i int) (next int, ok bool) {
	q := src[i]
	for i++; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case q:
			return i + 1, true
		case '\n':
			return i, false
		}
	}
	return len(src), false
}

// skipComment returns the index just past the comment opened at src[i]. ok is false if the
// comment is not terminated, in which case the returned index is len(src).
func skipComment(src string, i int) (next int, ok bool) {
	if j := strings.Index(src[i+2:], "*/"); j >= 0 {
		return i + 2 + j + 2, true
	}
	return len(src), false
}
