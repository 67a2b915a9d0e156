package dom

import "strings"

// matchClosingTag finds the closing tag of an element named name whose content starts at
// src[from]. Start tags with the same name increase the depth and closing tags decrease it, so
// a same-named element nested inside is skipped over. Names compare case-insensitively.
// Self-closing start tags ("<div/>") and tags inside comments do not count. It returns the
// bounds of the closing tag, src[start:end] == "</name>", or -1, -1 if there is none.
func matchClosingTag(src, name string, from int) (start, end int) {
	depth := 1
	for i := from; i < len(src); {
		lt := strings.IndexByte(src[i:], '<')
		if lt < 0 {
			break
		}
		lt += i
		i = lt + 1

		if strings.HasPrefix(src[lt:], "<!--") {
			j := strings.Index(src[lt+4:], "-->")
			if j < 0 {
				break
			}
			i = lt + 4 + j + 3
			continue
		}

		nameStart := lt + 1
		closing := nameStart < len(src) && src[nameStart] == '/'
		if closing {
			nameStart++
		}
		nameEnd := nameStart + len(name)
		if nameEnd >= len(src) || !strings.EqualFold(src[nameStart:nameEnd], name) || !isTagNameEnd(src[nameEnd]) {
			continue
		}

		gt := tagEnd(src, lt)
		if gt < 0 {
			break
		}
		i = gt + 1

		if closing {
			depth--
			if depth == 0 {
				return lt, gt + 1
			}
		} else if src[gt-1] != '/' {
			depth++
		}
	}
	return -1, -1
}

// tagEnd returns the index of the '>' ending the tag that starts at src[lt]. Quoted attribute
// values may contain '>'. If the quotes are unbalanced, the first '>' is used.
func tagEnd(src string, lt int) int {
	var quote byte
	for i := lt + 1; i < len(src); i++ {
		c := src[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i
		}
	}
	if i := strings.IndexByte(src[lt:], '>'); i >= 0 {
		return lt + i
	}
	return -1
}

func isTagNameEnd(b byte) bool {
	return b == '>' || b == '/' || isAttrSpace(b)
}
