package dom

import "golang.org/x/net/html"

// scanAttributes splits the attribute text of a start tag (everything after the tag name)
// into name/value pairs, in source order. A name is a run of word characters, ':', '-', '.' and
// '@', so namespaced ("xlink:href"), data-* and framework ("@click") names are kept whole. An attribute without "=" gets an
// empty value. Quoted values may contain whitespace and '>'; values are entity-decoded.
func scanAttributes(raw string) []Attribute {
	var attrs []Attribute
	pos := 0
	for pos < len(raw) {
		// Skip whitespace
		for pos < len(raw) && isAttrSpace(raw[pos]) {
			pos++
		}
		if pos >= len(raw) {
			break
		}

		// Find attribute name end
		nameStart := pos
		for pos < len(raw) && isAttrNameByte(raw[pos]) {
			pos++
		}
		if pos == nameStart {
			pos++ // not a name, skip the byte
			continue
		}
		name := raw[nameStart:pos]

		// Skip any whitespace before '='
		eq := pos
		for eq < len(raw) && isAttrSpace(raw[eq]) {
			eq++
		}

		// Check for '='
		if eq >= len(raw) || raw[eq] != '=' {
			// Attribute without value
			attrs = append(attrs, Attribute{Key: name})
			continue
		}
		pos = eq + 1 // skip '='

		// Skip any whitespace after '='
		for pos < len(raw) && isAttrSpace(raw[pos]) {
			pos++
		}

		var valueStart, valueEnd int
		if pos < len(raw) && (raw[pos] == '"' || raw[pos] == '\'') {
			quote := raw[pos]
			pos++ // skip opening quote
			valueStart = pos

			// Find closing quote
			for pos < len(raw) && raw[pos] != quote {
				pos++
			}
			valueEnd = pos
			if pos < len(raw) {
				pos++ // skip closing quote
			}
		} else {
			// Unquoted value
			valueStart = pos
			for pos < len(raw) && !isAttrSpace(raw[pos]) {
				pos++
			}
			valueEnd = pos
		}

		attrs = append(attrs, Attribute{
			Key: name,
			Val: html.UnescapeString(raw[valueStart:valueEnd]),
		})
	}

	return attrs
}

func isAttrSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func isAttrNameByte(b byte) bool {
	return b == '_' || b == ':' || b == '-' || b == '.' || b == '@' ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}
