package diag

import "unicode/utf8"

// Span represents a source location in a parsed input
type Span struct {
	Offset int // Byte offset in the input
	Line   int // 1-based line number
	Column int // 1-based column number (in runes, not bytes)
	Length int // Length in bytes
}

// SpanOf returns the span of length bytes starting at offset in src. Offsets past the end of
// src are clamped.
func SpanOf(src string, offset, length int) Span {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}
	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return Span{
		Offset: offset,
		Line:   line,
		Column: utf8.RuneCountInString(src[lineStart:offset]) + 1,
		Length: length,
	}
}

// IsZero returns true if the span is uninitialized
func (s Span) IsZero() bool {
	return s.Offset == 0 && s.Line == 0 && s.Column == 0 && s.Length == 0
}

// End returns the end offset of the span
func (s Span) End() int {
	return s.Offset + s.Length
}
