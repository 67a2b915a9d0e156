package dom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/dpotapov/go-markup/diag"
)

// ParseFragment parses markup and attaches the resulting nodes under parent using f.
//
// The parser is lenient and never fails:
//   - an element without a matching closing tag is closed implicitly at the end of its
//     parent's content (so "<div><span>" yields a div containing an empty span);
//   - a closing tag that matches no open element ends the current element's content, and the
//     markup after it at that level is dropped;
//   - comments, doctypes and processing instructions are skipped.
//
// All of these recoveries are reported in the returned list. Every step moves the cursor
// forward, so parsing terminates on any input.
func ParseFragment[N any](markup string, parent N, f NodeFactory[N]) diag.List {
	p := &fragmentParser[N]{src: markup, f: f}
	p.parse(0, len(markup), parent)
	return p.diags
}

// A fragmentParser holds the state of a single ParseFragment call.
type fragmentParser[N any] struct {
	src   string
	f     NodeFactory[N]
	diags diag.List
}

// parse builds the nodes for src[start:end] under parent.
func (p *fragmentParser[N]) parse(start, end int, parent N) {
	pos := start
	for {
		pos = skipSpace(p.src, pos, end)
		if pos >= end {
			return
		}

		lt := strings.IndexByte(p.src[pos:end], '<')
		if lt < 0 {
			p.text(parent, strings.TrimSpace(p.src[pos:end]))
			return
		}
		lt += pos
		p.text(parent, p.src[pos:lt])

		if next, ok := p.skipDeclaration(lt, end); ok {
			pos = next
			continue
		}

		gt := tagEnd(p.src[:end], lt)
		if gt < 0 {
			p.diags.Add(diag.Warning, CodeUnterminatedTag, p.src, lt, end-lt, "tag is not terminated, kept as text")
			p.text(parent, strings.TrimSpace(p.src[lt:end]))
			return
		}

		header := p.src[lt+1 : gt]
		if strings.HasPrefix(header, "/") {
			p.strayEndTag(lt, gt, end)
			return
		}
		if !isTagNameStart(header) {
			// "a < b > c": not a tag
			p.text(parent, p.src[lt:gt+1])
			pos = gt + 1
			continue
		}

		pos = p.element(parent, lt, gt, end)
	}
}

// element creates the element whose start tag is src[lt:gt+1], parses its content and returns
// the position after its closing tag.
func (p *fragmentParser[N]) element(parent N, lt, gt, end int) int {
	header := p.src[lt+1 : gt]
	selfClosing := strings.HasSuffix(header, "/")
	if selfClosing {
		header = header[:len(header)-1]
	}

	name, attrText := header, ""
	if i := strings.IndexAny(header, whitespace); i >= 0 {
		name, attrText = header[:i], header[i:]
	}
	tag := strings.ToLower(name)

	el := p.f.CreateElement(tag)
	for _, a := range scanAttributes(attrText) {
		p.f.SetAttribute(el, a.Key, a.Val)
	}
	p.attach(parent, tag, el)

	if selfClosing || p.f.IsVoid(tag) {
		return gt + 1
	}

	closeStart, closeEnd := matchClosingTag(p.src[:end], tag, gt+1)
	if closeStart < 0 {
		p.diags.Add(diag.Warning, CodeUnclosedElement, p.src, lt, gt+1-lt,
			"<%s> is not closed, closing it at the end of its parent", tag)
		p.parse(gt+1, end, el)
		return end
	}
	p.parse(gt+1, closeStart, el)
	return closeEnd
}

// attach routes the structural elements to their document slots. <head> and <body> go under
// the registered <html> element when there is one; everything else goes under parent.
func (p *fragmentParser[N]) attach(parent N, tag string, el N) {
	switch tag {
	case "html":
		p.f.SetDocumentElement(el)
	case "head", "body":
		if tag == "head" {
			p.f.SetHead(el)
		} else {
			p.f.SetBody(el)
		}
		if root, ok := p.f.DocumentElement(); ok {
			p.f.AppendChild(root, el)
			return
		}
	}
	p.f.AppendChild(parent, el)
}

func (p *fragmentParser[N]) text(parent N, s string) {
	if s == "" {
		return
	}
	p.f.AppendChild(parent, p.f.CreateText(html.UnescapeString(s)))
}

// strayEndTag records a closing tag at src[lt:gt+1] that matches no open element.
func (p *fragmentParser[N]) strayEndTag(lt, gt, end int) {
	tag := strings.TrimSpace(p.src[lt+2 : gt])
	if rest := strings.TrimSpace(p.src[gt+1 : end]); rest != "" {
		p.diags.Add(diag.Warning, CodeStrayEndTag, p.src, lt, gt+1-lt,
			"unexpected </%s>, %d bytes after it are dropped", tag, len(rest))
		return
	}
	p.diags.Add(diag.Warning, CodeStrayEndTag, p.src, lt, gt+1-lt, "unexpected </%s>", tag)
}

// skipDeclaration skips a comment, doctype or processing instruction at src[lt].
func (p *fragmentParser[N]) skipDeclaration(lt, end int) (int, bool) {
	rest := p.src[lt:end]
	switch {
	case strings.HasPrefix(rest, "<!--"):
		if i := strings.Index(rest[4:], "-->"); i >= 0 {
			return lt + 4 + i + 3, true
		}
		p.diags.Add(diag.Warning, CodeUnterminatedComment, p.src, lt, end-lt, "comment is not terminated")
		return end, true
	case strings.HasPrefix(rest, "<!"), strings.HasPrefix(rest, "<?"):
		if i := strings.IndexByte(rest, '>'); i >= 0 {
			return lt + i + 1, true
		}
		return end, true
	}
	return 0, false
}

func isTagNameStart(header string) bool {
	if header == "" {
		return false
	}
	c := header[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func skipSpace(src string, pos, end int) int {
	for pos < end && strings.IndexByte(whitespace, src[pos]) >= 0 {
		pos++
	}
	return pos
}
