package css

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

const indentUnit = "  "

// Serialize renders n as CSS text at the given indentation level. Rules with empty content use
// the compact forms "sel {}", "@name cond;" (no block) and "@name cond {}" (empty block); an
// empty document renders as "".
func Serialize(n Node, indent int) string {
	var b strings.Builder
	writeNode(&b, n, indent)
	return b.String()
}

func writeNode(b *strings.Builder, n Node, level int) {
	switch n := n.(type) {
	case *Document:
		writeItems(b, n.items, level)
	case *StyleRule:
		writeBlock(b, n.Selector, n.items, level)
	case *AtRule:
		head := "@" + n.Name
		if n.Condition != "" {
			head += " " + n.Condition
		}
		if !n.HasBlock && len(n.items) == 0 {
			b.WriteString(strings.Repeat(indentUnit, level))
			b.WriteString(head)
			b.WriteByte(';')
			return
		}
		writeBlock(b, head, n.items, level)
	default:
		panic("css: unknown node type")
	}
}

func writeBlock(b *strings.Builder, head string, items []Item, level int) {
	pad := strings.Repeat(indentUnit, level)
	b.WriteString(pad)
	b.WriteString(head)
	if len(items) == 0 {
		b.WriteString(" {}")
		return
	}
	b.WriteString(" {\n")
	writeItems(b, items, level+1)
	b.WriteByte('\n')
	b.WriteString(pad)
	b.WriteByte('}')
}

func writeItems(b *strings.Builder, items []Item, level int) {
	pad := strings.Repeat(indentUnit, level)
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch it := it.(type) {
		case Declaration:
			b.WriteString(pad)
			b.WriteString(Kebab(it.Property))
			b.WriteString(": ")
			b.WriteString(it.Value)
			b.WriteByte(';')
		case RuleItem:
			writeNode(b, it.Rule, level)
		case Comment:
			b.WriteString(pad)
			b.WriteString("/* ")
			b.WriteString(it.Text)
			b.WriteString(" */")
		default:
			panic("css: unknown item type")
		}
	}
}

// Kebab converts a camelCase property name to kebab-case: "backgroundColor" becomes
// "background-color" and "WebkitTransform" becomes "-webkit-transform". Every uppercase letter
// starts a new word, including those of an acronym run ("borderXLWidth" becomes
// "border-x-l-width"). Names that are
// already kebab-case and custom properties ("--x") are returned unchanged. The conversion is
// one-way.
func Kebab(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}

	blocks := strings.Split(name, "-")
	for i, block := range blocks {
		if block == "" {
			continue
		}
		var sb strings.Builder
		for _, w := range camelcase.Split(block) {
			if w == "" {
				continue
			}
			for _, r := range w {
				if unicode.IsUpper(r) {
					sb.WriteByte('-')
				}
				sb.WriteRune(unicode.ToLower(r))
			}
		}
		blocks[i] = sb.String()
	}
	return strings.Join(blocks, "-")
}
