package css

import (
	"fmt"
	"io"
	"strings"
)

func dumpIndent(w io.Writer, level int) {
	_, _ = io.WriteString(w, "| ")
	for i := 0; i < level; i++ {
		_, _ = io.WriteString(w, "  ")
	}
}

func dumpItems(w io.Writer, items []Item, level int) {
	for _, it := range items {
		dumpIndent(w, level)
		switch it := it.(type) {
		case Declaration:
			_, _ = fmt.Fprintf(w, "%q = %q\n", it.Property, it.Value)
		case Comment:
			_, _ = fmt.Fprintf(w, "/* %q */\n", it.Text)
		case RuleItem:
			switch r := it.Rule.(type) {
			case *StyleRule:
				_, _ = fmt.Fprintf(w, "rule %q\n", r.Selector)
			case *AtRule:
				block := "no-block"
				if r.HasBlock {
					block = "block"
				}
				_, _ = fmt.Fprintf(w, "@%s %q %s\n", r.Name, r.Condition, block)
			}
			dumpItems(w, it.Rule.Content(), level+1)
		}
	}
}

// dump renders the content tree of n, one item per line.
func dump(n Node) string {
	var b strings.Builder
	dumpItems(&b, n.Content(), 0)
	return b.String()
}

// removeIndent measures the indentation of the first line and removes that
// amount of leading whitespace from all lines.
// The very first \n is also removed.
func removeIndent(s string) string {
	s = strings.TrimLeft(s, "\n") // ignore leading newline

	// find first non-whitespace character
	i := strings.IndexFunc(s, func(r rune) bool {
		return r != ' ' && r != '\t'
	})
	if i == -1 {
		return s
	}

	// remove that amount of leading whitespace from all lines
	lines := strings.Split(s, "\n")
	for j, line := range lines {
		if len(line) >= i {
			lines[j] = line[i:]
		} else {
			lines[j] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.Join(lines, "\n")
}
