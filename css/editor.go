package css

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dpotapov/go-markup/diag"
)

// ErrRuleNotFound is returned by the edit methods when the target rule is not a direct child
// of the edited node.
var ErrRuleNotFound = errors.New("rule not found")

// Fragment is the input of an edit: a single Rule, or Text that is parsed into zero or more
// rules.
type Fragment interface {
	fragment() ([]Rule, diag.List)
}

// Text is CSS source used as an edit fragment. Only its top-level rules are inserted.
type Text string

func (t Text) fragment() ([]Rule, diag.List) {
	return ParseRules(string(t))
}

// resolve returns the rules of f. An empty fragment is reported as an advisory diagnostic.
func resolve(f Fragment) ([]Rule, diag.List) {
	rules, diags := f.fragment()
	if len(rules) == 0 {
		diags.Addf(diag.Advisory, CodeEmptyFragment, "fragment contains no rules, nothing changed")
	}
	return rules, diags
}

// Append adds the rules of f after the last content item.
func (b *Block) Append(f Fragment) diag.List {
	rules, diags := resolve(f)
	b.splice(len(b.items), 0, rules)
	return diags
}

// Prepend inserts the rules of f before the first child rule.
func (b *Block) Prepend(f Fragment) diag.List {
	return b.InsertAt(0, f)
}

// InsertAt inserts the rules of f so that the first of them becomes the child rule number
// index. Declarations and comments are not counted. If index is past the last child rule, the
// rules are added after the last content item.
func (b *Block) InsertAt(index int, f Fragment) diag.List {
	rules, diags := resolve(f)
	pos := len(b.items)
	if positions := b.rulePositions(); index < len(positions) {
		pos = positions[max(index, 0)]
	}
	b.splice(pos, 0, rules)
	return diags
}

// InsertBefore inserts the rules of f immediately before the child rule ref.
func (b *Block) InsertBefore(ref RuleID, f Fragment) (diag.List, error) {
	pos := b.indexOf(ref)
	if pos < 0 {
		return nil, fmt.Errorf("insert before %d: %w", ref, ErrRuleNotFound)
	}
	rules, diags := resolve(f)
	b.splice(pos, 0, rules)
	return diags, nil
}

// InsertAfter inserts the rules of f immediately after the child rule ref.
func (b *Block) InsertAfter(ref RuleID, f Fragment) (diag.List, error) {
	pos := b.indexOf(ref)
	if pos < 0 {
		return nil, fmt.Errorf("insert after %d: %w", ref, ErrRuleNotFound)
	}
	rules, diags := resolve(f)
	b.splice(pos+1, 0, rules)
	return diags, nil
}

// Replace replaces the child rule ref with the rules of f. An empty fragment leaves ref in
// place.
func (b *Block) Replace(ref RuleID, f Fragment) (diag.List, error) {
	pos := b.indexOf(ref)
	if pos < 0 {
		return nil, fmt.Errorf("replace %d: %w", ref, ErrRuleNotFound)
	}
	rules, diags := resolve(f)
	if len(rules) > 0 {
		b.splice(pos, 1, rules)
	}
	return diags, nil
}

// Remove removes the child rule ref.
func (b *Block) Remove(ref RuleID) error {
	pos := b.indexOf(ref)
	if pos < 0 {
		return fmt.Errorf("remove %d: %w", ref, ErrRuleNotFound)
	}
	b.splice(pos, 1, nil)
	return nil
}

// rulePositions returns the item indices of the child rules.
func (b *Block) rulePositions() []int {
	var positions []int
	for i, it := range b.items {
		if _, ok := it.(RuleItem); ok {
			positions = append(positions, i)
		}
	}
	return positions
}

// indexOf returns the item index of the child rule with the given id, or -1.
func (b *Block) indexOf(id RuleID) int {
	return slices.IndexFunc(b.items, func(it Item) bool {
		ri, ok := it.(RuleItem)
		return ok && ri.Rule.ID() == id
	})
}

// splice replaces n items at pos with rules.
func (b *Block) splice(pos, n int, rules []Rule) {
	items := make([]Item, len(rules))
	for i, r := range rules {
		items[i] = RuleItem{Rule: r}
	}
	b.items = slices.Replace(b.items, pos, pos+n, items...)
}
