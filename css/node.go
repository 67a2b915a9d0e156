package css

import (
	"slices"
	"sync/atomic"

	"github.com/dpotapov/go-markup/diag"
)

// RuleID identifies a rule for the lifetime of the process. IDs are never reused.
type RuleID uint64

var lastRuleID atomic.Uint64

func nextRuleID() RuleID {
	return RuleID(lastRuleID.Add(1))
}

// Item is one element of a node's content: a Declaration, a RuleItem or a Comment.
type Item interface {
	item()
}

// Declaration is a property/value pair, e.g. "color: red".
type Declaration struct {
	Property string
	Value    string
}

// RuleItem holds a nested rule.
type RuleItem struct {
	Rule Rule
}

// Comment holds the trimmed text between "/*" and "*/".
type Comment struct {
	Text string
}

func (Declaration) item() {}
func (RuleItem) item()    {}
func (Comment) item()     {}

// Node is implemented by *Document, *StyleRule and *AtRule.
type Node interface {
	// Content returns a copy of the ordered content items.
	Content() []Item
	// Declarations folds the Declaration items left to right, the last one wins.
	Declarations() map[string]string
	// Children returns the nested rules in order.
	Children() []Rule
	node()
}

// Rule is implemented by *StyleRule and *AtRule.
type Rule interface {
	Node
	Fragment
	ID() RuleID
	rule()
}

// Block is the ordered content shared by all node types. Its methods are promoted to
// Document, StyleRule and AtRule; content can only be changed through the edit methods.
type Block struct {
	items []Item
}

func (b *Block) Content() []Item {
	return slices.Clone(b.items)
}

// Len returns the number of content items.
func (b *Block) Len() int {
	return len(b.items)
}

func (b *Block) Declarations() map[string]string {
	decls := make(map[string]string)
	for _, it := range b.items {
		switch it := it.(type) {
		case Declaration:
			decls[it.Property] = it.Value
		case RuleItem, Comment:
		}
	}
	return decls
}

func (b *Block) Children() []Rule {
	var rules []Rule
	for _, it := range b.items {
		switch it := it.(type) {
		case RuleItem:
			rules = append(rules, it.Rule)
		case Declaration, Comment:
		}
	}
	return rules
}

// StyleRule is a selector followed by a block, e.g. ".a { color: red }".
type StyleRule struct {
	id       RuleID
	Selector string
	Block
}

// NewStyleRule returns a style rule with a fresh RuleID.
func NewStyleRule(selector string, items ...Item) *StyleRule {
	return &StyleRule{
		id:       nextRuleID(),
		Selector: selector,
		Block:    Block{items: slices.Clone(items)},
	}
}

// ID returns the rule id, assigning one if the rule was not built by NewStyleRule.
func (r *StyleRule) ID() RuleID {
	if r.id == 0 {
		r.id = nextRuleID()
	}
	return r.id
}

func (r *StyleRule) String() string { return Serialize(r, 0) }

func (r *StyleRule) fragment() ([]Rule, diag.List) { return []Rule{r}, nil }
func (r *StyleRule) node()                         {}
func (r *StyleRule) rule()                         {}

// AtRule is a rule starting with "@". HasBlock distinguishes "@x;" from "@x {}" when the
// content is empty.
type AtRule struct {
	id        RuleID
	Name      string
	Condition string
	HasBlock  bool
	Block
}

// NewAtRule returns an at-rule with a fresh RuleID.
func NewAtRule(name, condition string, hasBlock bool, items ...Item) *AtRule {
	return &AtRule{
		id:        nextRuleID(),
		Name:      name,
		Condition: condition,
		HasBlock:  hasBlock || len(items) > 0,
		Block:     Block{items: slices.Clone(items)},
	}
}

// ID returns the rule id, assigning one if the rule was not built by NewAtRule.
func (r *AtRule) ID() RuleID {
	if r.id == 0 {
		r.id = nextRuleID()
	}
	return r.id
}

func (r *AtRule) String() string { return Serialize(r, 0) }

func (r *AtRule) fragment() ([]Rule, diag.List) { return []Rule{r}, nil }
func (r *AtRule) node()                         {}
func (r *AtRule) rule()                         {}

// Document is the root of a parsed stylesheet. It has no selector; top-level declarations are
// kept even though they are unusual.
type Document struct {
	Block
}

// NewDocument returns a document holding items.
func NewDocument(items ...Item) *Document {
	return &Document{Block: Block{items: slices.Clone(items)}}
}

// Rules returns the top-level rules.
func (d *Document) Rules() []Rule {
	return d.Children()
}

func (d *Document) String() string { return Serialize(d, 0) }

func (d *Document) node() {}

var (
	_ Rule = (*StyleRule)(nil)
	_ Rule = (*AtRule)(nil)
	_ Node = (*Document)(nil)
)
