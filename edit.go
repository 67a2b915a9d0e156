package markup

import (
	"errors"
	"fmt"

	"github.com/dpotapov/go-markup/css"
	"github.com/dpotapov/go-markup/diag"
)

// Edit operations accepted in EditRequest.Op.
const (
	OpAppend       = "append"
	OpPrepend      = "prepend"
	OpInsertAt     = "insertAt"
	OpInsertBefore = "insertBefore"
	OpInsertAfter  = "insertAfter"
	OpReplace      = "replace"
	OpRemove       = "remove"
)

// ErrUnknownOp is returned for an EditRequest with an unsupported Op.
var ErrUnknownOp = errors.New("unknown edit operation")

// EditRequest is a message sent by a live-edit client to change a stylesheet.
type EditRequest struct {
	// Op is one of the Op* constants.
	Op string `json:"op"`

	// Index is the position of the first inserted rule for OpInsertAt.
	Index int `json:"index,omitempty"`

	// Target is the position of the reference rule among the top-level rules, used by
	// OpInsertBefore, OpInsertAfter, OpReplace and OpRemove.
	Target int `json:"target,omitempty"`

	// CSS is the source of the rules to insert.
	CSS string `json:"css,omitempty"`
}

// EditResponse is pushed to every client of a stylesheet after it changes. Error is only set
// in the reply to the client whose request failed.
type EditResponse struct {
	CSS         string   `json:"css"`
	Diagnostics []string `json:"diagnostics,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// applyEdit performs req on doc.
func applyEdit(doc *css.Document, req EditRequest) (diag.List, error) {
	frag := css.Text(req.CSS)

	switch req.Op {
	case OpAppend:
		return doc.Append(frag), nil
	case OpPrepend:
		return doc.Prepend(frag), nil
	case OpInsertAt:
		return doc.InsertAt(req.Index, frag), nil
	case OpInsertBefore, OpInsertAfter, OpReplace, OpRemove:
	default:
		return nil, fmt.Errorf("%q: %w", req.Op, ErrUnknownOp)
	}

	rules := doc.Rules()
	if req.Target < 0 || req.Target >= len(rules) {
		return nil, fmt.Errorf("%s: target %d of %d rules: %w", req.Op, req.Target, len(rules), css.ErrRuleNotFound)
	}
	ref := rules[req.Target].ID()

	switch req.Op {
	case OpInsertBefore:
		return doc.InsertBefore(ref, frag)
	case OpInsertAfter:
		return doc.InsertAfter(ref, frag)
	case OpReplace:
		return doc.Replace(ref, frag)
	default: // OpRemove
		return nil, doc.Remove(ref)
	}
}

func diagStrings(l diag.List) []string {
	if len(l) == 0 {
		return nil
	}
	s := make([]string, len(l))
	for i, d := range l {
		s[i] = d.Error()
	}
	return s
}
