package markup

import (
	"sync"

	"github.com/dpotapov/go-markup/css"
	"github.com/dpotapov/go-markup/diag"
)

// stylesheet is a parsed CSS file shared by the requests and live-edit sessions of one path.
type stylesheet struct {
	mu  sync.Mutex
	doc *css.Document

	// diags are the diagnostics of the initial parse or of the last edit.
	diags diag.List

	subscribers map[chan struct{}]struct{}
}

func newStylesheet(src string) *stylesheet {
	doc, diags := css.Parse(src)
	return &stylesheet{
		doc:         doc,
		diags:       diags,
		subscribers: make(map[chan struct{}]struct{}),
	}
}

// snapshot returns the current canonical text and diagnostics.
func (s *stylesheet) snapshot() EditResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return EditResponse{
		CSS:         css.Serialize(s.doc, 0),
		Diagnostics: diagStrings(s.diags),
	}
}

// find returns the canonical text of the rules matching query, one rule per line.
func (s *stylesheet) find(query string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rules, err := css.Find(s.doc, query)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = css.Serialize(r, 0)
	}
	return out, nil
}

// edit applies req and notifies the subscribers. A failed edit leaves the stylesheet unchanged
// and notifies nobody.
func (s *stylesheet) edit(req EditRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	diags, err := applyEdit(s.doc, req)
	if err != nil {
		return err
	}
	s.diags = diags
	s.notify()
	return nil
}

// subscribe returns a channel that receives a value whenever the stylesheet changes. The
// channel starts with one pending value so that a new subscriber gets the current state.
func (s *stylesheet) subscribe() chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := make(chan struct{}, 1)
	sub <- struct{}{}
	s.subscribers[sub] = struct{}{}
	return sub
}

func (s *stylesheet) unsubscribe(sub chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscribers, sub)
}

func (s *stylesheet) notify() {
	for sub := range s.subscribers {
		select {
		case sub <- struct{}{}:
		default:
		}
	}
}
