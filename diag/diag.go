// Package diag holds the diagnostics recorded by the lenient CSS and HTML parsers.
//
// The parsers never fail on malformed input. Instead, every recovery they perform is recorded
// as a Diagnostic and returned to the caller next to the (possibly partial) result, so the
// caller decides whether a warning matters.
package diag

import (
	"errors"
	"fmt"
)

type Severity int

const (
	// Advisory marks a no-op the caller probably did not intend, e.g. an edit with an empty
	// fragment.
	Advisory Severity = iota
	// Warning marks input that was dropped or truncated during recovery.
	Warning
)

func (s Severity) String() string {
	switch s {
	case Advisory:
		return "advisory"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Code identifies the kind of a diagnostic. Codes are defined by the emitting package.
type Code string

type Diagnostic struct {
	Severity Severity
	Code     Code
	Span     Span
	Message  string
}

func (d *Diagnostic) Error() string {
	if d.Span.IsZero() {
		return fmt.Sprintf("%s: %s", d.Code, d.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", d.Span.Line, d.Span.Column, d.Code, d.Message)
}

// List is an ordered list of diagnostics. The order is the order of recording.
type List []*Diagnostic

// Add records a diagnostic located at offset in src.
func (l *List) Add(sev Severity, code Code, src string, offset, length int, format string, args ...any) {
	*l = append(*l, &Diagnostic{
		Severity: sev,
		Code:     code,
		Span:     SpanOf(src, offset, length),
		Message:  fmt.Sprintf(format, args...),
	})
}

// Addf records a diagnostic that is not tied to a source position.
func (l *List) Addf(sev Severity, code Code, format string, args ...any) {
	*l = append(*l, &Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Append adds all diagnostics from other.
func (l *List) Append(other List) {
	*l = append(*l, other...)
}

// Warnings returns diagnostics with the Warning severity.
func (l List) Warnings() List {
	var out List
	for _, d := range l {
		if d.Severity == Warning {
			out = append(out, d)
		}
	}
	return out
}

// Codes returns the codes of all diagnostics, in order.
func (l List) Codes() []Code {
	codes := make([]Code, len(l))
	for i, d := range l {
		codes[i] = d.Code
	}
	return codes
}

// Err joins all diagnostics into a single error. It returns nil for an empty list.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	errs := make([]error, len(l))
	for i, d := range l {
		errs[i] = d
	}
	return errors.Join(errs...)
}
