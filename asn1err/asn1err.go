// Package asn1err defines the error and diagnostic types shared by the
// lexer, grammar engine, grammar rules and transformer layers.
package asn1err

import (
	"fmt"
	"strings"
)

// SyntaxError is raised when the lexer emits a mismatch token or the
// grammar engine exhausts every alternative at the farthest token it
// reached. It aborts the parse.
type SyntaxError struct {
	Message  string
	Line     int
	Column   int
	Token    string
	Expected []string
	Excerpt  string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: syntax error: %s", e.Line, e.Column, e.Message)
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, " (expected %s)", strings.Join(e.Expected, ", "))
	}
	if e.Excerpt != "" {
		fmt.Fprintf(&b, "\n%s", e.Excerpt)
	}
	return b.String()
}

// SemanticWarning is raised for a local, recoverable issue: a
// duplicated ENUMERATED number, a duplicated assignment name, or a
// malformed constraint shape. The parse continues after one is
// raised; it is surfaced through a diag.Reporter rather than
// returned directly.
type SemanticWarning struct {
	Message    string
	Module     string
	Assignment string
	Line       int
}

func (w *SemanticWarning) Error() string {
	if w.Assignment == "" {
		return fmt.Sprintf("%d: warning: %s", w.Line, w.Message)
	}
	return fmt.Sprintf("%d: warning: %s: %s.%s", w.Line, w.Message, w.Module, w.Assignment)
}

// InternalError indicates the grammar and the transformer disagreed
// about the shape of a parse node. It is fatal and always names the
// assignment under transformation.
type InternalError struct {
	Message    string
	Module     string
	Assignment string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error while processing %s.%s: %s", e.Module, e.Assignment, e.Message)
}

// NotImplementedError is raised by the transformer for ASN.1
// constructs that the grammar recognizes syntactically but that are
// deliberately not reduced further (the information object class
// field-spec shapes other than type and fixed-type value fields). It
// is a distinct kind so callers can choose to tolerate it.
type NotImplementedError struct {
	Construct string
	Line      int
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%d: %s is not implemented", e.Line, e.Construct)
}
