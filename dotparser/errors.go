package dotparser

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel causes for the three kinds of parse failure. Every error returned
// by Parse wraps exactly one of them.
var (
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrTrailingInput = errors.New("unexpected trailing input")
	ErrSyntax        = errors.New("parse error")
)

// ParseError is the base error type for all dotparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Failure is one failed rule attempt at the point where the parse stopped.
type Failure struct {
	Pos   Position
	Rule  string   // innermost rule that failed
	Path  []string // enclosing rules, outermost first, ending with Rule
	Cause string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s %s: %s", f.Pos, strings.Join(f.Path, " > "), f.Cause)
}

// EOFError reports that the input ran out while a rule still required more.
type EOFError struct {
	ParseError
	Failures []Failure
}

// TrailingInputError reports text left over after a complete graph.
type TrailingInputError struct {
	ParseError
	Remainder string
}

// SyntaxError reports that no alternative matched. Failures lists every
// alternative tried at the farthest position reached, in attempt order.
type SyntaxError struct {
	ParseError
	Failures []Failure
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s: %s", e.Pos.Line, e.Pos.Column, ErrSyntax, e.Message)
}

// summarize joins the distinct causes of fs, in order.
func summarize(fs []Failure) string {
	seen := make(map[string]bool, len(fs))
	var causes []string
	for _, f := range fs {
		if seen[f.Cause] {
			continue
		}
		seen[f.Cause] = true
		causes = append(causes, f.Cause)
	}
	if len(causes) == 0 {
		return "no rule matched"
	}
	return strings.Join(causes, "; ")
}

func newEOFError(pos Position, fs []Failure) *EOFError {
	msg := ErrUnexpectedEOF.Error()
	if len(fs) > 0 {
		msg += " (" + summarize(fs) + ")"
	}
	return &EOFError{
		ParseError: ParseError{Message: msg, Pos: pos, Cause: ErrUnexpectedEOF},
		Failures:   fs,
	}
}

func newTrailingInputError(pos Position, rest string) *TrailingInputError {
	shown := rest
	if len(shown) > 40 {
		shown = shown[:40] + "..."
	}
	return &TrailingInputError{
		ParseError: ParseError{
			Message: fmt.Sprintf("%s: %q", ErrTrailingInput, shown),
			Pos:     pos,
			Cause:   ErrTrailingInput,
		},
		Remainder: rest,
	}
}

func newSyntaxError(pos Position, fs []Failure) *SyntaxError {
	return &SyntaxError{
		ParseError: ParseError{Message: summarize(fs), Pos: pos, Cause: ErrSyntax},
		Failures:   fs,
	}
}
