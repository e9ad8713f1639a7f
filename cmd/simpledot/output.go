package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jblondin/simpledot/dotparser"
)

type resultJSON struct {
	Input       string           `json:"input"`
	Job         string           `json:"job"`
	Graph       *dotparser.Graph `json:"graph,omitempty"`
	Error       *errorJSON       `json:"error,omitempty"`
	Diagnostics []diagnosticJSON `json:"diagnostics,omitempty"`
}

type errorJSON struct {
	Kind      string              `json:"kind"`
	Message   string              `json:"message"`
	Pos       *dotparser.Position `json:"pos,omitempty"`
	Remainder string              `json:"remainder,omitempty"`
	Failures  []failureJSON       `json:"failures,omitempty"`
}

type failureJSON struct {
	Pos   dotparser.Position `json:"pos"`
	Rule  string             `json:"rule"`
	Path  []string           `json:"path"`
	Cause string             `json:"cause"`
}

type diagnosticJSON struct {
	Rule     string             `json:"rule"`
	Severity string             `json:"severity"`
	Message  string             `json:"message"`
	Pos      dotparser.Position `json:"pos"`
	Fix      string             `json:"fix,omitempty"`
}

// errorKind names the class of a parse error.
func errorKind(err error) string {
	switch {
	case errors.Is(err, dotparser.ErrUnexpectedEOF):
		return "unexpected_eof"
	case errors.Is(err, dotparser.ErrTrailingInput):
		return "trailing_input"
	case errors.Is(err, dotparser.ErrSyntax):
		return "parse_error"
	default:
		return "error"
	}
}

// failuresOf returns the failure trace carried by err, if any.
func failuresOf(err error) []dotparser.Failure {
	var eof *dotparser.EOFError
	if errors.As(err, &eof) {
		return eof.Failures
	}
	var syn *dotparser.SyntaxError
	if errors.As(err, &syn) {
		return syn.Failures
	}
	return nil
}

// positionOf returns the position a parse error refers to.
func positionOf(err error) (dotparser.Position, bool) {
	var eof *dotparser.EOFError
	var trailing *dotparser.TrailingInputError
	var syn *dotparser.SyntaxError
	switch {
	case errors.As(err, &eof):
		return eof.Pos, true
	case errors.As(err, &trailing):
		return trailing.Pos, true
	case errors.As(err, &syn):
		return syn.Pos, true
	default:
		return dotparser.Position{}, false
	}
}

func encodeError(err error) *errorJSON {
	out := &errorJSON{Kind: errorKind(err), Message: err.Error()}
	if pos, ok := positionOf(err); ok {
		out.Pos = &pos
	}
	var trailing *dotparser.TrailingInputError
	if errors.As(err, &trailing) {
		out.Remainder = trailing.Remainder
	}
	for _, f := range failuresOf(err) {
		out.Failures = append(out.Failures, failureJSON{Pos: f.Pos, Rule: f.Rule, Path: f.Path, Cause: f.Cause})
	}
	return out
}

func encodeDiagnostics(diags []dotparser.Diagnostic) []diagnosticJSON {
	out := make([]diagnosticJSON, 0, len(diags))
	for _, d := range diags {
		out = append(out, diagnosticJSON{
			Rule:     d.Rule,
			Severity: d.Severity.String(),
			Message:  d.Message,
			Pos:      d.Pos,
			Fix:      d.Fix,
		})
	}
	return out
}

// writeError prints the one-line description of err and, when verbose, the
// failure trace below it.
func writeError(w io.Writer, err error, verbose bool) {
	fmt.Fprintf(w, "ERROR: %v\n", err)
	if !verbose {
		return
	}
	for _, f := range failuresOf(err) {
		fmt.Fprintf(w, "  at %s\n", f)
	}
}

// writeJSONLine writes v as one line of JSON.
func writeJSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
