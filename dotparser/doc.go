// Package dotparser translates DOT graph descriptions into an intermediate
// representation (IR).
//
// The grammar is a set of ordered-choice rules run directly over the source
// text. Each rule either consumes input and yields a value, or fails and
// leaves the cursor where it found it, so the next alternative can be tried
// from the same position. Failures are collected at the farthest position the
// parse reached and returned as a classified error.
//
// The layers, leaf first:
//
//   - Whitespace: spaces, line breaks, // and /* */ comments and # lines
//     are skipped around every token.
//   - Identifiers: bare words, numerals (with a mandatory '.') and quoted
//     strings with \" escapes. The surface form is erased.
//   - Attributes: name = value pairs, dispatched by name to a value grammar.
//     Only registered names parse; there is no generic fallback.
//   - Statements: edge chain, node, definition and attribute block, tried in
//     that order.
//   - Graph: [strict] (graph|digraph) [ID] { statements }.
//
// Usage:
//
//	g, err := dotparser.Parse([]byte(`digraph { a -> b -> c }`))
//	if err != nil {
//	    var syn *dotparser.SyntaxError
//	    if errors.As(err, &syn) {
//	        for _, f := range syn.Failures {
//	            fmt.Println(f)
//	        }
//	    }
//	    return err
//	}
//	fmt.Println(g.Kind, len(g.Statements))
//
// Parse holds no state between calls and is safe for concurrent use.
package dotparser

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'simpledot.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("simpledot.grammar")
}
