// Command simpledot parses DOT graph descriptions and prints their
// intermediate representation, lint diagnostics, or the parse failure.
//
// Usage:
//
//	simpledot parse graph.dot        # structural dump
//	simpledot parse -f json a.dot b.dot
//	echo 'digraph { a -> b }' | simpledot parse
//	simpledot check graph.dot        # lint diagnostics
//	simpledot repl                   # one graph per line
//
// Flags may also be set from the environment with the SIMPLEDOT_ prefix,
// e.g. SIMPLEDOT_FORMAT=json.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
