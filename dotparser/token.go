package dotparser

import "fmt"

// Keywords of the language. They are reserved: a bare word spelling one of
// them is not an identifier.
const (
	KeywordStrict   = "strict"
	KeywordGraph    = "graph"
	KeywordDigraph  = "digraph"
	KeywordNode     = "node"
	KeywordEdge     = "edge"
	KeywordSubgraph = "subgraph"
)

var keywords = map[string]bool{
	KeywordStrict:   true,
	KeywordGraph:    true,
	KeywordDigraph:  true,
	KeywordNode:     true,
	KeywordEdge:     true,
	KeywordSubgraph: true,
}

// IsKeyword reports whether word is reserved.
func IsKeyword(word string) bool {
	return keywords[word]
}

// EdgeOp is the operator joining two identifiers of an edge chain.
type EdgeOp int

const (
	EdgeUndirected EdgeOp = iota // --
	EdgeDirected                 // ->
)

func (op EdgeOp) String() string {
	switch op {
	case EdgeUndirected:
		return "--"
	case EdgeDirected:
		return "->"
	default:
		return fmt.Sprintf("EdgeOp(%d)", int(op))
	}
}

// MatchesKind reports whether op is the operator a graph of kind k uses.
func (op EdgeOp) MatchesKind(k GraphKind) bool {
	return (op == EdgeDirected) == (k == Directed)
}

// edgeOp accepts either operator regardless of graph kind.
var edgeOp = rule[EdgeOp]{name: "edge_op", parse: func(s *scanner) (EdgeOp, bool) {
	return lexeme(s, func(s *scanner) (EdgeOp, bool) {
		switch {
		case s.literal("--"):
			return EdgeUndirected, true
		case s.literal("->"):
			return EdgeDirected, true
		}
		return 0, false
	})
}}

// separator is the optional ',' or ';' after an attribute or statement.
func separator(s *scanner) bool {
	return token(s, func(s *scanner) bool {
		return s.literal(",") || s.literal(";")
	})
}
