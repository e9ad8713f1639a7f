package dotparser

import "strings"

// Parse parses DOT source text and returns its IR.
//
// The whole input must be one graph. On failure the error is an *EOFError,
// a *TrailingInputError or a *SyntaxError; each wraps the matching sentinel
// (ErrUnexpectedEOF, ErrTrailingInput, ErrSyntax).
func Parse(src []byte) (*Graph, error) {
	return ParseString(string(src))
}

// ParseString is Parse for a string.
func ParseString(src string) (*Graph, error) {
	g, rest, err := run(src, graphRule)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rest) != "" {
		return nil, newTrailingInputError(positionAt(src, len(src)-len(rest)), rest)
	}
	return g, nil
}

// statementRules is the alternation order for statements. Edge must come
// before node because every edge chain starts with a valid node statement,
// and both must come before definition because all three start with an
// identifier.
var statementRules = []rule[Statement]{
	{name: "edge_stmt", parse: edgeStatement},
	{name: "node_stmt", parse: nodeStatement},
	{name: "definition_stmt", parse: definitionStatement},
	{name: "attr_stmt", parse: attributeStatement},
}

// statement is one statement with the insignificant input after it.
var statement = rule[Statement]{name: "statement", parse: func(s *scanner) (Statement, bool) {
	return lexeme(s, func(s *scanner) (Statement, bool) {
		return choice(s, statementRules)
	})
}}

// edgeStatement: identifier (op identifier)+ attr_list?
func edgeStatement(s *scanner) (Statement, bool) {
	s.skip()
	pos := s.here()
	first, ok := apply(s, identifier)
	if !ok {
		return nil, false
	}
	chain := []string{first}
	var ops []EdgeOp
	for {
		mark := s.pos
		op, ok := apply(s, edgeOp)
		if !ok {
			break
		}
		id, ok := apply(s, identifier)
		if !ok {
			s.pos = mark
			break
		}
		chain = append(chain, id)
		ops = append(ops, op)
	}
	if len(ops) == 0 {
		return nil, false
	}
	return &EdgeStatement{
		Chain:      chain,
		Ops:        ops,
		Attributes: optionalAttributes(s),
		Pos:        pos,
	}, true
}

// nodeStatement: identifier attr_list?
//
// A node statement directly followed by '=' is rejected, leaving the input to
// the definition rule.
func nodeStatement(s *scanner) (Statement, bool) {
	s.skip()
	pos := s.here()
	name, ok := apply(s, identifier)
	if !ok {
		return nil, false
	}
	attrs := optionalAttributes(s)
	if s.peek() == '=' {
		return nil, s.fail("node statement followed by '='")
	}
	return &NodeStatement{Name: name, Attributes: attrs, Pos: pos}, true
}

// definitionStatement: identifier '=' identifier
func definitionStatement(s *scanner) (Statement, bool) {
	s.skip()
	pos := s.here()
	lhs, ok := apply(s, identifier)
	if !ok {
		return nil, false
	}
	if !s.literal("=") {
		return nil, false
	}
	rhs, ok := apply(s, identifier)
	if !ok {
		return nil, false
	}
	return &DefinitionStatement{LHS: lhs, RHS: rhs, Pos: pos}, true
}

var attributeKinds = []rule[AttributeKind]{
	{name: KeywordGraph, parse: kindKeyword(KeywordGraph, GraphAttributes)},
	{name: KeywordNode, parse: kindKeyword(KeywordNode, NodeAttributes)},
	{name: KeywordEdge, parse: kindKeyword(KeywordEdge, EdgeAttributes)},
}

// attributeStatement: (graph|node|edge) attr_list
func attributeStatement(s *scanner) (Statement, bool) {
	s.skip()
	pos := s.here()
	kind, ok := choice(s, attributeKinds)
	if !ok {
		return nil, false
	}
	attrs, ok := apply(s, attributeList)
	if !ok {
		return nil, false
	}
	return &AttributeStatement{Kind: kind, Attributes: attrs, Pos: pos}, true
}

// statementList is zero or more statements, each optionally followed by ';'.
func statementList(s *scanner) []Statement {
	statements := []Statement{}
	for {
		st, ok := apply(s, statement)
		if !ok {
			return statements
		}
		statements = append(statements, st)
		token(s, literalToken(";"))
	}
}

var graphKinds = []rule[GraphKind]{
	{name: KeywordGraph, parse: kindKeyword(KeywordGraph, Undirected)},
	{name: KeywordDigraph, parse: kindKeyword(KeywordDigraph, Directed)},
}

// graphRule: strict? (graph|digraph) identifier? '{' statement* '}'
var graphRule = rule[*Graph]{name: "graph", parse: func(s *scanner) (*Graph, bool) {
	strict := token(s, keywordToken(KeywordStrict))
	kind, ok := choice(s, graphKinds)
	if !ok {
		return nil, false
	}
	id, _ := apply(s, identifier)
	if !token(s, literalToken("{")) {
		return nil, false
	}
	statements := statementList(s)
	if !token(s, literalToken("}")) {
		return nil, false
	}
	return &Graph{Kind: kind, Strict: strict, ID: id, Statements: statements}, true
}}

func kindKeyword[T any](kw string, v T) func(*scanner) (T, bool) {
	return func(s *scanner) (T, bool) {
		return v, token(s, keywordToken(kw))
	}
}
