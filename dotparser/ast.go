package dotparser

import (
	"fmt"
	"sort"
)

// Position tracks a source location for error messages.
type Position struct {
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 1-based column number
	Offset int `json:"offset"` // 0-based byte offset into source
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// lineIndex resolves byte offsets to line and column numbers.
type lineIndex struct {
	size   int
	starts []int // offset of the first byte of each line
}

func newLineIndex(src string) lineIndex {
	idx := lineIndex{size: len(src), starts: []int{0}}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			idx.starts = append(idx.starts, i+1)
		}
	}
	return idx
}

func (idx lineIndex) position(offset int) Position {
	if offset > idx.size {
		offset = idx.size
	}
	line := sort.Search(len(idx.starts), func(i int) bool { return idx.starts[i] > offset }) - 1
	return Position{Line: line + 1, Column: offset - idx.starts[line] + 1, Offset: offset}
}

// positionAt converts a byte offset in src into a Position.
func positionAt(src string, offset int) Position {
	return newLineIndex(src).position(offset)
}

// GraphKind selects between directed and undirected graphs.
type GraphKind int

const (
	Undirected GraphKind = iota
	Directed
)

func (k GraphKind) String() string {
	if k == Directed {
		return "digraph"
	}
	return "graph"
}

// AttributeKind is the element kind an attribute block applies to.
type AttributeKind int

const (
	GraphAttributes AttributeKind = iota
	NodeAttributes
	EdgeAttributes
)

func (k AttributeKind) String() string {
	switch k {
	case GraphAttributes:
		return "graph"
	case NodeAttributes:
		return "node"
	case EdgeAttributes:
		return "edge"
	default:
		return fmt.Sprintf("AttributeKind(%d)", int(k))
	}
}

// Graph is the root of the IR. It is built once per successful parse and is
// not modified afterwards.
type Graph struct {
	Kind       GraphKind
	Strict     bool
	ID         string // optional; empty for anonymous graphs
	Statements []Statement
}

// Statement is one of *AttributeStatement, *NodeStatement, *EdgeStatement or
// *DefinitionStatement.
type Statement interface {
	StatementPos() Position
	statement()
}

// AttributeStatement declares default attributes for the graph, or for the
// nodes or edges declared after it.
type AttributeStatement struct {
	Kind       AttributeKind
	Attributes []Attribute
	Pos        Position
}

// NodeStatement declares a node with optional attributes.
type NodeStatement struct {
	Name       string
	Attributes []Attribute
	Pos        Position
}

// EdgeStatement is a chain of two or more identifiers joined by edge
// operators. Ops[i] joins Chain[i] and Chain[i+1].
type EdgeStatement struct {
	Chain      []string
	Ops        []EdgeOp
	Attributes []Attribute
	Pos        Position
}

// DefinitionStatement is a graph-level LHS = RHS assignment.
type DefinitionStatement struct {
	LHS string
	RHS string
	Pos Position
}

func (s *AttributeStatement) StatementPos() Position  { return s.Pos }
func (s *NodeStatement) StatementPos() Position       { return s.Pos }
func (s *EdgeStatement) StatementPos() Position       { return s.Pos }
func (s *DefinitionStatement) StatementPos() Position { return s.Pos }

func (*AttributeStatement) statement()  {}
func (*NodeStatement) statement()       {}
func (*EdgeStatement) statement()       {}
func (*DefinitionStatement) statement() {}

// Edge is one logical edge of an edge chain.
type Edge struct {
	From string
	To   string
	Op   EdgeOp
}

// Edges expands the chain into its adjacent pairs, in chain order.
func (s *EdgeStatement) Edges() []Edge {
	edges := make([]Edge, 0, len(s.Ops))
	for i, op := range s.Ops {
		edges = append(edges, Edge{From: s.Chain[i], To: s.Chain[i+1], Op: op})
	}
	return edges
}

// Nodes returns the node statements of g in declaration order.
func (g *Graph) Nodes() []*NodeStatement {
	var nodes []*NodeStatement
	for _, st := range g.Statements {
		if n, ok := st.(*NodeStatement); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Edges returns every logical edge of g, expanding edge chains in order.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, st := range g.Statements {
		if e, ok := st.(*EdgeStatement); ok {
			edges = append(edges, e.Edges()...)
		}
	}
	return edges
}

// Definition looks up the last definition of key. Returns the value and true
// if found.
func (g *Graph) Definition(key string) (string, bool) {
	for i := len(g.Statements) - 1; i >= 0; i-- {
		if d, ok := g.Statements[i].(*DefinitionStatement); ok && d.LHS == key {
			return d.RHS, true
		}
	}
	return "", false
}
