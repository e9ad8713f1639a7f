package dotparser

import (
	"encoding/json"
	"fmt"
)

type graphJSON struct {
	Kind       string          `json:"kind"`
	Strict     bool            `json:"strict"`
	ID         string          `json:"id,omitempty"`
	Statements []statementJSON `json:"statements"`
}

type statementJSON struct {
	Type       string          `json:"type"`
	Pos        Position        `json:"pos"`
	Kind       string          `json:"kind,omitempty"`
	Name       string          `json:"name,omitempty"`
	Chain      []string        `json:"chain,omitempty"`
	Ops        []string        `json:"ops,omitempty"`
	LHS        string          `json:"lhs,omitempty"`
	RHS        string          `json:"rhs,omitempty"`
	Attributes []attributeJSON `json:"attributes,omitempty"`
}

type attributeJSON struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// MarshalJSON encodes the IR with a "type" discriminator on every statement.
func (g *Graph) MarshalJSON() ([]byte, error) {
	out := graphJSON{
		Kind:       g.Kind.String(),
		Strict:     g.Strict,
		ID:         g.ID,
		Statements: make([]statementJSON, 0, len(g.Statements)),
	}
	for _, st := range g.Statements {
		sj, err := encodeStatement(st)
		if err != nil {
			return nil, err
		}
		out.Statements = append(out.Statements, sj)
	}
	return json.Marshal(out)
}

func encodeStatement(st Statement) (statementJSON, error) {
	switch st := st.(type) {
	case *AttributeStatement:
		return statementJSON{Type: "attribute", Pos: st.Pos, Kind: st.Kind.String(), Attributes: encodeAttributes(st.Attributes)}, nil
	case *NodeStatement:
		return statementJSON{Type: "node", Pos: st.Pos, Name: st.Name, Attributes: encodeAttributes(st.Attributes)}, nil
	case *EdgeStatement:
		ops := make([]string, len(st.Ops))
		for i, op := range st.Ops {
			ops[i] = op.String()
		}
		return statementJSON{Type: "edge", Pos: st.Pos, Chain: st.Chain, Ops: ops, Attributes: encodeAttributes(st.Attributes)}, nil
	case *DefinitionStatement:
		return statementJSON{Type: "definition", Pos: st.Pos, LHS: st.LHS, RHS: st.RHS}, nil
	default:
		return statementJSON{}, fmt.Errorf("unknown statement type %T", st)
	}
}

func encodeAttributes(attrs []Attribute) []attributeJSON {
	out := make([]attributeJSON, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, attributeJSON{Name: a.Name(), Value: attributeValue(a)})
	}
	return out
}

// attributeValue returns the plain value of a for display.
func attributeValue(a Attribute) any {
	switch a := a.(type) {
	case *StyleAttr:
		styles := make([]string, len(a.Values))
		for i, st := range a.Values {
			styles[i] = st.String()
		}
		return styles
	case *ShapeAttr:
		return a.Value.String()
	default:
		return nil
	}
}
