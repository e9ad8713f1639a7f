package dotparser

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the graph is not meaningful as written.
	Error Severity = iota
	// Warning means a consumer will accept the graph but may not do what was meant.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "edge_operator")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	Pos      Position // statement the finding refers to
	Edge     *Edge    // related edge (optional)
	Fix      string   // suggested fix (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Pos.Line > 0 {
		fmt.Fprintf(&b, " (at %s)", d.Pos)
	}
	if d.Fix != "" {
		fmt.Fprintf(&b, " -- fix: %s", d.Fix)
	}
	return b.String()
}

// LintRule is the interface for a single validation rule.
type LintRule interface {
	Name() string
	Apply(g *Graph) []Diagnostic
}

// ValidationError is returned by ValidateOrError when error-severity diagnostics exist.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs all built-in rules (and any extra rules) against the graph.
// Returns all diagnostics regardless of severity.
func Validate(g *Graph, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(g)...)
	}
	return diagnostics
}

// ValidateOrError runs Validate and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func ValidateOrError(g *Graph, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(g, extraRules...)

	var errors []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errors = append(errors, d)
		}
	}
	if len(errors) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errors}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		edgeOperatorRule{},
		strictMultiEdgeRule{},
		repeatedAttributeRule{},
		definitionShadowedRule{},
	}
}

// edge_operator: '->' belongs to digraphs, '--' to graphs.
type edgeOperatorRule struct{}

func (edgeOperatorRule) Name() string { return "edge_operator" }

func (edgeOperatorRule) Apply(g *Graph) []Diagnostic {
	want := EdgeUndirected
	if g.Kind == Directed {
		want = EdgeDirected
	}
	var diags []Diagnostic
	for _, st := range g.Statements {
		es, ok := st.(*EdgeStatement)
		if !ok {
			continue
		}
		for _, e := range es.Edges() {
			if e.Op.MatchesKind(g.Kind) {
				continue
			}
			e := e
			diags = append(diags, Diagnostic{
				Rule:     "edge_operator",
				Severity: Error,
				Message:  fmt.Sprintf("edge %q %s %q uses '%s' in a %s", e.From, e.Op, e.To, e.Op, g.Kind),
				Pos:      es.Pos,
				Edge:     &e,
				Fix:      fmt.Sprintf("use '%s'", want),
			})
		}
	}
	return diags
}

// strict_multi_edge: a strict graph keeps at most one edge per node pair.
type strictMultiEdgeRule struct{}

func (strictMultiEdgeRule) Name() string { return "strict_multi_edge" }

func (strictMultiEdgeRule) Apply(g *Graph) []Diagnostic {
	if !g.Strict {
		return nil
	}
	seen := make(map[[2]string]bool)
	var diags []Diagnostic
	for _, st := range g.Statements {
		es, ok := st.(*EdgeStatement)
		if !ok {
			continue
		}
		for _, e := range es.Edges() {
			key := [2]string{e.From, e.To}
			if g.Kind == Undirected && key[1] < key[0] {
				key[0], key[1] = key[1], key[0]
			}
			if !seen[key] {
				seen[key] = true
				continue
			}
			e := e
			diags = append(diags, Diagnostic{
				Rule:     "strict_multi_edge",
				Severity: Warning,
				Message:  fmt.Sprintf("edge %q %s %q repeats an earlier edge of a strict graph and will be merged", e.From, e.Op, e.To),
				Pos:      es.Pos,
				Edge:     &e,
				Fix:      "remove the duplicate edge or drop the strict modifier",
			})
		}
	}
	return diags
}

// repeated_attribute: the same attribute twice in one statement; the last one wins.
type repeatedAttributeRule struct{}

func (repeatedAttributeRule) Name() string { return "repeated_attribute" }

func (repeatedAttributeRule) Apply(g *Graph) []Diagnostic {
	var diags []Diagnostic
	for _, st := range g.Statements {
		seen := make(map[string]bool)
		for _, a := range statementAttributes(st) {
			if seen[a.Name()] {
				diags = append(diags, Diagnostic{
					Rule:     "repeated_attribute",
					Severity: Warning,
					Message:  fmt.Sprintf("attribute %q is set more than once; the last value wins", a.Name()),
					Pos:      st.StatementPos(),
					Fix:      fmt.Sprintf("keep a single %s attribute", a.Name()),
				})
			}
			seen[a.Name()] = true
		}
	}
	return diags
}

// definition_shadowed: a later definition of the same key replaces an earlier one.
type definitionShadowedRule struct{}

func (definitionShadowedRule) Name() string { return "definition_shadowed" }

func (definitionShadowedRule) Apply(g *Graph) []Diagnostic {
	first := make(map[string]Position)
	var diags []Diagnostic
	for _, st := range g.Statements {
		d, ok := st.(*DefinitionStatement)
		if !ok {
			continue
		}
		if prev, ok := first[d.LHS]; ok {
			diags = append(diags, Diagnostic{
				Rule:     "definition_shadowed",
				Severity: Info,
				Message:  fmt.Sprintf("%s is redefined; the definition at %s is replaced", d.LHS, prev),
				Pos:      d.Pos,
			})
			continue
		}
		first[d.LHS] = d.Pos
	}
	return diags
}

// statementAttributes returns the attribute list of st, if it has one.
func statementAttributes(st Statement) []Attribute {
	switch st := st.(type) {
	case *AttributeStatement:
		return st.Attributes
	case *NodeStatement:
		return st.Attributes
	case *EdgeStatement:
		return st.Attributes
	default:
		return nil
	}
}
