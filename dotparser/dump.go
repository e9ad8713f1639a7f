package dotparser

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented structural dump of g to w, one statement per
// line with its attributes below it.
func Fprint(w io.Writer, g *Graph) error {
	d := &dumper{w: w}
	d.printf(0, "Graph kind=%s strict=%t", g.Kind, g.Strict)
	if g.ID != "" {
		d.printf(0, " id=%q", g.ID)
	}
	d.newline()
	for _, st := range g.Statements {
		switch st := st.(type) {
		case *AttributeStatement:
			d.printf(1, "AttributeStatement kind=%s @%s\n", st.Kind, st.Pos)
			d.attributes(st.Attributes)
		case *NodeStatement:
			d.printf(1, "NodeStatement name=%q @%s\n", st.Name, st.Pos)
			d.attributes(st.Attributes)
		case *EdgeStatement:
			d.printf(1, "EdgeStatement chain=%s @%s\n", chainString(st), st.Pos)
			d.attributes(st.Attributes)
		case *DefinitionStatement:
			d.printf(1, "DefinitionStatement %q = %q @%s\n", st.LHS, st.RHS, st.Pos)
		}
	}
	return d.err
}

func chainString(st *EdgeStatement) string {
	var b strings.Builder
	for i, id := range st.Chain {
		if i > 0 {
			fmt.Fprintf(&b, " %s ", st.Ops[i-1])
		}
		fmt.Fprintf(&b, "%q", id)
	}
	return b.String()
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) printf(depth int, format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, strings.Repeat("  ", depth)+format, args...)
}

func (d *dumper) newline() {
	d.printf(0, "\n")
}

func (d *dumper) attributes(attrs []Attribute) {
	for _, a := range attrs {
		d.printf(2, "%s = %v\n", a.Name(), attributeValue(a))
	}
}
