package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jblondin/simpledot/dotparser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newReplCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse graphs interactively, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.New("simpledot> ")
			if err != nil {
				return fmt.Errorf("starting line editor: %w", err)
			}
			defer rl.Close()

			pterm.Info.Println("Quit with <ctrl>D")
			r := &repl{
				in:      rl,
				out:     cmd.OutOrStdout(),
				format:  v.GetString("format"),
				verbose: v.GetBool("verbose"),
			}
			r.run(cmd.Context())
			return nil
		},
	}
}

// lineReader is the part of *readline.Instance the REPL uses.
type lineReader interface {
	Readline() (string, error)
}

type repl struct {
	in      lineReader
	out     io.Writer
	format  string
	verbose bool

	parsed int
	failed int
}

// run reads lines until the reader fails (end of input or interrupt).
func (r *repl) run(ctx context.Context) {
	logger := loggerFromContext(ctx)
	for {
		line, err := r.in.Readline()
		if err != nil {
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		r.eval(line)
	}
	logger.Debug("repl finished", "parsed", r.parsed, "failed", r.failed)
}

// eval parses line as one graph and prints it or the failure.
func (r *repl) eval(line string) {
	g, err := dotparser.ParseString(line)
	if err != nil {
		r.failed++
		fmt.Fprintln(r.out, pterm.Error.Sprint(err.Error()))
		if r.verbose {
			for _, f := range failuresOf(err) {
				fmt.Fprintf(r.out, "  at %s\n", f)
			}
		}
		return
	}
	r.parsed++

	if r.format == formatJSON {
		if err := writeJSONLine(r.out, g); err != nil {
			fmt.Fprintln(r.out, pterm.Error.Sprint(err.Error()))
		}
		return
	}
	tree, err := pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(graphTree(g))).Srender()
	if err != nil {
		fmt.Fprintln(r.out, pterm.Error.Sprint(err.Error()))
		return
	}
	fmt.Fprintln(r.out, tree)
}

// graphTree flattens g into a leveled list: the graph header, one item per
// statement and its attributes one level below.
func graphTree(g *dotparser.Graph) pterm.LeveledList {
	header := g.Kind.String()
	if g.Strict {
		header = "strict " + header
	}
	if g.ID != "" {
		header += fmt.Sprintf(" %q", g.ID)
	}
	ll := pterm.LeveledList{{Level: 0, Text: header}}
	for _, st := range g.Statements {
		var text string
		var attrs []dotparser.Attribute
		switch st := st.(type) {
		case *dotparser.AttributeStatement:
			text, attrs = st.Kind.String()+" defaults", st.Attributes
		case *dotparser.NodeStatement:
			text, attrs = fmt.Sprintf("node %q", st.Name), st.Attributes
		case *dotparser.EdgeStatement:
			parts := make([]string, 0, len(st.Chain)*2)
			for i, id := range st.Chain {
				if i > 0 {
					parts = append(parts, st.Ops[i-1].String())
				}
				parts = append(parts, fmt.Sprintf("%q", id))
			}
			text, attrs = "edge "+strings.Join(parts, " "), st.Attributes
		case *dotparser.DefinitionStatement:
			text = fmt.Sprintf("%q = %q", st.LHS, st.RHS)
		}
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: text})
		for _, a := range attrs {
			ll = append(ll, pterm.LeveledListItem{Level: 2, Text: attributeText(a)})
		}
	}
	return ll
}

func attributeText(a dotparser.Attribute) string {
	switch a := a.(type) {
	case *dotparser.StyleAttr:
		styles := make([]string, len(a.Values))
		for i, s := range a.Values {
			styles[i] = s.String()
		}
		return "style = " + strings.Join(styles, ",")
	case *dotparser.ShapeAttr:
		return "shape = " + a.Value.String()
	default:
		return a.Name()
	}
}
