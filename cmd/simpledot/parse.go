package main

import (
	"fmt"
	"io"

	"github.com/jblondin/simpledot/dotparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newParseCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse DOT inputs and print their IR",
		Long: `Parse each file (or stdin when no file is given) as one DOT graph and print
its intermediate representation. A failed parse prints "ERROR: <description>";
with --verbose the failure trace follows it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			p := newProgress(logger)
			results := parseAll(cmd.Context(), inputs, v.GetInt("workers"))
			p.done(fmt.Sprintf("Parsed %d input(s)", len(results)))

			failed, err := writeParseResults(cmd.OutOrStdout(), results, v.GetString("format"), v.GetBool("verbose"))
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d input(s) failed to parse", failed, len(results))
			}
			return nil
		},
	}
}

// writeParseResults prints every result in order and returns how many failed.
func writeParseResults(w io.Writer, results []parseResult, format string, verbose bool) (int, error) {
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
		}
		if format == formatJSON {
			out := resultJSON{Input: r.name, Job: r.job, Graph: r.graph}
			if r.err != nil {
				out.Error = encodeError(r.err)
			}
			if err := writeJSONLine(w, out); err != nil {
				return failed, err
			}
			continue
		}

		if len(results) > 1 {
			fmt.Fprintf(w, "== %s ==\n", r.name)
		}
		if r.err != nil {
			writeError(w, r.err, verbose)
			continue
		}
		if err := dotparser.Fprint(w, r.graph); err != nil {
			return failed, fmt.Errorf("writing %s: %w", r.name, err)
		}
	}
	return failed, nil
}
