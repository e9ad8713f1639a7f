package main

import (
	"fmt"
	"io"

	"github.com/jblondin/simpledot/dotparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Parse DOT inputs and report lint diagnostics",
		Long: `Parse each file (or stdin) and run the lint rules over the resulting graph.
Exits non-zero when an input fails to parse or has error-severity diagnostics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			results := parseAll(cmd.Context(), inputs, v.GetInt("workers"))

			failed, err := writeCheckResults(cmd.OutOrStdout(), results, v.GetString("format"), v.GetBool("verbose"))
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d input(s) failed the check", failed, len(results))
			}
			return nil
		},
	}
}

// writeCheckResults lints every parsed result, prints the findings and
// returns how many inputs failed to parse or have errors.
func writeCheckResults(w io.Writer, results []parseResult, format string, verbose bool) (int, error) {
	failed := 0
	for _, r := range results {
		var diags []dotparser.Diagnostic
		bad := r.err != nil
		if r.err == nil {
			var verr error
			diags, verr = dotparser.ValidateOrError(r.graph)
			bad = verr != nil
		}
		if bad {
			failed++
		}

		if format == formatJSON {
			out := resultJSON{Input: r.name, Job: r.job, Diagnostics: encodeDiagnostics(diags)}
			if r.err != nil {
				out.Error = encodeError(r.err)
			}
			if err := writeJSONLine(w, out); err != nil {
				return failed, err
			}
			continue
		}

		if r.err != nil {
			fmt.Fprintf(w, "%s: ", r.name)
			writeError(w, r.err, verbose)
			continue
		}
		if len(diags) == 0 {
			fmt.Fprintf(w, "%s: ok\n", r.name)
			continue
		}
		for _, d := range diags {
			fmt.Fprintf(w, "%s: %s\n", r.name, d)
		}
	}
	return failed, nil
}
