package main

import (
	"fmt"
	"runtime"

	charmlog "github.com/charmbracelet/log"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// grammarTraceKey selects the tracer of the dotparser grammar rules.
const grammarTraceKey = "simpledot.grammar"

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SIMPLEDOT")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "simpledot",
		Short:        "DOT graph parser",
		Long:         "simpledot parses DOT graph descriptions into an intermediate representation and reports where and why a parse fails.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if v.GetBool("verbose") {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))

			if t := v.GetString("trace"); t != "" {
				tracing.Select(grammarTraceKey).SetTraceLevel(tracing.TraceLevelFromString(t))
			}
			switch f := v.GetString("format"); f {
			case formatText, formatJSON:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want %s or %s)", f, formatText, formatJSON)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Verbose output, including the failure trace of parse errors")
	flags.StringP("format", "f", formatText, "Output format: text or json")
	flags.String("trace", "", "Grammar trace level [Debug|Info|Error]")
	flags.IntP("workers", "j", runtime.NumCPU(), "Number of inputs parsed in parallel")

	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = v.BindPFlag("format", flags.Lookup("format"))
	_ = v.BindPFlag("trace", flags.Lookup("trace"))
	_ = v.BindPFlag("workers", flags.Lookup("workers"))

	root.AddCommand(newParseCmd(v))
	root.AddCommand(newCheckCmd(v))
	root.AddCommand(newReplCmd(v))
	return root
}
