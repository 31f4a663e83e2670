// Package cmd implements the golisp command-line tool, grounded on the
// teacher's cmd/dwscript/cmd package: a small cobra.Command tree around a
// shared root command carrying persistent flags and version metadata.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose bool
	noColor bool
	noHist  bool
	logger  = log.New(os.Stderr, "golisp: ", 0)
)

var rootCmd = &cobra.Command{
	Use:   "golisp",
	Short: "golisp is a small Lisp interpreter",
	Long: `golisp is a tree-walking interpreter for a small Lisp dialect:
reader, tail-call-optimized evaluator, macros, quasiquotation, atoms, and
exception handling via try*/catch*.

Run with no arguments to start an interactive REPL, or pass a script path
to execute it in batch mode.`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return runScript(cmd, args)
		}
		return runRepl(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI error coloring")
	rootCmd.PersistentFlags().BoolVar(&noHist, "no-history", false, "disable the REPL history file")
}

// verboseLogf writes a diagnostic line only when -v/--verbose is set, so
// the interpreter's hot path never pays for log formatting by default.
func verboseLogf(format string, args ...any) {
	if !verbose {
		return
	}
	logger.Printf(format, args...)
}
