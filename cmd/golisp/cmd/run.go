package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-lisp/golisp/internal/printer"
	"github.com/go-lisp/golisp/internal/value"
	"github.com/go-lisp/golisp/pkg/golisp"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run <path> [script-args...]",
	Short: "Run a script file or an inline expression",
	Long: `Execute a golisp program from a file or, with -e, from an inline
expression. Script arguments are bound to *ARGV* before the script loads,
per the command-line contract: zero arguments starts a REPL instead, so
run always requires either a path or -e.`,
	Args: cobra.MinimumNArgs(0),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
}

func runScript(_ *cobra.Command, args []string) error {
	interp, err := golisp.New()
	if err != nil {
		return err
	}

	if evalExpr != "" {
		result, err := interp.Eval(evalExpr)
		if err != nil {
			return err
		}
		fmt.Println(printer.PrStr(result, true))
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("either provide a script path or use -e for inline code")
	}

	path := args[0]
	scriptArgs := make([]value.Value, len(args)-1)
	for i, a := range args[1:] {
		scriptArgs[i] = value.Str(a)
	}
	interp.Env().Set("*ARGV*", value.NewList(scriptArgs...))

	loadForm := fmt.Sprintf("(load-file %q)", path)
	if _, err := interp.Eval(loadForm); err != nil {
		return err
	}
	return nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
