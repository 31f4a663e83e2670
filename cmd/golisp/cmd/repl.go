package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-lisp/golisp/internal/config"
	"github.com/go-lisp/golisp/internal/prelude"
	"github.com/go-lisp/golisp/internal/replio"
	"github.com/go-lisp/golisp/pkg/golisp"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	interp, err := golisp.New()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		verboseLogf("failed to load configuration: %v", err)
	}
	for _, path := range cfg.Prelude {
		if loadErr := loadPreludeFile(interp, path); loadErr != nil {
			verboseLogf("failed to load extra prelude %s: %v", path, loadErr)
		}
	}

	r := replio.New(interp.Env())
	r.NoColor = noColor || cfg.NoColor
	if noHist {
		r.NoHistory = true
	}
	return r.Run()
}

func loadPreludeFile(interp *golisp.Interpreter, path string) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}
	return prelude.LoadExtra(interp.Env(), data)
}
