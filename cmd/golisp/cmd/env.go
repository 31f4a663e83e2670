package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-lisp/golisp/pkg/golisp"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List every built-in primitive with its category, sorted by name",
	Args:  cobra.NoArgs,
	RunE:  listEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)
}

func listEnv(_ *cobra.Command, _ []string) error {
	interp, err := golisp.New(golisp.WithoutPrelude())
	if err != nil {
		return err
	}
	reg := interp.Registry()
	for _, name := range reg.Names() {
		cat, _ := reg.Category(name)
		fmt.Printf("%-12s %s\n", cat, name)
	}
	return nil
}
