package builtins

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/go-lisp/golisp/internal/errors"
	"github.com/go-lisp/golisp/internal/printer"
	"github.com/go-lisp/golisp/internal/reader"
	"github.com/go-lisp/golisp/internal/value"
)

var stdinReader = bufio.NewReader(os.Stdin)

func registerStringIO(env *value.Env, reg *Registry) {
	def(env, reg, CategoryStringIO, "pr-str", value.AtLeast(0), func(args []value.Value) (value.Value, error) {
		return value.Str(joinPrinted(args, " ", true)), nil
	})

	def(env, reg, CategoryStringIO, "str", value.AtLeast(0), func(args []value.Value) (value.Value, error) {
		return value.Str(joinPrinted(args, "", false)), nil
	})

	def(env, reg, CategoryStringIO, "prn", value.AtLeast(0), func(args []value.Value) (value.Value, error) {
		fmt.Println(joinPrinted(args, " ", true))
		return value.NilValue, nil
	})

	def(env, reg, CategoryStringIO, "println", value.AtLeast(0), func(args []value.Value) (value.Value, error) {
		fmt.Println(joinPrinted(args, " ", false))
		return value.NilValue, nil
	})

	def(env, reg, CategoryStringIO, "read-string", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, errors.TypeMismatch("string")
		}
		return reader.ReadStr(string(s))
	})

	def(env, reg, CategoryStringIO, "slurp", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		path, ok := args[0].(value.Str)
		if !ok {
			return nil, errors.TypeMismatch("string")
		}
		data, err := os.ReadFile(string(path))
		if err != nil {
			return nil, errors.IOError(err)
		}
		return value.Str(data), nil
	})

	def(env, reg, CategoryStringIO, "readline", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		prompt, ok := args[0].(value.Str)
		if !ok {
			return nil, errors.TypeMismatch("string")
		}
		fmt.Print(string(prompt))
		line, err := stdinReader.ReadString('\n')
		if err != nil {
			if line == "" {
				return value.NilValue, nil
			}
		}
		return value.Str(strings.TrimRight(line, "\n")), nil
	})
}

func joinPrinted(args []value.Value, sep string, readable bool) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = printer.PrStr(a, readable)
	}
	return strings.Join(parts, sep)
}
