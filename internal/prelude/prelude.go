// Package prelude embeds and loads the bootstrap script of spec.md §6:
// three forms (not, load-file, cond) defined in the language itself rather
// than as Go primitives, following the teacher's pattern of shipping a
// small embedded init script (internal/interp/fixture_test.go's embedded
// `.dws` fixtures) via go:embed instead of a string literal in Go source.
package prelude

import (
	_ "embed"

	"github.com/go-lisp/golisp/internal/eval"
	"github.com/go-lisp/golisp/internal/lexer"
	"github.com/go-lisp/golisp/internal/reader"
	"github.com/go-lisp/golisp/internal/value"
)

//go:embed prelude.lisp
var source string

// Load evaluates the embedded bootstrap script in env, defining not,
// load-file, and cond. It also binds *host-language* and *ARGV* (the
// latter defaulting to an empty list; callers running in script mode
// overwrite it before Load, or rebind it after).
func Load(env *value.Env) error {
	if _, ok := env.Get("*ARGV*"); !ok {
		env.Set("*ARGV*", value.NewList())
	}
	env.Set("*host-language*", value.Str("golisp"))

	forms, err := parseAll(source)
	if err != nil {
		return err
	}
	for _, form := range forms {
		if _, err := eval.Eval(form, env); err != nil {
			return err
		}
	}
	return nil
}

// LoadExtra evaluates additional prelude-style files named in the user's
// configuration, after the built-in prelude.
func LoadExtra(env *value.Env, text string) error {
	forms, err := parseAll(text)
	if err != nil {
		return err
	}
	for _, form := range forms {
		if _, err := eval.Eval(form, env); err != nil {
			return err
		}
	}
	return nil
}

func parseAll(text string) ([]value.Value, error) {
	toks, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	r := reader.New(toks)
	var forms []value.Value
	for r.HasMore() {
		form, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}
