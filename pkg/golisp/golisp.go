// Package golisp is the embeddable facade over the interpreter, mirroring
// the teacher's pkg/dwscript engine facade: a small functional-options
// constructor wrapping the lower internal/ packages so host programs don't
// need to wire internal/eval, internal/builtins, and internal/prelude
// themselves.
package golisp

import (
	"github.com/go-lisp/golisp/internal/builtins"
	"github.com/go-lisp/golisp/internal/eval"
	"github.com/go-lisp/golisp/internal/prelude"
	"github.com/go-lisp/golisp/internal/printer"
	"github.com/go-lisp/golisp/internal/reader"
	"github.com/go-lisp/golisp/internal/value"
)

// Interpreter is one instance of the language runtime: a root environment
// with the primitives table and bootstrap prelude already loaded.
type Interpreter struct {
	env         *value.Env
	reg         *builtins.Registry
	skipPrelude bool
}

// Option configures a new Interpreter, following the teacher's
// WithTypeCheck/WithOutput functional-option pattern.
type Option func(*Interpreter) error

// WithoutPrelude skips loading the bootstrap script (not, load-file, cond),
// for callers that want a bare primitives-only environment.
func WithoutPrelude() Option {
	return func(i *Interpreter) error {
		i.skipPrelude = true
		return nil
	}
}

// New constructs an Interpreter: a fresh root environment, every built-in
// primitive installed, and the bootstrap prelude loaded unless
// WithoutPrelude is given.
func New(opts ...Option) (*Interpreter, error) {
	env, reg := builtins.Install()
	i := &Interpreter{env: env, reg: reg}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	if !i.skipPrelude {
		if err := prelude.Load(env); err != nil {
			return nil, err
		}
	}
	return i, nil
}

// Eval reads and evaluates one top-level form from src, returning its
// result Value.
func (i *Interpreter) Eval(src string) (value.Value, error) {
	form, err := reader.ReadStr(src)
	if err != nil {
		return nil, err
	}
	return eval.Eval(form, i.env)
}

// EvalString is Eval followed by readable pr-str rendering of the result,
// the shape a REPL or `golisp run -e` wants.
func (i *Interpreter) EvalString(src string) (string, error) {
	v, err := i.Eval(src)
	if err != nil {
		return "", err
	}
	return printer.PrStr(v, true), nil
}

// Env exposes the root environment directly, for callers (the CLI's `run`
// command) that need to bind *ARGV* before loading a script.
func (i *Interpreter) Env() *value.Env { return i.env }

// Registry exposes the primitive-name-to-category table, for the CLI's
// introspection command.
func (i *Interpreter) Registry() *builtins.Registry { return i.reg }
