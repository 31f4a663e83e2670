package builtins

import (
	"github.com/go-lisp/golisp/internal/errors"
	"github.com/go-lisp/golisp/internal/eval"
	"github.com/go-lisp/golisp/internal/value"
)

func registerAtoms(env *value.Env, reg *Registry) {
	def(env, reg, CategoryAtom, "atom", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		return value.NewAtom(args[0]), nil
	})

	def(env, reg, CategoryAtom, "atom?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		_, ok := args[0].(*value.Atom)
		return value.Bool(ok), nil
	})

	def(env, reg, CategoryAtom, "deref", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		a, ok := args[0].(*value.Atom)
		if !ok {
			return nil, errors.TypeMismatch("atom")
		}
		return a.Deref(), nil
	})

	def(env, reg, CategoryAtom, "reset!", value.Exactly(2), func(args []value.Value) (value.Value, error) {
		a, ok := args[0].(*value.Atom)
		if !ok {
			return nil, errors.TypeMismatch("atom")
		}
		return a.Reset(args[1]), nil
	})

	// swap! snapshots the atom's current value before invoking fn, per
	// spec.md's rule that a swap!'d function that re-enters the same atom
	// sees the value the atom held at swap!'s call, not a torn update.
	def(env, reg, CategoryAtom, "swap!", value.AtLeast(2), func(args []value.Value) (value.Value, error) {
		a, ok := args[0].(*value.Atom)
		if !ok {
			return nil, errors.TypeMismatch("atom")
		}
		fn := args[1]
		current := a.Deref()
		callArgs := append([]value.Value{current}, args[2:]...)
		result, err := eval.ApplyToValue(fn, callArgs)
		if err != nil {
			return nil, err
		}
		return a.Reset(result), nil
	})
}
