package eval

import (
	"github.com/go-lisp/golisp/internal/errors"
	"github.com/go-lisp/golisp/internal/printer"
	"github.com/go-lisp/golisp/internal/value"
)

// Outcome is what applying a callable produces: either a Final value, or a
// continuation (Ast, Env) pair for the caller's loop to continue with in
// tail position (spec.md §4.3.3).
type Outcome struct {
	Final bool
	Value value.Value
	Ast   value.Value
	Env   *value.Env
}

// Apply dispatches a call to callable with args, per spec.md §4.3.3. The
// Eval loop and macroExpand call it directly; builtins needing re-entrant
// application (apply, map, swap!) go through ApplyToValue below.
func Apply(callable value.Value, args []value.Value) (Outcome, error) {
	switch c := callable.(type) {
	case *value.Primitive:
		if err := c.Arity.Validate(len(args), c.Name); err != nil {
			return Outcome{}, err
		}
		v, err := c.Fn(args)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Final: true, Value: v}, nil

	case *value.Closure:
		if err := c.Params.Arity().Validate(len(args), "closure"); err != nil {
			return Outcome{}, err
		}
		childEnv := bindClosureArgs(c, args)
		return Outcome{Ast: c.Body, Env: childEnv}, nil

	case *value.EvalBridge:
		if err := value.Exactly(1).Validate(len(args), "eval"); err != nil {
			return Outcome{}, err
		}
		root, ok := c.Root()
		if !ok {
			return Outcome{}, errors.NotCallable("eval (root environment no longer live)")
		}
		return Outcome{Ast: args[0], Env: root}, nil

	default:
		return Outcome{}, errors.NotCallable(printer.PrStr(callable, true))
	}
}

// ApplyToValue is a convenience wrapper for callers (builtins) that just
// want a final Value: it drives any returned continuation through Eval
// itself. Unlike the main EVAL loop, this does grow the host stack by one
// frame per re-entrant call, which is acceptable for builtins like apply,
// map, and swap! that are not expected to be used in million-deep
// recursion the way a user's own tail-recursive fn* would be.
func ApplyToValue(callable value.Value, args []value.Value) (value.Value, error) {
	outcome, err := Apply(callable, args)
	if err != nil {
		return nil, err
	}
	if outcome.Final {
		return outcome.Value, nil
	}
	return Eval(outcome.Ast, outcome.Env)
}

func bindClosureArgs(c *value.Closure, args []value.Value) *value.Env {
	env := value.Spawn(c.Env)
	for i, name := range c.Params.Positional {
		env.Set(name, args[i])
	}
	if c.Params.HasRest {
		rest := append([]value.Value(nil), args[len(c.Params.Positional):]...)
		env.Set(c.Params.Rest, value.NewList(rest...))
	}
	return env
}
