// Package eval implements the EVAL engine: the tail-call-optimized
// evaluator loop, special-form dispatch, macro expansion, quasiquotation,
// and application, as described in spec.md §4.3.
//
// Grounded on original_source/evaluator.rs's EVAL loop (macroexpand, then
// dispatch on list-vs-other, then special forms, then application, with
// special forms and closure application returning either a final value or
// a (next_ast, next_env) continuation the loop rewrites itself with), but
// restructured as Go control flow instead of a Rust enum match.
package eval

import (
	"github.com/go-lisp/golisp/internal/errors"
	"github.com/go-lisp/golisp/internal/value"
)

// Eval evaluates ast in env. It is the sole entry point for evaluation.
// The tail positions of let*, do, if, quasiquote and closure application
// rewrite (ast, env) and loop instead of calling Eval, so a
// self-tail-recursive fn* runs in bounded host stack space regardless of
// iteration count (spec.md §4.3.5, §8's 10,000-iteration tail-call-safety
// property). try*'s catch* handler is the exception: evalTryStar evaluates
// it with a nested Eval call, so recursion through a handler grows the host
// stack.
func Eval(ast value.Value, env *value.Env) (value.Value, error) {
	for {
		expanded, err := macroExpand(ast, env)
		if err != nil {
			return nil, err
		}
		ast = expanded

		list, isList := ast.(*value.List)
		if !isList {
			return evalAst(ast, env)
		}
		if len(list.Items) == 0 {
			return value.NewList(), nil
		}

		if sym, ok := list.Items[0].(value.Symbol); ok {
			switch sym.Name {
			case "def!":
				return evalDef(list.Items[1:], env, false)
			case "defmacro!":
				return evalDef(list.Items[1:], env, true)
			case "let*":
				nextAst, nextEnv, err := evalLet(list.Items[1:], env)
				if err != nil {
					return nil, err
				}
				ast, env = nextAst, nextEnv
				continue
			case "do":
				nextAst, err := evalDo(list.Items[1:], env)
				if err != nil {
					return nil, err
				}
				ast = nextAst
				continue
			case "if":
				nextAst, err := evalIf(list.Items[1:], env)
				if err != nil {
					return nil, err
				}
				ast = nextAst
				continue
			case "fn*":
				return evalFnStar(list.Items[1:], env)
			case "quote":
				return evalQuoteForm(list.Items[1:])
			case "quasiquote":
				if err := value.Exactly(1).Validate(len(list.Items[1:]), "quasiquote"); err != nil {
					return nil, err
				}
				nextAst, err := Quasiquote(list.Items[1])
				if err != nil {
					return nil, err
				}
				ast = nextAst
				continue
			case "macroexpand":
				if err := value.Exactly(1).Validate(len(list.Items[1:]), "macroexpand"); err != nil {
					return nil, err
				}
				return macroExpand(list.Items[1], env)
			case "try*":
				return evalTryStar(list.Items[1:], env)
			}
		}

		evaluated, err := evalSequenceElementwise(list.Items, env)
		if err != nil {
			return nil, err
		}
		callable, args := evaluated[0], evaluated[1:]
		outcome, err := Apply(callable, args)
		if err != nil {
			return nil, err
		}
		if outcome.Final {
			return outcome.Value, nil
		}
		ast, env = outcome.Ast, outcome.Env
	}
}

// evalAst implements spec.md §4.3.1: evaluation of any non-list ast.
func evalAst(ast value.Value, env *value.Env) (value.Value, error) {
	switch v := ast.(type) {
	case value.Symbol:
		return env.Fetch(v.Name)
	case *value.Vector:
		items, err := evalSequenceElementwise(v.Items, env)
		if err != nil {
			return nil, err
		}
		return &value.Vector{Items: items, Meta: value.NilValue}, nil
	case *value.Map:
		return evalMap(v, env)
	default:
		return ast, nil
	}
}

func evalMap(m *value.Map, env *value.Env) (value.Value, error) {
	out := value.NewMap()
	for _, k := range m.Keys() {
		old, _ := m.Get(k)
		newVal, err := Eval(old, env)
		if err != nil {
			return nil, err
		}
		out.Set(k, newVal)
	}
	return out, nil
}

func evalSequenceElementwise(items []value.Value, env *value.Env) ([]value.Value, error) {
	out := make([]value.Value, len(items))
	for i, it := range items {
		v, err := Eval(it, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func evalQuoteForm(args []value.Value) (value.Value, error) {
	if err := value.Exactly(1).Validate(len(args), "quote"); err != nil {
		return nil, err
	}
	return args[0], nil
}

// exceptionValue converts a Go error raised during evaluation into the
// Value a catch* handler binds, per spec.md §7: the thrown Value itself
// for UserException, or a String rendering of the message otherwise.
func exceptionValue(err error) value.Value {
	if ue, ok := err.(*errors.UserExceptionError); ok {
		if v, ok2 := ue.Value.(value.Value); ok2 {
			return v
		}
	}
	if ie, ok := err.(*errors.InterpreterError); ok {
		return value.Str(ie.Message)
	}
	return value.Str(err.Error())
}
