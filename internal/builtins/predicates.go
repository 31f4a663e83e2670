package builtins

import (
	"github.com/go-lisp/golisp/internal/errors"
	"github.com/go-lisp/golisp/internal/value"
)

func registerPredicates(env *value.Env, reg *Registry) {
	def(env, reg, CategoryPredicate, "symbol", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, errors.TypeMismatch("string")
		}
		return value.NewSymbol(string(s)), nil
	})

	def(env, reg, CategoryPredicate, "symbol?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		_, ok := args[0].(value.Symbol)
		return value.Bool(ok), nil
	})

	def(env, reg, CategoryPredicate, "keyword", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		switch v := args[0].(type) {
		case value.Keyword:
			return v, nil
		case value.Str:
			return value.Keyword(string(v)), nil
		default:
			return nil, errors.TypeMismatch("string or keyword")
		}
	})

	def(env, reg, CategoryPredicate, "keyword?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		_, ok := args[0].(value.Keyword)
		return value.Bool(ok), nil
	})

	def(env, reg, CategoryPredicate, "nil?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		_, ok := args[0].(value.Nil)
		return value.Bool(ok), nil
	})

	def(env, reg, CategoryPredicate, "true?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		b, ok := args[0].(value.Bool)
		return value.Bool(ok && bool(b)), nil
	})

	def(env, reg, CategoryPredicate, "false?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		b, ok := args[0].(value.Bool)
		return value.Bool(ok && !bool(b)), nil
	})

	def(env, reg, CategoryPredicate, "string?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		_, ok := args[0].(value.Str)
		return value.Bool(ok), nil
	})

	def(env, reg, CategoryPredicate, "number?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		_, ok := args[0].(value.Int)
		return value.Bool(ok), nil
	})

	def(env, reg, CategoryPredicate, "fn?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		switch v := args[0].(type) {
		case *value.Primitive:
			return value.Bool(true), nil
		case *value.Closure:
			return value.Bool(!v.IsMacro), nil
		default:
			return value.Bool(false), nil
		}
	})

	def(env, reg, CategoryPredicate, "macro?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		c, ok := args[0].(*value.Closure)
		return value.Bool(ok && c.IsMacro), nil
	})
}
