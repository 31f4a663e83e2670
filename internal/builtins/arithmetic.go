package builtins

import (
	"github.com/go-lisp/golisp/internal/errors"
	"github.com/go-lisp/golisp/internal/value"
)

func registerArithmetic(env *value.Env, reg *Registry) {
	def(env, reg, CategoryArithmetic, "+", value.AtLeast(0), func(args []value.Value) (value.Value, error) {
		ints, err := grabInts(args)
		if err != nil {
			return nil, err
		}
		var acc int64
		for _, x := range ints {
			acc += x // Go's int64 addition already wraps on overflow
		}
		return value.Int(acc), nil
	})

	def(env, reg, CategoryArithmetic, "-", value.AtLeast(1), func(args []value.Value) (value.Value, error) {
		ints, err := grabInts(args)
		if err != nil {
			return nil, err
		}
		if len(ints) == 1 {
			return value.Int(-ints[0]), nil
		}
		acc := ints[0]
		for _, x := range ints[1:] {
			acc -= x
		}
		return value.Int(acc), nil
	})

	def(env, reg, CategoryArithmetic, "*", value.AtLeast(0), func(args []value.Value) (value.Value, error) {
		ints, err := grabInts(args)
		if err != nil {
			return nil, err
		}
		acc := int64(1)
		for _, x := range ints {
			acc *= x
		}
		return value.Int(acc), nil
	})

	def(env, reg, CategoryArithmetic, "/", value.Exactly(2), func(args []value.Value) (value.Value, error) {
		ints, err := grabInts(args)
		if err != nil {
			return nil, err
		}
		if ints[1] == 0 {
			return nil, errors.DivideByZero()
		}
		return value.Int(ints[0] / ints[1]), nil
	})

	registerComparison(env, reg, "<", func(a, b int64) bool { return a < b })
	registerComparison(env, reg, "<=", func(a, b int64) bool { return a <= b })
	registerComparison(env, reg, ">", func(a, b int64) bool { return a > b })
	registerComparison(env, reg, ">=", func(a, b int64) bool { return a >= b })

	def(env, reg, CategoryArithmetic, "=", value.Exactly(2), func(args []value.Value) (value.Value, error) {
		return value.Bool(value.Equal(args[0], args[1])), nil
	})
}

func registerComparison(env *value.Env, reg *Registry, name string, cmp func(a, b int64) bool) {
	def(env, reg, CategoryArithmetic, name, value.Exactly(2), func(args []value.Value) (value.Value, error) {
		ints, err := grabInts(args)
		if err != nil {
			return nil, err
		}
		return value.Bool(cmp(ints[0], ints[1])), nil
	})
}

func grabInts(args []value.Value) ([]int64, error) {
	out := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.(value.Int)
		if !ok {
			return nil, errors.TypeMismatch("integer")
		}
		out[i] = int64(n)
	}
	return out, nil
}
