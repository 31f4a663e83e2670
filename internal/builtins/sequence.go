package builtins

import (
	"github.com/go-lisp/golisp/internal/errors"
	"github.com/go-lisp/golisp/internal/eval"
	"github.com/go-lisp/golisp/internal/value"
)

func registerSequence(env *value.Env, reg *Registry) {
	def(env, reg, CategorySequence, "list", value.AtLeast(0), func(args []value.Value) (value.Value, error) {
		return value.NewList(append([]value.Value(nil), args...)...), nil
	})

	def(env, reg, CategorySequence, "list?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		// spec.md §9 open question (a): vectors are not lists.
		return value.Bool(isList(args[0])), nil
	})

	def(env, reg, CategorySequence, "vector", value.AtLeast(0), func(args []value.Value) (value.Value, error) {
		return value.NewVector(append([]value.Value(nil), args...)...), nil
	})

	def(env, reg, CategorySequence, "vector?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		_, ok := args[0].(*value.Vector)
		return value.Bool(ok), nil
	})

	def(env, reg, CategorySequence, "sequential?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		_, isSeq := sequenceItems(args[0])
		_, isNil := args[0].(value.Nil)
		return value.Bool(isSeq && !isNil), nil
	})

	def(env, reg, CategorySequence, "empty?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		items, ok := sequenceItems(args[0])
		if !ok {
			return nil, errors.TypeMismatch("sequence")
		}
		return value.Bool(len(items) == 0), nil
	})

	def(env, reg, CategorySequence, "count", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		items, ok := sequenceItems(args[0])
		if !ok {
			return nil, errors.TypeMismatch("sequence")
		}
		return value.Int(len(items)), nil
	})

	def(env, reg, CategorySequence, "cons", value.Exactly(2), func(args []value.Value) (value.Value, error) {
		items, ok := sequenceItems(args[1])
		if !ok {
			return nil, errors.TypeMismatch("sequence")
		}
		out := make([]value.Value, 0, len(items)+1)
		out = append(out, args[0])
		out = append(out, items...)
		return value.NewList(out...), nil
	})

	def(env, reg, CategorySequence, "concat", value.AtLeast(0), func(args []value.Value) (value.Value, error) {
		var out []value.Value
		for _, a := range args {
			items, ok := sequenceItems(a)
			if !ok {
				return nil, errors.TypeMismatch("sequence")
			}
			out = append(out, items...)
		}
		return value.NewList(out...), nil
	})

	def(env, reg, CategorySequence, "nth", value.Exactly(2), func(args []value.Value) (value.Value, error) {
		items, ok := sequenceItems(args[0])
		if !ok {
			return nil, errors.TypeMismatch("sequence")
		}
		n, ok := args[1].(value.Int)
		if !ok {
			return nil, errors.TypeMismatch("integer")
		}
		i := int(n)
		if i < 0 || i >= len(items) {
			return nil, errors.BadIndex(i, 0, len(items))
		}
		return items[i], nil
	})

	def(env, reg, CategorySequence, "first", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		items, ok := sequenceItems(args[0])
		if !ok {
			return nil, errors.TypeMismatch("sequence")
		}
		if len(items) == 0 {
			return value.NilValue, nil
		}
		return items[0], nil
	})

	def(env, reg, CategorySequence, "rest", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		items, ok := sequenceItems(args[0])
		if !ok {
			return nil, errors.TypeMismatch("sequence")
		}
		if len(items) == 0 {
			return value.NewList(), nil
		}
		return value.NewList(append([]value.Value(nil), items[1:]...)...), nil
	})

	def(env, reg, CategorySequence, "apply", value.AtLeast(2), func(args []value.Value) (value.Value, error) {
		fn := args[0]
		last := args[len(args)-1]
		tail, ok := sequenceItems(last)
		if !ok {
			return nil, errors.TypeMismatch("sequence")
		}
		callArgs := append([]value.Value(nil), args[1:len(args)-1]...)
		callArgs = append(callArgs, tail...)
		return eval.ApplyToValue(fn, callArgs)
	})

	def(env, reg, CategorySequence, "map", value.Exactly(2), func(args []value.Value) (value.Value, error) {
		fn := args[0]
		items, ok := sequenceItems(args[1])
		if !ok {
			return nil, errors.TypeMismatch("sequence")
		}
		out := make([]value.Value, len(items))
		for i, it := range items {
			v, err := eval.ApplyToValue(fn, []value.Value{it})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return value.NewList(out...), nil
	})

	def(env, reg, CategorySequence, "seq", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		return seqBuiltin(args[0])
	})

	def(env, reg, CategorySequence, "conj", value.AtLeast(1), func(args []value.Value) (value.Value, error) {
		items, ok := sequenceItems(args[0])
		if !ok {
			return nil, errors.TypeMismatch("sequence")
		}
		extra := args[1:]
		if isList(args[0]) {
			out := make([]value.Value, 0, len(items)+len(extra))
			for i := len(extra) - 1; i >= 0; i-- {
				out = append(out, extra[i])
			}
			out = append(out, items...)
			return value.NewList(out...), nil
		}
		out := append(append([]value.Value(nil), items...), extra...)
		return value.NewVector(out...), nil
	})
}

func seqBuiltin(v value.Value) (value.Value, error) {
	switch vv := v.(type) {
	case value.Nil:
		return value.NilValue, nil
	case *value.List:
		if len(vv.Items) == 0 {
			return value.NilValue, nil
		}
		return value.NewList(vv.Items...), nil
	case *value.Vector:
		if len(vv.Items) == 0 {
			return value.NilValue, nil
		}
		return value.NewList(append([]value.Value(nil), vv.Items...)...), nil
	case value.Str:
		if len(vv) == 0 {
			return value.NilValue, nil
		}
		chars := make([]value.Value, 0, len(vv))
		for _, r := range string(vv) {
			chars = append(chars, value.Str(string(r)))
		}
		return value.NewList(chars...), nil
	default:
		return nil, errors.TypeMismatch("sequence or string")
	}
}
