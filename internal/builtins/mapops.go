package builtins

import (
	"github.com/go-lisp/golisp/internal/errors"
	"github.com/go-lisp/golisp/internal/value"
)

func registerMap(env *value.Env, reg *Registry) {
	def(env, reg, CategoryMap, "hash-map", value.Even(), func(args []value.Value) (value.Value, error) {
		return buildMap(args)
	})

	def(env, reg, CategoryMap, "map?", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		_, ok := args[0].(*value.Map)
		return value.Bool(ok), nil
	})

	def(env, reg, CategoryMap, "assoc", value.Odd(), func(args []value.Value) (value.Value, error) {
		m, ok := args[0].(*value.Map)
		if !ok {
			return nil, errors.TypeMismatch("map")
		}
		rest := args[1:]
		clone := m.Clone()
		for i := 0; i < len(rest); i += 2 {
			key, ok := value.ToHashKey(rest[i])
			if !ok {
				return nil, errors.TypeMismatch("string or keyword key")
			}
			clone.Set(key, rest[i+1])
		}
		return clone, nil
	})

	def(env, reg, CategoryMap, "dissoc", value.AtLeast(1), func(args []value.Value) (value.Value, error) {
		m, ok := args[0].(*value.Map)
		if !ok {
			return nil, errors.TypeMismatch("map")
		}
		clone := m.Clone()
		for _, k := range args[1:] {
			key, ok := value.ToHashKey(k)
			if !ok {
				return nil, errors.TypeMismatch("string or keyword key")
			}
			clone.Delete(key)
		}
		return clone, nil
	})

	def(env, reg, CategoryMap, "get", value.Exactly(2), func(args []value.Value) (value.Value, error) {
		if _, isNil := args[0].(value.Nil); isNil {
			return value.NilValue, nil
		}
		m, ok := args[0].(*value.Map)
		if !ok {
			return nil, errors.TypeMismatch("map")
		}
		key, ok := value.ToHashKey(args[1])
		if !ok {
			return value.NilValue, nil
		}
		v, ok := m.Get(key)
		if !ok {
			return value.NilValue, nil
		}
		return v, nil
	})

	def(env, reg, CategoryMap, "contains?", value.Exactly(2), func(args []value.Value) (value.Value, error) {
		m, ok := args[0].(*value.Map)
		if !ok {
			return nil, errors.TypeMismatch("map")
		}
		key, ok := value.ToHashKey(args[1])
		if !ok {
			return value.Bool(false), nil
		}
		_, ok = m.Get(key)
		return value.Bool(ok), nil
	})

	def(env, reg, CategoryMap, "keys", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		m, ok := args[0].(*value.Map)
		if !ok {
			return nil, errors.TypeMismatch("map")
		}
		keys := m.Keys()
		out := make([]value.Value, len(keys))
		for i, k := range keys {
			out[i] = value.FromHashKey(k)
		}
		return value.NewList(out...), nil
	})

	def(env, reg, CategoryMap, "vals", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		m, ok := args[0].(*value.Map)
		if !ok {
			return nil, errors.TypeMismatch("map")
		}
		keys := m.Keys()
		out := make([]value.Value, len(keys))
		for i, k := range keys {
			v, _ := m.Get(k)
			out[i] = v
		}
		return value.NewList(out...), nil
	})
}

func buildMap(args []value.Value) (value.Value, error) {
	m := value.NewMap()
	for i := 0; i < len(args); i += 2 {
		key, ok := value.ToHashKey(args[i])
		if !ok {
			return nil, errors.TypeMismatch("string or keyword key")
		}
		m.Set(key, args[i+1])
	}
	return m, nil
}
