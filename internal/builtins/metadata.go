package builtins

import (
	"github.com/go-lisp/golisp/internal/errors"
	"github.com/go-lisp/golisp/internal/value"
)

// registerMetadata wires with-meta/meta, the SUPPLEMENTED FEATURES addition
// (metadata was present in original_source/ but dropped by the spec.md
// distillation): a shallow copy carrying an attached Value, readable back
// off any of the kinds that have a Meta field.
func registerMetadata(env *value.Env, reg *Registry) {
	def(env, reg, CategoryMetadata, "with-meta", value.Exactly(2), func(args []value.Value) (value.Value, error) {
		meta := args[1]
		switch v := args[0].(type) {
		case *value.List:
			return &value.List{Items: v.Items, Meta: meta}, nil
		case *value.Vector:
			return &value.Vector{Items: v.Items, Meta: meta}, nil
		case *value.Map:
			clone := v.Clone()
			clone.Meta = meta
			return clone, nil
		case *value.Closure:
			clone := *v
			clone.Meta = meta
			return &clone, nil
		case *value.Primitive:
			clone := *v
			clone.Meta = meta
			return &clone, nil
		default:
			return nil, errors.TypeMismatch("list, vector, map, or function")
		}
	})

	def(env, reg, CategoryMetadata, "meta", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		switch v := args[0].(type) {
		case *value.List:
			return v.Meta, nil
		case *value.Vector:
			return v.Meta, nil
		case *value.Map:
			return v.Meta, nil
		case *value.Closure:
			return v.Meta, nil
		case *value.Primitive:
			return v.Meta, nil
		default:
			return nil, errors.TypeMismatch("list, vector, map, or function")
		}
	})
}
