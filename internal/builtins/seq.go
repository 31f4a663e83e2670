package builtins

import "github.com/go-lisp/golisp/internal/value"

// sequenceItems extracts the element slice from a List, Vector, or Nil
// (treated as empty), the shared notion of "sequence" spec.md §4.5's
// sequence operations operate over.
func sequenceItems(v value.Value) ([]value.Value, bool) {
	switch vv := v.(type) {
	case *value.List:
		return vv.Items, true
	case *value.Vector:
		return vv.Items, true
	case value.Nil:
		return nil, true
	default:
		return nil, false
	}
}

func isList(v value.Value) bool {
	_, ok := v.(*value.List)
	return ok
}
