package eval

import "github.com/go-lisp/golisp/internal/value"

// Quasiquote implements the qq(x) rewrite of spec.md §4.3.4.
func Quasiquote(x value.Value) (value.Value, error) {
	items, isList, isSeq := seqItems(x)
	if !isSeq {
		return value.NewList(value.NewSymbol("quote"), x), nil
	}
	if len(items) == 0 {
		return value.NewList(), nil
	}

	if isList {
		if sym, ok := items[0].(value.Symbol); ok && sym.Name == "unquote" {
			if err := value.Exactly(1).Validate(len(items)-1, "unquote"); err != nil {
				return nil, err
			}
			return items[1], nil
		}
	}

	head := items[0]
	rest := wrapSeq(items[1:], isList)

	if headList, ok := head.(*value.List); ok && len(headList.Items) > 0 {
		if sym, ok := headList.Items[0].(value.Symbol); ok && sym.Name == "splice-unquote" {
			if err := value.Exactly(1).Validate(len(headList.Items)-1, "splice-unquote"); err != nil {
				return nil, err
			}
			s := headList.Items[1]
			restQQ, err := Quasiquote(rest)
			if err != nil {
				return nil, err
			}
			return value.NewList(value.NewSymbol("concat"), s, restQQ), nil
		}
	}

	headQQ, err := Quasiquote(head)
	if err != nil {
		return nil, err
	}
	restQQ, err := Quasiquote(rest)
	if err != nil {
		return nil, err
	}
	return value.NewList(value.NewSymbol("cons"), headQQ, restQQ), nil
}

func seqItems(x value.Value) (items []value.Value, isList bool, isSeq bool) {
	switch v := x.(type) {
	case *value.List:
		return v.Items, true, true
	case *value.Vector:
		return v.Items, false, true
	default:
		return nil, false, false
	}
}

func wrapSeq(items []value.Value, isList bool) value.Value {
	if isList {
		return &value.List{Items: items, Meta: value.NilValue}
	}
	return &value.Vector{Items: items, Meta: value.NilValue}
}
