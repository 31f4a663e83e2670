package eval

import "github.com/go-lisp/golisp/internal/value"

// isMacroCall reports whether ast is a non-empty list whose head symbol is
// bound to a macro closure (spec.md §4.3 step 1).
func isMacroCall(ast value.Value, env *value.Env) (*value.Closure, bool) {
	list, ok := ast.(*value.List)
	if !ok || len(list.Items) == 0 {
		return nil, false
	}
	sym, ok := list.Items[0].(value.Symbol)
	if !ok {
		return nil, false
	}
	bound, ok := env.Get(sym.Name)
	if !ok {
		return nil, false
	}
	closure, ok := bound.(*value.Closure)
	if !ok || !closure.IsMacro {
		return nil, false
	}
	return closure, true
}

// macroExpand repeatedly expands ast while it is a macro call, applying
// each macro to full completion before checking the result for another
// expansion (spec.md §4.3 step 1, §8's "macro order" law: evaluating a
// macro form is equivalent to evaluating (macroexpand form) then that).
func macroExpand(ast value.Value, env *value.Env) (value.Value, error) {
	for {
		closure, ok := isMacroCall(ast, env)
		if !ok {
			return ast, nil
		}
		list := ast.(*value.List)
		outcome, err := Apply(closure, list.Items[1:])
		if err != nil {
			return nil, err
		}
		if outcome.Final {
			ast = outcome.Value
			continue
		}
		expanded, err := Eval(outcome.Ast, outcome.Env)
		if err != nil {
			return nil, err
		}
		ast = expanded
	}
}
