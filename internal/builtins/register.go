package builtins

import "github.com/go-lisp/golisp/internal/value"

// Install builds a fresh root environment and binds every primitive of
// spec.md §4.5 into it, plus the `eval` bridge back into the host loop
// (spec.md §4.3.4). The returned Registry is purely for introspection: the
// CLI's `env` subcommand lists names by category.
func Install() (*value.Env, *Registry) {
	env := value.NewRootEnv()
	reg := newRegistry()

	registerArithmetic(env, reg)
	registerSequence(env, reg)
	registerMap(env, reg)
	registerAtoms(env, reg)
	registerPredicates(env, reg)
	registerStringIO(env, reg)
	registerControl(env, reg)
	registerSystem(env, reg)
	registerMetadata(env, reg)

	env.Set("eval", value.NewEvalBridge(env))

	return env, reg
}
