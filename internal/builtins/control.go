package builtins

import (
	"github.com/go-lisp/golisp/internal/errors"
	"github.com/go-lisp/golisp/internal/value"
)

func registerControl(env *value.Env, reg *Registry) {
	def(env, reg, CategoryControl, "throw", value.Exactly(1), func(args []value.Value) (value.Value, error) {
		return nil, errors.UserException(args[0])
	})
}
