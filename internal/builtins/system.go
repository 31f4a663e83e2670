package builtins

import (
	"time"

	"github.com/go-lisp/golisp/internal/value"
)

func registerSystem(env *value.Env, reg *Registry) {
	def(env, reg, CategorySystem, "time-ms", value.Exactly(0), func(args []value.Value) (value.Value, error) {
		return value.Int(time.Now().UnixMilli()), nil
	})
}
