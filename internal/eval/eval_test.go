package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lisp/golisp/internal/builtins"
	"github.com/go-lisp/golisp/internal/eval"
	"github.com/go-lisp/golisp/internal/prelude"
	"github.com/go-lisp/golisp/internal/reader"
	"github.com/go-lisp/golisp/internal/value"
)

func newEnv(t *testing.T) *value.Env {
	t.Helper()
	env, _ := builtins.Install()
	require.NoError(t, prelude.Load(env))
	return env
}

func evalStr(t *testing.T, env *value.Env, src string) value.Value {
	t.Helper()
	form, err := reader.ReadStr(src)
	require.NoError(t, err)
	v, err := eval.Eval(form, env)
	require.NoError(t, err)
	return v
}

func TestArithmeticAndLet(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, value.Int(6), evalStr(t, env, "(+ 1 2 3)"))
	assert.Equal(t, value.Int(9), evalStr(t, env, "(let* (a 3 b (* a a)) b)"))
}

func TestIfAndDo(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, value.Int(1), evalStr(t, env, "(if true 1 2)"))
	assert.Equal(t, value.Int(2), evalStr(t, env, "(if false 1 2)"))
	assert.Equal(t, value.NilValue, evalStr(t, env, "(if false 1)"))
	assert.Equal(t, value.Int(3), evalStr(t, env, "(do 1 2 3)"))
}

// TestTailCallDoesNotGrowStack exercises spec.md §8's tail-call-safety
// property: a self-recursive fn* in tail position completes for a large
// iteration count without a host stack overflow.
func TestTailCallDoesNotGrowStack(t *testing.T) {
	env := newEnv(t)
	evalStr(t, env, `(def! count-to (fn* (n acc) (if (= n 0) acc (count-to (- n 1) (+ acc 1)))))`)
	assert.Equal(t, value.Int(100000), evalStr(t, env, "(count-to 100000 0)"))
}

func TestClosureCapturesDefiningEnv(t *testing.T) {
	env := newEnv(t)
	evalStr(t, env, "(def! make-adder (fn* (x) (fn* (y) (+ x y))))")
	evalStr(t, env, "(def! add5 (make-adder 5))")
	assert.Equal(t, value.Int(12), evalStr(t, env, "(add5 7)"))
}

func TestDefmacroAndCond(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, value.Int(3), evalStr(t, env, "(cond false 1 false 2 true 3)"))
}

func TestQuasiquoteUnquoteSplice(t *testing.T) {
	env := newEnv(t)
	evalStr(t, env, "(def! lst (list 2 3))")
	result := evalStr(t, env, "`(1 ~@lst 4)")
	lst, ok := result.(*value.List)
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(1), value.Int(2), value.Int(3), value.Int(4)}, lst.Items)
}

func TestTryCatchBindsThrownValue(t *testing.T) {
	env := newEnv(t)
	result := evalStr(t, env, `(try* (throw "boom") (catch* e e))`)
	assert.Equal(t, value.Str("boom"), result)
}

func TestTryCatchOnHostError(t *testing.T) {
	env := newEnv(t)
	result := evalStr(t, env, `(try* (nth (list 1 2) 5) (catch* e e))`)
	assert.Equal(t, value.Str("bad index: 5 not in range [0, 2)"), result)
}

func TestUnknownSymbolErrors(t *testing.T) {
	env := newEnv(t)
	form, err := reader.ReadStr("totally-undefined-name")
	require.NoError(t, err)
	_, err = eval.Eval(form, env)
	require.Error(t, err)
}
