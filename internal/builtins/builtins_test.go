package builtins_test

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

func run(t *testing.T, env *value.Env, src string) value.Value {
	t.Helper()
	form, err := reader.ReadStr(src)
	require.NoError(t, err)
	v, err := eval.Eval(form, env)
	require.NoError(t, err)
	return v
}

func TestSequenceBuiltins(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, value.Int(3), run(t, env, "(count (list 1 2 3))"))
	assert.Equal(t, value.Bool(true), run(t, env, "(empty? (list))"))
	assert.Equal(t, value.Int(1), run(t, env, "(first (list 1 2 3))"))
	assert.Equal(t, value.Int(7), run(t, env, "(nth (list 5 6 7) 2)"))

	result := run(t, env, "(map (fn* (x) (* x x)) (list 1 2 3))")
	lst, ok := result.(*value.List)
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(1), value.Int(4), value.Int(9)}, lst.Items)
}

func TestConjListVsVector(t *testing.T) {
	env := newEnv(t)
	result := run(t, env, "(conj (list 1 2) 3)")
	lst, ok := result.(*value.List)
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(3), value.Int(1), value.Int(2)}, lst.Items)

	result = run(t, env, "(conj [1 2] 3)")
	vec, ok := result.(*value.Vector)
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(1), value.Int(2), value.Int(3)}, vec.Items)
}

func TestListIsNotVector(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, value.Bool(true), run(t, env, "(list? (list 1 2))"))
	assert.Equal(t, value.Bool(false), run(t, env, "(list? [1 2])"))
}

func TestMapBuiltins(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, value.Int(1), run(t, env, `(get {:a 1} :a)`))
	assert.Equal(t, value.NilValue, run(t, env, `(get {:a 1} :missing)`))
	assert.Equal(t, value.NilValue, run(t, env, `(get nil :a)`))
	assert.Equal(t, value.Bool(true), run(t, env, `(contains? {:a 1} :a)`))

	result := run(t, env, `(assoc {:a 1} :b 2)`)
	m, ok := result.(*value.Map)
	require.True(t, ok)
	assert.Equal(t, 2, m.Len())

	result = run(t, env, `(dissoc {:a 1 :b 2} :a)`)
	m, ok = result.(*value.Map)
	require.True(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestAtoms(t *testing.T) {
	env := newEnv(t)
	run(t, env, "(def! counter (atom 0))")
	assert.Equal(t, value.Int(0), run(t, env, "(deref counter)"))
	run(t, env, "(swap! counter (fn* (v) (+ v 1)))")
	assert.Equal(t, value.Int(1), run(t, env, "(deref counter)"))
	run(t, env, "(reset! counter 41)")
	assert.Equal(t, value.Int(41), run(t, env, "@counter"))
}

func TestSwapSeesPreUpdateValue(t *testing.T) {
	env := newEnv(t)
	run(t, env, "(def! a (atom 5))")
	run(t, env, "(swap! a (fn* (v) (+ v (deref a))))")
	assert.Equal(t, value.Int(10), run(t, env, "(deref a)"))
}

func TestPredicates(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, value.Bool(true), run(t, env, "(nil? nil)"))
	assert.Equal(t, value.Bool(true), run(t, env, "(true? true)"))
	assert.Equal(t, value.Bool(true), run(t, env, "(symbol? 'x)"))
	assert.Equal(t, value.Bool(true), run(t, env, `(keyword? :x)`))
	assert.Equal(t, value.Bool(true), run(t, env, `(string? "x")`))
}

func TestStrAndPrStr(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, value.Str("ab"), run(t, env, `(str "a" "b")`))
	assert.Equal(t, value.Str(`"a" "b"`), run(t, env, `(pr-str "a" "b")`))
}

func TestThrowWrapsValue(t *testing.T) {
	env := newEnv(t)
	result := run(t, env, `(try* (throw {:msg "bad"}) (catch* e (get e :msg)))`)
	assert.Equal(t, value.Str("bad"), result)
}

func TestWithMetaAndMeta(t *testing.T) {
	env := newEnv(t)
	run(t, env, "(def! lst (with-meta (list 1 2) {:tag 1}))")
	result := run(t, env, "(meta lst)")
	m, ok := result.(*value.Map)
	require.True(t, ok)
	assert.Equal(t, 1, m.Len())

	original := run(t, env, "(meta (list 1 2))")
	assert.Equal(t, value.NilValue, original)
}
