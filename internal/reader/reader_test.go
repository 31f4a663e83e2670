package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lisp/golisp/internal/reader"
	"github.com/go-lisp/golisp/internal/value"
)

func TestReadIntAndSymbol(t *testing.T) {
	v, err := reader.ReadStr("42")
	require.NoError(t, err)
	assert.Equal(t, value.Int(42), v)

	v, err = reader.ReadStr("foo")
	require.NoError(t, err)
	assert.Equal(t, value.NewSymbol("foo"), v)
}

func TestReadNegativeIntVsSymbol(t *testing.T) {
	v, err := reader.ReadStr("-5")
	require.NoError(t, err)
	assert.Equal(t, value.Int(-5), v)

	v, err = reader.ReadStr("-foo")
	require.NoError(t, err)
	assert.Equal(t, value.NewSymbol("-foo"), v)
}

func TestReadList(t *testing.T) {
	v, err := reader.ReadStr("(1 2 3)")
	require.NoError(t, err)
	lst, ok := v.(*value.List)
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(1), value.Int(2), value.Int(3)}, lst.Items)
}

func TestReadVectorAndMap(t *testing.T) {
	v, err := reader.ReadStr("[1 2]")
	require.NoError(t, err)
	_, ok := v.(*value.Vector)
	assert.True(t, ok)

	v, err = reader.ReadStr(`{"a" 1 :b 2}`)
	require.NoError(t, err)
	m, ok := v.(*value.Map)
	require.True(t, ok)
	assert.Equal(t, 2, m.Len())
}

func TestReadUnaryOps(t *testing.T) {
	v, err := reader.ReadStr("'x")
	require.NoError(t, err)
	lst, ok := v.(*value.List)
	require.True(t, ok)
	require.Len(t, lst.Items, 2)
	assert.Equal(t, value.NewSymbol("quote"), lst.Items[0])
}

func TestReadWithMeta(t *testing.T) {
	v, err := reader.ReadStr("^{:a 1} [1 2]")
	require.NoError(t, err)
	lst, ok := v.(*value.List)
	require.True(t, ok)
	assert.Equal(t, value.NewSymbol("with-meta"), lst.Items[0])
}

func TestReadUnbalancedSequence(t *testing.T) {
	_, err := reader.ReadStr("(1 2")
	require.Error(t, err)
}

func TestReadOddMapArity(t *testing.T) {
	_, err := reader.ReadStr(`{"a" 1 "b"}`)
	require.Error(t, err)
}

func TestReadEmptyInput(t *testing.T) {
	_, err := reader.ReadStr("   ")
	require.Error(t, err)
}
