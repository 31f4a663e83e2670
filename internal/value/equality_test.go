package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-lisp/golisp/internal/value"
)

func TestEqualAcrossListAndVector(t *testing.T) {
	lst := value.NewList(value.Int(1), value.Int(2))
	vec := value.NewVector(value.Int(1), value.Int(2))
	assert.True(t, value.Equal(lst, vec), "lists and vectors with equal elements compare equal")
}

func TestEqualIgnoresMetadata(t *testing.T) {
	a := value.NewList(value.Int(1))
	b := &value.List{Items: []value.Value{value.Int(1)}, Meta: value.Str("tag")}
	assert.True(t, value.Equal(a, b))
}

func TestTruthy(t *testing.T) {
	assert.False(t, value.Truthy(value.NilValue))
	assert.False(t, value.Truthy(value.Bool(false)))
	assert.True(t, value.Truthy(value.Bool(true)))
	assert.True(t, value.Truthy(value.Int(0)))
	assert.True(t, value.Truthy(value.NewList()))
}

func TestArityValidate(t *testing.T) {
	assert.NoError(t, value.Exactly(2).Validate(2, "f"))
	assert.Error(t, value.Exactly(2).Validate(3, "f"))
	assert.NoError(t, value.AtLeast(1).Validate(5, "f"))
	assert.Error(t, value.AtLeast(1).Validate(0, "f"))
	assert.NoError(t, value.Even().Validate(4, "f"))
	assert.Error(t, value.Even().Validate(3, "f"))
}
