package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lisp/golisp/internal/lexer"
	"github.com/go-lisp/golisp/internal/token"
)

func TestTokenizeBasicForms(t *testing.T) {
	toks, err := lexer.Tokenize(`(+ 1 2)`)
	require.NoError(t, err)

	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{
		token.OpenList,
		token.PlainChars,
		token.PlainChars,
		token.PlainChars,
		token.CloseList,
	}, kinds)
}

func TestTokenizeUnaryOps(t *testing.T) {
	cases := map[string]token.Kind{
		"'a":   token.Quote,
		"`a":   token.Quasiquote,
		"~a":   token.Unquote,
		"~@a":  token.SpliceUnquote,
		"@a":   token.Deref,
		"^a b": token.WithMeta,
	}
	for src, want := range cases {
		toks, err := lexer.Tokenize(src)
		require.NoError(t, err)
		require.NotEmpty(t, toks)
		assert.Equal(t, want, toks[0].Kind, "source %q", src)
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := lexer.Tokenize(`"hello \"world\""`)
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.StringLiteral, toks[0].Kind)
}

func TestTokenizeUnbalancedString(t *testing.T) {
	_, err := lexer.Tokenize(`"unterminated`)
	require.Error(t, err)
}

func TestTokenizeComment(t *testing.T) {
	toks, err := lexer.Tokenize("1 ; a comment\n2")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.Comment, toks[1].Kind)
	assert.Equal(t, " a comment", toks[1].Text)
}
