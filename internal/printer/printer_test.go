package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lisp/golisp/internal/printer"
	"github.com/go-lisp/golisp/internal/reader"
)

// TestReadPrintRoundTrip checks that readable printing is reader's inverse
// for forms whose canonical text is stable (spec.md §4.6's contract).
func TestReadPrintRoundTrip(t *testing.T) {
	cases := []string{
		"42",
		"-7",
		"nil",
		"true",
		"false",
		`"hello world"`,
		":keyword",
		"sym",
		"(1 2 3)",
		"[1 2 3]",
	}
	for _, src := range cases {
		v, err := reader.ReadStr(src)
		require.NoError(t, err, src)
		assert.Equal(t, src, printer.PrStr(v, true), src)
	}
}

func TestDirectModeStringsAreUnescaped(t *testing.T) {
	v, err := reader.ReadStr(`"a\nb"`)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", printer.PrStr(v, false))
	assert.Equal(t, `"a\nb"`, printer.PrStr(v, true))
}

func TestMapPrintingPreservesInsertionOrder(t *testing.T) {
	v, err := reader.ReadStr(`{:a 1 :b 2 :c 3}`)
	require.NoError(t, err)
	assert.Equal(t, "{:a 1 :b 2 :c 3}", printer.PrStr(v, true))
}
