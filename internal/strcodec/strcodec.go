// Package strcodec implements the escape/unescape codec between source
// string literals and in-memory strings (spec.md §4.2's read_form
// StringLiteral case, and the printer's readable-mode string quoting).
//
// Grounded on original_source's strings.rs: exactly three escapes are
// recognized, \\, \", and \n — no \t, \r, or unicode escapes, matching
// both spec.md and the original implementation this spec was distilled
// from.
package strcodec

import (
	"strings"

	"github.com/go-lisp/golisp/internal/errors"
)

// Decode turns a StringLiteral token's raw body (the text between the
// quotes, still containing backslash escapes) into the string an in-memory
// Value.Str should hold.
func Decode(raw string) (string, error) {
	var sb strings.Builder
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '\\' {
			sb.WriteRune(c)
			continue
		}
		i++
		if i >= len(runes) {
			return "", errors.UnterminatedEscape()
		}
		switch runes[i] {
		case '\\':
			sb.WriteRune('\\')
		case '"':
			sb.WriteRune('"')
		case 'n':
			sb.WriteRune('\n')
		default:
			return "", errors.UnknownEscape(runes[i])
		}
	}
	return sb.String(), nil
}

// Encode is Decode's inverse: given an in-memory string, produce the
// backslash-escaped body of a readable-mode string literal (without the
// surrounding quotes — callers add those).
func Encode(s string) string {
	var sb strings.Builder
	for _, c := range s {
		switch c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
