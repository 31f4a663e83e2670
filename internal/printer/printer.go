// Package printer renders Values to text, in the two modes spec.md §4.6
// requires: readable (escaped, quoted strings) and direct (raw strings).
package printer

import (
	"strconv"
	"strings"

	"github.com/go-lisp/golisp/internal/strcodec"
	"github.com/go-lisp/golisp/internal/value"
)

// PrStr renders v in readable mode when readable is true, direct mode
// otherwise. Sequences print with a single space between elements.
func PrStr(v value.Value, readable bool) string {
	var sb strings.Builder
	write(&sb, v, readable)
	return sb.String()
}

func write(sb *strings.Builder, v value.Value, readable bool) {
	switch vv := v.(type) {
	case value.Nil:
		sb.WriteString("nil")
	case value.Bool:
		if vv {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case value.Int:
		sb.WriteString(strconv.FormatInt(int64(vv), 10))
	case value.Str:
		if readable {
			sb.WriteByte('"')
			sb.WriteString(strcodec.Encode(string(vv)))
			sb.WriteByte('"')
		} else {
			sb.WriteString(string(vv))
		}
	case value.Keyword:
		sb.WriteByte(':')
		sb.WriteString(string(vv))
	case value.Symbol:
		sb.WriteString(vv.Name)
	case *value.List:
		writeSeq(sb, '(', vv.Items, ')', readable)
	case *value.Vector:
		writeSeq(sb, '[', vv.Items, ']', readable)
	case *value.Map:
		writeMap(sb, vv, readable)
	case *value.Primitive:
		sb.WriteString("#<function>")
	case *value.Closure:
		if vv.IsMacro {
			sb.WriteString("#<macro>")
		} else {
			sb.WriteString("#<closure>")
		}
	case *value.EvalBridge:
		sb.WriteString("#<eval>")
	case *value.Atom:
		sb.WriteString("(atom ")
		write(sb, vv.Deref(), readable)
		sb.WriteByte(')')
	default:
		sb.WriteString("#<unknown>")
	}
}

func writeSeq(sb *strings.Builder, open byte, items []value.Value, close byte, readable bool) {
	sb.WriteByte(open)
	for i, it := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		write(sb, it, readable)
	}
	sb.WriteByte(close)
}

func writeMap(sb *strings.Builder, m *value.Map, readable bool) {
	sb.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		write(sb, value.FromHashKey(k), readable)
		sb.WriteByte(' ')
		v, _ := m.Get(k)
		write(sb, v, readable)
	}
	sb.WriteByte('}')
}
