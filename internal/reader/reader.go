// Package reader turns a token stream into a value tree (spec.md §4.2).
package reader

import (
	"strconv"
	"strings"

	"github.com/go-lisp/golisp/internal/errors"
	"github.com/go-lisp/golisp/internal/lexer"
	"github.com/go-lisp/golisp/internal/strcodec"
	"github.com/go-lisp/golisp/internal/token"
	"github.com/go-lisp/golisp/internal/value"
)

// Reader consumes a token stream and builds Values from it.
type Reader struct {
	tokens []token.Token
	pos    int
}

// New creates a Reader over an already-tokenized stream.
func New(tokens []token.Token) *Reader {
	return &Reader{tokens: tokens}
}

// ReadStr tokenizes input and reads a single top-level form from it.
// Comment-only or empty input returns errors.EmptyInput(), which callers
// (the REPL) treat as "nothing to print" per spec.md §4.2.
func ReadStr(input string) (value.Value, error) {
	toks, err := lexer.Tokenize(input)
	if err != nil {
		return nil, translateLexError(err)
	}
	r := New(toks)
	return r.ReadForm()
}

func translateLexError(err error) error {
	if lexErr, ok := err.(*lexer.Error); ok && lexErr.Kind == "UnbalancedString" {
		return errors.UnbalancedString()
	}
	return err
}

// HasMore reports whether any non-comment tokens remain, for callers (the
// prelude loader) that read a whole file as a sequence of top-level forms
// rather than a single one.
func (r *Reader) HasMore() bool {
	for _, t := range r.tokens[r.pos:] {
		if t.Kind != token.Comment {
			return true
		}
	}
	return false
}

func (r *Reader) peek() (token.Token, bool) {
	if r.pos >= len(r.tokens) {
		return token.Token{}, false
	}
	return r.tokens[r.pos], true
}

func (r *Reader) next() (token.Token, bool) {
	t, ok := r.peek()
	if ok {
		r.pos++
	}
	return t, ok
}

var unaryOpSymbols = map[token.Kind]string{
	token.Quote:         "quote",
	token.Quasiquote:    "quasiquote",
	token.Unquote:       "unquote",
	token.SpliceUnquote: "splice-unquote",
	token.Deref:         "deref",
}

// ReadForm consumes and returns one top-level form.
func (r *Reader) ReadForm() (value.Value, error) {
	t, ok := r.next()
	if !ok {
		return nil, errors.EmptyInput()
	}

	switch t.Kind {
	case token.Comment:
		return r.ReadForm() // comments are skipped; recurse for the next form
	case token.OpenList:
		items, err := r.readSequence(token.CloseList, ")")
		if err != nil {
			return nil, err
		}
		return &value.List{Items: items, Meta: value.NilValue}, nil
	case token.OpenVector:
		items, err := r.readSequence(token.CloseVector, "]")
		if err != nil {
			return nil, err
		}
		return &value.Vector{Items: items, Meta: value.NilValue}, nil
	case token.OpenMap:
		items, err := r.readSequence(token.CloseMap, "}")
		if err != nil {
			return nil, err
		}
		return buildMap(items)
	case token.CloseList:
		return nil, errors.UnexpectedClose(")")
	case token.CloseVector:
		return nil, errors.UnexpectedClose("]")
	case token.CloseMap:
		return nil, errors.UnexpectedClose("}")
	case token.StringLiteral:
		s, err := strcodec.Decode(t.Text)
		if err != nil {
			return nil, err
		}
		return value.Str(s), nil
	case token.WithMeta:
		meta, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		form, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		return value.NewList(value.NewSymbol("with-meta"), form, meta), nil
	case token.Quote, token.Quasiquote, token.Unquote, token.SpliceUnquote, token.Deref:
		operand, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		return value.NewList(value.NewSymbol(unaryOpSymbols[t.Kind]), operand), nil
	case token.PlainChars:
		return readAtom(t.Text)
	default:
		return nil, errors.EmptyInput()
	}
}

// readSequence reads forms (skipping comments) until closeKind is consumed.
func (r *Reader) readSequence(closeKind token.Kind, closerText string) ([]value.Value, error) {
	var items []value.Value
	for {
		t, ok := r.peek()
		if !ok {
			return nil, errors.UnbalancedSequence(closerText)
		}
		if t.Kind == closeKind {
			r.pos++
			return items, nil
		}
		if t.Kind == token.Comment {
			r.pos++
			continue
		}
		form, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		items = append(items, form)
	}
}

// buildMap pairs up items into a Map, requiring even arity and
// String/Keyword keys; duplicate keys are last-writer-wins.
func buildMap(items []value.Value) (value.Value, error) {
	if len(items)%2 != 0 {
		return nil, errors.OddMapArity()
	}
	m := value.NewMap()
	for i := 0; i < len(items); i += 2 {
		key, ok := value.ToHashKey(items[i])
		if !ok {
			return nil, errors.BadMapKey()
		}
		m.Set(key, items[i+1])
	}
	return m, nil
}

// readAtom implements spec.md §4.2's read_atom dispatch on PlainChars text.
func readAtom(s string) (value.Value, error) {
	if s == "" {
		return nil, errors.EmptyInput()
	}

	if looksLikeInt(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errors.ReadIntError(s)
		}
		return value.Int(n), nil
	}

	if strings.HasPrefix(s, ":") {
		return value.Keyword(s[1:]), nil
	}

	switch s {
	case "true":
		return value.Bool(true), nil
	case "false":
		return value.Bool(false), nil
	case "nil":
		return value.NilValue, nil
	}

	return value.NewSymbol(s), nil
}

func looksLikeInt(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i = 1
	}
	if i >= len(s) {
		return false
	}
	return s[i] >= '0' && s[i] <= '9'
}
