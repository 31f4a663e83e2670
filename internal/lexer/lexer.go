// Package lexer implements the tokenizer: source text in, an ordered token
// stream out. It recognizes the token kinds described in spec.md §4.1 with a
// greedy, top-to-bottom match at each input position.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/go-lisp/golisp/internal/token"
	"golang.org/x/text/unicode/norm"
)

// Lexer scans UTF-8 source text into tokens one rune at a time, like the
// teacher's DWScript lexer. Positions are byte offsets into the
// NFC-normalized input.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
}

// Error is returned when the tokenizer cannot make progress at the current
// position, per spec.md §4.1's failure cases.
type Error struct {
	Kind string // UnbalancedString, NoCapture
	At   int    // byte offset into the normalized input
}

func (e *Error) Error() string {
	switch e.Kind {
	case "UnbalancedString":
		return "unbalanced string literal"
	default:
		return "cannot tokenize input at position"
	}
}

// New creates a Lexer for input, normalizing it to Unicode NFC first so that
// visually-identical source text compares and tokenizes identically
// regardless of the combining-mark sequence an editor produced it with.
func New(input string) *Lexer {
	l := &Lexer{input: norm.NFC.String(input)}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, width := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += width
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == ','
}

func isSpecial(ch rune) bool {
	switch ch {
	case '[', ']', '{', '}', '(', ')', '\'', '`', '~', '^', '@', '"', ';':
		return true
	}
	return false
}

// Tokenize consumes the whole input and returns its token stream.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Next scans and returns the next token, or a token.EOF token once the
// input is exhausted.
func (l *Lexer) Next() (token.Token, error) {
	for isWhitespace(l.ch) {
		l.readChar()
	}

	if l.ch == 0 {
		return token.Token{Kind: token.EOF}, nil
	}

	switch l.ch {
	case '~':
		if l.peekChar() == '@' {
			l.readChar()
			l.readChar()
			return token.Token{Kind: token.SpliceUnquote}, nil
		}
		l.readChar()
		return token.Token{Kind: token.Unquote}, nil
	case '[':
		l.readChar()
		return token.Token{Kind: token.OpenVector}, nil
	case ']':
		l.readChar()
		return token.Token{Kind: token.CloseVector}, nil
	case '{':
		l.readChar()
		return token.Token{Kind: token.OpenMap}, nil
	case '}':
		l.readChar()
		return token.Token{Kind: token.CloseMap}, nil
	case '(':
		l.readChar()
		return token.Token{Kind: token.OpenList}, nil
	case ')':
		l.readChar()
		return token.Token{Kind: token.CloseList}, nil
	case '\'':
		l.readChar()
		return token.Token{Kind: token.Quote}, nil
	case '`':
		l.readChar()
		return token.Token{Kind: token.Quasiquote}, nil
	case '^':
		l.readChar()
		return token.Token{Kind: token.WithMeta}, nil
	case '@':
		l.readChar()
		return token.Token{Kind: token.Deref}, nil
	case '"':
		return l.readStringLiteral()
	case ';':
		return l.readComment(), nil
	}

	return l.readPlainChars(), nil
}

func (l *Lexer) readStringLiteral() (token.Token, error) {
	start := l.position
	l.readChar() // consume opening quote
	var sb strings.Builder
	for {
		if l.ch == 0 {
			return token.Token{}, &Error{Kind: "UnbalancedString", At: start}
		}
		if l.ch == '\\' {
			sb.WriteRune(l.ch)
			l.readChar()
			if l.ch == 0 {
				return token.Token{}, &Error{Kind: "UnbalancedString", At: start}
			}
			sb.WriteRune(l.ch)
			l.readChar()
			continue
		}
		if l.ch == '"' {
			l.readChar() // consume closing quote
			return token.Token{Kind: token.StringLiteral, Text: sb.String()}, nil
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
}

func (l *Lexer) readComment() token.Token {
	l.readChar() // consume ';'
	var sb strings.Builder
	for l.ch != '\n' && l.ch != 0 {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return token.Token{Kind: token.Comment, Text: sb.String()}
}

func (l *Lexer) readPlainChars() token.Token {
	var sb strings.Builder
	for l.ch != 0 && !isWhitespace(l.ch) && !isSpecial(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return token.Token{Kind: token.PlainChars, Text: sb.String()}
}
