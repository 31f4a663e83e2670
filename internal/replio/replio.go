// Package replio drives the interactive read-eval-print loop described in
// spec.md §6/§9: a `user> ` prompt, a history file under the user's data
// directory, and ANSI-colored error output gated by a --no-color flag.
// Grounded on the teacher's cmd/dwscript/cmd package's pattern of small,
// focused command files around a shared root Command, generalized here
// into a driver type so it can be invoked from both `golisp` (bare) and
// `golisp repl`.
package replio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/mattn/go-runewidth"

	"github.com/go-lisp/golisp/internal/errors"
	"github.com/go-lisp/golisp/internal/eval"
	"github.com/go-lisp/golisp/internal/printer"
	"github.com/go-lisp/golisp/internal/reader"
	"github.com/go-lisp/golisp/internal/value"
)

const (
	prompt         = "user> "
	historyRelPath = "golisp/.mal_history"
	maxEchoWidth   = 120
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// REPL owns the streams and options of one interactive session.
type REPL struct {
	Env       *value.Env
	In        io.Reader
	Out       io.Writer
	ErrOut    io.Writer
	NoColor   bool
	NoHistory bool
	history   *os.File
}

// New builds a REPL bound to env, reading from stdin and writing to
// stdout/stderr.
func New(env *value.Env) *REPL {
	return &REPL{Env: env, In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}
}

// Run drives the loop until the input is exhausted (EOF, Ctrl-D).
// It never returns an error for ordinary EOF; read errors (malformed forms)
// are printed and looped past, matching spec.md's "errors propagate out of
// the evaluator unless caught" only applying within one evaluation, not
// across REPL iterations.
func (r *REPL) Run() error {
	r.openHistory()
	defer r.closeHistory()

	scanner := bufio.NewScanner(r.In)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(r.Out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.Out)
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		r.appendHistory(line)
		r.evalPrint(line)
	}
}

// evalPrint is what Run calls per non-empty line: read one
// form from text, evaluate it in Env, and print either its readable
// rendering or a (possibly colored) error message.
func (r *REPL) evalPrint(text string) {
	form, err := reader.ReadStr(text)
	if err != nil {
		if isEmptyInput(err) {
			return
		}
		r.printError(err)
		return
	}
	result, err := eval.Eval(form, r.Env)
	if err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintln(r.Out, truncate(printer.PrStr(result, true)))
}

func isEmptyInput(err error) bool {
	ie, ok := err.(*errors.InterpreterError)
	return ok && ie.Kind == errors.KindEmptyInput
}

func (r *REPL) printError(err error) {
	msg := err.Error()
	if r.NoColor {
		fmt.Fprintln(r.ErrOut, msg)
		return
	}
	fmt.Fprintln(r.ErrOut, ansiRed+msg+ansiReset)
}

// truncate keeps long single-line echoes from overflowing a narrow terminal,
// measuring display columns (not bytes) via go-runewidth so wide CJK
// characters in printed strings still line up.
func truncate(s string) string {
	if runewidth.StringWidth(s) <= maxEchoWidth {
		return s
	}
	return runewidth.Truncate(s, maxEchoWidth, "...")
}

func (r *REPL) openHistory() {
	if r.NoHistory {
		return
	}
	path, err := xdg.DataFile(historyRelPath)
	if err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	r.history = f
}

func (r *REPL) appendHistory(line string) {
	if r.history == nil {
		return
	}
	fmt.Fprintln(r.history, line)
}

func (r *REPL) closeHistory() {
	if r.history != nil {
		r.history.Close()
	}
}
