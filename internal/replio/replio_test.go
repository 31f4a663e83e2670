package replio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/go-lisp/golisp/internal/builtins"
	"github.com/go-lisp/golisp/internal/prelude"
	"github.com/go-lisp/golisp/internal/replio"
)

// TestReplTranscript drives a short scripted session through the REPL
// driver and snapshots the combined stdout transcript, the same style as
// the teacher's snapshot-based fixture tests.
func TestReplTranscript(t *testing.T) {
	env, _ := builtins.Install()
	require.NoError(t, prelude.Load(env))

	in := strings.NewReader("(+ 1 2)\n(def! x 10)\n(* x x)\n")
	var out bytes.Buffer

	r := replio.New(env)
	r.In = in
	r.Out = &out
	r.ErrOut = &out
	r.NoColor = true
	r.NoHistory = true
	require.NoError(t, r.Run())

	snaps.MatchSnapshot(t, "repl_transcript", out.String())
}

func TestReplPrintsErrorsInline(t *testing.T) {
	env, _ := builtins.Install()
	require.NoError(t, prelude.Load(env))

	in := strings.NewReader("(undefined-symbol)\n")
	var out bytes.Buffer

	r := replio.New(env)
	r.In = in
	r.Out = &out
	r.ErrOut = &out
	r.NoColor = true
	r.NoHistory = true
	require.NoError(t, r.Run())

	require.Contains(t, out.String(), "not found")
}
