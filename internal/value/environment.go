package value

import (
	"weak"

	"github.com/go-lisp/golisp/internal/errors"
)

// Env is a frame of symbol-to-value bindings with an optional parent,
// grounded on the teacher's internal/interp/runtime.Environment: Get walks
// the parent chain, Set touches only the innermost frame used for
// assignment, and a separate Define-like operation (here, Set is also used
// for first-binding since this language has no declare/assign split).
//
// Multiple closures may share the same parent Env, so Env uses pointer
// (shared) semantics throughout: never copy an Env by value.
type Env struct {
	store  map[string]Value
	parent *Env
}

// NewRootEnv creates a new root-level environment with no parent.
func NewRootEnv() *Env {
	return &Env{store: make(map[string]Value)}
}

// Spawn creates a new empty child of parent.
func Spawn(parent *Env) *Env {
	return &Env{store: make(map[string]Value), parent: parent}
}

// Set inserts name->value into this frame only (spec.md §4.4: "assignment
// writes to the innermost frame"). It returns the value that was
// previously bound in this same frame, if any.
func (e *Env) Set(name string, val Value) (prior Value, hadPrior bool) {
	prior, hadPrior = e.store[name]
	e.store[name] = val
	return prior, hadPrior
}

// Get walks the parent chain looking for name.
func (e *Env) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Fetch is Get's failure-wrapping counterpart, returning an
// errors.UnknownSymbol error instead of a bare bool.
func (e *Env) Fetch(name string) (Value, error) {
	if v, ok := e.Get(name); ok {
		return v, nil
	}
	return nil, errors.UnknownSymbol(name)
}

// Parent returns the enclosing environment, or nil for the root.
func (e *Env) Parent() *Env { return e.parent }

// EvalBridge exposes a host-provided `eval` as a callable language value.
// It holds only a weak reference to the root environment (via the standard
// library's weak package, added in Go 1.24) so that root-env-to-closure-to-
// root-env reference cycles through the bridge don't keep the root alive
// past the point nothing else references it — the one intentional cycle
// break called out in spec.md §9.
type EvalBridge struct {
	root weak.Pointer[Env]
}

// NewEvalBridge creates a bridge holding a weak reference to root.
func NewEvalBridge(root *Env) *EvalBridge {
	return &EvalBridge{root: weak.Make(root)}
}

func (b *EvalBridge) Kind() Kind     { return KindEvalBridge }
func (b *EvalBridge) String() string { return "#<eval>" }

// Root resolves the weak reference, failing if the root environment has
// already been collected.
func (b *EvalBridge) Root() (*Env, bool) {
	root := b.root.Value()
	if root == nil {
		return nil, false
	}
	return root, true
}
