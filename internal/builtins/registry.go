// Package builtins implements the primitives library of spec.md §4.5: the
// built-in functions registered by name into the root environment.
//
// Grounded on the teacher's internal/interp/builtins.Registry (a
// case-insensitive, categorized function table with Register/Lookup), this
// package keeps a parallel Registry purely for introspection (the CLI's
// `env` subcommand lists bound names by category); the language itself
// only ever sees the plain *value.Primitive values bound into the root
// Env by Install.
package builtins

import (
	"sort"

	"github.com/go-lisp/golisp/internal/value"
)

// Category groups built-ins for the introspection command, following the
// teacher's CategoryMath/CategoryString-style grouping.
type Category string

const (
	CategoryArithmetic Category = "arithmetic"
	CategorySequence   Category = "sequence"
	CategoryMap        Category = "map"
	CategoryAtom       Category = "atom"
	CategoryPredicate  Category = "predicate"
	CategoryStringIO   Category = "string-io"
	CategoryControl    Category = "control"
	CategorySystem     Category = "system"
	CategoryMetadata   Category = "metadata"
)

// Registry records which category each registered primitive belongs to.
type Registry struct {
	categories map[string]Category
	order      []string
}

func newRegistry() *Registry {
	return &Registry{categories: make(map[string]Category)}
}

func (r *Registry) record(name string, cat Category) {
	if _, exists := r.categories[name]; !exists {
		r.order = append(r.order, name)
	}
	r.categories[name] = cat
}

// Names returns every registered primitive name, sorted for deterministic
// output (the CLI's `env` command prints them in this order).
func (r *Registry) Names() []string {
	out := append([]string(nil), r.order...)
	sort.Strings(out)
	return out
}

// Category returns the category a name was registered under.
func (r *Registry) Category(name string) (Category, bool) {
	c, ok := r.categories[name]
	return c, ok
}

// def binds a primitive into env and records it in the registry.
func def(env *value.Env, reg *Registry, cat Category, name string, arity value.Arity, fn func([]value.Value) (value.Value, error)) {
	env.Set(name, &value.Primitive{Name: name, Arity: arity, Fn: fn, Meta: value.NilValue})
	reg.record(name, cat)
}
