package value

import (
	"fmt"

	"github.com/go-lisp/golisp/internal/errors"
)

// arityKind distinguishes the shapes of arity spec.md §4.5 requires.
type arityKind int

const (
	arityExact arityKind = iota
	arityAtLeast
	arityBetween
	arityOdd
	arityEven
)

// Arity describes how many arguments a Primitive or Closure accepts. The
// evaluator checks it once, centrally, before dispatch (spec.md §4.5),
// grounded on original_source's call_primitive, which validates arity
// before invoking the function pointer rather than each primitive
// re-checking its own argument count.
type Arity struct {
	kind   arityKind
	lo, hi int
}

func Exactly(n int) Arity         { return Arity{kind: arityExact, lo: n} }
func AtLeast(n int) Arity         { return Arity{kind: arityAtLeast, lo: n} }
func Between(lo, hi int) Arity    { return Arity{kind: arityBetween, lo: lo, hi: hi} }
func Odd() Arity                  { return Arity{kind: arityOdd} }
func Even() Arity                 { return Arity{kind: arityEven} }

// Contains reports whether got argument count satisfies the arity.
func (a Arity) Contains(got int) bool {
	switch a.kind {
	case arityExact:
		return got == a.lo
	case arityAtLeast:
		return got >= a.lo
	case arityBetween:
		return got >= a.lo && got <= a.hi
	case arityOdd:
		return got%2 == 1
	case arityEven:
		return got%2 == 0
	default:
		return false
	}
}

func (a Arity) String() string {
	switch a.kind {
	case arityExact:
		return fmt.Sprintf("exactly %d", a.lo)
	case arityAtLeast:
		return fmt.Sprintf("at least %d", a.lo)
	case arityBetween:
		return fmt.Sprintf("between %d and %d", a.lo, a.hi)
	case arityOdd:
		return "an odd number of"
	case arityEven:
		return "an even number of"
	default:
		return "?"
	}
}

// Validate checks got against the arity, returning a BadArgCount error
// named after name if it doesn't match.
func (a Arity) Validate(got int, name string) error {
	if a.Contains(got) {
		return nil
	}
	return errors.BadArgCount(name, a.String(), got)
}
