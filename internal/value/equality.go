package value

// Equal implements spec.md §3's equality rules: recursive structural
// equality; List equals Vector element-wise; Map equality is by key-set
// and pointwise value equality; Atom equality is by identity of the
// underlying cell. Metadata never participates.
func Equal(a, b Value) bool {
	aSeq, aIsSeq := asSequence(a)
	bSeq, bIsSeq := asSequence(b)
	if aIsSeq && bIsSeq {
		return equalSequences(aSeq, bSeq)
	}

	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Keyword:
		bv, ok := b.(Keyword)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av.Name == bv.Name
	case *Map:
		bv, ok := b.(*Map)
		return ok && equalMaps(av, bv)
	case *Atom:
		bv, ok := b.(*Atom)
		return ok && av == bv
	default:
		return false
	}
}

func asSequence(v Value) ([]Value, bool) {
	switch vv := v.(type) {
	case *List:
		return vv.Items, true
	case *Vector:
		return vv.Items, true
	default:
		return nil, false
	}
}

func equalSequences(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalMaps(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.Keys() {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

// Truthy implements spec.md §3's truthiness rule: only Nil and Bool false
// are false; every other value, including zero and the empty list, is true.
func Truthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(vv)
	default:
		return true
	}
}
