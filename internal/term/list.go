package term

// ListFunctor and EmptyListName are the canonical dotted-list encoding:
// []  is Atom(EmptyListName)
// [H|T] is Compound(ListFunctor, H, T)
//
// There is no distinct list type; these helpers just build and
// recognize that shape.
const (
	ListFunctor   = "."
	EmptyListName = "[]"
)

// EmptyList returns the canonical [] atom. Each call returns a fresh
// value (atoms are cheap and immutable, so sharing is not required).
func EmptyList() *Atom { return NewAtom(EmptyListName) }

// IsEmptyList reports whether t is the canonical [] atom.
func IsEmptyList(t Term) bool {
	a, ok := t.(*Atom)
	return ok && a.Name == EmptyListName
}

// Cons builds the list cell [head|tail].
func Cons(head, tail Term) *Compound {
	return NewCompound(ListFunctor, head, tail)
}

// IsCons reports whether t is a list cell, and if so returns its head
// and tail.
func IsCons(t Term) (head, tail Term, ok bool) {
	c, isCompound := t.(*Compound)
	if !isCompound || c.Functor != ListFunctor || len(c.Args) != 2 {
		return nil, nil, false
	}
	return c.Args[0], c.Args[1], true
}

// NewList builds a proper list from a slice of elements, terminated by
// []. NewList() returns [].
func NewList(elems ...Term) Term {
	return NewListWithTail(elems, EmptyList())
}

// NewListWithTail builds a (possibly partial) list with the given
// explicit tail, e.g. for [H|T] patterns where T is a variable.
func NewListWithTail(elems []Term, tail Term) Term {
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}

// IsList reports whether t is a proper list: the empty list, or cons
// cells terminating in the empty list. Partial lists ([H|T] with an
// unbound tail) and improper lists are not proper.
func IsList(t Term) bool {
	for {
		if IsEmptyList(t) {
			return true
		}
		_, tail, ok := IsCons(t)
		if !ok {
			return false
		}
		t = tail
	}
}

// ListLength returns the number of elements of a proper list, or
// ok=false when t is not one.
func ListLength(t Term) (n int, ok bool) {
	for {
		if IsEmptyList(t) {
			return n, true
		}
		_, tail, isCell := IsCons(t)
		if !isCell {
			return 0, false
		}
		n++
		t = tail
	}
}

// ProperListElements walks a term that is not yet dereferenced through
// any environment (it must already be fully ground/structural) and
// returns its elements if it is a proper, nil-terminated list. Engine
// code that must walk through variable bindings should deref each cell
// itself and not call this directly on terms that may still contain
// unbound variables pointing elsewhere; internal/pp's formatList walks
// a list that way, dereferencing each cell through the environment.
func ProperListElements(t Term) ([]Term, bool) {
	var elems []Term
	cur := t
	for {
		if IsEmptyList(cur) {
			return elems, true
		}
		head, tail, ok := IsCons(cur)
		if !ok {
			return nil, false
		}
		elems = append(elems, head)
		cur = tail
	}
}

func listString(c *Compound) string {
	s := "["
	first := true
	cur := Term(c)
	for {
		head, tail, ok := IsCons(cur)
		if !ok {
			break
		}
		if !first {
			s += ", "
		}
		first = false
		s += head.String()
		cur = tail
	}
	if IsEmptyList(cur) {
		return s + "]"
	}
	if !first {
		s += "|"
	}
	return s + cur.String() + "]"
}
