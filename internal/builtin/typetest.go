package builtin

import (
	"github.com/go-prolog/engine/internal/env"
	"github.com/go-prolog/engine/internal/term"
	"github.com/go-prolog/engine/internal/trail"
)

func typeTest(pred func(term.Term) bool) Impl {
	return func(args []term.Term, _ EngineHandle, e *env.Environment, _ *trail.Trail) []*env.Environment {
		if pred(e.Deref(args[0])) {
			return []*env.Environment{e}
		}
		return nil
	}
}

// RegisterTypeTests adds the classification predicates: var/1,
// nonvar/1, atom/1, number/1, compound/1.
func RegisterTypeTests(r *Registry) {
	r.Register("var", 1, typeTest(func(t term.Term) bool {
		_, ok := t.(*term.Variable)
		return ok
	}), true, false, "true iff the argument is an unbound variable")

	r.Register("nonvar", 1, typeTest(func(t term.Term) bool {
		_, ok := t.(*term.Variable)
		return !ok
	}), true, false, "true iff the argument is not an unbound variable")

	r.Register("atom", 1, typeTest(func(t term.Term) bool {
		_, ok := t.(*term.Atom)
		return ok
	}), true, false, "true iff the argument is an atom")

	r.Register("number", 1, typeTest(func(t term.Term) bool {
		_, ok := t.(*term.Number)
		return ok
	}), true, false, "true iff the argument is a number")

	r.Register("compound", 1, typeTest(func(t term.Term) bool {
		_, ok := t.(*term.Compound)
		return ok
	}), true, false, "true iff the argument is a compound term")
}
