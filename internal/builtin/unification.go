package builtin

import (
	"github.com/go-prolog/engine/internal/env"
	"github.com/go-prolog/engine/internal/term"
	"github.com/go-prolog/engine/internal/trail"
	"github.com/go-prolog/engine/internal/unify"
)

// =/2 unifies its two arguments directly in e, recording every binding
// it makes on tr. The resolver never unwinds that trail: it backtracks
// by discarding the cloned branch environment e belongs to.
func builtinUnify(args []term.Term, eng EngineHandle, e *env.Environment, tr *trail.Trail) []*env.Environment {
	if unify.Unify(args[0], args[1], e, tr, eng.OccursCheck()) {
		return []*env.Environment{e}
	}
	return nil
}

// \=/2 attempts the same unification in a throwaway fashion: it binds
// directly into e using a fresh trail of its own, then immediately
// unwinds that trail regardless of outcome, so e is left exactly as it
// was found. It succeeds — yielding the now-restored e — iff the
// attempt failed.
func builtinNotUnifiable(args []term.Term, eng EngineHandle, e *env.Environment, _ *trail.Trail) []*env.Environment {
	scratch := trail.New()
	ok := unify.Unify(args[0], args[1], e, scratch, eng.OccursCheck())
	scratch.Unwind(e)
	if ok {
		return nil
	}
	return []*env.Environment{e}
}

// RegisterUnification adds =/2 and \=/2 to r.
func RegisterUnification(r *Registry) {
	r.Register("=", 2, builtinUnify, true, false, "unify two terms")
	r.Register("\\=", 2, builtinNotUnifiable, true, false, "succeed iff the two terms do not unify")
}
