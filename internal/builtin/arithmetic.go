package builtin

import (
	"github.com/go-prolog/engine/internal/arith"
	"github.com/go-prolog/engine/internal/env"
	"github.com/go-prolog/engine/internal/term"
	"github.com/go-prolog/engine/internal/trail"
	"github.com/go-prolog/engine/internal/unify"
)

// is/2 evaluates its right-hand side and unifies the result with the
// left-hand side. An evaluation error fails the branch silently — it
// never surfaces as a Go error that unwinds the caller.
func builtinIs(args []term.Term, eng EngineHandle, e *env.Environment, tr *trail.Trail) []*env.Environment {
	result, err := arith.Evaluate(args[1], e)
	if err != nil {
		return nil
	}
	if unify.Unify(args[0], result, e, tr, eng.OccursCheck()) {
		return []*env.Environment{e}
	}
	return nil
}

func arithCompare(cmp func(lhs, rhs *term.Number) bool) Impl {
	return func(args []term.Term, _ EngineHandle, e *env.Environment, _ *trail.Trail) []*env.Environment {
		lhs, err := arith.Evaluate(args[0], e)
		if err != nil {
			return nil
		}
		rhs, err := arith.Evaluate(args[1], e)
		if err != nil {
			return nil
		}
		if cmp(lhs, rhs) {
			return []*env.Environment{e}
		}
		return nil
	}
}

// RegisterArithmetic adds is/2 and the arithmetic comparison
// predicates.
func RegisterArithmetic(r *Registry) {
	r.Register("is", 2, builtinIs, false, false, "evaluate the right-hand side, unify with the left")

	r.Register("=:=", 2, arithCompare(func(a, b *term.Number) bool { return a.AsFloat() == b.AsFloat() }),
		true, false, "arithmetic equality")
	r.Register("=\\=", 2, arithCompare(func(a, b *term.Number) bool { return a.AsFloat() != b.AsFloat() }),
		true, false, "arithmetic inequality")
	r.Register("<", 2, arithCompare(func(a, b *term.Number) bool { return a.AsFloat() < b.AsFloat() }),
		true, false, "arithmetic less-than")
	r.Register("=<", 2, arithCompare(func(a, b *term.Number) bool { return a.AsFloat() <= b.AsFloat() }),
		true, false, "arithmetic less-than-or-equal")
	r.Register(">", 2, arithCompare(func(a, b *term.Number) bool { return a.AsFloat() > b.AsFloat() }),
		true, false, "arithmetic greater-than")
	r.Register(">=", 2, arithCompare(func(a, b *term.Number) bool { return a.AsFloat() >= b.AsFloat() }),
		true, false, "arithmetic greater-than-or-equal")
}
