// Package unify implements Robinson unification over the term model in
// internal/term, with an optional occurs-check, against a branch-local
// environment and trail.
package unify

import (
	"github.com/go-prolog/engine/internal/env"
	"github.com/go-prolog/engine/internal/term"
	"github.com/go-prolog/engine/internal/trail"
)

// Unify attempts to make t1 and t2 syntactically identical, extending
// e with zero or more bindings and recording each one on tr. It
// returns true on success. On failure, any partial bindings made
// during the attempt remain in e — the caller is expected to discard
// the branch environment (the normal resolver path, which clones e per
// candidate) rather than unwind; a caller that must keep e around
// regardless of outcome (\=/2) should call tr.Unwind(e) itself.
//
// occursCheck, when true, refuses to bind a variable to a term that
// (after full dereferencing) contains that same variable, so no
// cyclic structure can ever enter the environment.
func Unify(t1, t2 term.Term, e *env.Environment, tr *trail.Trail, occursCheck bool) bool {
	d1 := e.Deref(t1)
	d2 := e.Deref(t2)

	v1, v1IsVar := d1.(*term.Variable)
	v2, v2IsVar := d2.(*term.Variable)

	switch {
	case v1IsVar && v2IsVar:
		if v1.ID == v2.ID {
			return true
		}
		return bindVar(v1, d2, e, tr, occursCheck)

	case v1IsVar:
		return bindVar(v1, d2, e, tr, occursCheck)

	case v2IsVar:
		return bindVar(v2, d1, e, tr, occursCheck)
	}

	switch a1 := d1.(type) {
	case *term.Atom:
		a2, ok := d2.(*term.Atom)
		return ok && a1.Equal(a2)

	case *term.Number:
		n2, ok := d2.(*term.Number)
		return ok && a1.Equal(n2)

	case *term.Compound:
		c2, ok := d2.(*term.Compound)
		if !ok || a1.Functor != c2.Functor || len(a1.Args) != len(c2.Args) {
			return false
		}
		for i := range a1.Args {
			if !Unify(a1.Args[i], c2.Args[i], e, tr, occursCheck) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

// bindVar binds v to t, subject to the occurs-check when enabled.
func bindVar(v *term.Variable, t term.Term, e *env.Environment, tr *trail.Trail, occursCheck bool) bool {
	if occursCheck && occurs(v, t, e) {
		return false
	}
	tr.Bind(e, v, t)
	return true
}

// occurs reports whether v occurs (after dereferencing) anywhere
// inside t.
func occurs(v *term.Variable, t term.Term, e *env.Environment) bool {
	d := e.Deref(t)
	switch x := d.(type) {
	case *term.Variable:
		return x.ID == v.ID
	case *term.Compound:
		for _, a := range x.Args {
			if occurs(v, a, e) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
