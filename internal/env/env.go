// Package env implements the binding environment: the mapping from
// logic-variable id to term that the unifier extends and the resolver
// clones per proof branch.
//
// An Environment is a small map behind a Clone() method, so branching
// is cheap: the resolver clones the current environment once per
// candidate clause and lets failed branches simply be discarded, no
// explicit unwind required. A second, lower-level entry point
// (Bind/Unbind, used by internal/trail) mutates a single Environment
// in place so that \=/2's trail-and-unwind semantics work against a
// throwaway environment without paying for a full clone on every
// unification step.
package env

import "github.com/go-prolog/engine/internal/term"

// Environment maps variable id to the term it is bound to. No id ever
// maps to an unbound variable with its own id (no self-loop) — Bind
// enforces this.
type Environment struct {
	bindings map[int64]term.Term
}

// New returns an empty environment.
func New() *Environment {
	return &Environment{bindings: make(map[int64]term.Term)}
}

// Clone returns an independent copy; mutating the copy never affects
// the original. This is the operation the resolver uses to give each
// candidate clause its own branch-local environment.
func (e *Environment) Clone() *Environment {
	cp := make(map[int64]term.Term, len(e.bindings))
	for k, v := range e.bindings {
		cp[k] = v
	}
	return &Environment{bindings: cp}
}

// Lookup returns the term bound to the variable id, or (nil, false) if
// that variable is unbound.
func (e *Environment) Lookup(id int64) (term.Term, bool) {
	t, ok := e.bindings[id]
	return t, ok
}

// Bind records that v is now bound to t. Binding a variable to itself
// is a no-op (it would otherwise create a self-loop). Callers that
// need backtracking should also push v.ID onto a Trail; Bind itself
// knows nothing about trails.
func (e *Environment) Bind(v *term.Variable, t term.Term) {
	if other, ok := t.(*term.Variable); ok && other.ID == v.ID {
		return
	}
	e.bindings[v.ID] = t
}

// Unbind removes the binding for the given variable id, restoring it
// to unbound. Used by Trail.Unwind; not normally called directly.
func (e *Environment) Unbind(id int64) {
	delete(e.bindings, id)
}

// Size returns the number of live bindings.
func (e *Environment) Size() int {
	return len(e.bindings)
}

// Deref follows a chain of variable bindings to the current
// representative: either a non-variable term, or an unbound variable.
// It terminates because bindings form a DAG when produced by
// occurs-checked unification; without occurs-check a cyclic binding
// can exist, and Deref on the variable chain itself still terminates
// (a variable bound into a cycle resolves to the compound that closes
// it), but structural walks over such a term are the caller's risk.
func (e *Environment) Deref(t term.Term) term.Term {
	for {
		v, ok := t.(*term.Variable)
		if !ok {
			return t
		}
		bound, ok := e.Lookup(v.ID)
		if !ok {
			return t
		}
		t = bound
	}
}

// Apply produces a fully-substituted copy of t: every variable
// reachable from t is replaced by its dereferenced value, recursively.
// A visited set guards against the cyclic structures occurs-check-off
// unification can create: once a variable id has been expanded on the
// current path, Apply returns that variable itself rather than
// recursing forever.
func (e *Environment) Apply(t term.Term) term.Term {
	return e.applyVisited(t, make(map[int64]bool))
}

func (e *Environment) applyVisited(t term.Term, visited map[int64]bool) term.Term {
	// Follow the variable chain by hand, recording each bound id on
	// the way, so a chain that reenters itself stops at the variable
	// that closes the cycle. The ids are path-scoped: siblings in a
	// shared (acyclic) structure still substitute fully.
	var chain []int64
	for {
		v, isVar := t.(*term.Variable)
		if !isVar {
			break
		}
		if visited[v.ID] {
			return v
		}
		bound, ok := e.Lookup(v.ID)
		if !ok {
			return v
		}
		visited[v.ID] = true
		chain = append(chain, v.ID)
		t = bound
	}
	defer func() {
		for _, id := range chain {
			delete(visited, id)
		}
	}()

	c, isCompound := t.(*term.Compound)
	if !isCompound {
		return t
	}
	args := make([]term.Term, len(c.Args))
	for i, a := range c.Args {
		args[i] = e.applyVisited(a, visited)
	}
	return term.NewCompound(c.Functor, args...)
}
