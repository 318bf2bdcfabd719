// Package trail implements the reversible binding record: a LIFO
// stack of variable ids, used to unwind an environment back to its
// pre-attempt state.
//
// Most of the engine never needs this — the resolver gives each clause
// candidate its own cloned environment (internal/env.Clone) and simply
// discards a branch that fails, which is cheaper than recording and
// replaying individual binds. The one place genuine trail-and-unwind
// semantics are required is \=/2: it must attempt a unification,
// observe whether it succeeded, and then guarantee the attempt left no
// trace — including on the very environment instances shared by the
// rest of the proof — so it unwinds over a Trail instead of relying on
// clone-and-discard.
package trail

import (
	"github.com/go-prolog/engine/internal/env"
	"github.com/go-prolog/engine/internal/term"
)

// Trail is an ordered sequence of variable ids recording bindings made
// since the trail was created (or since it was last unwound).
type Trail struct {
	ids []int64
}

// New returns an empty trail.
func New() *Trail {
	return &Trail{}
}

// Push records that the variable with the given id was just bound.
func (tr *Trail) Push(id int64) {
	tr.ids = append(tr.ids, id)
}

// Len reports how many bindings are currently recorded.
func (tr *Trail) Len() int {
	return len(tr.ids)
}

// Bind binds v to t in e and records the binding on the trail so it
// can later be undone with Unwind. Binding a variable to itself is a
// no-op in env.Bind, and is likewise not recorded here.
func (tr *Trail) Bind(e *env.Environment, v *term.Variable, t term.Term) {
	if other, ok := t.(*term.Variable); ok && other.ID == v.ID {
		return
	}
	e.Bind(v, t)
	tr.Push(v.ID)
}

// Unwind removes every id on the trail from e, in reverse order of
// binding, and empties the trail. Calling Unwind again on an already-
// empty trail is a no-op.
func (tr *Trail) Unwind(e *env.Environment) {
	for i := len(tr.ids) - 1; i >= 0; i-- {
		e.Unbind(tr.ids[i])
	}
	tr.ids = tr.ids[:0]
}
