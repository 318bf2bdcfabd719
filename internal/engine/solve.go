package engine

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/go-prolog/engine/internal/env"
	"github.com/go-prolog/engine/internal/term"
	"github.com/go-prolog/engine/internal/trail"
	"github.com/go-prolog/engine/internal/unify"
)

// Query starts a proof of the conjunction goals and returns the
// pull-based stream of its solutions. The stream is strictly lazy:
// no resolution work happens until the first Solutions.Next, and none
// happens between one Next and the following one.
//
// Cancelling ctx, or calling Stop on the returned stream, abandons the
// search. The knowledge base must not be loaded into while a query is
// running.
func (eng *Engine) Query(ctx context.Context, goals []*term.Compound) *Solutions {
	ctx, cancel := context.WithCancel(ctx)
	s := newSolutions(cancel)
	go func() {
		defer s.close()
		if !s.await(ctx) {
			return
		}
		eng.solve(ctx, goals, env.New(), trail.New(), 0, func(e *env.Environment) bool {
			return s.deliver(ctx, &Solution{e: e})
		})
	}()
	return s
}

// solve is the SLD resolution loop: depth-first, leftmost goal first,
// clauses in the order the index offers them. Each solution — an
// environment snapshot taken when the goal list empties — is passed to
// yield; a false return from yield means the consumer has stopped
// pulling, and is propagated up to abandon the whole search.
func (eng *Engine) solve(ctx context.Context, goals []*term.Compound, e *env.Environment, tr *trail.Trail, depth int, yield func(*env.Environment) bool) bool {
	if ctx.Err() != nil {
		return false
	}
	if len(goals) == 0 {
		return yield(e.Clone())
	}

	goal, rest := goals[0], goals[1:]
	eng.trace(depth, "call", goal, nil)

	// Builtins take priority over any clause with the same indicator.
	if eng.builtins.IsBuiltin(goal.Indicator()) {
		envs, _ := eng.builtins.Call(goal, eng, e, tr)
		for _, next := range envs {
			if !eng.solve(ctx, rest, next, tr, depth+1, yield) {
				return false
			}
		}
		if len(envs) == 0 {
			eng.trace(depth, "fail", goal, nil)
		}
		return true
	}

	var firstArg term.Term
	if len(goal.Args) > 0 {
		firstArg = e.Deref(goal.Args[0])
	}
	candidates := eng.kb.Candidates(goal.Indicator(), firstArg)
	if len(candidates) == 0 {
		eng.trace(depth, "fail", goal, nil)
		return true
	}

	for _, clause := range candidates {
		// Branch-local state: a failed head unification leaves its
		// partial bindings in the clone, which is simply dropped.
		branch := e.Clone()
		branchTrail := trail.New()
		renamed := eng.renameClause(clause)

		if !unify.Unify(goal, renamed.Head, branch, branchTrail, eng.cfg.OccursCheck) {
			continue
		}
		eng.trace(depth, "try", goal, renamed)

		next := make([]*term.Compound, 0, len(renamed.Body)+len(rest))
		next = append(next, renamed.Body...)
		next = append(next, rest...)
		if !eng.solve(ctx, next, branch, branchTrail, depth+1, yield) {
			return false
		}
	}
	return true
}

// renameClause returns a copy of c in which every variable has been
// replaced by a fresh one, so the clause's variables cannot collide
// with any variable already used in the proof. The rename map is local
// to this call: selecting the same clause twice yields two disjoint
// sets of fresh variables.
func (eng *Engine) renameClause(c *term.Clause) *term.Clause {
	renames := make(map[int64]*term.Variable)
	head := eng.renameTerm(c.Head, renames).(*term.Compound)
	if len(c.Body) == 0 {
		return &term.Clause{Head: head}
	}
	body := make([]*term.Compound, len(c.Body))
	for i, g := range c.Body {
		body[i] = eng.renameTerm(g, renames).(*term.Compound)
	}
	return &term.Clause{Head: head, Body: body}
}

func (eng *Engine) renameTerm(t term.Term, renames map[int64]*term.Variable) term.Term {
	switch v := t.(type) {
	case *term.Variable:
		fresh, ok := renames[v.ID]
		if !ok {
			fresh = &term.Variable{ID: eng.freshVarID(), Name: v.Name}
			renames[v.ID] = fresh
		}
		return fresh
	case *term.Compound:
		args := make([]term.Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = eng.renameTerm(a, renames)
		}
		return term.NewCompound(v.Functor, args...)
	default:
		// Atoms and numbers contain no variables.
		return t
	}
}

// trace emits one resolver event when tracing is enabled. Events:
// "call" on goal selection, "try" when a clause head unified, "fail"
// when a goal had no candidates or its builtin produced nothing.
func (eng *Engine) trace(depth int, event string, goal *term.Compound, clause *term.Clause) {
	if eng.cfg.Tracer == nil {
		return
	}
	fields := logrus.Fields{
		"depth": depth,
		"goal":  goal.String(),
	}
	if clause != nil {
		fields["clause"] = clause.Head.String()
	}
	eng.cfg.Tracer.WithFields(fields).Debug(event)
}
