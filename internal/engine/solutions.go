package engine

import (
	"context"

	"github.com/go-prolog/engine/internal/env"
	"github.com/go-prolog/engine/internal/term"
)

// Solution is one satisfying substitution: a snapshot of the
// environment taken at the moment the goal list emptied. Applying it
// to the original query's variables yields the answer bindings.
type Solution struct {
	e *env.Environment
}

// Get returns the term v is bound to in this solution, fully
// substituted. ok is false when v is unbound.
func (s *Solution) Get(v *term.Variable) (t term.Term, ok bool) {
	d := s.e.Deref(v)
	if dv, isVar := d.(*term.Variable); isVar && dv.ID == v.ID {
		return nil, false
	}
	return s.e.Apply(d), true
}

// Apply substitutes this solution's bindings throughout t.
func (s *Solution) Apply(t term.Term) term.Term {
	return s.e.Apply(t)
}

// Env exposes the underlying environment snapshot, e.g. for a
// pretty-printer that dereferences as it walks.
func (s *Solution) Env() *env.Environment { return s.e }

// Solutions is the pull-based stream Query returns. The search runs in
// its own goroutine but is strictly demand-driven: the goroutine does
// not take a single resolution step until the first Next, and after
// delivering a solution it parks until the following Next. An infinite
// search therefore costs nothing beyond what the consumer asks for.
//
// A consumer that stops early must call Stop (or cancel the query
// context) to release the producer goroutine.
type Solutions struct {
	demand  chan struct{}
	results chan *Solution
	cancel  context.CancelFunc
}

func newSolutions(cancel context.CancelFunc) *Solutions {
	return &Solutions{
		demand:  make(chan struct{}, 1),
		results: make(chan *Solution),
		cancel:  cancel,
	}
}

// Next blocks until the search finds the next solution, and returns
// it. ok is false once the search space is exhausted or the stream was
// stopped; after that every further call returns false immediately.
func (s *Solutions) Next() (sol *Solution, ok bool) {
	select {
	case s.demand <- struct{}{}:
	default:
		// A demand is already pending; the producer will see it.
	}
	sol, ok = <-s.results
	return sol, ok
}

// Stop abandons the search. Safe to call more than once, and safe to
// call after the stream is already exhausted.
func (s *Solutions) Stop() {
	s.cancel()
}

// await parks the producer until the consumer demands a solution.
// false means the consumer cancelled instead.
func (s *Solutions) await(ctx context.Context) bool {
	select {
	case <-s.demand:
		return true
	case <-ctx.Done():
		return false
	}
}

// deliver hands sol to the blocked Next, then parks until the next
// demand so the search cannot run ahead of the consumer. The false
// return means the consumer is gone and the search should unwind.
func (s *Solutions) deliver(ctx context.Context, sol *Solution) bool {
	select {
	case s.results <- sol:
	case <-ctx.Done():
		return false
	}
	return s.await(ctx)
}

// close marks the stream exhausted, waking any blocked Next.
func (s *Solutions) close() {
	close(s.results)
}
