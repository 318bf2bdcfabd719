// Package kb implements the clause store: predicate-keyed storage
// with a first-argument index maintained in parallel, so that query
// time is a simple map+slice read.
//
// A predicate bucket is an ordered clause list with rules, not just
// ground facts, and the index is deliberately coarse: first-argument
// indexing exists to narrow candidates, not to provide exact lookup.
package kb

import (
	"sort"

	"github.com/go-prolog/engine/internal/term"
)

// Store is a mapping from (functor, arity) to an ordered list of
// clauses, with a first-argument index maintained in parallel.
// Clauses are appended in insertion order and never mutated or
// removed (there is no retract).
type Store struct {
	buckets map[term.Indicator]*bucket
}

// New returns an empty store.
func New() *Store {
	return &Store{buckets: make(map[term.Indicator]*bucket)}
}

// bucket holds one predicate's clauses plus its first-argument index.
type bucket struct {
	clauses []*term.Clause
	index   *firstArgIndex
}

// Assert appends a single clause to its predicate's bucket, in the
// order given, and updates that predicate's first-argument index.
func (s *Store) Assert(c *term.Clause) {
	ind := c.Head.Indicator()
	b, ok := s.buckets[ind]
	if !ok {
		b = &bucket{index: newFirstArgIndex()}
		s.buckets[ind] = b
	}
	pos := len(b.clauses)
	b.clauses = append(b.clauses, c)
	if ind.Arity >= 1 {
		b.index.add(keyOf(c.Head.Args[0]), pos)
	}
}

// Load appends every clause in cs to the store, in order.
func (s *Store) Load(cs []*term.Clause) {
	for _, c := range cs {
		s.Assert(c)
	}
}

// Reset drops every clause, returning the store to empty.
func (s *Store) Reset() {
	s.buckets = make(map[term.Indicator]*bucket)
}

// Candidates returns the clauses that might unify with a goal of the
// given indicator whose first argument is firstArg (nil if the goal
// has arity 0 or the caller does not want index narrowing applied).
// If firstArg is a variable or a number (or absent), every clause of
// the predicate is returned in insertion order; otherwise clauses
// whose first-argument key matches exactly are returned first (in
// insertion order), followed by clauses whose first-argument key is
// the wildcard (also in insertion order).
func (s *Store) Candidates(ind term.Indicator, firstArg term.Term) []*term.Clause {
	b, ok := s.buckets[ind]
	if !ok {
		return nil
	}
	if ind.Arity == 0 || firstArg == nil {
		return b.clauses
	}
	key := keyOf(firstArg)
	if key.kind == kindWildcard {
		return b.clauses
	}
	return b.index.candidates(key, b.clauses)
}

// ListPredicates returns every predicate currently stored, formatted
// "functor/arity", sorted for deterministic output.
func (s *Store) ListPredicates() []string {
	names := make([]string, 0, len(s.buckets))
	for ind := range s.buckets {
		names = append(names, ind.String())
	}
	sort.Strings(names)
	return names
}

// ClauseCount returns how many clauses are stored for ind.
func (s *Store) ClauseCount(ind term.Indicator) int {
	b, ok := s.buckets[ind]
	if !ok {
		return 0
	}
	return len(b.clauses)
}
