package kb

import (
	"reflect"
	"testing"

	"github.com/go-prolog/engine/internal/term"
)

func atom(name string) *term.Atom { return term.NewAtom(name) }

func fact(functor string, args ...term.Term) *term.Clause {
	return term.NewFact(term.NewCompound(functor, args...))
}

func TestAssertPreservesInsertionOrder(t *testing.T) {
	s := New()
	s.Assert(fact("parent", atom("tom"), atom("bob")))
	s.Assert(fact("parent", atom("bob"), atom("ann")))
	s.Assert(fact("parent", atom("bob"), atom("pat")))

	ind := term.Indicator{Functor: "parent", Arity: 2}
	cs := s.Candidates(ind, atom("bob"))
	if len(cs) != 2 {
		t.Fatalf("got %d candidates, want 2", len(cs))
	}
	if cs[0].Head.Args[1].(*term.Atom).Name != "ann" {
		t.Error("first candidate should be the ann fact, in insertion order")
	}
	if cs[1].Head.Args[1].(*term.Atom).Name != "pat" {
		t.Error("second candidate should be the pat fact, in insertion order")
	}
}

func TestCandidatesWithVariableFirstArgReturnsAll(t *testing.T) {
	s := New()
	s.Assert(fact("p", atom("a")))
	s.Assert(fact("p", atom("b")))

	ind := term.Indicator{Functor: "p", Arity: 1}
	cs := s.Candidates(ind, term.NewVariable("X"))
	if len(cs) != 2 {
		t.Fatalf("got %d candidates, want 2 (variable goal must see every clause)", len(cs))
	}
}

func TestCandidatesMergeMatchThenWildcard(t *testing.T) {
	s := New()
	s.Assert(fact("p", atom("a")))           // concrete "a"
	s.Assert(fact("p", term.NewVariable(""))) // wildcard
	s.Assert(fact("p", atom("a")))           // concrete "a" again
	s.Assert(fact("p", atom("b")))           // concrete "b", irrelevant to goal "a"

	ind := term.Indicator{Functor: "p", Arity: 1}
	cs := s.Candidates(ind, atom("a"))

	if len(cs) != 3 {
		t.Fatalf("got %d candidates, want 3", len(cs))
	}
	// Matches in insertion order, then wildcards in insertion order.
	if !cs[0].Head.Args[0].(*term.Atom).Equal(atom("a")) {
		t.Error("first candidate should be the first concrete match")
	}
	if !cs[1].Head.Args[0].(*term.Atom).Equal(atom("a")) {
		t.Error("second candidate should be the second concrete match")
	}
	if _, ok := cs[2].Head.Args[0].(*term.Variable); !ok {
		t.Error("third candidate should be the wildcard clause")
	}
}

func TestCandidatesWithNumberGoalReturnsAll(t *testing.T) {
	s := New()
	s.Assert(fact("p", atom("a")))
	s.Assert(fact("p", term.NewInt(1)))

	ind := term.Indicator{Functor: "p", Arity: 1}
	cs := s.Candidates(ind, term.NewInt(5))
	if len(cs) != 2 {
		t.Fatalf("a number in goal position is a wildcard; got %d, want 2", len(cs))
	}
}

func TestCandidatesCompoundFirstArgSharesOneBucket(t *testing.T) {
	s := New()
	s.Assert(fact("p", term.NewCompound("f", atom("x"))))
	s.Assert(fact("p", term.NewCompound("g", atom("y"))))

	ind := term.Indicator{Functor: "p", Arity: 1}
	cs := s.Candidates(ind, term.NewCompound("f", term.NewVariable("")))
	if len(cs) != 2 {
		t.Fatalf("all compounds share one coarse bucket; got %d, want 2", len(cs))
	}
}

func TestListPredicatesSorted(t *testing.T) {
	s := New()
	s.Assert(fact("zeta", atom("a")))
	s.Assert(fact("alpha", atom("a"), atom("b")))

	got := s.ListPredicates()
	want := []string{"alpha/2", "zeta/1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResetClearsStore(t *testing.T) {
	s := New()
	s.Assert(fact("p", atom("a")))
	s.Reset()
	if s.ClauseCount(term.Indicator{Functor: "p", Arity: 1}) != 0 {
		t.Error("Reset should clear all clauses")
	}
}

func TestCandidatesUnknownPredicateReturnsNil(t *testing.T) {
	s := New()
	cs := s.Candidates(term.Indicator{Functor: "missing", Arity: 1}, atom("a"))
	if cs != nil {
		t.Errorf("got %v, want nil", cs)
	}
}

func TestCandidatesArityZero(t *testing.T) {
	s := New()
	s.Assert(term.NewFact(term.NewCompound("true")))
	cs := s.Candidates(term.Indicator{Functor: "true", Arity: 0}, nil)
	if len(cs) != 1 {
		t.Fatalf("got %d, want 1", len(cs))
	}
}
