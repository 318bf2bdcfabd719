package unify

import (
	"testing"

	"github.com/go-prolog/engine/internal/env"
	"github.com/go-prolog/engine/internal/term"
	"github.com/go-prolog/engine/internal/trail"
)

func TestUnifyAtoms(t *testing.T) {
	e := env.New()
	tr := trail.New()

	if !Unify(term.NewAtom("a"), term.NewAtom("a"), e, tr, false) {
		t.Error("identical atoms should unify")
	}
	if Unify(term.NewAtom("a"), term.NewAtom("b"), e, tr, false) {
		t.Error("distinct atoms should not unify")
	}
}

func TestUnifyNumbersAcrossKinds(t *testing.T) {
	e := env.New()
	tr := trail.New()
	if !Unify(term.NewInt(2), term.NewFloat(2.0), e, tr, false) {
		t.Error("2 and 2.0 should unify")
	}
}

func TestUnifyVariableBindsAndDerefsAfterward(t *testing.T) {
	e := env.New()
	tr := trail.New()
	x := term.NewVariable("X")

	if !Unify(x, term.NewAtom("hello"), e, tr, false) {
		t.Fatal("unify should succeed")
	}
	if got := e.Deref(x); got.(*term.Atom).Name != "hello" {
		t.Errorf("Deref(X) = %v, want hello", got)
	}
	if tr.Len() != 1 {
		t.Errorf("trail length = %d, want 1", tr.Len())
	}
}

func TestUnifyCompoundRecursively(t *testing.T) {
	e := env.New()
	tr := trail.New()
	x := term.NewVariable("X")
	y := term.NewVariable("Y")

	t1 := term.NewCompound("f", x, term.NewAtom("b"))
	t2 := term.NewCompound("f", term.NewAtom("a"), y)

	if !Unify(t1, t2, e, tr, false) {
		t.Fatal("unify should succeed")
	}
	if e.Deref(x).(*term.Atom).Name != "a" {
		t.Error("X should be bound to a")
	}
	if e.Deref(y).(*term.Atom).Name != "b" {
		t.Error("Y should be bound to b")
	}
}

func TestUnifyFunctorMismatchFails(t *testing.T) {
	e := env.New()
	tr := trail.New()
	t1 := term.NewCompound("f", term.NewAtom("a"))
	t2 := term.NewCompound("g", term.NewAtom("a"))
	if Unify(t1, t2, e, tr, false) {
		t.Error("different functors should not unify")
	}
}

func TestUnifyArityMismatchFails(t *testing.T) {
	e := env.New()
	tr := trail.New()
	t1 := term.NewCompound("f", term.NewAtom("a"))
	t2 := term.NewCompound("f", term.NewAtom("a"), term.NewAtom("b"))
	if Unify(t1, t2, e, tr, false) {
		t.Error("different arities should not unify")
	}
}

func TestUnifySameVariable(t *testing.T) {
	e := env.New()
	tr := trail.New()
	x := term.NewVariable("X")
	if !Unify(x, x, e, tr, false) {
		t.Error("a variable should unify with itself")
	}
	if tr.Len() != 0 {
		t.Error("unifying a variable with itself should not create a binding")
	}
}

func TestOccursCheckPreventsCycle(t *testing.T) {
	e := env.New()
	tr := trail.New()
	x := term.NewVariable("X")
	cyclic := term.NewCompound("f", x)

	if Unify(x, cyclic, e, tr, true) {
		t.Error("occurs-check should prevent X = f(X)")
	}
}

func TestWithoutOccursCheckCycleSucceeds(t *testing.T) {
	e := env.New()
	tr := trail.New()
	x := term.NewVariable("X")
	cyclic := term.NewCompound("f", x)

	if !Unify(x, cyclic, e, tr, false) {
		t.Error("without occurs-check, X = f(X) should succeed")
	}
}

func TestUnifySoundnessInvariant(t *testing.T) {
	// If unify succeeds, apply(t1) and
	// apply(t2) are structurally identical.
	e := env.New()
	tr := trail.New()
	x := term.NewVariable("X")
	y := term.NewVariable("Y")
	t1 := term.NewCompound("f", x, term.NewAtom("const"))
	t2 := term.NewCompound("f", term.NewAtom("a"), y)

	if !Unify(t1, t2, e, tr, false) {
		t.Fatal("unify should succeed")
	}

	if e.Apply(t1).String() != e.Apply(t2).String() {
		t.Errorf("apply(t1)=%v apply(t2)=%v should be identical", e.Apply(t1), e.Apply(t2))
	}
}

func TestUnifySymmetry(t *testing.T) {
	// Unification is symmetric.
	mkTerms := func() (term.Term, term.Term) {
		x := term.NewVariable("X")
		return term.NewCompound("f", x, term.NewAtom("b")), term.NewCompound("f", term.NewAtom("a"), term.NewAtom("b"))
	}

	t1, t2 := mkTerms()
	e1 := env.New()
	ok1 := Unify(t1, t2, e1, trail.New(), false)

	t1b, t2b := mkTerms()
	e2 := env.New()
	ok2 := Unify(t2b, t1b, e2, trail.New(), false)

	if ok1 != ok2 {
		t.Fatalf("unify(t1,t2)=%v but unify(t2,t1)=%v", ok1, ok2)
	}
	if ok1 && e1.Apply(t1).String() != e2.Apply(t1b).String() {
		t.Error("symmetric unification should produce equivalent substitutions")
	}
}

func TestGroundTermSelfUnifyLeavesEnvironmentEmpty(t *testing.T) {
	// Unifying a ground term with itself binds nothing.
	e := env.New()
	tr := trail.New()
	ground := term.NewCompound("f", term.NewAtom("a"), term.NewInt(1))

	if !Unify(ground, ground, e, tr, false) {
		t.Fatal("a ground term should unify with itself")
	}
	if e.Size() != 0 {
		t.Errorf("environment size = %d, want 0", e.Size())
	}
}

func TestTrailUnwindRestoresEnvironmentAfterUnify(t *testing.T) {
	// Unwinding restores the environment exactly.
	e := env.New()
	tr := trail.New()
	x := term.NewVariable("X")
	y := term.NewVariable("Y")

	Unify(x, term.NewAtom("a"), e, tr, false)
	Unify(y, term.NewAtom("b"), e, tr, false)

	tr.Unwind(e)

	if e.Size() != 0 {
		t.Errorf("environment size after unwind = %d, want 0", e.Size())
	}
}
