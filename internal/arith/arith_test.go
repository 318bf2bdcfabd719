package arith

import (
	"testing"

	"github.com/go-prolog/engine/internal/env"
	"github.com/go-prolog/engine/internal/term"
)

func mustEval(t *testing.T, e term.Term) *term.Number {
	t.Helper()
	n, err := Evaluate(e, env.New())
	if err != nil {
		t.Fatalf("Evaluate(%v) returned error: %v", e, err)
	}
	return n
}

func TestEvaluateArithmeticPrecedence(t *testing.T) {
	// (2+3)*4 = 20.
	expr := term.NewCompound("*",
		term.NewCompound("+", term.NewInt(2), term.NewInt(3)),
		term.NewInt(4),
	)
	got := mustEval(t, expr)
	if got.Int != 20 || got.IsFloat {
		t.Errorf("got %v, want integer 20", got)
	}
}

func TestEvaluatePowerRightAssociative(t *testing.T) {
	// 2^3^2 parsed right-associatively is 2^(3^2) = 2^9 = 512.
	expr := term.NewCompound("^",
		term.NewInt(2),
		term.NewCompound("^", term.NewInt(3), term.NewInt(2)),
	)
	got := mustEval(t, expr)
	if got.Int != 512 {
		t.Errorf("got %v, want 512", got)
	}
}

func TestEvaluateDivisionByZeroIsError(t *testing.T) {
	_, err := Evaluate(term.NewCompound("/", term.NewInt(1), term.NewInt(0)), env.New())
	if err == nil {
		t.Error("1/0 should be an evaluation error, not a panic or a value")
	}
}

func TestEvaluateFloorDivision(t *testing.T) {
	got := mustEval(t, term.NewCompound("//", term.NewInt(7), term.NewInt(2)))
	if got.Int != 3 {
		t.Errorf("7 // 2 = %v, want 3", got.Int)
	}
	got = mustEval(t, term.NewCompound("//", term.NewInt(-7), term.NewInt(2)))
	if got.Int != -4 {
		t.Errorf("-7 // 2 = %v, want -4 (floor division)", got.Int)
	}
	got = mustEval(t, term.NewCompound("//", term.NewFloat(-3.5), term.NewInt(1)))
	if got.IsFloat || got.Int != -4 {
		t.Errorf("-3.5 // 1 = %v, want integer -4 (floor of the true quotient)", got)
	}
}

func TestEvaluateMod(t *testing.T) {
	got := mustEval(t, term.NewCompound("mod", term.NewInt(-7), term.NewInt(2)))
	if got.Int != 1 {
		t.Errorf("-7 mod 2 = %v, want 1", got.Int)
	}
	got = mustEval(t, term.NewCompound("mod", term.NewFloat(7.5), term.NewInt(2)))
	if !got.IsFloat || got.Float != 1.5 {
		t.Errorf("7.5 mod 2 = %v, want float 1.5", got)
	}
	got = mustEval(t, term.NewCompound("mod", term.NewFloat(-7.5), term.NewInt(2)))
	if !got.IsFloat || got.Float != 0.5 {
		t.Errorf("-7.5 mod 2 = %v, want float 0.5 (sign of the divisor)", got)
	}
}

func TestEvaluateTrueDivisionIsFloat(t *testing.T) {
	got := mustEval(t, term.NewCompound("/", term.NewInt(1), term.NewInt(2)))
	if !got.IsFloat || got.Float != 0.5 {
		t.Errorf("1/2 = %v, want float 0.5", got)
	}
}

func TestEvaluateConstants(t *testing.T) {
	got := mustEval(t, term.NewAtom("pi"))
	if !got.IsFloat {
		t.Error("pi should evaluate to a float")
	}
}

func TestEvaluateSqrtNegativeIsError(t *testing.T) {
	_, err := Evaluate(term.NewCompound("sqrt", term.NewInt(-4)), env.New())
	if err == nil {
		t.Error("sqrt of a negative number should be an evaluation error")
	}
}

func TestEvaluateLogNonPositiveIsError(t *testing.T) {
	_, err := Evaluate(term.NewCompound("log", term.NewInt(0)), env.New())
	if err == nil {
		t.Error("log of zero should be an evaluation error")
	}
}

func TestEvaluateUnboundVariableIsError(t *testing.T) {
	_, err := Evaluate(term.NewVariable("X"), env.New())
	if err == nil {
		t.Error("an unbound variable should be an evaluation error")
	}
}

func TestEvaluateUnknownAtomIsError(t *testing.T) {
	_, err := Evaluate(term.NewAtom("bogus"), env.New())
	if err == nil {
		t.Error("an unknown atom should be an evaluation error")
	}
}

func TestEvaluateUnknownFunctorIsError(t *testing.T) {
	_, err := Evaluate(term.NewCompound("frobnicate", term.NewInt(1)), env.New())
	if err == nil {
		t.Error("an unknown functor should be an evaluation error")
	}
}

func TestEvaluateResolvesThroughEnvironment(t *testing.T) {
	e := env.New()
	x := term.NewVariable("X")
	e.Bind(x, term.NewInt(10))

	got, err := Evaluate(term.NewCompound("+", x, term.NewInt(5)), e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Int != 15 {
		t.Errorf("got %v, want 15", got.Int)
	}
}

func TestEvaluateAgreesWithItself(t *testing.T) {
	// E's value via `is` should be the same
	// value comparing E =:= E would use.
	expr := term.NewCompound("+", term.NewInt(3), term.NewCompound("*", term.NewInt(2), term.NewInt(4)))
	v1 := mustEval(t, expr)
	v2 := mustEval(t, expr)
	if v1.AsFloat() != v2.AsFloat() {
		t.Errorf("repeated evaluation of the same ground expression should agree: %v != %v", v1, v2)
	}
}
