// Package arith evaluates ground arithmetic expression terms.
// Evaluation errors never escape to the resolver as Go errors that
// unwind the stack of the calling goal — the arithmetic and
// comparison builtins (internal/builtin) catch them and fail the
// current proof branch silently. Evaluate itself just returns a plain
// error; turning that into "branch fails" is the builtin's job, not
// this package's.
package arith

import (
	"fmt"
	"math"

	"github.com/go-prolog/engine/internal/env"
	"github.com/go-prolog/engine/internal/term"
)

// Error is returned by Evaluate for every failure mode: an unbound
// variable, an unknown atom/functor, a wrong arity, or an
// out-of-domain argument (division by zero, sqrt of a negative
// number, log of a non-positive number).
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errf(format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Evaluate walks t (dereferencing through e as it goes) and computes
// its numeric value. t must already be ground once dereferenced;
// encountering an unbound variable anywhere in the expression is an
// Error, not a panic.
func Evaluate(t term.Term, e *env.Environment) (*term.Number, error) {
	d := e.Deref(t)
	switch v := d.(type) {
	case *term.Number:
		return v, nil

	case *term.Variable:
		return nil, errf("arithmetic: unbound variable %s", v.String())

	case *term.Atom:
		switch v.Name {
		case "pi":
			return term.NewFloat(math.Pi), nil
		case "e":
			return term.NewFloat(math.E), nil
		default:
			return nil, errf("arithmetic: unknown atom %q", v.Name)
		}

	case *term.Compound:
		return evalCompound(v, e)

	default:
		return nil, errf("arithmetic: not an evaluable term: %v", d)
	}
}

func evalCompound(c *term.Compound, e *env.Environment) (*term.Number, error) {
	switch len(c.Args) {
	case 1:
		return evalUnary(c.Functor, c.Args[0], e)
	case 2:
		return evalBinary(c.Functor, c.Args[0], c.Args[1], e)
	default:
		return nil, errf("arithmetic: unknown functor %s/%d", c.Functor, len(c.Args))
	}
}

func evalUnary(functor string, argTerm term.Term, e *env.Environment) (*term.Number, error) {
	arg, err := Evaluate(argTerm, e)
	if err != nil {
		return nil, err
	}

	if functor == "-" {
		if arg.IsFloat {
			return term.NewFloat(-arg.Float), nil
		}
		return term.NewInt(-arg.Int), nil
	}

	f := arg.AsFloat()
	switch functor {
	case "abs":
		if !arg.IsFloat && arg.Int < 0 {
			return term.NewInt(-arg.Int), nil
		}
		if arg.IsFloat {
			return term.NewFloat(math.Abs(arg.Float)), nil
		}
		return arg, nil
	case "floor":
		return term.NewInt(int64(math.Floor(f))), nil
	case "ceil":
		return term.NewInt(int64(math.Ceil(f))), nil
	case "sqrt":
		if f < 0 {
			return nil, errf("arithmetic: sqrt of negative number %v", f)
		}
		return term.NewFloat(math.Sqrt(f)), nil
	case "sin":
		return term.NewFloat(math.Sin(f)), nil
	case "cos":
		return term.NewFloat(math.Cos(f)), nil
	case "tan":
		return term.NewFloat(math.Tan(f)), nil
	case "asin":
		return term.NewFloat(math.Asin(f)), nil
	case "acos":
		return term.NewFloat(math.Acos(f)), nil
	case "atan":
		return term.NewFloat(math.Atan(f)), nil
	case "exp":
		return term.NewFloat(math.Exp(f)), nil
	case "log", "ln":
		if f <= 0 {
			return nil, errf("arithmetic: log of non-positive number %v", f)
		}
		return term.NewFloat(math.Log(f)), nil
	case "log10":
		if f <= 0 {
			return nil, errf("arithmetic: log10 of non-positive number %v", f)
		}
		return term.NewFloat(math.Log10(f)), nil
	default:
		return nil, errf("arithmetic: unknown functor %s/1", functor)
	}
}

func evalBinary(functor string, lhsTerm, rhsTerm term.Term, e *env.Environment) (*term.Number, error) {
	lhs, err := Evaluate(lhsTerm, e)
	if err != nil {
		return nil, err
	}
	rhs, err := Evaluate(rhsTerm, e)
	if err != nil {
		return nil, err
	}

	switch functor {
	case "+":
		if lhs.IsFloat || rhs.IsFloat {
			return term.NewFloat(lhs.AsFloat() + rhs.AsFloat()), nil
		}
		return term.NewInt(lhs.Int + rhs.Int), nil

	case "-":
		if lhs.IsFloat || rhs.IsFloat {
			return term.NewFloat(lhs.AsFloat() - rhs.AsFloat()), nil
		}
		return term.NewInt(lhs.Int - rhs.Int), nil

	case "*":
		if lhs.IsFloat || rhs.IsFloat {
			return term.NewFloat(lhs.AsFloat() * rhs.AsFloat()), nil
		}
		return term.NewInt(lhs.Int * rhs.Int), nil

	case "/":
		if rhs.AsFloat() == 0 {
			return nil, errf("arithmetic: division by zero")
		}
		if lhs.IsFloat || rhs.IsFloat {
			return term.NewFloat(lhs.AsFloat() / rhs.AsFloat()), nil
		}
		return term.NewFloat(float64(lhs.Int) / float64(rhs.Int)), nil

	case "//":
		if rhs.AsFloat() == 0 {
			return nil, errf("arithmetic: division by zero")
		}
		// Floor the true quotient before converting, so fractional
		// operands round toward negative infinity rather than being
		// truncated first.
		return term.NewInt(int64(math.Floor(lhs.AsFloat() / rhs.AsFloat()))), nil

	case "mod":
		if rhs.AsFloat() == 0 {
			return nil, errf("arithmetic: modulo by zero")
		}
		if lhs.IsFloat || rhs.IsFloat {
			a, b := lhs.AsFloat(), rhs.AsFloat()
			return term.NewFloat(a - math.Floor(a/b)*b), nil
		}
		// Integer remainder with the divisor's sign.
		m := lhs.Int % rhs.Int
		if m != 0 && (m < 0) != (rhs.Int < 0) {
			m += rhs.Int
		}
		return term.NewInt(m), nil

	case "**", "^":
		if !lhs.IsFloat && !rhs.IsFloat && rhs.Int >= 0 {
			return term.NewInt(intPow(lhs.Int, rhs.Int)), nil
		}
		return term.NewFloat(math.Pow(lhs.AsFloat(), rhs.AsFloat())), nil

	default:
		return nil, errf("arithmetic: unknown functor %s/2", functor)
	}
}

// intPow computes base^exp for a non-negative integer exponent,
// keeping the result integer-typed so e.g. 2^3^2 stays exact at 512
// instead of drifting through floating point.
func intPow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}
