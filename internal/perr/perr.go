// Package perr defines the error values the interpreter's outer layers
// exchange: syntax errors carrying source positions, file-consult
// failures carrying the offending path, and the classification kinds
// callers map errors to. Only KindSyntax and KindLoad have a concrete
// error type here; the arithmetic evaluator reports its failures with
// its own arith.Error instead.
//
// Resolution itself never raises these across the engine boundary — a
// failing arithmetic goal fails its proof branch silently — so the
// types here are consumed by the parser, the loader, the REPL, and the
// CLI, which need a diagnostic line and an exit code, not a proof
// tree.
package perr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies an interpreter error for callers that map errors to
// diagnostics or exit codes without caring about the concrete type.
type Kind int

const (
	KindSyntax Kind = iota
	KindInstantiation
	KindType
	KindDomain
	KindExistence
	KindLoad
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindInstantiation:
		return "instantiation"
	case KindType:
		return "type"
	case KindDomain:
		return "domain"
	case KindExistence:
		return "existence"
	case KindLoad:
		return "load"
	case KindOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// SyntaxError reports malformed Prolog source with a 1-based line and
// column.
type SyntaxError struct {
	Line    int
	Col     int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, col %d: %s", e.Line, e.Col, e.Message)
}

// Syntaxf builds a SyntaxError with a formatted message.
func Syntaxf(line, col int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Line: line, Col: col, Message: fmt.Sprintf(format, args...)}
}

// LoadError reports a failure consulting a file. Err holds the
// underlying cause (a parse error, an I/O error) wrapped with context;
// unwrap it with errors.Cause when the concrete cause matters.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot consult %s: %v", e.Path, e.Err)
}

// NewLoadError wraps cause with the consulted path.
func NewLoadError(path string, cause error) *LoadError {
	return &LoadError{Path: path, Err: errors.Wrapf(cause, "consult %s", path)}
}

// KindOf reports the Kind of err, walking wrap chains via
// errors.Cause. Errors that are none of the interpreter's own types
// report Kind(-1).
func KindOf(err error) Kind {
	switch errors.Cause(err).(type) {
	case *SyntaxError:
		return KindSyntax
	case *LoadError:
		return KindLoad
	default:
		return Kind(-1)
	}
}
