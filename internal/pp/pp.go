// Package pp formats terms for display: operator-aware, list-aware,
// and depth-bounded. The engine never calls this; the REPL and CLI do,
// after projecting a solution's bindings through the query variables.
package pp

import (
	"strings"
	"unicode"

	"github.com/go-prolog/engine/internal/env"
	"github.com/go-prolog/engine/internal/term"
)

// Defaults for the truncation limits.
const (
	DefaultMaxDepth     = 10
	DefaultMaxListElems = 20
)

// opEntry describes one binary operator the printer renders infix.
// Priority numbers are the standard table's: lower binds tighter.
type opEntry struct {
	priority   int
	rightAssoc bool
}

var binaryOps = map[string]opEntry{
	"^": {priority: 200, rightAssoc: true},
	"*": {priority: 400},
	"/": {priority: 400},
	"+": {priority: 500},
	"-": {priority: 500},
}

// operatorAtoms are atom names that print bare even though they are
// not lowercase identifiers.
var operatorAtoms = map[string]bool{
	":-": true, ";": true, ",": true, "!": true,
	"=": true, "\\=": true, "==": true, "\\==": true,
	"is": true, "=:=": true, "=\\=": true,
	"<": true, "=<": true, ">": true, ">=": true,
	"+": true, "-": true, "*": true, "/": true,
	"//": true, "mod": true, "**": true, "^": true,
}

// Printer formats terms. The zero value is not useful; New fills in
// the default limits.
type Printer struct {
	MaxDepth     int
	MaxListElems int
}

// New returns a Printer with the default truncation limits.
func New() *Printer {
	return &Printer{MaxDepth: DefaultMaxDepth, MaxListElems: DefaultMaxListElems}
}

// Format renders t, dereferencing through e at every step. A nil e
// formats the term as-is.
func (p *Printer) Format(t term.Term, e *env.Environment) string {
	return p.format(t, e, p.MaxDepth, maxPriority)
}

// Format renders t with the default limits.
func Format(t term.Term, e *env.Environment) string {
	return New().Format(t, e)
}

// maxPriority admits any operator without parentheses at the top
// level.
const maxPriority = 1200

func deref(t term.Term, e *env.Environment) term.Term {
	if e == nil {
		return t
	}
	return e.Deref(t)
}

// format renders t assuming the context admits operators up to
// maxPrio; a child operator needing a higher number than that is
// parenthesised.
func (p *Printer) format(t term.Term, e *env.Environment, depth, maxPrio int) string {
	if depth <= 0 {
		return "..."
	}
	switch v := deref(t, e).(type) {
	case *term.Variable:
		if v.Name != "" && v.Name != "_" {
			return v.Name
		}
		return v.String()

	case *term.Atom:
		return formatAtom(v.Name)

	case *term.Number:
		return v.String()

	case *term.Compound:
		return p.formatCompound(v, e, depth, maxPrio)

	default:
		return t.String()
	}
}

func (p *Printer) formatCompound(c *term.Compound, e *env.Environment, depth, maxPrio int) string {
	if _, _, ok := term.IsCons(c); ok {
		return p.formatList(c, e, depth)
	}
	if op, isOp := binaryOps[c.Functor]; isOp && len(c.Args) == 2 {
		// A left child of equal priority is fine under a
		// left-associative parent; a right child needs parens there.
		leftMax, rightMax := op.priority, op.priority-1
		if op.rightAssoc {
			leftMax, rightMax = op.priority-1, op.priority
		}
		s := p.format(c.Args[0], e, depth-1, leftMax) +
			c.Functor +
			p.format(c.Args[1], e, depth-1, rightMax)
		if op.priority > maxPrio {
			return "(" + s + ")"
		}
		return s
	}
	if len(c.Args) == 0 {
		return formatAtom(c.Functor)
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = p.format(a, e, depth-1, maxPriority)
	}
	return formatAtom(c.Functor) + "(" + strings.Join(parts, ", ") + ")"
}

// formatList renders a cons chain: proper lists as [a, b, c], partial
// lists as [H|T], and lists longer than MaxListElems truncated with a
// trailing ellipsis.
func (p *Printer) formatList(c *term.Compound, e *env.Environment, depth int) string {
	var (
		elems []string
		cur   term.Term = c
	)
	for {
		d := deref(cur, e)
		head, tail, ok := term.IsCons(d)
		if !ok {
			// A non-cell remainder is either the terminator of a
			// proper list or the tail of a partial one.
			if term.IsList(d) {
				return "[" + strings.Join(elems, ", ") + "]"
			}
			return "[" + strings.Join(elems, ", ") + "|" + p.format(d, e, depth-1, maxPriority) + "]"
		}
		if len(elems) >= p.MaxListElems {
			return "[" + strings.Join(elems, ", ") + ", ...]"
		}
		elems = append(elems, p.format(head, e, depth-1, maxPriority))
		cur = tail
	}
}

// formatAtom quotes atom names that are neither lowercase identifiers
// nor known operators.
func formatAtom(name string) string {
	if name == term.EmptyListName || operatorAtoms[name] {
		return name
	}
	if isIdentifier(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "\\'") + "'"
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	runes := []rune(name)
	if !unicode.IsLower(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
