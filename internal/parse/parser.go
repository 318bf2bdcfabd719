package parse

import (
	"strconv"
	"strings"

	"github.com/go-prolog/engine/internal/perr"
	"github.com/go-prolog/engine/internal/term"
)

// opInfo describes one infix operator: its priority (lower binds
// tighter) and associativity.
type opInfo struct {
	priority   int
	rightAssoc bool
	nonAssoc   bool
}

// infixOps is the operator table. Comma (1000) and :- (1200) are
// handled structurally by the clause/goal grammar, not here, so the
// table tops out at the 700 comparison tier.
var infixOps = map[string]opInfo{
	"=":    {priority: 700, nonAssoc: true},
	"\\=":  {priority: 700, nonAssoc: true},
	"is":   {priority: 700, nonAssoc: true},
	"=:=":  {priority: 700, nonAssoc: true},
	"=\\=": {priority: 700, nonAssoc: true},
	"<":    {priority: 700, nonAssoc: true},
	"=<":   {priority: 700, nonAssoc: true},
	">":    {priority: 700, nonAssoc: true},
	">=":   {priority: 700, nonAssoc: true},
	"+":    {priority: 500},
	"-":    {priority: 500},
	"*":    {priority: 400},
	"/":    {priority: 400},
	"//":   {priority: 400},
	"mod":  {priority: 400},
	"**":   {priority: 200, nonAssoc: true},
	"^":    {priority: 200, rightAssoc: true},
}

// maxTermPriority admits every operator in infixOps but excludes the
// comma, so f(a+b, c) parses two arguments rather than one.
const maxTermPriority = 999

// Parser consumes one source text and produces clauses or query
// goals. Variables with the same name within one clause share one
// *term.Variable; the anonymous variable _ is fresh at each
// occurrence.
type Parser struct {
	toks []token
	pos  int

	vars     map[string]*term.Variable
	varOrder []*term.Variable
}

// NewParser lexes src eagerly. Lexical errors surface here rather
// than midway through parsing.
func NewParser(src string) (*Parser, error) {
	toks, err := newLexer(src).tokens()
	if err != nil {
		return nil, err
	}
	return &Parser{toks: toks}, nil
}

func (p *Parser) peek() token { return p.toks[p.pos] }

func (p *Parser) advance() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) expectPunct(lexeme string) error {
	tok := p.peek()
	if tok.kind != tokPunct || tok.lexeme != lexeme {
		return perr.Syntaxf(tok.line, tok.col, "expected %q, found %q", lexeme, tok.lexeme)
	}
	p.advance()
	return nil
}

func (p *Parser) atPunct(lexeme string) bool {
	tok := p.peek()
	return tok.kind == tokPunct && tok.lexeme == lexeme
}

// AtEOF reports whether all input has been consumed.
func (p *Parser) AtEOF() bool { return p.peek().kind == tokEOF }

// ParseProgram parses a whole source text: a sequence of clauses each
// terminated by '.'.
func (p *Parser) ParseProgram() ([]*term.Clause, error) {
	var clauses []*term.Clause
	for !p.AtEOF() {
		c, err := p.ParseClause()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	return clauses, nil
}

// ParseClause parses one fact or rule, consuming the trailing '.'.
// The within-clause variable table resets here, so X in one clause
// never aliases X in the next.
func (p *Parser) ParseClause() (*term.Clause, error) {
	p.vars = make(map[string]*term.Variable)
	p.varOrder = nil

	head, err := p.parseGoal()
	if err != nil {
		return nil, err
	}
	tok := p.peek()
	if tok.kind == tokAtom && tok.lexeme == ":-" {
		p.advance()
		body, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		if err := p.expectDot(); err != nil {
			return nil, err
		}
		return term.NewRule(head, body...), nil
	}
	if err := p.expectDot(); err != nil {
		return nil, err
	}
	return term.NewFact(head), nil
}

// ParseQuery parses a goal conjunction terminated by '.', as typed at
// the REPL prompt, and returns the goals together with the query's
// named variables in order of first appearance.
func (p *Parser) ParseQuery() ([]*term.Compound, []*term.Variable, error) {
	p.vars = make(map[string]*term.Variable)
	p.varOrder = nil

	goals, err := p.parseConjunction()
	if err != nil {
		return nil, nil, err
	}
	if err := p.expectDot(); err != nil {
		return nil, nil, err
	}
	return goals, p.varOrder, nil
}

func (p *Parser) expectDot() error {
	tok := p.peek()
	if tok.kind != tokDot {
		return perr.Syntaxf(tok.line, tok.col, "expected '.', found %q", tok.lexeme)
	}
	p.advance()
	return nil
}

func (p *Parser) parseConjunction() ([]*term.Compound, error) {
	var goals []*term.Compound
	g, err := p.parseGoal()
	if err != nil {
		return nil, err
	}
	goals = append(goals, g)
	for p.atPunct(",") {
		p.advance()
		g, err := p.parseGoal()
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}

// parseGoal parses one term and coerces it into goal shape: an atom
// becomes a zero-arity compound, anything other than an atom or a
// compound is rejected.
func (p *Parser) parseGoal() (*term.Compound, error) {
	tok := p.peek()
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	switch g := t.(type) {
	case *term.Compound:
		return g, nil
	case *term.Atom:
		return term.NewCompound(g.Name), nil
	default:
		return nil, perr.Syntaxf(tok.line, tok.col, "goal must be an atom or a compound term, found %s", t)
	}
}

// parseTerm parses one full term, operators included, up to (but not
// including) the argument-separating comma.
func (p *Parser) parseTerm() (term.Term, error) {
	return p.parseExpr(maxTermPriority)
}

// parseExpr is precedence climbing: it accepts infix operators whose
// priority is at most maxPriority. Left-associative (and non-assoc)
// operators parse their right side one level tighter; right-
// associative ones parse it at their own level.
func (p *Parser) parseExpr(maxPriority int) (term.Term, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokAtom {
			return left, nil
		}
		op, isOp := infixOps[tok.lexeme]
		if !isOp || op.priority > maxPriority {
			return left, nil
		}
		p.advance()

		rightMax := op.priority - 1
		if op.rightAssoc {
			rightMax = op.priority
		}
		right, err := p.parseExpr(rightMax)
		if err != nil {
			return nil, err
		}
		left = term.NewCompound(tok.lexeme, left, right)
		if op.nonAssoc {
			return left, nil
		}
	}
}

func (p *Parser) parsePrimary() (term.Term, error) {
	tok := p.peek()
	switch tok.kind {
	case tokNumber:
		p.advance()
		return parseNumber(tok)

	case tokVar:
		p.advance()
		return p.variable(tok.lexeme), nil

	case tokAtom:
		// Prefix minus: -X, -3. With a parenthesis following, the
		// argument-list path covers both -(1+2) and the functor
		// spelling -(1, 2).
		if tok.lexeme == "-" {
			p.advance()
			if p.atPunct("(") {
				return p.parseArgs("-")
			}
			operand, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			return term.NewCompound("-", operand), nil
		}
		p.advance()
		if p.atPunct("(") {
			return p.parseArgs(tok.lexeme)
		}
		return term.NewAtom(tok.lexeme), nil

	case tokPunct:
		switch tok.lexeme {
		case "[":
			return p.parseList()
		case "(":
			p.advance()
			inner, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			if err := p.expectPunct(")"); err != nil {
				return nil, err
			}
			return inner, nil
		}
	}
	if tok.kind == tokEOF {
		return nil, perr.Syntaxf(tok.line, tok.col, "unexpected end of input")
	}
	return nil, perr.Syntaxf(tok.line, tok.col, "unexpected token %q", tok.lexeme)
}

// parseArgs parses the parenthesised argument list of a compound term
// whose functor has already been consumed.
func (p *Parser) parseArgs(functor string) (term.Term, error) {
	p.advance() // '('
	var args []term.Term
	if !p.atPunct(")") {
		for {
			arg, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.atPunct(",") {
				break
			}
			p.advance()
		}
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	return term.NewCompound(functor, args...), nil
}

func (p *Parser) parseList() (term.Term, error) {
	p.advance() // '['
	if p.atPunct("]") {
		p.advance()
		return term.EmptyList(), nil
	}
	var elems []term.Term
	for {
		el, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if !p.atPunct(",") {
			break
		}
		p.advance()
	}
	tail := term.Term(term.EmptyList())
	if p.atPunct("|") {
		p.advance()
		var err error
		tail, err = p.parseTerm()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectPunct("]"); err != nil {
		return nil, err
	}
	return term.NewListWithTail(elems, tail), nil
}

// variable returns the clause-shared variable for name, minting it on
// first sight. The anonymous variable is never shared.
func (p *Parser) variable(name string) *term.Variable {
	if name == "_" {
		return term.NewVariable("_")
	}
	if v, ok := p.vars[name]; ok {
		return v
	}
	v := term.NewVariable(name)
	p.vars[name] = v
	p.varOrder = append(p.varOrder, v)
	return v
}

func parseNumber(tok token) (term.Term, error) {
	if strings.ContainsRune(tok.lexeme, '.') {
		f, err := strconv.ParseFloat(tok.lexeme, 64)
		if err != nil {
			return nil, perr.Syntaxf(tok.line, tok.col, "malformed number %q", tok.lexeme)
		}
		return term.NewFloat(f), nil
	}
	n, err := strconv.ParseInt(tok.lexeme, 10, 64)
	if err != nil {
		return nil, perr.Syntaxf(tok.line, tok.col, "malformed number %q", tok.lexeme)
	}
	return term.NewInt(n), nil
}
