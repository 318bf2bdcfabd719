// Package engine implements SLD resolution with chronological
// backtracking over a knowledge base. It ties together internal/term,
// internal/env, internal/trail, internal/unify, internal/kb,
// internal/arith and internal/builtin into the single entry point
// callers use: Engine.Query.
package engine

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/go-prolog/engine/internal/builtin"
	"github.com/go-prolog/engine/internal/kb"
	"github.com/go-prolog/engine/internal/term"
)

// Default values for the declared resource guards.
const (
	DefaultMaxDepth        = 1000
	DefaultMaxChoicePoints = 10000
)

// Config holds the per-engine knobs.
type Config struct {
	// OccursCheck enables the occurs-check during unification. Off by
	// default, matching standard Prolog systems' performance-first
	// default.
	OccursCheck bool

	// MaxDepth and MaxChoicePoints are declared resource guards: the
	// engine accepts and stores them so callers (and the CLI flags)
	// have somewhere to put a limit, but the resolver does not yet
	// consult them. An engine with unbounded recursion or branching
	// runs until the caller cancels its query's context.
	MaxDepth        int
	MaxChoicePoints int

	// Tracer, when non-nil, receives one Debug entry per resolver
	// event (goal call, clause try, fail), with goal/depth/clause
	// fields attached. Nil disables tracing entirely.
	Tracer *logrus.Logger
}

// Engine is a knowledge base plus a builtin registry plus the
// resolver that answers queries against them. The zero value is not
// usable; construct with NewEngine.
type Engine struct {
	cfg      Config
	kb       *kb.Store
	builtins *builtin.Registry

	// varSeq is this engine's fresh-variable counter, consumed when
	// renaming a clause's variables apart on each selection. Scoping
	// it per engine keeps two engines in one process from fighting
	// over the same id space; it counts down from the top of the
	// int64 range so engine-minted ids can never collide with the
	// ids internal/term's package-level counter hands to the parser.
	varSeq int64
}

// NewEngine returns a ready-to-use engine with the default builtin
// set already registered.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:      cfg,
		kb:       kb.New(),
		builtins: builtin.NewDefaultRegistry(),
	}
}

// OccursCheck implements builtin.EngineHandle.
func (eng *Engine) OccursCheck() bool { return eng.cfg.OccursCheck }

// Builtins exposes the engine's registry, e.g. for a REPL's
// introspection commands.
func (eng *Engine) Builtins() *builtin.Registry { return eng.builtins }

// Load asserts every clause in cs into the knowledge base, in order.
func (eng *Engine) Load(cs []*term.Clause) {
	eng.kb.Load(cs)
}

// Assert adds a single clause.
func (eng *Engine) Assert(c *term.Clause) {
	eng.kb.Assert(c)
}

// Reset empties the knowledge base. The builtin registry and
// configuration are untouched.
func (eng *Engine) Reset() {
	eng.kb.Reset()
}

// ListPredicates returns every asserted predicate indicator, sorted,
// for introspection.
func (eng *Engine) ListPredicates() []string {
	return eng.kb.ListPredicates()
}

// freshVarID returns the next renaming-variable id for this engine.
// Atomic so that two queries running on the same engine from
// different goroutines stay well-defined.
func (eng *Engine) freshVarID() int64 {
	n := atomic.AddInt64(&eng.varSeq, 1)
	return int64(^uint64(0)>>1) - n
}
