// Package builtin implements the pluggable table of primitive
// predicates the resolver dispatches to before ever consulting the
// knowledge base. Each entry maps a (name, arity) pair
// to a synchronous implementation; deterministic entries produce at
// most one environment, non-deterministic ones may produce several —
// the resolver treats each returned environment exactly like a clause
// candidate that already succeeded.
package builtin

import (
	"sort"

	"github.com/go-prolog/engine/internal/env"
	"github.com/go-prolog/engine/internal/term"
	"github.com/go-prolog/engine/internal/trail"
)

// EngineHandle is the minimal surface a builtin implementation needs
// from the engine that is calling it. It is kept deliberately small —
// and defined here, not in the engine package — so internal/builtin
// never imports internal/engine; internal/engine implements this
// interface and imports internal/builtin instead, avoiding a cycle.
type EngineHandle interface {
	// OccursCheck reports whether the engine was configured with
	// occurs-check enabled.
	OccursCheck() bool
}

// Impl is the shape every builtin implementation has: given the goal's
// argument terms, a handle back to the engine, the current environment,
// and a trail, it returns every environment that satisfies the
// primitive. An empty, non-nil-vs-nil slice both mean "no solutions" —
// callers should test length, not nilness.
type Impl func(args []term.Term, eng EngineHandle, e *env.Environment, tr *trail.Trail) []*env.Environment

// Entry is one row of the registry.
type Entry struct {
	Impl          Impl
	Deterministic bool
	Meta          bool // true if the predicate takes a goal argument (call/1, once/1)
	Description   string
}

// Descriptor is the read-only view Registry.List exposes, e.g. for a
// REPL's introspection commands.
type Descriptor struct {
	Name          string
	Arity         int
	Deterministic bool
	Description   string
}

// Registry is a table of name/arity -> primitive implementation. It
// is writable during setup and read-only during resolution.
type Registry struct {
	entries map[term.Indicator]*Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[term.Indicator]*Entry)}
}

// Register adds (or replaces) the implementation for name/arity.
func (r *Registry) Register(name string, arity int, impl Impl, deterministic bool, meta bool, description string) {
	r.entries[term.Indicator{Functor: name, Arity: arity}] = &Entry{
		Impl:          impl,
		Deterministic: deterministic,
		Meta:          meta,
		Description:   description,
	}
}

// IsBuiltin reports whether ind names a registered builtin.
func (r *Registry) IsBuiltin(ind term.Indicator) bool {
	_, ok := r.entries[ind]
	return ok
}

// Call dispatches goal to its builtin implementation. ok is false if
// goal's indicator is not registered; callers should fall back to
// clause resolution in that case.
func (r *Registry) Call(goal *term.Compound, eng EngineHandle, e *env.Environment, tr *trail.Trail) (envs []*env.Environment, ok bool) {
	entry, found := r.entries[goal.Indicator()]
	if !found {
		return nil, false
	}
	return entry.Impl(goal.Args, eng, e, tr), true
}

// List returns every registered builtin, sorted by name then arity,
// for introspection (e.g. a REPL `\builtins` command).
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.entries))
	for ind, e := range r.entries {
		out = append(out, Descriptor{
			Name:          ind.Functor,
			Arity:         ind.Arity,
			Deterministic: e.Deterministic,
			Description:   e.Description,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Arity < out[j].Arity
	})
	return out
}
