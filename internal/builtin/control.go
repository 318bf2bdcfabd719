package builtin

import (
	"github.com/go-prolog/engine/internal/env"
	"github.com/go-prolog/engine/internal/term"
	"github.com/go-prolog/engine/internal/trail"
)

// true/0 always succeeds once, leaving the environment untouched.
func builtinTrue(_ []term.Term, _ EngineHandle, e *env.Environment, _ *trail.Trail) []*env.Environment {
	return []*env.Environment{e}
}

// fail/0 never succeeds.
func builtinFail(_ []term.Term, _ EngineHandle, _ *env.Environment, _ *trail.Trail) []*env.Environment {
	return nil
}

// !/0, call/1 and once/1 are registered so their indicators resolve
// as builtins rather than unknown procedures, but they are stubs: cut
// succeeds without pruning any choice points, and the meta-calls
// succeed without invoking their goal argument. Real cut needs
// clause-activation ids threaded through the resolver so a prune
// signal can stop candidate iteration at the right frame.
func builtinControlStub(_ []term.Term, _ EngineHandle, e *env.Environment, _ *trail.Trail) []*env.Environment {
	return []*env.Environment{e}
}

// RegisterControl adds the control predicates to r.
func RegisterControl(r *Registry) {
	r.Register("true", 0, builtinTrue, true, false, "always succeeds")
	r.Register("fail", 0, builtinFail, true, false, "never succeeds")
	r.Register("!", 0, builtinControlStub, true, false, "cut (stub: succeeds without pruning)")
	r.Register("call", 1, builtinControlStub, false, true, "meta-call (stub)")
	r.Register("once", 1, builtinControlStub, true, true, "deterministic meta-call (stub)")
}
