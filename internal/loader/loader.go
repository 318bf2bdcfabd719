// Package loader consults Prolog source files into an engine.
package loader

import (
	"os"

	"github.com/go-prolog/engine/internal/engine"
	"github.com/go-prolog/engine/internal/parse"
	"github.com/go-prolog/engine/internal/perr"
)

// Consult reads the UTF-8 file at path, parses it as a sequence of
// clauses, and appends them to eng's knowledge base in file order.
// Nothing is loaded when any clause fails to parse: the whole file is
// parsed before the engine is touched. Every failure comes back as a
// *perr.LoadError wrapping the underlying cause.
func Consult(path string, eng *engine.Engine) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return perr.NewLoadError(path, err)
	}
	p, err := parse.NewParser(string(src))
	if err != nil {
		return perr.NewLoadError(path, err)
	}
	clauses, err := p.ParseProgram()
	if err != nil {
		return perr.NewLoadError(path, err)
	}
	eng.Load(clauses)
	return nil
}
