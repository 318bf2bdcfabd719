// Package repl implements the interactive toplevel: read a query,
// prove it, print bindings one solution at a time until the user stops
// asking for more.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/go-prolog/engine/internal/engine"
	"github.com/go-prolog/engine/internal/parse"
	"github.com/go-prolog/engine/internal/pp"
	"github.com/go-prolog/engine/internal/term"
)

const prompt = "?- "

// REPL drives one engine over a line-oriented reader/writer pair.
type REPL struct {
	eng     *engine.Engine
	in      *bufio.Scanner
	out     io.Writer
	log     *logrus.Logger
	printer *pp.Printer
}

// New builds a REPL over the given streams. log receives diagnostics
// (and resolver trace output when the engine was configured with a
// tracer writing to the same logger).
func New(eng *engine.Engine, in io.Reader, out io.Writer, log *logrus.Logger) *REPL {
	return &REPL{
		eng:     eng,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     log,
		printer: pp.New(),
	}
}

// Run reads and executes input until \quit or end of input.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Prolog interpreter. \\help for help, \\quit to exit.")
	for {
		fmt.Fprint(r.out, prompt)
		line, ok := r.readLine()
		if !ok {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		if strings.HasPrefix(s, "\\") {
			if quit := r.command(s); quit {
				return nil
			}
			continue
		}
		r.runQuery(ctx, s)
	}
}

func (r *REPL) readLine() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return r.in.Text(), true
}

// command executes one backslash command; true means quit.
func (r *REPL) command(s string) bool {
	switch s {
	case "\\quit":
		return true
	case "\\help":
		fmt.Fprintln(r.out, "Commands:")
		fmt.Fprintln(r.out, "  \\help      show this help")
		fmt.Fprintln(r.out, "  \\quit      exit")
		fmt.Fprintln(r.out, "  \\listing   list loaded predicates")
		fmt.Fprintln(r.out, "  \\builtins  list builtin predicates")
		fmt.Fprintln(r.out, "Queries end with '.'; after a solution, ';' asks for the next one.")
	case "\\listing":
		preds := r.eng.ListPredicates()
		if len(preds) == 0 {
			fmt.Fprintln(r.out, "no predicates loaded.")
			break
		}
		for _, p := range preds {
			fmt.Fprintf(r.out, "  %s\n", p)
		}
	case "\\builtins":
		for _, d := range r.eng.Builtins().List() {
			fmt.Fprintf(r.out, "  %s/%d  %s\n", d.Name, d.Arity, d.Description)
		}
	default:
		fmt.Fprintf(r.out, "unknown command %s; \\help lists the available ones.\n", s)
	}
	return false
}

// runQuery parses src, proves it, and walks solutions at the user's
// pace.
func (r *REPL) runQuery(ctx context.Context, src string) {
	if !strings.HasSuffix(src, ".") {
		src += "."
	}
	goals, vars, err := parseQuery(src)
	if err != nil {
		r.log.WithError(err).Debug("query rejected")
		fmt.Fprintf(r.out, "%v\n", err)
		return
	}

	sols := r.eng.Query(ctx, goals)
	defer sols.Stop()

	count := 0
	for {
		sol, ok := sols.Next()
		if !ok {
			break
		}
		count++
		fmt.Fprintln(r.out, r.formatSolution(sol, vars))
		if !r.askForMore() {
			return
		}
	}
	if count == 0 {
		fmt.Fprintln(r.out, "no.")
	}
}

func parseQuery(src string) ([]*term.Compound, []*term.Variable, error) {
	p, err := parse.NewParser(src)
	if err != nil {
		return nil, nil, err
	}
	return p.ParseQuery()
}

// formatSolution projects the environment through the query's named
// variables, in order of first appearance.
func (r *REPL) formatSolution(sol *engine.Solution, vars []*term.Variable) string {
	if len(vars) == 0 {
		return "yes"
	}
	parts := make([]string, 0, len(vars))
	for _, v := range vars {
		if bound, ok := sol.Get(v); ok {
			parts = append(parts, fmt.Sprintf("%s = %s", v.Name, r.printer.Format(bound, sol.Env())))
		}
	}
	if len(parts) == 0 {
		return "yes"
	}
	return strings.Join(parts, ", ")
}

// askForMore reads the user's verdict after a solution: ';' requests
// the next one, anything else stops.
func (r *REPL) askForMore() bool {
	fmt.Fprint(r.out, "; for more, anything else to stop > ")
	line, ok := r.readLine()
	if !ok {
		return false
	}
	return strings.TrimSpace(line) == ";"
}
