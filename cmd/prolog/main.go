// Command prolog runs the interpreter: consult an optional source
// file, then start the interactive toplevel.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-prolog/engine/internal/applog"
	"github.com/go-prolog/engine/internal/engine"
	"github.com/go-prolog/engine/internal/loader"
	"github.com/go-prolog/engine/internal/repl"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		occursCheck     bool
		trace           bool
		maxDepth        int
		maxChoicePoints int
	)

	cmd := &cobra.Command{
		Use:     "prolog [file.pl]",
		Short:   "A Prolog interpreter",
		Long:    "A Prolog interpreter: SLD resolution with backtracking,\nfirst-argument indexing, and an arithmetic evaluator.",
		Args:    cobra.MaximumNArgs(1),
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := applog.New(cmd.ErrOrStderr(), trace)

			cfg := engine.Config{
				OccursCheck:     occursCheck,
				MaxDepth:        maxDepth,
				MaxChoicePoints: maxChoicePoints,
			}
			if trace {
				cfg.Tracer = log
			}
			eng := engine.NewEngine(cfg)

			if len(args) == 1 {
				if err := loader.Consult(args[0], eng); err != nil {
					log.WithField("path", args[0]).Error(err)
					return err
				}
				log.WithField("path", args[0]).Info("consulted")
			}

			return repl.New(eng, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run(context.Background())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&occursCheck, "occurs-check", false, "enable the occurs-check during unification")
	cmd.Flags().BoolVar(&trace, "trace", false, "log resolver events (goal calls, clause tries)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", engine.DefaultMaxDepth, "declared resolution depth limit")
	cmd.Flags().IntVar(&maxChoicePoints, "max-choice-points", engine.DefaultMaxChoicePoints, "declared choice point limit")

	return cmd
}
