// Package applog configures the interpreter's structured logger. The
// CLI and REPL log through logrus; the resolver attaches a logger only
// when tracing is requested, so the hot path carries no logging cost
// by default.
package applog

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing human-readable lines to out. With trace
// enabled the level drops to Debug, which is the level every resolver
// trace event (goal call, clause try, fail) is emitted at.
func New(out io.Writer, trace bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if trace {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
