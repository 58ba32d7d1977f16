// Package output provides terminal output formatting utilities for the
// agmigrate CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
)

// DryRunPrefix marks log lines for actions that were simulated, not performed.
const DryRunPrefix = "[DRY RUN] "

// Logger prints migration status lines. When DryRun is set, lines logged
// through Action carry the simulated prefix; Info lines never do.
type Logger struct {
	Out    io.Writer
	DryRun bool
}

// NewLogger returns a Logger writing to out. A nil out defaults to stdout.
func NewLogger(out io.Writer, dryRun bool) *Logger {
	if out == nil {
		out = os.Stdout
	}
	return &Logger{Out: out, DryRun: dryRun}
}

// Action logs a mutating action. In dry-run mode the line is prefixed to
// show the action was skipped.
func (l *Logger) Action(format string, args ...interface{}) {
	if l.DryRun {
		fmt.Fprintf(l.Out, DryRunPrefix+format+"\n", args...)
		return
	}
	fmt.Fprintf(l.Out, format+"\n", args...)
}

// Info logs a read-only observation (skip notices, status lines). These are
// printed identically in dry-run and normal mode.
func (l *Logger) Info(format string, args ...interface{}) {
	fmt.Fprintf(l.Out, format+"\n", args...)
}
