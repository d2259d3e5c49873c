// Command uscp-print loads a JSON report written by uscp-solve and
// renders a human-readable summary table, a separate program from the
// solver itself, mirroring the reference implementation's own printer
// being a distinct executable.
package main

import (
	"os"

	"github.com/ToluPeazy/uscp/internal/xlog"
)

func main() {
	defer func() { _ = xlog.Sync() }()

	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
