// Command uscp-solve is the CLI driver: it loads one or more USCP
// instances, runs the requested combination of greedy, RWLS, and
// memetic algorithms against each, and writes a JSON report per run
// under --output_prefix.
package main

import (
	"os"

	"github.com/ToluPeazy/uscp/internal/xlog"
)

func main() {
	defer func() { _ = xlog.Sync() }()

	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
