// Command btime inspects Q64.64 fixed-point values, binary timestamps and
// durations.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/binarytime/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if !cli.Reported(err) {
			fmt.Fprintln(os.Stderr, "btime:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
