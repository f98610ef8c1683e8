package main

import (
	"fmt"
	"os"

	"github.com/mblasco/sixshift/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands print their own user-facing error output; this line
		// carries the terse summary and the exit code.
		fmt.Fprintf(os.Stderr, "sixshift: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
