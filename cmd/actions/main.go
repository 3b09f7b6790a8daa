package main

import (
	"fmt"
	"os"

	"github.com/hbjs97/actions/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if !cli.Notified(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(int(cli.MapExitCode(err)))
	}
}
