package main

import (
	"os"

	"github.com/slserpent/flac-directory/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cmd.IsReportedError(err) {
			cmd.EmitUnhandledError(os.Stderr, err)
		}
		os.Exit(1)
	}
}
