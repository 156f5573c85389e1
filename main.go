package main

import (
	"os"

	"github.com/elemgen-labs/elemgen/internal/cli"
	"github.com/elemgen-labs/elemgen/internal/dispatch"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(dispatch.ModeDirect, version, commit, date); err != nil {
		os.Exit(1)
	}
}
