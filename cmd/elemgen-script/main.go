// Command elemgen-script is the entry point wired to a package script such
// as "npm run generate". The script name already stands for the generate
// command, so arguments start at the element.
package main

import (
	"os"

	"github.com/elemgen-labs/elemgen/internal/cli"
	"github.com/elemgen-labs/elemgen/internal/dispatch"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(dispatch.ModeScript, version, commit, date); err != nil {
		os.Exit(1)
	}
}
