package main

import (
	"os"

	"github.com/Wagomu056/time-tracker-core/cli"
)

var version = "1.0.0"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
