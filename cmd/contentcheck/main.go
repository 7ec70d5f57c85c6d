// contentcheck - Front-matter validation for site content collections
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/contentcheck

package main

import (
	"os"

	"github.com/ariel-frischer/contentcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
