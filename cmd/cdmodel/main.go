// Package main is the entry point for the cdmodel CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jvreagan/codedeploy-model/cmd/cdmodel/cmd"
)

// Version information (set via ldflags during build)
var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
