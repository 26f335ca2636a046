// Package main is the entry point for the droplet command line client.
package main

import (
	"os"

	"github.com/quotedroplet/droplet/internal/adapters/cli"
)

// Build-time variables, injected via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(cli.Execute(Version, Commit, BuildTime))
}
