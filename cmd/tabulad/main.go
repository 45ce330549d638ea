// Package main implements the tabula daemon (tabulad).
// tabulad exposes the table parser and renderer over HTTP so remote test
// agents can post raw CLI output and receive structured records.
package main

import (
	"os"

	"github.com/concave-dev/tabula/cmd/tabulad/commands"
)

// Main entry point
func main() {
	commands.SetupCommands()
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
