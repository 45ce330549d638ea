// Package commands provides the command tree for tabulactl.
//
// COMMAND STRUCTURE:
//   - parse: turn boxed CLI output into records, locally or through tabulad
//   - render: turn records back into boxed tables
//   - exec: run a CLI command and project its output
//   - scenario run: execute YAML functional test scenarios
//   - info: show tabulad status
//
// Commands only declare usage and flags; RunE functions live in the
// handlers package and are wired by main.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "tabulactl",
	Short: "Parse, render and test boxed CLI table output",
	Long: `Tabula CLI (tabulactl) turns the ASCII box tables printed by cloud
CLIs into structured records, runs CLI commands and parses what they print,
and executes YAML functional test scenarios built from those pieces.

Global flags may also be set in ~/.tabula/config.yaml (or --config) and
through TABULA_* environment variables, e.g. TABULA_API=10.0.0.5:8008.`,
	SilenceUsage: true,
	Example: `  # Parse a saved listing into JSON records
  openstack server list | tabulactl parse --mode list -o json

  # Run a command and show its fields as YAML
  tabulactl exec --parse show -o yaml -- openstack server show web-1

  # Run functional test scenarios four at a time
  tabulactl scenario run ./scenarios --parallel 4

  # Check the tabula daemon
  tabulactl --api=10.0.0.5:8008 info`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(parseCmd)
	RootCmd.AddCommand(renderCmd)
	RootCmd.AddCommand(execCmd)
	RootCmd.AddCommand(infoCmd)
	RootCmd.AddCommand(scenarioCmd)
	scenarioCmd.AddCommand(scenarioRunCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, apiAddrPtr *string, logLevelPtr *string,
	timeoutPtr *int, verbosePtr *bool, outputPtr *string, configPtr *string, defaultAPIAddr string) {
	rootCmd.PersistentFlags().StringVar(apiAddrPtr, "api", defaultAPIAddr,
		"tabulad API address (host:port)")
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", 8,
		"Connection timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(configPtr, "config", "",
		"Config file (default $HOME/.tabula/config.yaml)")
}
