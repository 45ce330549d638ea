// Package commands contains Cobra CLI command definitions for tabulad.
package commands

import (
	"github.com/concave-dev/tabula/cmd/tabulad/config"
	"github.com/spf13/cobra"
)

// SetupFlags configures all command line flags for the daemon
func SetupFlags(cmd *cobra.Command) {
	// API flags
	cmd.Flags().StringVar(&config.Global.APIAddr, "api", config.DefaultAPI,
		"Address and port for HTTP API server (e.g., "+config.DefaultAPI+")\n"+
			"If not specified, defaults to "+config.DefaultAPI)
	cmd.Flags().Int64Var(&config.Global.MaxBodyBytes, "max-body", config.DefaultMaxBodyBytes,
		"Largest accepted request body in bytes")

	// Operational flags
	cmd.Flags().DurationVar(&config.Global.ShutdownTimeout, "shutdown-timeout", config.DefaultShutdownTimeout,
		"Time allowed for in-flight requests to finish on shutdown")
	cmd.Flags().StringVar(&config.Global.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	cmd.Flags().StringVar(&config.Global.LogFile, "log-file", "",
		"Write all logs to this file instead of stdout/stderr (appends, creates parent dirs)")
}

// CheckExplicitFlags checks if flags were explicitly set by the user
func CheckExplicitFlags(cmd *cobra.Command) {
	config.Global.SetExplicitlySet(config.APIAddrField, cmd.Flags().Changed("api"))
	config.Global.SetExplicitlySet(config.LogFileField, cmd.Flags().Changed("log-file"))
}
