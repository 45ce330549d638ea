// Package commands provides the CLI command structure for the tabula daemon.
//
// tabulad has a single root command. Flags configure the HTTP listener and
// logging; PreRunE validates them before the daemon binds anything.
//
// STARTUP PIPELINE:
//   - Logo display
//   - Explicit flag detection (--api, --log-file)
//   - Optional log file redirection
//   - Environment overrides (DEBUG, TABULAD_API)
//   - Configuration validation
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/concave-dev/tabula/cmd/tabulad/config"
	"github.com/concave-dev/tabula/cmd/tabulad/daemon"
	"github.com/concave-dev/tabula/cmd/tabulad/utils"
	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/version"
	"github.com/spf13/cobra"
)

// Global variable to track log file handle for cleanup
var logFileHandle *os.File

// CleanupLogFile closes the log file handle if it exists
func CleanupLogFile() {
	if logFileHandle != nil {
		if err := logFileHandle.Close(); err != nil {
			// Logging may point at the file being closed
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		logFileHandle = nil
	}
}

// Root command for the tabula daemon
var RootCmd = &cobra.Command{
	Use:   "tabulad",
	Short: "HTTP service that parses boxed CLI tables into records",
	Long: `Tabula daemon (tabulad) serves the tabula table parser over HTTP.

Post raw CLI output to /api/v1/parse and receive records, a single field
object, or the parsed table as JSON. /api/v1/render turns records back into
boxed tables, and /metrics exposes Prometheus metrics.`,
	Version:      version.TabuladVersion,
	SilenceUsage: true, // Don't show usage on errors
	Example: `  # Start on the default loopback address
  tabulad

  # Listen on all interfaces with debug logging
  tabulad --api=0.0.0.0:8008 --log-level=debug

  # Log to a file
  tabulad --log-file=/var/log/tabula/tabulad.log`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Display logo first, before any validation or logging
		utils.DisplayLogo(version.TabuladVersion)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Check which flags were explicitly set by user
		CheckExplicitFlags(cmd)

		// Setup log file redirection if --log-file was specified
		if config.Global.IsExplicitlySet(config.LogFileField) && config.Global.LogFile != "" {
			logDir := filepath.Dir(config.Global.LogFile)
			if err := os.MkdirAll(logDir, 0755); err != nil {
				return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
			}

			var err error
			logFileHandle, err = os.OpenFile(config.Global.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file %s: %w", config.Global.LogFile, err)
			}

			// Redirect all logging to the file
			logging.SetOutput(logFileHandle)
		}

		// Configure level before InitializeConfig so its INFO lines respect --log-level
		logging.SetLevel(config.Global.LogLevel)
		config.InitializeConfig()
		// Re-apply in case DEBUG=true changed the level
		logging.SetLevel(config.Global.LogLevel)

		// net/http reports connection-level errors through the standard logger
		logging.RedirectStandardLog(logging.NewLevelWriter("WARN", "http"))

		if err := config.ValidateConfig(); err != nil {
			CleanupLogFile()
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer CleanupLogFile()
		return daemon.Run()
	},
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	SetupFlags(RootCmd)
}
