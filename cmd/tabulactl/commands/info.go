package commands

import (
	"github.com/spf13/cobra"
)

// Info command (daemon information)
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show tabula daemon status",
	Long: `Show the status, version, uptime and supported parse modes of the
tabula daemon at --api.`,
	Example: `  # Local daemon
  tabulactl info

  # Remote daemon, JSON output
  tabulactl --api=10.0.0.5:8008 -o json info`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetInfoCommand returns the info command for handler assignment
func GetInfoCommand() *cobra.Command {
	return infoCmd
}
