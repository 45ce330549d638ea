package commands

import (
	"github.com/spf13/cobra"
)

// Render command
var renderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Render records as a boxed table",
	Long: `Render structured data back into the CLI's ASCII box table layout.

Input is JSON or YAML read from the named file or stdin:
  list   an array of records (objects with string values)
  show   one record, or an array merged into one, rendered as Field/Value
  table  an object with "headers" and "values"`,
	Example: `  # Round-trip a listing
  tabulactl parse --mode list -o json listing.txt | tabulactl render --mode list

  # Build an expected show table fixture
  echo '{"name": "web-1", "status": "ACTIVE"}' | tabulactl render --mode show`,
	Args: cobra.MaximumNArgs(1),
}

// GetRenderCommand returns the render command for handler assignment
func GetRenderCommand() *cobra.Command {
	return renderCmd
}

// SetupRenderFlags configures flags for the render command
func SetupRenderFlags(cmd *cobra.Command, modePtr *string, remotePtr *bool) {
	cmd.Flags().StringVarP(modePtr, "mode", "m", "list",
		"Input shape: list, show, table")
	cmd.Flags().BoolVar(remotePtr, "remote", false,
		"Render through tabulad at --api instead of locally")
}
