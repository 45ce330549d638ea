package commands

import (
	"github.com/spf13/cobra"
)

// Parse command
var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse boxed CLI table output",
	Long: `Parse the ASCII box table printed by a cloud CLI into structured data.

Input is read from the named file, or from stdin when the file is omitted
or "-". Modes:
  table   headers and rows as parsed
  list    one record per row, keyed by column header
  show    a Field/Value table merged into one object
  fields  a Field/Value table as one single-entry record per row
  raw     the input unchanged`,
	Example: `  # Records from a listing
  openstack server list | tabulactl parse --mode list -o json

  # One object from a show table
  tabulactl parse --mode show server-show.txt

  # Parse through a remote tabula daemon
  tabulactl --api=10.0.0.5:8008 parse --remote --mode list listing.txt`,
	Args: cobra.MaximumNArgs(1),
}

// GetParseCommand returns the parse command for handler assignment
func GetParseCommand() *cobra.Command {
	return parseCmd
}

// SetupParseFlags configures flags for the parse command
func SetupParseFlags(cmd *cobra.Command, modePtr *string, remotePtr *bool) {
	cmd.Flags().StringVarP(modePtr, "mode", "m", "table",
		"Projection mode: table, list, show, fields, raw")
	cmd.Flags().BoolVar(remotePtr, "remote", false,
		"Parse through tabulad at --api instead of locally")
}
