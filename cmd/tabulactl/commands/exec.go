package commands

import (
	"time"

	"github.com/spf13/cobra"
)

// Exec command
var execCmd = &cobra.Command{
	Use:   "exec <command line>",
	Short: "Run a CLI command and parse its output",
	Long: `Run a command without a shell and print its output, optionally
parsed into records.

A single argument is tokenized with POSIX shell quoting rules; several
arguments (usually after "--") are taken as already split words. With
--binary the command line is appended to that executable, so
"--binary openstack server list" runs "openstack server list".

A non-zero exit fails the command and prints the exit code and stderr,
unless --fail-ok is set.`,
	Example: `  # Parse a listing into JSON records
  tabulactl exec --parse list -o json -- openstack server list

  # Same, with the CLI as binary and a quoted command line
  tabulactl exec --binary openstack --parse show "server show 'web 1'"

  # Expect a failure and capture its message
  tabulactl exec --fail-ok --merge-stderr -- openstack server show missing

  # Watch a server converge
  tabulactl exec --watch --parse list -- openstack server list --name web`,
	Args: cobra.MinimumNArgs(1),
}

// GetExecCommand returns the exec command for handler assignment
func GetExecCommand() *cobra.Command {
	return execCmd
}

// SetupExecFlags configures flags for the exec command
func SetupExecFlags(cmd *cobra.Command, binaryPtr *string, failOKPtr *bool, mergeStderrPtr *bool,
	parsePtr *string, timeoutPtr *time.Duration, watchPtr *bool) {
	cmd.Flags().StringVar(binaryPtr, "binary", "",
		"Executable prefixed to the command line (e.g. openstack)")
	cmd.Flags().BoolVar(failOKPtr, "fail-ok", false,
		"Print output instead of failing when the command exits non-zero")
	cmd.Flags().BoolVar(mergeStderrPtr, "merge-stderr", false,
		"Capture stderr together with stdout")
	cmd.Flags().StringVarP(parsePtr, "parse", "p", "raw",
		"Projection mode for the output: raw, table, list, show, fields")
	cmd.Flags().DurationVar(timeoutPtr, "command-timeout", 0,
		"Kill the command after this long (0 means no limit)")
	cmd.Flags().BoolVarP(watchPtr, "watch", "w", false,
		"Re-run every 2 seconds until interrupted")

	// Everything after the first word belongs to the executed command
	cmd.Flags().SetInterspersed(false)
}
