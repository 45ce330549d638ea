package commands

import (
	"time"

	"github.com/spf13/cobra"
)

// Scenario command group
var scenarioCmd = &cobra.Command{
	Use:     "scenario",
	Aliases: []string{"scenarios"},
	Short:   "Run YAML functional test scenarios",
	Long: `Functional test scenarios drive a cloud CLI through a sequence of
commands, parse each command's table output, and check it against
expectations. Values captured from one step feed later steps through
{{ .name }} templates, and cleanup steps always run.`,
}

// Scenario run command
var scenarioRunCmd = &cobra.Command{
	Use:   "run <file|dir>...",
	Short: "Run scenarios from files or directories",
	Long: `Run every scenario found in the given files and directories.
Directories are searched recursively for *.yaml and *.yml files.

Scenarios run in parallel (--parallel); steps within a scenario run in
order and a failing step stops its scenario. The command exits non-zero
if any scenario fails.`,
	Example: `  # Run a directory of scenarios
  tabulactl scenario run ./scenarios

  # Run one file serially, stopping at the first failure
  tabulactl scenario run --parallel 1 --fail-fast server.yaml

  # Machine-readable report
  tabulactl scenario run -o json ./scenarios > report.json`,
	Args: cobra.MinimumNArgs(1),
}

// GetScenarioCommands returns scenario commands for handler assignment
func GetScenarioCommands() (*cobra.Command, *cobra.Command) {
	return scenarioCmd, scenarioRunCmd
}

// SetupScenarioFlags configures flags for the scenario run command
func SetupScenarioFlags(runCmd *cobra.Command, binaryPtr *string, parallelPtr *int,
	failFastPtr *bool, commandTimeoutPtr *time.Duration, defaultBinary string, defaultParallel int) {
	runCmd.Flags().StringVar(binaryPtr, "binary", defaultBinary,
		"CLI used by scenarios that do not name one")
	runCmd.Flags().IntVarP(parallelPtr, "parallel", "j", defaultParallel,
		"Number of scenarios to run at once")
	runCmd.Flags().BoolVar(failFastPtr, "fail-fast", false,
		"Skip remaining scenarios after the first failure")
	runCmd.Flags().DurationVar(commandTimeoutPtr, "command-timeout", 0,
		"Kill any single step after this long (0 means no limit)")
}
