package handlers

import (
	"fmt"

	"github.com/concave-dev/tabula/cmd/tabulactl/config"
	"github.com/concave-dev/tabula/cmd/tabulactl/display"
	"github.com/concave-dev/tabula/cmd/tabulactl/utils"
	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/scenario"
	"github.com/concave-dev/tabula/internal/validate"
	"github.com/spf13/cobra"
)

// HandleScenarioRun handles the scenario run command. It returns an error,
// and so exits non-zero, when any scenario fails or is skipped.
func HandleScenarioRun(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if err := validate.ValidateField(config.Scenario.Parallel, "min=1"); err != nil {
		return fmt.Errorf("parallel must be at least 1, got: %d", config.Scenario.Parallel)
	}

	var scenarios []scenario.Scenario
	for _, path := range args {
		loaded, err := scenario.LoadScenarios(path)
		if err != nil {
			logging.Error("Failed to load scenarios: %v", err)
			return err
		}
		scenarios = append(scenarios, loaded...)
	}
	logging.Info("Loaded %d scenarios from %d paths", len(scenarios), len(args))

	runner := scenario.NewRunner(scenario.Config{
		Binary:         config.Scenario.Binary,
		Parallelism:    config.Scenario.Parallel,
		FailFast:       config.Scenario.FailFast,
		CommandTimeout: config.Scenario.CommandTimeout,
	})

	report, err := runner.RunAll(cmd.Context(), scenarios)
	if report != nil {
		display.DisplayReport(report)
	}
	if err != nil {
		return err
	}

	if !report.OK() {
		return fmt.Errorf("%d of %d scenarios did not pass", report.Failed+report.Skipped, len(report.Scenarios))
	}
	logging.Success("All %d scenarios passed", report.Passed)
	return nil
}
