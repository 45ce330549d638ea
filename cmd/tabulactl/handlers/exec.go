package handlers

import (
	"fmt"

	"github.com/concave-dev/tabula/cmd/tabulactl/config"
	"github.com/concave-dev/tabula/cmd/tabulactl/display"
	"github.com/concave-dev/tabula/cmd/tabulactl/utils"
	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/runner"
	"github.com/concave-dev/tabula/internal/table"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

// HandleExec handles the exec command: run the command, project its output
// and print it, once or in watch mode.
func HandleExec(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	mode, err := table.ParseMode(config.Exec.Parse)
	if err != nil {
		logging.Error("%v", err)
		return err
	}

	cli := &runner.Runner{
		Binary:  config.Exec.Binary,
		Timeout: config.Exec.Timeout,
	}
	commandLine := cli.Command(commandLineFromArgs(args))
	opts := runner.Options{
		FailOK:      config.Exec.FailOK,
		MergeStderr: config.Exec.MergeStderr,
	}

	runOnce := func() error {
		logging.Info("Executing: %s", commandLine)

		res, err := cli.Run(cmd.Context(), commandLine, opts)
		if err != nil {
			if failed, ok := runner.IsCommandFailed(err); ok {
				display.DisplayCommandFailure(failed)
				return fmt.Errorf("command exited with status %d", failed.ExitCode)
			}
			logging.Error("Failed to execute command: %v", err)
			return err
		}

		projection := table.Project(res.Stdout, mode)
		display.DisplayExecResult(res, projection)
		if !config.Exec.Watch {
			logging.Success("Command exited %d, %d items parsed (%s mode)",
				res.ExitCode, projection.Count(), projection.Mode)
		}
		return nil
	}

	return utils.RunWithWatch(runOnce, config.Exec.Watch)
}

// commandLineFromArgs keeps a single argument as a command line to be
// tokenized, and re-quotes several arguments so their word boundaries
// survive tokenization.
func commandLineFromArgs(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return shellquote.Join(args...)
}
