// Package main provides the entry point for the tabula CLI tool (tabulactl).
//
// tabulactl parses the ASCII box tables printed by cloud CLIs, runs CLI
// commands and projects their output, and executes YAML functional test
// scenarios. It can also hand parsing to a remote tabulad.
//
// INITIALIZATION FLOW:
// 1. Command structure setup
// 2. Global and per-command flag configuration
// 3. Handler assignment linking commands to their RunE functions
// 4. Config file/environment layering and validation in PersistentPreRunE
// 5. Execution under a context cancelled by SIGINT/SIGTERM
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/concave-dev/tabula/cmd/tabulactl/commands"
	"github.com/concave-dev/tabula/cmd/tabulactl/config"
	"github.com/concave-dev/tabula/cmd/tabulactl/handlers"
	configDefaults "github.com/concave-dev/tabula/internal/config"
)

func init() {
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	commands.SetupCommands()

	commands.SetupGlobalFlags(rootCmd, &config.Global.APIAddr, &config.Global.LogLevel,
		&config.Global.Timeout, &config.Global.Verbose, &config.Global.Output,
		&config.Global.ConfigFile, config.DefaultAPIAddr)

	commands.SetupParseFlags(commands.GetParseCommand(), &config.Parse.Mode, &config.Parse.Remote)
	commands.SetupRenderFlags(commands.GetRenderCommand(), &config.Render.Mode, &config.Render.Remote)
	commands.SetupExecFlags(commands.GetExecCommand(), &config.Exec.Binary, &config.Exec.FailOK,
		&config.Exec.MergeStderr, &config.Exec.Parse, &config.Exec.Timeout, &config.Exec.Watch)

	_, scenarioRunCmd := commands.GetScenarioCommands()
	commands.SetupScenarioFlags(scenarioRunCmd, &config.Scenario.Binary, &config.Scenario.Parallel,
		&config.Scenario.FailFast, &config.Scenario.CommandTimeout,
		configDefaults.DefaultBinary, configDefaults.DefaultParallelism)

	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	commands.GetParseCommand().RunE = handlers.HandleParse
	commands.GetRenderCommand().RunE = handlers.HandleRender
	commands.GetExecCommand().RunE = handlers.HandleExec
	commands.GetInfoCommand().RunE = handlers.HandleInfo

	_, scenarioRunCmd := commands.GetScenarioCommands()
	scenarioRunCmd.RunE = handlers.HandleScenarioRun
}

// main is the main entry point
func main() {
	// Interrupts cancel running commands; scenario cleanup still runs
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.RootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
