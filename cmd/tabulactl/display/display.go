// Package display provides output formatting and display functions for tabulactl.
//
// Every command result is printed in the format selected by --output:
//   - table: box tables for parsed output (the CLI's own layout), rounded
//     go-pretty tables for reports and status
//   - json: indented JSON of the bare data
//   - yaml: YAML of the bare data, keys in their original order
//
// Display functions write to Out so tests can capture them, and leave
// progress and diagnostics to the logging package.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/concave-dev/tabula/cmd/tabulactl/client"
	"github.com/concave-dev/tabula/cmd/tabulactl/config"
	"github.com/concave-dev/tabula/cmd/tabulactl/utils"
	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/runner"
	"github.com/concave-dev/tabula/internal/scenario"
	"github.com/concave-dev/tabula/internal/table"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Out receives all command output.
var Out io.Writer = os.Stdout

// Structured writes v as JSON or YAML per --output. It returns false in
// table mode so callers can render their own layout.
func Structured(v any) bool {
	switch config.Global.Output {
	case "json":
		encoder := json.NewEncoder(Out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			logging.Error("Failed to encode JSON: %v", err)
			fmt.Fprintln(Out, "Error encoding JSON output")
		}
		return true
	case "yaml":
		encoder := yaml.NewEncoder(Out)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			logging.Error("Failed to encode YAML: %v", err)
			fmt.Fprintln(Out, "Error encoding YAML output")
		}
		encoder.Close()
		return true
	}
	return false
}

// DisplayProjection prints parsed CLI output. In table mode the projection
// is rendered back into the CLI's box layout, which normalizes column
// widths; raw output is printed untouched.
func DisplayProjection(p table.Projection) {
	if Structured(p.Data()) {
		return
	}

	if p.Count() == 0 && p.Mode != table.ModeRaw {
		fmt.Fprintln(Out, "No rows found")
		return
	}
	fmt.Fprint(Out, p.Render())
}

// DisplayRendered prints table text produced by the renderer.
func DisplayRendered(rendered string) {
	if Structured(map[string]string{"table": rendered}) {
		return
	}
	fmt.Fprint(Out, rendered)
}

// execOutput is the structured form of an exec result.
type execOutput struct {
	runner.Result `yaml:",inline"`
	Mode          table.Mode `json:"mode" yaml:"mode"`
	Data          any        `json:"data" yaml:"data"`
}

// DisplayExecResult prints a command's projected output. In verbose table
// mode a summary line with the exit code, duration and captured size
// follows.
func DisplayExecResult(res *runner.Result, p table.Projection) {
	if Structured(execOutput{Result: *res, Mode: p.Mode, Data: p.Data()}) {
		return
	}

	DisplayProjection(p)
	if config.Global.Verbose {
		fmt.Fprintf(Out, "\n%s exit=%d duration=%s captured=%s\n",
			text.FgHiBlue.Sprint("Command finished:"), res.ExitCode,
			utils.FormatDuration(res.Duration), utils.FormatBytes(len(res.Stdout)+len(res.Stderr)))
	}
}

// DisplayCommandFailure prints the details of a failed CLI invocation.
func DisplayCommandFailure(failed *runner.CommandFailedError) {
	if Structured(map[string]any{
		"command":   failed.Command,
		"exit_code": failed.ExitCode,
		"stdout":    failed.Stdout,
		"stderr":    failed.Stderr,
	}) {
		return
	}

	fmt.Fprintf(Out, "%s %s\n", text.FgRed.Sprint("Command failed:"), failed.Command)
	fmt.Fprintf(Out, "Exit code: %d\n", failed.ExitCode)
	if stderr := strings.TrimSpace(failed.Stderr); stderr != "" {
		fmt.Fprintf(Out, "Stderr:\n%s\n", stderr)
	}
}

// DisplayHealth prints tabulad's health.
func DisplayHealth(addr string, h *client.Health) {
	if Structured(h) {
		return
	}

	t := newTable()
	t.AppendRows([]prettytable.Row{
		{"API", addr},
		{"Status", statusText(h.Status == "healthy", h.Status)},
		{"Version", h.Version},
		{"Uptime", h.Uptime},
		{"Modes", strings.Join(h.Modes, ", ")},
	})
	t.Render()
}

// DisplayReport prints a scenario run. Failed steps are listed below the
// summary table; --verbose lists every step.
func DisplayReport(report *scenario.Report) {
	if Structured(report) {
		return
	}

	t := newTable()
	t.SetTitle("Run %s", report.RunID)
	t.AppendHeader(prettytable.Row{"SCENARIO", "RESULT", "STEPS", "DURATION"})
	for _, sc := range report.Scenarios {
		t.AppendRow(prettytable.Row{
			sc.Name, scenarioVerdict(sc), fmt.Sprintf("%d/%d", passedSteps(sc.Steps), len(sc.Steps)),
			utils.FormatDuration(sc.Duration),
		})
	}
	t.AppendFooter(prettytable.Row{
		"TOTAL",
		fmt.Sprintf("%d passed, %d failed, %d skipped", report.Passed, report.Failed, report.Skipped),
		"", utils.FormatDuration(report.Duration),
	})
	t.Render()

	for _, sc := range report.Scenarios {
		displayScenarioSteps(sc)
	}
}

func displayScenarioSteps(sc scenario.ScenarioResult) {
	steps := append(append([]scenario.StepResult{}, sc.Steps...), sc.Cleanup...)
	shown := false
	for _, st := range steps {
		if st.Passed && !config.Global.Verbose {
			continue
		}
		if !shown {
			fmt.Fprintf(Out, "\n%s\n", text.Bold.Sprint(sc.Name))
			shown = true
		}
		fmt.Fprintf(Out, "  %s [%s] %s (%s)\n",
			statusText(st.Passed, passFail(st.Passed)), st.Phase, st.Name, utils.FormatDuration(st.Duration))
		if config.Global.Verbose && st.Command != "" {
			fmt.Fprintf(Out, "      $ %s\n", st.Command)
		}
		if st.Error != "" {
			for _, line := range strings.Split(st.Error, "\n") {
				fmt.Fprintf(Out, "      %s\n", line)
			}
		}
	}
	if sc.Error != "" && !shown {
		fmt.Fprintf(Out, "\n%s\n  %s\n", text.Bold.Sprint(sc.Name), sc.Error)
	}
}

func newTable() prettytable.Writer {
	t := prettytable.NewWriter()
	t.SetOutputMirror(Out)
	t.SetStyle(prettytable.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault
	t.Style().Title.Format = text.FormatDefault
	return t
}

func scenarioVerdict(sc scenario.ScenarioResult) string {
	if sc.Skipped {
		return text.FgYellow.Sprint("SKIP")
	}
	return statusText(sc.Passed, passFail(sc.Passed))
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

func statusText(ok bool, s string) string {
	if ok {
		return text.FgGreen.Sprint(s)
	}
	return text.FgRed.Sprint(s)
}

func passedSteps(steps []scenario.StepResult) int {
	n := 0
	for _, st := range steps {
		if st.Passed {
			n++
		}
	}
	return n
}
