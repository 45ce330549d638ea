// Package scenario runs functional tests against a cloud CLI: each step
// executes a CLI command, projects its table output into records and checks
// expectations on them.
//
// SCENARIO FILES:
// Scenarios are YAML documents loaded with LoadScenarios. Steps run in order
// and share a variable map; command lines are Go templates (with sprig
// functions) rendered against that map, and `capture` copies fields of a
// step's output into it for later steps:
//
//	name: server-lifecycle
//	vars:
//	  flavor: m1.tiny
//	steps:
//	  - name: create
//	    command: server create --flavor {{ .flavor }} {{ .name }}
//	    parse: show
//	    capture: {server_id: id}
//	    expect:
//	      fields: {status: ACTIVE}
//	cleanup:
//	  - name: delete
//	    command: server delete {{ .server_id }}
//
// Every scenario starts with run_id (the run's short ID), scenario (its
// name) and name (a readable resource name such as "tabula-brisk-falcon",
// distinct across the scenarios of one run). Entries in vars override them.
//
// EXECUTION MODEL:
//   - Steps within a scenario are sequential; the first failing step stops it
//   - Cleanup steps always run, even after failure or cancellation
//   - Scenarios run concurrently up to a configurable limit
package scenario

import (
	"time"

	"github.com/concave-dev/tabula/internal/table"
)

// Scenario is one functional test loaded from YAML.
type Scenario struct {
	Name        string            `yaml:"name" json:"name" validate:"required"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Binary      string            `yaml:"binary,omitempty" json:"binary,omitempty"`
	Vars        map[string]string `yaml:"vars,omitempty" json:"vars,omitempty" validate:"dive,keys,varname,endkeys"`
	Steps       []Step            `yaml:"steps" json:"steps" validate:"required,min=1,dive"`
	Cleanup     []Step            `yaml:"cleanup,omitempty" json:"cleanup,omitempty" validate:"dive"`

	// Path is the file the scenario was loaded from.
	Path string `yaml:"-" json:"path,omitempty"`
}

// Step is a single CLI invocation plus the checks applied to its output.
type Step struct {
	Name        string            `yaml:"name" json:"name" validate:"required"`
	Command     string            `yaml:"command" json:"command" validate:"required"`
	Parse       table.Mode        `yaml:"parse,omitempty" json:"parse,omitempty" validate:"omitempty,oneof=raw table list show fields"`
	FailOK      bool              `yaml:"fail_ok,omitempty" json:"fail_ok,omitempty"`
	MergeStderr bool              `yaml:"merge_stderr,omitempty" json:"merge_stderr,omitempty"`
	Capture     map[string]string `yaml:"capture,omitempty" json:"capture,omitempty" validate:"dive,keys,varname,endkeys,required"`
	Expect      *Expect           `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Expect lists the checks run against a step's projected output. Every
// populated field must hold for the step to pass.
type Expect struct {
	// Fail expects the command to exit non-zero.
	Fail bool `yaml:"fail,omitempty" json:"fail,omitempty"`

	// Count is the exact number of records.
	Count *int `yaml:"count,omitempty" json:"count,omitempty" validate:"omitempty,min=0"`

	// Contains requires some record matching every pair.
	Contains map[string]string `yaml:"contains,omitempty" json:"contains,omitempty"`

	// NotContains forbids any record matching every pair.
	NotContains map[string]string `yaml:"not_contains,omitempty" json:"not_contains,omitempty"`

	// Fields requires the show object to hold each pair.
	Fields map[string]string `yaml:"fields,omitempty" json:"fields,omitempty"`

	// Keys requires every record to have these keys.
	Keys []string `yaml:"keys,omitempty" json:"keys,omitempty"`

	// OutputContains requires each substring in the raw output.
	OutputContains []string `yaml:"output_contains,omitempty" json:"output_contains,omitempty"`
}

// Phase tells main steps and cleanup steps apart in results.
type Phase string

const (
	PhaseStep    Phase = "step"
	PhaseCleanup Phase = "cleanup"
)

// StepResult is the outcome of one executed step.
type StepResult struct {
	Name     string        `yaml:"name" json:"name"`
	Phase    Phase         `yaml:"phase" json:"phase"`
	Command  string        `yaml:"command,omitempty" json:"command,omitempty"`
	Passed   bool          `yaml:"passed" json:"passed"`
	ExitCode int           `yaml:"exit_code" json:"exit_code"`
	Error    string        `yaml:"error,omitempty" json:"error,omitempty"`
	Duration time.Duration `yaml:"duration" json:"duration"`
}

// ScenarioResult is the verdict for one scenario.
type ScenarioResult struct {
	Name     string        `yaml:"name" json:"name"`
	Path     string        `yaml:"path,omitempty" json:"path,omitempty"`
	Passed   bool          `yaml:"passed" json:"passed"`
	Skipped  bool          `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Error    string        `yaml:"error,omitempty" json:"error,omitempty"`
	Steps    []StepResult  `yaml:"steps" json:"steps"`
	Cleanup  []StepResult  `yaml:"cleanup,omitempty" json:"cleanup,omitempty"`
	Duration time.Duration `yaml:"duration" json:"duration"`
}

// Report aggregates one RunAll invocation.
type Report struct {
	RunID     string           `yaml:"run_id" json:"run_id"`
	StartedAt time.Time        `yaml:"started_at" json:"started_at"`
	Duration  time.Duration    `yaml:"duration" json:"duration"`
	Passed    int              `yaml:"passed" json:"passed"`
	Failed    int              `yaml:"failed" json:"failed"`
	Skipped   int              `yaml:"skipped" json:"skipped"`
	Scenarios []ScenarioResult `yaml:"scenarios" json:"scenarios"`
}

// OK reports whether every scenario passed.
func (r *Report) OK() bool {
	return r.Failed == 0 && r.Skipped == 0
}
