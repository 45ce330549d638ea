package scenario

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/concave-dev/tabula/internal/config"
	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/names"
	"github.com/concave-dev/tabula/internal/runner"
	"github.com/concave-dev/tabula/internal/table"
	"github.com/concave-dev/tabula/internal/utils"
	"golang.org/x/sync/errgroup"
)

// Config controls how scenarios are executed.
type Config struct {
	Binary         string        // CLI used when a scenario names none
	Parallelism    int           // Scenarios running at once; < 1 means DefaultParallelism
	FailFast       bool          // Stop starting scenarios after the first failure
	CommandTimeout time.Duration // Per-step limit; zero means none
	Dir            string        // Working directory for commands
	Env            []string      // Extra KEY=value pairs for commands
}

// ResourcePrefix starts every generated {{ .name }} value, marking
// resources created by scenario runs.
const ResourcePrefix = "tabula-"

// Runner executes scenarios. It is safe for concurrent use.
type Runner struct {
	cfg Config
}

// NewRunner creates a Runner, filling unset Config fields with defaults.
func NewRunner(cfg Config) *Runner {
	if cfg.Binary == "" {
		cfg.Binary = config.DefaultBinary
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = config.DefaultParallelism
	}
	return &Runner{cfg: cfg}
}

// RunAll runs scenarios concurrently and returns a report in input order.
// Scenario failures are recorded in the report, not returned; an error is
// returned only when ctx was cancelled by the caller.
func (r *Runner) RunAll(ctx context.Context, scenarios []Scenario) (*Report, error) {
	report := &Report{
		RunID:     utils.GenerateID(),
		StartedAt: time.Now(),
		Scenarios: make([]ScenarioResult, len(scenarios)),
	}
	logging.Info("Run %s: %d scenarios, parallelism %d",
		logging.FormatRunID(report.RunID), len(scenarios), r.cfg.Parallelism)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)

	resourceNames := names.GenerateMany(len(scenarios))

	var mu sync.Mutex
	for i, sc := range scenarios {
		g.Go(func() error {
			res := r.run(gctx, sc, report.RunID, resourceNames[i])

			mu.Lock()
			report.Scenarios[i] = res
			mu.Unlock()

			if !res.Passed && !res.Skipped && r.cfg.FailFast {
				return fmt.Errorf("scenario %q failed", sc.Name)
			}
			return nil
		})
	}
	failFastErr := g.Wait()

	for _, res := range report.Scenarios {
		switch {
		case res.Skipped:
			report.Skipped++
		case res.Passed:
			report.Passed++
		default:
			report.Failed++
		}
	}
	report.Duration = time.Since(report.StartedAt)

	if failFastErr != nil {
		logging.Warn("Run %s stopped early: %v", logging.FormatRunID(report.RunID), failFastErr)
	}
	logging.Info("Run %s finished in %v: %d passed, %d failed, %d skipped",
		logging.FormatRunID(report.RunID), report.Duration.Round(time.Millisecond),
		report.Passed, report.Failed, report.Skipped)

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("run interrupted: %w", err)
	}
	return report, nil
}

// Run executes a single scenario with a fresh run ID.
func (r *Runner) Run(ctx context.Context, sc Scenario) ScenarioResult {
	return r.run(ctx, sc, utils.GenerateID(), names.Generate())
}

func (r *Runner) run(ctx context.Context, sc Scenario, runID, resourceName string) (res ScenarioResult) {
	res = ScenarioResult{Name: sc.Name, Path: sc.Path, Steps: []StepResult{}}
	if err := ctx.Err(); err != nil {
		res.Skipped = true
		res.Error = "not started: " + err.Error()
		return res
	}

	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	binary := sc.Binary
	if binary == "" {
		binary = r.cfg.Binary
	}
	cli := &runner.Runner{
		Binary:  binary,
		Dir:     r.cfg.Dir,
		Env:     r.cfg.Env,
		Timeout: r.cfg.CommandTimeout,
	}

	vars := map[string]string{
		"run_id":   utils.TruncateID(runID),
		"scenario": sc.Name,
		"name":     ResourcePrefix + resourceName,
	}
	maps.Copy(vars, sc.Vars)

	logging.Info("Scenario %s: starting (%d steps)", sc.Name, len(sc.Steps))

	res.Passed = true
	for _, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			res.Passed = false
			res.Error = "interrupted: " + err.Error()
			break
		}

		sr := r.runStep(ctx, cli, step, PhaseStep, vars)
		res.Steps = append(res.Steps, sr)
		if !sr.Passed {
			res.Passed = false
			res.Error = fmt.Sprintf("step %q: %s", sr.Name, sr.Error)
			logging.Error("Scenario %s: step %s failed: %s", sc.Name, sr.Name, sr.Error)
			break
		}
		logging.Debug("Scenario %s: step %s passed in %v", sc.Name, sr.Name, sr.Duration)
	}

	// Cleanup runs even when ctx was cancelled.
	cleanupCtx := context.WithoutCancel(ctx)
	for _, step := range sc.Cleanup {
		sr := r.runStep(cleanupCtx, cli, step, PhaseCleanup, vars)
		res.Cleanup = append(res.Cleanup, sr)
		if !sr.Passed {
			logging.Warn("Scenario %s: cleanup %s failed: %s", sc.Name, sr.Name, sr.Error)
		}
	}

	if res.Passed {
		logging.Success("Scenario %s passed", sc.Name)
	}
	return res
}

// runStep renders, executes, projects and checks one step, then captures
// variables on success.
func (r *Runner) runStep(ctx context.Context, cli *runner.Runner, step Step, phase Phase, vars map[string]string) (sr StepResult) {
	sr = StepResult{Name: step.Name, Phase: phase}
	start := time.Now()
	defer func() { sr.Duration = time.Since(start) }()

	args, err := renderCommand(step.Command, vars)
	if err != nil {
		sr.Error = err.Error()
		return sr
	}
	sr.Command = cli.Command(args)

	expect, err := step.Expect.render(vars)
	if err != nil {
		sr.Error = err.Error()
		return sr
	}

	expectFail := expect != nil && expect.Fail
	opts := runner.Options{FailOK: step.FailOK, MergeStderr: step.MergeStderr}

	result, err := cli.Run(ctx, sr.Command, opts)
	o := outcome{}
	if result != nil {
		sr.ExitCode = result.ExitCode
		o.output = result.Stdout
		o.failed = result.ExitCode != 0
	}
	if err != nil {
		failed, ok := runner.IsCommandFailed(err)
		if !ok || !expectFail {
			sr.Error = err.Error()
			return sr
		}
		o.output = failed.Stdout + failed.Stderr
	}

	o.projection = table.Project(o.output, step.Parse)

	if err := expect.check(o); err != nil {
		sr.Error = err.Error()
		return sr
	}
	if !o.failed {
		if err := capture(o, step.Capture, vars); err != nil {
			sr.Error = err.Error()
			return sr
		}
	}

	sr.Passed = true
	return sr
}
