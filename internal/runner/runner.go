// Package runner invokes the cloud CLI as a subprocess and captures what it
// prints, surfacing non-zero exits as structured failures.
//
// Command lines are tokenized with POSIX shell-word rules on every host OS
// and handed straight to the process spawner; no shell is involved, so shell
// metacharacters in arguments reach the CLI literally. Each call blocks until
// the process exits. Runner values hold no mutable state and may be shared
// across goroutines.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/concave-dev/tabula/internal/logging"
	"github.com/dustin/go-humanize"
	"github.com/kballard/go-shellquote"
)

// Options tune a single invocation.
type Options struct {
	// FailOK returns the captured output instead of a *CommandFailedError
	// when the process exits non-zero.
	FailOK bool

	// MergeStderr interleaves stderr into the stdout stream.
	MergeStderr bool
}

// Result captures the outcome of one invocation.
type Result struct {
	Command  string        `json:"command" yaml:"command"`
	Args     []string      `json:"args" yaml:"args"`
	Stdout   string        `json:"stdout" yaml:"stdout"`
	Stderr   string        `json:"stderr,omitempty" yaml:"stderr,omitempty"`
	ExitCode int           `json:"exit_code" yaml:"exit_code"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Succeeded reports whether the process exited zero.
func (r *Result) Succeeded() bool {
	return r.ExitCode == 0
}

// Runner spawns CLI processes.
type Runner struct {
	Binary  string        // Executable prefixed by CLI(), e.g. "openstack"
	Dir     string        // Working directory; empty means the caller's
	Env     []string      // Extra KEY=value pairs appended to the inherited environment
	Timeout time.Duration // Per-invocation limit; zero means none
}

// New returns a Runner that prefixes CLI invocations with binary.
func New(binary string) *Runner {
	return &Runner{Binary: binary}
}

// Split tokenizes a command line with POSIX shell quoting rules: single
// quotes are literal, double quotes allow backslash escapes, and '#' has no
// special meaning. Unbalanced quotes are an error.
func Split(commandLine string) ([]string, error) {
	words, err := shellquote.Split(commandLine)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize command line: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyCommand
	}
	return words, nil
}

// Execute runs commandLine and returns its stdout, or the merged
// stdout+stderr stream when opts.MergeStderr is set.
//
// A non-zero exit yields a *CommandFailedError unless opts.FailOK is set, in
// which case the captured output is returned with a nil error. Failures to
// tokenize or spawn the process are returned as ordinary errors regardless
// of FailOK.
func (r *Runner) Execute(ctx context.Context, commandLine string, opts Options) (string, error) {
	res, err := r.Run(ctx, commandLine, opts)
	if res == nil {
		return "", err
	}
	return res.Stdout, err
}

// CLI runs args through the configured Binary, so CLI(ctx, "server list")
// executes "<Binary> server list".
func (r *Runner) CLI(ctx context.Context, args string, opts Options) (string, error) {
	return r.Execute(ctx, r.Command(args), opts)
}

// Command returns the full command line CLI would execute for args. The
// binary is quoted so paths containing spaces survive tokenization.
func (r *Runner) Command(args string) string {
	if r.Binary == "" {
		return args
	}
	return shellquote.Join(r.Binary) + " " + args
}

// Run is Execute returning the full Result. On a non-zero exit without
// FailOK both the Result and a *CommandFailedError are returned.
func (r *Runner) Run(ctx context.Context, commandLine string, opts Options) (*Result, error) {
	args, err := Split(commandLine)
	if err != nil {
		return nil, err
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = r.Dir
	if len(r.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if opts.MergeStderr {
		cmd.Stderr = &stdout
	} else {
		cmd.Stderr = &stderr
	}

	logging.Debug("Executing: %s", commandLine)
	start := time.Now()
	runErr := cmd.Run()

	res := &Result{
		Command:  commandLine,
		Args:     args,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: 0,
		Duration: time.Since(start),
	}

	if runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("command '%s' interrupted: %w", commandLine, ctxErr)
		}

		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, fmt.Errorf("failed to start '%s': %w", args[0], runErr)
		}
		res.ExitCode = exitCode(exitErr)
	}

	logging.Debug("Command exited %d after %v (%s captured)",
		res.ExitCode, res.Duration, humanize.Bytes(uint64(len(res.Stdout)+len(res.Stderr))))

	if res.ExitCode != 0 && !opts.FailOK {
		return res, &CommandFailedError{
			ExitCode: res.ExitCode,
			Command:  commandLine,
			Stdout:   res.Stdout,
			Stderr:   res.Stderr,
		}
	}

	return res, nil
}
