package runner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCommand is returned when a command line tokenizes to no words.
var ErrEmptyCommand = errors.New("empty command line")

// CommandFailedError reports a CLI invocation that exited non-zero while the
// caller did not tolerate failure. It carries both captured streams so tests
// can show the CLI's own diagnostics.
type CommandFailedError struct {
	ExitCode int
	Command  string
	Stdout   string
	Stderr   string
}

// Error implements the error interface.
func (e *CommandFailedError) Error() string {
	msg := fmt.Sprintf("command '%s' returned non-zero exit status %d", e.Command, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + firstLine(stderr)
	}
	return msg
}

// IsCommandFailed unwraps err to a *CommandFailedError when it holds one.
func IsCommandFailed(err error) (*CommandFailedError, bool) {
	var failed *CommandFailedError
	if errors.As(err, &failed) {
		return failed, true
	}
	return nil, false
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
