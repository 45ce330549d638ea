//go:build unix

package runner

import (
	"os/exec"
	"syscall"
)

// exitCode returns the process exit status, or the negated signal number
// when the process was killed by a signal.
func exitCode(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return -int(ws.Signal())
	}
	return exitErr.ExitCode()
}
