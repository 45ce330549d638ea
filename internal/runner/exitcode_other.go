//go:build !unix

package runner

import "os/exec"

func exitCode(exitErr *exec.ExitError) int {
	return exitErr.ExitCode()
}
