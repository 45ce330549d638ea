// Package handlers provides command handler functions for tabulactl.
//
// The package is organized as follows:
//   - parse.go: parse boxed CLI output locally or through tabulad
//   - render.go: render records and tables back into boxed text
//   - exec.go: run CLI commands and project their output
//   - scenario.go: load and run functional test scenarios
//   - info.go: daemon status
//
// All handlers follow the same pattern: configure logging, validate the
// command's own flags, do the work through internal packages or the API
// client, and print through the display package. Errors are logged and
// returned so cobra reports them and main exits non-zero.
package handlers

import (
	"fmt"
	"io"
	"os"

	"github.com/concave-dev/tabula/cmd/tabulactl/config"
	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/netutil"
	"github.com/spf13/cobra"
)

// readInput returns the contents of the file named by args[0], or stdin
// when no file or "-" is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// logAPIError logs a failed tabulad call, adding a hint when nothing is
// listening at --api.
func logAPIError(action string, err error) {
	logging.Error("%s: %v", action, err)
	if netutil.IsConnectionRefusedError(err) {
		logging.Error("TIP: Check that tabulad is running at %s", config.Global.APIAddr)
		logging.Error("     Start it with: tabulad --api=%s", config.Global.APIAddr)
	}
}
