package logging

import (
	"github.com/charmbracelet/log"
	"github.com/concave-dev/tabula/internal/utils"
)

// FormatID formats an identifier for log output. Full IDs are shown when
// debug logging is enabled; otherwise they are shortened to 12 characters so
// INFO lines stay readable.
func FormatID(id string) string {
	if errLogger().GetLevel() <= log.DebugLevel {
		return id
	}
	return utils.TruncateID(id)
}

// FormatRunID formats a scenario run ID for logging.
//
// Usage: logging.Info("Run %s started", logging.FormatRunID(runID))
func FormatRunID(runID string) string {
	return FormatID(runID)
}
