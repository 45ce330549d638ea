// Package logging also defines the canonical set of log levels accepted by
// tabulad flags, tabulactl flags and the TABULA_LOG_LEVEL environment variable.
//
// SUPPORTED LOG LEVELS:
//   - DEBUG: Command lines, exit codes and HTTP request traces
//   - INFO:  General progress of scenario runs and the daemon
//   - WARN:  Tolerated failures and fallbacks
//   - ERROR: Failures that abort an operation
//
// Level strings are uppercase; callers normalize user input before validating.
package logging

import "fmt"

// ValidLogLevels is the single source of truth for log level validation in
// daemon config, CLI config and request handling.
var ValidLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
}

// IsValidLogLevel reports whether level is a supported log level.
func IsValidLogLevel(level string) bool {
	return ValidLogLevels[level]
}

// ValidateLogLevel returns an error naming level when it is not supported.
// Used by both binaries' config validation so the message is identical.
func ValidateLogLevel(level string) error {
	if !IsValidLogLevel(level) {
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}
