// Package utils provides utility functions for the tabulactl CLI.
// This file contains logging setup and Resty logger integration utilities.
package utils

import (
	"os"

	"github.com/concave-dev/tabula/cmd/tabulactl/config"
	"github.com/concave-dev/tabula/internal/logging"
)

// RestyLogger implements resty.Logger interface and routes logs through structured logging
type RestyLogger struct{}

// Errorf routes error messages through structured logging.
func (s RestyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(format, v...)
}

// Warnf routes warning messages through structured logging.
func (s RestyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(format, v...)
}

// Debugf routes debug messages through structured logging.
func (s RestyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(format, v...)
}

// SetupLogging configures CLI logging behavior. DEBUG=true restores full
// debug output; otherwise the --log-level applies, and at the default ERROR
// level stdout carries only command results.
func SetupLogging() {
	if os.Getenv("DEBUG") == "true" {
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}

	if config.Global.LogLevel == "" || config.Global.LogLevel == "ERROR" {
		logging.SuppressOutput()
		return
	}

	// Informational levels go to stderr so piped results stay parseable
	logging.SetOutput(os.Stderr)
	logging.SetLevel(config.Global.LogLevel)
}
