// Package config provides configuration management for the tabulactl CLI.
package config

import (
	"time"

	configDefaults "github.com/concave-dev/tabula/internal/config"
	"github.com/concave-dev/tabula/internal/version"
)

const (
	DefaultAPIAddr  = configDefaults.DefaultAPIAddr // Default tabulad address
	DefaultLogLevel = "ERROR"                       // CLI output stays clean unless asked
	DefaultTimeout  = 8                             // Connection timeout in seconds
	DefaultOutput   = "table"                       // Output format
)

// Version returns the current tabulactl CLI version from the centralized version package
var Version = version.TabulactlVersion

// Global holds the global CLI configuration
var Global struct {
	APIAddr    string // Address of tabulad to connect to
	LogLevel   string // Log level for CLI operations
	Timeout    int    // Connection timeout in seconds
	Verbose    bool   // Show verbose output
	Output     string // Output format: table, json, yaml
	ConfigFile string // Optional YAML config file layered under flags
}

// Parse holds the parse command configuration
var Parse struct {
	Mode   string // Projection mode: raw, table, list, show, fields
	Remote bool   // Parse through tabulad instead of locally
}

// Render holds the render command configuration
var Render struct {
	Mode   string // Input shape: list, show or table
	Remote bool   // Render through tabulad instead of locally
}

// Exec holds the exec command configuration
var Exec struct {
	Binary      string        // Prefix for the command line (empty runs it verbatim)
	FailOK      bool          // Tolerate non-zero exits
	MergeStderr bool          // Interleave stderr into the captured output
	Parse       string        // Projection mode applied to the output
	Timeout     time.Duration // Per-invocation limit
	Watch       bool          // Re-run every 2 seconds
}

// Scenario holds the scenario command configuration
var Scenario struct {
	Binary         string        // CLI used by scenarios that name none
	Parallel       int           // Scenarios running at once
	FailFast       bool          // Stop after the first failing scenario
	CommandTimeout time.Duration // Per-step limit
}
