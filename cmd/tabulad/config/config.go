// Package config provides configuration management for the tabula daemon.
//
// Configuration is held in a single Global value populated from cobra flags,
// then normalized by ValidateConfig before the daemon starts. The API
// address is given as "host:port" and split into APIAddr/APIPort during
// validation.
package config

import (
	"time"

	"github.com/concave-dev/tabula/internal/api"
	configDefaults "github.com/concave-dev/tabula/internal/config"
)

// ConfigField represents a configuration field that can be explicitly set
type ConfigField int

const (
	// Configuration field identifiers
	APIAddrField ConfigField = iota
	LogFileField
)

const (
	DefaultAPI             = configDefaults.DefaultAPIAddr         // Default API address
	DefaultLogLevel        = configDefaults.DefaultLogLevel        // Default log level
	DefaultShutdownTimeout = configDefaults.DefaultShutdownTimeout // Default graceful shutdown window
	DefaultMaxBodyBytes    = api.DefaultMaxBodyBytes               // Default request body cap
)

// Config holds all daemon configuration values
type Config struct {
	APIAddr         string        // HTTP API server address (host part after validation)
	APIPort         int           // HTTP API server port (derived from APIAddr)
	LogLevel        string        // Log level: DEBUG, INFO, WARN, ERROR
	LogFile         string        // Redirect all logs to this file when set
	MaxBodyBytes    int64         // Largest accepted request body
	ShutdownTimeout time.Duration // Time allowed for in-flight requests on shutdown

	// Flags to track if values were explicitly set by user
	apiAddrExplicitlySet bool
	logFileExplicitlySet bool
}

// Global configuration instance
var Global Config

// SetExplicitlySet marks a configuration field as explicitly set by the user.
func (c *Config) SetExplicitlySet(field ConfigField, value bool) {
	switch field {
	case APIAddrField:
		c.apiAddrExplicitlySet = value
	case LogFileField:
		c.logFileExplicitlySet = value
	}
}

// IsExplicitlySet returns whether a configuration field was explicitly set by the user.
func (c *Config) IsExplicitlySet(field ConfigField) bool {
	switch field {
	case APIAddrField:
		return c.apiAddrExplicitlySet
	case LogFileField:
		return c.logFileExplicitlySet
	}
	return false
}
