// Package api provides the tabulad HTTP API server.
//
// This file defines the server configuration: listener address and request
// limits. Validation runs before the daemon binds so flag mistakes are
// reported with a clear message instead of a listener error.
package api

import (
	"fmt"

	"github.com/concave-dev/tabula/internal/config"
	"github.com/concave-dev/tabula/internal/validate"
	"github.com/concave-dev/tabula/internal/version"
)

const (
	// DefaultMaxBodyBytes caps POST bodies. Listing output for a large
	// project stays well below this.
	DefaultMaxBodyBytes = 8 << 20
)

// Config holds all configuration parameters required for running the HTTP
// API server.
type Config struct {
	BindAddr     string // HTTP server bind address (e.g., "127.0.0.1")
	BindPort     int    // HTTP server bind port
	Version      string // Reported by /health
	MaxBodyBytes int64  // Upper bound on request bodies
}

// DefaultConfig creates a Config bound to loopback on the default port.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:     config.DefaultBindAddr,
		BindPort:     config.DefaultAPIPort,
		Version:      version.TabuladVersion,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// Validate checks the configuration before the server starts.
func (c *Config) Validate() error {
	if err := validate.ValidateRequiredString(c.BindAddr, "bind address"); err != nil {
		return err
	}
	if err := validate.ValidateField(c.BindAddr, "ip"); err != nil {
		return fmt.Errorf("bind address must be an IP address: %s", c.BindAddr)
	}
	if err := validate.ValidatePortRange(c.BindPort); err != nil {
		return fmt.Errorf("bind port validation failed: %w", err)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive")
	}
	return nil
}
