// Package config provides default configuration values shared by tabulad and
// tabulactl so both binaries agree on addresses and runtime limits.
package config

import "time"

const (
	// DefaultBindAddr is the address tabulad listens on. Loopback keeps the
	// parser private to the test host unless explicitly exposed.
	DefaultBindAddr = "127.0.0.1"

	// DefaultAPIPort is tabulad's HTTP port.
	DefaultAPIPort = 8008

	// DefaultAPIAddr is DefaultBindAddr and DefaultAPIPort joined, used as the
	// default for both tabulad --api and tabulactl --api.
	DefaultAPIAddr = "127.0.0.1:8008"

	// DefaultLogLevel is the default log level for all components
	DefaultLogLevel = "INFO"

	// DefaultBinary is the cloud CLI executable scenarios invoke when neither
	// the scenario file nor --binary names one.
	DefaultBinary = "openstack"

	// DefaultTimeout bounds tabulactl HTTP requests.
	DefaultTimeout = 10 * time.Second

	// DefaultCommandTimeout bounds a single CLI invocation in scenarios.
	DefaultCommandTimeout = 5 * time.Minute

	// DefaultParallelism is how many scenarios run at once.
	DefaultParallelism = 4

	// DefaultShutdownTimeout is how long tabulad waits for in-flight requests.
	DefaultShutdownTimeout = 10 * time.Second
)
