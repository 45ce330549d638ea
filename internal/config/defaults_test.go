package config

import (
	"net"
	"strconv"
	"strings"
	"testing"
)

// TestDefaultBindAddrIsValidIP validates that the default bind address is a valid IP
func TestDefaultBindAddrIsValidIP(t *testing.T) {
	ip := net.ParseIP(DefaultBindAddr)
	if ip == nil {
		t.Fatalf("DefaultBindAddr %q is not a valid IP address", DefaultBindAddr)
	}
	if !ip.IsLoopback() {
		t.Errorf("DefaultBindAddr %q should be a loopback address", DefaultBindAddr)
	}
}

// TestDefaultAPIAddrConsistency validates the joined address matches its parts
func TestDefaultAPIAddrConsistency(t *testing.T) {
	want := net.JoinHostPort(DefaultBindAddr, strconv.Itoa(DefaultAPIPort))
	if DefaultAPIAddr != want {
		t.Errorf("DefaultAPIAddr = %q, want %q", DefaultAPIAddr, want)
	}
}

// TestDefaultLogLevelFormat validates log level format conventions
func TestDefaultLogLevelFormat(t *testing.T) {
	if DefaultLogLevel != strings.ToUpper(DefaultLogLevel) {
		t.Errorf("DefaultLogLevel %q should be uppercase", DefaultLogLevel)
	}
	if DefaultLogLevel != "INFO" {
		t.Errorf("For production defaults, DefaultLogLevel should be INFO, got %q", DefaultLogLevel)
	}
}

// TestRuntimeDefaultsPositive validates limits are usable as-is
func TestRuntimeDefaultsPositive(t *testing.T) {
	if DefaultTimeout <= 0 || DefaultCommandTimeout <= 0 || DefaultShutdownTimeout <= 0 {
		t.Error("timeouts must be positive")
	}
	if DefaultParallelism < 1 {
		t.Errorf("DefaultParallelism = %d, want >= 1", DefaultParallelism)
	}
	if DefaultBinary == "" {
		t.Error("DefaultBinary should not be empty")
	}
}
