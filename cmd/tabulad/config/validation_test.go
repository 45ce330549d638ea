package config

import (
	"strings"
	"testing"
	"time"
)

func resetGlobal() {
	Global = Config{
		APIAddr:         DefaultAPI,
		LogLevel:        DefaultLogLevel,
		MaxBodyBytes:    DefaultMaxBodyBytes,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Config)
		expectError   bool
		errorContains string
		wantAddr      string
		wantPort      int
	}{
		{
			name:     "defaults",
			mutate:   func(*Config) {},
			wantAddr: "127.0.0.1",
			wantPort: 8008,
		},
		{
			name:     "all interfaces",
			mutate:   func(c *Config) { c.APIAddr = "0.0.0.0:9000" },
			wantAddr: "0.0.0.0",
			wantPort: 9000,
		},
		{
			name:     "lowercase log level normalized",
			mutate:   func(c *Config) { c.LogLevel = "debug" },
			wantAddr: "127.0.0.1",
			wantPort: 8008,
		},
		{
			name:          "invalid log level",
			mutate:        func(c *Config) { c.LogLevel = "TRACE" },
			expectError:   true,
			errorContains: "invalid log level",
		},
		{
			name:          "hostname rejected",
			mutate:        func(c *Config) { c.APIAddr = "localhost:8008" },
			expectError:   true,
			errorContains: "invalid API address",
		},
		{
			name:          "port zero rejected",
			mutate:        func(c *Config) { c.APIAddr = "127.0.0.1:0" },
			expectError:   true,
			errorContains: "invalid API address",
		},
		{
			name:          "non-positive body limit",
			mutate:        func(c *Config) { c.MaxBodyBytes = 0 },
			expectError:   true,
			errorContains: "max-body",
		},
		{
			name:          "zero shutdown timeout",
			mutate:        func(c *Config) { c.ShutdownTimeout = 0 * time.Second },
			expectError:   true,
			errorContains: "shutdown timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobal()
			tt.mutate(&Global)

			err := ValidateConfig()
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("error %q does not contain %q", err, tt.errorContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if Global.APIAddr != tt.wantAddr || Global.APIPort != tt.wantPort {
				t.Errorf("got %s:%d, want %s:%d", Global.APIAddr, Global.APIPort, tt.wantAddr, tt.wantPort)
			}
		})
	}
}

func TestInitializeConfig_Environment(t *testing.T) {
	resetGlobal()
	t.Setenv("DEBUG", "true")
	t.Setenv("TABULAD_API", "0.0.0.0:9100")

	InitializeConfig()

	if Global.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q, want DEBUG", Global.LogLevel)
	}
	if Global.APIAddr != "0.0.0.0:9100" {
		t.Errorf("APIAddr = %q, want env override", Global.APIAddr)
	}

	resetGlobal()
	Global.SetExplicitlySet(APIAddrField, true)
	InitializeConfig()
	if Global.APIAddr != DefaultAPI {
		t.Errorf("explicit --api should win over TABULAD_API, got %q", Global.APIAddr)
	}
}
