package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/validate"
)

// InitializeConfig applies environment overrides before validation. DEBUG=true
// forces debug logging; TABULAD_API supplies the API address when --api was
// not given.
func InitializeConfig() {
	if os.Getenv("DEBUG") == "true" {
		Global.LogLevel = "DEBUG"
		logging.Info("DEBUG environment variable detected, setting log level to DEBUG")
	}

	if apiEnv := os.Getenv("TABULAD_API"); apiEnv != "" && !Global.apiAddrExplicitlySet {
		Global.APIAddr = apiEnv
		logging.Info("TABULAD_API environment variable detected, using API address %s", apiEnv)
	}
}

// ValidateConfig validates and normalizes the daemon configuration. On
// success APIAddr holds only the host and APIPort the port.
func ValidateConfig() error {
	Global.LogLevel = strings.ToUpper(Global.LogLevel)
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	netAddr, err := validate.ParseBindAddress(Global.APIAddr)
	if err != nil {
		logging.Error("Invalid API address '%s': %v", Global.APIAddr, err)
		return fmt.Errorf("invalid API address: %w", err)
	}

	// The daemon needs a predictable port; clients are configured with it.
	if err := validate.ValidatePortRange(netAddr.Port); err != nil {
		return fmt.Errorf("daemon requires specific port (not 0): %w", err)
	}

	Global.APIAddr = netAddr.Host
	Global.APIPort = netAddr.Port

	if Global.MaxBodyBytes <= 0 {
		return fmt.Errorf("max-body must be positive, got: %d", Global.MaxBodyBytes)
	}
	if err := validate.ValidatePositiveTimeout(Global.ShutdownTimeout, "shutdown timeout"); err != nil {
		return err
	}

	return nil
}
