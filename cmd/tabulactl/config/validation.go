package config

import (
	"fmt"
	"strings"

	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags loads layered configuration and validates all global
// flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(cmd); err != nil {
		return err
	}

	if err := ValidateLogLevel(); err != nil {
		return err
	}

	if err := ValidateAPIAddress(); err != nil {
		return err
	}

	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	if Global.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %d", Global.Timeout)
	}

	return nil
}

// ValidateLogLevel validates and normalizes the --log-level flag
func ValidateLogLevel() error {
	Global.LogLevel = strings.ToUpper(Global.LogLevel)
	return logging.ValidateLogLevel(Global.LogLevel)
}

// ValidateAPIAddress validates the --api flag. Hostnames are accepted since
// this is a client-side target.
func ValidateAPIAddress() error {
	apiAddr, err := validate.ParseAPIAddress(Global.APIAddr)
	if err != nil {
		logging.Error("Invalid API address '%s': %v", Global.APIAddr, err)
		return fmt.Errorf("invalid API address - expected format: host:port (e.g., 127.0.0.1:8008)")
	}

	// Reject unroutable 0.0.0.0 target for client connections
	if apiAddr.Host == "0.0.0.0" {
		logging.Error("Unroutable API address '0.0.0.0:%d' - cannot connect to 0.0.0.0", apiAddr.Port)
		return fmt.Errorf("unroutable API address - use 127.0.0.1 or a specific address")
	}

	return nil
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	Global.Output = strings.ToLower(Global.Output)
	if err := validate.ValidateOutputFormat(Global.Output); err != nil {
		logging.Error("Invalid output format '%s' - valid formats are: %s",
			Global.Output, strings.Join(validate.OutputFormats, ", "))
		return fmt.Errorf("invalid output format - valid: %s", strings.Join(validate.OutputFormats, ", "))
	}
	return nil
}
