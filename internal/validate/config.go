package validate

import (
	"fmt"
	"strings"
	"time"
)

// OutputFormats lists the formats tabulactl can print results in.
var OutputFormats = []string{"table", "json", "yaml"}

// ValidatePortRange validates that a port number is within 1-65535.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidateRequiredString validates that a string field is not empty.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidatePositiveTimeout validates that a timeout duration is positive (> 0).
// Used for tabulactl's --timeout and the daemon's shutdown grace period.
func ValidatePositiveTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}

// ValidateOutputFormat checks format against OutputFormats.
func ValidateOutputFormat(format string) error {
	return ValidateOneOf(format, OutputFormats, "output format")
}

// ValidateOneOf checks that value is one of allowed. The error lists the
// allowed values so users can correct the flag without reading docs.
func ValidateOneOf(value string, allowed []string, name string) error {
	if err := ValidateField(value, "oneof="+strings.Join(allowed, " ")); err != nil {
		return fmt.Errorf("invalid %s: %s (must be one of: %s)", name, value, strings.Join(allowed, ", "))
	}
	return nil
}
