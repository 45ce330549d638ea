// Package validate provides input validation for tabula's binaries and
// scenario files, built on the go-playground/validator library.
//
// VALIDATION FEATURES:
//   - Bind addresses: IP host and port range for tabulad's listener
//   - API addresses: IP or hostname plus port for tabulactl's --api flag
//   - Config values: output formats, positive timeouts, required strings
//   - Struct tags: scenario files are validated with Struct() and the
//     custom "varname" tag for template variable names
package validate

import (
	"fmt"
	"net"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance with tabula's custom tags registered
	validate *validator.Validate

	varNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

func init() {
	validate = validator.New()

	// varname: identifiers usable as {{ .name }} in scenario templates
	if err := validate.RegisterValidation("varname", func(fl validator.FieldLevel) bool {
		return VariableName(fl.Field().String()) == nil
	}); err != nil {
		panic(fmt.Sprintf("failed to register varname validation: %v", err))
	}
}

// NetworkAddress is a validated listener address for tabulad.
type NetworkAddress struct {
	Host string `validate:"required,ip"`              // Built-in IP validator
	Port int    `validate:"required,min=0,max=65535"` // Built-in range validator
}

// String returns the address in "host:port" form.
func (na NetworkAddress) String() string {
	return net.JoinHostPort(na.Host, strconv.Itoa(na.Port))
}

// APIAddress is a validated tabulad endpoint as seen from tabulactl. Unlike
// a bind address the host may be a DNS name.
type APIAddress struct {
	Host string `validate:"required,ip|hostname"`
	Port int    `validate:"required,min=1,max=65535"`
}

// String returns the address in "host:port" form.
func (a APIAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// ParseBindAddress parses and validates a "host:port" listener address for
// tabulad. The host must be an IP literal.
//
// Returns a validated NetworkAddress or an error describing which part of the
// address was rejected.
func ParseBindAddress(addr string) (*NetworkAddress, error) {
	host, port, err := splitHostPort(addr)
	if err != nil {
		return nil, err
	}

	netAddr := &NetworkAddress{Host: host, Port: port}
	if err := validate.Struct(netAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return netAddr, nil
}

// ParseAPIAddress parses and validates the tabulad address given to tabulactl.
func ParseAPIAddress(addr string) (*APIAddress, error) {
	host, port, err := splitHostPort(addr)
	if err != nil {
		return nil, err
	}

	apiAddr := &APIAddress{Host: host, Port: port}
	if err := validate.Struct(apiAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return apiAddr, nil
}

func splitHostPort(addr string) (string, int, error) {
	if addr == "" {
		return "", 0, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}
	return host, port, nil
}

// ValidateField validates a single value against validator tags.
//
// Example: ValidateField("192.168.1.1", "required,ip")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// Struct validates v using its `validate` struct tags, including the custom
// varname tag. Used for scenario files after YAML decoding.
func Struct(v interface{}) error {
	return validate.Struct(v)
}
