package validate

import (
	"fmt"
)

// VariableName validates a scenario variable or capture name. Names must be
// identifiers ([A-Za-z_][A-Za-z0-9_]*) so they can be referenced as
// {{ .name }} in command templates.
func VariableName(name string) error {
	if name == "" {
		return fmt.Errorf("variable name cannot be empty")
	}
	if !varNameRegex.MatchString(name) {
		return fmt.Errorf("variable name '%s' must start with a letter or underscore and contain only letters, digits and underscores", name)
	}
	return nil
}
