// Package utils contains utility functions for the tabula daemon.
package utils

import (
	"fmt"
)

// DisplayLogo prints the tabula ASCII logo with version information
func DisplayLogo(version string) {
	fmt.Println()
	fmt.Println(` ░░░░░░░░░░░░░░░░░░░░░░░░░
 ░▀█▀░█▀█░█▀▄░█░█░█░░░█▀█░
 ░░█░░█▀█░█▀▄░█░█░█░░░█▀█░
 ░░▀░░▀░▀░▀▀░░▀▀▀░▀▀▀░▀░▀░
 ░░░░░░░░░░░░░░░░░░░░░░░░░`)
	fmt.Printf("\n Tabula v%s - CLI table parsing service\n", version)
	fmt.Println(" Structured records from boxed CLI output")
	fmt.Println()
}
