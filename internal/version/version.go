// Package version provides version information for the tabula binaries.
// tabulad (the parsing service) and tabulactl (the CLI) are versioned
// independently. All versions follow semantic versioning.

package version

// TabuladVersion holds the current tabulad service version.
// Format: major.minor.patch[-prerelease][+build]
const TabuladVersion = "0.1.0-dev"

// TabulactlVersion holds the current tabulactl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const TabulactlVersion = "0.1.0-dev"
