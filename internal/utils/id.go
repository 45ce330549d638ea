// Package utils provides identifier helpers shared by tabulad and tabulactl.
//
// ID GENERATION STRATEGY:
// Scenario runs and API requests are tagged with random (v4) UUIDs from
// github.com/google/uuid so log lines from concurrent runs can be correlated.
// Logs show the 12-character prefix unless debug logging is on.
package utils

import (
	"github.com/google/uuid"
)

// ShortIDLength is the length of truncated IDs shown in non-debug logs.
const ShortIDLength = 12

// GenerateID returns a new random UUID string.
//
// Returns format: "0f8fad5b-d9cb-469f-a165-70867728950e"
func GenerateID() string {
	return uuid.NewString()
}

// TruncateID shortens id to ShortIDLength characters. Shorter IDs are
// returned unchanged.
func TruncateID(id string) string {
	if len(id) <= ShortIDLength {
		return id
	}
	return id[:ShortIDLength]
}
