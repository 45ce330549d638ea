// Package utils provides utility functions for the tabulactl CLI.
package utils

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatDuration renders d in the largest sensible unit: milliseconds below
// one second, then seconds, minutes, hours and days.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// FormatBytes renders a byte count, e.g. "1.2 kB".
func FormatBytes(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// FormatSince renders how long ago t was, e.g. "3 minutes ago".
func FormatSince(t time.Time) string {
	return humanize.Time(t)
}
