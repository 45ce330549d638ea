// Package table reconstructs structured records from the ASCII box-drawing
// tables printed by the cloud CLI.
//
// The CLI renders every command result as a fixed-width table whose column
// boundaries are marked by '+' characters in horizontal rule lines:
//
//	+-------+--------+
//	| Field | Value  |
//	+-------+--------+
//	| id    | abc123 |
//	+-------+--------+
//
// PARSING MODEL:
//   - Delimiter lines define column spans purely by '+' offsets
//   - Content lines are sliced by those spans, never re-scanned for '+'
//   - The first content row becomes the header row, later rows are values
//   - Malformed input degrades to empty or truncated fields, never an error
//
// Two projections turn a parsed Table into records: list tables (one record
// per row, keyed by header) and show tables (Field/Value rows folded into one
// record). A renderer writes tables back out in the same layout so that
// parsed output can be re-serialized and compared.
package table

import (
	"strings"
)

// Table is the parsed structural unit of a CLI table. Headers holds column
// names left to right and Values holds the data rows, each sliced with the
// same column spans as the header row that preceded it.
type Table struct {
	Headers []string   `json:"headers" yaml:"headers"`
	Values  [][]string `json:"values" yaml:"values"`
}

// ColumnSpan delimits one column's text region as a half-open [Start, End)
// range of code point offsets within a line.
type ColumnSpan struct {
	Start int
	End   int
}

// Parse splits raw CLI output on newlines and parses the resulting lines.
// Empty output yields an empty Table.
func Parse(output string) Table {
	return ParseLines(strings.Split(output, "\n"))
}

// ParseLines parses already split CLI output into a Table.
//
// A single trailing empty line, the artifact of a trailing newline, is
// dropped first. Each delimiter line recomputes the column spans used for
// every following content line until the next delimiter line. Lines without
// a '|' are noise and skipped. The first content row seen while Headers is
// still empty becomes the header row; every other row is appended to Values.
//
// ParseLines never fails: content lines shorter than the current spans yield
// empty or truncated fields, and content before any delimiter line slices to
// zero fields.
func ParseLines(lines []string) Table {
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	t := Table{
		Headers: []string{},
		Values:  [][]string{},
	}

	var columns []ColumnSpan
	for _, line := range lines {
		if IsDelimiterLine(line) {
			columns = ColumnSpans(line)
			continue
		}
		if !strings.Contains(line, "|") {
			continue
		}

		row := sliceRow(line, columns)
		if len(t.Headers) == 0 {
			t.Headers = row
		} else {
			t.Values = append(t.Values, row)
		}
	}

	return t
}

// IsDelimiterLine reports whether line is a horizontal rule such as
// "+----+----+": at least three characters, starting and ending with '+',
// with only '+' and '-' in between.
func IsDelimiterLine(line string) bool {
	if len(line) < 3 || line[0] != '+' || line[len(line)-1] != '+' {
		return false
	}
	for i := 1; i < len(line)-1; i++ {
		if line[i] != '+' && line[i] != '-' {
			return false
		}
	}
	return true
}

// ColumnSpans derives column spans from a delimiter line. Starting after the
// leading '+', each following '+' closes one span and the next span starts
// just past it. Text content is never consulted.
func ColumnSpans(delimiter string) []ColumnSpan {
	runes := []rune(delimiter)
	spans := []ColumnSpan{}

	start := 1
	for {
		found := indexRune(runes, '+', start)
		if found < 0 {
			break
		}
		spans = append(spans, ColumnSpan{Start: start, End: found})
		start = found + 1
	}

	return spans
}

// indexRune returns the index of the first r in runes at or after from, or -1.
func indexRune(runes []rune, r rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == r {
			return i
		}
	}
	return -1
}

// sliceRow cuts line into trimmed fields, one per span. Indices are clamped
// to the line length so short lines produce empty fields instead of panics.
func sliceRow(line string, columns []ColumnSpan) []string {
	runes := []rune(line)
	fields := make([]string, 0, len(columns))
	for _, span := range columns {
		fields = append(fields, strings.TrimSpace(sliceRunes(runes, span.Start, span.End)))
	}
	return fields
}

func sliceRunes(runes []rune, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}
