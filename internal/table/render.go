package table

import (
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Show tables always carry these two column names.
const (
	FieldHeader = "Field"
	ValueHeader = "Value"
)

// Render writes t back out as an ASCII box table in the CLI's layout. Column
// widths are computed from the content and headers are emitted verbatim, so
// Parse(Render(t)) returns t for cells without surrounding whitespace,
// newlines or tabs.
//
// Cells are padded by display width while Parse counts code points: a wide
// character or a combining mark does not survive the round trip, and tabs
// come back as spaces.
func Render(t Table) string {
	if len(t.Headers) == 0 && len(t.Values) == 0 {
		return ""
	}

	tw := newBoxWriter()
	tw.AppendHeader(toRow(t.Headers))
	for _, row := range t.Values {
		tw.AppendRow(toRow(row))
	}
	return tw.Render() + "\n"
}

// RenderRecords renders list records as a table whose columns are the union
// of record keys in first-seen order. Missing cells render empty.
func RenderRecords(records []Record) string {
	var columns Record
	for _, r := range records {
		for _, key := range r.keys {
			if !columns.Has(key) {
				columns.Set(key, "")
			}
		}
	}

	t := Table{Headers: columns.Keys()}
	for _, r := range records {
		row := make([]string, 0, len(t.Headers))
		for _, key := range t.Headers {
			row = append(row, r.Value(key))
		}
		t.Values = append(t.Values, row)
	}
	return Render(t)
}

// RenderObject renders a record as a two-column Field | Value show table.
func RenderObject(r Record) string {
	t := Table{Headers: []string{FieldHeader, ValueHeader}}
	for _, key := range r.keys {
		t.Values = append(t.Values, []string{key, r.values[key]})
	}
	return Render(t)
}

// newBoxWriter returns a go-pretty writer configured for the '+', '-', '|'
// box layout with headers left untouched.
func newBoxWriter() prettytable.Writer {
	tw := prettytable.NewWriter()
	tw.SetStyle(prettytable.StyleDefault)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.HeaderAlign = text.AlignLeft
	tw.Style().Format.RowAlign = text.AlignLeft
	return tw
}

func toRow(cells []string) prettytable.Row {
	row := make(prettytable.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
