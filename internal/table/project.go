package table

// ListRecords projects a list table into one Record per row, mapping each
// header to the cell in the same position. Row order is preserved. When a
// row and the header row differ in length (a later delimiter line changed
// the column layout) the pairing stops at the shorter of the two.
func ListRecords(t Table) []Record {
	records := make([]Record, 0, len(t.Values))
	for _, row := range t.Values {
		var r Record
		for i := 0; i < len(t.Headers) && i < len(row); i++ {
			r.Set(t.Headers[i], row[i])
		}
		records = append(records, r)
	}
	return records
}

// FieldRecords projects a show table (Field | Value rows) into one
// single-entry Record per row, row[0] -> row[1]. Cells past the second are
// ignored and missing cells read as "". The records are kept separate so
// callers can assert on each field's presence.
func FieldRecords(t Table) []Record {
	records := make([]Record, 0, len(t.Values))
	for _, row := range t.Values {
		records = append(records, NewRecord(cell(row, 0), cell(row, 1)))
	}
	return records
}

// MergedObject folds FieldRecords into a single Record. A field name that
// repeats keeps its first position and its last value.
func MergedObject(t Table) Record {
	var merged Record
	for _, r := range FieldRecords(t) {
		merged.Merge(r)
	}
	return merged
}

// ParseListing parses list output into row records.
func ParseListing(output string) []Record {
	return ListRecords(Parse(output))
}

// ParseShow parses show output into per-field records.
func ParseShow(output string) []Record {
	return FieldRecords(Parse(output))
}

// ParseShowObject parses show output into one merged record.
func ParseShowObject(output string) Record {
	return MergedObject(Parse(output))
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
