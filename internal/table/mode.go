package table

import (
	"fmt"
	"strings"
)

// Mode selects how raw CLI output is projected after parsing.
type Mode string

const (
	ModeRaw    Mode = "raw"    // output passed through untouched
	ModeTable  Mode = "table"  // parsed Table (headers + values)
	ModeList   Mode = "list"   // one Record per row
	ModeShow   Mode = "show"   // Field/Value rows merged into one Record
	ModeFields Mode = "fields" // Field/Value rows as single-entry Records
)

// Modes lists every supported projection mode.
var Modes = []Mode{ModeRaw, ModeTable, ModeList, ModeShow, ModeFields}

// ParseMode validates a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mode %q - valid: raw, table, list, show, fields", s)
}

// Projection is the result of projecting CLI output in one mode. Exactly one
// of the payload fields is set, matching Mode.
type Projection struct {
	Mode    Mode     `json:"mode" yaml:"mode"`
	Raw     string   `json:"raw,omitempty" yaml:"raw,omitempty"`
	Table   *Table   `json:"table,omitempty" yaml:"table,omitempty"`
	Records []Record `json:"records,omitempty" yaml:"records,omitempty"`
	Object  *Record  `json:"object,omitempty" yaml:"object,omitempty"`
}

// Project parses output and applies the projection selected by mode.
func Project(output string, mode Mode) Projection {
	p := Projection{Mode: mode}
	switch mode {
	case ModeTable:
		t := Parse(output)
		p.Table = &t
	case ModeList:
		p.Records = ParseListing(output)
	case ModeShow:
		obj := ParseShowObject(output)
		p.Object = &obj
	case ModeFields:
		p.Records = ParseShow(output)
	default:
		p.Mode = ModeRaw
		p.Raw = output
	}
	return p
}

// Count returns the number of items the projection carries: rows for table
// and record modes, keys for show, and 1 for non-empty raw output.
func (p Projection) Count() int {
	switch {
	case p.Table != nil:
		return len(p.Table.Values)
	case p.Object != nil:
		return p.Object.Len()
	case p.Mode == ModeRaw:
		if p.Raw == "" {
			return 0
		}
		return 1
	default:
		return len(p.Records)
	}
}

// Data returns the payload matching the projection's mode, for encoders that
// want the bare value.
func (p Projection) Data() any {
	switch p.Mode {
	case ModeTable:
		return p.Table
	case ModeList, ModeFields:
		if p.Records == nil {
			return []Record{}
		}
		return p.Records
	case ModeShow:
		return p.Object
	default:
		return p.Raw
	}
}

// Render writes the projection back out as a box table. Raw output is
// returned unchanged.
func (p Projection) Render() string {
	switch p.Mode {
	case ModeTable:
		return Render(*p.Table)
	case ModeList:
		return RenderRecords(p.Records)
	case ModeFields:
		t := Table{Headers: []string{FieldHeader, ValueHeader}}
		for _, r := range p.Records {
			for _, key := range r.keys {
				t.Values = append(t.Values, []string{key, r.values[key]})
			}
		}
		return Render(t)
	case ModeShow:
		return RenderObject(*p.Object)
	default:
		return p.Raw
	}
}
