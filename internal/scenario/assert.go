package scenario

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/concave-dev/tabula/internal/table"
)

// outcome is what a step produced, as seen by expectations and captures.
type outcome struct {
	output     string
	projection table.Projection
	failed     bool
}

// records returns the projection as a list of records: list and fields rows
// as-is, table rows zipped with headers, and the show object as one record.
func (o outcome) records() []table.Record {
	p := o.projection
	switch {
	case p.Table != nil:
		return table.ListRecords(*p.Table)
	case p.Object != nil:
		return []table.Record{*p.Object}
	default:
		return p.Records
	}
}

// object returns the single record a show-style check applies to: the show
// object, the merged field rows, or the first list row.
func (o outcome) object() (table.Record, bool) {
	p := o.projection
	switch p.Mode {
	case table.ModeShow:
		return *p.Object, true
	case table.ModeFields:
		var merged table.Record
		for _, r := range p.Records {
			merged.Merge(r)
		}
		return merged, true
	default:
		recs := o.records()
		if len(recs) == 0 {
			return table.Record{}, false
		}
		return recs[0], true
	}
}

// check evaluates every populated expectation and joins all violations.
func (e *Expect) check(o outcome) error {
	if e == nil {
		return nil
	}

	var errs []error
	if e.Fail && !o.failed {
		errs = append(errs, errors.New("expected command to fail, but it exited 0"))
	}

	if e.Count != nil {
		if got := len(o.records()); got != *e.Count {
			errs = append(errs, fmt.Errorf("expected %d records, got %d", *e.Count, got))
		}
	}

	if len(e.Contains) > 0 && !anyMatches(o.records(), e.Contains) {
		errs = append(errs, fmt.Errorf("no record matches %s", formatPairs(e.Contains)))
	}

	if len(e.NotContains) > 0 {
		for _, r := range o.records() {
			if r.Matches(e.NotContains) {
				errs = append(errs, fmt.Errorf("unexpected record %s matches %s", r, formatPairs(e.NotContains)))
				break
			}
		}
	}

	if len(e.Fields) > 0 {
		obj, ok := o.object()
		if !ok {
			errs = append(errs, errors.New("expected fields, but output has no records"))
		}
		for _, key := range sortedKeys(e.Fields) {
			if !ok {
				break
			}
			got, present := obj.Get(key)
			switch {
			case !present:
				errs = append(errs, fmt.Errorf("field %q missing", key))
			case got != e.Fields[key]:
				errs = append(errs, fmt.Errorf("field %q: expected %q, got %q", key, e.Fields[key], got))
			}
		}
	}

	if len(e.Keys) > 0 {
		for i, r := range o.records() {
			for _, key := range e.Keys {
				if !r.Has(key) {
					errs = append(errs, fmt.Errorf("record %d missing key %q", i, key))
				}
			}
		}
	}

	for _, s := range e.OutputContains {
		if !strings.Contains(o.output, s) {
			errs = append(errs, fmt.Errorf("output does not contain %q", s))
		}
	}

	return errors.Join(errs...)
}

// capture copies the named fields of the step's object into vars. In raw
// mode the trimmed output is stored under every capture name.
func capture(o outcome, fields map[string]string, vars map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	if o.projection.Mode == table.ModeRaw {
		for name := range fields {
			vars[name] = strings.TrimSpace(o.output)
		}
		return nil
	}

	obj, ok := o.object()
	if !ok {
		return errors.New("cannot capture from empty output")
	}
	for _, name := range sortedKeys(fields) {
		value, present := obj.Get(fields[name])
		if !present {
			return fmt.Errorf("cannot capture %s: field %q not in output", name, fields[name])
		}
		vars[name] = value
	}
	return nil
}

func anyMatches(records []table.Record, want map[string]string) bool {
	for _, r := range records {
		if r.Matches(want) {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatPairs(m map[string]string) string {
	parts := make([]string, 0, len(m))
	for _, k := range sortedKeys(m) {
		parts = append(parts, k+"="+m[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
