package table

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is an ordered key to string mapping built from one or more table
// rows. Keys keep the position of their first insertion; setting an existing
// key overwrites its value in place (last write wins).
//
// The zero value is an empty record ready to use.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord builds a Record from alternating key/value pairs. A trailing key
// without a value is stored with an empty value.
func NewRecord(pairs ...string) Record {
	var r Record
	for i := 0; i < len(pairs); i += 2 {
		value := ""
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}
		r.Set(pairs[i], value)
	}
	return r
}

// Set stores value under key.
func (r *Record) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (r Record) Get(key string) (string, bool) {
	value, ok := r.values[key]
	return value, ok
}

// Value returns the value stored under key, or "" when absent.
func (r Record) Value(key string) string {
	return r.values[key]
}

// Has reports whether key is present.
func (r Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of keys.
func (r Record) Len() int {
	return len(r.keys)
}

// Merge copies every entry of other into r in other's key order, mirroring
// dictionary update semantics.
func (r *Record) Merge(other Record) {
	for _, key := range other.keys {
		r.Set(key, other.values[key])
	}
}

// Map returns an unordered copy of the record.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.keys))
	for _, key := range r.keys {
		m[key] = r.values[key]
	}
	return m
}

// Matches reports whether every pair in want is present in r with an equal
// value. An empty want matches any record.
func (r Record) Matches(want map[string]string) bool {
	for key, value := range want {
		got, ok := r.values[key]
		if !ok || got != value {
			return false
		}
	}
	return true
}

// String renders the record as {k: v, ...} in key order, for log lines.
func (r Record) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %s", key, r.values[key])
	}
	buf.WriteByte('}')
	return buf.String()
}

// MarshalJSON encodes the record as a JSON object preserving key order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object of strings, keeping the order in
// which keys appear in the input. Non-string scalar values are stored using
// their JSON text.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record must be a JSON object")
	}

	*r = Record{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("record key must be a string")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("record value for %q: %w", key, err)
		}

		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			if len(raw) > 0 && (raw[0] == '{' || raw[0] == '[') {
				return fmt.Errorf("record value for %q must be a scalar", key)
			}
			value = string(raw)
			if value == "null" {
				value = ""
			}
		}
		r.Set(key, value)
	}

	_, err = dec.Token()
	return err
}

// MarshalYAML encodes the record as a YAML mapping preserving key order.
func (r Record) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range r.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.values[key]},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a flat YAML mapping, keeping document key order.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: record must be a mapping", node.Line)
	}

	*r = Record{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: record value for %q must be a scalar", value.Line, key.Value)
		}
		r.Set(key.Value, value.Value)
	}
	return nil
}
