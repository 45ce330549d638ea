package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecord_SetKeepsFirstPosition(t *testing.T) {
	var r Record
	r.Set("b", "1")
	r.Set("a", "2")
	r.Set("b", "3")

	assert.Equal(t, []string{"b", "a"}, r.Keys())
	assert.Equal(t, "3", r.Value("b"))
	assert.Equal(t, 2, r.Len())
}

func TestRecord_ZeroValue(t *testing.T) {
	var r Record

	_, ok := r.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", r.Value("missing"))
	assert.Empty(t, r.Keys())
	assert.Equal(t, "{}", r.String())
}

func TestRecord_Merge(t *testing.T) {
	r := NewRecord("id", "1", "status", "BUILD")
	r.Merge(NewRecord("status", "ACTIVE", "name", "vm"))

	assert.Equal(t, []string{"id", "status", "name"}, r.Keys())
	assert.Equal(t, "ACTIVE", r.Value("status"))
}

func TestRecord_Matches(t *testing.T) {
	r := NewRecord("Name", "alpha", "Status", "ACTIVE")

	assert.True(t, r.Matches(nil))
	assert.True(t, r.Matches(map[string]string{"Name": "alpha"}))
	assert.False(t, r.Matches(map[string]string{"Name": "beta"}))
	assert.False(t, r.Matches(map[string]string{"Missing": ""}))
}

func TestRecord_JSONPreservesOrder(t *testing.T) {
	r := NewRecord("zeta", "1", "alpha", "two \"quoted\"")

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"1","alpha":"two \"quoted\""}`, string(data))

	var back Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}

func TestRecord_UnmarshalJSONScalars(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"count": 3, "enabled": true, "note": null}`), &r))

	assert.Equal(t, []string{"count", "enabled", "note"}, r.Keys())
	assert.Equal(t, "3", r.Value("count"))
	assert.Equal(t, "true", r.Value("enabled"))
	assert.Equal(t, "", r.Value("note"))
}

func TestRecord_UnmarshalJSONRejectsNesting(t *testing.T) {
	var r Record
	assert.Error(t, json.Unmarshal([]byte(`{"a": {"b": "c"}}`), &r))
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &r))
}

func TestRecord_YAMLPreservesOrder(t *testing.T) {
	r := NewRecord("name", "vm-1", "id", "42")

	data, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "name: vm-1\nid: \"42\"\n", string(data))

	var back Record
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}

func TestNewRecord_OddPairs(t *testing.T) {
	r := NewRecord("a", "1", "b")
	assert.Equal(t, map[string]string{"a": "1", "b": ""}, r.Map())
}
