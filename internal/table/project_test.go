package table

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergedObject_ShowScenario(t *testing.T) {
	got := ParseShowObject(showOutput)

	assert.Equal(t, []string{"id", "name"}, got.Keys())
	assert.Equal(t, map[string]string{"id": "abc123", "name": "widget"}, got.Map())
}

func TestListRecords_ListScenario(t *testing.T) {
	got := ParseListing(listOutput)

	require.Len(t, got, 2)
	assert.Equal(t, map[string]string{"ID": "1", "Name": "alpha"}, got[0].Map())
	assert.Equal(t, map[string]string{"ID": "2", "Name": "beta"}, got[1].Map())
}

func TestFieldRecords(t *testing.T) {
	got := ParseShow(showOutput)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"id"}, got[0].Keys())
	assert.Equal(t, "abc123", got[0].Value("id"))
	assert.Equal(t, []string{"name"}, got[1].Keys())
	assert.Equal(t, "widget", got[1].Value("name"))
}

func TestFieldRecords_IgnoresExtraAndMissingCells(t *testing.T) {
	tbl := Table{
		Headers: []string{"Field", "Value", "Extra"},
		Values:  [][]string{{"a", "1", "ignored"}, {"b"}, {}},
	}

	got := FieldRecords(tbl)
	require.Len(t, got, 3)
	assert.Equal(t, map[string]string{"a": "1"}, got[0].Map())
	assert.Equal(t, map[string]string{"b": ""}, got[1].Map())
	assert.Equal(t, map[string]string{"": ""}, got[2].Map())
}

func TestMergedObject_LastWriteWins(t *testing.T) {
	tbl := Table{
		Headers: []string{"Field", "Value"},
		Values:  [][]string{{"status", "BUILD"}, {"id", "x"}, {"status", "ACTIVE"}},
	}

	got := MergedObject(tbl)
	assert.Equal(t, []string{"status", "id"}, got.Keys())
	assert.Equal(t, "ACTIVE", got.Value("status"))
}

func TestProjections_EmptyTable(t *testing.T) {
	empty := Parse("")

	assert.Empty(t, ListRecords(empty))
	assert.NotNil(t, ListRecords(empty))
	assert.Empty(t, FieldRecords(empty))
	assert.Equal(t, 0, MergedObject(empty).Len())
}

func TestListRecords_HeaderOnly(t *testing.T) {
	input := "+----+\n| ID |\n+----+\n+----+\n"
	assert.Empty(t, ParseListing(input))
}

func TestListRecords_ZipsToShorter(t *testing.T) {
	tbl := Table{
		Headers: []string{"a", "b"},
		Values:  [][]string{{"1", "2", "3"}, {"4"}},
	}

	got := ListRecords(tbl)
	require.Len(t, got, 2)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, got[0].Map())
	assert.Equal(t, map[string]string{"a": "4"}, got[1].Map())
}

// buildTable renders a well-formed table with the given headers and rows at
// fixed column widths, the way the CLI formatter lays them out.
func buildTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}

	var b strings.Builder
	rule := func() {
		b.WriteString("+")
		for _, w := range widths {
			b.WriteString(strings.Repeat("-", w+2) + "+")
		}
		b.WriteString("\n")
	}
	line := func(cells []string) {
		b.WriteString("|")
		for i, c := range cells {
			fmt.Fprintf(&b, " %-*s |", widths[i], c)
		}
		b.WriteString("\n")
	}

	rule()
	line(headers)
	rule()
	for _, row := range rows {
		line(row)
	}
	rule()
	return b.String()
}

func TestMergedObject_KeySetMatchesFirstColumn(t *testing.T) {
	for n := 0; n < 6; n++ {
		t.Run(fmt.Sprintf("%d rows", n), func(t *testing.T) {
			var rows [][]string
			want := map[string]string{}
			for i := 0; i < n; i++ {
				key := fmt.Sprintf("field_%d", i)
				value := strings.Repeat("v", i+1)
				rows = append(rows, []string{key, value})
				want[key] = value
			}

			got := ParseShowObject(buildTable([]string{"Field", "Value"}, rows))
			assert.Equal(t, want, got.Map())
		})
	}
}

func TestListRecords_CountAndWidth(t *testing.T) {
	headers := []string{"ID", "Name", "Status", "Networks"}
	for n := 0; n < 5; n++ {
		t.Run(fmt.Sprintf("%d rows", n), func(t *testing.T) {
			var rows [][]string
			for i := 0; i < n; i++ {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i), fmt.Sprintf("vm-%d", i), "ACTIVE", "private=10.0.0." + fmt.Sprint(i),
				})
			}

			got := ParseListing(buildTable(headers, rows))
			require.Len(t, got, n)
			for _, r := range got {
				assert.Equal(t, len(headers), r.Len())
			}
		})
	}
}

func TestProject_Modes(t *testing.T) {
	t.Run("raw", func(t *testing.T) {
		p := Project(listOutput, ModeRaw)
		assert.Equal(t, listOutput, p.Raw)
		assert.Equal(t, 1, p.Count())
		assert.Equal(t, listOutput, p.Render())
	})

	t.Run("table", func(t *testing.T) {
		p := Project(listOutput, ModeTable)
		require.NotNil(t, p.Table)
		assert.Equal(t, 2, p.Count())
	})

	t.Run("list", func(t *testing.T) {
		p := Project(listOutput, ModeList)
		assert.Len(t, p.Records, 2)
		assert.Equal(t, 2, p.Count())
	})

	t.Run("show", func(t *testing.T) {
		p := Project(showOutput, ModeShow)
		require.NotNil(t, p.Object)
		assert.Equal(t, "widget", p.Object.Value("name"))
		assert.Equal(t, 2, p.Count())
	})

	t.Run("fields", func(t *testing.T) {
		p := Project(showOutput, ModeFields)
		assert.Len(t, p.Records, 2)
		assert.Equal(t, ParseShowObject(showOutput), ParseShowObject(p.Render()))
	})

	t.Run("empty list data is not nil", func(t *testing.T) {
		p := Project("", ModeList)
		assert.Equal(t, []Record{}, p.Data())
	})
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(strings.ToUpper(string(m)))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMode("csv")
	assert.Error(t, err)
}
