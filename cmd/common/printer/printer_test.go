package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	err := PrintWithOptions([]item{{Name: "a", Count: 1}}, PrintOptions{
		Format:     "json",
		Writer:     &buf,
		JsonIndent: true,
	})
	require.NoError(t, err)

	var decoded []item
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []item{{Name: "a", Count: 1}}, decoded)
}

func TestPrintTableWithMapping(t *testing.T) {
	var buf bytes.Buffer
	err := PrintWithOptions([]item{{Name: "users", Count: 3}}, PrintOptions{
		Format: "table",
		Writer: &buf,
		ColumnMapping: ColumnMapping{
			{"name", "Name"},
			{"count", "Endpoints"},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Endpoints")
	assert.Contains(t, out, "users")
	assert.Contains(t, out, "3")
}

func TestPrintTableSingleObject(t *testing.T) {
	var buf bytes.Buffer
	err := PrintWithOptions(item{Name: "users", Count: 3}, PrintOptions{
		Format: "table",
		Writer: &buf,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "users")
}

func TestPrintTableMissingFieldRendersDash(t *testing.T) {
	var buf bytes.Buffer
	err := PrintWithOptions([]map[string]any{{"name": "a"}}, PrintOptions{
		Format: "table",
		Writer: &buf,
		ColumnMapping: ColumnMapping{
			{"name", "Name"},
			{"absent", "Absent"},
		},
	})
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "-"))
}

func TestPrintEmptySlice(t *testing.T) {
	var buf bytes.Buffer
	err := PrintWithOptions([]item{}, PrintOptions{Format: "table", Writer: &buf})
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(buf.String()))
}
