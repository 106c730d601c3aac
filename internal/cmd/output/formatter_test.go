package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storecat/internal/cmd/table"
)

type segment struct {
	Label  string `json:"label"`
	Count  int    `json:"record_count"`
	hidden string
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", "yaml", "wide", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, segment{Label: "40+", Count: 3}))
	assert.JSONEq(t, `{"label": "40+", "record_count": 3}`, buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, map[string][]string{"genres": {"Action", "RPG"}}))
	assert.Equal(t, "genres:\n- Action\n- RPG\n", buf.String())
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	data := table.Data{
		Headers:         []string{"Column", "Null"},
		Rows:            [][]string{{"publisher", "12"}},
		ColumnAlignment: []table.Align{table.AlignLeft, table.AlignRight},
	}
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))
	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "COLUMN")
	assert.Contains(t, out, "publisher")
	assert.Contains(t, out, "12")
}

func TestTableFormatterReflection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, []*segment{{Label: "0 - 7.99", Count: 2}}))
	out := strings.ToUpper(buf.String())
	assert.Contains(t, out, "RECORD COUNT")
	assert.Contains(t, out, "0 - 7.99")
	assert.NotContains(t, out, "HIDDEN")

	d, ok := reflectData(segment{Label: "x", Count: 1})
	require.True(t, ok)
	assert.Equal(t, [][]string{{"Label", "x"}, {"Record Count", "1"}}, d.Rows)

	_, ok = reflectData([]string{"a"})
	assert.False(t, ok)
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a": 1}`, buf.String())
}

func TestWrite(t *testing.T) {
	var calls []bool
	tabular := func(wide bool) Data {
		calls = append(calls, wide)
		return Data{Headers: []string{"K"}, Rows: [][]string{{"v"}}}
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatWide, map[string]int{"a": 1}, tabular))
	require.NoError(t, Write(&buf, FormatTable, map[string]int{"a": 1}, tabular))
	assert.Equal(t, []bool{true, false}, calls)

	buf.Reset()
	require.NoError(t, Write(&buf, FormatJSON, map[string]int{"a": 1}, tabular))
	assert.JSONEq(t, `{"a": 1}`, buf.String())
	assert.Len(t, calls, 2)
}
