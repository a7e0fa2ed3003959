package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goal-planner/pkg/oracle"
)

type extraction struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want extraction
	}{
		{"plain", `{"title":"Run","start_date":"2025-08-27"}`, extraction{"Run", "2025-08-27"}},
		{"fenced", "```json\n{\"title\":\"Run\"}\n```", extraction{Title: "Run"}},
		{"prose around", `Sure! Here is the result: {"title":"Run {daily}"} Hope it helps {not json}`, extraction{Title: "Run {daily}"}},
		{"trailing comma", `{"title":"Run",}`, extraction{Title: "Run"}},
		{"nested braces", `x {"title":"a","meta":{"k":{"v":1}}} y`, extraction{Title: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oracle.DecodeJSON[extraction](tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	for _, raw := range []string{"", "   ", "no payload here", `{"title": "unterminated`, "```json\n```", `{"title": 42}`} {
		_, err := oracle.DecodeJSON[extraction](raw)
		require.Error(t, err, raw)
		assert.True(t, oracle.IsParseError(err), raw)
	}
}

func TestDecodeJSON_Array(t *testing.T) {
	got, err := oracle.DecodeJSON[[]extraction]("```\n[{\"title\":\"a\"},{\"title\":\"b\"}]\n```")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFirstBalanced(t *testing.T) {
	got, ok := oracle.FirstBalanced(`prefix {"a":"}"} {"b":1}`)
	require.True(t, ok)
	assert.Equal(t, `{"a":"}"}`, got)

	_, ok = oracle.FirstBalanced(`{"a": 1`)
	assert.False(t, ok)
}

func TestCSVRecords(t *testing.T) {
	raw := "Here is your plan:\n```csv\nday,title,description\n1,Warm up,\"Stretch, then jog\"\n2,Intervals,Run 5x400m\n```\nGood luck!"
	recs, err := oracle.CSVRecords(raw, 3, "day", "title", "description")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"1", "Warm up", "Stretch, then jog"}, recs[0])

	first, err := oracle.FirstCSVRecord(raw, 3, "day", "title", "description")
	require.NoError(t, err)
	assert.Equal(t, "Warm up", first[1])

	_, err = oracle.CSVRecords("just some prose", 3)
	assert.True(t, oracle.IsParseError(err))
}
