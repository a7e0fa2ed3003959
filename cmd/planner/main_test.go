package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"goal-planner/internal/busy"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "--title", "Belajar gitar", "--description", "Latihan chord dasar", "--start", "2025-08-27", "--end", "2025-09-09", "--today", "2025-08-20", "-o", "yaml")
	require.NoError(t, err)

	var v validationView
	require.NoError(t, yaml.Unmarshal([]byte(out), &v))
	assert.Equal(t, "valid", v.Status)
	assert.Equal(t, "2025-08-27", v.StartDate)
	assert.Equal(t, "2025-09-09", v.EndDate)
}

func TestValidateCommand_Incomplete(t *testing.T) {
	out, err := run(t, "validate", "--text", "Belajar gitar selama 2 minggu", "--title", "", "--description", "", "--start", "", "--end", "", "--today", "2025-08-20", "-o", "yaml")
	require.ErrorIs(t, err, errDraftRejected)

	var v validationView
	require.NoError(t, yaml.Unmarshal([]byte(out), &v))
	assert.Equal(t, "incomplete", v.Status)
	assert.Contains(t, v.MissingFields, "startDate")
}

func TestPlanCommand(t *testing.T) {
	out, err := run(t, "plan", "--title", "Belajar gitar", "--description", "Latihan chord dasar", "--start", "2025-08-27", "--end", "2025-08-31", "--today", "2025-08-20", "--slot", "19:00-20:00", "-o", "yaml")
	require.NoError(t, err)

	var v planView
	require.NoError(t, yaml.Unmarshal([]byte(out), &v))
	assert.Equal(t, 5, v.TotalDays)
	require.Len(t, v.Items, 5)
	assert.Equal(t, "19:00", v.Items[0].Start)
	assert.Equal(t, 100.0, v.Items[4].Progress)
}

func TestUnknownOutput(t *testing.T) {
	_, err := run(t, "plan", "--title", "Belajar gitar", "--description", "Latihan chord dasar", "--start", "2025-08-27", "--end", "2025-08-28", "--today", "2025-08-20", "--slot", "", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestParseBusyYAML(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	data := []byte(`
- start: "2025-08-27T09:00:00+07:00"
  end: "2025-08-27T10:00:00+07:00"
  label: Standup
- start: "2025-08-28 13:00"
  end: "2025-08-28 14:30"
`)
	blocks, err := parseBusyYAML(data, loc)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, busy.KindExistingSchedule, blocks[0].Kind)
	assert.Equal(t, "Standup", blocks[0].Label)
	assert.Equal(t, time.Hour, blocks[0].Duration())
	assert.Equal(t, 13, blocks[1].Start.In(loc).Hour())
	assert.Equal(t, 90*time.Minute, blocks[1].Duration())

	_, err = parseBusyYAML([]byte(`- {start: "2025-08-28 14:00", end: "2025-08-28 13:00"}`), loc)
	assert.Error(t, err)
	_, err = parseBusyYAML([]byte(`- {start: tomorrow, end: "2025-08-28 13:00"}`), loc)
	assert.Error(t, err)
}
