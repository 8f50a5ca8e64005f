package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVJournalHeaders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runsPath := filepath.Join(dir, "runs.csv")
	stepsPath := filepath.Join(dir, "steps.csv")

	j, err := NewCSV(runsPath, stepsPath)
	require.NoError(t, err)
	assert.NoError(t, j.Close())

	runs := readCSV(t, runsPath)
	steps := readCSV(t, stepsPath)
	require.Len(t, runs, 1)
	require.Len(t, steps, 1)
	assert.Equal(t, runsHeader, runs[0])
	assert.Equal(t, []string{"run_id", "step", "adjusted", "revenue", "units"}, steps[0])
}

func TestCSVJournalRecord(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runsPath := filepath.Join(dir, "runs.csv")
	stepsPath := filepath.Join(dir, "steps.csv")

	j, err := NewCSV(runsPath, stepsPath)
	require.NoError(t, err)

	require.NoError(t, j.RecordStep(StepRecord{RunID: "R1", Step: 2, Adjusted: true, Revenue: 45.5, Units: 3}))
	require.NoError(t, j.RecordRun(sampleRun("R1", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))))
	require.NoError(t, j.Close())

	steps := readCSV(t, stepsPath)
	require.Len(t, steps, 2)
	assert.Equal(t, []string{"R1", "2", "true", "45.500000", "3"}, steps[1])

	runs := readCSV(t, runsPath)
	require.Len(t, runs, 2)
	row := runs[1]
	assert.Equal(t, "R1", row[0])
	assert.Equal(t, "2024-01-02T03:04:05Z", row[1])
	assert.Equal(t, "9223372036854775813", row[2])
	assert.Equal(t, "610000", row[3])
	assert.Equal(t, "123456.780000", row[8])
	assert.Equal(t, "42", row[10])
	assert.Equal(t, "2.000000", row[17])
}

func TestCSVJournalBadPath(t *testing.T) {
	t.Parallel()

	_, err := NewCSV("/nonexistent/dir/runs.csv", "/nonexistent/dir/steps.csv")
	assert.Error(t, err)
}
