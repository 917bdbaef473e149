package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/harunkazanli9/beontrack/internal/workout"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestImportJSONArray(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "week.json", `[
  {"date": "2026-10-01", "type": "Strength", "durationMinutes": 45},
  {"date": "2026-10-02T07:30:00+02:00", "type": "Running", "durationMinutes": 30, "notes": "easy 5k"}
]`)

	res, err := New(dir, nil).Import("*.json")
	require.NoError(t, err)

	require.Len(t, res.Entries, 2)
	assert.Equal(t, workout.TypeStrength, res.Entries[0].Type)
	assert.Equal(t, 1, res.Entries[0].Date.Day())
	assert.Equal(t, "easy 5k", res.Entries[1].Notes)
	assert.Equal(t, 7, res.Entries[1].Date.Hour())
	assert.Len(t, res.Files, 1)
}

func TestImportSnapshotShapedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "workouts.json", `{"workouts": [{"id": "a", "date": "2026-10-01", "type": "Yoga", "durationMinutes": 20}], "longestStreak": 4}`)

	res, err := New(dir, nil).Import("workouts.json")
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "a", res.Entries[0].ID)
}

func TestImportYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "logs/2026/october.yaml", `
- date: 2026-10-03
  type: HIIT
  durationMinutes: 25
- date: "2026-10-04 18:00:00"
  type: Cardio
  durationMinutes: 40
`)
	writeFile(t, dir, "logs/2025/december.yml", `
workouts:
  - date: 2025-12-24
    type: Yoga
    durationMinutes: 60
`)

	res, err := New(dir, nil).Import("logs/**/*.{yaml,yml}")
	require.NoError(t, err)

	require.Len(t, res.Files, 2)
	require.Len(t, res.Entries, 3)
	assert.Equal(t, workout.TypeYoga, res.Entries[0].Type, "files are read in lexical order")
	assert.Equal(t, workout.TypeHIIT, res.Entries[1].Type)
	assert.Equal(t, 18, res.Entries[2].Date.Hour())
}

func TestImportCollectsErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{broken`)
	writeFile(t, dir, "b.json", `[
  {"date": "2026-10-01", "type": "Strength", "durationMinutes": 45},
  {"date": "2026-10-01", "type": "", "durationMinutes": 45},
  {"date": "yesterday", "type": "Cardio", "durationMinutes": 30},
  {"date": "2026-10-02", "type": "Cardio", "durationMinutes": -5}
]`)
	writeFile(t, dir, "c.txt", `not a workout file`)

	res, err := New(dir, nil).Import("*")
	require.Error(t, err)

	assert.Len(t, multierr.Errors(err), 5)
	assert.True(t, errors.Is(err, workout.ErrInvalidEntry))
	assert.Contains(t, err.Error(), "a.json")
	assert.Contains(t, err.Error(), "c.txt")

	require.Len(t, res.Entries, 1, "valid entries survive bad neighbours")
	assert.Equal(t, 3, res.Invalid)
}

func TestImportSkipsDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.json", `[{"id": "x1", "date": "2026-10-01", "type": "Yoga", "durationMinutes": 20},
{"id": "x2", "date": "2026-10-02", "type": "Yoga", "durationMinutes": 20}]`)
	writeFile(t, dir, "two.json", `[{"id": "x2", "date": "2026-10-02", "type": "Yoga", "durationMinutes": 20},
{"date": "2026-10-02", "type": "Yoga", "durationMinutes": 20}]`)

	existing := []workout.Entry{{ID: "x1"}}
	res, err := New(dir, existing).Import("*.json")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Duplicates)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "x2", res.Entries[0].ID)
	assert.Empty(t, res.Entries[1].ID)
}

func TestImportNoMatches(t *testing.T) {
	_, err := New(t.TempDir(), nil).Import("**/*.json")
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestImportAbsolutePattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "abs.json", `[{"date": "2026-10-01", "type": "Running", "durationMinutes": 10}]`)

	res, err := New("/nonexistent", nil).Import(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	assert.Len(t, res.Entries, 1)
}
