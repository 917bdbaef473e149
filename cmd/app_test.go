package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunkazanli9/beontrack/internal/config"
	"github.com/harunkazanli9/beontrack/internal/progress"
	"github.com/harunkazanli9/beontrack/internal/store"
	"github.com/harunkazanli9/beontrack/internal/workout"
)

// useDataDir points the command globals at a fresh directory for one test
func useDataDir(t *testing.T, kind string) string {
	t.Helper()
	dir := t.TempDir()

	oldConfig, oldData, oldKind := configPath, dataDir, storeKind
	t.Cleanup(func() {
		configPath, dataDir, storeKind = oldConfig, oldData, oldKind
	})

	configPath = filepath.Join(dir, "config.yaml")
	dataDir = dir
	storeKind = kind
	return dir
}

func TestOpenAppKeepsUnreadableLog(t *testing.T) {
	dir := useDataDir(t, "json")
	corrupt := []byte(`{"workouts": [{"id": "w1", "type": "Cardio"`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, store.JSONFilename), corrupt, 0644))

	ctx := context.Background()
	a, err := openApp(ctx)
	require.NoError(t, err)
	defer a.close()

	assert.Equal(t, 0, a.controller.Stats().TotalWorkouts)

	_, n, err := a.record(ctx, []workout.Entry{{
		Date:            time.Now(),
		Type:            workout.TypeCardio,
		DurationMinutes: 30,
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	matches, err := filepath.Glob(filepath.Join(dir, store.JSONFilename+".corrupt-*"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	kept, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Equal(t, corrupt, kept)

	saved, err := os.ReadFile(filepath.Join(dir, store.JSONFilename))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(saved), workout.TypeCardio))
}

func TestOpenAppWithoutLogMakesNoBackup(t *testing.T) {
	dir := useDataDir(t, "json")

	a, err := openApp(context.Background())
	require.NoError(t, err)
	a.close()

	matches, err := filepath.Glob(filepath.Join(dir, "*.corrupt-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestJournalLastRecords(t *testing.T) {
	dir := useDataDir(t, "json")
	ctx := context.Background()

	a, err := openApp(ctx)
	require.NoError(t, err)
	defer a.close()

	day := time.Date(2026, 10, 14, 7, 0, 0, 0, time.UTC)
	var entries []workout.Entry
	for i := 0; i < 3; i++ {
		entries = append(entries, workout.Entry{
			Date:            day.AddDate(0, 0, i),
			Type:            workout.TypeRunning,
			DurationMinutes: 20 + i,
		})
	}
	_, n, err := a.record(ctx, entries)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	journal := progress.NewJournal(dir)
	require.True(t, journal.Exists())
	content, err := journal.Read()
	require.NoError(t, err)

	assert.Equal(t, content, lastRecords(content, 0))
	assert.Equal(t, content, lastRecords(content, 10))

	last := lastRecords(content, 1)
	assert.True(t, strings.HasPrefix(last, progress.JournalRule))
	assert.Contains(t, last, "Workout #3: Running, 22 min")
	assert.NotContains(t, last, "Workout #2")
	assert.Equal(t, 1, strings.Count(last, progress.JournalRule))
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := useDataDir(t, "sqlite")

	require.NoError(t, writeDefaultConfig(configPath, false))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Kind)
	assert.Equal(t, dir, cfg.Storage.DataDir)
	assert.Equal(t, config.Default().Journey, cfg.Journey)

	err = writeDefaultConfig(configPath, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	storeKind = "json"
	require.NoError(t, writeDefaultConfig(configPath, true))
	cfg, err = config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Storage.Kind)
}

func TestWriteDefaultConfigRejectsUnknownStore(t *testing.T) {
	useDataDir(t, "postgres")

	assert.Error(t, writeDefaultConfig(configPath, false))
	assert.NoFileExists(t, configPath)
}
