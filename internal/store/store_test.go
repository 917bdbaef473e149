package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunkazanli9/beontrack/internal/clock"
	"github.com/harunkazanli9/beontrack/internal/config"
	"github.com/harunkazanli9/beontrack/internal/workout"
)

var today = time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)

func sampleLog(t *testing.T) *workout.Log {
	t.Helper()
	l := workout.NewLog(clock.Fixed(today))
	cet := time.FixedZone("CET", 3600)
	entries := []workout.Entry{
		{Date: today.AddDate(0, 0, -12), Type: workout.TypeStrength, DurationMinutes: 60},
		{Date: today.AddDate(0, 0, -11), Type: workout.TypeStrength, DurationMinutes: 55},
		{Date: today.AddDate(0, 0, -10), Type: workout.TypeCardio, DurationMinutes: 30, Notes: "rowing, 5k"},
		{Date: time.Date(2026, 10, 15, 23, 30, 0, 0, cet), Type: workout.TypeYoga, DurationMinutes: 20},
		{Date: today, Type: workout.TypeHIIT, DurationMinutes: 25, Notes: "tabata \"classic\""},
		{Date: today.Add(-2 * time.Hour), Type: workout.TypeHIIT, DurationMinutes: 15},
	}
	for _, e := range entries {
		_, err := l.Append(e)
		require.NoError(t, err)
	}
	return l
}

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	stores := map[string]Store{}
	for _, kind := range []string{config.StoreJSON, config.StoreSQLite} {
		s, err := Open(kind, t.TempDir())
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		stores[kind] = s
	}
	return stores
}

func TestRoundTrip(t *testing.T) {
	for kind, s := range openStores(t) {
		t.Run(kind, func(t *testing.T) {
			ctx := context.Background()
			orig := sampleLog(t)
			require.NoError(t, s.Save(ctx, orig.Snapshot()))

			snap, err := s.Load(ctx)
			require.NoError(t, err)

			restored := workout.NewLog(clock.Fixed(today))
			require.NoError(t, restored.Restore(snap))

			assert.Equal(t, orig.TotalCount(), restored.TotalCount())
			assert.Equal(t, orig.CurrentStreak(), restored.CurrentStreak())
			assert.Equal(t, orig.LongestStreak(), restored.LongestStreak())
			assert.Equal(t, orig.TotalMinutes(), restored.TotalMinutes())
			assert.Equal(t, 2, restored.CurrentStreak())

			want := orig.Entries()
			got := restored.Entries()
			require.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, want[i].ID, got[i].ID)
				assert.True(t, want[i].Date.Equal(got[i].Date), "date %d", i)
				assert.Equal(t, clock.Day(want[i].Date), clock.Day(got[i].Date), "calendar day %d", i)
				assert.Equal(t, want[i].Type, got[i].Type)
				assert.Equal(t, want[i].DurationMinutes, got[i].DurationMinutes)
				assert.Equal(t, want[i].Notes, got[i].Notes)
			}
			assert.True(t, orig.LastWorkoutDate().Equal(snap.LastWorkoutDate))
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	for kind, s := range openStores(t) {
		t.Run(kind, func(t *testing.T) {
			snap, err := s.Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, snap.Workouts)
			assert.Zero(t, snap.LongestStreak)
		})
	}
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	for kind, s := range openStores(t) {
		t.Run(kind, func(t *testing.T) {
			ctx := context.Background()
			l := sampleLog(t)
			require.NoError(t, s.Save(ctx, l.Snapshot()))

			_, err := l.Append(workout.Entry{Date: today, Type: workout.TypeRunning, DurationMinutes: 40})
			require.NoError(t, err)
			require.NoError(t, s.Save(ctx, l.Snapshot()))

			snap, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Len(t, snap.Workouts, 7)
			assert.Equal(t, workout.TypeRunning, snap.Workouts[6].Type)
		})
	}
}

func TestClear(t *testing.T) {
	for kind, s := range openStores(t) {
		t.Run(kind, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Save(ctx, sampleLog(t).Snapshot()))
			require.NoError(t, s.Clear(ctx))

			snap, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, snap.Workouts)
			assert.Zero(t, snap.LongestStreak)

			require.NoError(t, s.Clear(ctx), "clearing twice is fine")
		})
	}
}

func TestJSONStoreInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, JSONFilename), []byte("{not json"), 0644))

	_, err := NewJSONStore(dir).Load(context.Background())
	assert.Error(t, err)
}

func TestJSONStoreWritesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONStore(dir)
	require.NoError(t, s.Save(context.Background(), workout.Snapshot{}))

	data, err := os.ReadFile(s.Location())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"workouts": []`)
}

func TestOpenUnknownKind(t *testing.T) {
	_, err := Open("postgres", t.TempDir())
	assert.Error(t, err)
}

func TestBackupKeepsOriginalBytes(t *testing.T) {
	at := time.Date(2026, 10, 16, 21, 4, 5, 0, time.UTC)
	for kind, s := range openStores(t) {
		t.Run(kind, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Save(ctx, sampleLog(t).Snapshot()))
			original, err := os.ReadFile(s.Location())
			require.NoError(t, err)

			path, err := s.Backup(ctx, at)
			require.NoError(t, err)
			assert.Equal(t, s.Location()+".corrupt-20261016-210405", path)

			copied, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, original, copied)

			_, err = s.Backup(ctx, at)
			assert.Error(t, err, "an existing backup is never overwritten")
		})
	}
}

func TestJSONStoreBackupOfCorruptFile(t *testing.T) {
	dir := t.TempDir()
	corrupt := []byte(`{"workouts": [{"type": "Yoga", "durationMinutes": 30`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, JSONFilename), corrupt, 0644))

	s := NewJSONStore(dir)
	_, err := s.Load(context.Background())
	require.Error(t, err)

	path, err := s.Backup(context.Background(), today)
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), workout.Snapshot{}))

	kept, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, corrupt, kept)
}

func TestJSONStoreBackupWithoutFile(t *testing.T) {
	path, err := NewJSONStore(t.TempDir()).Backup(context.Background(), today)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestSQLiteStoreRejectsCorruptStreak(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(ctx, sampleLog(t).Snapshot()))
	_, err = s.db.ExecContext(ctx, `UPDATE journey_state SET value = 'lots' WHERE key = ?`, stateLongestStreak)
	require.NoError(t, err)

	_, err = s.Load(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), stateLongestStreak)
}
