package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/harunkazanli9/beontrack/internal/workout"
)

// SQLiteFilename is the database file created in the data directory
const SQLiteFilename = "beontrack.db"

const (
	stateCurrentStreak   = "current_streak"
	stateLongestStreak   = "longest_streak"
	stateLastWorkoutDate = "last_workout_date"
)

// SQLiteStore keeps workouts in a local SQLite database, one row per entry
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (and creates if needed) beontrack.db in dir
func NewSQLiteStore(dir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(dir, SQLiteFilename)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	s := &SQLiteStore{db: db, path: path}
	if err := s.ensureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS workouts (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL,
  date TEXT NOT NULL,
  type TEXT NOT NULL,
  duration_minutes INTEGER NOT NULL,
  notes TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS journey_state (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// Load reads all workouts in insertion order plus the cached streak values
func (s *SQLiteStore) Load(ctx context.Context) (workout.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, type, duration_minutes, notes FROM workouts ORDER BY seq`)
	if err != nil {
		return workout.Snapshot{}, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	var snap workout.Snapshot
	for rows.Next() {
		var (
			e    workout.Entry
			date string
		)
		if err := rows.Scan(&e.ID, &date, &e.Type, &e.DurationMinutes, &e.Notes); err != nil {
			return workout.Snapshot{}, fmt.Errorf("scan workout: %w", err)
		}
		if e.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return workout.Snapshot{}, fmt.Errorf("parse date of workout %s: %w", e.ID, err)
		}
		snap.Workouts = append(snap.Workouts, e)
	}
	if err := rows.Err(); err != nil {
		return workout.Snapshot{}, fmt.Errorf("iterate workouts: %w", err)
	}

	state, err := s.loadState(ctx)
	if err != nil {
		return workout.Snapshot{}, err
	}
	if snap.CurrentStreak, err = stateInt(state, stateCurrentStreak); err != nil {
		return workout.Snapshot{}, err
	}
	if snap.LongestStreak, err = stateInt(state, stateLongestStreak); err != nil {
		return workout.Snapshot{}, err
	}
	if v := state[stateLastWorkoutDate]; v != "" {
		if snap.LastWorkoutDate, err = time.Parse(time.RFC3339Nano, v); err != nil {
			return workout.Snapshot{}, fmt.Errorf("parse last workout date: %w", err)
		}
	}
	return snap, nil
}

// stateInt reads an integer state value; a missing key is 0
func stateInt(state map[string]string, key string) (int, error) {
	v, ok := state[key]
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func (s *SQLiteStore) loadState(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM journey_state`)
	if err != nil {
		return nil, fmt.Errorf("query journey state: %w", err)
	}
	defer rows.Close()

	state := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan journey state: %w", err)
		}
		state[k] = v
	}
	return state, rows.Err()
}

// Save replaces the stored log with the snapshot in one transaction
func (s *SQLiteStore) Save(ctx context.Context, snap workout.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM workouts`); err != nil {
		return fmt.Errorf("clear workouts: %w", err)
	}
	const insert = `INSERT INTO workouts (id, date, type, duration_minutes, notes) VALUES (?, ?, ?, ?, ?)`
	for _, e := range snap.Workouts {
		if _, err := tx.ExecContext(ctx, insert,
			e.ID, e.Date.Format(time.RFC3339Nano), e.Type, e.DurationMinutes, e.Notes); err != nil {
			return fmt.Errorf("insert workout %s: %w", e.ID, err)
		}
	}

	lastDate := ""
	if !snap.LastWorkoutDate.IsZero() {
		lastDate = snap.LastWorkoutDate.Format(time.RFC3339Nano)
	}
	state := map[string]string{
		stateCurrentStreak:   strconv.Itoa(snap.CurrentStreak),
		stateLongestStreak:   strconv.Itoa(snap.LongestStreak),
		stateLastWorkoutDate: lastDate,
	}
	const upsert = `
INSERT INTO journey_state (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value;`
	for k, v := range state {
		if _, err := tx.ExecContext(ctx, upsert, k, v); err != nil {
			return fmt.Errorf("save journey state %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Clear deletes every workout and the cached state
func (s *SQLiteStore) Clear(ctx context.Context) error {
	for _, stmt := range []string{`DELETE FROM workouts`, `DELETE FROM journey_state`} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
	}
	return nil
}

// Backup copies the database file to beontrack.db.corrupt-<timestamp>
func (s *SQLiteStore) Backup(_ context.Context, at time.Time) (string, error) {
	dst := backupPath(s.path, at)
	if err := copyFile(s.path, dst); err != nil {
		return "", fmt.Errorf("back up database: %w", err)
	}
	return dst, nil
}

// Location returns the database path
func (s *SQLiteStore) Location() string {
	return s.path
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
