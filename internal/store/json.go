package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harunkazanli9/beontrack/internal/workout"
)

// JSONFilename is the file the JSON store writes in the data directory
const JSONFilename = "workouts.json"

// JSONStore keeps the snapshot in a single JSON file
type JSONStore struct {
	path string
}

// NewJSONStore creates a store writing workouts.json in dir
func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{path: filepath.Join(dir, JSONFilename)}
}

// Load reads the snapshot; a missing file is an empty log
func (s *JSONStore) Load(_ context.Context) (workout.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return workout.Snapshot{}, nil
		}
		return workout.Snapshot{}, fmt.Errorf("failed to read %s: %w", JSONFilename, err)
	}

	var snap workout.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return workout.Snapshot{}, fmt.Errorf("failed to parse %s: %w", JSONFilename, err)
	}
	return snap, nil
}

// Save writes the snapshot through a temp file so a crash never leaves a
// truncated log behind
func (s *JSONStore) Save(_ context.Context, snap workout.Snapshot) error {
	if snap.Workouts == nil {
		snap.Workouts = []workout.Entry{}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal workouts: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", JSONFilename, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", JSONFilename, err)
	}
	return nil
}

// Clear removes the workouts file
func (s *JSONStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", JSONFilename, err)
	}
	return nil
}

// Backup copies workouts.json to workouts.json.corrupt-<timestamp>
func (s *JSONStore) Backup(_ context.Context, at time.Time) (string, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	dst := backupPath(s.path, at)
	if err := copyFile(s.path, dst); err != nil {
		return "", fmt.Errorf("failed to back up %s: %w", JSONFilename, err)
	}
	return dst, nil
}

// Location returns the file path
func (s *JSONStore) Location() string {
	return s.path
}

// Close is a no-op, the file is only open while loading or saving
func (s *JSONStore) Close() error {
	return nil
}
