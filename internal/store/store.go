// Package store persists the workout log between runs.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/harunkazanli9/beontrack/internal/config"
	"github.com/harunkazanli9/beontrack/internal/workout"
)

// Store loads and saves workout snapshots. A store that holds no data yet
// loads as an empty snapshot.
type Store interface {
	Load(ctx context.Context) (workout.Snapshot, error)
	Save(ctx context.Context, snap workout.Snapshot) error
	Clear(ctx context.Context) error
	// Backup copies the stored data next to it, stamped with at, and returns
	// the copy's path. An empty store has nothing to copy and returns "".
	Backup(ctx context.Context, at time.Time) (string, error)
	Location() string
	Close() error
}

// Open creates the store of the given kind in dataDir
func Open(kind, dataDir string) (Store, error) {
	switch kind {
	case config.StoreJSON, "":
		return NewJSONStore(dataDir), nil
	case config.StoreSQLite:
		return NewSQLiteStore(dataDir)
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}
