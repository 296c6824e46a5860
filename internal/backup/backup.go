package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"perfin/internal/config"
	"perfin/internal/library"
)

// Snapshot is the on-disk backup payload.
type Snapshot struct {
	SnapshotID    string                   `json:"snapshot_id"`
	CreatedAt     time.Time                `json:"created_at"`
	SchemaVersion string                   `json:"schema_version"`
	Collections   []library.CollectionTree `json:"collections"`
}

// ErrBackupInProgress indicates another backup or restore holds the lock.
var ErrBackupInProgress = errors.New("another backup or restore is in progress")

// DefaultPath returns the timestamped snapshot location under the configured
// backup directory.
func DefaultPath(cfg *config.Config, now time.Time) string {
	name := fmt.Sprintf("perfin-backup-%s.json", now.UTC().Format("20060102-150405"))
	return filepath.Join(cfg.Paths.BackupDir, name)
}

// Create writes a snapshot of the entire library to path and returns it.
func Create(ctx context.Context, cfg *config.Config, store *library.Store, path string) (*Snapshot, error) {
	unlock, err := acquireLock(cfg)
	if err != nil {
		return nil, err
	}
	defer unlock()

	tree, err := store.ExportTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("export library: %w", err)
	}
	version, err := store.SchemaVersion(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		SnapshotID:    uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		SchemaVersion: version,
		Collections:   tree,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create backup directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write snapshot: %w", err)
	}
	return snapshot, nil
}

// Read loads a snapshot file without applying it.
func Read(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if snapshot.SnapshotID == "" {
		return nil, errors.New("snapshot has no identifier; not a perfin backup")
	}
	return &snapshot, nil
}

// Restore replaces the library content with the snapshot at path. Snapshots
// taken from a newer schema than the current database are refused.
func Restore(ctx context.Context, cfg *config.Config, store *library.Store, path string) (*Snapshot, error) {
	unlock, err := acquireLock(cfg)
	if err != nil {
		return nil, err
	}
	defer unlock()

	snapshot, err := Read(path)
	if err != nil {
		return nil, err
	}

	current, err := store.SchemaVersion(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot.SchemaVersion > current {
		return nil, fmt.Errorf("snapshot schema %s is newer than database schema %s; upgrade perfin first",
			snapshot.SchemaVersion, current)
	}

	if err := store.RestoreTree(ctx, snapshot.Collections); err != nil {
		return nil, fmt.Errorf("restore library: %w", err)
	}
	return snapshot, nil
}

func acquireLock(cfg *config.Config) (func(), error) {
	if err := os.MkdirAll(cfg.Paths.BackupDir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}
	lock := flock.New(filepath.Join(cfg.Paths.BackupDir, "backup.lock"))

	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire backup lock: %w", err)
	}
	if !locked {
		return nil, ErrBackupInProgress
	}
	return func() { _ = lock.Unlock() }, nil
}
