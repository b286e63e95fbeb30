// Package snapshot persists the whole store state as a single JSON document.
// The contract is whole-state-in, whole-state-out: there is no partial or
// incremental persistence, and a failed save never leaves a truncated file
// behind.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"grocery-store/internal/domain"

	"go.uber.org/zap"
)

// ErrNoSnapshot indicates that no snapshot file exists yet.
var ErrNoSnapshot = errors.New("no snapshot file")

// Snapshot is the complete serialized state of the store: the catalog, the
// member roster with each member's transaction log, and the outstanding
// order queue. The active cart is transient and deliberately excluded.
type Snapshot struct {
	SavedAt  time.Time        `json:"saved_at"`
	Products []domain.Product `json:"products"`
	Members  []domain.Member  `json:"members"`
	Orders   []domain.Order   `json:"orders"`
}

// Store reads and writes snapshots at a fixed path.
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore creates a snapshot store for the given file path.
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Save writes the snapshot atomically: the document is written to a temporary
// file in the target directory, synced, and renamed over the destination.
func (s *Store) Save(snap *Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	s.logger.Info("Snapshot saved",
		zap.String("path", s.path),
		zap.Int("products", len(snap.Products)),
		zap.Int("members", len(snap.Members)),
		zap.Int("orders", len(snap.Orders)),
	)
	return nil
}

// Load reads the snapshot from disk. A missing file is reported as
// ErrNoSnapshot so callers can start with an empty store.
func (s *Store) Load() (*Snapshot, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	var snap Snapshot
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	s.logger.Info("Snapshot loaded",
		zap.String("path", s.path),
		zap.Time("saved_at", snap.SavedAt),
		zap.Int("products", len(snap.Products)),
		zap.Int("members", len(snap.Members)),
		zap.Int("orders", len(snap.Orders)),
	)
	return &snap, nil
}
