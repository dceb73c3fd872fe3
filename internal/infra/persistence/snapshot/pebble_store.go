// Package snapshot mirrors committed artifacts into a local Pebble store
// so the last-known-good report survives primary-store outages.
package snapshot

import (
	"context"
	"encoding/json"
	"path/filepath"

	"prism/internal/domain/entity"
	"prism/internal/domain/repository"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
)

// pebbleStore implements repository.SnapshotStore on an embedded Pebble
// database. Values are JSON blobs under the same fixed keys the primary
// store uses.
type pebbleStore struct {
	db *pebble.DB
}

// NewPebbleStore opens (or creates) the snapshot database at dir.
func NewPebbleStore(dir string) (repository.SnapshotStore, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open snapshot store")
	}

	return &pebbleStore{db: db}, nil
}

// SaveAggregates stores the latest committed aggregates.
func (s *pebbleStore) SaveAggregates(_ context.Context, aggregates *entity.Aggregates) error {
	return s.set(repository.KeyAggregates, aggregates)
}

// LoadAggregates retrieves the last committed aggregates.
func (s *pebbleStore) LoadAggregates(_ context.Context) (*entity.Aggregates, error) {
	aggregates := &entity.Aggregates{}
	if err := s.get(repository.KeyAggregates, aggregates); err != nil {
		return nil, err
	}

	return aggregates, nil
}

// SaveMergeReport stores the latest committed merge report.
func (s *pebbleStore) SaveMergeReport(_ context.Context, report *entity.MergeReport) error {
	return s.set(repository.KeyMergeReport, report)
}

// LoadMergeReport retrieves the last committed merge report.
func (s *pebbleStore) LoadMergeReport(_ context.Context) (*entity.MergeReport, error) {
	report := &entity.MergeReport{}
	if err := s.get(repository.KeyMergeReport, report); err != nil {
		return nil, err
	}

	return report, nil
}

// Close releases the underlying store.
func (s *pebbleStore) Close() error {
	return s.db.Close()
}

func (s *pebbleStore) set(key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode snapshot %s", key)
	}

	// Sync on every write: snapshots are small and written once per
	// committed pass, durability matters more than throughput here.
	if err := s.db.Set([]byte(key), encoded, pebble.Sync); err != nil {
		return errors.Wrapf(err, "failed to write snapshot %s", key)
	}

	return nil
}

func (s *pebbleStore) get(key string, target any) error {
	value, closer, err := s.db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return repository.ErrArtifactNotFound
		}

		return errors.Wrapf(err, "failed to read snapshot %s", key)
	}
	defer closer.Close()

	if err := json.Unmarshal(value, target); err != nil {
		return errors.Wrapf(err, "failed to decode snapshot %s", key)
	}

	return nil
}
