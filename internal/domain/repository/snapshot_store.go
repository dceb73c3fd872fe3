package repository

import (
	"context"

	"prism/internal/domain/entity"
)

// SnapshotStore mirrors the latest committed artifacts in a local store so
// the last-known-good performance picture survives primary-store outages
// and failed imports. Writes happen only after a pass commits; reads are a
// fallback path.
type SnapshotStore interface {
	// SaveAggregates stores the latest committed aggregates.
	SaveAggregates(ctx context.Context, aggregates *entity.Aggregates) error

	// LoadAggregates retrieves the last committed aggregates.
	LoadAggregates(ctx context.Context) (*entity.Aggregates, error)

	// SaveMergeReport stores the latest committed merge report.
	SaveMergeReport(ctx context.Context, report *entity.MergeReport) error

	// LoadMergeReport retrieves the last committed merge report.
	LoadMergeReport(ctx context.Context) (*entity.MergeReport, error)

	// Close releases the underlying store.
	Close() error
}
