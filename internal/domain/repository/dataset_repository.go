// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"prism/internal/domain/entity"
	"prism/internal/errors"
)

// Fixed logical keys under which derived artifacts are persisted. Each
// artifact is an opaque serialized blob replaced wholesale on every
// committed pass.
const (
	KeyCollections = "dataset:collections"
	KeyAggregates  = "dataset:aggregates"
	KeyMergeReport = "dataset:merge_report"
)

// ErrArtifactNotFound is returned when a persisted artifact does not exist yet.
var ErrArtifactNotFound = errors.New("artifact not found")

// DatasetRepository persists the merged dataset and its derived artifacts.
// The reconciliation core never touches storage directly; only the
// orchestrating usecase goes through this interface.
type DatasetRepository interface {
	// SaveCollections replaces the persisted canonical dataset.
	SaveCollections(ctx context.Context, collections *entity.Collections) error

	// LoadCollections retrieves the persisted canonical dataset.
	LoadCollections(ctx context.Context) (*entity.Collections, error)

	// SaveAggregates replaces the persisted aggregates.
	SaveAggregates(ctx context.Context, aggregates *entity.Aggregates) error

	// LoadAggregates retrieves the persisted aggregates.
	LoadAggregates(ctx context.Context) (*entity.Aggregates, error)

	// SaveMergeReport replaces the persisted merge report.
	SaveMergeReport(ctx context.Context, report *entity.MergeReport) error

	// LoadMergeReport retrieves the persisted merge report.
	LoadMergeReport(ctx context.Context) (*entity.MergeReport, error)
}
