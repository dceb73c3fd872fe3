package usecase

import (
	"context"

	"prism/internal/domain/entity"
	"prism/internal/domain/schema"
)

// ImportInput is one batch of raw rows handed in by a collaborator: an
// uploaded export file or an API sync.
type ImportInput struct {
	Platform entity.Platform
	Origin   entity.Origin
	Rows     []schema.RawRow
}

// DatasetUsecase orchestrates the reconciliation pipeline: normalize,
// merge against the stored dataset, attribute, aggregate, persist. It is
// the single owner of the "current dataset" state; the pipeline stages
// themselves are pure.
type DatasetUsecase interface {
	// ImportRows runs a full pipeline pass for one platform batch and
	// returns the merge report. Overlapping passes follow a supersede
	// policy: the newest submission always wins, an older in-flight pass
	// that finishes later is discarded.
	ImportRows(ctx context.Context, input *ImportInput) (*entity.MergeReport, error)

	// SyncAds pulls advertising rows through the AdsProvider and runs the
	// same pipeline with api_sync origin.
	SyncAds(ctx context.Context) (*entity.MergeReport, error)

	// GetAggregates returns the filtered, attributed, aggregated
	// performance picture.
	GetAggregates(ctx context.Context, filter *Filter) (*entity.Aggregates, error)

	// GetMergeReport returns the report of the last committed pass.
	GetMergeReport(ctx context.Context) (*entity.MergeReport, error)
}
